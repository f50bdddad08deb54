//go:build integration

package integration

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSessionWorkflow logs in, reads data with the stored token and logs out.
func TestSessionWorkflow(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	runner := NewCommandRunner(config, t)

	require.NoError(t, runner.Login())

	state, err := os.ReadFile(runner.StateFile())
	require.NoError(t, err)
	assert.Contains(t, string(state), "token:")

	// Reference data with every output format
	stdout, stderr, err := runner.Run("reference", "currencies", "--output", "json")
	require.NoError(t, err, "Failed to list currencies: %s", stderr)
	AssertJSONOutput(t, stdout)

	stdout, stderr, err = runner.Run("reference", "countries", "--output", "yaml")
	require.NoError(t, err, "Failed to list countries: %s", stderr)
	AssertYAMLOutput(t, stdout)

	_, stderr, err = runner.Run("stocks", "list", "--page", "1", "--page-size", "5")
	require.NoError(t, err, "Failed to list stock: %s", stderr)

	// Logout removes the stored token
	_, stderr, err = runner.Run("logout")
	require.NoError(t, err, "Failed to log out: %s", stderr)

	state, err = os.ReadFile(runner.StateFile())
	require.NoError(t, err)
	assert.NotContains(t, string(state), "token:")

	_, _, err = runner.Run("logout")
	assert.Error(t, err)
}

// TestProductWorkflow creates, reads, updates and deletes a product.
func TestProductWorkflow(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	runner := NewCommandRunner(config, t)
	require.NoError(t, runner.Login())

	name := GenerateTestName("workflow-product")
	payload := runner.WriteFile("product.yml", fmt.Sprintf("name: %s\nskus:\n  - code: %s-1\n", name, name))

	// 1. Create
	stdout, stderr, err := runner.Run("products", "create", "--file", payload, "--output", "json")
	require.NoError(t, err, "Failed to create product: %s", stderr)

	envelope := ParseEnvelope(t, stdout)
	assert.Equal(t, true, envelope["success"])

	data, ok := envelope["data"].(map[string]interface{})
	require.True(t, ok, "create returned no data: %s", stdout)

	id := fmt.Sprint(data["id"])

	defer func() {
		_, _, _ = runner.Run("products", "delete", id)
	}()

	// 2. Get
	stdout, stderr, err = runner.Run("products", "get", id, "--output", "json")
	require.NoError(t, err, "Failed to get product: %s", stderr)
	assert.Contains(t, stdout, name)

	// 3. Update
	update := runner.WriteFile("update.json", fmt.Sprintf(`{"name":"%s-renamed"}`, name))

	_, stderr, err = runner.Run("products", "update", id, "--file", update)
	require.NoError(t, err, "Failed to update product: %s", stderr)

	// 4. List with a filter
	stdout, stderr, err = runner.Run("products", "list", "--filter", "name="+name+"-renamed")
	require.NoError(t, err, "Failed to list products: %s", stderr)
	assert.Contains(t, stdout, name)

	// 5. Delete
	_, stderr, err = runner.Run("products", "delete", id)
	require.NoError(t, err, "Failed to delete product: %s", stderr)
}

// TestOrderWorkflow creates an order, submits it and intercepts it.
func TestOrderWorkflow(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	sku := os.Getenv("WMS_TEST_SKU")
	if sku == "" {
		t.Skip("WMS_TEST_SKU not set, skipping order workflow")
	}

	runner := NewCommandRunner(config, t)
	require.NoError(t, runner.Login())

	reference := GenerateTestName("workflow-order")
	payload := runner.WriteFile("order.yml", fmt.Sprintf("reference: %s\nlines:\n  - sku: %s\n    quantity: 1\n", reference, sku))

	stdout, stderr, err := runner.Run("orders", "create", "--file", payload, "--output", "json")
	require.NoError(t, err, "Failed to create order: %s", stderr)

	data, ok := ParseEnvelope(t, stdout)["data"].(map[string]interface{})
	require.True(t, ok, "create returned no data: %s", stdout)

	id := fmt.Sprint(data["id"])

	for _, action := range []string{"submit", "intercept", "cancel-intercept"} {
		_, stderr, err = runner.Run("orders", action, id)
		require.NoError(t, err, "Failed to %s order: %s", action, stderr)
	}

	stdout, stderr, err = runner.Run("orders", "get", id, "--output", "json")
	require.NoError(t, err, "Failed to get order: %s", stderr)
	assert.Contains(t, stdout, reference)
}

// TestInvalidTokenIsRejected checks that a bad --token ends in a re-login
// prompt rather than a crash.
func TestInvalidTokenIsRejected(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	runner := NewCommandRunner(config, t)

	_, stderr, err := runner.Run("orders", "list", "--token", "invalid-token")
	require.Error(t, err)
	assert.NotEmpty(t, stderr)
}
