//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	APIEndpoint string
	Username    string
	Password    string
	WarehouseID string
	WMSPath     string
	Verbose     bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIEndpoint: os.Getenv("WMS_TEST_API"),
		Username:    os.Getenv("WMS_TEST_USERNAME"),
		Password:    os.Getenv("WMS_TEST_PASSWORD"),
		WarehouseID: os.Getenv("WMS_TEST_WAREHOUSE"),
		WMSPath:     getWMSPath(),
		Verbose:     os.Getenv("WMS_TEST_VERBOSE") == "true",
	}
}

// getWMSPath determines the path to the wms binary
func getWMSPath() string {
	if path := os.Getenv("WMS_BINARY_PATH"); path != "" {
		return path
	}

	// Try common locations
	candidates := []string{
		"../../wms",
		"./wms",
		"../wms",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "wms" // Fallback to PATH
}

// SkipIfMissingConfig skips test if required config is missing
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.APIEndpoint == "" || config.Username == "" {
		t.Skip("WMS_TEST_API or WMS_TEST_USERNAME not set, skipping integration test")
	}

	if _, err := exec.LookPath(config.WMSPath); err != nil {
		t.Skipf("wms binary not found at %s, skipping integration test", config.WMSPath)
	}
}

// CommandRunner runs the wms binary with an isolated home directory so the
// state file of one test never leaks into another.
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
	home   string
}

// NewCommandRunner creates a new command runner
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	t.Helper()

	return &CommandRunner{
		config: config,
		t:      t,
		home:   t.TempDir(),
	}
}

// StateFile returns the state file used by the runner's commands.
func (runner *CommandRunner) StateFile() string {
	return filepath.Join(runner.home, ".wms", "state.yml")
}

// Run executes a wms command and returns output
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	return runner.RunWithInput("", args...)
}

// RunWithInput executes a wms command with stdin input
func (runner *CommandRunner) RunWithInput(input string, args ...string) (stdout, stderr string, err error) {
	// #nosec G204 -- the binary path comes from the test environment
	cmd := exec.Command(runner.config.WMSPath, args...)
	cmd.Env = append(os.Environ(),
		"HOME="+runner.home,
		"WMS_API="+runner.config.APIEndpoint,
	)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	cmd.Stdin = strings.NewReader(input)

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.WMSPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// Login authenticates with the configured credentials.
func (runner *CommandRunner) Login() error {
	_, stderr, err := runner.RunWithInput(runner.config.Password+"\n", "login", "--username", runner.config.Username)
	if err != nil {
		return fmt.Errorf("failed to log in: %s", stderr)
	}

	if runner.config.WarehouseID != "" {
		_, stderr, err = runner.Run("warehouse", runner.config.WarehouseID)
		if err != nil {
			return fmt.Errorf("failed to select warehouse: %s", stderr)
		}
	}

	return nil
}

// WriteFile writes a payload file into the runner's home directory.
func (runner *CommandRunner) WriteFile(name, content string) string {
	runner.t.Helper()

	path := filepath.Join(runner.home, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		runner.t.Fatalf("writing %s: %v", name, err)
	}

	return path
}

// GenerateTestName creates a unique test resource name
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

// ParseEnvelope decodes JSON command output.
func ParseEnvelope(t *testing.T, output string) map[string]interface{} {
	t.Helper()

	var envelope map[string]interface{}
	if err := json.Unmarshal([]byte(output), &envelope); err != nil {
		t.Fatalf("Output is not a JSON envelope: %v\n%s", err, output)
	}

	return envelope
}

// AssertJSONOutput verifies command output is valid JSON
func AssertJSONOutput(t *testing.T, output string) {
	t.Helper()

	if !json.Valid([]byte(strings.TrimSpace(output))) {
		t.Errorf("Output does not appear to be JSON: %s", output)
	}
}

// AssertYAMLOutput verifies command output is valid YAML
func AssertYAMLOutput(t *testing.T, output string) {
	t.Helper()

	output = strings.TrimSpace(output)
	if strings.Contains(output, "---") || strings.Contains(output, ":") {
		return // Looks like YAML
	}

	t.Errorf("Output does not appear to be YAML: %s", output)
}
