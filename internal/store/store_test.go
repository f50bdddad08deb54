package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/wms-client/internal/store"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	seed := map[string]string{"warehouse_id": "9"}
	mem := store.NewMemoryStore(seed)

	seed["warehouse_id"] = "changed"

	value, ok := mem.Get("warehouse_id")
	assert.True(t, ok)
	assert.Equal(t, "9", value)

	require.NoError(t, mem.Set("token", "abc"))

	value, ok = mem.Get("token")
	assert.True(t, ok)
	assert.Equal(t, "abc", value)

	require.NoError(t, mem.Delete("token"))

	_, ok = mem.Get("token")
	assert.False(t, ok)
}

func TestFileStore_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "state.yml")

	fileStore, err := store.NewFileStore(path)
	require.NoError(t, err)

	_, ok := fileStore.Get("token")
	assert.False(t, ok)

	require.NoError(t, fileStore.Set("token", "abc"))
	require.NoError(t, fileStore.Set("warehouse_id", "12"))

	reopened, err := store.NewFileStore(path)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"token": "abc", "warehouse_id": "12"}, reopened.Values())

	require.NoError(t, reopened.Delete("token"))

	require.NoError(t, fileStore.Reload())

	_, ok = fileStore.Get("token")
	assert.False(t, ok)
}

func TestFileStore_Errors(t *testing.T) {
	t.Parallel()

	_, err := store.NewFileStore("")
	require.ErrorIs(t, err, store.ErrPathRequired)

	path := filepath.Join(t.TempDir(), "state.yml")
	require.NoError(t, os.WriteFile(path, []byte("token: [unterminated"), 0o600))

	_, err = store.NewFileStore(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing store file")
}

func TestFileStore_Watch(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.yml")

	fileStore, err := store.NewFileStore(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan error, 1)
	require.NoError(t, fileStore.Watch(ctx, func(err error) {
		select {
		case reloaded <- err:
		default:
		}
	}))

	require.NoError(t, os.WriteFile(path, []byte("token: from-elsewhere\n"), 0o600))

	assert.Eventually(t, func() bool {
		value, _ := fileStore.Get("token")

		return value == "from-elsewhere"
	}, 2*time.Second, 10*time.Millisecond)
}
