package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/wms-client/internal/logging"
	"github.com/fivetwenty-io/wms-client/pkg/wms"
)

var _ wms.Logger = (*logging.Logger)(nil)

func TestLogger_Levels(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logging.New(zerolog.New(&buf).Level(zerolog.InfoLevel))

	logger.Debug("hidden", nil)
	logger.Info("API Request", map[string]interface{}{"method": "GET", "path": "products"})
	logger.Error("API Response Error", map[string]interface{}{"status_code": 500})

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var first map[string]interface{}

	require.NoError(t, json.Unmarshal(lines[0], &first))
	assert.Equal(t, "info", first["level"])
	assert.Equal(t, "API Request", first["message"])
	assert.Equal(t, "products", first["path"])

	var second map[string]interface{}

	require.NoError(t, json.Unmarshal(lines[1], &second))
	assert.Equal(t, "error", second["level"])
	assert.InDelta(t, 500, second["status_code"], 0)
}

func TestLogger_Nop(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		logging.Nop().Warn("ignored", map[string]interface{}{"k": "v"})
	})
}
