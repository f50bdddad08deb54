package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/wms-client/pkg/wms"
)

func TestRenderEnvelope(t *testing.T) {
	t.Parallel()

	env := &wms.Envelope{
		Success: true,
		Message: "OK",
		Data:    json.RawMessage(`[{"id":1,"name":"Mug","active":true},{"id":2,"name":"Plate","tags":["a"]}]`),
	}

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		require.NoError(t, renderEnvelope(&out, env, OutputFormatJSON))

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
		assert.Equal(t, true, decoded["success"])
		assert.Equal(t, "OK", decoded["message"])
		assert.Len(t, decoded["data"], 2)
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		require.NoError(t, renderEnvelope(&out, env, OutputFormatYAML))
		assert.Contains(t, out.String(), "success: true")
		assert.Contains(t, out.String(), "name: Mug")
	})

	t.Run("table of rows", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		require.NoError(t, renderEnvelope(&out, env, OutputFormatTable))

		text := out.String()
		assert.Contains(t, text, "Mug")
		assert.Contains(t, text, "Plate")
		assert.Contains(t, text, `["a"]`)
		assert.Contains(t, strings.ToUpper(text), "NAME")
	})

	t.Run("table of one object", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		require.NoError(t, renderEnvelope(&out, &wms.Envelope{
			Success: true,
			Data:    json.RawMessage(`{"warehouse_id":5,"status":"draft"}`),
		}, OutputFormatTable))

		assert.Contains(t, out.String(), "Warehouse Id")
		assert.Contains(t, out.String(), "draft")
	})

	t.Run("paginated list", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		require.NoError(t, renderEnvelope(&out, &wms.Envelope{
			Success: true,
			Data:    json.RawMessage(`{"list":[{"code":"MUG-1"}],"total":1}`),
		}, OutputFormatTable))

		assert.Contains(t, out.String(), "MUG-1")
		assert.NotContains(t, out.String(), "Total")
	})

	t.Run("empty list", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		require.NoError(t, renderEnvelope(&out, &wms.Envelope{Success: true, Data: json.RawMessage(`[]`)}, OutputFormatTable))
		assert.Equal(t, "No results found\n", out.String())
	})

	t.Run("no data", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		require.NoError(t, renderEnvelope(&out, &wms.Envelope{Success: true}, OutputFormatTable))
		assert.Equal(t, "No data\n", out.String())
	})
}

func TestBinaryPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		binary   *wms.Binary
		out      string
		expected string
	}{
		{
			name:     "explicit out",
			binary:   &wms.Binary{Filename: "report", ContentType: "application/pdf"},
			out:      "labels/box.pdf",
			expected: filepath.Join("labels", "box.pdf"),
		},
		{
			name:     "server filename with extension from content type",
			binary:   &wms.Binary{Filename: "report", ContentType: "application/pdf"},
			expected: "report.pdf",
		},
		{
			name:     "unknown content type",
			binary:   &wms.Binary{Filename: "report"},
			expected: "report",
		},
		{
			name:     "no filename",
			binary:   &wms.Binary{},
			expected: defaultDownloadName,
		},
		{
			name:     "server filename cannot escape the working directory",
			binary:   &wms.Binary{Filename: "../../etc/passwd"},
			expected: "passwd",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, binaryPath(testCase.binary, testCase.out))
		})
	}
}

func TestWriteBinary(t *testing.T) {
	t.Parallel()

	target := filepath.Join(t.TempDir(), "labels.pdf")

	written, err := writeBinary(&wms.Binary{Data: []byte("%PDF"), Filename: "labels"}, target)
	require.NoError(t, err)
	assert.Equal(t, target, written)

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(content))
}
