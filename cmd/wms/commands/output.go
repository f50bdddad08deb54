package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fivetwenty-io/wms-client/internal/constants"
	"github.com/fivetwenty-io/wms-client/pkg/wms"
)

// envelopeDocument is the json/yaml form of an envelope with its data
// decoded into plain values.
type envelopeDocument struct {
	Success bool        `json:"success"        yaml:"success"`
	Code    int         `json:"code"           yaml:"code"`
	Message string      `json:"message"        yaml:"message"`
	Data    interface{} `json:"data,omitempty" yaml:"data,omitempty"`
}

func newEnvelopeDocument(env *wms.Envelope) (*envelopeDocument, error) {
	data, err := wms.DecodeData[interface{}](env)
	if err != nil {
		return nil, err
	}

	return &envelopeDocument{
		Success: env.Success,
		Code:    env.Code,
		Message: env.Message,
		Data:    *data,
	}, nil
}

// renderEnvelope prints an envelope in the requested format. Tables show the
// data only; messages reach the user through notifications.
func renderEnvelope(w io.Writer, env *wms.Envelope, format string) error {
	if env == nil {
		return nil
	}

	doc, err := newEnvelopeDocument(env)
	if err != nil {
		return err
	}

	renderer := &OutputRenderer[*envelopeDocument]{
		RenderJSON: func(data *envelopeDocument) error {
			return StandardJSONRenderer(w, data)
		},
		RenderYAML: func(data *envelopeDocument) error {
			return StandardYAMLRenderer(w, data)
		},
		RenderTable: func(data *envelopeDocument) error {
			return renderDataTable(w, data.Data)
		},
	}

	return renderer.Render(doc, format)
}

// renderDataTable lays out decoded envelope data. Lists of objects become one
// row per item; a single object becomes a property/value table.
func renderDataTable(w io.Writer, data interface{}) error {
	switch value := data.(type) {
	case nil:
		_, _ = fmt.Fprintln(w, "No data")

		return nil
	case []interface{}:
		if len(value) == 0 {
			_, _ = fmt.Fprintln(w, "No results found")

			return nil
		}

		return renderRows(w, value)
	case map[string]interface{}:
		if rows, ok := listField(value); ok {
			return renderDataTable(w, rows)
		}

		return renderProperties(w, value)
	default:
		_, _ = fmt.Fprintln(w, formatCell(value))

		return nil
	}
}

// listField unwraps paginated payloads of the form {"list": [...], ...}.
func listField(obj map[string]interface{}) ([]interface{}, bool) {
	for _, key := range []string{"list", "items", "records"} {
		if rows, ok := obj[key].([]interface{}); ok {
			return rows, true
		}
	}

	return nil, false
}

func renderRows(w io.Writer, rows []interface{}) error {
	columns := columnsOf(rows)
	if len(columns) == 0 {
		table := tablewriter.NewWriter(w)
		table.Header("Value")

		for _, row := range rows {
			_ = table.Append(formatCell(row))
		}

		return renderTable(table)
	}

	table := tablewriter.NewWriter(w)
	table.Header(toCells(columns)...)

	for _, row := range rows {
		obj, _ := row.(map[string]interface{})

		cells := make([]interface{}, len(columns))
		for i, column := range columns {
			cells[i] = formatCell(obj[column])
		}

		_ = table.Append(cells...)
	}

	return renderTable(table)
}

func renderProperties(w io.Writer, obj map[string]interface{}) error {
	keys := make([]string, 0, len(obj))
	for key := range obj {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	title := cases.Title(language.English)

	table := tablewriter.NewWriter(w)
	table.Header("Property", "Value")

	for _, key := range keys {
		_ = table.Append(title.String(strings.ReplaceAll(key, "_", " ")), formatCell(obj[key]))
	}

	return renderTable(table)
}

func renderTable(table *tablewriter.Table) error {
	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// columnsOf returns the sorted union of keys over object rows, or nil when
// the rows are not objects.
func columnsOf(rows []interface{}) []string {
	seen := make(map[string]struct{})

	for _, row := range rows {
		obj, ok := row.(map[string]interface{})
		if !ok {
			return nil
		}

		for key := range obj {
			seen[key] = struct{}{}
		}
	}

	columns := make([]string, 0, len(seen))
	for key := range seen {
		columns = append(columns, key)
	}

	sort.Strings(columns)

	return columns
}

func formatCell(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return fmt.Sprintf("%v", v)
	case bool:
		if v {
			return constants.BooleanTrue
		}

		return constants.BooleanFalse
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}

		return string(encoded)
	}
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, value := range values {
		cells[i] = value
	}

	return cells
}

// binaryPath picks the output path of a download: out when set, otherwise
// the server filename with an extension guessed from the content type.
func binaryPath(bin *wms.Binary, out string) string {
	if out != "" {
		return filepath.Clean(out)
	}

	name := bin.Filename
	if name == "" {
		name = defaultDownloadName
	}

	mediaType, _, err := mime.ParseMediaType(bin.ContentType)
	if err == nil {
		extensions, _ := mime.ExtensionsByType(mediaType)
		if len(extensions) > 0 {
			name += extensions[0]
		}
	}

	return filepath.Base(name)
}

// writeBinary saves a download and returns the path written.
func writeBinary(bin *wms.Binary, out string) (string, error) {
	path := binaryPath(bin, out)

	err := os.WriteFile(path, bin.Data, constants.ConfigFilePerm)
	if err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	return path, nil
}
