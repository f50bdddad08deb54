package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/wms-client/internal/constants"
	"github.com/fivetwenty-io/wms-client/pkg/wms"
)

// Common string constants used throughout the commands package.
const (
	// Output formats.
	OutputFormatJSON  = constants.FormatJSON
	OutputFormatYAML  = constants.FormatYAML
	OutputFormatTable = constants.FormatTable

	// JSON formatting.
	defaultJSONIndent = 2

	// Flag names shared by several commands.
	flagFile     = "file"
	flagOut      = "out"
	flagFilter   = "filter"
	flagPage     = "page"
	flagPageSize = "page-size"

	defaultDownloadName = "download"
)

// Common static errors used throughout the commands package.
var (
	ErrInvalidFilter = errors.New("filter must be in key=value format")
	ErrInvalidID     = errors.New("ID must be a positive integer")
	ErrEmptyPayload  = errors.New("payload file is empty")
)

// OutputRenderer handles different output formats.
type OutputRenderer[T any] struct {
	RenderJSON  func(data T) error
	RenderYAML  func(data T) error
	RenderTable func(data T) error
}

// Render outputs data in the specified format.
func (o *OutputRenderer[T]) Render(data T, format string) error {
	switch format {
	case OutputFormatJSON:
		return o.RenderJSON(data)
	case OutputFormatYAML:
		return o.RenderYAML(data)
	default:
		return o.RenderTable(data)
	}
}

// StandardJSONRenderer writes data as indented JSON.
func StandardJSONRenderer[T any](w io.Writer, data T) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer writes data as YAML.
func StandardYAMLRenderer[T any](w io.Writer, data T) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(defaultJSONIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return encoder.Close()
}

// readPayload loads a write payload from a JSON or YAML file.
func readPayload(path string) (wms.Payload, error) {
	if path == "" {
		return nil, constants.ErrPayloadFileRequired
	}

	if strings.Contains(path, "..") {
		return nil, constants.ErrDirectoryTraversalDetected
	}

	cleanPath := filepath.Clean(path)

	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("reading payload file: %w", err)
	}

	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", cleanPath, constants.ErrNotRegularFile)
	}

	// #nosec G304 -- path is cleaned and checked for traversal above
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("reading payload file: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%s: %w", cleanPath, ErrEmptyPayload)
	}

	var payload wms.Payload

	switch strings.ToLower(filepath.Ext(cleanPath)) {
	case ".json":
		err = json.Unmarshal(data, &payload)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &payload)
	default:
		return nil, constants.ErrUnsupportedPayloadFormat
	}

	if err != nil {
		return nil, fmt.Errorf("parsing payload file %s: %w", cleanPath, err)
	}

	return payload, nil
}

// parseIDs converts positional arguments into numeric ids.
func parseIDs(args []string) ([]int64, error) {
	if len(args) == 0 {
		return nil, constants.ErrAtLeastOneIDRequired
	}

	ids := make([]int64, 0, len(args))

	for _, arg := range args {
		id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("%q: %w", arg, ErrInvalidID)
		}

		ids = append(ids, id)
	}

	return ids, nil
}

// buildQuery turns --filter, --page and --page-size into query parameters.
func buildQuery(filters []string, page, pageSize int) (*wms.QueryParams, error) {
	params := wms.NewQueryParams()

	for _, filter := range filters {
		key, value, found := strings.Cut(filter, "=")
		if !found || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("%q: %w", filter, ErrInvalidFilter)
		}

		params.Add(strings.TrimSpace(key), value)
	}

	if page > 0 {
		params.WithPage(page)
	}

	if pageSize > 0 {
		params.WithPageSize(pageSize)
	}

	return params, nil
}

// addQueryFlags registers the retrieval flags used by list commands.
func addQueryFlags(cmd *cobra.Command) {
	cmd.Flags().StringArray(flagFilter, nil, "filter as key=value (repeatable)")
	cmd.Flags().Int(flagPage, 0, "page number")
	cmd.Flags().Int(flagPageSize, 0, "page size")
}

// queryFromFlags reads the flags registered by addQueryFlags.
func queryFromFlags(cmd *cobra.Command) (*wms.QueryParams, error) {
	filters, _ := cmd.Flags().GetStringArray(flagFilter)
	page, _ := cmd.Flags().GetInt(flagPage)
	pageSize, _ := cmd.Flags().GetInt(flagPageSize)

	return buildQuery(filters, page, pageSize)
}

// payloadFromFlags reads the --file payload of a write command.
func payloadFromFlags(cmd *cobra.Command) (wms.Payload, error) {
	path, _ := cmd.Flags().GetString(flagFile)

	return readPayload(path)
}
