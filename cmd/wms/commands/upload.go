package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/wms-client/internal/constants"
	"github.com/fivetwenty-io/wms-client/pkg/wms"
)

// NewUploadCommand creates the upload command.
func NewUploadCommand() *cobra.Command {
	var (
		fieldName string
		fields    []string
	)

	cmd := &cobra.Command{
		Use:   "upload FILE",
		Short: "Upload a file",
		Long:  "Upload a file as multipart form data and print the stored file reference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := readUploadFile(args[0], fieldName, fields)
			if err != nil {
				return err
			}

			return runEnvelope(cmd, func(ctx context.Context, client wms.Client) (*wms.Envelope, error) {
				return client.Uploads().Upload(ctx, file)
			})
		},
	}

	cmd.Flags().StringVar(&fieldName, "field", "file", "form field name of the file part")
	cmd.Flags().StringArrayVar(&fields, "form", nil, "extra form field as key=value (repeatable)")

	return cmd
}

func readUploadFile(path, fieldName string, fields []string) (*wms.UploadFile, error) {
	if strings.Contains(path, "..") {
		return nil, constants.ErrDirectoryTraversalDetected
	}

	cleanPath := filepath.Clean(path)

	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("reading upload file: %w", err)
	}

	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", cleanPath, constants.ErrNotRegularFile)
	}

	// #nosec G304 -- path is cleaned and checked for traversal above
	content, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("reading upload file: %w", err)
	}

	extra := make(map[string]string, len(fields))

	for _, field := range fields {
		key, value, found := strings.Cut(field, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("%q: %w", field, ErrInvalidFilter)
		}

		extra[key] = value
	}

	return &wms.UploadFile{
		FieldName: fieldName,
		Name:      filepath.Base(cleanPath),
		Content:   content,
		Fields:    extra,
	}, nil
}
