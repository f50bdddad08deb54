package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/wms-client/internal/http"
	"github.com/fivetwenty-io/wms-client/pkg/wms"
)

// UploadsClient implements wms.UploadsClient.
type UploadsClient struct {
	httpClient *http.Client
}

// NewUploadsClient creates a new uploads client.
func NewUploadsClient(httpClient *http.Client) *UploadsClient {
	return &UploadsClient{
		httpClient: httpClient,
	}
}

// Upload implements wms.UploadsClient.Upload.
func (c *UploadsClient) Upload(ctx context.Context, file *wms.UploadFile) (*wms.Envelope, error) {
	if file == nil || file.Name == "" || len(file.Content) == 0 {
		return nil, wms.ErrUploadFileRequired
	}

	part := &wms.MultipartBody{
		FieldName: file.FieldName,
		FileName:  file.Name,
		Content:   file.Content,
		Fields:    file.Fields,
	}

	env, err := envelope(ctx, c.httpClient, call{op: wms.OpUpload, multipart: part})
	if err != nil {
		return env, fmt.Errorf("uploading %s: %w", file.Name, err)
	}

	return env, nil
}
