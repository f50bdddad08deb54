package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/wms-client/internal/http"
	"github.com/fivetwenty-io/wms-client/pkg/wms"
)

// SKUsClient implements wms.SKUsClient.
type SKUsClient struct {
	httpClient *http.Client
}

// NewSKUsClient creates a new SKUs client.
func NewSKUsClient(httpClient *http.Client) *SKUsClient {
	return &SKUsClient{
		httpClient: httpClient,
	}
}

// Update implements wms.SKUsClient.Update.
func (c *SKUsClient) Update(ctx context.Context, id string, payload wms.Payload) (*wms.Envelope, error) {
	env, err := envelope(ctx, c.httpClient, call{op: wms.OpSKUUpdate, id: id, body: payload})
	if err != nil {
		return env, fmt.Errorf("updating SKU: %w", err)
	}

	return env, nil
}

// Get implements wms.SKUsClient.Get.
func (c *SKUsClient) Get(ctx context.Context, id string) (*wms.Envelope, error) {
	env, err := envelope(ctx, c.httpClient, call{op: wms.OpSKUGet, id: id})
	if err != nil {
		return env, fmt.Errorf("getting SKU: %w", err)
	}

	return env, nil
}

// Delete implements wms.SKUsClient.Delete.
func (c *SKUsClient) Delete(ctx context.Context, request *wms.IDsRequest) (*wms.Envelope, error) {
	if request == nil || len(request.IDs) == 0 {
		return nil, fmt.Errorf("deleting SKUs: %w", wms.ErrIDRequired)
	}

	env, err := envelope(ctx, c.httpClient, call{op: wms.OpSKUDelete, body: request})
	if err != nil {
		return env, fmt.Errorf("deleting SKUs: %w", err)
	}

	return env, nil
}

// List implements wms.SKUsClient.List.
func (c *SKUsClient) List(ctx context.Context, params *wms.QueryParams) (*wms.Envelope, error) {
	env, err := envelope(ctx, c.httpClient, call{op: wms.OpSKUList, params: params})
	if err != nil {
		return env, fmt.Errorf("listing SKUs: %w", err)
	}

	return env, nil
}
