package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/wms-client/internal/http"
	"github.com/fivetwenty-io/wms-client/pkg/wms"
)

// ProductsClient implements wms.ProductsClient.
type ProductsClient struct {
	httpClient *http.Client
}

// NewProductsClient creates a new products client.
func NewProductsClient(httpClient *http.Client) *ProductsClient {
	return &ProductsClient{
		httpClient: httpClient,
	}
}

// Create implements wms.ProductsClient.Create.
func (c *ProductsClient) Create(ctx context.Context, payload wms.Payload) (*wms.Envelope, error) {
	env, err := envelope(ctx, c.httpClient, call{op: wms.OpProductCreate, body: payload})
	if err != nil {
		return env, fmt.Errorf("creating product: %w", err)
	}

	return env, nil
}

// Update implements wms.ProductsClient.Update.
func (c *ProductsClient) Update(ctx context.Context, id string, payload wms.Payload) (*wms.Envelope, error) {
	env, err := envelope(ctx, c.httpClient, call{op: wms.OpProductUpdate, id: id, body: payload})
	if err != nil {
		return env, fmt.Errorf("updating product: %w", err)
	}

	return env, nil
}

// Get implements wms.ProductsClient.Get.
func (c *ProductsClient) Get(ctx context.Context, id string) (*wms.Envelope, error) {
	env, err := envelope(ctx, c.httpClient, call{op: wms.OpProductGet, id: id})
	if err != nil {
		return env, fmt.Errorf("getting product: %w", err)
	}

	return env, nil
}

// Delete implements wms.ProductsClient.Delete.
func (c *ProductsClient) Delete(ctx context.Context, request *wms.IDsRequest) (*wms.Envelope, error) {
	if request == nil || len(request.IDs) == 0 {
		return nil, fmt.Errorf("deleting products: %w", wms.ErrIDRequired)
	}

	env, err := envelope(ctx, c.httpClient, call{op: wms.OpProductDelete, body: request})
	if err != nil {
		return env, fmt.Errorf("deleting products: %w", err)
	}

	return env, nil
}

// List implements wms.ProductsClient.List.
func (c *ProductsClient) List(ctx context.Context, params *wms.QueryParams) (*wms.Envelope, error) {
	env, err := envelope(ctx, c.httpClient, call{op: wms.OpProductList, params: params})
	if err != nil {
		return env, fmt.Errorf("listing products: %w", err)
	}

	return env, nil
}

// GenerateLabels implements wms.ProductsClient.GenerateLabels.
func (c *ProductsClient) GenerateLabels(ctx context.Context, payload wms.Payload) (*wms.Binary, error) {
	label, err := binary(ctx, c.httpClient, call{op: wms.OpProductLabels, body: payload})
	if err != nil {
		return nil, fmt.Errorf("generating product labels: %w", err)
	}

	return label, nil
}
