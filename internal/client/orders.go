package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/wms-client/internal/http"
	"github.com/fivetwenty-io/wms-client/pkg/wms"
)

// OrdersClient implements wms.OrdersClient.
type OrdersClient struct {
	httpClient *http.Client
}

// NewOrdersClient creates a new outbound orders client.
func NewOrdersClient(httpClient *http.Client) *OrdersClient {
	return &OrdersClient{
		httpClient: httpClient,
	}
}

// Create implements wms.OrdersClient.Create.
func (c *OrdersClient) Create(ctx context.Context, payload wms.Payload) (*wms.Envelope, error) {
	env, err := envelope(ctx, c.httpClient, call{op: wms.OpOrderCreate, body: payload})
	if err != nil {
		return env, fmt.Errorf("creating order: %w", err)
	}

	return env, nil
}

// List implements wms.OrdersClient.List.
func (c *OrdersClient) List(ctx context.Context, params *wms.QueryParams) (*wms.Envelope, error) {
	env, err := envelope(ctx, c.httpClient, call{op: wms.OpOrderList, params: params})
	if err != nil {
		return env, fmt.Errorf("listing orders: %w", err)
	}

	return env, nil
}

// Submit implements wms.OrdersClient.Submit.
func (c *OrdersClient) Submit(ctx context.Context, id string) (*wms.Envelope, error) {
	return c.action(ctx, wms.OpOrderSubmit, id, "submitting order")
}

// Get implements wms.OrdersClient.Get.
func (c *OrdersClient) Get(ctx context.Context, id string) (*wms.Envelope, error) {
	return c.action(ctx, wms.OpOrderGet, id, "getting order")
}

// Delete implements wms.OrdersClient.Delete.
func (c *OrdersClient) Delete(ctx context.Context, id string) (*wms.Envelope, error) {
	return c.action(ctx, wms.OpOrderDelete, id, "deleting order")
}

// Intercept implements wms.OrdersClient.Intercept.
func (c *OrdersClient) Intercept(ctx context.Context, id string) (*wms.Envelope, error) {
	return c.action(ctx, wms.OpOrderIntercept, id, "intercepting order")
}

// CancelIntercept implements wms.OrdersClient.CancelIntercept.
func (c *OrdersClient) CancelIntercept(ctx context.Context, id string) (*wms.Envelope, error) {
	return c.action(ctx, wms.OpOrderCancelIntercept, id, "cancelling order intercept")
}

func (c *OrdersClient) action(ctx context.Context, op wms.Operation, id, verb string) (*wms.Envelope, error) {
	env, err := envelope(ctx, c.httpClient, call{op: op, id: id})
	if err != nil {
		return env, fmt.Errorf("%s: %w", verb, err)
	}

	return env, nil
}
