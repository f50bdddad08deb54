package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/wms-client/internal/http"
	"github.com/fivetwenty-io/wms-client/pkg/wms"
)

// InboundClient implements wms.InboundClient.
type InboundClient struct {
	httpClient *http.Client
}

// NewInboundClient creates a new inbound shipments client.
func NewInboundClient(httpClient *http.Client) *InboundClient {
	return &InboundClient{
		httpClient: httpClient,
	}
}

// Create implements wms.InboundClient.Create.
func (c *InboundClient) Create(ctx context.Context, payload wms.Payload) (*wms.Envelope, error) {
	env, err := envelope(ctx, c.httpClient, call{op: wms.OpInboundCreate, body: payload})
	if err != nil {
		return env, fmt.Errorf("creating inbound shipment: %w", err)
	}

	return env, nil
}

// List implements wms.InboundClient.List.
func (c *InboundClient) List(ctx context.Context, params *wms.QueryParams) (*wms.Envelope, error) {
	env, err := envelope(ctx, c.httpClient, call{op: wms.OpInboundList, params: params})
	if err != nil {
		return env, fmt.Errorf("listing inbound shipments: %w", err)
	}

	return env, nil
}

// Submit implements wms.InboundClient.Submit.
func (c *InboundClient) Submit(ctx context.Context, id string) (*wms.Envelope, error) {
	env, err := envelope(ctx, c.httpClient, call{op: wms.OpInboundSubmit, id: id})
	if err != nil {
		return env, fmt.Errorf("submitting inbound shipment: %w", err)
	}

	return env, nil
}

// Get implements wms.InboundClient.Get.
func (c *InboundClient) Get(ctx context.Context, id string) (*wms.Envelope, error) {
	env, err := envelope(ctx, c.httpClient, call{op: wms.OpInboundGet, id: id})
	if err != nil {
		return env, fmt.Errorf("getting inbound shipment: %w", err)
	}

	return env, nil
}

// Update implements wms.InboundClient.Update.
func (c *InboundClient) Update(ctx context.Context, id string, payload wms.Payload) (*wms.Envelope, error) {
	env, err := envelope(ctx, c.httpClient, call{op: wms.OpInboundUpdate, id: id, body: payload})
	if err != nil {
		return env, fmt.Errorf("updating inbound shipment: %w", err)
	}

	return env, nil
}

// Ship implements wms.InboundClient.Ship.
func (c *InboundClient) Ship(ctx context.Context, id string) (*wms.Envelope, error) {
	env, err := envelope(ctx, c.httpClient, call{op: wms.OpInboundShip, id: id})
	if err != nil {
		return env, fmt.Errorf("shipping inbound shipment: %w", err)
	}

	return env, nil
}

// Delete implements wms.InboundClient.Delete.
func (c *InboundClient) Delete(ctx context.Context, id string) (*wms.Envelope, error) {
	env, err := envelope(ctx, c.httpClient, call{op: wms.OpInboundDelete, id: id})
	if err != nil {
		return env, fmt.Errorf("deleting inbound shipment: %w", err)
	}

	return env, nil
}

// BoxLabel implements wms.InboundClient.BoxLabel.
func (c *InboundClient) BoxLabel(ctx context.Context, id string, payload wms.Payload) (*wms.Binary, error) {
	label, err := binary(ctx, c.httpClient, call{op: wms.OpInboundBoxLabel, id: id, body: payload})
	if err != nil {
		return nil, fmt.Errorf("generating box label: %w", err)
	}

	return label, nil
}
