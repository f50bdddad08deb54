package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/wms-client/internal/http"
	"github.com/fivetwenty-io/wms-client/pkg/wms"
)

// ReferenceClient implements wms.ReferenceClient.
type ReferenceClient struct {
	httpClient *http.Client
}

// NewReferenceClient creates a new reference data client.
func NewReferenceClient(httpClient *http.Client) *ReferenceClient {
	return &ReferenceClient{
		httpClient: httpClient,
	}
}

// CustomsTypes implements wms.ReferenceClient.CustomsTypes.
func (c *ReferenceClient) CustomsTypes(ctx context.Context) (*wms.Envelope, error) {
	return c.list(ctx, wms.OpCustomsTypes, nil)
}

// Currencies implements wms.ReferenceClient.Currencies.
func (c *ReferenceClient) Currencies(ctx context.Context) (*wms.Envelope, error) {
	return c.list(ctx, wms.OpCurrencies, nil)
}

// Countries implements wms.ReferenceClient.Countries.
func (c *ReferenceClient) Countries(ctx context.Context, params *wms.QueryParams) (*wms.Envelope, error) {
	return c.list(ctx, wms.OpCountries, params)
}

// ArrivalMethods implements wms.ReferenceClient.ArrivalMethods.
func (c *ReferenceClient) ArrivalMethods(ctx context.Context, params *wms.QueryParams) (*wms.Envelope, error) {
	return c.list(ctx, wms.OpArrivalMethods, params)
}

func (c *ReferenceClient) list(ctx context.Context, op wms.Operation, params *wms.QueryParams) (*wms.Envelope, error) {
	env, err := envelope(ctx, c.httpClient, call{op: op, params: params})
	if err != nil {
		return env, fmt.Errorf("listing %s: %w", op, err)
	}

	return env, nil
}
