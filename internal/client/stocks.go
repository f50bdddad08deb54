package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/wms-client/internal/http"
	"github.com/fivetwenty-io/wms-client/pkg/wms"
)

// StocksClient implements wms.StocksClient.
type StocksClient struct {
	httpClient *http.Client
}

// NewStocksClient creates a new stocks client.
func NewStocksClient(httpClient *http.Client) *StocksClient {
	return &StocksClient{
		httpClient: httpClient,
	}
}

// List implements wms.StocksClient.List.
func (c *StocksClient) List(ctx context.Context, params *wms.QueryParams) (*wms.Envelope, error) {
	env, err := envelope(ctx, c.httpClient, call{op: wms.OpStockList, params: params})
	if err != nil {
		return env, fmt.Errorf("listing stocks: %w", err)
	}

	return env, nil
}

// Logs implements wms.StocksClient.Logs.
func (c *StocksClient) Logs(ctx context.Context, params *wms.QueryParams) (*wms.Envelope, error) {
	env, err := envelope(ctx, c.httpClient, call{op: wms.OpStockLogs, params: params})
	if err != nil {
		return env, fmt.Errorf("listing stock logs: %w", err)
	}

	return env, nil
}
