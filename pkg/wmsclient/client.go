// Package wmsclient provides the main entry point for creating warehouse API clients
package wmsclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/fivetwenty-io/wms-client/internal/client"
	"github.com/fivetwenty-io/wms-client/pkg/wms"
)

// Option configures the request pipeline built by New.
type Option = client.Option

// WithRegisterer records pipeline metrics on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return client.WithRegisterer(reg)
}

// WithHeaders adds static headers to every request.
func WithHeaders(headers map[string]string) Option {
	return client.WithHeaders(headers)
}

// WithHTTPClient replaces the net/http client beneath the transport.
func WithHTTPClient(httpClient *http.Client) Option {
	return client.WithHTTPClient(httpClient)
}

// New creates a new warehouse API client.
func New(ctx context.Context, config *wms.Config, opts ...Option) (wms.Client, error) {
	if config == nil {
		return nil, wms.ErrConfigRequired
	}

	if config.APIEndpoint == "" {
		return nil, wms.ErrAPIEndpointRequired
	}

	config.APIEndpoint = NormalizeEndpoint(config.APIEndpoint)

	client, err := client.New(ctx, config, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return client, nil
}

// NewWithEndpoint creates a client with only an API endpoint.
func NewWithEndpoint(ctx context.Context, endpoint string) (wms.Client, error) {
	return New(ctx, &wms.Config{
		APIEndpoint: endpoint,
	})
}

// NewWithToken creates a client whose session starts with token.
func NewWithToken(ctx context.Context, endpoint, token string) (wms.Client, error) {
	return New(ctx, &wms.Config{
		APIEndpoint: endpoint,
		AccessToken: token,
	})
}

// NormalizeEndpoint trims a trailing slash and defaults the scheme to https.
func NormalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSuffix(strings.TrimSpace(endpoint), "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}
