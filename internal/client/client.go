package client

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/fivetwenty-io/wms-client/internal/constants"
	internalhttp "github.com/fivetwenty-io/wms-client/internal/http"
	"github.com/fivetwenty-io/wms-client/internal/metrics"
	"github.com/fivetwenty-io/wms-client/internal/notify"
	"github.com/fivetwenty-io/wms-client/internal/session"
	"github.com/fivetwenty-io/wms-client/internal/store"
	"github.com/fivetwenty-io/wms-client/pkg/wms"
)

// Client implements the wms.Client interface.
type Client struct {
	httpClient *internalhttp.Client
	baseURL    string
	logger     wms.Logger

	session  wms.SessionStore
	tracker  wms.LoadTracker
	storage  wms.LocalStore
	notifier wms.Notifier
	progress wms.ProgressIndicator

	// Resource clients
	auth      wms.AuthClient
	uploads   wms.UploadsClient
	reference wms.ReferenceClient
	products  wms.ProductsClient
	skus      wms.SKUsClient
	inbound   wms.InboundClient
	stocks    wms.StocksClient
	orders    wms.OrdersClient
}

type options struct {
	registerer prometheus.Registerer
	headers    map[string]string
	httpClient *http.Client
}

// Option configures the pipeline built by New.
type Option func(*options)

// WithRegisterer records pipeline metrics on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = reg
	}
}

// WithHeaders adds static headers to every request.
func WithHeaders(headers map[string]string) Option {
	return func(o *options) {
		o.headers = headers
	}
}

// WithHTTPClient replaces the net/http client beneath the transport.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *options) {
		o.httpClient = httpClient
	}
}

// New creates a client from config. Collaborators left nil in config are
// replaced by in-memory defaults.
func New(ctx context.Context, config *wms.Config, opts ...Option) (*Client, error) {
	if config == nil {
		return nil, wms.ErrConfigRequired
	}

	if config.APIEndpoint == "" {
		return nil, wms.ErrAPIEndpointRequired
	}

	settings := &options{}
	for _, opt := range opts {
		opt(settings)
	}

	client := &Client{
		baseURL: config.APIEndpoint,
		logger:  config.Logger,
	}
	client.applyDefaults(config)

	var collector *metrics.Collector
	if settings.registerer != nil {
		collector = metrics.NewCollector(settings.registerer)
		client.notifier = collector.Notifier(client.notifier)

		if state, ok := client.tracker.(*session.State); ok {
			state.OnChange(collector.ObserveSession)
		}
	}

	chain := client.buildChain(collector, settings.headers)
	client.httpClient = internalhttp.NewClient(config.APIEndpoint, chain, createHTTPClientOptions(config, settings)...)

	client.initializeResourceClients()

	return client, nil
}

func (c *Client) applyDefaults(config *wms.Config) {
	state := session.New(config.AccessToken)

	c.session = config.Session
	if c.session == nil {
		c.session = state
	}

	c.tracker = config.Tracker
	if c.tracker == nil {
		if tracker, ok := c.session.(wms.LoadTracker); ok {
			c.tracker = tracker
		} else {
			c.tracker = state
		}
	}

	c.storage = config.Storage
	if c.storage == nil {
		c.storage = store.NewMemoryStore(nil)
	}

	if config.WarehouseID != "" {
		if _, ok := c.storage.Get(constants.StorageKeyWarehouseID); !ok {
			_ = c.storage.Set(constants.StorageKeyWarehouseID, config.WarehouseID)
		}
	}

	c.notifier = config.Notifier
	if c.notifier == nil {
		if config.Logger != nil {
			c.notifier = notify.NewLogger(config.Logger)
		} else {
			c.notifier = notify.Discard{}
		}
	}

	c.progress = config.Progress
	if c.progress == nil {
		c.progress = wms.NopProgress{}
	}
}

// buildChain installs the stock interceptors in pipeline order.
func (c *Client) buildChain(collector *metrics.Collector, headers map[string]string) *wms.InterceptorChain {
	chain := wms.NewInterceptorChain()

	chain.AddRequestInterceptor(wms.ProgressRequestInterceptor(c.progress, c.tracker))
	chain.AddRequestInterceptor(wms.AuthenticationInterceptor(wms.LocalTokenProvider(c.storage, c.session)))
	chain.AddRequestInterceptor(wms.WarehouseInterceptor(c.storage))
	chain.AddRequestInterceptor(wms.AcceptInterceptor())

	if len(headers) > 0 {
		chain.AddRequestInterceptor(wms.HeaderInterceptor(headers))
	}

	chain.AddRequestInterceptor(wms.RequestIDInterceptor())

	if c.logger != nil {
		chain.AddRequestInterceptor(wms.LoggingInterceptor(c.logger))
	}

	if collector != nil {
		chain.AddRequestInterceptor(collector.RequestInterceptor())
	}

	chain.AddRequestErrorInterceptor(wms.SetupFailureInterceptor(c.notifier, c.tracker, c.progress))

	chain.AddResponseInterceptor(wms.EnvelopeResponseInterceptor(c.tracker, c.progress, c.session, c.notifier))
	chain.AddResponseInterceptor(wms.FailureResponseInterceptor(c.tracker, c.progress, c.session, c.notifier))

	if c.logger != nil {
		chain.AddResponseInterceptor(wms.LoggingResponseInterceptor(c.logger))
	}

	if collector != nil {
		chain.AddResponseInterceptor(collector.ResponseInterceptor())
	}

	return chain
}

func createHTTPClientOptions(config *wms.Config, settings *options) []internalhttp.Option {
	var httpOpts []internalhttp.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, internalhttp.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, internalhttp.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, internalhttp.WithUserAgent(config.UserAgent))
	}

	if settings.httpClient != nil {
		httpOpts = append(httpOpts, internalhttp.WithHTTPClient(settings.httpClient))
	}

	// Applied last so it also bounds a caller-supplied net/http client.
	if config.Timeout > 0 {
		httpOpts = append(httpOpts, internalhttp.WithTimeout(config.Timeout))
	}

	return httpOpts
}

func (c *Client) initializeResourceClients() {
	c.auth = NewAuthClient(c.httpClient, c.session)
	c.uploads = NewUploadsClient(c.httpClient)
	c.reference = NewReferenceClient(c.httpClient)
	c.products = NewProductsClient(c.httpClient)
	c.skus = NewSKUsClient(c.httpClient)
	c.inbound = NewInboundClient(c.httpClient)
	c.stocks = NewStocksClient(c.httpClient)
	c.orders = NewOrdersClient(c.httpClient)
}

// Auth implements wms.Client.Auth.
func (c *Client) Auth() wms.AuthClient {
	return c.auth
}

// Uploads implements wms.Client.Uploads.
func (c *Client) Uploads() wms.UploadsClient {
	return c.uploads
}

// Reference implements wms.Client.Reference.
func (c *Client) Reference() wms.ReferenceClient {
	return c.reference
}

// Products implements wms.Client.Products.
func (c *Client) Products() wms.ProductsClient {
	return c.products
}

// SKUs implements wms.Client.SKUs.
func (c *Client) SKUs() wms.SKUsClient {
	return c.skus
}

// Inbound implements wms.Client.Inbound.
func (c *Client) Inbound() wms.InboundClient {
	return c.inbound
}

// Stocks implements wms.Client.Stocks.
func (c *Client) Stocks() wms.StocksClient {
	return c.stocks
}

// Orders implements wms.Client.Orders.
func (c *Client) Orders() wms.OrdersClient {
	return c.orders
}

// Session implements wms.Client.Session.
func (c *Client) Session() wms.SessionStore {
	return c.session
}

// Tracker returns the in-flight accounting shared by every call.
func (c *Client) Tracker() wms.LoadTracker {
	return c.tracker
}

// Storage returns the client-side storage consulted before every request.
func (c *Client) Storage() wms.LocalStore {
	return c.storage
}
