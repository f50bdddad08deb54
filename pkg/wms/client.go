package wms

import (
	"time"
)

// Client provides access to every resource area of the warehouse API.
type Client interface {
	Auth() AuthClient
	Uploads() UploadsClient
	Reference() ReferenceClient
	Products() ProductsClient
	SKUs() SKUsClient
	Inbound() InboundClient
	Stocks() StocksClient
	Orders() OrdersClient

	// Session exposes the session state shared by every call made
	// through this client.
	Session() SessionStore
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a wms.Client.
//
// # Collaborators
//
// The request and response pipelines talk to four collaborators. Each can be
// supplied by the caller; wmsclient.New fills in defaults for the ones left
// nil:
//   - Session: token, destroyed flag, loading flag and in-flight counter.
//     Defaults to a fresh in-memory session.
//   - Storage: durable client-side storage consulted for the token and the
//     warehouse id before every request. Defaults to an in-memory store.
//   - Notifier: displays user-facing success and error messages. Defaults to
//     a notifier that writes to Logger (or discards when Logger is nil).
//   - Progress: busy indicator. Defaults to a no-op indicator.
//
// # Timeouts and retries
//
// Every request is bounded by Timeout (120s when zero). There is no retry:
// each failure is classified, reported once and returned to the caller.
type Config struct {
	// APIEndpoint: base URL of the warehouse API (e.g., "https://wms.example.com/api").
	// wmsclient.New trims a trailing slash and adds "https://" when no scheme is present.
	APIEndpoint string

	// AccessToken: optional initial session token.
	AccessToken string

	// WarehouseID: stored into Storage when Storage has no warehouse yet.
	WarehouseID string

	// Timeout: fixed overall per-request timeout.
	Timeout time.Duration
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
	// Debug: enables request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer and interceptors.
	Logger Logger

	Session  SessionStore
	Tracker  LoadTracker
	Storage  LocalStore
	Notifier Notifier
	Progress ProgressIndicator
}
