package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration and state files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the fixed overall per-request timeout.
	DefaultHTTPTimeout = 120 * time.Second

	// ShortHTTPTimeout is used for quick operations such as NATS connects.
	ShortHTTPTimeout = 10 * time.Second
)

// Request headers set by the interceptor pipeline.
const (
	HeaderAuthorization = "Authorization"
	HeaderAccept        = "Accept"
	HeaderContentType   = "Content-Type"
	HeaderWarehouseID   = "X-Warehouse-Id"
	HeaderRequestID     = "X-Request-Id"
	HeaderUserAgent     = "User-Agent"
	HeaderDisposition   = "Content-Disposition"

	MediaTypeJSON = "application/json"

	BearerPrefix = "Bearer "
)

// Local storage keys read by the request pipeline.
const (
	// StorageKeyToken holds the persisted bearer token.
	StorageKeyToken = "token"

	// StorageKeyWarehouseID holds the selected warehouse.
	StorageKeyWarehouseID = "warehouse_id"

	// DefaultWarehouseID is sent when no warehouse has been selected.
	DefaultWarehouseID = "5"
)

// Application-level envelope codes.
const (
	// CodeReloginRequired signals an expired or invalid session.
	CodeReloginRequired = 1001
)

// User-facing notification messages.
const (
	MessageServiceError    = "Service Error"
	MessageRequestFailed   = "Request Failed"
	MessageReloginRequired = "Session expired, please log in again"
)

// HTTP status codes commonly used.
const (
	// HTTPStatusOK represents a successful HTTP response.
	HTTPStatusOK = 200

	// HTTPStatusUnauthorized triggers a session reset.
	HTTPStatusUnauthorized = 401

	// HTTPStatusInternalServerError represents server errors.
	HTTPStatusInternalServerError = 500
)

// Validation and limits.
const (
	// MinimumArgumentCount is the minimum number of command line arguments.
	MinimumArgumentCount = 2

	// MaxErrorBodyLog caps how much of a response body is logged.
	MaxErrorBodyLog = 512
)

// UI and display constants.
const (
	// CheckMarkSymbol is used to indicate success in terminal output.
	CheckMarkSymbol = "✓"

	// CrossMarkSymbol is used to indicate failures in terminal output.
	CrossMarkSymbol = "✗"

	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"
)

// Boolean string constants.
const (
	// BooleanTrue string representation.
	BooleanTrue = "true"

	// BooleanFalse string representation.
	BooleanFalse = "false"
)

// Format constants.
const (
	// FormatTable for table output format.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"
)

// Notification fan-out.
const (
	// DefaultNATSSubject is the subject notifications are published on.
	DefaultNATSSubject = "wms.notifications"
)

// Metrics.
const (
	// MetricsNamespace prefixes every collector.
	MetricsNamespace = "wms_client"
)
