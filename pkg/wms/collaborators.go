package wms

import "context"

// SessionStore holds the process-wide session token.
//
// The pipeline reads the token for every request and destroys the session on
// HTTP 401 or an application-level "re-login required" code.
type SessionStore interface {
	Token() string
	SetToken(token string)
	Destroy()
	Destroyed() bool
}

// LoadTracker counts in-flight requests and owns the global loading flag.
//
// Begin increments the counter and sets loading. End decrements it and reports
// whether the counter returned to zero (loading is cleared in that case).
// Reset abandons all in-flight accounting. The counter is never negative.
type LoadTracker interface {
	Begin() int
	End() bool
	Reset()
	InFlight() int
	Loading() bool
}

// LocalStore is durable client-side storage, independent of the session.
type LocalStore interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// Severity of a user-facing notification.
type Severity string

const (
	SeverityPositive Severity = "positive"
	SeverityNegative Severity = "negative"
)

// Notification is a transient user-facing message.
type Notification struct {
	Message   string   `json:"message"`
	Severity  Severity `json:"severity"`
	Method    string   `json:"method,omitempty"`
	Path      string   `json:"path,omitempty"`
	RequestID string   `json:"request_id,omitempty"`
}

// Notifier displays notifications. Implementations must be safe for
// concurrent use.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ctx context.Context, n Notification)

// Notify implements Notifier.
func (f NotifierFunc) Notify(ctx context.Context, n Notification) {
	f(ctx, n)
}

// ProgressIndicator is a visual busy indicator.
type ProgressIndicator interface {
	Start()
	Inc()
	Done()
}

// NopProgress is a ProgressIndicator that does nothing.
type NopProgress struct{}

func (NopProgress) Start() {}
func (NopProgress) Inc()   {}
func (NopProgress) Done()  {}
