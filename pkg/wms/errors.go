package wms

import (
	"errors"
	"fmt"

	"github.com/fivetwenty-io/wms-client/internal/constants"
)

// ErrorKind classifies a failed call.
type ErrorKind string

const (
	// KindTransportSetup: the request could not be dispatched.
	KindTransportSetup ErrorKind = "transport_setup"
	// KindTransport: the request was dispatched but no response arrived.
	KindTransport ErrorKind = "transport"
	// KindReauthRequired: HTTP 401 or envelope code 1001.
	KindReauthRequired ErrorKind = "reauth_required"
	// KindServer: 5xx status.
	KindServer ErrorKind = "server_error"
	// KindClientProtocol: other non-2xx status or a malformed envelope.
	KindClientProtocol ErrorKind = "client_protocol_failure"
	// KindApplication: envelope success=false on a 2xx response.
	KindApplication ErrorKind = "application_failure"
)

// RequestError is returned for every failed call. It carries the server
// envelope when one could be decoded.
type RequestError struct {
	Kind       ErrorKind
	Method     string
	Path       string
	StatusCode int
	Code       int
	Message    string
	Envelope   *Envelope
	Err        error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}

	if e.StatusCode > 0 {
		return fmt.Sprintf("%s %s: %s: %s (status: %d)", e.Method, e.Path, e.Kind, msg, e.StatusCode)
	}

	return fmt.Sprintf("%s %s: %s: %s", e.Method, e.Path, e.Kind, msg)
}

// Unwrap returns the underlying cause.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrAPIEndpointRequired = errors.New("API endpoint is required")
	ErrIDRequired          = errors.New("resource ID is required")
	ErrUnknownOperation    = errors.New("unknown operation")
	ErrUnexpectedStatus    = errors.New("unexpected status code")
	ErrNotBinaryResponse   = errors.New("response is not a binary stream")
	ErrNoResponse          = errors.New("no response received")
	ErrUploadFileRequired  = errors.New("upload file name and content are required")
)

// KindForStatus classifies a failed call by its HTTP status; 0 means no
// response arrived.
func KindForStatus(status int) ErrorKind {
	switch {
	case status == 0:
		return KindTransport
	case status == constants.HTTPStatusUnauthorized:
		return KindReauthRequired
	case status >= constants.HTTPStatusInternalServerError:
		return KindServer
	default:
		return KindClientProtocol
	}
}

func kindOf(err error) (ErrorKind, bool) {
	reqErr := &RequestError{}
	if errors.As(err, &reqErr) {
		return reqErr.Kind, true
	}

	return "", false
}

// IsReauthRequired checks if the error requires the user to log in again.
func IsReauthRequired(err error) bool {
	kind, ok := kindOf(err)

	return ok && kind == KindReauthRequired
}

// IsServerError checks if the error is a 5xx failure.
func IsServerError(err error) bool {
	kind, ok := kindOf(err)

	return ok && kind == KindServer
}

// IsApplicationFailure checks if the backend rejected the call in its envelope.
func IsApplicationFailure(err error) bool {
	kind, ok := kindOf(err)

	return ok && kind == KindApplication
}

// IsTransportSetup checks if the request never left the client.
func IsTransportSetup(err error) bool {
	kind, ok := kindOf(err)

	return ok && kind == KindTransportSetup
}

// ErrorMessage returns the user-facing message of a failed call, falling
// back to the error text.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	reqErr := &RequestError{}
	if errors.As(err, &reqErr) && reqErr.Message != "" {
		return reqErr.Message
	}

	appErr := &AppError{}
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}

	return err.Error()
}
