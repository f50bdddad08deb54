package wms

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/fivetwenty-io/wms-client/internal/constants"
)

// ResponseType is the response-type hint attached to a request.
type ResponseType string

const (
	ResponseTypeJSON   ResponseType = "json"
	ResponseTypeBinary ResponseType = "binary-stream"
)

// Request metadata keys.
const (
	// MetadataOperation holds the catalog operation of the call.
	MetadataOperation = "operation"
	// MetadataStartTime holds the dispatch time.
	MetadataStartTime = "start_time"

	metadataInFlight = "in_flight"
)

// MultipartBody is a single-file multipart/form-data payload.
type MultipartBody struct {
	FieldName string
	FileName  string
	Content   []byte
	Fields    map[string]string
}

// Request represents an HTTP request that can be intercepted.
type Request struct {
	Method       string
	Path         string
	Query        url.Values
	Headers      http.Header
	Body         interface{}
	Multipart    *MultipartBody
	ResponseType ResponseType
	Metadata     map[string]interface{}
}

// IsRead reports whether the request uses a retrieval method.
func (r *Request) IsRead() bool {
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	default:
		return false
	}
}

// Operation returns the catalog operation recorded in the metadata.
func (r *Request) Operation() Operation {
	op, _ := r.Metadata[MetadataOperation].(Operation)

	return op
}

// RequestID returns the correlation id assigned by RequestIDInterceptor.
func (r *Request) RequestID() string {
	if r.Headers == nil {
		return ""
	}

	return r.Headers.Get(constants.HeaderRequestID)
}

func (r *Request) setMetadata(key string, value interface{}) {
	if r.Metadata == nil {
		r.Metadata = make(map[string]interface{})
	}

	r.Metadata[key] = value
}

// Response represents an HTTP response that can be intercepted.
//
// Failure is set by the transport when the call did not produce a 2xx
// response with a decodable body. Error is the classified outcome returned to
// the caller; response interceptors set it.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	Envelope   *Envelope
	Binary     *Binary
	Failure    error
	Error      error
}

// RequestInterceptor is called before a request is sent.
type RequestInterceptor func(ctx context.Context, req *Request) error

// RequestErrorInterceptor is called when a request could not be dispatched.
// It returns the error to propagate.
type RequestErrorInterceptor func(ctx context.Context, req *Request, err error) error

// ResponseInterceptor is called after a response is received or the
// transport failed.
type ResponseInterceptor func(ctx context.Context, req *Request, resp *Response) error

// InterceptorChain manages a chain of interceptors.
type InterceptorChain struct {
	requestInterceptors      []RequestInterceptor
	requestErrorInterceptors []RequestErrorInterceptor
	responseInterceptors     []ResponseInterceptor
}

// NewInterceptorChain creates a new interceptor chain.
func NewInterceptorChain() *InterceptorChain {
	return &InterceptorChain{
		requestInterceptors:      make([]RequestInterceptor, 0),
		requestErrorInterceptors: make([]RequestErrorInterceptor, 0),
		responseInterceptors:     make([]ResponseInterceptor, 0),
	}
}

// AddRequestInterceptor adds a request interceptor to the chain.
func (c *InterceptorChain) AddRequestInterceptor(interceptor RequestInterceptor) {
	c.requestInterceptors = append(c.requestInterceptors, interceptor)
}

// AddRequestErrorInterceptor adds a request error interceptor to the chain.
func (c *InterceptorChain) AddRequestErrorInterceptor(interceptor RequestErrorInterceptor) {
	c.requestErrorInterceptors = append(c.requestErrorInterceptors, interceptor)
}

// AddResponseInterceptor adds a response interceptor to the chain.
func (c *InterceptorChain) AddResponseInterceptor(interceptor ResponseInterceptor) {
	c.responseInterceptors = append(c.responseInterceptors, interceptor)
}

// ExecuteRequestInterceptors runs all request interceptors.
func (c *InterceptorChain) ExecuteRequestInterceptors(ctx context.Context, req *Request) error {
	for _, interceptor := range c.requestInterceptors {
		err := interceptor(ctx, req)
		if err != nil {
			return fmt.Errorf("request interceptor failed: %w", err)
		}
	}

	return nil
}

// ExecuteRequestErrorInterceptors runs all request error interceptors and
// returns the error they settle on.
func (c *InterceptorChain) ExecuteRequestErrorInterceptors(ctx context.Context, req *Request, err error) error {
	for _, interceptor := range c.requestErrorInterceptors {
		err = interceptor(ctx, req, err)
	}

	return err
}

// ExecuteResponseInterceptors runs all response interceptors.
func (c *InterceptorChain) ExecuteResponseInterceptors(ctx context.Context, req *Request, resp *Response) error {
	for _, interceptor := range c.responseInterceptors {
		err := interceptor(ctx, req, resp)
		if err != nil {
			return fmt.Errorf("response interceptor failed: %w", err)
		}
	}

	return nil
}

// Common Interceptors

// ProgressRequestInterceptor starts the busy indicator and takes an
// in-flight slot.
func ProgressRequestInterceptor(progress ProgressIndicator, tracker LoadTracker) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		progress.Start()
		progress.Inc()
		tracker.Begin()
		req.setMetadata(metadataInFlight, true)

		return nil
	}
}

// LocalTokenProvider reads the token from local storage, falling back to the
// session, falling back to empty.
func LocalTokenProvider(local LocalStore, session SessionStore) func(context.Context) (string, error) {
	return func(ctx context.Context) (string, error) {
		if local != nil {
			if token, ok := local.Get(constants.StorageKeyToken); ok && token != "" {
				return token, nil
			}
		}

		if session != nil {
			return session.Token(), nil
		}

		return "", nil
	}
}

// AuthenticationInterceptor adds the bearer token when one is available.
func AuthenticationInterceptor(tokenProvider func(context.Context) (string, error)) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		token, err := tokenProvider(ctx)
		if err != nil {
			return fmt.Errorf("failed to get authentication token: %w", err)
		}

		if token == "" {
			return nil
		}

		if req.Headers == nil {
			req.Headers = make(http.Header)
		}

		req.Headers.Set(constants.HeaderAuthorization, constants.BearerPrefix+token)

		return nil
	}
}

// WarehouseInterceptor sets the warehouse header from local storage.
func WarehouseInterceptor(local LocalStore) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		warehouseID := constants.DefaultWarehouseID

		if local != nil {
			if stored, ok := local.Get(constants.StorageKeyWarehouseID); ok && stored != "" {
				warehouseID = stored
			}
		}

		if req.Headers == nil {
			req.Headers = make(http.Header)
		}

		req.Headers.Set(constants.HeaderWarehouseID, warehouseID)

		return nil
	}
}

// HeaderInterceptor adds custom headers to requests.
func HeaderInterceptor(headers map[string]string) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		if req.Headers == nil {
			req.Headers = make(http.Header)
		}

		for key, value := range headers {
			req.Headers.Set(key, value)
		}

		return nil
	}
}

// AcceptInterceptor asks for JSON responses.
func AcceptInterceptor() RequestInterceptor {
	return HeaderInterceptor(map[string]string{constants.HeaderAccept: constants.MediaTypeJSON})
}

// RequestIDInterceptor tags each request with a correlation id.
func RequestIDInterceptor() RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		if req.Headers == nil {
			req.Headers = make(http.Header)
		}

		if req.Headers.Get(constants.HeaderRequestID) == "" {
			req.Headers.Set(constants.HeaderRequestID, uuid.NewString())
		}

		return nil
	}
}

// LoggingInterceptor logs requests.
func LoggingInterceptor(logger Logger) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		logger.Debug("API Request", map[string]interface{}{
			"method":     req.Method,
			"path":       req.Path,
			"request_id": req.RequestID(),
		})

		return nil
	}
}

// SetupFailureInterceptor reports a request that could not be dispatched and
// releases the in-flight slot it took.
func SetupFailureInterceptor(notifier Notifier, tracker LoadTracker, progress ProgressIndicator) RequestErrorInterceptor {
	return func(ctx context.Context, req *Request, err error) error {
		if held, _ := req.Metadata[metadataInFlight].(bool); held {
			req.setMetadata(metadataInFlight, false)

			if tracker.End() {
				progress.Done()
			}
		}

		notify(ctx, notifier, req, SeverityNegative, constants.MessageServiceError)

		return &RequestError{
			Kind:    KindTransportSetup,
			Method:  req.Method,
			Path:    req.Path,
			Message: constants.MessageServiceError,
			Err:     err,
		}
	}
}

// EnvelopeResponseInterceptor handles completed 2xx responses: it releases
// the in-flight slot, annotates binary payloads with their filename and turns
// the envelope into notifications and a classified error.
func EnvelopeResponseInterceptor(tracker LoadTracker, progress ProgressIndicator, session SessionStore, notifier Notifier) ResponseInterceptor {
	return func(ctx context.Context, req *Request, resp *Response) error {
		if resp.Failure != nil {
			return nil
		}

		req.setMetadata(metadataInFlight, false)

		if tracker.End() {
			progress.Done()
		}

		if resp.Binary != nil {
			resp.Binary.Filename = FilenameFromDisposition(resp.Headers.Get(constants.HeaderDisposition))

			return nil
		}

		env := resp.Envelope
		if env == nil {
			return nil
		}

		if !env.Success {
			kind := KindApplication

			// A re-login code produces exactly one notification.
			if env.Code == constants.CodeReloginRequired {
				kind = KindReauthRequired

				session.Destroy()
				notify(ctx, notifier, req, SeverityNegative, constants.MessageReloginRequired)
			} else if !req.IsRead() {
				notify(ctx, notifier, req, SeverityNegative, env.Message)
			}

			resp.Error = &RequestError{
				Kind:       kind,
				Method:     req.Method,
				Path:       req.Path,
				StatusCode: resp.StatusCode,
				Code:       env.Code,
				Message:    env.Message,
				Envelope:   env,
				Err:        env.Err(),
			}

			return nil
		}

		if resp.StatusCode == constants.HTTPStatusOK && !req.IsRead() {
			notify(ctx, notifier, req, SeverityPositive, env.Message)
		}

		return nil
	}
}

// FailureResponseInterceptor handles transport failures and non-2xx
// statuses. Any failure abandons all in-flight accounting.
func FailureResponseInterceptor(tracker LoadTracker, progress ProgressIndicator, session SessionStore, notifier Notifier) ResponseInterceptor {
	return func(ctx context.Context, req *Request, resp *Response) error {
		if resp.Failure == nil {
			return nil
		}

		req.setMetadata(metadataInFlight, false)
		progress.Done()
		tracker.Reset()

		var msg string

		switch {
		case resp.StatusCode == constants.HTTPStatusUnauthorized:
			session.Destroy()
		case resp.StatusCode == constants.HTTPStatusInternalServerError:
			msg = constants.MessageServiceError
			if resp.Envelope != nil && resp.Envelope.Message != "" {
				msg = resp.Envelope.Message
			}
		case resp.Envelope.NestedMessage() != "":
			msg = resp.Envelope.NestedMessage()
		default:
			msg = constants.MessageRequestFailed
		}

		notify(ctx, notifier, req, SeverityNegative, msg)

		reqErr := &RequestError{
			Kind:       KindForStatus(resp.StatusCode),
			Method:     req.Method,
			Path:       req.Path,
			StatusCode: resp.StatusCode,
			Message:    msg,
			Envelope:   resp.Envelope,
			Err:        resp.Failure,
		}

		if resp.Envelope != nil {
			reqErr.Code = resp.Envelope.Code
		}

		resp.Error = reqErr

		return nil
	}
}

// LoggingResponseInterceptor logs responses.
func LoggingResponseInterceptor(logger Logger) ResponseInterceptor {
	return func(ctx context.Context, req *Request, resp *Response) error {
		fields := map[string]interface{}{
			"method":      req.Method,
			"path":        req.Path,
			"status_code": resp.StatusCode,
			"request_id":  req.RequestID(),
		}

		if resp.Error != nil {
			fields["error"] = resp.Error.Error()
			logger.Error("API Response Error", fields)
		} else {
			logger.Debug("API Response", fields)
		}

		return nil
	}
}

func notify(ctx context.Context, notifier Notifier, req *Request, severity Severity, msg string) {
	if notifier == nil || msg == "" {
		return
	}

	notifier.Notify(ctx, Notification{
		Message:   msg,
		Severity:  severity,
		Method:    req.Method,
		Path:      req.Path,
		RequestID: req.RequestID(),
	})
}
