// Package http is the transport beneath the resource clients. It runs the
// interceptor pipeline around every call and hands back settled responses.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/wms-client/internal/constants"
	"github.com/fivetwenty-io/wms-client/pkg/wms"
)

const defaultFileField = "file"

// Request describes a call relative to the base URL.
type Request struct {
	Method       string
	Path         string
	Query        url.Values
	Body         interface{}
	Headers      map[string]string
	Multipart    *wms.MultipartBody
	ResponseType wms.ResponseType
	Operation    wms.Operation
}

// Response is the settled outcome of a call.
type Response = wms.Response

// Client sends requests through the interceptor chain.
type Client struct {
	baseURL    string
	chain      *wms.InterceptorChain
	httpClient *retryablehttp.Client
	logger     wms.Logger
	debug      bool
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger wms.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout sets the per-call timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.HTTPClient.Timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying net/http client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient.HTTPClient = httpClient
		}
	}
}

// NewClient creates a client for baseURL. A nil chain sends requests as-is.
func NewClient(baseURL string, chain *wms.InterceptorChain, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	// Every call is attempted exactly once.
	retryClient.RetryMax = 0
	retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		return false, nil
	}
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout

	if chain == nil {
		chain = wms.NewInterceptorChain()
	}

	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		chain:      chain,
		httpClient: retryClient,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends the request and settles it through the response interceptors.
// The returned error is the classified outcome; resp is nil only when the
// request never left the client.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	wreq := c.toInterceptable(req)

	err := c.chain.ExecuteRequestInterceptors(ctx, wreq)
	if err != nil {
		return nil, c.setupFailure(ctx, wreq, err)
	}

	httpReq, err := c.buildRequest(ctx, wreq)
	if err != nil {
		return nil, c.setupFailure(ctx, wreq, err)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method":     wreq.Method,
			"url":        httpReq.URL.String(),
			"request_id": wreq.RequestID(),
		})
	}

	resp := c.dispatch(httpReq, wreq)

	if c.debug && c.logger != nil {
		fields := map[string]interface{}{
			"status_code": resp.StatusCode,
			"request_id":  wreq.RequestID(),
		}
		if resp.Failure != nil {
			fields["failure"] = resp.Failure.Error()
		}

		c.logger.Debug("HTTP Response", fields)
	}

	err = c.chain.ExecuteResponseInterceptors(ctx, wreq, resp)
	if err != nil {
		return resp, err
	}

	if resp.Error == nil {
		resp.Error = unclassified(wreq, resp)
	}

	return resp, resp.Error
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

func (c *Client) toInterceptable(req *Request) *wms.Request {
	headers := make(http.Header, len(req.Headers))
	for key, value := range req.Headers {
		headers.Set(key, value)
	}

	responseType := req.ResponseType
	if responseType == "" {
		responseType = wms.ResponseTypeJSON
	}

	wreq := &wms.Request{
		Method:       req.Method,
		Path:         strings.TrimPrefix(req.Path, "/"),
		Query:        req.Query,
		Headers:      headers,
		Body:         req.Body,
		Multipart:    req.Multipart,
		ResponseType: responseType,
		Metadata:     make(map[string]interface{}),
	}

	if req.Operation != "" {
		wreq.Metadata[wms.MetadataOperation] = req.Operation
	}

	return wreq
}

func (c *Client) setupFailure(ctx context.Context, wreq *wms.Request, err error) error {
	err = c.chain.ExecuteRequestErrorInterceptors(ctx, wreq, err)

	if wms.IsTransportSetup(err) {
		return err
	}

	return &wms.RequestError{
		Kind:    wms.KindTransportSetup,
		Method:  wreq.Method,
		Path:    wreq.Path,
		Message: constants.MessageServiceError,
		Err:     err,
	}
}

func (c *Client) buildRequest(ctx context.Context, wreq *wms.Request) (*retryablehttp.Request, error) {
	fullURL := c.baseURL + "/" + wreq.Path
	if len(wreq.Query) > 0 {
		fullURL += "?" + wreq.Query.Encode()
	}

	var (
		body        interface{}
		contentType string
	)

	switch {
	case wreq.Multipart != nil:
		data, formType, err := encodeMultipart(wreq.Multipart)
		if err != nil {
			return nil, err
		}

		body, contentType = data, formType
	case wreq.Body != nil:
		data, err := json.Marshal(wreq.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}

		body, contentType = data, constants.MediaTypeJSON
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, wreq.Method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, values := range wreq.Headers {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	if contentType != "" {
		httpReq.Header.Set(constants.HeaderContentType, contentType)
	}

	if c.userAgent != "" {
		httpReq.Header.Set(constants.HeaderUserAgent, c.userAgent)
	}

	return httpReq, nil
}

func (c *Client) dispatch(httpReq *retryablehttp.Request, wreq *wms.Request) *Response {
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return &Response{Failure: fmt.Errorf("%w: %w", wms.ErrNoResponse, err)}
	}

	defer func() { _ = httpResp.Body.Close() }()

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
	}

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		resp.Failure = fmt.Errorf("failed to read response body: %w", err)

		return resp
	}

	resp.Body = body

	if httpResp.StatusCode < http.StatusOK || httpResp.StatusCode >= http.StatusMultipleChoices {
		resp.Failure = fmt.Errorf("%w: %d", wms.ErrUnexpectedStatus, httpResp.StatusCode)

		if len(bytes.TrimSpace(body)) > 0 {
			if env, decodeErr := wms.DecodeEnvelope(body); decodeErr == nil {
				resp.Envelope = env
			}
		}

		return resp
	}

	if wreq.ResponseType == wms.ResponseTypeBinary {
		resp.Binary = &wms.Binary{
			Data:        body,
			ContentType: httpResp.Header.Get(constants.HeaderContentType),
		}

		return resp
	}

	env, err := wms.DecodeEnvelope(body)
	if err != nil {
		resp.Failure = err

		return resp
	}

	resp.Envelope = env

	return resp
}

func encodeMultipart(part *wms.MultipartBody) ([]byte, string, error) {
	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)

	for key, value := range part.Fields {
		err := writer.WriteField(key, value)
		if err != nil {
			return nil, "", fmt.Errorf("failed to write form field %s: %w", key, err)
		}
	}

	fieldName := part.FieldName
	if fieldName == "" {
		fieldName = defaultFileField
	}

	fileWriter, err := writer.CreateFormFile(fieldName, part.FileName)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create form file: %w", err)
	}

	_, err = fileWriter.Write(part.Content)
	if err != nil {
		return nil, "", fmt.Errorf("failed to write file content: %w", err)
	}

	err = writer.Close()
	if err != nil {
		return nil, "", fmt.Errorf("failed to close multipart writer: %w", err)
	}

	return buf.Bytes(), writer.FormDataContentType(), nil
}

// unclassified covers calls settled without the stock response interceptors.
func unclassified(wreq *wms.Request, resp *Response) error {
	if resp.Failure != nil {
		return &wms.RequestError{
			Kind:       wms.KindForStatus(resp.StatusCode),
			Method:     wreq.Method,
			Path:       wreq.Path,
			StatusCode: resp.StatusCode,
			Message:    resp.Envelope.NestedMessage(),
			Envelope:   resp.Envelope,
			Err:        resp.Failure,
		}
	}

	if resp.Envelope != nil && !resp.Envelope.Success {
		return &wms.RequestError{
			Kind:       wms.KindApplication,
			Method:     wreq.Method,
			Path:       wreq.Path,
			StatusCode: resp.StatusCode,
			Code:       resp.Envelope.Code,
			Message:    resp.Envelope.Message,
			Envelope:   resp.Envelope,
			Err:        resp.Envelope.Err(),
		}
	}

	return nil
}
