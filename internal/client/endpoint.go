package client

import (
	"context"
	"fmt"
	"net/url"

	internalhttp "github.com/fivetwenty-io/wms-client/internal/http"
	"github.com/fivetwenty-io/wms-client/pkg/wms"
)

// call describes one invocation of a catalog operation.
type call struct {
	op        wms.Operation
	id        string
	body      interface{}
	params    *wms.QueryParams
	multipart *wms.MultipartBody
}

// invoke resolves the operation in the catalog and sends it. The response is
// returned alongside a classified error so callers can still read the
// envelope of a failed call.
func invoke(ctx context.Context, httpClient *internalhttp.Client, c call) (*internalhttp.Response, error) {
	endpoint, ok := wms.Lookup(c.op)
	if !ok {
		return nil, fmt.Errorf("%w: %s", wms.ErrUnknownOperation, c.op)
	}

	if endpoint.NeedsID() && c.id == "" {
		return nil, fmt.Errorf("%s: %w", c.op, wms.ErrIDRequired)
	}

	var query url.Values
	if c.params != nil {
		query = c.params.ToValues()
	}

	req := &internalhttp.Request{
		Method:       endpoint.Method,
		Path:         endpoint.Resolve(url.PathEscape(c.id)),
		Query:        query,
		ResponseType: endpoint.Response,
		Operation:    c.op,
	}

	switch endpoint.Payload {
	case wms.PayloadJSON:
		req.Body = c.body
	case wms.PayloadMultipart:
		req.Multipart = c.multipart
	case wms.PayloadNone, wms.PayloadQuery:
	}

	return httpClient.Do(ctx, req)
}

// envelope invokes an operation answered by a JSON envelope. A failed call
// still returns the envelope when the server sent one.
func envelope(ctx context.Context, httpClient *internalhttp.Client, c call) (*wms.Envelope, error) {
	resp, err := invoke(ctx, httpClient, c)
	if resp == nil {
		return nil, err
	}

	return resp.Envelope, err
}

// binary invokes an operation answered by a raw stream.
func binary(ctx context.Context, httpClient *internalhttp.Client, c call) (*wms.Binary, error) {
	resp, err := invoke(ctx, httpClient, c)
	if err != nil {
		return nil, err
	}

	if resp.Binary == nil {
		return nil, fmt.Errorf("%s: %w", c.op, wms.ErrNotBinaryResponse)
	}

	return resp.Binary, nil
}
