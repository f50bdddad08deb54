package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wmshttp "github.com/fivetwenty-io/wms-client/internal/http"
	"github.com/fivetwenty-io/wms-client/pkg/wms"
)

var errInterceptor = errors.New("interceptor failed")

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

func writeEnvelope(writer http.ResponseWriter, success bool, message string, data interface{}) {
	_ = json.NewEncoder(writer).Encode(map[string]interface{}{
		"success": success,
		"code":    0,
		"message": message,
		"data":    data,
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()

	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/products", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))

			writeEnvelope(writer, true, "", map[string]string{"name": "Widget"})
		}))
		defer server.Close()

		chain := wms.NewInterceptorChain()
		chain.AddRequestInterceptor(wms.AuthenticationInterceptor(func(context.Context) (string, error) {
			return "test-token", nil
		}))

		client := wmshttp.NewClient(server.URL+"/", chain)

		resp, err := client.Do(context.Background(), &wmshttp.Request{Method: "GET", Path: "/products"})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		require.NotNil(t, resp.Envelope)
		assert.True(t, resp.Envelope.Success)

		var product map[string]string

		require.NoError(t, json.Unmarshal(resp.Envelope.Data, &product))
		assert.Equal(t, "Widget", product["name"])
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/orders", request.URL.Path)
			assert.Equal(t, "page=2", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := wmshttp.NewClient(server.URL, nil)

		resp, err := client.Do(context.Background(), &wmshttp.Request{
			Method: "GET",
			Path:   "orders",
			Query:  url.Values{"page": []string{"2"}},
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.True(t, resp.Envelope.Success)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "IN-1", body["reference"])

			writer.WriteHeader(http.StatusCreated)
			writeEnvelope(writer, true, "Created", nil)
		}))
		defer server.Close()

		client := wmshttp.NewClient(server.URL, nil)

		resp, err := client.Do(context.Background(), &wmshttp.Request{
			Method: "POST",
			Path:   "inbound",
			Body:   map[string]string{"reference": "IN-1"},
		})
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("error response keeps the envelope", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			writeEnvelope(writer, false, "not found", map[string]string{"message": "Order not found"})
		}))
		defer server.Close()

		client := wmshttp.NewClient(server.URL, nil)

		resp, err := client.Do(context.Background(), &wmshttp.Request{Method: "GET", Path: "orders/1"})
		require.Error(t, err)
		assert.Equal(t, 404, resp.StatusCode)
		require.ErrorIs(t, err, wms.ErrUnexpectedStatus)

		reqErr := &wms.RequestError{}
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, wms.KindClientProtocol, reqErr.Kind)
		assert.Equal(t, "Order not found", reqErr.Message)
		require.NotNil(t, reqErr.Envelope)
		assert.Equal(t, "not found", reqErr.Envelope.Message)
	})

	t.Run("application failure without interceptors", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writeEnvelope(writer, false, "Duplicate", nil)
		}))
		defer server.Close()

		client := wmshttp.NewClient(server.URL, nil)

		_, err := client.Post(context.Background(), "products", map[string]string{})
		require.Error(t, err)
		assert.True(t, wms.IsApplicationFailure(err))
	})

	t.Run("binary response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("Content-Type", "application/pdf")
			_, _ = writer.Write([]byte("%PDF"))
		}))
		defer server.Close()

		client := wmshttp.NewClient(server.URL, nil)

		resp, err := client.Do(context.Background(), &wmshttp.Request{
			Method:       "POST",
			Path:         "products/labels/generate",
			ResponseType: wms.ResponseTypeBinary,
		})
		require.NoError(t, err)
		require.NotNil(t, resp.Binary)
		assert.Nil(t, resp.Envelope)
		assert.Equal(t, []byte("%PDF"), resp.Binary.Data)
		assert.Equal(t, "application/pdf", resp.Binary.ContentType)
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			assert.Equal(t, "wms-cli/1.0", request.Header.Get("User-Agent"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := wmshttp.NewClient(server.URL, nil, wmshttp.WithUserAgent("wms-cli/1.0"))

		resp, err := client.Do(context.Background(), &wmshttp.Request{
			Method: "GET",
			Path:   "stocks",
			Headers: map[string]string{
				"X-Custom-Header": "custom-value",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writeEnvelope(writer, true, "ok", nil)
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := wmshttp.NewClient(server.URL, nil, wmshttp.WithLogger(logger), wmshttp.WithDebug(true))

		_, err := client.Do(context.Background(), &wmshttp.Request{Method: "GET", Path: "stocks"})
		require.NoError(t, err)

		// Should have logged request and response
		assert.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
	})
}

func TestClient_Multipart(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Contains(t, request.Header.Get("Content-Type"), "multipart/form-data")

		file, header, err := request.FormFile("document")
		assert.NoError(t, err)

		if err == nil {
			_ = file.Close()
			assert.Equal(t, "a.csv", header.Filename)
		}

		assert.Equal(t, "stock", request.FormValue("kind"))
		writeEnvelope(writer, true, "Uploaded", nil)
	}))
	defer server.Close()

	client := wmshttp.NewClient(server.URL, nil)

	_, err := client.Do(context.Background(), &wmshttp.Request{
		Method: "POST",
		Path:   "uploads",
		Multipart: &wms.MultipartBody{
			FieldName: "document",
			FileName:  "a.csv",
			Content:   []byte("sku,qty\n"),
			Fields:    map[string]string{"kind": "stock"},
		},
	})
	require.NoError(t, err)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		fn     func(*wmshttp.Client, context.Context) (*wmshttp.Response, error)
	}{
		{
			name:   "GET",
			method: "GET",
			fn: func(c *wmshttp.Client, ctx context.Context) (*wmshttp.Response, error) {
				return c.Get(ctx, "/test", nil)
			},
		},
		{
			name:   "POST",
			method: "POST",
			fn: func(c *wmshttp.Client, ctx context.Context) (*wmshttp.Response, error) {
				return c.Post(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PUT",
			method: "PUT",
			fn: func(c *wmshttp.Client, ctx context.Context) (*wmshttp.Response, error) {
				return c.Put(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PATCH",
			method: "PATCH",
			fn: func(c *wmshttp.Client, ctx context.Context) (*wmshttp.Response, error) {
				return c.Patch(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "DELETE",
			method: "DELETE",
			fn: func(c *wmshttp.Client, ctx context.Context) (*wmshttp.Response, error) {
				return c.Delete(ctx, "/test")
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.method, request.Method)
				assert.Equal(t, "/test", request.URL.Path)
				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := wmshttp.NewClient(server.URL, nil)
			resp, err := testCase.fn(client, context.Background())
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
		})
	}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_NoRetry(t *testing.T) {
	t.Parallel()

	for _, status := range []int{http.StatusInternalServerError, http.StatusTooManyRequests, http.StatusBadRequest} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			t.Parallel()

			var attempts atomic.Int32

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				attempts.Add(1)
				writer.WriteHeader(status)
			}))
			defer server.Close()

			client := wmshttp.NewClient(server.URL, nil)

			resp, err := client.Get(context.Background(), "/test", nil)
			require.Error(t, err)
			assert.Equal(t, status, resp.StatusCode)
			assert.Equal(t, int32(1), attempts.Load())
		})
	}

	t.Run("transport failure", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {}))
		baseURL := server.URL
		server.Close()

		client := wmshttp.NewClient(baseURL, nil, wmshttp.WithTimeout(time.Second))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, 0, resp.StatusCode)
		require.ErrorIs(t, err, wms.ErrNoResponse)

		reqErr := &wms.RequestError{}
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, wms.KindTransport, reqErr.Kind)
	})
}

func TestClient_SetupFailure(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		hits.Add(1)
	}))
	defer server.Close()

	var seen error

	chain := wms.NewInterceptorChain()
	chain.AddRequestInterceptor(func(ctx context.Context, req *wms.Request) error {
		return errInterceptor
	})
	chain.AddRequestErrorInterceptor(func(ctx context.Context, req *wms.Request, err error) error {
		seen = err

		return err
	})

	client := wmshttp.NewClient(server.URL, chain)

	resp, err := client.Get(context.Background(), "/test", nil)
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, wms.IsTransportSetup(err))
	require.ErrorIs(t, err, errInterceptor)
	require.ErrorIs(t, seen, errInterceptor)
	assert.Equal(t, int32(0), hits.Load())
}
