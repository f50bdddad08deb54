package client_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/fivetwenty-io/wms-client/internal/client"
	"github.com/fivetwenty-io/wms-client/internal/notify"
	"github.com/fivetwenty-io/wms-client/internal/session"
	"github.com/fivetwenty-io/wms-client/internal/store"
	"github.com/fivetwenty-io/wms-client/pkg/wms"
)

// testHarness bundles a client with the collaborators a test inspects.
type testHarness struct {
	Client   *Client
	Session  *session.State
	Storage  *store.MemoryStore
	Recorder *notify.Recorder
}

// NewTestClient creates a client against baseURL with recording collaborators.
func NewTestClient(t *testing.T, baseURL string) *testHarness {
	t.Helper()

	state := session.New("")
	storage := store.NewMemoryStore(nil)
	recorder := &notify.Recorder{}

	client, err := New(context.Background(), &wms.Config{
		APIEndpoint: baseURL,
		Session:     state,
		Storage:     storage,
		Notifier:    recorder,
	})
	require.NoError(t, err)

	return &testHarness{
		Client:   client,
		Session:  state,
		Storage:  storage,
		Recorder: recorder,
	}
}

// envelopeBody builds a JSON envelope response.
func envelopeBody(success bool, code int, message string, data interface{}) map[string]interface{} {
	body := map[string]interface{}{
		"success": success,
		"code":    code,
		"message": message,
	}

	if data != nil {
		body["data"] = data
	}

	return body
}

// TestEnvelopeOperation represents a generic envelope operation test case.
type TestEnvelopeOperation struct {
	Name          string
	Method        string
	ExpectedPath  string
	ExpectedQuery string
	ExpectedBody  map[string]interface{}
	StatusCode    int
	Response      interface{}
	WantErr       bool
	ErrKind       wms.ErrorKind
	Call          func(*Client) (*wms.Envelope, error)
}

// RunEnvelopeTests runs envelope operations against a stub server.
func RunEnvelopeTests(t *testing.T, tests []TestEnvelopeOperation) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.Method, request.Method)
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, testCase.ExpectedQuery, request.URL.RawQuery)

				if testCase.ExpectedBody != nil {
					var body map[string]interface{}

					raw, err := io.ReadAll(request.Body)
					assert.NoError(t, err)
					assert.NoError(t, json.Unmarshal(raw, &body))
					assert.Equal(t, testCase.ExpectedBody, body)
				}

				writer.Header().Set("Content-Type", "application/json")
				writer.WriteHeader(testCase.StatusCode)

				if testCase.Response != nil {
					_ = json.NewEncoder(writer).Encode(testCase.Response)
				}
			}))
			defer server.Close()

			harness := NewTestClient(t, server.URL)

			env, err := testCase.Call(harness.Client)

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrKind != "" {
					reqErr := &wms.RequestError{}
					require.ErrorAs(t, err, &reqErr)
					assert.Equal(t, testCase.ErrKind, reqErr.Kind)
				}

				return
			}

			require.NoError(t, err)
			require.NotNil(t, env)
			assert.True(t, env.Success)
			assert.Equal(t, 0, harness.Session.InFlight())
		})
	}
}
