package wms_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/wms-client/pkg/wms"
)

func TestCatalog_Complete(t *testing.T) {
	t.Parallel()

	valid := map[string]bool{
		http.MethodGet: true, http.MethodPost: true, http.MethodPut: true, http.MethodDelete: true,
	}

	ops := wms.Operations()
	assert.Len(t, ops, 35)

	for _, op := range ops {
		endpoint, ok := wms.Lookup(op)
		require.True(t, ok, op)
		assert.True(t, valid[endpoint.Method], op)
		assert.NotEmpty(t, endpoint.Path, op)
		assert.False(t, strings.HasPrefix(endpoint.Path, "/"), op)

		if endpoint.Method == http.MethodGet {
			assert.Equal(t, wms.PayloadQuery, endpoint.Payload, op)
		}
	}
}

func TestCatalog_Entries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		op       wms.Operation
		method   string
		path     string
		response wms.ResponseType
	}{
		{wms.OpLogout, http.MethodDelete, "auth/logout", wms.ResponseTypeJSON},
		{wms.OpProductDelete, http.MethodDelete, "products", wms.ResponseTypeJSON},
		{wms.OpProductLabels, http.MethodPost, "products/labels/generate", wms.ResponseTypeBinary},
		{wms.OpInboundBoxLabel, http.MethodPost, "inbound/12/boxes/label", wms.ResponseTypeBinary},
		{wms.OpOrderCancelIntercept, http.MethodPost, "orders/12/cancel-intercept", wms.ResponseTypeJSON},
		{wms.OpStockLogs, http.MethodGet, "stocks/logs", wms.ResponseTypeJSON},
	}

	for _, testCase := range tests {
		endpoint, ok := wms.Lookup(testCase.op)
		require.True(t, ok)
		assert.Equal(t, testCase.method, endpoint.Method)
		assert.Equal(t, testCase.path, endpoint.Resolve("12"))
		assert.Equal(t, testCase.response, endpoint.Response)
	}

	_, ok := wms.Lookup("missing")
	assert.False(t, ok)
}

func TestEndpoint_NeedsID(t *testing.T) {
	t.Parallel()

	getOrder, _ := wms.Lookup(wms.OpOrderGet)
	listOrders, _ := wms.Lookup(wms.OpOrderList)

	assert.True(t, getOrder.NeedsID())
	assert.False(t, listOrders.NeedsID())
}
