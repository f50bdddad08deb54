package wms_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fivetwenty-io/wms-client/pkg/wms"
)

var errTest = errors.New("some error")

func TestRequestError_Error(t *testing.T) {
	t.Parallel()

	err := &wms.RequestError{Kind: wms.KindServer, Method: "POST", Path: "orders", StatusCode: 500, Message: "DB down"}
	assert.Equal(t, "POST orders: server_error: DB down (status: 500)", err.Error())

	err = &wms.RequestError{Kind: wms.KindTransport, Method: "GET", Path: "stocks", Err: errTest}
	assert.Equal(t, "GET stocks: transport: some error", err.Error())
	assert.ErrorIs(t, err, errTest)
}

func TestErrorHelpers(t *testing.T) {
	t.Parallel()

	wrap := func(kind wms.ErrorKind) error {
		return fmt.Errorf("listing orders: %w", &wms.RequestError{Kind: kind})
	}

	assert.True(t, wms.IsReauthRequired(wrap(wms.KindReauthRequired)))
	assert.True(t, wms.IsServerError(wrap(wms.KindServer)))
	assert.True(t, wms.IsApplicationFailure(wrap(wms.KindApplication)))
	assert.True(t, wms.IsTransportSetup(wrap(wms.KindTransportSetup)))

	assert.False(t, wms.IsServerError(wrap(wms.KindClientProtocol)))
	assert.False(t, wms.IsReauthRequired(errTest))
}

func TestKindForStatus(t *testing.T) {
	t.Parallel()

	assert.Equal(t, wms.KindTransport, wms.KindForStatus(0))
	assert.Equal(t, wms.KindReauthRequired, wms.KindForStatus(401))
	assert.Equal(t, wms.KindClientProtocol, wms.KindForStatus(404))
	assert.Equal(t, wms.KindServer, wms.KindForStatus(500))
	assert.Equal(t, wms.KindServer, wms.KindForStatus(503))
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Empty(t, wms.ErrorMessage(nil))
	assert.Equal(t, "DB down", wms.ErrorMessage(fmt.Errorf("ctx: %w", &wms.RequestError{Message: "DB down"})))
	assert.Equal(t, "In use", wms.ErrorMessage(&wms.AppError{Code: 3, Message: "In use"}))
	assert.Equal(t, "some error", wms.ErrorMessage(errTest))
}
