package wms

import (
	"net/http"
	"sort"
	"strings"
)

// Operation is the logical name of an endpoint.
type Operation string

// PayloadKind describes how an operation sends its payload.
type PayloadKind string

const (
	PayloadNone      PayloadKind = "none"
	PayloadQuery     PayloadKind = "query"
	PayloadJSON      PayloadKind = "json"
	PayloadMultipart PayloadKind = "multipart"
)

// Endpoint binds an operation to its HTTP method, path template, payload
// shape and response-handling mode.
type Endpoint struct {
	Method   string
	Path     string
	Payload  PayloadKind
	Response ResponseType
}

// Resolve expands the {id} placeholder of the path template.
func (e Endpoint) Resolve(id string) string {
	return strings.ReplaceAll(e.Path, "{id}", id)
}

// NeedsID reports whether the path template has an {id} placeholder.
func (e Endpoint) NeedsID() bool {
	return strings.Contains(e.Path, "{id}")
}

// Auth operations.
const (
	OpRegister Operation = "register"
	OpLogin    Operation = "login"
	OpLogout   Operation = "logout"
)

// Upload operations.
const (
	OpUpload Operation = "upload"
)

// Reference data operations.
const (
	OpCustomsTypes   Operation = "customs-types"
	OpCurrencies     Operation = "currencies"
	OpCountries      Operation = "countries"
	OpArrivalMethods Operation = "arrival-methods"
)

// Product operations.
const (
	OpProductCreate Operation = "product.create"
	OpProductUpdate Operation = "product.update"
	OpProductGet    Operation = "product.get"
	OpProductDelete Operation = "product.delete"
	OpProductList   Operation = "product.list"
	OpProductLabels Operation = "product.labels"
)

// SKU operations.
const (
	OpSKUUpdate Operation = "sku.update"
	OpSKUGet    Operation = "sku.get"
	OpSKUDelete Operation = "sku.delete"
	OpSKUList   Operation = "sku.list"
)

// Inbound operations.
const (
	OpInboundCreate   Operation = "inbound.create"
	OpInboundList     Operation = "inbound.list"
	OpInboundSubmit   Operation = "inbound.submit"
	OpInboundGet      Operation = "inbound.get"
	OpInboundUpdate   Operation = "inbound.update"
	OpInboundShip     Operation = "inbound.ship"
	OpInboundDelete   Operation = "inbound.delete"
	OpInboundBoxLabel Operation = "inbound.box-label"
)

// Stock operations.
const (
	OpStockList Operation = "stock.list"
	OpStockLogs Operation = "stock.logs"
)

// Outbound order operations.
const (
	OpOrderCreate          Operation = "order.create"
	OpOrderList            Operation = "order.list"
	OpOrderSubmit          Operation = "order.submit"
	OpOrderGet             Operation = "order.get"
	OpOrderDelete          Operation = "order.delete"
	OpOrderIntercept       Operation = "order.intercept"
	OpOrderCancelIntercept Operation = "order.cancel-intercept"
)

func read(path string) Endpoint {
	return Endpoint{Method: http.MethodGet, Path: path, Payload: PayloadQuery, Response: ResponseTypeJSON}
}

func write(method, path string, payload PayloadKind) Endpoint {
	return Endpoint{Method: method, Path: path, Payload: payload, Response: ResponseTypeJSON}
}

func download(path string) Endpoint {
	return Endpoint{Method: http.MethodPost, Path: path, Payload: PayloadJSON, Response: ResponseTypeBinary}
}

// Catalog is the static endpoint table of the warehouse API.
var Catalog = map[Operation]Endpoint{
	OpRegister: write(http.MethodPost, "auth/register", PayloadJSON),
	OpLogin:    write(http.MethodPost, "auth/login", PayloadJSON),
	OpLogout:   write(http.MethodDelete, "auth/logout", PayloadJSON),

	OpUpload: write(http.MethodPost, "uploads", PayloadMultipart),

	OpCustomsTypes:   read("customs-types"),
	OpCurrencies:     read("currencies"),
	OpCountries:      read("countries"),
	OpArrivalMethods: read("arrival-methods"),

	OpProductCreate: write(http.MethodPost, "products", PayloadJSON),
	OpProductUpdate: write(http.MethodPut, "products/{id}", PayloadJSON),
	OpProductGet:    read("products/{id}"),
	OpProductDelete: write(http.MethodDelete, "products", PayloadJSON),
	OpProductList:   read("products"),
	OpProductLabels: download("products/labels/generate"),

	OpSKUUpdate: write(http.MethodPut, "skus/{id}", PayloadJSON),
	OpSKUGet:    read("skus/{id}"),
	OpSKUDelete: write(http.MethodDelete, "skus", PayloadJSON),
	OpSKUList:   read("skus"),

	OpInboundCreate:   write(http.MethodPost, "inbound", PayloadJSON),
	OpInboundList:     read("inbound"),
	OpInboundSubmit:   write(http.MethodPost, "inbound/{id}/submit", PayloadNone),
	OpInboundGet:      read("inbound/{id}"),
	OpInboundUpdate:   write(http.MethodPut, "inbound/{id}", PayloadJSON),
	OpInboundShip:     write(http.MethodPost, "inbound/{id}/ship", PayloadNone),
	OpInboundDelete:   write(http.MethodDelete, "inbound/{id}", PayloadNone),
	OpInboundBoxLabel: download("inbound/{id}/boxes/label"),

	OpStockList: read("stocks"),
	OpStockLogs: read("stocks/logs"),

	OpOrderCreate:          write(http.MethodPost, "orders", PayloadJSON),
	OpOrderList:            read("orders"),
	OpOrderSubmit:          write(http.MethodPost, "orders/{id}/submit", PayloadNone),
	OpOrderGet:             read("orders/{id}"),
	OpOrderDelete:          write(http.MethodDelete, "orders/{id}", PayloadNone),
	OpOrderIntercept:       write(http.MethodPost, "orders/{id}/intercept", PayloadNone),
	OpOrderCancelIntercept: write(http.MethodPost, "orders/{id}/cancel-intercept", PayloadNone),
}

// Lookup returns the endpoint bound to op.
func Lookup(op Operation) (Endpoint, bool) {
	endpoint, ok := Catalog[op]

	return endpoint, ok
}

// Operations returns every catalog operation in sorted order.
func Operations() []Operation {
	ops := make([]Operation, 0, len(Catalog))
	for op := range Catalog {
		ops = append(ops, op)
	}

	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })

	return ops
}
