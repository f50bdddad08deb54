package wms

import "context"

// Payload is a free-form JSON write payload. The backend owns its schema.
type Payload map[string]interface{}

// Credentials are sent to auth/login.
type Credentials struct {
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
}

// LoginResult is the data of a successful login.
type LoginResult struct {
	Token string `json:"token" yaml:"token"`
}

// IDsRequest is the body of bulk deletes.
type IDsRequest struct {
	IDs []int64 `json:"ids" yaml:"ids"`
}

// UploadFile is a file sent to the uploads endpoint.
type UploadFile struct {
	FieldName string
	Name      string
	Content   []byte
	Fields    map[string]string
}

// AuthClient covers registration and session lifecycle.
type AuthClient interface {
	Register(ctx context.Context, payload Payload) (*Envelope, error)
	// Login stores the returned token in the session.
	Login(ctx context.Context, credentials *Credentials) (*LoginResult, error)
	// Logout destroys the session once the server acknowledged it.
	Logout(ctx context.Context) (*Envelope, error)
}

// UploadsClient sends files as multipart form data.
type UploadsClient interface {
	Upload(ctx context.Context, file *UploadFile) (*Envelope, error)
}

// ReferenceClient lists reference data.
type ReferenceClient interface {
	CustomsTypes(ctx context.Context) (*Envelope, error)
	Currencies(ctx context.Context) (*Envelope, error)
	Countries(ctx context.Context, params *QueryParams) (*Envelope, error)
	ArrivalMethods(ctx context.Context, params *QueryParams) (*Envelope, error)
}

// ProductsClient manages products.
type ProductsClient interface {
	Create(ctx context.Context, payload Payload) (*Envelope, error)
	Update(ctx context.Context, id string, payload Payload) (*Envelope, error)
	Get(ctx context.Context, id string) (*Envelope, error)
	Delete(ctx context.Context, request *IDsRequest) (*Envelope, error)
	List(ctx context.Context, params *QueryParams) (*Envelope, error)
	GenerateLabels(ctx context.Context, payload Payload) (*Binary, error)
}

// SKUsClient manages SKUs.
type SKUsClient interface {
	Update(ctx context.Context, id string, payload Payload) (*Envelope, error)
	Get(ctx context.Context, id string) (*Envelope, error)
	Delete(ctx context.Context, request *IDsRequest) (*Envelope, error)
	List(ctx context.Context, params *QueryParams) (*Envelope, error)
}

// InboundClient manages inbound shipments.
type InboundClient interface {
	Create(ctx context.Context, payload Payload) (*Envelope, error)
	List(ctx context.Context, params *QueryParams) (*Envelope, error)
	Submit(ctx context.Context, id string) (*Envelope, error)
	Get(ctx context.Context, id string) (*Envelope, error)
	Update(ctx context.Context, id string, payload Payload) (*Envelope, error)
	Ship(ctx context.Context, id string) (*Envelope, error)
	Delete(ctx context.Context, id string) (*Envelope, error)
	BoxLabel(ctx context.Context, id string, payload Payload) (*Binary, error)
}

// StocksClient reads stock levels and movements.
type StocksClient interface {
	List(ctx context.Context, params *QueryParams) (*Envelope, error)
	Logs(ctx context.Context, params *QueryParams) (*Envelope, error)
}

// OrdersClient manages outbound orders.
type OrdersClient interface {
	Create(ctx context.Context, payload Payload) (*Envelope, error)
	List(ctx context.Context, params *QueryParams) (*Envelope, error)
	Submit(ctx context.Context, id string) (*Envelope, error)
	Get(ctx context.Context, id string) (*Envelope, error)
	Delete(ctx context.Context, id string) (*Envelope, error)
	Intercept(ctx context.Context, id string) (*Envelope, error)
	CancelIntercept(ctx context.Context, id string) (*Envelope, error)
}
