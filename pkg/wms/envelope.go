package wms

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Envelope is the JSON wrapper the backend returns for non-binary responses.
type Envelope struct {
	Success bool            `json:"success"           yaml:"success"`
	Code    int             `json:"code"              yaml:"code"`
	Message string          `json:"message"           yaml:"message"`
	Data    json.RawMessage `json:"data,omitempty"    yaml:"-"`
}

// AppError is the failed arm of a decoded envelope.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("application error (code: %d)", e.Code)
	}

	return fmt.Sprintf("%s (code: %d)", e.Message, e.Code)
}

// DecodeEnvelope parses a response body into an Envelope. An empty body
// decodes to a successful envelope without data.
func DecodeEnvelope(body []byte) (*Envelope, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return &Envelope{Success: true}, nil
	}

	var env Envelope

	err := json.Unmarshal(trimmed, &env)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal response envelope: %w", err)
	}

	return &env, nil
}

// Err returns nil when the envelope reports success and an *AppError
// otherwise.
func (e *Envelope) Err() error {
	if e == nil || e.Success {
		return nil
	}

	return &AppError{Code: e.Code, Message: e.Message}
}

// NestedMessage returns data.message when the payload carries one.
func (e *Envelope) NestedMessage() string {
	if e == nil || len(e.Data) == 0 {
		return ""
	}

	var nested struct {
		Message string `json:"message"`
	}

	if json.Unmarshal(e.Data, &nested) != nil {
		return ""
	}

	return nested.Message
}

// DecodeData unmarshals the envelope payload into T.
func DecodeData[T any](env *Envelope) (*T, error) {
	var out T

	if env == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return &out, nil
	}

	err := json.Unmarshal(env.Data, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal envelope data: %w", err)
	}

	return &out, nil
}

// Binary is a raw stream response annotated with the server-side filename.
type Binary struct {
	Data        []byte `json:"-"`
	ContentType string `json:"content_type"`
	Filename    string `json:"filename"`
}

// FilenameFromDisposition extracts the base filename from a
// Content-Disposition header: the value after the first "=", cut at "; ",
// unquoted and stripped of everything from the first ".".
//
//	attachment; filename=report.csv  ->  report
func FilenameFromDisposition(header string) string {
	_, value, found := strings.Cut(header, "=")
	if !found {
		return ""
	}

	value, _, _ = strings.Cut(value, "; ")
	value = strings.Trim(strings.TrimSpace(value), `"`)
	name, _, _ := strings.Cut(value, ".")

	return name
}
