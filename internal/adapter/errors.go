package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooLarge            = errors.New("upload too large")
	ErrUnsupportedFile     = errors.New("unsupported file")
	ErrUnprocessable       = errors.New("unprocessable upload")
	ErrInternalServerError = errors.New("internal server error")
)

// ResponseError is a non-2xx API response. It unwraps to one of the
// sentinel errors above so callers can match with [errors.Is], and keeps the
// server's details for [errors.As] callers.
type ResponseError struct {
	StatusCode int
	Message    string
	Details    json.RawMessage

	kind error
}

func (e *ResponseError) Error() string {
	if e.kind == nil {
		return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.kind, e.Message)
}

func (e *ResponseError) Unwrap() error {
	return e.kind
}

// DecodeDetails unmarshals the error details into v.
func (e *ResponseError) DecodeDetails(v any) error {
	if len(e.Details) == 0 {
		return errors.New("response has no details")
	}
	return json.Unmarshal(e.Details, v)
}
