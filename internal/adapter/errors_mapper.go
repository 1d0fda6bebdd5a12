package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var statusErrorMap = map[int]error{
	http.StatusBadRequest:            ErrBadRequest,
	http.StatusUnauthorized:          ErrUnauthorized,
	http.StatusForbidden:             ErrForbidden,
	http.StatusNotFound:              ErrNotFound,
	http.StatusConflict:              ErrConflict,
	http.StatusRequestEntityTooLarge: ErrTooLarge,
	http.StatusUnsupportedMediaType:  ErrUnsupportedFile,
	http.StatusUnprocessableEntity:   ErrUnprocessable,
	http.StatusInternalServerError:   ErrInternalServerError,
}

// errorBody mirrors the JSON error body written by the server.
type errorBody struct {
	Error   string          `json:"error"`
	Details json.RawMessage `json:"details"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	respErr := &ResponseError{
		StatusCode: resp.StatusCode(),
		kind:       statusErrorMap[resp.StatusCode()],
	}

	var body errorBody
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		respErr.Message = body.Error
		respErr.Details = body.Details
	} else {
		respErr.Message = strings.TrimSpace(string(resp.Body()))
	}
	if respErr.Message == "" {
		respErr.Message = http.StatusText(resp.StatusCode())
	}

	return respErr
}
