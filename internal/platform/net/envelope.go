package net

import (
	"context"
	"net/http"

	perr "bulletpoints/internal/platform/errors"
)

// Envelope wraps every api answer, success or failure
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	Field      string         `json:"field,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// Success wraps data with the given status and the request id on ctx
func Success(ctx context.Context, status int, data any) Envelope {
	return Envelope{
		StatusCode: status,
		Status:     http.StatusText(status),
		RequestID:  RequestID(ctx),
		Data:       data,
	}
}

// Failure wraps err. The status follows the error code; the cause is never rendered
func Failure(ctx context.Context, err error) Envelope {
	status := perr.HTTPStatus(err)
	w := perr.WireFrom(err)
	return Envelope{
		StatusCode: status,
		Status:     http.StatusText(status),
		Code:       w.Code,
		Error:      w.Message,
		Field:      w.Field,
		RequestID:  RequestID(ctx),
	}
}
