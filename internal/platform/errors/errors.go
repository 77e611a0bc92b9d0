// Package errors is the structured error every surface reports through.
// Import it as perr
package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies an error on the wire. Append only, clients switch on the numbers
type ErrorCode uint16

const (
	ErrorCodeUnknown     ErrorCode = iota // unclassified or foreign
	ErrorCodePanic                        // recovered by middleware
	ErrorCodeUnavailable                  // a clipboard tool was found but failed
	ErrorCodeUnsupported                  // no clipboard tool on this host
	ErrorCodeValidation                   // missing text, bad UTF-8
	ErrorCodeJSON                         // body is not the expected JSON document
	ErrorCodeTooLarge                     // body over bind.MaxBody
)

// every body problem is a 400; codes not listed are a 500
var statusOf = map[ErrorCode]int{
	ErrorCodeValidation:  http.StatusBadRequest,
	ErrorCodeJSON:        http.StatusBadRequest,
	ErrorCodeTooLarge:    http.StatusBadRequest,
	ErrorCodeUnsupported: http.StatusNotImplemented,
	ErrorCodeUnavailable: http.StatusServiceUnavailable,
}

// Error is a coded error with a client safe message and an optional input field.
// The cause is kept for logs and errors.Is, never sent to clients
type Error struct {
	code  ErrorCode
	msg   string
	field string
	cause error
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.cause == nil:
		return e.msg
	default:
		return e.msg + ": " + e.cause.Error()
	}
}

func (e *Error) Unwrap() error { return e.cause }

// Code is the wire class
func (e *Error) Code() ErrorCode { return e.code }

// Field names the input key at fault, empty when none is
func (e *Error) Field() string { return e.field }

// Newf builds an error of class code
func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrapf builds an error of class code over cause
func Wrapf(cause error, code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...), cause: cause}
}

func Validationf(format string, a ...any) error  { return Newf(ErrorCodeValidation, format, a...) }
func JSONErrf(format string, a ...any) error     { return Newf(ErrorCodeJSON, format, a...) }
func TooLargef(format string, a ...any) error    { return Newf(ErrorCodeTooLarge, format, a...) }
func Unsupportedf(format string, a ...any) error { return Newf(ErrorCodeUnsupported, format, a...) }
func PanicErrf(format string, a ...any) error    { return Newf(ErrorCodePanic, format, a...) }

// WithField copies err with field set; foreign errors come back untouched
func WithField(err error, field string) error {
	e, ok := As(err)
	if !ok {
		return err
	}
	cp := *e
	cp.field = field
	return &cp
}

// As finds our *Error anywhere in err's chain
func As(err error) (*Error, bool) {
	var e *Error
	ok := stderrs.As(err, &e)
	return e, ok
}

// CodeOf is err's class; foreign errors are Unknown
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// HTTPStatus is the status the api answers err with
func HTTPStatus(err error) int {
	if s, ok := statusOf[CodeOf(err)]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// Wire is the error part of a response body
type Wire struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

// WireFrom strips err down to what a client may see
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	if e, ok := As(err); ok {
		return Wire{Code: e.code, Message: e.msg, Field: e.field}
	}
	return Wire{Code: ErrorCodeUnknown, Message: err.Error()}
}
