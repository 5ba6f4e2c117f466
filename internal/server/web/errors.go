package web

import (
	"errors"
	"net/http"
)

// ErrorKindHeader names the failure class on error responses.
const ErrorKindHeader = "X-Error-Kind"

// Error is a failure carrying the HTTP status it maps to. Detail is logged,
// never sent: error responses have an empty body.
type Error struct {
	Status int
	Kind   string
	Detail string
}

func (e *Error) Error() string {
	if e.Kind != "" {
		return http.StatusText(e.Status) + " (" + e.Kind + "): " + e.Detail
	}
	return http.StatusText(e.Status) + ": " + e.Detail
}

// Factory helpers returning *Error.
func ErrBadRequest(detail string) *Error {
	return &Error{Status: http.StatusBadRequest, Detail: detail}
}
func ErrNotFound(detail string) *Error {
	return &Error{Status: http.StatusNotFound, Detail: detail}
}
func ErrInternal(detail string) *Error {
	return &Error{Status: http.StatusInternalServerError, Detail: detail}
}

// WithKind sets the value of the X-Error-Kind header.
func (e *Error) WithKind(kind string) *Error {
	e.Kind = kind
	return e
}

// WrapError normalizes any error into *Error.
func WrapError(err error) *Error {
	if err == nil {
		return nil
	}
	var we *Error
	if errors.As(err, &we) {
		return we
	}
	return ErrInternal(err.Error())
}

// ErrorResponse renders err as an empty-bodied status response.
func ErrorResponse(err error) *Response {
	we := WrapError(err)
	res := &Response{Status: we.Status}
	if we.Kind != "" {
		res.SetHeader(ErrorKindHeader, we.Kind)
	}
	res.SetBody(nil)
	return res
}
