// Package errors defines the AppError type the API speaks.
//
// Every failure a handler surfaces is an AppError: a stable machine code,
// a message written for direct display in the UI, and the HTTP status the
// error-handler middleware should answer with. Anything else that reaches
// the middleware is treated as an internal error and hidden from clients.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is the structured error carried from services to the HTTP layer.
type AppError struct {
	// Code identifies the failure for clients, e.g. "FIXTURE_NOT_FOUND".
	Code string `json:"code"`

	// Message is shown to the user verbatim.
	Message string `json:"message"`

	// HTTPStatus is the response status; not serialized.
	HTTPStatus int `json:"-"`

	// Err is the wrapped cause, if any.
	Err error `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the cause to errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError with an explicit status.
func New(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// Wrap attaches a cause to a new AppError.
func Wrap(err error, code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus, Err: err}
}

// NotFound creates a 404 error.
func NotFound(code, message string) *AppError {
	return New(code, message, http.StatusNotFound)
}

// BadRequest creates a 400 error.
func BadRequest(code, message string) *AppError {
	return New(code, message, http.StatusBadRequest)
}

// Unauthorized creates a 401 error.
func Unauthorized(code, message string) *AppError {
	return New(code, message, http.StatusUnauthorized)
}

// Forbidden creates a 403 error.
func Forbidden(code, message string) *AppError {
	return New(code, message, http.StatusForbidden)
}

// Conflict creates a 409 error.
func Conflict(code, message string) *AppError {
	return New(code, message, http.StatusConflict)
}

// Internal creates a 500 error.
func Internal(code, message string) *AppError {
	return New(code, message, http.StatusInternalServerError)
}

// IsAppError reports whether err carries an AppError and returns it.
func IsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
