// Package apperror defines the error taxonomy shared by the store, the
// upstream catalog client and the HTTP layer. Handlers never inspect raw
// database or transport errors; they receive one of these and the echo
// error handler maps it to a status code.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrDuplicate    = errors.New("duplicate")
	ErrInternal     = errors.New("internal error")
)

// Error carries a sentinel for errors.Is checks, a caller-safe message and
// the HTTP status the boundary should answer with.
type Error struct {
	Err     error
	Message string
	Status  int
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// BadRequest reports malformed or missing input.
func BadRequest(message string) *Error {
	return &Error{Err: ErrBadRequest, Message: message, Status: http.StatusBadRequest}
}

// Unauthorized reports missing or incorrect credentials, or a failed
// ownership check. The message is deliberately generic so callers cannot
// probe which usernames exist.
func Unauthorized(message string) *Error {
	return &Error{Err: ErrUnauthorized, Message: message, Status: http.StatusUnauthorized}
}

// NotFound reports a missing entity.
func NotFound(resource, id string) *Error {
	return &Error{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("no %s: %s", resource, id),
		Status:  http.StatusNotFound,
	}
}

// Duplicate reports a uniqueness violation. The source API answered these
// with 400 rather than 409, kept for compatibility.
func Duplicate(message string) *Error {
	return &Error{Err: ErrDuplicate, Message: message, Status: http.StatusBadRequest}
}

// Internal wraps an unclassified failure. The wrapped error is logged
// server-side; only the generic message crosses the API boundary.
func Internal(err error) *Error {
	return &Error{
		Err:     errors.Join(ErrInternal, err),
		Message: "internal server error",
		Status:  http.StatusInternalServerError,
	}
}
