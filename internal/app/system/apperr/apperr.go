// Package apperr defines the service-layer error taxonomy and its HTTP
// mapping. Handlers return *Error values (or wrap store sentinels into
// them); httpx translates them into the standard {message, error?} body
// at the request boundary.
package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies a failure for HTTP mapping.
type Kind int

const (
	// Validation: missing or malformed input. 400.
	Validation Kind = iota
	// Auth: bad credentials or an invalid bearer token. 400.
	Auth
	// Unauthorized: no token presented at all. 401.
	Unauthorized
	// Forbidden: authenticated but not permitted. 403.
	Forbidden
	// NotFound: the addressed resource does not exist. 404.
	NotFound
	// Conflict: a unique field collided (duplicate email). The original
	// API reports this as 400, which is preserved for compatibility.
	Conflict
	// Internal: unexpected store or server failure. 500.
	Internal
)

// Error is a classified failure with a user-facing message.
type Error struct {
	Kind    Kind
	Message string
	Err     error // underlying cause, surfaced in the "error" body field for 500s
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Status returns the HTTP status code for the error's kind.
func (e *Error) Status() int {
	switch e.Kind {
	case Validation, Auth, Conflict:
		return http.StatusBadRequest
	case Unauthorized:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// New returns a classified error with a user-facing message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap returns a classified error carrying an underlying cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Validationf and friends are shorthand constructors for the common kinds.

func Validationf(message string) *Error { return New(Validation, message) }
func Forbiddenf(message string) *Error  { return New(Forbidden, message) }
func NotFoundf(message string) *Error   { return New(NotFound, message) }
func Conflictf(message string) *Error   { return New(Conflict, message) }

// Internalf wraps an unexpected failure with a user-facing message.
func Internalf(message string, err error) *Error {
	return Wrap(Internal, message, err)
}

// From extracts the *Error from err, or classifies it as Internal with the
// given fallback message.
func From(err error, fallback string) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Internalf(fallback, err)
}
