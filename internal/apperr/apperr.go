package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies an error into one response family. Every handler maps an
// error to exactly one HTTP response through this package.
type Kind int

const (
	Internal Kind = iota
	Validation
	Conflict
	NotFound
	Auth
)

// Error carries a classification and a message safe to show clients.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New builds a classified error with a client-facing message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap classifies an underlying error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the classification; unclassified errors are Internal.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return Internal
}

// MessageOf returns the client-facing message, or a generic one for
// unclassified errors so internals never leak.
func MessageOf(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Message
	}
	return "Internal Server Error"
}

// Status maps a kind to its HTTP status code.
func Status(kind Kind) int {
	switch kind {
	case Validation, Auth:
		return http.StatusBadRequest
	case Conflict:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
