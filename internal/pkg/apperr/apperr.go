package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error into one of the recoverable outcome categories
// the HTTP layer knows how to report.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindInvalidReference
	KindConflict
	KindInvalidState
	KindAuthorization
	KindNotFound
	KindInfrastructure
)

// Error is a classified application error. It wraps an optional cause so
// callers can still errors.Is/As into driver-level errors.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a classified error without a cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates a classified error with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap classifies an underlying error. Persistence failures are typically
// wrapped as KindInfrastructure so the caller can decide retry policy.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the kind from an error chain, KindUnknown if it carries none.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
