package errors

import (
	"errors"
	"fmt"
)

// Kind is the closed set of failure categories the service layer may
// produce. Every Kind has exactly one transport status; the mapping
// lives at the HTTP boundary.
type Kind int

const (
	KindValidation Kind = iota
	KindConflict
	KindAuthentication
	KindForbidden
	KindNotFound
	KindUnexpected
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindAuthentication:
		return "authentication"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindUnexpected:
		return "unexpected"
	default:
		return "unknown"
	}
}

// Error is a categorized application error. Message is safe to show to
// a client; Cause is server-side detail only.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *Error) Unwrap() error {
	return e.Cause
}

// Validation creates a validation error for malformed or missing input.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Conflict creates an error for a duplicate unique key.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Authentication creates an error for bad credentials or a missing token.
func Authentication(message string) *Error {
	return &Error{Kind: KindAuthentication, Message: message}
}

// Forbidden creates an error for an invalid or expired token.
func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

// NotFound creates an error for a resource that is absent or not owned
// by the caller.
func NotFound(resource string) *Error {
	return &Error{Kind: KindNotFound, Message: resource + " not found"}
}

// Unexpected wraps a store or infrastructure fault. The operation name
// and cause are logged server-side and never sent to the client.
func Unexpected(operation string, cause error) *Error {
	return &Error{
		Kind:    KindUnexpected,
		Message: fmt.Sprintf("%s failed", operation),
		Cause:   cause,
	}
}

// As converts err to *Error if possible.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// KindOf returns the kind of err. Errors produced outside this package
// are treated as unexpected faults.
func KindOf(err error) Kind {
	if appErr, ok := As(err); ok {
		return appErr.Kind
	}
	return KindUnexpected
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
