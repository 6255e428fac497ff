package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is a closed enumeration of error categories. Every error that
// crosses the controller boundary is one of these; the HTTP status is
// derived from the kind exactly once, at that boundary.
type Kind string

const (
	KindInvalid      Kind = "INVALID"       // 400
	KindNotFound     Kind = "NOT_FOUND"     // 404
	KindUpstreamAuth Kind = "UPSTREAM_AUTH" // 401
	KindUpstream     Kind = "UPSTREAM"      // 500
	KindInternal     Kind = "INTERNAL"      // 500
)

// Error carries a user-safe message and an optional developer detail.
type Error struct {
	Kind    Kind
	Message string
	Detail  string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Status maps the error kind to an HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindInvalid:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUpstreamAuth:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Invalid creates a 400 validation error.
func Invalid(msg string) *Error {
	return &Error{Kind: KindInvalid, Message: msg}
}

// NotFound creates a 404 error.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// UpstreamAuth creates a 401 error for rejected upstream credentials.
func UpstreamAuth(msg, detail string) *Error {
	return &Error{Kind: KindUpstreamAuth, Message: msg, Detail: detail}
}

// Upstream creates a 500 error for an unreachable or failing upstream.
func Upstream(msg string, err error) *Error {
	e := &Error{Kind: KindUpstream, Message: msg}
	if err != nil {
		e.Detail = err.Error()
	}
	return e
}

// Internal wraps an unexpected fault.
func Internal(err error) *Error {
	e := &Error{Kind: KindInternal, Message: "internal error"}
	if err != nil {
		e.Detail = err.Error()
	}
	return e
}

// Is reports whether err is an *Error with the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// From extracts an *Error from err, wrapping anything else as internal.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal(err)
}
