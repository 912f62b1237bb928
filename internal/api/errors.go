package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failed request
type Kind string

const (
	KindInvalid      Kind = "invalid"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindInternal     Kind = "internal"
	KindUnavailable  Kind = "unavailable"
)

// Error is returned for every failed request, including transport failures
type Error struct {
	Kind      Kind
	Status    int    // 0 when no response arrived
	Message   string // safe to show to the operator
	RequestID string
	Err       error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// KindFromStatus maps an HTTP status to an error kind
func KindFromStatus(status int) Kind {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return KindInvalid
	case http.StatusUnauthorized:
		return KindUnauthorized
	case http.StatusForbidden:
		return KindForbidden
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusConflict:
		return KindConflict
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return KindUnavailable
	}
	if status >= 500 {
		return KindInternal
	}
	return KindInvalid
}

// defaultMessage is shown when the backend gives no message of its own
func defaultMessage(kind Kind) string {
	switch kind {
	case KindUnauthorized:
		return "Invalid email or password"
	case KindForbidden:
		return "You do not have access to this action"
	case KindNotFound:
		return "Not found"
	case KindConflict:
		return "This record was changed by someone else"
	case KindUnavailable:
		return "The server is unavailable, try again shortly"
	case KindInternal:
		return "The server hit an unexpected error"
	}
	return "The request was rejected"
}

// AsError extracts an *Error from err
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsKind reports whether err is an *Error of the given kind
func IsKind(err error, kind Kind) bool {
	e, ok := AsError(err)
	return ok && e.Kind == kind
}

// Message returns the operator facing message for err
func Message(err error) string {
	if e, ok := AsError(err); ok && e.Message != "" {
		return e.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
