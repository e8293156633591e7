package webfetch

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Application error codes.
//
// These map machine-readable causes onto fetch failures. HTTP-level error
// statuses (4xx/5xx) are not errors at all: they come back as successful
// responses carrying the status code.
const (
	EBLOCKED     = "blocked"     // URL rejected by allow/block prefix lists
	ECONNECT     = "connect"     // connection-level failure (refused, DNS, TLS)
	EFETCHER     = "fetcher"     // specialized fetcher internal failure
	EINTERNAL    = "internal"    // bug or unclassified failure
	EINVALID     = "invalid"     // validation failed before any network call
	ETIMEOUT     = "timeout"     // first-byte deadline elapsed
	EUNAVAILABLE = "unavailable" // other transport failure
)

// Error is an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Errorf constructs an *Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// ErrorCode returns the code of err if it is an application error,
// EINTERNAL for any other non-nil error, and the empty string for nil.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of err if it is an application error,
// a generic message for any other non-nil error, and "" for nil.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// ClassifyTransportError maps a transport-level failure from the HTTP
// client onto the error taxonomy: timeout-shaped errors become ETIMEOUT,
// connection-shaped errors become ECONNECT, anything else becomes
// EUNAVAILABLE with the underlying message preserved.
func ClassifyTransportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return Errorf(ETIMEOUT, "request timed out: server did not respond in time")
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return Errorf(ECONNECT, "failed to connect to server")
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return Errorf(ECONNECT, "failed to connect to server")
	}
	return Errorf(EUNAVAILABLE, "request failed: %v", err)
}
