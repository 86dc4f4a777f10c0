package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for errors.Is() checking. Every failure surfaced by a
// todo client wraps exactly one of these.
var (
	ErrTransport = errors.New("transport error")
	ErrService   = errors.New("service error")
	ErrDecode    = errors.New("decode error")
)

// TransportError reports a request that could not complete: DNS failure,
// refused connection, timeout, or an open circuit breaker.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, ErrTransport.Error(), e.Err)
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *TransportError) Unwrap() []error {
	return []error{ErrTransport, e.Err}
}

// ServiceError reports a non-2xx response from the remote service. Detail
// is the service's own message when the body carried one.
type ServiceError struct {
	Op         string
	StatusCode int
	Detail     string
}

func (e *ServiceError) Error() string {
	detail := e.Detail
	if detail == "" {
		detail = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%s: %s: HTTP %d: %s", e.Op, ErrService.Error(), e.StatusCode, detail)
}

func (e *ServiceError) Unwrap() error {
	return ErrService
}

// IsClientError reports whether the service rejected the request itself
// (4xx) rather than failing to handle it (5xx).
func (e *ServiceError) IsClientError() bool {
	return e.StatusCode >= http.StatusBadRequest && e.StatusCode < http.StatusInternalServerError
}

// DecodeError reports a response body that is not valid JSON or does not
// match the expected shape.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, ErrDecode.Error(), e.Err)
}

func (e *DecodeError) Unwrap() []error {
	return []error{ErrDecode, e.Err}
}

// Describe returns a short human-readable sentence for err suitable for
// showing in place of data. Unknown errors fall back to err.Error().
func Describe(err error) string {
	var svcErr *ServiceError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &svcErr):
		detail := svcErr.Detail
		if detail == "" {
			detail = http.StatusText(svcErr.StatusCode)
		}
		return fmt.Sprintf("The todo service rejected the request (HTTP %d): %s", svcErr.StatusCode, detail)
	case errors.Is(err, ErrTransport):
		return "Could not reach the todo service. Check that it is running and try again."
	case errors.Is(err, ErrDecode):
		return "The todo service sent a response that could not be read."
	default:
		return err.Error()
	}
}

// Kind returns "transport", "service", or "decode" for the matching error
// family, and "other" for anything else. Used as a metric label.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrTransport):
		return "transport"
	case errors.Is(err, ErrService):
		return "service"
	case errors.Is(err, ErrDecode):
		return "decode"
	default:
		return "other"
	}
}
