package riot

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies an upstream API failure.
type ErrorKind string

const (
	KindUnauthenticated     ErrorKind = "unauthenticated"
	KindInvalidRequest      ErrorKind = "invalid_request"
	KindForbidden           ErrorKind = "forbidden"
	KindNotFound            ErrorKind = "not_found"
	KindRateLimited         ErrorKind = "rate_limited"
	KindUpstreamInternal    ErrorKind = "upstream_internal"
	KindUpstreamUnavailable ErrorKind = "upstream_unavailable"
	KindUnknown             ErrorKind = "unknown"
)

// APIError is a typed transport failure. Callers branch on Kind, never
// on message text.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("riot api: %s (%d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("riot api: %s: %s", e.Kind, e.Message)
}

// KindForStatus maps an HTTP status code to its semantic error kind.
func KindForStatus(status int) ErrorKind {
	switch status {
	case http.StatusBadRequest:
		return KindInvalidRequest
	case http.StatusUnauthorized:
		return KindUnauthenticated
	case http.StatusForbidden:
		return KindForbidden
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusTooManyRequests:
		return KindRateLimited
	case http.StatusInternalServerError:
		return KindUpstreamInternal
	case http.StatusServiceUnavailable:
		return KindUpstreamUnavailable
	default:
		return KindUnknown
	}
}

func statusMessage(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad request"
	case http.StatusUnauthorized:
		return "missing or invalid API key"
	case http.StatusForbidden:
		return "API key rejected or endpoint forbidden"
	case http.StatusNotFound:
		return "resource not found"
	case http.StatusTooManyRequests:
		return "upstream rate limit exceeded"
	case http.StatusInternalServerError:
		return "upstream internal error"
	case http.StatusServiceUnavailable:
		return "upstream unavailable"
	default:
		return fmt.Sprintf("unexpected status %d", status)
	}
}

// IsKind reports whether err is an APIError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	return IsKind(err, KindNotFound)
}

// IsRateLimited reports whether err is an upstream 429. The scheduler's
// admission control is supposed to prevent these; seeing one indicates a
// quota misconfiguration.
func IsRateLimited(err error) bool {
	return IsKind(err, KindRateLimited)
}

// IsUnauthenticated reports whether err is a credential failure.
func IsUnauthenticated(err error) bool {
	return IsKind(err, KindUnauthenticated)
}
