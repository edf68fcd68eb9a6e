package getter

import (
	"fmt"
	"net/http"
)

// StatusError reports an upstream HTTP status failure for one identifier.
// Status 0 means the request could not be serviced because the owning
// getter has shut down.
type StatusError struct {
	Status  int
	ID      string
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status %d for %q: %s", e.Status, e.ID, e.Message)
}

// Retryable reports whether the facade should automatically resubmit
// the identifier. Only transient server-side conditions qualify.
func (e *StatusError) Retryable() bool {
	switch e.Status {
	case http.StatusForbidden,
		http.StatusRequestTimeout,
		http.StatusTooManyRequests,
		http.StatusBadGateway,
		http.StatusServiceUnavailable:
		return true
	}
	return false
}

// TransportError reports that the physical call for a sub-batch could
// not complete at all.
type TransportError struct {
	ID  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed for %q: %v", e.ID, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ParseError reports a 200 response body that matched neither the item
// list nor the keyed-object shape. It invalidates the whole sub-batch,
// unlike a NoResultError which is scoped to one identifier.
type ParseError struct {
	Err  error
	Body string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unparseable response: %v (body: %s)", e.Err, e.Body)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ServiceError is a top-level {"error": ...} body returned by the
// service in place of results. It fails the whole sub-batch.
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string {
	return "service error: " + e.Message
}

// NoResultError reports an identifier that was sent but silently
// dropped from an otherwise successful response, which usually means
// the identifier itself was malformed.
type NoResultError struct {
	ID string
}

func (e *NoResultError) Error() string {
	return fmt.Sprintf("no result for %q: check input formatting", e.ID)
}
