// Package clients provides the resilient HTTP client used to reach the quotes API.
package clients

import (
	"errors"
	"fmt"
)

// Client errors represent failures in the HTTP client layer.
// They are translated to domain errors by the ACL adapters.
var (
	// ErrCircuitOpen is returned when the circuit breaker is open.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrMaxRetriesExceeded is returned after all retry attempts have been exhausted.
	// The last attempt's error is wrapped alongside it.
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")

	// ErrRateLimited is returned when the context cannot wait for a rate limiter token.
	ErrRateLimited = errors.New("rate limited")
)

// StatusError reports a retryable HTTP status that persisted through every attempt.
// Body holds the start of the last response body, already closed.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned HTTP %d", e.StatusCode)
}
