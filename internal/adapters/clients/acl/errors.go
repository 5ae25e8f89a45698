package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jsamuelsen/daily-wisdom/internal/adapters/clients"
	"github.com/jsamuelsen/daily-wisdom/internal/domain"
)

// maxErrorBody bounds how much of an error response is read for context.
const maxErrorBody = 64 << 10

// ErrorResponse is the error envelope of the quotes API.
// It supports both the flat FreeAPI shape (statusCode/message/success) and a
// nested error object some gateways put in front of it.
type ErrorResponse struct {
	Success    bool        `json:"success"`
	StatusCode int         `json:"statusCode,omitempty"`
	Message    string      `json:"message,omitempty"`
	Error      ErrorDetail `json:"error"`
}

// ErrorDetail is the nested error object.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// GetMessage returns the error message from either nested or top-level format.
func (e *ErrorResponse) GetMessage() string {
	if e.Error.Message != "" {
		return e.Error.Message
	}

	return e.Message
}

// ParseErrorResponse attempts to parse an error response body.
// Returns nil if the body is empty or cannot be parsed.
func ParseErrorResponse(body io.Reader) *ErrorResponse {
	if body == nil {
		return nil
	}

	var errResp ErrorResponse
	if err := json.NewDecoder(io.LimitReader(body, maxErrorBody)).Decode(&errResp); err != nil {
		return nil
	}

	if errResp.GetMessage() == "" {
		return nil
	}

	return &errResp
}

// MapHTTPError maps a failed call to the quotes API to a domain error.
//
// Every failure is a NetworkError (domain.ErrUnavailable): transport errors,
// an open circuit, exhausted retries and any non-2xx status. Context
// cancellation and deadline errors are passed through wrapped so callers can
// tell "the caller gave up" from "the API is down".
//
// Parameters:
//   - resp: the HTTP response (nil for transport errors)
//   - clientErr: any error from the HTTP client (may be nil)
//   - serviceName: name of the external service for error context
//   - operation: the operation being performed (e.g., "list quotes")
func MapHTTPError(resp *http.Response, clientErr error, serviceName, operation string) error {
	if clientErr != nil {
		return mapClientError(clientErr, serviceName, operation)
	}

	if resp == nil {
		return domain.NewUnavailableError(serviceName, "no response received")
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	var errResp *ErrorResponse
	if resp.Body != nil {
		errResp = ParseErrorResponse(resp.Body)
	}

	return mapStatusCode(resp.StatusCode, errResp, serviceName, operation)
}

func mapClientError(err error, serviceName, operation string) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: %w", operation, err)

	case errors.Is(err, clients.ErrCircuitOpen):
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("circuit breaker open during %s", operation))

	case errors.Is(err, clients.ErrRateLimited):
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("client rate limit reached during %s", operation))

	case errors.Is(err, clients.ErrMaxRetriesExceeded):
		var statusErr *clients.StatusError
		if errors.As(err, &statusErr) {
			if errResp := ParseErrorResponse(bytes.NewReader(statusErr.Body)); errResp != nil {
				return domain.NewUnavailableError(serviceName, fmt.Sprintf("max retries exceeded during %s: HTTP %d: %s",
					operation, statusErr.StatusCode, errResp.GetMessage()))
			}
		}

		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("max retries exceeded during %s: %v", operation, err))

	default:
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("%s failed: %v", operation, err))
	}
}

func mapStatusCode(status int, errResp *ErrorResponse, serviceName, operation string) error {
	message := defaultMessageForStatus(status, operation)
	if errResp != nil && errResp.GetMessage() != "" {
		message = fmt.Sprintf("HTTP %d: %s", status, errResp.GetMessage())
	}

	return domain.NewUnavailableError(serviceName, message)
}

func defaultMessageForStatus(status int, operation string) string {
	switch status {
	case http.StatusTooManyRequests:
		return "rate limit exceeded"
	case http.StatusServiceUnavailable:
		return "service temporarily unavailable"
	default:
		return fmt.Sprintf("%s failed with status %d", operation, status)
	}
}
