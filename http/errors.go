// Package http provides shared HTTP client plumbing for the CapEdge
// API client: request execution with retries, a status-code error
// taxonomy, and generic page iteration.
package http

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for API calls.
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthorized indicates invalid or missing authentication.
	ErrUnauthorized = errors.New("authentication failed")

	// ErrForbidden indicates the user lacks permission for the operation.
	ErrForbidden = errors.New("permission denied")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrBadRequest indicates the request was malformed.
	ErrBadRequest = errors.New("bad request")

	// ErrServerError indicates a server-side error occurred.
	ErrServerError = errors.New("server error")

	// ErrSessionExpired indicates the session cookie is no longer valid.
	ErrSessionExpired = errors.New("session expired")
)

// APIError represents a non-success response from the remote API.
type APIError struct {
	// Service is the name of the API (e.g., "capedge").
	Service string

	// StatusCode is the HTTP status code returned.
	StatusCode int

	// Message is the error message from the API.
	Message string

	// Endpoint is the API endpoint that was called.
	Endpoint string

	// RequestID is the request ID for debugging (if available).
	RequestID string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("%s API error (%d) at %s [%s]: %s",
			e.Service, e.StatusCode, e.Endpoint, e.RequestID, e.Message)
	}
	return fmt.Sprintf("%s API error (%d) at %s: %s",
		e.Service, e.StatusCode, e.Endpoint, e.Message)
}

// Unwrap returns the underlying sentinel error based on status code.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case 400:
		return ErrBadRequest
	case 401:
		return ErrUnauthorized
	case 403:
		return ErrForbidden
	case 404:
		return ErrNotFound
	case 429:
		return ErrRateLimited
	default:
		if e.StatusCode >= 500 {
			return ErrServerError
		}
		return nil
	}
}

// SessionExpiredError indicates the API answered with its login page
// instead of JSON. The cookies need to be refreshed from a browser
// session.
type SessionExpiredError struct {
	// Service is the API whose session expired.
	Service string

	// Endpoint is the call that detected the expiry.
	Endpoint string
}

// Error implements the error interface.
func (e *SessionExpiredError) Error() string {
	return fmt.Sprintf("%s session expired or invalid at %s: got HTML instead of JSON, refresh your cookies",
		e.Service, e.Endpoint)
}

// Unwrap returns ErrSessionExpired.
func (e *SessionExpiredError) Unwrap() error {
	return ErrSessionExpired
}

// IsNotFound reports whether the error indicates a resource was not found.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnauthorized reports whether the error indicates authentication failed.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsRateLimited reports whether the error indicates rate limiting.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// IsSessionExpired reports whether the error indicates the session
// cookie is no longer accepted.
func IsSessionExpired(err error) bool {
	return errors.Is(err, ErrSessionExpired)
}

// IsRetryable reports whether the error is transient and should be retried.
func IsRetryable(err error) bool {
	if errors.Is(err, ErrRateLimited) || errors.Is(err, ErrServerError) {
		return true
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		// 5xx errors are retryable
		return apiErr.StatusCode >= 500 && apiErr.StatusCode < 600
	}

	return false
}
