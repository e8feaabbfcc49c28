package notion

import (
	"errors"
	"fmt"
)

// ErrorCode is the machine-readable error code returned by the Notion API.
type ErrorCode string

const (
	CodeUnauthorized        ErrorCode = "unauthorized"
	CodeRestrictedResource  ErrorCode = "restricted_resource"
	CodeObjectNotFound      ErrorCode = "object_not_found"
	CodeRateLimited         ErrorCode = "rate_limited"
	CodeValidationError     ErrorCode = "validation_error"
	CodeInvalidRequest      ErrorCode = "invalid_request"
	CodeInvalidRequestURL   ErrorCode = "invalid_request_url"
	CodeInternalServerError ErrorCode = "internal_server_error"
	CodeServiceUnavailable  ErrorCode = "service_unavailable"
)

// APIError is a structured error response from the Notion API. RetryAfter is
// the server-requested wait in seconds, zero when the header was absent.
type APIError struct {
	Code       ErrorCode
	Status     int
	Message    string
	RetryAfter float64
}

func (e *APIError) Error() string {
	return fmt.Sprintf("notion api error (%s, status %d): %s", e.Code, e.Status, e.Message)
}

// IsRetryable reports whether the error is transient: a rate-limit signal or
// a server-side failure. Auth, validation, and not-found errors are fatal.
func IsRetryable(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}

	switch apiErr.Code {
	case CodeRateLimited, CodeInternalServerError, CodeServiceUnavailable:
		return true
	}
	return false
}

func IsRateLimited(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == CodeRateLimited
}

// RetryAfterSeconds extracts the server-requested retry delay, if any.
func RetryAfterSeconds(err error) (float64, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.RetryAfter > 0 {
		return apiErr.RetryAfter, true
	}
	return 0, false
}
