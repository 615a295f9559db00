package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError - typed domain error carried from the service layer up to the
// HTTP handlers, which map it 1:1 to a response status.
type AppError struct {
	Code       string `json:"code"`    // stable error kind for clients
	Message    string `json:"message"` // user-facing message
	HTTPStatus int    `json:"-"`
	RetryAfter int    `json:"-"` // seconds, >0 sets the Retry-After header
	Retryable  bool   `json:"-"`
	Internal   error  `json:"-"` // wrapped cause, never shown to clients
}

func (e *AppError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Internal)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Internal
}

// From extracts an *AppError from err, or wraps it as an internal error.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternal("Internal server error", err)
}

// NewNotFound - resource does not exist
func NewNotFound(message string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    message,
		HTTPStatus: http.StatusNotFound,
	}
}

// NewDuplicateEntry - natural key (email, pair) already taken
func NewDuplicateEntry(message string) *AppError {
	return &AppError{
		Code:       "DUPLICATE_ENTRY",
		Message:    message,
		HTTPStatus: http.StatusConflict,
	}
}

// NewInvalidCredentials - login failed
func NewInvalidCredentials() *AppError {
	return &AppError{
		Code:       "INVALID_CREDENTIALS",
		Message:    "Invalid email or password",
		HTTPStatus: http.StatusUnauthorized,
	}
}

// NewPermissionDenied - caller lacks the required privilege
func NewPermissionDenied(message string) *AppError {
	return &AppError{
		Code:       "PERMISSION_DENIED",
		Message:    message,
		HTTPStatus: http.StatusForbidden,
	}
}

// NewAccountLocked - account is deactivated or locked
func NewAccountLocked() *AppError {
	return &AppError{
		Code:       "ACCOUNT_LOCKED",
		Message:    "Account is locked",
		HTTPStatus: http.StatusForbidden,
	}
}

// NewRateLimitExceeded - too many requests, retry after the given seconds
func NewRateLimitExceeded(retryAfter int) *AppError {
	return &AppError{
		Code:       "RATE_LIMIT_EXCEEDED",
		Message:    "Too many requests",
		HTTPStatus: http.StatusTooManyRequests,
		RetryAfter: retryAfter,
		Retryable:  true,
	}
}

// NewValidation - malformed input rejected before reaching a repository
func NewValidation(message string) *AppError {
	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewInvalidTransition - booking status change not allowed by the lifecycle
func NewInvalidTransition(message string) *AppError {
	return &AppError{
		Code:       "INVALID_TRANSITION",
		Message:    message,
		HTTPStatus: http.StatusConflict,
	}
}

// NewUpstream - external provider failed or timed out; safe to retry
func NewUpstream(message string, internal error) *AppError {
	return &AppError{
		Code:       "UPSTREAM_UNAVAILABLE",
		Message:    message,
		HTTPStatus: http.StatusServiceUnavailable,
		Retryable:  true,
		Internal:   internal,
	}
}

// NewInternal - unexpected failure, cause kept out of the response
func NewInternal(message string, internal error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		Internal:   internal,
	}
}
