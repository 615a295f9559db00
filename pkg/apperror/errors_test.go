package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorsMapToStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
	}{
		{"not found", NewNotFound("x"), "NOT_FOUND", http.StatusNotFound},
		{"duplicate", NewDuplicateEntry("x"), "DUPLICATE_ENTRY", http.StatusConflict},
		{"credentials", NewInvalidCredentials(), "INVALID_CREDENTIALS", http.StatusUnauthorized},
		{"permission", NewPermissionDenied("x"), "PERMISSION_DENIED", http.StatusForbidden},
		{"locked", NewAccountLocked(), "ACCOUNT_LOCKED", http.StatusForbidden},
		{"rate limit", NewRateLimitExceeded(1), "RATE_LIMIT_EXCEEDED", http.StatusTooManyRequests},
		{"validation", NewValidation("x"), "VALIDATION_ERROR", http.StatusBadRequest},
		{"transition", NewInvalidTransition("x"), "INVALID_TRANSITION", http.StatusConflict},
		{"upstream", NewUpstream("x", nil), "UPSTREAM_UNAVAILABLE", http.StatusServiceUnavailable},
		{"internal", NewInternal("x", nil), "INTERNAL_ERROR", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantStatus, tt.err.HTTPStatus)
		})
	}
}

func TestRetrySemantics(t *testing.T) {
	limited := NewRateLimitExceeded(3)
	assert.True(t, limited.Retryable)
	assert.Equal(t, 3, limited.RetryAfter)

	upstream := NewUpstream("provider down", errors.New("dial tcp: timeout"))
	assert.True(t, upstream.Retryable)

	assert.False(t, NewNotFound("x").Retryable)
	assert.False(t, NewValidation("x").Retryable)
}

func TestFromPassesAppErrorThrough(t *testing.T) {
	original := NewNotFound("Client not found")
	assert.Same(t, original, From(original))

	// wrapped AppErrors still surface
	wrapped := fmt.Errorf("service: %w", original)
	assert.Same(t, original, From(wrapped))
}

func TestFromWrapsUnknownErrors(t *testing.T) {
	cause := errors.New("pq: connection refused")
	appErr := From(cause)

	assert.Equal(t, "INTERNAL_ERROR", appErr.Code)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPStatus)
	// the cause stays internal, never in the client-facing message
	assert.NotContains(t, appErr.Message, "pq:")
	assert.ErrorIs(t, appErr, cause)
}

func TestErrorIncludesInternalCause(t *testing.T) {
	cause := errors.New("boom")
	appErr := NewInternal("Internal server error", cause)

	require.Contains(t, appErr.Error(), "INTERNAL_ERROR")
	assert.Contains(t, appErr.Error(), "boom")
	assert.Equal(t, cause, errors.Unwrap(appErr))
}
