package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobconnect-backend/models"
	"jobconnect-backend/pkg/apperror"
	"jobconnect-backend/pkg/logger"
)

func init() {
	// handlers log through the global logger; tests need it initialized
	logger.Init("development", false)
}

func TestIDFromPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		prefix   string
		wantID   string
		wantRest string
	}{
		{"plain id", "/api/v1/client/abc-123", "/api/v1/client/", "abc-123", ""},
		{"trailing slash", "/api/v1/client/abc-123/", "/api/v1/client/", "abc-123", ""},
		{"id with action", "/api/v1/client/abc-123/deactivate", "/api/v1/client/", "abc-123", "deactivate"},
		{"no id", "/api/v1/client/", "/api/v1/client/", "", ""},
		{"filter column", "/api/v1/booking/by/status", "/api/v1/booking/by/", "status", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tt.path, nil)
			id, rest := idFromPath(r, tt.prefix)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantRest, rest)
		})
	}
}

func TestWriteErrorMapsAppError(t *testing.T) {
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/client/x", nil)

	writeError(rec, r, apperror.NewNotFound("Client not found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "NOT_FOUND", body.Code)
	assert.Equal(t, "Client not found", body.Message)
}

func TestWriteErrorSetsRetryAfter(t *testing.T) {
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/booking", nil)

	writeError(rec, r, apperror.NewRateLimitExceeded(2))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("Retry-After"))
}

func TestWriteErrorHidesInternalCause(t *testing.T) {
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/client", nil)

	writeError(rec, r, errors.New("pq: relation does not exist"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INTERNAL_ERROR", body.Code)
	assert.NotContains(t, body.Message, "pq:")
}

func TestWriteDeleteResult(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/api/v1/client/x", nil)

		writeDeleteResult(rec, r, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"result": true}`, rec.Body.String())
	})

	t.Run("missing row", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/api/v1/client/x", nil)

		writeDeleteResult(rec, r, apperror.NewNotFound("Client not found"))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"result": false}`, rec.Body.String())
	})
}
