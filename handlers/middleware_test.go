package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"jobconnect-backend/pkg/ratelimit"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"ok": "true"})
}

func TestCORSPreflight(t *testing.T) {
	handler := CORS([]string{"*"})(okHandler)

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodOptions, "/api/v1/client", nil)
	handler(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "DELETE")
	// preflight never reaches the handler
	assert.Empty(t, rec.Body.String())
}

func TestCORSAllowList(t *testing.T) {
	handler := CORS([]string{"https://app.example.com"})(okHandler)

	t.Run("allowed origin echoed", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/client", nil)
		r.Header.Set("Origin", "https://app.example.com")
		handler(rec, r)

		assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unknown origin gets no allow header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/client", nil)
		r.Header.Set("Origin", "https://evil.example.com")
		handler(rec, r)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
		// the request itself still runs; CORS is a browser contract
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	limiter := ratelimit.NewMemoryLimiter(1, 2)
	handler := RateLimit(limiter, 1)(okHandler)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/client", nil)
	r.RemoteAddr = "10.0.0.1:54321"

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		handler(rec, r)
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.NewRecorder()
	handler(rec, r)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "RATE_LIMIT_EXCEEDED")
}

func TestRateLimitPerClient(t *testing.T) {
	limiter := ratelimit.NewMemoryLimiter(1, 1)
	handler := RateLimit(limiter, 1)(okHandler)

	first := httptest.NewRequest(http.MethodGet, "/api/v1/client", nil)
	first.RemoteAddr = "10.0.0.1:1111"
	second := httptest.NewRequest(http.MethodGet, "/api/v1/client", nil)
	second.RemoteAddr = "10.0.0.2:2222"

	rec := httptest.NewRecorder()
	handler(rec, first)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler(rec, first)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// a different address has its own bucket
	rec = httptest.NewRecorder()
	handler(rec, second)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "10.0.0.9:4242"
	assert.Equal(t, "10.0.0.9", clientIP(r))

	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", clientIP(r))
}
