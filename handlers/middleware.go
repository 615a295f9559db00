package handlers

import (
	"net"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"jobconnect-backend/pkg/apperror"
	"jobconnect-backend/pkg/logger"
	"jobconnect-backend/pkg/ratelimit"
)

// ============================================
// CORS MIDDLEWARE
// ============================================

// CORS - answers preflight requests and sets the allow headers for origins
// on the configured allow-list. "*" in the list allows everything.
func CORS(allowedOrigins []string) func(http.HandlerFunc) http.HandlerFunc {
	allowAll := false
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		if origin == "*" {
			allowAll = true
		}
		allowed[origin] = true
	}

	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if allowAll {
				w.Header().Set("Access-Control-Allow-Origin", "*")
			} else if origin != "" && allowed[origin] {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Vary", "Origin")
			}
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Accept")
			w.Header().Set("Access-Control-Max-Age", "86400")

			// Preflight answered immediately
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next(w, r)
		}
	}
}

// ============================================
// REQUEST LOGGING MIDDLEWARE
// ============================================

// statusRecorder - captures the response status for the access log
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// RequestLogger - structured access log for every request
func RequestLogger(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next(rec, r)

		logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.String("remote", clientIP(r)),
			zap.Duration("duration", time.Since(start)),
		)
	}
}

// ============================================
// RATE LIMIT MIDDLEWARE
// ============================================

// RateLimit - per-client-IP throttle. Breaching the limit answers 429 with
// a Retry-After header.
func RateLimit(limiter ratelimit.Limiter, retryAfterSeconds int) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(clientIP(r)) {
				writeError(w, r, apperror.NewRateLimitExceeded(retryAfterSeconds))
				return
			}
			next(w, r)
		}
	}
}

// clientIP - best-effort caller address; honors X-Forwarded-For when a
// proxy is in front.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
