package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"jobconnect-backend/models"
	"jobconnect-backend/pkg/apperror"
	"jobconnect-backend/pkg/logger"
)

// ============================================
// SHARED HELPERS
// ============================================

// writeJSON - JSON response helper
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// decodeJSON - request body decode helper
func decodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// writeError - maps an error to its HTTP response. AppError values map 1:1
// to a status and stable code; anything else becomes a 500 with the cause
// kept in the log, not the response.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperror.From(err)
	if appErr.RetryAfter > 0 {
		w.Header().Set("Retry-After", strconv.Itoa(appErr.RetryAfter))
	}
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("code", appErr.Code),
			zap.Error(err),
		)
	}
	writeJSON(w, appErr.HTTPStatus, models.ErrorResponse{
		Code:    appErr.Code,
		Message: appErr.Message,
	})
}

// writeDeleteResult - delete endpoints answer {"result": true|false}; a
// missing row is result false, everything else is a regular error.
func writeDeleteResult(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		appErr := apperror.From(err)
		if appErr.HTTPStatus == http.StatusNotFound {
			writeJSON(w, http.StatusNotFound, models.ResultResponse{Result: false})
			return
		}
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.ResultResponse{Result: true})
}

// methodNotAllowed - uniform 405 body
func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, models.ErrorResponse{
		Code:    "METHOD_NOT_ALLOWED",
		Message: "Method not allowed",
	})
}

// idFromPath - extracts the first path segment after prefix.
// "/api/v1/client/abc/deactivate" with prefix "/api/v1/client/" yields
// ("abc", "deactivate").
func idFromPath(r *http.Request, prefix string) (id, rest string) {
	trimmed := strings.Trim(strings.TrimPrefix(r.URL.Path, prefix), "/")
	if trimmed == "" {
		return "", ""
	}
	parts := strings.SplitN(trimmed, "/", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return parts[0], ""
}
