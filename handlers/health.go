package handlers

import (
	"database/sql"
	"net/http"
)

// ============================================
// ROOT & HEALTH
// ============================================

const apiVersion = "1.0.0"

type rootResponse struct {
	Status      string `json:"status"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Root - GET / service banner
func Root(environment string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not found"})
			return
		}
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		writeJSON(w, http.StatusOK, rootResponse{
			Status:      "running",
			Version:     apiVersion,
			Environment: environment,
		})
	}
}

// Health - GET /health; probes the database with SELECT 1
func Health(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		var one int
		if err := db.QueryRowContext(r.Context(), "SELECT 1").Scan(&one); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, healthResponse{
				Status:   "unhealthy",
				Database: "unreachable",
			})
			return
		}
		writeJSON(w, http.StatusOK, healthResponse{
			Status:   "healthy",
			Database: "up",
		})
	}
}
