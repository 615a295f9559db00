package handlers

import (
	"net/http"

	"jobconnect-backend/internal/service"
	"jobconnect-backend/models"
	"jobconnect-backend/pkg/apperror"
	"jobconnect-backend/pkg/validator"
)

// ============================================
// TECHNICIAN HANDLERS
// ============================================

// TechniciansHandler - /api/v1/technician collection route (GET list, POST create)
func TechniciansHandler(svc *service.TechnicianService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			technicians, err := svc.GetAll(r.Context())
			if err != nil {
				writeError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, technicians)

		case http.MethodPost:
			var req models.TechnicianCreate
			if err := decodeJSON(r, &req); err != nil {
				writeError(w, r, apperror.NewValidation("Invalid request body"))
				return
			}
			if err := validator.Validate(req); err != nil {
				writeError(w, r, apperror.NewValidation(err.Error()))
				return
			}
			technician, err := svc.Create(r.Context(), req)
			if err != nil {
				writeError(w, r, err)
				return
			}
			writeJSON(w, http.StatusCreated, technician)

		default:
			methodNotAllowed(w)
		}
	}
}

// TechnicianItemHandler - /api/v1/technician/{id} item route, plus
// POST /api/v1/technician/{id}/deactivate
func TechnicianItemHandler(svc *service.TechnicianService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, rest := idFromPath(r, "/api/v1/technician/")
		if id == "" {
			writeError(w, r, apperror.NewNotFound("Technician not found"))
			return
		}

		if rest == "deactivate" {
			if r.Method != http.MethodPost {
				methodNotAllowed(w)
				return
			}
			if err := svc.Deactivate(r.Context(), id); err != nil {
				writeError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, models.ResultResponse{Result: true})
			return
		}
		if rest != "" {
			writeError(w, r, apperror.NewNotFound("Technician not found"))
			return
		}

		switch r.Method {
		case http.MethodGet:
			technician, err := svc.GetByID(r.Context(), id)
			if err != nil {
				writeError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, technician)

		case http.MethodPut:
			var req models.TechnicianUpdate
			if err := decodeJSON(r, &req); err != nil {
				writeError(w, r, apperror.NewValidation("Invalid request body"))
				return
			}
			if err := validator.Validate(req); err != nil {
				writeError(w, r, apperror.NewValidation(err.Error()))
				return
			}
			technician, err := svc.Update(r.Context(), id, req)
			if err != nil {
				writeError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, technician)

		case http.MethodDelete:
			writeDeleteResult(w, r, svc.Delete(r.Context(), id))

		default:
			methodNotAllowed(w)
		}
	}
}

// TechnicianByEmail - GET /api/v1/technician/by-email?email=
func TechnicianByEmail(svc *service.TechnicianService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		email := r.URL.Query().Get("email")
		if email == "" {
			writeError(w, r, apperror.NewValidation("email query parameter is required"))
			return
		}
		technician, err := svc.GetByEmail(r.Context(), email)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, technician)
	}
}

// TechnicianLogin - POST /api/v1/technician/login
func TechnicianLogin(svc *service.TechnicianService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			methodNotAllowed(w)
			return
		}
		var req models.LoginRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, apperror.NewValidation("Invalid request body"))
			return
		}
		if err := validator.Validate(req); err != nil {
			writeError(w, r, apperror.NewValidation(err.Error()))
			return
		}
		technician, err := svc.Authenticate(r.Context(), req.Email, req.Password)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, technician)
	}
}
