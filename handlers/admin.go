package handlers

import (
	"net/http"

	"jobconnect-backend/internal/service"
	"jobconnect-backend/models"
	"jobconnect-backend/pkg/apperror"
	"jobconnect-backend/pkg/validator"
)

// ============================================
// ADMIN HANDLERS
// ============================================

// AdminsHandler - /api/v1/admin collection route (GET list, POST create)
func AdminsHandler(svc *service.AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			admins, err := svc.GetAll(r.Context())
			if err != nil {
				writeError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, admins)

		case http.MethodPost:
			var req models.AdminCreate
			if err := decodeJSON(r, &req); err != nil {
				writeError(w, r, apperror.NewValidation("Invalid request body"))
				return
			}
			if err := validator.Validate(req); err != nil {
				writeError(w, r, apperror.NewValidation(err.Error()))
				return
			}
			admin, err := svc.Create(r.Context(), req)
			if err != nil {
				writeError(w, r, err)
				return
			}
			writeJSON(w, http.StatusCreated, admin)

		default:
			methodNotAllowed(w)
		}
	}
}

// AdminItemHandler - /api/v1/admin/{id} item route
func AdminItemHandler(svc *service.AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, rest := idFromPath(r, "/api/v1/admin/")
		if id == "" || rest != "" {
			writeError(w, r, apperror.NewNotFound("Admin not found"))
			return
		}

		switch r.Method {
		case http.MethodGet:
			admin, err := svc.GetByID(r.Context(), id)
			if err != nil {
				writeError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, admin)

		case http.MethodPut:
			var req models.AdminUpdate
			if err := decodeJSON(r, &req); err != nil {
				writeError(w, r, apperror.NewValidation("Invalid request body"))
				return
			}
			if err := validator.Validate(req); err != nil {
				writeError(w, r, apperror.NewValidation(err.Error()))
				return
			}
			admin, err := svc.Update(r.Context(), id, req)
			if err != nil {
				writeError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, admin)

		case http.MethodDelete:
			writeDeleteResult(w, r, svc.Delete(r.Context(), id))

		default:
			methodNotAllowed(w)
		}
	}
}

// AdminByEmail - GET /api/v1/admin/by-email?email=
func AdminByEmail(svc *service.AdminService) http.HandlerFunc {
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
		admin, err := svc.GetByEmail(r.Context(), email)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, admin)
	}
}

// AdminLogin - POST /api/v1/admin/login
func AdminLogin(svc *service.AdminService) http.HandlerFunc {
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
		admin, err := svc.Authenticate(r.Context(), req.Email, req.Password)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, admin)
	}
}
