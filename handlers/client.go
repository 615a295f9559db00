package handlers

import (
	"net/http"

	"jobconnect-backend/internal/service"
	"jobconnect-backend/models"
	"jobconnect-backend/pkg/apperror"
	"jobconnect-backend/pkg/validator"
)

// ============================================
// CLIENT HANDLERS
// ============================================

// ClientsHandler - /api/v1/client collection route (GET list, POST create)
func ClientsHandler(svc *service.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			clients, err := svc.GetAll(r.Context())
			if err != nil {
				writeError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, clients)

		case http.MethodPost:
			var req models.ClientCreate
			if err := decodeJSON(r, &req); err != nil {
				writeError(w, r, apperror.NewValidation("Invalid request body"))
				return
			}
			if err := validator.Validate(req); err != nil {
				writeError(w, r, apperror.NewValidation(err.Error()))
				return
			}
			client, err := svc.Create(r.Context(), req)
			if err != nil {
				writeError(w, r, err)
				return
			}
			writeJSON(w, http.StatusCreated, client)

		default:
			methodNotAllowed(w)
		}
	}
}

// ClientItemHandler - /api/v1/client/{id} item route, plus
// POST /api/v1/client/{id}/deactivate
func ClientItemHandler(svc *service.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, rest := idFromPath(r, "/api/v1/client/")
		if id == "" {
			writeError(w, r, apperror.NewNotFound("Client not found"))
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
			writeError(w, r, apperror.NewNotFound("Client not found"))
			return
		}

		switch r.Method {
		case http.MethodGet:
			client, err := svc.GetByID(r.Context(), id)
			if err != nil {
				writeError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, client)

		case http.MethodPut:
			var req models.ClientUpdate
			if err := decodeJSON(r, &req); err != nil {
				writeError(w, r, apperror.NewValidation("Invalid request body"))
				return
			}
			if err := validator.Validate(req); err != nil {
				writeError(w, r, apperror.NewValidation(err.Error()))
				return
			}
			client, err := svc.Update(r.Context(), id, req)
			if err != nil {
				writeError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, client)

		case http.MethodDelete:
			writeDeleteResult(w, r, svc.Delete(r.Context(), id))

		default:
			methodNotAllowed(w)
		}
	}
}

// ClientByEmail - GET /api/v1/client/by-email?email=
func ClientByEmail(svc *service.ClientService) http.HandlerFunc {
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
		client, err := svc.GetByEmail(r.Context(), email)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, client)
	}
}

// ClientLogin - POST /api/v1/client/login; returns the public profile on
// success, no token is issued
func ClientLogin(svc *service.ClientService) http.HandlerFunc {
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
		client, err := svc.Authenticate(r.Context(), req.Email, req.Password)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, client)
	}
}
