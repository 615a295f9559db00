package handlers

import (
	"net/http"

	"jobconnect-backend/internal/service"
	"jobconnect-backend/models"
	"jobconnect-backend/pkg/apperror"
	"jobconnect-backend/pkg/validator"
)

// ============================================
// FAVORITE TECHNICIAN HANDLERS
// ============================================

// FavoritesHandler - /api/v1/favorite collection route.
// GET lists all favorites, POST saves a client/technician pair, DELETE
// removes one (?client_id=&technician_id=). No PUT: a favorite is a pair,
// not a record with mutable fields.
func FavoritesHandler(svc *service.FavoriteService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			favorites, err := svc.GetAll(r.Context())
			if err != nil {
				writeError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, favorites)

		case http.MethodPost:
			var req models.FavoriteTechnicianCreate
			if err := decodeJSON(r, &req); err != nil {
				writeError(w, r, apperror.NewValidation("Invalid request body"))
				return
			}
			if err := validator.Validate(req); err != nil {
				writeError(w, r, apperror.NewValidation(err.Error()))
				return
			}
			favorite, err := svc.Create(r.Context(), req)
			if err != nil {
				writeError(w, r, err)
				return
			}
			writeJSON(w, http.StatusCreated, favorite)

		case http.MethodDelete:
			clientID := r.URL.Query().Get("client_id")
			technicianID := r.URL.Query().Get("technician_id")
			if clientID == "" || technicianID == "" {
				writeError(w, r, apperror.NewValidation("client_id and technician_id query parameters are required"))
				return
			}
			writeDeleteResult(w, r, svc.Delete(r.Context(), clientID, technicianID))

		default:
			methodNotAllowed(w)
		}
	}
}

// FavoritesByClient - GET /api/v1/favorite/client/{id}
func FavoritesByClient(svc *service.FavoriteService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		clientID, rest := idFromPath(r, "/api/v1/favorite/client/")
		if clientID == "" || rest != "" {
			writeError(w, r, apperror.NewValidation("client id is required"))
			return
		}
		favorites, err := svc.GetByClientID(r.Context(), clientID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, favorites)
	}
}
