package handlers

import (
	"net/http"

	"jobconnect-backend/internal/service"
	"jobconnect-backend/models"
	"jobconnect-backend/pkg/apperror"
	"jobconnect-backend/pkg/validator"
)

// ============================================
// REVIEW HANDLERS
// ============================================

// ReviewsHandler - /api/v1/review collection route (GET list, POST create)
func ReviewsHandler(svc *service.ReviewService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			reviews, err := svc.GetAll(r.Context())
			if err != nil {
				writeError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, reviews)

		case http.MethodPost:
			var req models.ReviewCreate
			if err := decodeJSON(r, &req); err != nil {
				writeError(w, r, apperror.NewValidation("Invalid request body"))
				return
			}
			if err := validator.Validate(req); err != nil {
				writeError(w, r, apperror.NewValidation(err.Error()))
				return
			}
			review, err := svc.Create(r.Context(), req)
			if err != nil {
				writeError(w, r, err)
				return
			}
			writeJSON(w, http.StatusCreated, review)

		default:
			methodNotAllowed(w)
		}
	}
}

// ReviewsByColumn - GET /api/v1/review/by/{column}?value=
func ReviewsByColumn(svc *service.ReviewService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		column, rest := idFromPath(r, "/api/v1/review/by/")
		if column == "" || rest != "" {
			writeError(w, r, apperror.NewValidation("filter column is required"))
			return
		}
		reviews, err := svc.GetAllBy(r.Context(), column, r.URL.Query().Get("value"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, reviews)
	}
}

// ReviewItemHandler - /api/v1/review/{id} item route
func ReviewItemHandler(svc *service.ReviewService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, rest := idFromPath(r, "/api/v1/review/")
		if id == "" || rest != "" {
			writeError(w, r, apperror.NewNotFound("Review not found"))
			return
		}

		switch r.Method {
		case http.MethodGet:
			review, err := svc.GetByID(r.Context(), id)
			if err != nil {
				writeError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, review)

		case http.MethodPut:
			var req models.ReviewUpdate
			if err := decodeJSON(r, &req); err != nil {
				writeError(w, r, apperror.NewValidation("Invalid request body"))
				return
			}
			if err := validator.Validate(req); err != nil {
				writeError(w, r, apperror.NewValidation(err.Error()))
				return
			}
			review, err := svc.Update(r.Context(), id, req)
			if err != nil {
				writeError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, review)

		case http.MethodDelete:
			writeDeleteResult(w, r, svc.Delete(r.Context(), id))

		default:
			methodNotAllowed(w)
		}
	}
}
