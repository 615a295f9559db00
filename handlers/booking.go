package handlers

import (
	"net/http"

	"jobconnect-backend/internal/service"
	"jobconnect-backend/models"
	"jobconnect-backend/pkg/apperror"
	"jobconnect-backend/pkg/validator"
)

// ============================================
// BOOKING HANDLERS
// ============================================

// BookingsHandler - /api/v1/booking collection route (GET list, POST create)
func BookingsHandler(svc *service.BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			bookings, err := svc.GetAll(r.Context())
			if err != nil {
				writeError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, bookings)

		case http.MethodPost:
			var req models.BookingCreate
			if err := decodeJSON(r, &req); err != nil {
				writeError(w, r, apperror.NewValidation("Invalid request body"))
				return
			}
			if err := validator.Validate(req); err != nil {
				writeError(w, r, apperror.NewValidation(err.Error()))
				return
			}
			booking, err := svc.Create(r.Context(), req)
			if err != nil {
				writeError(w, r, err)
				return
			}
			writeJSON(w, http.StatusCreated, booking)

		default:
			methodNotAllowed(w)
		}
	}
}

// BookingsByColumn - GET /api/v1/booking/by/{column}?value=
// Only allow-listed columns resolve; anything else is a client error.
func BookingsByColumn(svc *service.BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		column, rest := idFromPath(r, "/api/v1/booking/by/")
		if column == "" || rest != "" {
			writeError(w, r, apperror.NewValidation("filter column is required"))
			return
		}
		bookings, err := svc.GetAllBy(r.Context(), column, r.URL.Query().Get("value"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, bookings)
	}
}

// BookingItemHandler - /api/v1/booking/{id} item route, plus
// POST /api/v1/booking/{id}/cancel
func BookingItemHandler(svc *service.BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, rest := idFromPath(r, "/api/v1/booking/")
		if id == "" {
			writeError(w, r, apperror.NewNotFound("Booking not found"))
			return
		}

		if rest == "cancel" {
			if r.Method != http.MethodPost {
				methodNotAllowed(w)
				return
			}
			booking, err := svc.Cancel(r.Context(), id)
			if err != nil {
				writeError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, booking)
			return
		}
		if rest != "" {
			writeError(w, r, apperror.NewNotFound("Booking not found"))
			return
		}

		switch r.Method {
		case http.MethodGet:
			booking, err := svc.GetByID(r.Context(), id)
			if err != nil {
				writeError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, booking)

		case http.MethodPut:
			var req models.BookingUpdate
			if err := decodeJSON(r, &req); err != nil {
				writeError(w, r, apperror.NewValidation("Invalid request body"))
				return
			}
			if err := validator.Validate(req); err != nil {
				writeError(w, r, apperror.NewValidation(err.Error()))
				return
			}
			booking, err := svc.Update(r.Context(), id, req)
			if err != nil {
				writeError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, booking)

		case http.MethodDelete:
			writeDeleteResult(w, r, svc.Delete(r.Context(), id))

		default:
			methodNotAllowed(w)
		}
	}
}
