package handlers

import (
	"net/http"

	"jobconnect-backend/internal/service"
	"jobconnect-backend/models"
	"jobconnect-backend/pkg/apperror"
	"jobconnect-backend/pkg/validator"
)

// ============================================
// PAYMENT HANDLERS
// ============================================

// PaymentsHandler - /api/v1/payment collection route (GET list, POST create)
func PaymentsHandler(svc *service.PaymentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			payments, err := svc.GetAll(r.Context())
			if err != nil {
				writeError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, payments)

		case http.MethodPost:
			var req models.PaymentCreate
			if err := decodeJSON(r, &req); err != nil {
				writeError(w, r, apperror.NewValidation("Invalid request body"))
				return
			}
			if err := validator.Validate(req); err != nil {
				writeError(w, r, apperror.NewValidation(err.Error()))
				return
			}
			payment, err := svc.Create(r.Context(), req)
			if err != nil {
				writeError(w, r, err)
				return
			}
			writeJSON(w, http.StatusCreated, payment)

		default:
			methodNotAllowed(w)
		}
	}
}

// PaymentsByColumn - GET /api/v1/payment/by/{column}?value=
func PaymentsByColumn(svc *service.PaymentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		column, rest := idFromPath(r, "/api/v1/payment/by/")
		if column == "" || rest != "" {
			writeError(w, r, apperror.NewValidation("filter column is required"))
			return
		}
		payments, err := svc.GetAllBy(r.Context(), column, r.URL.Query().Get("value"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, payments)
	}
}

// PaymentItemHandler - /api/v1/payment/{id} item route
func PaymentItemHandler(svc *service.PaymentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, rest := idFromPath(r, "/api/v1/payment/")
		if id == "" || rest != "" {
			writeError(w, r, apperror.NewNotFound("Payment not found"))
			return
		}

		switch r.Method {
		case http.MethodGet:
			payment, err := svc.GetByID(r.Context(), id)
			if err != nil {
				writeError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, payment)

		case http.MethodPut:
			var req models.PaymentUpdate
			if err := decodeJSON(r, &req); err != nil {
				writeError(w, r, apperror.NewValidation("Invalid request body"))
				return
			}
			if err := validator.Validate(req); err != nil {
				writeError(w, r, apperror.NewValidation(err.Error()))
				return
			}
			payment, err := svc.Update(r.Context(), id, req)
			if err != nil {
				writeError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, payment)

		case http.MethodDelete:
			writeDeleteResult(w, r, svc.Delete(r.Context(), id))

		default:
			methodNotAllowed(w)
		}
	}
}
