package handlers

import (
	"net/http"

	"jobconnect-backend/internal/service"
	"jobconnect-backend/models"
	"jobconnect-backend/pkg/apperror"
	"jobconnect-backend/pkg/validator"
)

// ============================================
// NOTIFICATION HANDLERS
// ============================================

// NotificationsHandler - /api/v1/notification collection route.
// GET lists one recipient's notifications (?target=client|technician&user_id=),
// POST creates one.
func NotificationsHandler(svc *service.NotificationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			target := r.URL.Query().Get("target")
			userID := r.URL.Query().Get("user_id")
			if target == "" || userID == "" {
				writeError(w, r, apperror.NewValidation("target and user_id query parameters are required"))
				return
			}
			notifications, err := svc.GetAllByUser(r.Context(), target, userID)
			if err != nil {
				writeError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, notifications)

		case http.MethodPost:
			var req models.NotificationCreate
			if err := decodeJSON(r, &req); err != nil {
				writeError(w, r, apperror.NewValidation("Invalid request body"))
				return
			}
			if err := validator.Validate(req); err != nil {
				writeError(w, r, apperror.NewValidation(err.Error()))
				return
			}
			notification, err := svc.Create(r.Context(), req)
			if err != nil {
				writeError(w, r, err)
				return
			}
			writeJSON(w, http.StatusCreated, notification)

		default:
			methodNotAllowed(w)
		}
	}
}

// NotificationItemHandler - /api/v1/notification/{id} item route, plus
// PUT /api/v1/notification/{id}/read
func NotificationItemHandler(svc *service.NotificationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, rest := idFromPath(r, "/api/v1/notification/")
		if id == "" {
			writeError(w, r, apperror.NewNotFound("Notification not found"))
			return
		}

		if rest == "read" {
			if r.Method != http.MethodPut {
				methodNotAllowed(w)
				return
			}
			if err := svc.MarkRead(r.Context(), id); err != nil {
				writeError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, models.ResultResponse{Result: true})
			return
		}
		if rest != "" {
			writeError(w, r, apperror.NewNotFound("Notification not found"))
			return
		}

		switch r.Method {
		case http.MethodGet:
			notification, err := svc.GetByID(r.Context(), id)
			if err != nil {
				writeError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, notification)

		case http.MethodDelete:
			writeDeleteResult(w, r, svc.Delete(r.Context(), id))

		default:
			methodNotAllowed(w)
		}
	}
}
