package models

import "time"

// NotificationInDB - database representation (notifications table).
// Exactly one of ClientID/TechnicianID is set.
type NotificationInDB struct {
	NotificationID string    `json:"notification_id"`
	ClientID       *string   `json:"client_id"`
	TechnicianID   *string   `json:"technician_id"`
	Message        string    `json:"message"`
	IsRead         bool      `json:"is_read"`
	CreatedAt      time.Time `json:"created_at"`
}

// NotificationResponse - public shape
type NotificationResponse = NotificationInDB

// NotificationCreate - creation request; the client XOR technician rule is
// checked in the service layer.
type NotificationCreate struct {
	ClientID     *string `json:"client_id" validate:"omitempty,uuid"`
	TechnicianID *string `json:"technician_id" validate:"omitempty,uuid"`
	Message      string  `json:"message" validate:"required"`
}
