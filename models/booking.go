package models

import "time"

// BookingStatus - booking lifecycle state
type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingInProgress BookingStatus = "in_progress"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
)

// Valid reports whether the status is a known lifecycle state.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingInProgress, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are allowed.
func (s BookingStatus) Terminal() bool {
	return s == BookingCompleted || s == BookingCancelled
}

// CanTransitionTo enforces the booking lifecycle:
// pending -> confirmed -> in_progress -> completed, with cancellation
// allowed from any non-terminal state.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if s == next {
		return true
	}
	if s.Terminal() {
		return false
	}
	if next == BookingCancelled {
		return true
	}
	switch s {
	case BookingPending:
		return next == BookingConfirmed
	case BookingConfirmed:
		return next == BookingInProgress
	case BookingInProgress:
		return next == BookingCompleted
	}
	return false
}

// BookingInDB - database representation (bookings table)
type BookingInDB struct {
	BookingID    string        `json:"booking_id"`
	ClientID     string        `json:"client_id"`
	TechnicianID string        `json:"technician_id"`
	ServiceType  string        `json:"service_type"`
	Description  string        `json:"description"`
	Price        float64       `json:"price"`
	Status       BookingStatus `json:"status"`
	StartDate    *time.Time    `json:"start_date"`
	EndDate      *time.Time    `json:"end_date"`
	CreatedAt    time.Time     `json:"created_at"`
}

// BookingResponse - public shape (bookings carry nothing sensitive)
type BookingResponse = BookingInDB

// BookingCreate - creation request; bookings start out pending
type BookingCreate struct {
	ClientID     string     `json:"client_id" validate:"required,uuid"`
	TechnicianID string     `json:"technician_id" validate:"required,uuid"`
	ServiceType  string     `json:"service_type" validate:"required"`
	Description  string     `json:"description"`
	Price        float64    `json:"price" validate:"gt=0"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
}

// BookingUpdate - sparse update request; nil fields stay unchanged
type BookingUpdate struct {
	Description *string        `json:"description"`
	Price       *float64       `json:"price" validate:"omitempty,gt=0"`
	Status      *BookingStatus `json:"status" validate:"omitempty,oneof=pending confirmed in_progress completed cancelled"`
	StartDate   *time.Time     `json:"start_date"`
	EndDate     *time.Time     `json:"end_date"`
}
