package models

import "time"

// ReviewInDB - database representation (reviews table)
type ReviewInDB struct {
	ReviewID     string    `json:"review_id"`
	BookingID    string    `json:"booking_id"`
	ClientID     string    `json:"client_id"`
	TechnicianID string    `json:"technician_id"`
	Rating       float64   `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
}

// ReviewResponse - public shape
type ReviewResponse = ReviewInDB

// ReviewCreate - creation request
type ReviewCreate struct {
	BookingID    string  `json:"booking_id" validate:"required,uuid"`
	ClientID     string  `json:"client_id" validate:"required,uuid"`
	TechnicianID string  `json:"technician_id" validate:"required,uuid"`
	Rating       float64 `json:"rating" validate:"gte=0,lte=5"`
	Comment      string  `json:"comment"`
}

// ReviewUpdate - sparse update request; nil fields stay unchanged
type ReviewUpdate struct {
	Rating  *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Comment *string  `json:"comment"`
}
