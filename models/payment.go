package models

import "time"

// PaymentMethod - how a payment was made
type PaymentMethod string

const (
	PaymentMethodCard    PaymentMethod = "card"
	PaymentMethodBanking PaymentMethod = "banking"
)

// PaymentStatus - payment state; free-form, no transition graph enforced
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentCancelled PaymentStatus = "cancelled"
)

// PaymentInDB - database representation (payments table)
type PaymentInDB struct {
	PaymentID       string        `json:"payment_id"`
	BookingID       string        `json:"booking_id"`
	ClientID        string        `json:"client_id"`
	TechnicianID    string        `json:"technician_id"`
	Amount          float64       `json:"amount"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	TransactionDate time.Time     `json:"transaction_date"`
}

// PaymentResponse - public shape
type PaymentResponse = PaymentInDB

// PaymentCreate - creation request
type PaymentCreate struct {
	BookingID     string        `json:"booking_id" validate:"required,uuid"`
	ClientID      string        `json:"client_id" validate:"required,uuid"`
	TechnicianID  string        `json:"technician_id" validate:"required,uuid"`
	Amount        float64       `json:"amount" validate:"required,gt=0"`
	PaymentMethod PaymentMethod `json:"payment_method" validate:"required,oneof=card banking"`
	PaymentStatus PaymentStatus `json:"payment_status" validate:"omitempty,oneof=pending completed cancelled"`
}

// PaymentUpdate - sparse update request; nil fields stay unchanged
type PaymentUpdate struct {
	Amount        *float64       `json:"amount" validate:"omitempty,gt=0"`
	PaymentMethod *PaymentMethod `json:"payment_method" validate:"omitempty,oneof=card banking"`
	PaymentStatus *PaymentStatus `json:"payment_status" validate:"omitempty,oneof=pending completed cancelled"`
}
