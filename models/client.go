package models

import "time"

// ClientInDB - database representation (clients table). The stored PostGIS
// point is exposed as separate latitude/longitude fields.
type ClientInDB struct {
	ClientID     string     `json:"client_id"`
	Name         string     `json:"name"`
	Surname      string     `json:"surname"`
	Email        string     `json:"email"`
	PhoneNumber  string     `json:"phone_number"`
	PasswordHash string     `json:"-"`
	LocationName string     `json:"location_name"`
	Latitude     float64    `json:"latitude"`
	Longitude    float64    `json:"longitude"`
	IsActive     bool       `json:"is_active"`
	LastLogin    *time.Time `json:"last_login"`
	CreatedAt    time.Time  `json:"created_at"`
}

// ClientResponse - public shape, password hash stripped
type ClientResponse struct {
	ClientID     string     `json:"client_id"`
	Name         string     `json:"name"`
	Surname      string     `json:"surname"`
	Email        string     `json:"email"`
	PhoneNumber  string     `json:"phone_number"`
	LocationName string     `json:"location_name"`
	Latitude     float64    `json:"latitude"`
	Longitude    float64    `json:"longitude"`
	IsActive     bool       `json:"is_active"`
	LastLogin    *time.Time `json:"last_login"`
	CreatedAt    time.Time  `json:"created_at"`
}

// ClientCreate - registration request
type ClientCreate struct {
	Name         string  `json:"name" validate:"required,max=50"`
	Surname      string  `json:"surname" validate:"required,max=50"`
	Email        string  `json:"email" validate:"required,email,max=255"`
	PhoneNumber  string  `json:"phone_number" validate:"required,phone10"`
	Password     string  `json:"password" validate:"required,min=8"`
	LocationName string  `json:"location_name" validate:"required"`
	Latitude     float64 `json:"latitude" validate:"latitude"`
	Longitude    float64 `json:"longitude" validate:"longitude"`
}

// ClientUpdate - sparse update request; nil fields stay unchanged.
// Supplying only one of Latitude/Longitude keeps the stored value for the
// other component.
type ClientUpdate struct {
	Name         *string  `json:"name" validate:"omitempty,max=50"`
	Surname      *string  `json:"surname" validate:"omitempty,max=50"`
	Email        *string  `json:"email" validate:"omitempty,email,max=255"`
	PhoneNumber  *string  `json:"phone_number" validate:"omitempty,phone10"`
	Password     *string  `json:"password" validate:"omitempty,min=8"`
	LocationName *string  `json:"location_name"`
	Latitude     *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude    *float64 `json:"longitude" validate:"omitempty,longitude"`
	IsActive     *bool    `json:"is_active"`
}
