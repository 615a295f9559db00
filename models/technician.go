package models

import "time"

// TechnicianInDB - database representation (technicians table)
type TechnicianInDB struct {
	TechnicianID    string     `json:"technician_id"`
	Name            string     `json:"name"`
	Surname         string     `json:"surname"`
	Email           string     `json:"email"`
	PhoneNumber     string     `json:"phone_number"`
	PasswordHash    string     `json:"-"`
	LocationName    string     `json:"location_name"`
	Latitude        float64    `json:"latitude"`
	Longitude       float64    `json:"longitude"`
	ServiceTypes    []string   `json:"service_types"`
	AverageRating   float64    `json:"average_rating"`
	ExperienceYears int        `json:"experience_years"`
	IsVerified      bool       `json:"is_verified"`
	IsAvailable     bool       `json:"is_available"`
	IsActive        bool       `json:"is_active"`
	LastLogin       *time.Time `json:"last_login"`
	CreatedAt       time.Time  `json:"created_at"`
}

// TechnicianResponse - public shape, password hash stripped
type TechnicianResponse struct {
	TechnicianID    string     `json:"technician_id"`
	Name            string     `json:"name"`
	Surname         string     `json:"surname"`
	Email           string     `json:"email"`
	PhoneNumber     string     `json:"phone_number"`
	LocationName    string     `json:"location_name"`
	Latitude        float64    `json:"latitude"`
	Longitude       float64    `json:"longitude"`
	ServiceTypes    []string   `json:"service_types"`
	AverageRating   float64    `json:"average_rating"`
	ExperienceYears int        `json:"experience_years"`
	IsVerified      bool       `json:"is_verified"`
	IsAvailable     bool       `json:"is_available"`
	IsActive        bool       `json:"is_active"`
	LastLogin       *time.Time `json:"last_login"`
	CreatedAt       time.Time  `json:"created_at"`
}

// TechnicianCreate - registration request
type TechnicianCreate struct {
	Name            string   `json:"name" validate:"required,max=50"`
	Surname         string   `json:"surname" validate:"required,max=50"`
	Email           string   `json:"email" validate:"required,email,max=255"`
	PhoneNumber     string   `json:"phone_number" validate:"required,phone10"`
	Password        string   `json:"password" validate:"required,min=8"`
	LocationName    string   `json:"location_name" validate:"required"`
	Latitude        float64  `json:"latitude" validate:"latitude"`
	Longitude       float64  `json:"longitude" validate:"longitude"`
	ServiceTypes    []string `json:"service_types" validate:"required,min=1,dive,required"`
	AverageRating   float64  `json:"average_rating" validate:"gte=0,lte=5"`
	ExperienceYears int      `json:"experience_years" validate:"gte=0"`
	IsVerified      bool     `json:"is_verified"`
	IsAvailable     *bool    `json:"is_available"`
	IsActive        *bool    `json:"is_active"`
}

// TechnicianUpdate - sparse update request; nil fields stay unchanged
type TechnicianUpdate struct {
	Name            *string   `json:"name" validate:"omitempty,max=50"`
	Surname         *string   `json:"surname" validate:"omitempty,max=50"`
	Email           *string   `json:"email" validate:"omitempty,email,max=255"`
	PhoneNumber     *string   `json:"phone_number" validate:"omitempty,phone10"`
	Password        *string   `json:"password" validate:"omitempty,min=8"`
	LocationName    *string   `json:"location_name"`
	Latitude        *float64  `json:"latitude" validate:"omitempty,latitude"`
	Longitude       *float64  `json:"longitude" validate:"omitempty,longitude"`
	ServiceTypes    *[]string `json:"service_types" validate:"omitempty,min=1,dive,required"`
	AverageRating   *float64  `json:"average_rating" validate:"omitempty,gte=0,lte=5"`
	ExperienceYears *int      `json:"experience_years" validate:"omitempty,gte=0"`
	IsVerified      *bool     `json:"is_verified"`
	IsAvailable     *bool     `json:"is_available"`
	IsActive        *bool     `json:"is_active"`
}
