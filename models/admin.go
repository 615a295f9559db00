package models

import "time"

// AdminRole - admin privilege level
type AdminRole string

const (
	RoleSuperAdmin   AdminRole = "super_admin"
	RoleSupportAdmin AdminRole = "support_admin"
	RoleContentAdmin AdminRole = "content_admin"
)

// Valid reports whether the role is a known privilege level.
func (r AdminRole) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleSupportAdmin, RoleContentAdmin:
		return true
	}
	return false
}

// AdminInDB - database representation (admins table), includes the
// password hash. Never serialized to clients.
type AdminInDB struct {
	AdminID      string     `json:"admin_id"`
	Name         string     `json:"name"`
	Surname      string     `json:"surname"`
	Email        string     `json:"email"`
	PhoneNumber  string     `json:"phone_number"`
	PasswordHash string     `json:"-"`
	Role         AdminRole  `json:"role"`
	IsActive     bool       `json:"is_active"`
	LastLogin    *time.Time `json:"last_login"`
	CreatedAt    time.Time  `json:"created_at"`
}

// AdminResponse - public shape, sensitive fields stripped
type AdminResponse struct {
	AdminID     string     `json:"admin_id"`
	Name        string     `json:"name"`
	Surname     string     `json:"surname"`
	Email       string     `json:"email"`
	PhoneNumber string     `json:"phone_number"`
	Role        AdminRole  `json:"role"`
	IsActive    bool       `json:"is_active"`
	LastLogin   *time.Time `json:"last_login"`
	CreatedAt   time.Time  `json:"created_at"`
}

// AdminCreate - registration request
type AdminCreate struct {
	Name        string    `json:"name" validate:"required,max=50"`
	Surname     string    `json:"surname" validate:"required,max=50"`
	Email       string    `json:"email" validate:"required,email,max=255"`
	PhoneNumber string    `json:"phone_number" validate:"required,phone10"`
	Password    string    `json:"password" validate:"required,min=8"`
	Role        AdminRole `json:"role" validate:"required,oneof=super_admin support_admin content_admin"`
	IsActive    *bool     `json:"is_active"`
}

// AdminUpdate - sparse update request; nil fields stay unchanged.
// CurrentAdminID identifies the acting admin for the role-change guard.
type AdminUpdate struct {
	CurrentAdminID string     `json:"current_admin_id" validate:"required,uuid"`
	Name           *string    `json:"name" validate:"omitempty,max=50"`
	Surname        *string    `json:"surname" validate:"omitempty,max=50"`
	Email          *string    `json:"email" validate:"omitempty,email,max=255"`
	PhoneNumber    *string    `json:"phone_number" validate:"omitempty,phone10"`
	Password       *string    `json:"password" validate:"omitempty,min=8"`
	Role           *AdminRole `json:"role" validate:"omitempty,oneof=super_admin support_admin content_admin"`
	IsActive       *bool      `json:"is_active"`
}

// LoginRequest - credential check request (shared by all account types)
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
