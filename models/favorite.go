package models

import "time"

// FavoriteTechnicianInDB - database representation (favorite_technicians
// table). The client/technician pair is unique.
type FavoriteTechnicianInDB struct {
	FavoriteID   string    `json:"favorite_id"`
	ClientID     string    `json:"client_id"`
	TechnicianID string    `json:"technician_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// FavoriteTechnicianResponse - public shape
type FavoriteTechnicianResponse = FavoriteTechnicianInDB

// FavoriteTechnicianCreate - creation request
type FavoriteTechnicianCreate struct {
	ClientID     string `json:"client_id" validate:"required,uuid"`
	TechnicianID string `json:"technician_id" validate:"required,uuid"`
}
