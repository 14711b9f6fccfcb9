package models

import "time"

const (
	PropertyTypeHotel  = "hotel"
	PropertyTypeHostel = "hostel"
	PropertyTypeOffice = "office"
)

type Property struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Brand       string    `json:"brand"`
	Type        string    `json:"type"`
	TotalRooms  int       `json:"total_rooms"`
	TotalFloors int       `json:"total_floors"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreatePropertyRequest struct {
	Name        string `json:"name"`
	Brand       string `json:"brand"`
	Type        string `json:"type"`
	TotalRooms  int    `json:"total_rooms"`
	TotalFloors int    `json:"total_floors"`
}

type UpdatePropertyRequest struct {
	Name        string `json:"name"`
	Brand       string `json:"brand"`
	Type        string `json:"type"`
	TotalRooms  int    `json:"total_rooms"`
	TotalFloors int    `json:"total_floors"`
}
