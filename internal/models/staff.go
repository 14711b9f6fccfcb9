package models

import "time"

const (
	StaffStatusActive   = "active"
	StaffStatusResting  = "resting"
	StaffStatusInactive = "inactive"
)

const (
	ShiftMorning = "morning"
	ShiftEvening = "evening"
	ShiftNight   = "night"
)

func ValidStaffStatus(status string) bool {
	switch status {
	case StaffStatusActive, StaffStatusResting, StaffStatusInactive:
		return true
	}
	return false
}

func ValidShift(shift string) bool {
	switch shift {
	case ShiftMorning, ShiftEvening, ShiftNight:
		return true
	}
	return false
}

type Staff struct {
	ID         int       `json:"id"`
	PropertyID int       `json:"property_id"`
	UserID     int       `json:"user_id"`
	Shift      string    `json:"shift"`
	Status     string    `json:"status"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// From joined users table, for board display
	Name string `json:"name,omitempty"`
}

type CreateStaffRequest struct {
	PropertyID int    `json:"property_id"`
	UserID     int    `json:"user_id"`
	Shift      string `json:"shift"`
}

type UpdateStaffStatusRequest struct {
	Status string `json:"status"`
}
