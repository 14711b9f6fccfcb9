package models

import "time"

const (
	AssignmentStatusPending   = "pending"
	AssignmentStatusCompleted = "completed"
)

// Assignment links a staff member to a room for one date. Assignments are
// produced by the distributor and read back same-day for productivity metrics;
// they are not a durable schedule.
type Assignment struct {
	ID              int       `json:"id"`
	StaffID         int       `json:"staff_id"`
	RoomID          int       `json:"room_id"`
	AssignedDate    time.Time `json:"assigned_date"`
	Status          string    `json:"status"`
	DurationMinutes int       `json:"duration_minutes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// From joins, for display
	RoomNumber int    `json:"room_number,omitempty"`
	StaffName  string `json:"staff_name,omitempty"`
}

type SmartAssignRequest struct {
	PropertyID int `json:"property_id"`
}

type CompleteAssignmentRequest struct {
	DurationMinutes int `json:"duration_minutes"`
}
