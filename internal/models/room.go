package models

import "time"

// Room status values. No transition graph is enforced between them; any
// elevated caller may set any room to any of the six values.
const (
	RoomStatusClean       = "clean"
	RoomStatusDirty       = "dirty"
	RoomStatusCleaning    = "cleaning"
	RoomStatusMaintenance = "maintenance"
	RoomStatusInspection  = "inspection"
	RoomStatusBlocked     = "blocked"
)

const (
	RoomTypeStandard   = "standard"
	RoomTypeDouble     = "double"
	RoomTypeSuite      = "suite"
	RoomTypeAccessible = "accessible"
	RoomTypeConnected  = "connected"
)

func ValidRoomStatus(status string) bool {
	switch status {
	case RoomStatusClean, RoomStatusDirty, RoomStatusCleaning,
		RoomStatusMaintenance, RoomStatusInspection, RoomStatusBlocked:
		return true
	}
	return false
}

func ValidRoomType(roomType string) bool {
	switch roomType {
	case RoomTypeStandard, RoomTypeDouble, RoomTypeSuite,
		RoomTypeAccessible, RoomTypeConnected:
		return true
	}
	return false
}

// DisplayRoomStatus maps an internal status to its public-facing synonym.
// Two internal values are renamed for board payloads; the rest pass through.
func DisplayRoomStatus(status string) string {
	switch status {
	case RoomStatusCleaning:
		return "in_progress"
	case RoomStatusInspection:
		return "inspecting"
	}
	return status
}

type Room struct {
	ID              int        `json:"id"`
	PropertyID      int        `json:"property_id"`
	Number          int        `json:"number"`
	Floor           int        `json:"floor"`
	Type            string     `json:"type"`
	Status          string     `json:"status"`
	AssignedStaffID *int       `json:"assigned_staff_id,omitempty"`
	HasIncident     bool       `json:"has_incident"`
	Notes           string     `json:"notes"`
	LastCleanedAt   *time.Time `json:"last_cleaned_at,omitempty"`
	IsActive        bool       `json:"is_active"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type CreateRoomRequest struct {
	PropertyID int    `json:"property_id"`
	Number     int    `json:"number"`
	Floor      int    `json:"floor"`
	Type       string `json:"type"`
	Status     string `json:"status"`
	Notes      string `json:"notes"`
}

// UpdateRoomRequest carries the mutable room fields. Pointers distinguish
// "leave unchanged" from an explicit zero value. Deactivation goes through
// DELETE; a deactivated room's number is freed for re-creation, not
// reactivated in place, so is_active is not patchable.
type UpdateRoomRequest struct {
	Number *int    `json:"number,omitempty"`
	Floor  *int    `json:"floor,omitempty"`
	Type   *string `json:"type,omitempty"`
	Status *string `json:"status,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}

type ChangeRoomStatusRequest struct {
	RoomID int    `json:"room_id"`
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// ImportRoomRow is one row of a bulk import payload.
type ImportRoomRow struct {
	Number int    `json:"number"`
	Floor  int    `json:"floor"`
	Type   string `json:"type"`
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

type ImportRoomsRequest struct {
	PropertyID int             `json:"property_id"`
	Rooms      []ImportRoomRow `json:"rooms"`
}

// ImportRowError reports validation failure for a single import row.
type ImportRowError struct {
	Index  int    `json:"index"`
	Number int    `json:"number"`
	Reason string `json:"reason"`
}

type ImportRoomsResult struct {
	Created int              `json:"created"`
	Skipped int              `json:"skipped"`
	Errors  []ImportRowError `json:"errors"`
}

type SeedRoomsRequest struct {
	PropertyID int  `json:"property_id"`
	Force      bool `json:"force"`
}

type SeedRoomsResult struct {
	Created    int `json:"created"`
	Existing   int `json:"existing"`
	FirstFloor int `json:"first_floor"`
	LastFloor  int `json:"last_floor"`
}
