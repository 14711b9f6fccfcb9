package models

import "time"

const (
	TicketStatusOpen       = "open"
	TicketStatusInProgress = "in_progress"
	TicketStatusResolved   = "resolved"
	TicketStatusClosed     = "closed"
)

// Incident source labels. The board merges tickets from two
// independently-owned tables and tags each with where it came from.
const (
	IncidentSourceGeneral     = "general"
	IncidentSourceMaintenance = "maintenance"
)

// Ticket rows live in either the general or the maintenance table; the struct
// is shared because the columns are identical.
type Ticket struct {
	ID          int       `json:"id"`
	PropertyID  int       `json:"property_id"`
	RoomID      *int      `json:"room_id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	CreatedBy   *int      `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateTicketRequest struct {
	PropertyID  int    `json:"property_id"`
	RoomID      *int   `json:"room_id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// Incident is a read-only projection of an open ticket for board display.
type Incident struct {
	TicketID  int       `json:"ticket_id"`
	Source    string    `json:"source"`
	RoomID    *int      `json:"room_id,omitempty"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	Priority  string    `json:"priority"`
	CreatedAt time.Time `json:"created_at"`
}
