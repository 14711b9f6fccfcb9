package models

// BoardRoom is one room in a board payload: the room plus its resolved
// display status, assigned-staff name and any open incidents.
type BoardRoom struct {
	Room
	DisplayStatus string     `json:"display_status"`
	StaffName     string     `json:"staff_name,omitempty"`
	Incidents     []Incident `json:"incidents,omitempty"`
}

// PropertyBoard is the read-only aggregate for one property.
type PropertyBoard struct {
	PropertyID    int            `json:"property_id"`
	PropertyName  string         `json:"property_name"`
	TotalRooms    int            `json:"total_rooms"`
	StatusCounts  map[string]int `json:"status_counts"`
	IncidentCount int            `json:"incident_count"`
	Rooms         []BoardRoom    `json:"rooms"`
}

// PropertyDetail is the single-property view: rooms, staff and inventory.
type PropertyDetail struct {
	Property  *Property       `json:"property"`
	Rooms     []BoardRoom     `json:"rooms"`
	Staff     []Staff         `json:"staff"`
	Inventory []InventoryItem `json:"inventory"`
}

// RoomIncidentsResult lists open incidents for a property, optionally scoped
// to one room, with a per-room rollup.
type RoomIncidentsResult struct {
	PropertyID int         `json:"property_id"`
	Incidents  []Incident  `json:"incidents"`
	ByRoom     map[int]int `json:"by_room"`
}
