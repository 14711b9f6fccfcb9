package services

import (
	"context"

	"hospitality-backend/internal/models"
)

// IncidentSource is one ticket table surfaced on the board. The general and
// maintenance tables are independently owned; the aggregator merges whatever
// sources it is given instead of knowing about either table.
type IncidentSource interface {
	Source() string
	OpenIncidents(ctx context.Context, propertyID int) ([]models.Incident, error)
}

// The board only reads, so it depends on the narrow query surface of each
// repository rather than the full repository types.
type boardPropertyStore interface {
	Get(ctx context.Context, id int) (*models.Property, error)
	ListHotels(ctx context.Context) ([]*models.Property, error)
}

type boardRoomStore interface {
	ListByProperty(ctx context.Context, propertyID int) ([]*models.Room, error)
}

type boardStaffStore interface {
	ListByProperty(ctx context.Context, propertyID int) ([]models.Staff, error)
}

type boardInventoryStore interface {
	ListByProperty(ctx context.Context, propertyID int) ([]models.InventoryItem, error)
}

type BoardService struct {
	PropertyRepo  boardPropertyStore
	RoomRepo      boardRoomStore
	StaffRepo     boardStaffStore
	InventoryRepo boardInventoryStore
	Sources       []IncidentSource
}

func NewBoardService(
	propertyRepo boardPropertyStore,
	roomRepo boardRoomStore,
	staffRepo boardStaffStore,
	inventoryRepo boardInventoryStore,
	sources ...IncidentSource,
) *BoardService {
	return &BoardService{
		PropertyRepo:  propertyRepo,
		RoomRepo:      roomRepo,
		StaffRepo:     staffRepo,
		InventoryRepo: inventoryRepo,
		Sources:       sources,
	}
}

// Board builds the read-only aggregate for every active hotel property.
func (s *BoardService) Board(ctx context.Context) ([]*models.PropertyBoard, error) {
	properties, err := s.PropertyRepo.ListHotels(ctx)
	if err != nil {
		return nil, err
	}

	boards := make([]*models.PropertyBoard, 0, len(properties))
	for _, p := range properties {
		board, _, err := s.propertyBoard(ctx, p)
		if err != nil {
			return nil, err
		}
		boards = append(boards, board)
	}
	return boards, nil
}

// propertyBoard also returns the staff list it loaded so callers that need
// it (the detail view) don't query it a second time.
func (s *BoardService) propertyBoard(ctx context.Context, p *models.Property) (*models.PropertyBoard, []models.Staff, error) {
	rooms, err := s.RoomRepo.ListByProperty(ctx, p.ID)
	if err != nil {
		return nil, nil, err
	}

	staff, err := s.StaffRepo.ListByProperty(ctx, p.ID)
	if err != nil {
		return nil, nil, err
	}

	incidents, err := s.mergeIncidents(ctx, p.ID)
	if err != nil {
		return nil, nil, err
	}

	boardRooms := BuildBoardRooms(rooms, staff, incidents)

	board := &models.PropertyBoard{
		PropertyID:    p.ID,
		PropertyName:  p.Name,
		TotalRooms:    len(boardRooms),
		StatusCounts:  CountByDisplayStatus(boardRooms),
		IncidentCount: len(incidents),
		Rooms:         boardRooms,
	}
	return board, staff, nil
}

// PropertyDetail returns the single-property view: rooms, staff and inventory.
func (s *BoardService) PropertyDetail(ctx context.Context, propertyID int) (*models.PropertyDetail, error) {
	if propertyID <= 0 {
		return nil, invalidField("property_id", "is required")
	}

	property, err := s.PropertyRepo.Get(ctx, propertyID)
	if err != nil {
		if isNoRows(err) {
			return nil, &NotFoundError{Resource: "property"}
		}
		return nil, err
	}

	board, staff, err := s.propertyBoard(ctx, property)
	if err != nil {
		return nil, err
	}

	inventory, err := s.InventoryRepo.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	return &models.PropertyDetail{
		Property:  property,
		Rooms:     board.Rooms,
		Staff:     staff,
		Inventory: inventory,
	}, nil
}

// RoomIncidents merges open tickets from every source for one property,
// optionally filtered to a single room, with a per-room rollup.
func (s *BoardService) RoomIncidents(ctx context.Context, propertyID, roomID int) (*models.RoomIncidentsResult, error) {
	if propertyID <= 0 {
		return nil, invalidField("location_id", "is required")
	}

	if _, err := s.PropertyRepo.Get(ctx, propertyID); err != nil {
		if isNoRows(err) {
			return nil, &NotFoundError{Resource: "property"}
		}
		return nil, err
	}

	incidents, err := s.mergeIncidents(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	result := &models.RoomIncidentsResult{
		PropertyID: propertyID,
		Incidents:  []models.Incident{},
		ByRoom:     make(map[int]int),
	}

	for _, inc := range incidents {
		if roomID > 0 && (inc.RoomID == nil || *inc.RoomID != roomID) {
			continue
		}
		result.Incidents = append(result.Incidents, inc)
		if inc.RoomID != nil {
			result.ByRoom[*inc.RoomID]++
		}
	}
	return result, nil
}

func (s *BoardService) mergeIncidents(ctx context.Context, propertyID int) ([]models.Incident, error) {
	var merged []models.Incident
	for _, src := range s.Sources {
		incidents, err := src.OpenIncidents(ctx, propertyID)
		if err != nil {
			return nil, err
		}
		merged = append(merged, incidents...)
	}
	return merged, nil
}

// BuildBoardRooms resolves each room's display status, assigned-staff name
// and open incidents. Incidents are only attached to rooms flagged
// has_incident; the flag is the room's opt-in to the cross-reference.
func BuildBoardRooms(rooms []*models.Room, staff []models.Staff, incidents []models.Incident) []models.BoardRoom {
	staffNames := make(map[int]string, len(staff))
	for _, s := range staff {
		staffNames[s.ID] = s.Name
	}

	byRoom := make(map[int][]models.Incident)
	for _, inc := range incidents {
		if inc.RoomID != nil {
			byRoom[*inc.RoomID] = append(byRoom[*inc.RoomID], inc)
		}
	}

	boardRooms := make([]models.BoardRoom, 0, len(rooms))
	for _, rm := range rooms {
		br := models.BoardRoom{
			Room:          *rm,
			DisplayStatus: models.DisplayRoomStatus(rm.Status),
		}
		if rm.AssignedStaffID != nil {
			br.StaffName = staffNames[*rm.AssignedStaffID]
		}
		if rm.HasIncident {
			br.Incidents = byRoom[rm.ID]
		}
		boardRooms = append(boardRooms, br)
	}
	return boardRooms
}

// CountByDisplayStatus buckets board rooms by display status. The counts
// always sum to the number of active rooms passed in.
func CountByDisplayStatus(rooms []models.BoardRoom) map[string]int {
	counts := make(map[string]int)
	for _, rm := range rooms {
		counts[rm.DisplayStatus]++
	}
	return counts
}
