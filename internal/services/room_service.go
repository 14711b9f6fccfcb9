package services

import (
	"context"
	"fmt"

	"hospitality-backend/internal/metrics"
	"hospitality-backend/internal/models"
	"hospitality-backend/internal/repositories"
)

// ImportRowCap bounds a single bulk import request.
const ImportRowCap = 2000

type RoomService struct {
	RoomRepo     *repositories.RoomRepository
	PropertyRepo *repositories.PropertyRepository
	SeedPct      SeedPercentages
}

func NewRoomService(roomRepo *repositories.RoomRepository, propertyRepo *repositories.PropertyRepository, seedPct SeedPercentages) *RoomService {
	return &RoomService{
		RoomRepo:     roomRepo,
		PropertyRepo: propertyRepo,
		SeedPct:      seedPct,
	}
}

func (s *RoomService) CreateRoom(ctx context.Context, req *models.CreateRoomRequest) (*models.Room, error) {
	if req.PropertyID <= 0 {
		return nil, invalidField("property_id", "is required")
	}
	if req.Number <= 0 {
		return nil, invalidField("number", "must be positive")
	}
	if req.Floor < 0 {
		return nil, invalidField("floor", "must not be negative")
	}
	if req.Type == "" {
		req.Type = models.RoomTypeStandard
	}
	if !models.ValidRoomType(req.Type) {
		return nil, invalidField("type", "invalid room type: "+req.Type)
	}
	if req.Status == "" {
		req.Status = models.RoomStatusDirty
	}
	if !models.ValidRoomStatus(req.Status) {
		return nil, invalidField("status", "invalid room status: "+req.Status)
	}

	if _, err := s.PropertyRepo.Get(ctx, req.PropertyID); err != nil {
		if isNoRows(err) {
			return nil, &NotFoundError{Resource: "property"}
		}
		return nil, err
	}

	room := &models.Room{
		PropertyID: req.PropertyID,
		Number:     req.Number,
		Floor:      req.Floor,
		Type:       req.Type,
		Status:     req.Status,
		Notes:      req.Notes,
	}

	if err := s.RoomRepo.Create(ctx, room); err != nil {
		if isUniqueViolation(err) {
			return nil, &ConflictError{Message: fmt.Sprintf("room %d already exists in this property", req.Number)}
		}
		return nil, err
	}
	return room, nil
}

func (s *RoomService) GetRoom(ctx context.Context, id int) (*models.Room, error) {
	room, err := s.RoomRepo.Get(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, &NotFoundError{Resource: "room"}
		}
		return nil, err
	}
	return room, nil
}

func (s *RoomService) ListRooms(ctx context.Context, propertyID int) ([]*models.Room, error) {
	if propertyID <= 0 {
		return nil, invalidField("property_id", "is required")
	}
	return s.RoomRepo.ListByProperty(ctx, propertyID)
}

func (s *RoomService) UpdateRoom(ctx context.Context, id int, req *models.UpdateRoomRequest) (*models.Room, error) {
	room, err := s.RoomRepo.Get(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, &NotFoundError{Resource: "room"}
		}
		return nil, err
	}

	if req.Number != nil {
		if *req.Number <= 0 {
			return nil, invalidField("number", "must be positive")
		}
		room.Number = *req.Number
	}
	if req.Floor != nil {
		if *req.Floor < 0 {
			return nil, invalidField("floor", "must not be negative")
		}
		room.Floor = *req.Floor
	}
	if req.Type != nil {
		if !models.ValidRoomType(*req.Type) {
			return nil, invalidField("type", "invalid room type: "+*req.Type)
		}
		room.Type = *req.Type
	}
	if req.Status != nil {
		if !models.ValidRoomStatus(*req.Status) {
			return nil, invalidField("status", "invalid room status: "+*req.Status)
		}
		room.Status = *req.Status
	}
	if req.Notes != nil {
		room.Notes = *req.Notes
	}

	if err := s.RoomRepo.Update(ctx, id, room); err != nil {
		if isUniqueViolation(err) {
			return nil, &ConflictError{Message: fmt.Sprintf("room %d already exists in this property", room.Number)}
		}
		if isNoRows(err) {
			return nil, &NotFoundError{Resource: "room"}
		}
		return nil, err
	}
	return room, nil
}

func (s *RoomService) DeleteRoom(ctx context.Context, id int) error {
	if err := s.RoomRepo.SoftDelete(ctx, id); err != nil {
		if isNoRows(err) {
			return &NotFoundError{Resource: "room"}
		}
		return err
	}
	return nil
}

// ChangeStatus validates the requested status against the fixed enum and
// applies it atomically. No transition graph is enforced.
func (s *RoomService) ChangeStatus(ctx context.Context, req *models.ChangeRoomStatusRequest) (*models.Room, error) {
	if req.RoomID <= 0 {
		return nil, invalidField("room_id", "is required")
	}
	if req.Status == "" {
		return nil, invalidField("status", "is required")
	}
	if !models.ValidRoomStatus(req.Status) {
		return nil, invalidField("status", "invalid room status: "+req.Status)
	}

	room, err := s.RoomRepo.ChangeStatus(ctx, req.RoomID, req.Status, req.Notes)
	if err != nil {
		if isNoRows(err) {
			return nil, &NotFoundError{Resource: "room"}
		}
		return nil, err
	}

	metrics.RoomStatusChanges.WithLabelValues(req.Status).Inc()
	return room, nil
}

// ImportRooms validates every row independently, inserts the valid ones with
// insert-or-skip semantics, and reports per-row errors alongside the counts.
// Invalid rows never abort the batch.
func (s *RoomService) ImportRooms(ctx context.Context, req *models.ImportRoomsRequest) (*models.ImportRoomsResult, error) {
	if req.PropertyID <= 0 {
		return nil, invalidField("property_id", "is required")
	}
	if len(req.Rooms) == 0 {
		return nil, invalidField("rooms", "is required")
	}
	if len(req.Rooms) > ImportRowCap {
		return nil, invalidField("rooms", fmt.Sprintf("exceeds the %d row cap", ImportRowCap))
	}

	if _, err := s.PropertyRepo.Get(ctx, req.PropertyID); err != nil {
		if isNoRows(err) {
			return nil, &NotFoundError{Resource: "property"}
		}
		return nil, err
	}

	valid, rowErrors := ValidateImportRows(req.PropertyID, req.Rooms)
	if len(valid) == 0 {
		return nil, invalidField("rooms", "no valid rows")
	}

	created, err := s.RoomRepo.InsertBatch(ctx, valid)
	if err != nil {
		return nil, err
	}

	skipped := len(valid) - created
	metrics.RoomsImported.WithLabelValues("created").Add(float64(created))
	metrics.RoomsImported.WithLabelValues("skipped").Add(float64(skipped))
	metrics.RoomsImported.WithLabelValues("invalid").Add(float64(len(rowErrors)))

	return &models.ImportRoomsResult{
		Created: created,
		Skipped: skipped,
		Errors:  rowErrors,
	}, nil
}

// SeedRooms generates the full room set for a hotel from its declared
// total-rooms/total-floors metadata. Without force it refuses when rooms
// already exist; with force it wipes and regenerates, which is destructive
// and cannot be undone.
func (s *RoomService) SeedRooms(ctx context.Context, req *models.SeedRoomsRequest) (*models.SeedRoomsResult, error) {
	if req.PropertyID <= 0 {
		return nil, invalidField("property_id", "is required")
	}

	property, err := s.PropertyRepo.Get(ctx, req.PropertyID)
	if err != nil {
		if isNoRows(err) {
			return nil, &NotFoundError{Resource: "property"}
		}
		return nil, err
	}

	plan, firstFloor, lastFloor, err := BuildSeedPlan(property, s.SeedPct)
	if err != nil {
		return nil, err
	}

	existing, err := s.RoomRepo.CountByProperty(ctx, req.PropertyID)
	if err != nil {
		return nil, err
	}

	if existing > 0 && !req.Force {
		return nil, &ConflictError{
			Message: fmt.Sprintf("property already has %d rooms; set force to wipe and regenerate", existing),
		}
	}

	var created int
	if req.Force {
		created, err = s.RoomRepo.ReplaceAll(ctx, req.PropertyID, plan)
	} else {
		created, err = s.RoomRepo.InsertBatch(ctx, plan)
	}
	if err != nil {
		return nil, err
	}

	return &models.SeedRoomsResult{
		Created:    created,
		Existing:   existing,
		FirstFloor: firstFloor,
		LastFloor:  lastFloor,
	}, nil
}
