package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hospitality-backend/internal/models"
)

type fakeBoardStores struct {
	property   *models.Property
	rooms      []*models.Room
	staff      []models.Staff
	inventory  []models.InventoryItem
	staffCalls int
}

func (f *fakeBoardStores) Get(ctx context.Context, id int) (*models.Property, error) {
	return f.property, nil
}

func (f *fakeBoardStores) ListHotels(ctx context.Context) ([]*models.Property, error) {
	return []*models.Property{f.property}, nil
}

func (f *fakeBoardStores) listRooms(ctx context.Context, propertyID int) ([]*models.Room, error) {
	return f.rooms, nil
}

func (f *fakeBoardStores) listStaff(ctx context.Context, propertyID int) ([]models.Staff, error) {
	f.staffCalls++
	return f.staff, nil
}

func (f *fakeBoardStores) listInventory(ctx context.Context, propertyID int) ([]models.InventoryItem, error) {
	return f.inventory, nil
}

type roomStoreFunc func(ctx context.Context, propertyID int) ([]*models.Room, error)

func (fn roomStoreFunc) ListByProperty(ctx context.Context, propertyID int) ([]*models.Room, error) {
	return fn(ctx, propertyID)
}

type staffStoreFunc func(ctx context.Context, propertyID int) ([]models.Staff, error)

func (fn staffStoreFunc) ListByProperty(ctx context.Context, propertyID int) ([]models.Staff, error) {
	return fn(ctx, propertyID)
}

type inventoryStoreFunc func(ctx context.Context, propertyID int) ([]models.InventoryItem, error)

func (fn inventoryStoreFunc) ListByProperty(ctx context.Context, propertyID int) ([]models.InventoryItem, error) {
	return fn(ctx, propertyID)
}

func TestPropertyDetailLoadsStaffOnce(t *testing.T) {
	stores := &fakeBoardStores{
		property: &models.Property{ID: 7, Name: "Harbor View", Type: models.PropertyTypeHotel},
		rooms: []*models.Room{
			{ID: 1, PropertyID: 7, Number: 101, Status: models.RoomStatusDirty, AssignedStaffID: intPtr(5)},
		},
		staff: []models.Staff{
			{ID: 5, PropertyID: 7, Name: "Maria Lopez"},
		},
		inventory: []models.InventoryItem{
			{ID: 3, PropertyID: 7, Name: "towels"},
		},
	}

	svc := NewBoardService(
		stores,
		roomStoreFunc(stores.listRooms),
		staffStoreFunc(stores.listStaff),
		inventoryStoreFunc(stores.listInventory),
	)

	detail, err := svc.PropertyDetail(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, 1, stores.staffCalls)
	require.Len(t, detail.Staff, 1)
	assert.Equal(t, "Maria Lopez", detail.Staff[0].Name)
	require.Len(t, detail.Rooms, 1)
	assert.Equal(t, "Maria Lopez", detail.Rooms[0].StaffName)
	require.Len(t, detail.Inventory, 1)
}

func intPtr(n int) *int { return &n }

func TestBuildBoardRooms(t *testing.T) {
	rooms := []*models.Room{
		{ID: 1, Number: 101, Status: models.RoomStatusCleaning, AssignedStaffID: intPtr(5)},
		{ID: 2, Number: 102, Status: models.RoomStatusDirty, HasIncident: true},
		{ID: 3, Number: 103, Status: models.RoomStatusInspection},
		{ID: 4, Number: 104, Status: models.RoomStatusClean},
	}
	staff := []models.Staff{
		{ID: 5, Name: "Maria Lopez"},
	}
	incidents := []models.Incident{
		{TicketID: 9, Source: models.IncidentSourceGeneral, RoomID: intPtr(2), Title: "broken lamp"},
		{TicketID: 10, Source: models.IncidentSourceMaintenance, RoomID: intPtr(3), Title: "AC leak"},
		{TicketID: 11, Source: models.IncidentSourceGeneral, Title: "lobby spill"}, // no room
	}

	board := BuildBoardRooms(rooms, staff, incidents)
	require.Len(t, board, 4)

	// Internal statuses are renamed for display
	assert.Equal(t, "in_progress", board[0].DisplayStatus)
	assert.Equal(t, "dirty", board[1].DisplayStatus)
	assert.Equal(t, "inspecting", board[2].DisplayStatus)
	assert.Equal(t, "clean", board[3].DisplayStatus)

	// Staff name resolved through the assignment
	assert.Equal(t, "Maria Lopez", board[0].StaffName)
	assert.Empty(t, board[1].StaffName)

	// Incidents attach only to rooms flagged has_incident
	require.Len(t, board[1].Incidents, 1)
	assert.Equal(t, 9, board[1].Incidents[0].TicketID)
	assert.Empty(t, board[2].Incidents)
}

func TestCountByDisplayStatusSumsToRoomCount(t *testing.T) {
	rooms := []models.BoardRoom{
		{DisplayStatus: "clean"},
		{DisplayStatus: "clean"},
		{DisplayStatus: "dirty"},
		{DisplayStatus: "in_progress"},
		{DisplayStatus: "blocked"},
	}

	counts := CountByDisplayStatus(rooms)
	assert.Equal(t, 2, counts["clean"])
	assert.Equal(t, 1, counts["dirty"])
	assert.Equal(t, 1, counts["in_progress"])
	assert.Equal(t, 1, counts["blocked"])

	total := 0
	for _, n := range counts {
		total += n
	}
	assert.Equal(t, len(rooms), total)
}

func TestDisplayRoomStatus(t *testing.T) {
	assert.Equal(t, "in_progress", models.DisplayRoomStatus(models.RoomStatusCleaning))
	assert.Equal(t, "inspecting", models.DisplayRoomStatus(models.RoomStatusInspection))
	assert.Equal(t, "clean", models.DisplayRoomStatus(models.RoomStatusClean))
	assert.Equal(t, "dirty", models.DisplayRoomStatus(models.RoomStatusDirty))
	assert.Equal(t, "maintenance", models.DisplayRoomStatus(models.RoomStatusMaintenance))
	assert.Equal(t, "blocked", models.DisplayRoomStatus(models.RoomStatusBlocked))
}
