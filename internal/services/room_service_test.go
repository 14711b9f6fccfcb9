package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hospitality-backend/internal/models"
)

// Validation failures must be decided before any store access; these tests
// run against a service with no repositories wired.

func TestCreateRoomValidation(t *testing.T) {
	svc := NewRoomService(nil, nil, DefaultSeedPercentages)

	tests := []struct {
		name string
		req  models.CreateRoomRequest
	}{
		{"missing property", models.CreateRoomRequest{Number: 101}},
		{"non-positive number", models.CreateRoomRequest{PropertyID: 1, Number: 0}},
		{"negative floor", models.CreateRoomRequest{PropertyID: 1, Number: 101, Floor: -1}},
		{"invalid type", models.CreateRoomRequest{PropertyID: 1, Number: 101, Type: "penthouse"}},
		{"invalid status", models.CreateRoomRequest{PropertyID: 1, Number: 101, Status: "demolished"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateRoom(context.Background(), &tt.req)
			require.Error(t, err)

			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestChangeStatusValidation(t *testing.T) {
	svc := NewRoomService(nil, nil, DefaultSeedPercentages)

	tests := []struct {
		name string
		req  models.ChangeRoomStatusRequest
	}{
		{"missing room", models.ChangeRoomStatusRequest{Status: models.RoomStatusClean}},
		{"missing status", models.ChangeRoomStatusRequest{RoomID: 1}},
		{"unknown status", models.ChangeRoomStatusRequest{RoomID: 1, Status: "sparkling"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ChangeStatus(context.Background(), &tt.req)
			require.Error(t, err)

			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestImportRoomsRejectsOversizedBatch(t *testing.T) {
	svc := NewRoomService(nil, nil, DefaultSeedPercentages)

	rows := make([]models.ImportRoomRow, ImportRowCap+1)
	for i := range rows {
		rows[i] = models.ImportRoomRow{Number: 100 + i, Floor: 1}
	}

	_, err := svc.ImportRooms(context.Background(), &models.ImportRoomsRequest{PropertyID: 1, Rooms: rows})
	require.Error(t, err)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestImportRoomsRejectsEmptyBatch(t *testing.T) {
	svc := NewRoomService(nil, nil, DefaultSeedPercentages)

	_, err := svc.ImportRooms(context.Background(), &models.ImportRoomsRequest{PropertyID: 1})
	require.Error(t, err)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestSeedRoomsRequiresProperty(t *testing.T) {
	svc := NewRoomService(nil, nil, DefaultSeedPercentages)

	_, err := svc.SeedRooms(context.Background(), &models.SeedRoomsRequest{})
	require.Error(t, err)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
