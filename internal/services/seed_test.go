package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hospitality-backend/internal/models"
)

func TestBuildSeedPlanEvenFloors(t *testing.T) {
	property := &models.Property{
		ID:          1,
		Name:        "Harbor View",
		Type:        models.PropertyTypeHotel,
		TotalRooms:  120,
		TotalFloors: 6,
	}

	plan, firstFloor, lastFloor, err := BuildSeedPlan(property, DefaultSeedPercentages)
	require.NoError(t, err)

	assert.Equal(t, 1, firstFloor)
	assert.Equal(t, 6, lastFloor)
	assert.Len(t, plan, 120)

	// 20 rooms per floor, numbered floor*100+seq
	assert.Equal(t, 101, plan[0].Number)
	assert.Equal(t, 120, plan[19].Number)
	assert.Equal(t, 201, plan[20].Number)
	assert.Equal(t, 620, plan[119].Number)

	for _, room := range plan {
		assert.Equal(t, models.RoomStatusDirty, room.Status)
		assert.Equal(t, 1, room.PropertyID)
		assert.Equal(t, room.Number/100, room.Floor)
	}
}

func TestBuildSeedPlanEncoreBrandSkipsFloorOne(t *testing.T) {
	property := &models.Property{
		ID:          2,
		Name:        "Encore Downtown",
		Brand:       "Encore Hotels",
		Type:        models.PropertyTypeHotel,
		TotalRooms:  120,
		TotalFloors: 6,
	}

	plan, firstFloor, lastFloor, err := BuildSeedPlan(property, DefaultSeedPercentages)
	require.NoError(t, err)

	assert.Equal(t, 2, firstFloor)
	assert.Equal(t, 7, lastFloor)
	assert.Len(t, plan, 120)
	assert.Equal(t, 201, plan[0].Number)
	assert.Equal(t, 720, plan[119].Number)
}

func TestBuildSeedPlanTypeSplit(t *testing.T) {
	property := &models.Property{
		ID:          3,
		Type:        models.PropertyTypeHotel,
		TotalRooms:  20,
		TotalFloors: 1,
	}

	plan, _, _, err := BuildSeedPlan(property, DefaultSeedPercentages)
	require.NoError(t, err)
	require.Len(t, plan, 20)

	counts := make(map[string]int)
	for _, room := range plan {
		counts[room.Type]++
	}

	// 80/10/5 of 20 rooms: 16 standard, 2 double, 1 suite, 1 accessible
	assert.Equal(t, 16, counts[models.RoomTypeStandard])
	assert.Equal(t, 2, counts[models.RoomTypeDouble])
	assert.Equal(t, 1, counts[models.RoomTypeSuite])
	assert.Equal(t, 1, counts[models.RoomTypeAccessible])
}

func TestBuildSeedPlanRemainderGoesToEarlierFloors(t *testing.T) {
	property := &models.Property{
		ID:          4,
		Type:        models.PropertyTypeHotel,
		TotalRooms:  10,
		TotalFloors: 3,
	}

	plan, _, _, err := BuildSeedPlan(property, DefaultSeedPercentages)
	require.NoError(t, err)
	require.Len(t, plan, 10)

	perFloor := make(map[int]int)
	for _, room := range plan {
		perFloor[room.Floor]++
	}
	assert.Equal(t, 4, perFloor[1])
	assert.Equal(t, 3, perFloor[2])
	assert.Equal(t, 3, perFloor[3])
}

func TestBuildSeedPlanRejectsOverfullFloors(t *testing.T) {
	property := &models.Property{
		ID:          5,
		Type:        models.PropertyTypeHotel,
		TotalRooms:  300,
		TotalFloors: 2,
	}

	_, _, _, err := BuildSeedPlan(property, DefaultSeedPercentages)
	require.Error(t, err)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "total_rooms", validationErr.Field)
}

func TestBuildSeedPlanNumbersUniqueAtFloorCapacity(t *testing.T) {
	property := &models.Property{
		ID:          6,
		Type:        models.PropertyTypeHotel,
		TotalRooms:  198, // exactly 99 per floor
		TotalFloors: 2,
	}

	plan, _, _, err := BuildSeedPlan(property, DefaultSeedPercentages)
	require.NoError(t, err)
	require.Len(t, plan, 198)

	seen := make(map[int]bool, len(plan))
	for _, room := range plan {
		assert.False(t, seen[room.Number], "duplicate room number %d", room.Number)
		seen[room.Number] = true
	}
}

func TestBuildSeedPlanRejections(t *testing.T) {
	tests := []struct {
		name     string
		property models.Property
		pct      SeedPercentages
	}{
		{
			name:     "non-hotel property",
			property: models.Property{Type: models.PropertyTypeOffice, TotalRooms: 10, TotalFloors: 1},
			pct:      DefaultSeedPercentages,
		},
		{
			name:     "zero rooms",
			property: models.Property{Type: models.PropertyTypeHotel, TotalRooms: 0, TotalFloors: 1},
			pct:      DefaultSeedPercentages,
		},
		{
			name:     "zero floors",
			property: models.Property{Type: models.PropertyTypeHotel, TotalRooms: 10, TotalFloors: 0},
			pct:      DefaultSeedPercentages,
		},
		{
			name:     "percentages over 100",
			property: models.Property{Type: models.PropertyTypeHotel, TotalRooms: 10, TotalFloors: 1},
			pct:      SeedPercentages{Standard: 80, Double: 20, Suite: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := BuildSeedPlan(&tt.property, tt.pct)
			require.Error(t, err)

			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestValidateImportRowsPartialFailure(t *testing.T) {
	rows := []models.ImportRoomRow{
		{Number: 101, Floor: 1},
		{Number: 0, Floor: 1},                          // bad number
		{Number: 102, Floor: -1},                       // bad floor
		{Number: 103, Floor: 1, Type: "penthouse"},     // bad type
		{Number: 104, Floor: 1, Status: "demolished"},  // bad status
		{Number: 101, Floor: 1},                        // duplicate
		{Number: 105, Floor: 1, Type: "suite", Status: "clean"},
	}

	valid, rowErrors := ValidateImportRows(7, rows)

	require.Len(t, valid, 2)
	require.Len(t, rowErrors, 5)

	// Valid rows get defaults when type/status are blank
	assert.Equal(t, 101, valid[0].Number)
	assert.Equal(t, models.RoomTypeStandard, valid[0].Type)
	assert.Equal(t, models.RoomStatusDirty, valid[0].Status)
	assert.Equal(t, 7, valid[0].PropertyID)

	assert.Equal(t, models.RoomTypeSuite, valid[1].Type)
	assert.Equal(t, models.RoomStatusClean, valid[1].Status)

	// Errors carry the original row index
	assert.Equal(t, 1, rowErrors[0].Index)
	assert.Equal(t, 2, rowErrors[1].Index)
	assert.Equal(t, 5, rowErrors[4].Index)
	assert.Equal(t, "duplicate number within import", rowErrors[4].Reason)
}

func TestValidateImportRowsAllValid(t *testing.T) {
	rows := []models.ImportRoomRow{
		{Number: 201, Floor: 2},
		{Number: 202, Floor: 2},
	}

	valid, rowErrors := ValidateImportRows(1, rows)
	assert.Len(t, valid, 2)
	assert.Empty(t, rowErrors)
}
