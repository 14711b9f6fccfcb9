package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hospitality-backend/internal/models"
)

func TestDistributeRoundRobin(t *testing.T) {
	pairs := DistributeRoundRobin([]int{10, 11, 12, 13, 14}, []int{1, 2})
	require.Len(t, pairs, 5)

	// Deal order: rooms in sequence, staff wrapping around
	assert.Equal(t, 1, pairs[0].StaffID)
	assert.Equal(t, 10, pairs[0].RoomID)
	assert.Equal(t, 2, pairs[1].StaffID)
	assert.Equal(t, 1, pairs[2].StaffID)
	assert.Equal(t, 2, pairs[3].StaffID)
	assert.Equal(t, 1, pairs[4].StaffID)

	counts := make(map[int]int)
	for _, pair := range pairs {
		counts[pair.StaffID]++
	}
	assert.Equal(t, 3, counts[1])
	assert.Equal(t, 2, counts[2])
}

func TestDistributeRoundRobinFewerRoomsThanStaff(t *testing.T) {
	pairs := DistributeRoundRobin([]int{10}, []int{1, 2, 3})
	require.Len(t, pairs, 1)
	assert.Equal(t, 1, pairs[0].StaffID)
}

func TestDistributeRoundRobinEmptyInputs(t *testing.T) {
	assert.Nil(t, DistributeRoundRobin(nil, []int{1}))
	assert.Nil(t, DistributeRoundRobin([]int{10}, nil))
	assert.Nil(t, DistributeRoundRobin(nil, nil))
}

func TestSmartAssignRequiresProperty(t *testing.T) {
	svc := NewAssignmentService(nil, nil)

	_, err := svc.SmartAssign(context.Background(), &models.SmartAssignRequest{})
	require.Error(t, err)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestCompleteRejectsNegativeDuration(t *testing.T) {
	svc := NewAssignmentService(nil, nil)

	err := svc.Complete(context.Background(), 1, &models.CompleteAssignmentRequest{DurationMinutes: -5})
	require.Error(t, err)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
