package services

import (
	"context"

	"hospitality-backend/internal/metrics"
	"hospitality-backend/internal/models"
	"hospitality-backend/internal/repositories"
)

type AssignmentService struct {
	AssignmentRepo *repositories.AssignmentRepository
	PropertyRepo   *repositories.PropertyRepository
}

func NewAssignmentService(assignmentRepo *repositories.AssignmentRepository, propertyRepo *repositories.PropertyRepository) *AssignmentService {
	return &AssignmentService{
		AssignmentRepo: assignmentRepo,
		PropertyRepo:   propertyRepo,
	}
}

// DistributeRoundRobin deals rooms across staff one at a time, in order,
// wrapping around. Not load-weighted: the point is an even count per staff
// member, not an even workload. Empty input on either side produces no pairs.
func DistributeRoundRobin(roomIDs, staffIDs []int) []repositories.StaffRoomPair {
	if len(roomIDs) == 0 || len(staffIDs) == 0 {
		return nil
	}

	pairs := make([]repositories.StaffRoomPair, 0, len(roomIDs))
	for i, roomID := range roomIDs {
		pairs = append(pairs, repositories.StaffRoomPair{
			StaffID: staffIDs[i%len(staffIDs)],
			RoomID:  roomID,
		})
	}
	return pairs
}

// SmartAssign distributes the property's dirty rooms across its active staff
// in one atomic operation. Returns the created assignments; an empty list
// means there was nothing to distribute and nothing was written.
func (s *AssignmentService) SmartAssign(ctx context.Context, req *models.SmartAssignRequest) ([]*models.Assignment, error) {
	if req.PropertyID <= 0 {
		return nil, invalidField("property_id", "is required")
	}

	if _, err := s.PropertyRepo.Get(ctx, req.PropertyID); err != nil {
		if isNoRows(err) {
			return nil, &NotFoundError{Resource: "property"}
		}
		return nil, err
	}

	assignments, err := s.AssignmentRepo.Distribute(ctx, req.PropertyID, DistributeRoundRobin)
	if err != nil {
		return nil, err
	}

	metrics.AssignmentsDistributed.Add(float64(len(assignments)))
	return assignments, nil
}

// ListToday returns today's assignments for a property.
func (s *AssignmentService) ListToday(ctx context.Context, propertyID int) ([]*models.Assignment, error) {
	if propertyID <= 0 {
		return nil, invalidField("property_id", "is required")
	}
	return s.AssignmentRepo.ListTodayByProperty(ctx, propertyID)
}

// Complete records a finished assignment and its duration, feeding the
// same-day productivity metrics.
func (s *AssignmentService) Complete(ctx context.Context, id int, req *models.CompleteAssignmentRequest) error {
	if req.DurationMinutes < 0 {
		return invalidField("duration_minutes", "must not be negative")
	}

	if err := s.AssignmentRepo.Complete(ctx, id, req.DurationMinutes); err != nil {
		if isNoRows(err) {
			return &NotFoundError{Resource: "assignment"}
		}
		return err
	}
	return nil
}
