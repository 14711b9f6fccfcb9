package services

import (
	"context"

	"hospitality-backend/internal/models"
	"hospitality-backend/internal/repositories"
)

type StaffService struct {
	StaffRepo    *repositories.StaffRepository
	PropertyRepo *repositories.PropertyRepository
	UserRepo     *repositories.UserRepository
}

func NewStaffService(staffRepo *repositories.StaffRepository, propertyRepo *repositories.PropertyRepository, userRepo *repositories.UserRepository) *StaffService {
	return &StaffService{
		StaffRepo:    staffRepo,
		PropertyRepo: propertyRepo,
		UserRepo:     userRepo,
	}
}

func (s *StaffService) CreateStaff(ctx context.Context, req *models.CreateStaffRequest) (*models.Staff, error) {
	if req.PropertyID <= 0 {
		return nil, invalidField("property_id", "is required")
	}
	if req.UserID <= 0 {
		return nil, invalidField("user_id", "is required")
	}
	if req.Shift == "" {
		req.Shift = models.ShiftMorning
	}
	if !models.ValidShift(req.Shift) {
		return nil, invalidField("shift", "invalid shift: "+req.Shift)
	}

	if _, err := s.PropertyRepo.Get(ctx, req.PropertyID); err != nil {
		if isNoRows(err) {
			return nil, &NotFoundError{Resource: "property"}
		}
		return nil, err
	}
	user, err := s.UserRepo.Get(ctx, req.UserID)
	if err != nil {
		if isNoRows(err) {
			return nil, &NotFoundError{Resource: "user"}
		}
		return nil, err
	}

	staff := &models.Staff{
		PropertyID: req.PropertyID,
		UserID:     req.UserID,
		Shift:      req.Shift,
		Status:     models.StaffStatusActive,
		Name:       user.Name,
	}

	if err := s.StaffRepo.Create(ctx, staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func (s *StaffService) ListStaff(ctx context.Context, propertyID int) ([]models.Staff, error) {
	if propertyID <= 0 {
		return nil, invalidField("property_id", "is required")
	}
	return s.StaffRepo.ListByProperty(ctx, propertyID)
}

func (s *StaffService) UpdateStatus(ctx context.Context, id int, req *models.UpdateStaffStatusRequest) error {
	if !models.ValidStaffStatus(req.Status) {
		return invalidField("status", "invalid staff status: "+req.Status)
	}

	if err := s.StaffRepo.UpdateStatus(ctx, id, req.Status); err != nil {
		if isNoRows(err) {
			return &NotFoundError{Resource: "staff"}
		}
		return err
	}
	return nil
}

func (s *StaffService) DeleteStaff(ctx context.Context, id int) error {
	if err := s.StaffRepo.SoftDelete(ctx, id); err != nil {
		if isNoRows(err) {
			return &NotFoundError{Resource: "staff"}
		}
		return err
	}
	return nil
}
