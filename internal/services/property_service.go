package services

import (
	"context"

	"hospitality-backend/internal/models"
	"hospitality-backend/internal/repositories"
)

type PropertyService struct {
	Repo *repositories.PropertyRepository
}

func NewPropertyService(repo *repositories.PropertyRepository) *PropertyService {
	return &PropertyService{Repo: repo}
}

func validPropertyType(t string) bool {
	switch t {
	case models.PropertyTypeHotel, models.PropertyTypeHostel, models.PropertyTypeOffice:
		return true
	}
	return false
}

func (s *PropertyService) CreateProperty(ctx context.Context, req *models.CreatePropertyRequest) (*models.Property, error) {
	if req.Name == "" {
		return nil, invalidField("name", "is required")
	}
	if req.Type == "" {
		req.Type = models.PropertyTypeHotel
	}
	if !validPropertyType(req.Type) {
		return nil, invalidField("type", "invalid property type: "+req.Type)
	}
	if req.TotalRooms < 0 {
		return nil, invalidField("total_rooms", "must not be negative")
	}
	if req.TotalFloors < 0 {
		return nil, invalidField("total_floors", "must not be negative")
	}

	property := &models.Property{
		Name:        req.Name,
		Brand:       req.Brand,
		Type:        req.Type,
		TotalRooms:  req.TotalRooms,
		TotalFloors: req.TotalFloors,
	}

	if err := s.Repo.Create(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

func (s *PropertyService) GetProperty(ctx context.Context, id int) (*models.Property, error) {
	property, err := s.Repo.Get(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, &NotFoundError{Resource: "property"}
		}
		return nil, err
	}
	return property, nil
}

func (s *PropertyService) ListProperties(ctx context.Context) ([]*models.Property, error) {
	return s.Repo.List(ctx)
}

func (s *PropertyService) UpdateProperty(ctx context.Context, id int, req *models.UpdatePropertyRequest) (*models.Property, error) {
	property, err := s.Repo.Get(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, &NotFoundError{Resource: "property"}
		}
		return nil, err
	}

	if req.Name != "" {
		property.Name = req.Name
	}
	if req.Brand != "" {
		property.Brand = req.Brand
	}
	if req.Type != "" {
		if !validPropertyType(req.Type) {
			return nil, invalidField("type", "invalid property type: "+req.Type)
		}
		property.Type = req.Type
	}
	if req.TotalRooms > 0 {
		property.TotalRooms = req.TotalRooms
	}
	if req.TotalFloors > 0 {
		property.TotalFloors = req.TotalFloors
	}

	if err := s.Repo.Update(ctx, id, property); err != nil {
		if isNoRows(err) {
			return nil, &NotFoundError{Resource: "property"}
		}
		return nil, err
	}
	return property, nil
}

func (s *PropertyService) DeleteProperty(ctx context.Context, id int) error {
	return s.Repo.SoftDelete(ctx, id)
}
