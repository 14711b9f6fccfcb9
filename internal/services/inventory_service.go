package services

import (
	"context"

	"hospitality-backend/internal/models"
	"hospitality-backend/internal/repositories"
)

type InventoryService struct {
	InventoryRepo *repositories.InventoryRepository
	PropertyRepo  *repositories.PropertyRepository
}

func NewInventoryService(inventoryRepo *repositories.InventoryRepository, propertyRepo *repositories.PropertyRepository) *InventoryService {
	return &InventoryService{
		InventoryRepo: inventoryRepo,
		PropertyRepo:  propertyRepo,
	}
}

func (s *InventoryService) CreateItem(ctx context.Context, req *models.CreateInventoryItemRequest) (*models.InventoryItem, error) {
	if req.PropertyID <= 0 {
		return nil, invalidField("property_id", "is required")
	}
	if req.Name == "" {
		return nil, invalidField("name", "is required")
	}
	if req.CurrentStock < 0 {
		return nil, invalidField("current_stock", "must not be negative")
	}
	if req.MinStock < 0 {
		return nil, invalidField("min_stock", "must not be negative")
	}

	if _, err := s.PropertyRepo.Get(ctx, req.PropertyID); err != nil {
		if isNoRows(err) {
			return nil, &NotFoundError{Resource: "property"}
		}
		return nil, err
	}

	unit := req.Unit
	if unit == "" {
		unit = "unit"
	}

	item := &models.InventoryItem{
		PropertyID:   req.PropertyID,
		Name:         req.Name,
		Category:     req.Category,
		Unit:         unit,
		CurrentStock: req.CurrentStock,
		MinStock:     req.MinStock,
	}

	if err := s.InventoryRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *InventoryService) ListItems(ctx context.Context, propertyID int) ([]models.InventoryItem, error) {
	if propertyID <= 0 {
		return nil, invalidField("property_id", "is required")
	}
	return s.InventoryRepo.ListByProperty(ctx, propertyID)
}

// ListLowStock returns items at or below their minimum stock threshold.
func (s *InventoryService) ListLowStock(ctx context.Context, propertyID int) ([]models.InventoryItem, error) {
	if propertyID <= 0 {
		return nil, invalidField("property_id", "is required")
	}
	return s.InventoryRepo.ListLowStock(ctx, propertyID)
}

func (s *InventoryService) UpdateItem(ctx context.Context, id int, req *models.UpdateInventoryItemRequest) (*models.InventoryItem, error) {
	if req.Name == "" {
		return nil, invalidField("name", "is required")
	}
	if req.CurrentStock < 0 {
		return nil, invalidField("current_stock", "must not be negative")
	}
	if req.MinStock < 0 {
		return nil, invalidField("min_stock", "must not be negative")
	}

	item := &models.InventoryItem{
		ID:           id,
		Name:         req.Name,
		Category:     req.Category,
		Unit:         req.Unit,
		CurrentStock: req.CurrentStock,
		MinStock:     req.MinStock,
	}

	if err := s.InventoryRepo.Update(ctx, id, item); err != nil {
		if isNoRows(err) {
			return nil, &NotFoundError{Resource: "inventory item"}
		}
		return nil, err
	}
	return item, nil
}

func (s *InventoryService) DeleteItem(ctx context.Context, id int) error {
	if err := s.InventoryRepo.SoftDelete(ctx, id); err != nil {
		if isNoRows(err) {
			return &NotFoundError{Resource: "inventory item"}
		}
		return err
	}
	return nil
}
