package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hospitality-backend/internal/models"
)

type InventoryRepository struct {
	DB *pgxpool.Pool
}

func NewInventoryRepository(db *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{DB: db}
}

func (r *InventoryRepository) Create(ctx context.Context, item *models.InventoryItem) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO inventory_items(property_id, name, category, unit, current_stock, min_stock, is_active)
         VALUES($1, $2, $3, $4, $5, $6, TRUE)
         RETURNING id, is_active, created_at, updated_at`,
		item.PropertyID, item.Name, item.Category, item.Unit, item.CurrentStock, item.MinStock,
	).Scan(&item.ID, &item.IsActive, &item.CreatedAt, &item.UpdatedAt)
}

func (r *InventoryRepository) ListByProperty(ctx context.Context, propertyID int) ([]models.InventoryItem, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, property_id, name, category, unit, current_stock, min_stock, is_active, created_at, updated_at
         FROM inventory_items
         WHERE property_id=$1 AND is_active ORDER BY name`, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.InventoryItem
	for rows.Next() {
		var item models.InventoryItem
		err := rows.Scan(&item.ID, &item.PropertyID, &item.Name, &item.Category,
			&item.Unit, &item.CurrentStock, &item.MinStock, &item.IsActive,
			&item.CreatedAt, &item.UpdatedAt)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// ListLowStock returns active items at or below their minimum stock threshold.
func (r *InventoryRepository) ListLowStock(ctx context.Context, propertyID int) ([]models.InventoryItem, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, property_id, name, category, unit, current_stock, min_stock, is_active, created_at, updated_at
         FROM inventory_items
         WHERE property_id=$1 AND is_active AND current_stock <= min_stock
         ORDER BY name`, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.InventoryItem
	for rows.Next() {
		var item models.InventoryItem
		err := rows.Scan(&item.ID, &item.PropertyID, &item.Name, &item.Category,
			&item.Unit, &item.CurrentStock, &item.MinStock, &item.IsActive,
			&item.CreatedAt, &item.UpdatedAt)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *InventoryRepository) Update(ctx context.Context, id int, item *models.InventoryItem) error {
	return r.DB.QueryRow(ctx,
		`UPDATE inventory_items
         SET name=$1, category=$2, unit=$3, current_stock=$4, min_stock=$5, updated_at=NOW()
         WHERE id=$6 AND is_active
         RETURNING updated_at`,
		item.Name, item.Category, item.Unit, item.CurrentStock, item.MinStock, id,
	).Scan(&item.UpdatedAt)
}

func (r *InventoryRepository) SoftDelete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE inventory_items SET is_active=FALSE, updated_at=NOW()
         WHERE id=$1 AND is_active`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
