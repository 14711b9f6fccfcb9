package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"hospitality-backend/internal/models"
)

type PropertyRepository struct {
	DB *pgxpool.Pool
}

func NewPropertyRepository(db *pgxpool.Pool) *PropertyRepository {
	return &PropertyRepository{DB: db}
}

func (r *PropertyRepository) Create(ctx context.Context, p *models.Property) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO properties(name, brand, type, total_rooms, total_floors, is_active)
         VALUES($1, $2, $3, $4, $5, TRUE)
         RETURNING id, is_active, created_at, updated_at`,
		p.Name, p.Brand, p.Type, p.TotalRooms, p.TotalFloors,
	).Scan(&p.ID, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PropertyRepository) Get(ctx context.Context, id int) (*models.Property, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, name, brand, type, total_rooms, total_floors, is_active, created_at, updated_at
         FROM properties WHERE id=$1 AND is_active`, id)

	var p models.Property
	err := row.Scan(&p.ID, &p.Name, &p.Brand, &p.Type, &p.TotalRooms,
		&p.TotalFloors, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	return &p, err
}

func (r *PropertyRepository) List(ctx context.Context) ([]*models.Property, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, brand, type, total_rooms, total_floors, is_active, created_at, updated_at
         FROM properties WHERE is_active ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []*models.Property
	for rows.Next() {
		var p models.Property
		err := rows.Scan(&p.ID, &p.Name, &p.Brand, &p.Type, &p.TotalRooms,
			&p.TotalFloors, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, err
		}
		properties = append(properties, &p)
	}
	return properties, nil
}

// ListHotels returns all active properties of type hotel, for the all-property board.
func (r *PropertyRepository) ListHotels(ctx context.Context) ([]*models.Property, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, brand, type, total_rooms, total_floors, is_active, created_at, updated_at
         FROM properties WHERE is_active AND type=$1 ORDER BY name`, models.PropertyTypeHotel)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []*models.Property
	for rows.Next() {
		var p models.Property
		err := rows.Scan(&p.ID, &p.Name, &p.Brand, &p.Type, &p.TotalRooms,
			&p.TotalFloors, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, err
		}
		properties = append(properties, &p)
	}
	return properties, nil
}

func (r *PropertyRepository) Update(ctx context.Context, id int, p *models.Property) error {
	return r.DB.QueryRow(ctx,
		`UPDATE properties
         SET name=$1, brand=$2, type=$3, total_rooms=$4, total_floors=$5, updated_at=NOW()
         WHERE id=$6 AND is_active
         RETURNING updated_at`,
		p.Name, p.Brand, p.Type, p.TotalRooms, p.TotalFloors, id,
	).Scan(&p.UpdatedAt)
}

func (r *PropertyRepository) SoftDelete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE properties SET is_active=FALSE, updated_at=NOW() WHERE id=$1`, id)
	return err
}
