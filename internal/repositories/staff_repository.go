package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hospitality-backend/internal/models"
)

type StaffRepository struct {
	DB *pgxpool.Pool
}

func NewStaffRepository(db *pgxpool.Pool) *StaffRepository {
	return &StaffRepository{DB: db}
}

func (r *StaffRepository) Create(ctx context.Context, s *models.Staff) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO housekeeping_staff(property_id, user_id, shift, status, is_active)
         VALUES($1, $2, $3, $4, TRUE)
         RETURNING id, is_active, created_at, updated_at`,
		s.PropertyID, s.UserID, s.Shift, s.Status,
	).Scan(&s.ID, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
}

func (r *StaffRepository) Get(ctx context.Context, id int) (*models.Staff, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT s.id, s.property_id, s.user_id, s.shift, s.status, s.is_active,
                s.created_at, s.updated_at, COALESCE(u.name, '')
         FROM housekeeping_staff s
         LEFT JOIN users u ON s.user_id = u.id
         WHERE s.id=$1 AND s.is_active`, id)

	var s models.Staff
	err := row.Scan(&s.ID, &s.PropertyID, &s.UserID, &s.Shift, &s.Status,
		&s.IsActive, &s.CreatedAt, &s.UpdatedAt, &s.Name)
	return &s, err
}

// ListByProperty returns all active staff of a property with display names
// resolved from the users table.
func (r *StaffRepository) ListByProperty(ctx context.Context, propertyID int) ([]models.Staff, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT s.id, s.property_id, s.user_id, s.shift, s.status, s.is_active,
                s.created_at, s.updated_at, COALESCE(u.name, '')
         FROM housekeeping_staff s
         LEFT JOIN users u ON s.user_id = u.id
         WHERE s.property_id=$1 AND s.is_active
         ORDER BY s.id`, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var staff []models.Staff
	for rows.Next() {
		var s models.Staff
		err := rows.Scan(&s.ID, &s.PropertyID, &s.UserID, &s.Shift, &s.Status,
			&s.IsActive, &s.CreatedAt, &s.UpdatedAt, &s.Name)
		if err != nil {
			return nil, err
		}
		staff = append(staff, s)
	}
	return staff, nil
}

func (r *StaffRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE housekeeping_staff SET status=$1, updated_at=NOW()
         WHERE id=$2 AND is_active`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *StaffRepository) SoftDelete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE housekeeping_staff SET is_active=FALSE, updated_at=NOW()
         WHERE id=$1 AND is_active`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
