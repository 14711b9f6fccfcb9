package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hospitality-backend/internal/models"
)

type AssignmentRepository struct {
	DB *pgxpool.Pool
}

func NewAssignmentRepository(db *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{DB: db}
}

// StaffRoomPair is one (staff, room) assignment produced by the distributor.
type StaffRoomPair struct {
	StaffID int
	RoomID  int
}

// Distribute runs the daily assignment distribution in a single transaction:
// it locks the property's dirty rooms, reads the active staff, hands both ID
// lists to the caller-supplied distribution function, then inserts the
// resulting assignments and marks each assigned room cleaning. Concurrent
// distributions for the same property serialize on the row locks.
//
// The distribution algorithm itself stays in the service layer so it can be
// tested without a database.
func (r *AssignmentRepository) Distribute(
	ctx context.Context,
	propertyID int,
	distribute func(roomIDs, staffIDs []int) []StaffRoomPair,
) ([]*models.Assignment, error) {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	roomIDs, err := scanIDs(tx.Query(ctx,
		`SELECT id FROM rooms
         WHERE property_id=$1 AND is_active AND status=$2
         ORDER BY number
         FOR UPDATE`, propertyID, models.RoomStatusDirty))
	if err != nil {
		return nil, err
	}

	staffIDs, err := scanIDs(tx.Query(ctx,
		`SELECT id FROM housekeeping_staff
         WHERE property_id=$1 AND is_active AND status=$2
         ORDER BY id`, propertyID, models.StaffStatusActive))
	if err != nil {
		return nil, err
	}

	pairs := distribute(roomIDs, staffIDs)
	if len(pairs) == 0 {
		// Nothing to assign; commit the empty read set and report no output.
		return nil, tx.Commit(ctx)
	}

	assignments := make([]*models.Assignment, 0, len(pairs))
	for _, p := range pairs {
		var a models.Assignment
		err := tx.QueryRow(ctx,
			`INSERT INTO assignments(staff_id, room_id, assigned_date, status)
             VALUES($1, $2, CURRENT_DATE, $3)
             RETURNING id, staff_id, room_id, assigned_date, status, duration_minutes, created_at, updated_at`,
			p.StaffID, p.RoomID, models.AssignmentStatusPending,
		).Scan(&a.ID, &a.StaffID, &a.RoomID, &a.AssignedDate, &a.Status,
			&a.DurationMinutes, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			return nil, err
		}

		if _, err := tx.Exec(ctx,
			`UPDATE rooms SET assigned_staff_id=$1, status=$2, updated_at=NOW() WHERE id=$3`,
			p.StaffID, models.RoomStatusCleaning, p.RoomID); err != nil {
			return nil, err
		}

		assignments = append(assignments, &a)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return assignments, nil
}

// ListTodayByProperty returns today's assignments for a property with room
// numbers and staff names resolved for display.
func (r *AssignmentRepository) ListTodayByProperty(ctx context.Context, propertyID int) ([]*models.Assignment, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT a.id, a.staff_id, a.room_id, a.assigned_date, a.status, a.duration_minutes,
                a.created_at, a.updated_at, rm.number, COALESCE(u.name, '')
         FROM assignments a
         JOIN rooms rm ON a.room_id = rm.id
         JOIN housekeeping_staff s ON a.staff_id = s.id
         LEFT JOIN users u ON s.user_id = u.id
         WHERE rm.property_id=$1 AND a.assigned_date=CURRENT_DATE
         ORDER BY a.id`, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []*models.Assignment
	for rows.Next() {
		var a models.Assignment
		err := rows.Scan(&a.ID, &a.StaffID, &a.RoomID, &a.AssignedDate, &a.Status,
			&a.DurationMinutes, &a.CreatedAt, &a.UpdatedAt, &a.RoomNumber, &a.StaffName)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, &a)
	}
	return assignments, nil
}

// Complete marks an assignment completed and records its duration.
func (r *AssignmentRepository) Complete(ctx context.Context, id, durationMinutes int) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE assignments SET status=$1, duration_minutes=$2, updated_at=NOW()
         WHERE id=$3 AND status=$4`,
		models.AssignmentStatusCompleted, durationMinutes, id, models.AssignmentStatusPending)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanIDs(rows pgx.Rows, err error) ([]int, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
