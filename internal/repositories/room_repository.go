package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"hospitality-backend/internal/models"
)

const roomColumns = `id, property_id, number, floor, type, status, assigned_staff_id,
	has_incident, notes, last_cleaned_at, is_active, created_at, updated_at`

// importChunkSize bounds the number of rows per INSERT so bulk imports stay
// under the store's per-request payload limits.
const importChunkSize = 500

type RoomRepository struct {
	DB *pgxpool.Pool
}

func NewRoomRepository(db *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{DB: db}
}

func scanRoom(row pgx.Row) (*models.Room, error) {
	var rm models.Room
	err := row.Scan(&rm.ID, &rm.PropertyID, &rm.Number, &rm.Floor, &rm.Type,
		&rm.Status, &rm.AssignedStaffID, &rm.HasIncident, &rm.Notes,
		&rm.LastCleanedAt, &rm.IsActive, &rm.CreatedAt, &rm.UpdatedAt)
	return &rm, err
}

func (r *RoomRepository) Create(ctx context.Context, rm *models.Room) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO rooms(property_id, number, floor, type, status, notes, is_active)
         VALUES($1, $2, $3, $4, $5, $6, TRUE)
         RETURNING id, has_incident, is_active, created_at, updated_at`,
		rm.PropertyID, rm.Number, rm.Floor, rm.Type, rm.Status, rm.Notes,
	).Scan(&rm.ID, &rm.HasIncident, &rm.IsActive, &rm.CreatedAt, &rm.UpdatedAt)
}

func (r *RoomRepository) Get(ctx context.Context, id int) (*models.Room, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+roomColumns+` FROM rooms WHERE id=$1 AND is_active`, id)
	return scanRoom(row)
}

func (r *RoomRepository) ListByProperty(ctx context.Context, propertyID int) ([]*models.Room, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+roomColumns+` FROM rooms
         WHERE property_id=$1 AND is_active ORDER BY number`, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []*models.Room
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, rm)
	}
	return rooms, nil
}

func (r *RoomRepository) Update(ctx context.Context, id int, rm *models.Room) error {
	return r.DB.QueryRow(ctx,
		`UPDATE rooms
         SET number=$1, floor=$2, type=$3, status=$4, notes=$5, is_active=$6, updated_at=NOW()
         WHERE id=$7
         RETURNING updated_at`,
		rm.Number, rm.Floor, rm.Type, rm.Status, rm.Notes, rm.IsActive, id,
	).Scan(&rm.UpdatedAt)
}

// SoftDelete clears the active flag and any staff assignment. The partial
// unique index frees the room number for reuse.
func (r *RoomRepository) SoftDelete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE rooms SET is_active=FALSE, assigned_staff_id=NULL, updated_at=NOW()
         WHERE id=$1 AND is_active`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *RoomRepository) CountByProperty(ctx context.Context, propertyID int) (int, error) {
	var count int
	err := r.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM rooms WHERE property_id=$1 AND is_active`, propertyID).Scan(&count)
	return count, err
}

// ChangeStatus applies a status transition in a single transaction so the
// status and its bookkeeping (last_cleaned_at on clean, notes) never diverge
// under concurrent writers.
func (r *RoomRepository) ChangeStatus(ctx context.Context, id int, status, notes string) (*models.Room, error) {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx,
		`UPDATE rooms
         SET status=$1,
             notes=CASE WHEN $2 <> '' THEN $2 ELSE notes END,
             last_cleaned_at=CASE WHEN $1 = 'clean' THEN NOW() ELSE last_cleaned_at END,
             assigned_staff_id=CASE WHEN $1 = 'clean' THEN NULL ELSE assigned_staff_id END,
             updated_at=NOW()
         WHERE id=$3 AND is_active
         RETURNING `+roomColumns,
		status, notes, id)

	rm, err := scanRoom(row)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return rm, nil
}

// InsertBatch inserts rooms in fixed-size chunks with an insert-or-skip
// semantic on (property_id, number), so re-running an import is safe.
// Returns the number of rows actually created.
func (r *RoomRepository) InsertBatch(ctx context.Context, rooms []models.Room) (int, error) {
	created := 0
	for start := 0; start < len(rooms); start += importChunkSize {
		end := start + importChunkSize
		if end > len(rooms) {
			end = len(rooms)
		}
		n, err := r.insertChunk(ctx, r.DB, rooms[start:end])
		if err != nil {
			return created, err
		}
		created += n
	}
	return created, nil
}

// execer is satisfied by both *pgxpool.Pool and pgx.Tx, so chunk inserts can
// run standalone (import) or inside the seeder's transaction.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func (r *RoomRepository) insertChunk(ctx context.Context, db execer, rooms []models.Room) (int, error) {
	if len(rooms) == 0 {
		return 0, nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO rooms(property_id, number, floor, type, status, notes, is_active) VALUES `)
	args := make([]any, 0, len(rooms)*6)
	for i, rm := range rooms {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 6
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d, $%d, TRUE)",
			base+1, base+2, base+3, base+4, base+5, base+6)
		args = append(args, rm.PropertyID, rm.Number, rm.Floor, rm.Type, rm.Status, rm.Notes)
	}
	sb.WriteString(` ON CONFLICT (property_id, number) WHERE is_active DO NOTHING`)

	tag, err := db.Exec(ctx, sb.String(), args...)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

// ReplaceAll wipes every room of a property and inserts the given set, in one
// transaction. Used by the seeder's force mode; destructive and irreversible.
func (r *RoomRepository) ReplaceAll(ctx context.Context, propertyID int, rooms []models.Room) (int, error) {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	// Tickets outlive the rooms they reference and belong to other modules:
	// detach them instead of deleting. Assignments are ours and go with the
	// rooms.
	for _, table := range []string{"tickets", "maintenance_tickets"} {
		if _, err := tx.Exec(ctx,
			`UPDATE `+table+` SET room_id=NULL WHERE room_id IN (SELECT id FROM rooms WHERE property_id=$1)`,
			propertyID); err != nil {
			return 0, err
		}
	}
	if _, err := tx.Exec(ctx, `DELETE FROM assignments WHERE room_id IN (SELECT id FROM rooms WHERE property_id=$1)`, propertyID); err != nil {
		return 0, err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM rooms WHERE property_id=$1`, propertyID); err != nil {
		return 0, err
	}

	created := 0
	for start := 0; start < len(rooms); start += importChunkSize {
		end := start + importChunkSize
		if end > len(rooms) {
			end = len(rooms)
		}
		n, err := r.insertChunk(ctx, tx, rooms[start:end])
		if err != nil {
			return 0, err
		}
		created += n
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return created, nil
}
