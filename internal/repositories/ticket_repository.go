package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"hospitality-backend/internal/models"
)

// The general and maintenance ticket tables are owned by other modules of the
// platform and have identical shapes. TicketRepository is parameterized by
// table name and source label so the board can treat both as incident sources
// without duplicating the join logic.

type TicketRepository struct {
	DB     *pgxpool.Pool
	table  string
	source string
}

func NewGeneralTicketRepository(db *pgxpool.Pool) *TicketRepository {
	return &TicketRepository{DB: db, table: "tickets", source: models.IncidentSourceGeneral}
}

func NewMaintenanceTicketRepository(db *pgxpool.Pool) *TicketRepository {
	return &TicketRepository{DB: db, table: "maintenance_tickets", source: models.IncidentSourceMaintenance}
}

// Source reports which ticket table this repository reads.
func (r *TicketRepository) Source() string {
	return r.source
}

func (r *TicketRepository) Create(ctx context.Context, t *models.Ticket) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO `+r.table+`(property_id, room_id, title, description, status, priority, created_by)
         VALUES($1, $2, $3, $4, $5, $6, $7)
         RETURNING id, created_at, updated_at`,
		t.PropertyID, t.RoomID, t.Title, t.Description, t.Status, t.Priority, t.CreatedBy,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (r *TicketRepository) ListByProperty(ctx context.Context, propertyID int) ([]*models.Ticket, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, property_id, room_id, title, description, status, priority, created_by, created_at, updated_at
         FROM `+r.table+`
         WHERE property_id=$1 ORDER BY created_at DESC`, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tickets []*models.Ticket
	for rows.Next() {
		var t models.Ticket
		err := rows.Scan(&t.ID, &t.PropertyID, &t.RoomID, &t.Title, &t.Description,
			&t.Status, &t.Priority, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, &t)
	}
	return tickets, nil
}

// OpenIncidents returns the table's unresolved tickets for a property as
// incident projections. Resolved and closed tickets are filtered out here so
// the board never sees them.
func (r *TicketRepository) OpenIncidents(ctx context.Context, propertyID int) ([]models.Incident, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, room_id, title, status, priority, created_at
         FROM `+r.table+`
         WHERE property_id=$1 AND status NOT IN ($2, $3)
         ORDER BY created_at DESC`,
		propertyID, models.TicketStatusResolved, models.TicketStatusClosed)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var incidents []models.Incident
	for rows.Next() {
		var inc models.Incident
		err := rows.Scan(&inc.TicketID, &inc.RoomID, &inc.Title, &inc.Status,
			&inc.Priority, &inc.CreatedAt)
		if err != nil {
			return nil, err
		}
		inc.Source = r.source
		incidents = append(incidents, inc)
	}
	return incidents, rows.Err()
}
