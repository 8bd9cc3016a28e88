package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/grupyedi/cinema-webservice/internal/model"
)

// TicketRepo manages persistence for tickets.
type TicketRepo struct {
	db *sql.DB
}

var _ Store[model.Ticket] = (*TicketRepo)(nil)

// NewTicketRepo constructs a TicketRepo with the given DB handle.
func NewTicketRepo(db *sql.DB) *TicketRepo {
	return &TicketRepo{db: db}
}

// GetAll returns every ticket ordered by id.
func (r *TicketRepo) GetAll(ctx context.Context) ([]model.Ticket, error) {
	const q = `SELECT id, row_label, seat_number, price_cents FROM tickets ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := make([]model.Ticket, 0)
	for rows.Next() {
		var t model.Ticket
		if err := rows.Scan(&t.ID, &t.RowLabel, &t.SeatNumber, &t.PriceCents); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Get returns the ticket with the given id, or ErrNotFound.
func (r *TicketRepo) Get(ctx context.Context, id uint64) (*model.Ticket, error) {
	const q = `SELECT id, row_label, seat_number, price_cents FROM tickets WHERE id = ?`
	var t model.Ticket
	err := r.db.QueryRowContext(ctx, q, id).Scan(&t.ID, &t.RowLabel, &t.SeatNumber, &t.PriceCents)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Save inserts a new ticket and assigns the generated ID back.
func (r *TicketRepo) Save(ctx context.Context, t *model.Ticket) error {
	const q = `INSERT INTO tickets (row_label, seat_number, price_cents) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, t.RowLabel, t.SeatNumber, t.PriceCents)
	if err != nil {
		return saveError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	return nil
}
