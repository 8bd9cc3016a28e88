package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/grupyedi/cinema-webservice/internal/model"
)

// PurchaseRepo manages persistence for purchases. Reads resolve the
// referenced ticket, user and session in one joined query so the
// purchase history endpoint can filter on the buyer without extra
// round trips.
type PurchaseRepo struct {
	db *sql.DB
}

var _ Store[model.Purchase] = (*PurchaseRepo)(nil)

// NewPurchaseRepo constructs a PurchaseRepo with the given DB handle.
func NewPurchaseRepo(db *sql.DB) *PurchaseRepo {
	return &PurchaseRepo{db: db}
}

const purchaseSelect = `SELECT p.id,
       t.id, t.row_label, t.seat_number, t.price_cents,
       u.id, u.gsm, u.email, u.password, u.first_name, u.last_name, u.age,
       s.id, s.movie_id, s.saloon_id, s.starts_at
FROM purchases p
JOIN tickets t        ON t.id = p.ticket_id
JOIN users u          ON u.id = p.user_id
JOIN movie_sessions s ON s.id = p.movie_session_id`

func scanPurchase(scan func(dest ...any) error, p *model.Purchase) error {
	return scan(
		&p.ID,
		&p.Ticket.ID, &p.Ticket.RowLabel, &p.Ticket.SeatNumber, &p.Ticket.PriceCents,
		&p.User.ID, &p.User.Gsm, &p.User.Email, &p.User.Password,
		&p.User.FirstName, &p.User.LastName, &p.User.Age,
		&p.Session.ID, &p.Session.MovieID, &p.Session.SaloonID, &p.Session.StartsAt,
	)
}

// GetAll returns every purchase with its references populated, ordered
// by id.
func (r *PurchaseRepo) GetAll(ctx context.Context) ([]model.Purchase, error) {
	rows, err := r.db.QueryContext(ctx, purchaseSelect+` ORDER BY p.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := make([]model.Purchase, 0)
	for rows.Next() {
		var p model.Purchase
		if err := scanPurchase(rows.Scan, &p); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Get returns the purchase with the given id, or ErrNotFound.
func (r *PurchaseRepo) Get(ctx context.Context, id uint64) (*model.Purchase, error) {
	var p model.Purchase
	err := scanPurchase(r.db.QueryRowContext(ctx, purchaseSelect+` WHERE p.id = ?`, id).Scan, &p)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Save inserts a new purchase row referencing the ticket, user and
// session carried on the model. There is deliberately no transaction
// and no availability check around the insert; the handler's lookups
// are the only referential guard beyond the FK constraints.
func (r *PurchaseRepo) Save(ctx context.Context, p *model.Purchase) error {
	const q = `INSERT INTO purchases (ticket_id, user_id, movie_session_id) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, p.Ticket.ID, p.User.ID, p.Session.ID)
	if err != nil {
		return saveError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	return nil
}
