package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/grupyedi/cinema-webservice/internal/model"
)

// SaloonRepo manages persistence for saloons.
type SaloonRepo struct {
	db *sql.DB
}

var _ Store[model.Saloon] = (*SaloonRepo)(nil)

// NewSaloonRepo constructs a SaloonRepo with the given DB handle.
func NewSaloonRepo(db *sql.DB) *SaloonRepo {
	return &SaloonRepo{db: db}
}

// GetAll returns every saloon ordered by id.
func (r *SaloonRepo) GetAll(ctx context.Context) ([]model.Saloon, error) {
	const q = `SELECT id, name, seat_rows, seat_cols FROM saloons ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := make([]model.Saloon, 0)
	for rows.Next() {
		var s model.Saloon
		if err := rows.Scan(&s.ID, &s.Name, &s.SeatRows, &s.SeatCols); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Get returns the saloon with the given id, or ErrNotFound.
func (r *SaloonRepo) Get(ctx context.Context, id uint64) (*model.Saloon, error) {
	const q = `SELECT id, name, seat_rows, seat_cols FROM saloons WHERE id = ?`
	var s model.Saloon
	err := r.db.QueryRowContext(ctx, q, id).Scan(&s.ID, &s.Name, &s.SeatRows, &s.SeatCols)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Save inserts a new saloon and assigns the generated ID back.
func (r *SaloonRepo) Save(ctx context.Context, s *model.Saloon) error {
	const q = `INSERT INTO saloons (name, seat_rows, seat_cols) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.Name, s.SeatRows, s.SeatCols)
	if err != nil {
		return saveError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}
