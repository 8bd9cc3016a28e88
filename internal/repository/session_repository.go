package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/grupyedi/cinema-webservice/internal/model"
)

// MovieSessionRepo manages persistence for movie sessions.
// starts_at is stored as DATETIME in UTC; parseTime=true on the DSN
// scans it straight into time.Time.
type MovieSessionRepo struct {
	db *sql.DB
}

var _ Store[model.MovieSession] = (*MovieSessionRepo)(nil)

// NewMovieSessionRepo constructs a MovieSessionRepo with the given DB handle.
func NewMovieSessionRepo(db *sql.DB) *MovieSessionRepo {
	return &MovieSessionRepo{db: db}
}

// GetAll returns every session ordered by start time ascending.
func (r *MovieSessionRepo) GetAll(ctx context.Context) ([]model.MovieSession, error) {
	const q = `SELECT id, movie_id, saloon_id, starts_at FROM movie_sessions ORDER BY starts_at ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := make([]model.MovieSession, 0)
	for rows.Next() {
		var s model.MovieSession
		if err := rows.Scan(&s.ID, &s.MovieID, &s.SaloonID, &s.StartsAt); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Get returns the session with the given id, or ErrNotFound.
func (r *MovieSessionRepo) Get(ctx context.Context, id uint64) (*model.MovieSession, error) {
	const q = `SELECT id, movie_id, saloon_id, starts_at FROM movie_sessions WHERE id = ?`
	var s model.MovieSession
	err := r.db.QueryRowContext(ctx, q, id).Scan(&s.ID, &s.MovieID, &s.SaloonID, &s.StartsAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Save inserts a new session referencing an existing movie and saloon.
func (r *MovieSessionRepo) Save(ctx context.Context, s *model.MovieSession) error {
	const q = `INSERT INTO movie_sessions (movie_id, saloon_id, starts_at) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.MovieID, s.SaloonID, s.StartsAt.UTC())
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
