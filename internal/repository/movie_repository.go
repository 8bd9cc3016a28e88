// Package repository contains the data access layer. Each repository
// wraps a *sql.DB handle and satisfies the generic Store contract for
// one entity. Reads that cross a foreign key resolve the referenced
// row in the same query so callers receive fully-populated models.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/grupyedi/cinema-webservice/internal/model"
)

// MovieRepo manages persistence for movies. The owning genre is
// resolved by join on every read.
type MovieRepo struct {
	db *sql.DB
}

var _ Store[model.Movie] = (*MovieRepo)(nil)

// NewMovieRepo constructs a MovieRepo with the given DB handle.
func NewMovieRepo(db *sql.DB) *MovieRepo {
	return &MovieRepo{db: db}
}

// GetAll returns every movie with its genre populated, ordered by id
// so the grouped listing keeps a stable per-bucket order.
func (r *MovieRepo) GetAll(ctx context.Context) ([]model.Movie, error) {
	const q = `SELECT m.id, m.title, g.id, g.name
               FROM movies m
               JOIN genres g ON g.id = m.genre_id
               ORDER BY m.id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := make([]model.Movie, 0)
	for rows.Next() {
		var m model.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.Genre.ID, &m.Genre.Name); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Get returns the movie with the given id, or ErrNotFound.
func (r *MovieRepo) Get(ctx context.Context, id uint64) (*model.Movie, error) {
	const q = `SELECT m.id, m.title, g.id, g.name
               FROM movies m
               JOIN genres g ON g.id = m.genre_id
               WHERE m.id = ?`
	var m model.Movie
	err := r.db.QueryRowContext(ctx, q, id).Scan(&m.ID, &m.Title, &m.Genre.ID, &m.Genre.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// Save inserts a new movie referencing an existing genre.
func (r *MovieRepo) Save(ctx context.Context, m *model.Movie) error {
	const q = `INSERT INTO movies (title, genre_id) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, q, m.Title, m.Genre.ID)
	if err != nil {
		return saveError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)
	return nil
}
