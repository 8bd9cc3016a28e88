package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/grupyedi/cinema-webservice/internal/model"
)

// GenreRepo manages persistence for genres.
type GenreRepo struct {
	db *sql.DB
}

var _ Store[model.Genre] = (*GenreRepo)(nil)

// NewGenreRepo constructs a GenreRepo with the given DB handle.
func NewGenreRepo(db *sql.DB) *GenreRepo {
	return &GenreRepo{db: db}
}

// GetAll returns every genre ordered by id.
func (r *GenreRepo) GetAll(ctx context.Context) ([]model.Genre, error) {
	const q = `SELECT id, name FROM genres ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := make([]model.Genre, 0)
	for rows.Next() {
		var g model.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		result = append(result, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Get returns the genre with the given id, or ErrNotFound.
func (r *GenreRepo) Get(ctx context.Context, id uint64) (*model.Genre, error) {
	const q = `SELECT id, name FROM genres WHERE id = ?`
	var g model.Genre
	err := r.db.QueryRowContext(ctx, q, id).Scan(&g.ID, &g.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &g, nil
}

// Save inserts a new genre and assigns the generated ID back.
func (r *GenreRepo) Save(ctx context.Context, g *model.Genre) error {
	const q = `INSERT INTO genres (name) VALUES (?)`
	res, err := r.db.ExecContext(ctx, q, g.Name)
	if err != nil {
		return saveError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	g.ID = uint64(id)
	return nil
}
