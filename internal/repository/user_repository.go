package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/grupyedi/cinema-webservice/internal/model"
)

// UserRepo manages persistence for users. The password column holds
// plain text by contract; this layer neither hashes nor compares it.
type UserRepo struct {
	db *sql.DB
}

var _ Store[model.User] = (*UserRepo)(nil)

// NewUserRepo constructs a UserRepo with the given DB handle.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// GetAll returns every user ordered by id. Login scans this list
// linearly; the first gsm match decides the outcome.
func (r *UserRepo) GetAll(ctx context.Context) ([]model.User, error) {
	const q = `SELECT id, gsm, email, password, first_name, last_name, age FROM users ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := make([]model.User, 0)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Gsm, &u.Email, &u.Password, &u.FirstName, &u.LastName, &u.Age); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Get returns the user with the given id, or ErrNotFound.
func (r *UserRepo) Get(ctx context.Context, id uint64) (*model.User, error) {
	const q = `SELECT id, gsm, email, password, first_name, last_name, age FROM users WHERE id = ?`
	var u model.User
	err := r.db.QueryRowContext(ctx, q, id).Scan(&u.ID, &u.Gsm, &u.Email, &u.Password, &u.FirstName, &u.LastName, &u.Age)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Save inserts a new user and assigns the generated ID back. No
// uniqueness is enforced on gsm, so duplicate login keys are possible.
func (r *UserRepo) Save(ctx context.Context, u *model.User) error {
	const q = `INSERT INTO users (gsm, email, password, first_name, last_name, age) VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, u.Gsm, u.Email, u.Password, u.FirstName, u.LastName, u.Age)
	if err != nil {
		return saveError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	u.ID = uint64(id)
	return nil
}
