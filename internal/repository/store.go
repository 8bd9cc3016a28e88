package repository

import "context"

// Store is the generic three-operation data-access contract every
// entity repository satisfies. Handlers depend on this interface (or a
// per-entity alias of it) rather than on concrete repositories, which
// keeps them stateless and testable with in-memory fakes.
//
// GetAll returns every persisted instance of the entity; an empty
// store yields an empty slice, not an error. Get returns ErrNotFound
// when no row matches. Save inserts a new instance, assigns the
// generated ID back onto it, and returns ErrConstraint when the
// database rejects the row.
type Store[T any] interface {
	GetAll(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id uint64) (*T, error)
	Save(ctx context.Context, v *T) error
}
