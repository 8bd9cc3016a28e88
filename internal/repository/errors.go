// Package repository defines error types shared by all repositories.
// These sentinel values let handlers distinguish failure causes instead
// of collapsing everything into one boolean, while still mapping each
// cause onto the status code the HTTP contract requires.
package repository

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by Get when no row matches the identity.
var ErrNotFound = errors.New("not found")

// ErrConstraint is returned by Save when the database rejects the row
// for a duplicate key or referential violation. Handlers translate it
// into 403 (registration) or 400 (purchase) per route.
var ErrConstraint = errors.New("constraint violation")

// saveError classifies an INSERT failure. MySQL reports duplicate keys
// as error 1062 and foreign-key violations as 1452; anything else is
// treated as a transport/server error and wrapped.
func saveError(err error) error {
	msg := err.Error()
	if strings.Contains(msg, "1062") || strings.Contains(msg, "1452") {
		return fmt.Errorf("%w: %v", ErrConstraint, err)
	}
	return fmt.Errorf("save: %w", err)
}
