package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaveErrorClassification(t *testing.T) {
	dup := errors.New("Error 1062 (23000): Duplicate entry '5551234567' for key 'users.gsm'")
	fk := errors.New("Error 1452 (23000): Cannot add or update a child row: a foreign key constraint fails")
	conn := errors.New("dial tcp 127.0.0.1:3306: connect: connection refused")

	assert.ErrorIs(t, saveError(dup), ErrConstraint)
	assert.ErrorIs(t, saveError(fk), ErrConstraint)

	err := saveError(conn)
	assert.NotErrorIs(t, err, ErrConstraint)
	assert.ErrorContains(t, err, "connection refused")
}
