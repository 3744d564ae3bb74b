package services

import (
	"errors"

	"github.com/ines300405/luxury-wheels/internal/repositories/interfaces"
)

// ErrNotFound is surfaced when an update, delete or lookup targets an
// identifier with no matching row.
var ErrNotFound = interfaces.ErrNotFound

// ConflictError is a uniqueness violation: duplicate client email, payment
// method name or vehicle plate.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func IsConflict(err error) bool {
	var conflict *ConflictError
	return errors.As(err, &conflict)
}
