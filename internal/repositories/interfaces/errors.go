package interfaces

import "errors"

var (
	// ErrNotFound is returned by lookups that miss and by updates/deletes
	// that affect zero rows.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when a write violates a store-level
	// uniqueness constraint (e.g. the vehicle plate index).
	ErrDuplicate = errors.New("duplicate record")
)
