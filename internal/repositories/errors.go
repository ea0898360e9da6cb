package repositories

import "errors"

// Sentinel errors returned by repositories so callers can branch on the
// condition without matching driver-specific error strings.
var (
	// ErrNotFound is returned when a lookup matches no record.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert violates a unique constraint.
	ErrDuplicate = errors.New("duplicate record")
)
