package repository

import "errors"

var (
	// ErrPersistence wraps any failure reported by the datastore.
	ErrPersistence = errors.New("persistence failure")
	// ErrNotFound is returned when an identifier-scoped write matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidStatus is returned for a status staff cannot set.
	ErrInvalidStatus = errors.New("invalid reservation status")
	// ErrDuplicate is returned when a unique index rejects an insert.
	ErrDuplicate = errors.New("duplicate record")
)
