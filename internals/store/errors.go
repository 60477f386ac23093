package store

import "errors"

var (
	// ErrDuplicateEmail is returned when creating a user whose email is
	// already taken.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrNotFound is returned by lookups that match no record.
	ErrNotFound = errors.New("record not found")
)
