package repositories

import "errors"

var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrCategoryMissing is returned when a transaction references a
	// category id with no matching row.
	ErrCategoryMissing = errors.New("category does not exist")

	// ErrEmailTaken is returned on a unique violation of users.email.
	ErrEmailTaken = errors.New("email already taken")
)
