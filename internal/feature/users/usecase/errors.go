// Package usecase implements the business logic for the users feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when no row matches the requested ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrUnknownColumn is returned when a single-column update names a column outside the users table.
	ErrUnknownColumn = errors.New("unknown user column")
)
