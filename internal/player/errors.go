package player

import "errors"

var (
	// ErrNotFound is returned when no player matches the requested ID.
	ErrNotFound = errors.New("player not found")

	// ErrInvalidName is returned when a player is saved without a first or last name.
	ErrInvalidName = errors.New("player first and last name are required")
)
