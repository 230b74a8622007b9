package game

import "errors"

var (
	// ErrNotFound is returned when no game matches the requested ID.
	ErrNotFound = errors.New("game not found")

	// ErrRoundNotFound is returned when no round matches the requested ID.
	ErrRoundNotFound = errors.New("round not found")

	// ErrInvalidName is returned when a game or round is saved without a name.
	ErrInvalidName = errors.New("name is required")
)
