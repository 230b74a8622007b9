package scorecard

import "errors"

var (
	// ErrNotFound is returned when no scorecard matches the requested ID.
	ErrNotFound = errors.New("scorecard not found")

	// ErrInvalidHoles is returned when a scorecard does not hold a valid stroke count per hole.
	ErrInvalidHoles = errors.New("invalid hole scores")

	// ErrAlreadyRecorded is returned when a player already has a scorecard for the round.
	ErrAlreadyRecorded = errors.New("player already has a scorecard for this round")

	// ErrMissingPlayer indicates a stored scorecard references a player that no longer exists.
	// This is a data integrity failure and is not recoverable by the caller.
	ErrMissingPlayer = errors.New("scorecard references a missing player")
)
