package course

import "errors"

var (
	// ErrNotFound is returned when no course matches the requested ID.
	ErrNotFound = errors.New("course not found")

	// ErrInvalidPars is returned when a course does not carry one positive par per hole.
	ErrInvalidPars = errors.New("invalid course pars")
)
