package leaderboard

import "errors"

var (
	// ErrGameNotFound is returned when the leaderboard is requested for an unknown game.
	ErrGameNotFound = errors.New("game not found")

	// ErrRoundNotFound is returned when the selected round does not belong to the game.
	ErrRoundNotFound = errors.New("round not found in game")
)
