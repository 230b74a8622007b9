package leaderboard

import (
	"github.com/mauv0809/golf-scorecard/internal/game"
	"github.com/mauv0809/golf-scorecard/internal/scorecard"
)

// GameStore defines the game and round lookups required by the aggregator.
type GameStore interface {
	Find(gameID string) (*game.Game, error)
	GetRoundsForGame(gameID string) ([]game.Round, error)
}

// ScorecardStore defines the scorecard lookups required by the aggregator.
type ScorecardStore interface {
	FindByRoundID(roundID string) ([]scorecard.Scorecard, error)
	CountWins(roundID string) ([]scorecard.Scorecard, error)
}
