package leaderboard

import (
	"github.com/mauv0809/golf-scorecard/internal/game"
	"github.com/mauv0809/golf-scorecard/internal/metrics"
	"github.com/mauv0809/golf-scorecard/internal/scorecard"
)

// Aggregator builds leaderboards and per-round score lists for a game.
type Aggregator struct {
	games      GameStore
	scorecards ScorecardStore
	metrics    metrics.Metrics
}

// Entry is one player's line on the leaderboard.
type Entry struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	// Scores holds the round totals in round order, 0 for rounds without a score.
	Scores []int `json:"scores"`
	// Thru counts holes played, 18 per round with a nonzero total.
	Thru int `json:"thru"`
	// TotalAll is the stroke total over played rounds.
	TotalAll int `json:"total_all"`
	// Total is the score relative to par over played rounds.
	Total int `json:"total"`
}

// Leaderboard is the ranked summary of all players in a game.
type Leaderboard struct {
	GameID   string   `json:"game_id"`
	RoundIDs []string `json:"round_ids"`
	Entries  []Entry  `json:"entries"`
}

// RoundOption is one selectable round, kept in game order.
type RoundOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// RoundList is a single round's scorecards ranked by hole wins.
type RoundList struct {
	Game            game.Game             `json:"game"`
	ScoreList       []scorecard.Scorecard `json:"score_list"`
	RoundList       []RoundOption         `json:"round_list"`
	SelectedRoundID string                `json:"selected_round_id"`
}
