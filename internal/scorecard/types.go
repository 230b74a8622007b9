package scorecard

import (
	"database/sql"
	"sync"

	"github.com/mauv0809/golf-scorecard/internal/player"
)

// MaxStrokes is the highest stroke count accepted for a single hole.
const MaxStrokes = 20

// store handles all database operations for scorecards.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Scorecard is one player's result for one round.
// Holes holds the strokes per hole, 0 meaning the hole has not been played.
type Scorecard struct {
	ID         string        `json:"id"`
	RoundID    string        `json:"round_id"`
	Player     player.Player `json:"player"`
	Holes      []int         `json:"holes"`
	CountTotal int           `json:"count_total"`
	// Win is derived per round by TallyWins and never stored.
	Win int `json:"win"`
}
