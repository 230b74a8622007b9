package game

import (
	"database/sql"
	"sync"
	"time"

	"github.com/mauv0809/golf-scorecard/internal/course"
)

// store handles all database operations for games and their rounds.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Game groups rounds played by a set of players.
type Game struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	PlayedOn time.Time `json:"played_on"`
	Rounds   []Round   `json:"rounds,omitempty"`
}

// Round is one round of a game, played on a single course.
type Round struct {
	ID      string        `json:"id"`
	GameID  string        `json:"game_id"`
	Name    string        `json:"name"`
	Ordinal int           `json:"ordinal"`
	Course  course.Course `json:"course"`
}

// Label is the human readable name of a round, "<round> | <course>".
func (r Round) Label() string {
	return r.Name + " | " + r.Course.Name
}
