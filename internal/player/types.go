package player

import (
	"database/sql"
	"sync"
)

// store handles all database operations for players.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Player represents a golfer in the store.
type Player struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Name returns the display name of the player.
func (p Player) Name() string {
	return p.FirstName + " " + p.LastName
}
