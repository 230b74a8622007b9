package course

import (
	"database/sql"
	"sync"
)

// HoleCount is the number of holes in a full round.
const HoleCount = 18

// store handles all database operations for courses.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Course is a golf course with a par value for every hole.
type Course struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Pars       []int  `json:"pars"`
	CountTotal int    `json:"count_total"`
}
