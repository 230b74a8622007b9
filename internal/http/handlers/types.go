package handlers

import (
	"github.com/mauv0809/golf-scorecard/internal/scorecard"
)

// PlayerOption is one entry of the player picker on the scorecard form.
type PlayerOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ScorecardForm backs the add and edit scorecard views.
// PlayerID is empty for a new scorecard.
type ScorecardForm struct {
	Score      scorecard.Scorecard `json:"score"`
	PlayerID   string              `json:"player_id,omitempty"`
	GameID     string              `json:"game_id"`
	RoundID    string              `json:"round_id"`
	PlayerList []PlayerOption      `json:"player_list"`
}

// SaveScorecardRequest is the body accepted by the save endpoint.
// An empty ID creates a new scorecard.
type SaveScorecardRequest struct {
	ID       string `json:"id"`
	GameID   string `json:"game_id"`
	RoundID  string `json:"round_id"`
	PlayerID string `json:"player_id"`
	Holes    []int  `json:"holes"`
}

// ScorecardResult reports a scorecard change and where the round list for it lives.
type ScorecardResult struct {
	Message  string `json:"message"`
	ID       string `json:"id"`
	Redirect string `json:"redirect"`
}

type createCourseRequest struct {
	Name string `json:"name"`
	Pars []int  `json:"pars"`
}

type createPlayerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type createGameRequest struct {
	Name     string `json:"name"`
	PlayedOn string `json:"played_on"`
}

type createRoundRequest struct {
	Name     string `json:"name"`
	CourseID string `json:"course_id"`
	Ordinal  int    `json:"ordinal"`
}
