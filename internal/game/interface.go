package game

// GameStore defines the interface for interacting with games and rounds.
type GameStore interface {
	Save(game *Game) error
	Find(gameID string) (*Game, error)
	GetAllGames() ([]Game, error)
	Delete(gameID string) error

	SaveRound(round *Round) error
	FindRound(roundID string) (*Round, error)
	// GetRoundsForGame returns the rounds of a game in play order.
	GetRoundsForGame(gameID string) ([]Round, error)
	DeleteRound(roundID string) error
}
