package player

// PlayerStore defines the interface for interacting with stored players.
type PlayerStore interface {
	Save(player *Player) error
	Find(playerID string) (*Player, error)
	GetAllPlayers() ([]Player, error)
	Delete(playerID string) error
}
