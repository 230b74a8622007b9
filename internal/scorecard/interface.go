package scorecard

// ScorecardStore defines the interface for interacting with stored scorecards.
type ScorecardStore interface {
	Save(card *Scorecard) error
	Find(scorecardID string) (*Scorecard, error)
	// FindByRoundID returns the round's scorecards in entry order.
	FindByRoundID(roundID string) ([]Scorecard, error)
	// CountWins returns the round's scorecards with Win populated.
	CountWins(roundID string) ([]Scorecard, error)
	Delete(scorecardID string) error
}
