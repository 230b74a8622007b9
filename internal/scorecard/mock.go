package scorecard

import "sync"

// MockStore is a mock implementation of the ScorecardStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	SaveFunc          func(card *Scorecard) error
	FindFunc          func(scorecardID string) (*Scorecard, error)
	FindByRoundIDFunc func(roundID string) ([]Scorecard, error)
	CountWinsFunc     func(roundID string) ([]Scorecard, error)
	DeleteFunc        func(scorecardID string) error

	// Call records
	SaveCalls          []*Scorecard
	FindByRoundIDCalls []string
	CountWinsCalls     []string
	DeleteCalls        []string
}

var _ ScorecardStore = (*MockStore)(nil)

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) Save(card *Scorecard) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveCalls = append(m.SaveCalls, card)
	if m.SaveFunc != nil {
		return m.SaveFunc(card)
	}
	return nil
}

func (m *MockStore) Find(scorecardID string) (*Scorecard, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FindFunc != nil {
		return m.FindFunc(scorecardID)
	}
	return nil, ErrNotFound
}

func (m *MockStore) FindByRoundID(roundID string) ([]Scorecard, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FindByRoundIDCalls = append(m.FindByRoundIDCalls, roundID)
	if m.FindByRoundIDFunc != nil {
		return m.FindByRoundIDFunc(roundID)
	}
	return []Scorecard{}, nil
}

// CountWins falls back to tallying the FindByRoundIDFunc result when CountWinsFunc is unset.
func (m *MockStore) CountWins(roundID string) ([]Scorecard, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CountWinsCalls = append(m.CountWinsCalls, roundID)
	if m.CountWinsFunc != nil {
		return m.CountWinsFunc(roundID)
	}
	if m.FindByRoundIDFunc != nil {
		cards, err := m.FindByRoundIDFunc(roundID)
		if err != nil {
			return nil, err
		}
		return TallyWins(cards), nil
	}
	return []Scorecard{}, nil
}

func (m *MockStore) Delete(scorecardID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteCalls = append(m.DeleteCalls, scorecardID)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(scorecardID)
	}
	return nil
}
