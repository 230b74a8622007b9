package game

import "sync"

// MockStore is a mock implementation of the GameStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	SaveFunc             func(game *Game) error
	FindFunc             func(gameID string) (*Game, error)
	GetAllGamesFunc      func() ([]Game, error)
	DeleteFunc           func(gameID string) error
	SaveRoundFunc        func(round *Round) error
	FindRoundFunc        func(roundID string) (*Round, error)
	GetRoundsForGameFunc func(gameID string) ([]Round, error)
	DeleteRoundFunc      func(roundID string) error

	// Call records
	FindCalls             []string
	GetRoundsForGameCalls []string
}

var _ GameStore = (*MockStore)(nil)

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) Save(game *Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveFunc != nil {
		return m.SaveFunc(game)
	}
	return nil
}

func (m *MockStore) Find(gameID string) (*Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FindCalls = append(m.FindCalls, gameID)
	if m.FindFunc != nil {
		return m.FindFunc(gameID)
	}
	return nil, ErrNotFound
}

func (m *MockStore) GetAllGames() ([]Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAllGamesFunc != nil {
		return m.GetAllGamesFunc()
	}
	return []Game{}, nil
}

func (m *MockStore) Delete(gameID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteFunc != nil {
		return m.DeleteFunc(gameID)
	}
	return nil
}

func (m *MockStore) SaveRound(round *Round) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveRoundFunc != nil {
		return m.SaveRoundFunc(round)
	}
	return nil
}

func (m *MockStore) FindRound(roundID string) (*Round, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FindRoundFunc != nil {
		return m.FindRoundFunc(roundID)
	}
	return nil, ErrRoundNotFound
}

func (m *MockStore) GetRoundsForGame(gameID string) ([]Round, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetRoundsForGameCalls = append(m.GetRoundsForGameCalls, gameID)
	if m.GetRoundsForGameFunc != nil {
		return m.GetRoundsForGameFunc(gameID)
	}
	return []Round{}, nil
}

func (m *MockStore) DeleteRound(roundID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteRoundFunc != nil {
		return m.DeleteRoundFunc(roundID)
	}
	return nil
}
