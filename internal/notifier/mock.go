package notifier

import (
	"sync"

	"github.com/mauv0809/golf-scorecard/internal/leaderboard"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies
	SendLeaderboardFunc            func(gameName string, board leaderboard.Leaderboard, dryRun bool) error
	FormatLeaderboardResponseFunc  func(gameName string, board leaderboard.Leaderboard) (any, error)
	FormatRoundScoresResponseFunc  func(list leaderboard.RoundList) (any, error)
	FormatGameNotFoundResponseFunc func(query string) (any, error)

	// Call records
	SendLeaderboardCalls   []SendLeaderboardCall
	FormatLeaderboardCalls []leaderboard.Leaderboard
	FormatRoundScoresCalls []leaderboard.RoundList
	GameNotFoundCalls      []string
}

// SendLeaderboardCall holds the arguments for a call to SendLeaderboard.
type SendLeaderboardCall struct {
	GameName string
	Board    leaderboard.Leaderboard
	DryRun   bool
}

var _ Notifier = (*Mock)(nil)

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendLeaderboardCalls = nil
	m.FormatLeaderboardCalls = nil
	m.FormatRoundScoresCalls = nil
	m.GameNotFoundCalls = nil
}

func (m *Mock) SendLeaderboard(gameName string, board leaderboard.Leaderboard, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendLeaderboardCalls = append(m.SendLeaderboardCalls, SendLeaderboardCall{GameName: gameName, Board: board, DryRun: dryRun})
	if m.SendLeaderboardFunc != nil {
		return m.SendLeaderboardFunc(gameName, board, dryRun)
	}
	return nil
}

func (m *Mock) FormatLeaderboardResponse(gameName string, board leaderboard.Leaderboard) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FormatLeaderboardCalls = append(m.FormatLeaderboardCalls, board)
	if m.FormatLeaderboardResponseFunc != nil {
		return m.FormatLeaderboardResponseFunc(gameName, board)
	}
	return "formatted_leaderboard", nil
}

func (m *Mock) FormatRoundScoresResponse(list leaderboard.RoundList) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FormatRoundScoresCalls = append(m.FormatRoundScoresCalls, list)
	if m.FormatRoundScoresResponseFunc != nil {
		return m.FormatRoundScoresResponseFunc(list)
	}
	return "formatted_round_scores", nil
}

func (m *Mock) FormatGameNotFoundResponse(query string) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GameNotFoundCalls = append(m.GameNotFoundCalls, query)
	if m.FormatGameNotFoundResponseFunc != nil {
		return m.FormatGameNotFoundResponseFunc(query)
	}
	return "formatted_game_not_found", nil
}
