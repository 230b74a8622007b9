package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                   sync.Mutex
	leaderboardComputed  int
	leaderboardDurations []float64
	scorecardsSaved      int
	scorecardsRemoved    int
	eventsPublished      int
	slackNotifSent       int
	slackNotifFailed     int
	startupTime          float64
}

var _ Metrics = (*Mock)(nil)

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		leaderboardDurations: make([]float64, 0),
	}
}

func (m *Mock) IncLeaderboardComputed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.leaderboardComputed++
}

func (m *Mock) ObserveLeaderboardDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.leaderboardDurations = append(m.leaderboardDurations, duration)
}

func (m *Mock) IncScorecardsSaved() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scorecardsSaved++
}

func (m *Mock) IncScorecardsRemoved() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scorecardsRemoved++
}

func (m *Mock) IncEventsPublished() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.eventsPublished++
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// LeaderboardComputed returns the number of times IncLeaderboardComputed was called.
func (m *Mock) LeaderboardComputed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.leaderboardComputed
}

// LeaderboardDurations returns every observed computation duration.
func (m *Mock) LeaderboardDurations() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.leaderboardDurations...)
}

// ScorecardsSaved returns the number of times IncScorecardsSaved was called.
func (m *Mock) ScorecardsSaved() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scorecardsSaved
}

// ScorecardsRemoved returns the number of times IncScorecardsRemoved was called.
func (m *Mock) ScorecardsRemoved() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scorecardsRemoved
}

// EventsPublished returns the number of times IncEventsPublished was called.
func (m *Mock) EventsPublished() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.eventsPublished
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}
