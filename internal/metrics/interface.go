package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncLeaderboardComputed()
	ObserveLeaderboardDuration(duration float64)
	IncScorecardsSaved()
	IncScorecardsRemoved()
	IncEventsPublished()
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(duration float64)
}
