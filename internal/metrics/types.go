package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
type Service struct {
	LeaderboardComputed prometheus.Counter
	LeaderboardDuration prometheus.Histogram
	ScorecardsSaved     prometheus.Counter
	ScorecardsRemoved   prometheus.Counter
	EventsPublished     prometheus.Counter
	SlackNotifSent      prometheus.Counter
	SlackNotifFailed    prometheus.Counter
	StartupTimeSeconds  prometheus.Gauge
}
