package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		LeaderboardComputed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "golf_leaderboards_computed_total",
			Help: "The total number of leaderboards computed.",
		}),
		LeaderboardDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "golf_leaderboard_duration_seconds",
			Help:    "The duration of a single leaderboard computation.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		ScorecardsSaved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "golf_scorecards_saved_total",
			Help: "The total number of scorecards created or updated.",
		}),
		ScorecardsRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "golf_scorecards_removed_total",
			Help: "The total number of scorecards removed.",
		}),
		EventsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "golf_events_published_total",
			Help: "The total number of scorecard change events published.",
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "golf_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "golf_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "golf_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.LeaderboardComputed,
		s.LeaderboardDuration,
		s.ScorecardsSaved,
		s.ScorecardsRemoved,
		s.EventsPublished,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncLeaderboardComputed() {
	s.LeaderboardComputed.Inc()
}

func (s *Service) ObserveLeaderboardDuration(duration float64) {
	s.LeaderboardDuration.Observe(duration)
}

func (s *Service) IncScorecardsSaved() {
	s.ScorecardsSaved.Inc()
}

func (s *Service) IncScorecardsRemoved() {
	s.ScorecardsRemoved.Inc()
}

func (s *Service) IncEventsPublished() {
	s.EventsPublished.Inc()
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
