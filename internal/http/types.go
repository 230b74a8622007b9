package http

import (
	"net/http"

	"github.com/mauv0809/golf-scorecard/internal/config"
	"github.com/mauv0809/golf-scorecard/internal/course"
	"github.com/mauv0809/golf-scorecard/internal/game"
	"github.com/mauv0809/golf-scorecard/internal/leaderboard"
	"github.com/mauv0809/golf-scorecard/internal/metrics"
	"github.com/mauv0809/golf-scorecard/internal/notifier"
	"github.com/mauv0809/golf-scorecard/internal/player"
	"github.com/mauv0809/golf-scorecard/internal/pubsub"
	"github.com/mauv0809/golf-scorecard/internal/scorecard"
)

// Stores groups the persistence dependencies of the server.
type Stores struct {
	Courses    course.CourseStore
	Players    player.PlayerStore
	Games      game.GameStore
	Scorecards scorecard.ScorecardStore
}

type Server struct {
	Stores
	Leaderboard    *leaderboard.Aggregator
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
}
