package http

import (
	"net/http"

	"github.com/mauv0809/golf-scorecard/internal/config"
	"github.com/mauv0809/golf-scorecard/internal/http/handlers"
	"github.com/mauv0809/golf-scorecard/internal/leaderboard"
	"github.com/mauv0809/golf-scorecard/internal/metrics"
	"github.com/mauv0809/golf-scorecard/internal/notifier"
	"github.com/mauv0809/golf-scorecard/internal/pubsub"
)

func NewServer(stores Stores, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Stores:         stores,
		Leaderboard:    leaderboard.New(stores.Games, stores.Scorecards, metricsSvc),
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	verifySlack := slackVerifierMiddleware(s.Cfg.Slack.SigningSecret)

	s.Router.Handle("GET /metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(handlers.HealthCheckHandler(), paramsMiddleware))

	s.Router.Handle("GET /courses", Chain(handlers.ListCoursesHandler(s.Courses), paramsMiddleware))
	s.Router.Handle("POST /courses", Chain(handlers.CreateCourseHandler(s.Courses), paramsMiddleware))
	s.Router.Handle("GET /courses/{id}", Chain(handlers.GetCourseHandler(s.Courses), paramsMiddleware))
	s.Router.Handle("DELETE /courses/{id}", Chain(handlers.DeleteCourseHandler(s.Courses), paramsMiddleware))

	s.Router.Handle("GET /players", Chain(handlers.ListPlayersHandler(s.Players), paramsMiddleware))
	s.Router.Handle("POST /players", Chain(handlers.CreatePlayerHandler(s.Players), paramsMiddleware))
	s.Router.Handle("GET /players/{id}", Chain(handlers.GetPlayerHandler(s.Players), paramsMiddleware))
	s.Router.Handle("DELETE /players/{id}", Chain(handlers.DeletePlayerHandler(s.Players), paramsMiddleware))

	s.Router.Handle("GET /games", Chain(handlers.ListGamesHandler(s.Games), paramsMiddleware))
	s.Router.Handle("POST /games", Chain(handlers.CreateGameHandler(s.Games), paramsMiddleware))
	s.Router.Handle("GET /games/{id}", Chain(handlers.GetGameHandler(s.Games), paramsMiddleware))
	s.Router.Handle("DELETE /games/{id}", Chain(handlers.DeleteGameHandler(s.Games), paramsMiddleware))
	s.Router.Handle("POST /games/{id}/rounds", Chain(handlers.CreateRoundHandler(s.Games), paramsMiddleware))
	s.Router.Handle("GET /rounds/{id}", Chain(handlers.GetRoundHandler(s.Games), paramsMiddleware))
	s.Router.Handle("DELETE /rounds/{id}", Chain(handlers.DeleteRoundHandler(s.Games), paramsMiddleware))

	s.Router.Handle("GET /score/leaderboard/{id}", Chain(handlers.LeaderboardHandler(s.Leaderboard), paramsMiddleware))
	s.Router.Handle("GET /score/list/{gameId}", Chain(handlers.RoundListHandler(s.Leaderboard), paramsMiddleware))
	s.Router.Handle("GET /score/add/{roundId}", Chain(handlers.AddScorecardHandler(s.Games, s.Players), paramsMiddleware))
	s.Router.Handle("GET /score/edit/{id}", Chain(handlers.EditScorecardHandler(s.Scorecards, s.Games, s.Players), paramsMiddleware))
	s.Router.Handle("POST /score/save", Chain(handlers.SaveScorecardHandler(s.Scorecards, s.Games, s.Metrics, s.pubsub), paramsMiddleware))
	s.Router.Handle("POST /score/remove/{id}", Chain(handlers.RemoveScorecardHandler(s.Scorecards, s.Games, s.Metrics, s.pubsub), paramsMiddleware))

	s.Router.Handle("POST /slack/command/leaderboard", Chain(handlers.LeaderboardCommandHandler(s.Games, s.Leaderboard, s.Notifier), paramsMiddleware, verifySlack))
	s.Router.Handle("POST /pubsub/scorecard-changed", Chain(handlers.ScorecardChangedHandler(s.Games, s.Leaderboard, s.Notifier, s.pubsub), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
