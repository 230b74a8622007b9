package handlers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/golf-scorecard/internal/game"
	"github.com/mauv0809/golf-scorecard/internal/leaderboard"
	"github.com/mauv0809/golf-scorecard/internal/notifier"
	"github.com/mauv0809/golf-scorecard/internal/pubsub"
)

// pushMessage is the envelope Pub/Sub push subscriptions POST to the endpoint.
type pushMessage struct {
	Subscription string `json:"subscription"`
	Message      struct {
		Data string `json:"data"`
	} `json:"message"`
}

// ScorecardChangedHandler receives scorecard-saved and scorecard-removed events from a
// push subscription and posts the refreshed game leaderboard to Slack.
// Events for games that no longer exist are acknowledged and dropped.
func ScorecardChangedHandler(games game.GameStore, agg *leaderboard.Aggregator, notifier notifier.Notifier, pubsubClient pubsub.PubSubClient) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		log.Debug("Received scorecard changed message", "body", string(bodyBytes))

		var pubsubMsg pushMessage
		if err := json.Unmarshal(bodyBytes, &pubsubMsg); err != nil {
			log.Error("Failed to unmarshal wrapper JSON", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		rawData, err := base64.StdEncoding.DecodeString(pubsubMsg.Message.Data)
		if err != nil {
			log.Error("Failed to decode base64 data", "error", err)
			http.Error(w, "Invalid base64 data", http.StatusBadRequest)
			return
		}

		var event pubsub.ScorecardEvent
		if err := pubsubClient.ProcessMessage(rawData, &event); err != nil {
			http.Error(w, "Invalid event payload", http.StatusBadRequest)
			return
		}

		g, err := games.Find(event.GameID)
		if errors.Is(err, game.ErrNotFound) {
			log.Warn("Dropping scorecard event for unknown game", "gameID", event.GameID, "scorecardID", event.ScorecardID)
			w.Write([]byte("OK"))
			return
		}
		if err != nil {
			writeError(w, err, "Failed to get game")
			return
		}

		board, err := agg.Compute(g.ID)
		if err != nil {
			writeError(w, err, "Failed to compute leaderboard")
			return
		}
		if err := notifier.SendLeaderboard(g.Name, board, IsDryRunFromContext(r)); err != nil {
			log.Error("Failed to send leaderboard", "error", err, "gameID", g.ID)
			http.Error(w, "Failed to send leaderboard", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}
