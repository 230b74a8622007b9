package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/golf-scorecard/internal/game"
	"github.com/mauv0809/golf-scorecard/internal/leaderboard"
	"github.com/mauv0809/golf-scorecard/internal/notifier"
	"github.com/slack-go/slack"
)

// respondWithSlackMsg is a helper to format and write a Slack message as an HTTP response.
func respondWithSlackMsg(w http.ResponseWriter, msg any) {
	slackMsg, ok := msg.(slack.Message)
	if !ok {
		http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
		log.Error("Failed to cast message to slack.Message")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(slackMsg); err != nil {
		log.Error("Failed to encode slack message to JSON", "error", err)
	}
}

// parseLeaderboardText splits the slash command text into a game ID and an optional round ID.
// Expected formats: "<game id>", "<game id> <round id>"
func parseLeaderboardText(text string) (gameID, roundID string) {
	parts := strings.Fields(text)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	}
	return parts[0], parts[1]
}

// LeaderboardCommandHandler answers /leaderboard with the game leaderboard,
// or with the round's hole win ranking when a round ID follows the game ID.
func LeaderboardCommandHandler(games game.GameStore, agg *leaderboard.Aggregator, notifier notifier.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}
		text := strings.TrimSpace(r.FormValue("text"))
		gameID, roundID := parseLeaderboardText(text)
		if gameID == "" {
			http.Error(w, "Game ID is required.", http.StatusBadRequest)
			return
		}
		log.Info("Received leaderboard command", "gameID", gameID, "roundID", roundID)

		var msg any
		var err error
		if roundID != "" {
			var list leaderboard.RoundList
			list, err = agg.RoundScores(gameID, roundID)
			if err == nil {
				msg, err = notifier.FormatRoundScoresResponse(list)
			}
		} else {
			var g *game.Game
			g, err = games.Find(gameID)
			if err == nil {
				var board leaderboard.Leaderboard
				board, err = agg.Compute(gameID)
				if err == nil {
					msg, err = notifier.FormatLeaderboardResponse(g.Name, board)
				}
			}
		}

		if errors.Is(err, game.ErrNotFound) || errors.Is(err, leaderboard.ErrRoundNotFound) {
			log.Warn("Could not find game for leaderboard command", "text", text, "error", err)
			msg, err = notifier.FormatGameNotFoundResponse(text)
		}
		if err != nil {
			http.Error(w, "Failed to format leaderboard", http.StatusInternalServerError)
			log.Error("Failed to format leaderboard", "error", err)
			return
		}
		respondWithSlackMsg(w, msg)
	}
}
