package handlers

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/golf-scorecard/internal/course"
	"github.com/mauv0809/golf-scorecard/internal/game"
	"github.com/mauv0809/golf-scorecard/internal/leaderboard"
	"github.com/mauv0809/golf-scorecard/internal/metrics"
	"github.com/mauv0809/golf-scorecard/internal/player"
	"github.com/mauv0809/golf-scorecard/internal/pubsub"
	"github.com/mauv0809/golf-scorecard/internal/scorecard"
)

func LeaderboardHandler(agg *leaderboard.Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		board, err := agg.Compute(r.PathValue("id"))
		if err != nil {
			writeError(w, err, "Failed to compute leaderboard")
			return
		}
		writeJSON(w, http.StatusOK, board)
	}
}

// RoundListHandler serves one round of a game ranked by hole wins.
// Without a roundId query parameter the first round is shown.
func RoundListHandler(agg *leaderboard.Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := agg.RoundScores(r.PathValue("gameId"), r.URL.Query().Get("roundId"))
		if err != nil {
			writeError(w, err, "Failed to list round scores")
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

func playerOptions(players player.PlayerStore) ([]PlayerOption, error) {
	all, err := players.GetAllPlayers()
	if err != nil {
		return nil, err
	}
	options := make([]PlayerOption, 0, len(all))
	for _, p := range all {
		options = append(options, PlayerOption{ID: p.ID, Name: p.Name()})
	}
	return options, nil
}

// AddScorecardHandler serves an empty scorecard form for a round.
func AddScorecardHandler(games game.GameStore, players player.PlayerStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roundID := r.PathValue("roundId")
		log.Debug("Add a new score", "roundID", roundID)

		round, err := games.FindRound(roundID)
		if err != nil {
			writeError(w, err, "Failed to get round")
			return
		}
		options, err := playerOptions(players)
		if err != nil {
			writeError(w, err, "Failed to get players")
			return
		}
		writeJSON(w, http.StatusOK, ScorecardForm{
			Score:      scorecard.Scorecard{RoundID: round.ID, Holes: make([]int, course.HoleCount)},
			GameID:     round.GameID,
			RoundID:    round.ID,
			PlayerList: options,
		})
	}
}

// EditScorecardHandler serves the scorecard form filled from an existing card.
func EditScorecardHandler(scorecards scorecard.ScorecardStore, games game.GameStore, players player.PlayerStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scorecardID := r.PathValue("id")
		log.Debug("Edit score", "scorecardID", scorecardID)

		card, err := scorecards.Find(scorecardID)
		if err != nil {
			writeError(w, err, "Failed to get scorecard")
			return
		}
		round, err := games.FindRound(card.RoundID)
		if err != nil {
			writeError(w, err, "Failed to get round")
			return
		}
		options, err := playerOptions(players)
		if err != nil {
			writeError(w, err, "Failed to get players")
			return
		}
		writeJSON(w, http.StatusOK, ScorecardForm{
			Score:      *card,
			PlayerID:   card.Player.ID,
			GameID:     round.GameID,
			RoundID:    round.ID,
			PlayerList: options,
		})
	}
}

func roundListURL(gameID, roundID string) string {
	return fmt.Sprintf("/score/list/%s?roundId=%s", url.PathEscape(gameID), url.QueryEscape(roundID))
}

// publishChange announces a scorecard change. A failed publish is logged and does not undo the change.
func publishChange(client pubsub.PubSubClient, m metrics.Metrics, topic pubsub.EventType, event pubsub.ScorecardEvent, dryRun bool) {
	if dryRun {
		log.Info("[Dry Run] Would publish scorecard event", "topic", topic, "scorecardID", event.ScorecardID)
		return
	}
	if err := client.SendMessage(topic, event); err != nil {
		log.Error("Failed to publish scorecard event", "error", err, "topic", topic, "scorecardID", event.ScorecardID)
		return
	}
	m.IncEventsPublished()
}

// SaveScorecardHandler creates or updates a scorecard and publishes a scorecard-saved event.
func SaveScorecardHandler(scorecards scorecard.ScorecardStore, games game.GameStore, m metrics.Metrics, pubsubClient pubsub.PubSubClient) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SaveScorecardRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		log.Debug("Save score", "scorecardID", req.ID, "gameID", req.GameID, "roundID", req.RoundID)

		round, err := games.FindRound(req.RoundID)
		if err != nil {
			writeError(w, err, "Failed to get round")
			return
		}
		if req.GameID != "" && req.GameID != round.GameID {
			http.Error(w, "round does not belong to game", http.StatusBadRequest)
			return
		}

		card := &scorecard.Scorecard{
			ID:      req.ID,
			RoundID: round.ID,
			Player:  player.Player{ID: req.PlayerID},
			Holes:   req.Holes,
		}
		isNew := card.ID == ""
		if err := scorecards.Save(card); err != nil {
			writeError(w, err, "Failed to save scorecard")
			return
		}
		m.IncScorecardsSaved()

		publishChange(pubsubClient, m, pubsub.EventScorecardSaved, pubsub.ScorecardEvent{
			GameID:      round.GameID,
			RoundID:     round.ID,
			ScorecardID: card.ID,
		}, IsDryRunFromContext(r))

		result := ScorecardResult{
			Message:  "The scorecard has been successfully updated.",
			ID:       card.ID,
			Redirect: roundListURL(round.GameID, round.ID),
		}
		status := http.StatusOK
		if isNew {
			result.Message = "The new scorecard has been successfully created."
			status = http.StatusCreated
		}
		log.Info("Saved scorecard", "scorecardID", card.ID, "player", card.Player.Name(), "total", card.CountTotal, "new", isNew)
		writeJSON(w, status, result)
	}
}

// RemoveScorecardHandler deletes a scorecard and publishes a scorecard-removed event.
func RemoveScorecardHandler(scorecards scorecard.ScorecardStore, games game.GameStore, m metrics.Metrics, pubsubClient pubsub.PubSubClient) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scorecardID := r.PathValue("id")
		log.Debug("Remove score", "scorecardID", scorecardID)

		card, err := scorecards.Find(scorecardID)
		if err != nil {
			writeError(w, err, "Failed to get scorecard")
			return
		}
		round, err := games.FindRound(card.RoundID)
		if err != nil {
			writeError(w, err, "Failed to get round")
			return
		}
		if err := scorecards.Delete(scorecardID); err != nil {
			writeError(w, err, "Failed to remove scorecard")
			return
		}
		m.IncScorecardsRemoved()

		publishChange(pubsubClient, m, pubsub.EventScorecardRemoved, pubsub.ScorecardEvent{
			GameID:      round.GameID,
			RoundID:     round.ID,
			ScorecardID: scorecardID,
		}, IsDryRunFromContext(r))

		log.Info("Removed scorecard", "scorecardID", scorecardID, "roundID", round.ID)
		writeJSON(w, http.StatusOK, ScorecardResult{
			Message:  "The scorecard removed.",
			ID:       scorecardID,
			Redirect: roundListURL(round.GameID, round.ID),
		})
	}
}
