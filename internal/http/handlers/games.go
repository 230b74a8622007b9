package handlers

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/golf-scorecard/internal/course"
	"github.com/mauv0809/golf-scorecard/internal/game"
)

func ListGamesHandler(store game.GameStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		games, err := store.GetAllGames()
		if err != nil {
			writeError(w, err, "Failed to get games")
			return
		}
		writeJSON(w, http.StatusOK, games)
	}
}

// CreateGameHandler accepts played_on as YYYY-MM-DD. It defaults to now.
func CreateGameHandler(store game.GameStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createGameRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		g := &game.Game{Name: req.Name}
		if req.PlayedOn != "" {
			playedOn, err := time.Parse(time.DateOnly, req.PlayedOn)
			if err != nil {
				http.Error(w, "played_on must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			g.PlayedOn = playedOn
		}
		if err := store.Save(g); err != nil {
			writeError(w, err, "Failed to save game")
			return
		}
		log.Info("Created game", "gameID", g.ID, "name", g.Name)
		writeJSON(w, http.StatusCreated, g)
	}
}

func GetGameHandler(store game.GameStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, err := store.Find(r.PathValue("id"))
		if err != nil {
			writeError(w, err, "Failed to get game")
			return
		}
		writeJSON(w, http.StatusOK, g)
	}
}

// DeleteGameHandler removes a game together with its rounds and scorecards.
func DeleteGameHandler(store game.GameStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID := r.PathValue("id")
		if err := store.Delete(gameID); err != nil {
			writeError(w, err, "Failed to delete game")
			return
		}
		log.Info("Deleted game", "gameID", gameID)
		w.WriteHeader(http.StatusNoContent)
	}
}

func CreateRoundHandler(store game.GameStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRoundRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		round := &game.Round{
			GameID:  r.PathValue("id"),
			Name:    req.Name,
			Ordinal: req.Ordinal,
			Course:  course.Course{ID: req.CourseID},
		}
		if err := store.SaveRound(round); err != nil {
			writeError(w, err, "Failed to save round")
			return
		}
		log.Info("Created round", "roundID", round.ID, "gameID", round.GameID, "course", round.Course.Name)
		writeJSON(w, http.StatusCreated, round)
	}
}

func GetRoundHandler(store game.GameStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		round, err := store.FindRound(r.PathValue("id"))
		if err != nil {
			writeError(w, err, "Failed to get round")
			return
		}
		writeJSON(w, http.StatusOK, round)
	}
}

func DeleteRoundHandler(store game.GameStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roundID := r.PathValue("id")
		if err := store.DeleteRound(roundID); err != nil {
			writeError(w, err, "Failed to delete round")
			return
		}
		log.Info("Deleted round", "roundID", roundID)
		w.WriteHeader(http.StatusNoContent)
	}
}
