package handlers

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/golf-scorecard/internal/player"
)

func ListPlayersHandler(store player.PlayerStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := store.GetAllPlayers()
		if err != nil {
			writeError(w, err, "Failed to get players")
			return
		}
		writeJSON(w, http.StatusOK, players)
	}
}

func CreatePlayerHandler(store player.PlayerStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPlayerRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		p := &player.Player{FirstName: req.FirstName, LastName: req.LastName}
		if err := store.Save(p); err != nil {
			writeError(w, err, "Failed to save player")
			return
		}
		log.Info("Created player", "playerID", p.ID, "name", p.Name())
		writeJSON(w, http.StatusCreated, p)
	}
}

func GetPlayerHandler(store player.PlayerStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := store.Find(r.PathValue("id"))
		if err != nil {
			writeError(w, err, "Failed to get player")
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

func DeletePlayerHandler(store player.PlayerStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := r.PathValue("id")
		if err := store.Delete(playerID); err != nil {
			writeError(w, err, "Failed to delete player")
			return
		}
		log.Info("Deleted player", "playerID", playerID)
		w.WriteHeader(http.StatusNoContent)
	}
}
