package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/golf-scorecard/internal/course"
	"github.com/mauv0809/golf-scorecard/internal/game"
	"github.com/mauv0809/golf-scorecard/internal/leaderboard"
	"github.com/mauv0809/golf-scorecard/internal/player"
	"github.com/mauv0809/golf-scorecard/internal/scorecard"
)

// ContextKey is a custom type to avoid key collisions in context.
type ContextKey string

const (
	DryRunKey ContextKey = "dryRun"
)

// IsDryRunFromContext is a helper to safely retrieve the dry_run flag from the request context.
func IsDryRunFromContext(r *http.Request) bool {
	dryRun, ok := r.Context().Value(DryRunKey).(bool)
	return ok && dryRun
}

// statusFor maps store and aggregator errors to an HTTP status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, scorecard.ErrMissingPlayer):
		return http.StatusInternalServerError
	case errors.Is(err, course.ErrNotFound),
		errors.Is(err, player.ErrNotFound),
		errors.Is(err, game.ErrNotFound),
		errors.Is(err, game.ErrRoundNotFound),
		errors.Is(err, scorecard.ErrNotFound),
		errors.Is(err, leaderboard.ErrGameNotFound),
		errors.Is(err, leaderboard.ErrRoundNotFound):
		return http.StatusNotFound
	case errors.Is(err, course.ErrInvalidPars),
		errors.Is(err, player.ErrInvalidName),
		errors.Is(err, game.ErrInvalidName),
		errors.Is(err, scorecard.ErrInvalidHoles):
		return http.StatusBadRequest
	case errors.Is(err, scorecard.ErrAlreadyRecorded):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// writeError logs err and writes the matching status. Server errors hide the cause from the client.
func writeError(w http.ResponseWriter, err error, msg string) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		log.Error(msg, "error", err)
		http.Error(w, msg, status)
		return
	}
	log.Warn(msg, "error", err, "status", status)
	http.Error(w, err.Error(), status)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode response to JSON", "error", err)
	}
}

// decodeJSON reads the request body into v, answering 400 on malformed input.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		log.Warn("Failed to decode request body", "error", err, "path", r.URL.Path)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return false
	}
	return true
}
