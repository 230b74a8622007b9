package notifier

import (
	"github.com/mauv0809/golf-scorecard/internal/leaderboard"
)

// Notifier defines a high-level interface for sending notifications about scoring events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For scorecard changes
	SendLeaderboard(gameName string, board leaderboard.Leaderboard, dryRun bool) error

	// For formatting responses for slash commands
	FormatLeaderboardResponse(gameName string, board leaderboard.Leaderboard) (any, error)
	FormatRoundScoresResponse(list leaderboard.RoundList) (any, error)
	FormatGameNotFoundResponse(query string) (any, error)
}
