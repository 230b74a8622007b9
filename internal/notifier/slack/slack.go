package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/golf-scorecard/internal/leaderboard"
	"github.com/mauv0809/golf-scorecard/internal/metrics"
	"github.com/mauv0809/golf-scorecard/internal/notifier"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
// Without a token every message is logged as a dry run instead of posted.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	n := &Notifier{
		channelID: channelID,
		metrics:   metrics,
	}
	if token == "" {
		log.Warn("No Slack token configured, notifications will only be logged")
		return n
	}
	n.api = slack.New(token)
	return n
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun || s.api == nil {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-channel", "dry-run-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

func (s *Notifier) SendLeaderboard(gameName string, board leaderboard.Leaderboard, dryRun bool) error {
	msg := s.formatLeaderboard(gameName, board)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// FormatLeaderboardResponse formats a leaderboard message for a slash command response.
func (s *Notifier) FormatLeaderboardResponse(gameName string, board leaderboard.Leaderboard) (any, error) {
	return s.formatLeaderboard(gameName, board), nil
}

// FormatRoundScoresResponse formats a round's win ranking for a slash command response.
func (s *Notifier) FormatRoundScoresResponse(list leaderboard.RoundList) (any, error) {
	return s.formatRoundScores(list), nil
}

// FormatGameNotFoundResponse formats a game not found message for a slash command response.
func (s *Notifier) FormatGameNotFoundResponse(query string) (any, error) {
	return s.formatGameNotFound(query), nil
}

func medal(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	}
	return ""
}

// relativeToPar renders a score against par the way scoreboards do: E, +3, -2.
func relativeToPar(total int) string {
	switch {
	case total == 0:
		return "E"
	case total > 0:
		return fmt.Sprintf("+%d", total)
	default:
		return fmt.Sprintf("%d", total)
	}
}

// formatLeaderboard creates a Slack message to display a game leaderboard using Block Kit.
func (s *Notifier) formatLeaderboard(gameName string, board leaderboard.Leaderboard) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("⛳ Leaderboard: %s ⛳", gameName), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(board.Entries) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No scores recorded yet. Tee it up!", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	for i, entry := range board.Entries {
		rank := i + 1
		rounds := make([]string, 0, len(entry.Scores))
		for _, score := range entry.Scores {
			if score == 0 {
				rounds = append(rounds, "-")
				continue
			}
			rounds = append(rounds, fmt.Sprintf("%d", score))
		}

		entryText := fmt.Sprintf("%d. %s %s\n> *Strokes*: %d (%s) | *Thru*: %d | *Rounds*: %s",
			rank,
			medal(rank),
			entry.PlayerName,
			entry.TotalAll,
			relativeToPar(entry.Total),
			entry.Thru,
			strings.Join(rounds, " / "),
		)
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", entryText, false, false), nil, nil))
	}

	contextText := fmt.Sprintf("%d round(s) | game %s", len(board.RoundIDs), board.GameID)
	blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", contextText, true, false)))

	return slack.NewBlockMessage(blocks...)
}

// formatRoundScores creates a Slack message listing a round's players by hole wins.
func (s *Notifier) formatRoundScores(list leaderboard.RoundList) slack.Message {
	blocks := make([]slack.Block, 0)

	label := list.SelectedRoundID
	for _, option := range list.RoundList {
		if option.ID == list.SelectedRoundID {
			label = option.Label
			break
		}
	}
	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("⛳ %s: %s", list.Game.Name, label), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(list.ScoreList) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No scorecards for this round yet.", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	for i, card := range list.ScoreList {
		rank := i + 1
		cardText := fmt.Sprintf("%d. %s %s\n> *Hole wins*: %d | *Strokes*: %d",
			rank,
			medal(rank),
			card.Player.Name(),
			card.Win,
			card.CountTotal,
		)
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", cardText, false, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatGameNotFound creates a Slack message for when a game cannot be found.
func (s *Notifier) formatGameNotFound(query string) slack.Message {
	text := fmt.Sprintf("Sorry, I couldn't find a game or round matching *%s*. Usage: `/leaderboard <game id> [round id]`", query)
	return slack.NewBlockMessage(
		slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil),
	)
}
