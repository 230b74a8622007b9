package leaderboard

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/golf-scorecard/internal/course"
	"github.com/mauv0809/golf-scorecard/internal/game"
	"github.com/mauv0809/golf-scorecard/internal/metrics"
	"github.com/mauv0809/golf-scorecard/internal/scorecard"
)

// New creates a new Aggregator.
func New(games GameStore, scorecards ScorecardStore, metrics metrics.Metrics) *Aggregator {
	return &Aggregator{
		games:      games,
		scorecards: scorecards,
		metrics:    metrics,
	}
}

// Compute builds the leaderboard of a game: one entry per player with a scorecard in any
// round, padded to one score per round and ranked by TotalAll ascending.
// Players with equal TotalAll keep the order in which they were first seen.
func (a *Aggregator) Compute(gameID string) (Leaderboard, error) {
	startTime := time.Now()

	rounds, err := a.games.GetRoundsForGame(gameID)
	if err != nil {
		if errors.Is(err, game.ErrNotFound) {
			return Leaderboard{}, fmt.Errorf("%w: %w", ErrGameNotFound, err)
		}
		return Leaderboard{}, fmt.Errorf("failed to get rounds for game %s: %w", gameID, err)
	}

	roundIDs := make([]string, 0, len(rounds))
	// entries keeps first-seen order, byPlayer is only an index into it.
	entries := make([]*Entry, 0)
	byPlayer := make(map[string]*Entry)

	for _, round := range rounds {
		roundIDs = append(roundIDs, round.ID)

		cards, err := a.scorecards.FindByRoundID(round.ID)
		if err != nil {
			return Leaderboard{}, fmt.Errorf("failed to get scorecards for round %s: %w", round.ID, err)
		}

		for _, card := range cards {
			if card.Player.ID == "" {
				return Leaderboard{}, fmt.Errorf("%w: scorecard %s", scorecard.ErrMissingPlayer, card.ID)
			}
			entry, ok := byPlayer[card.Player.ID]
			if !ok {
				entry = &Entry{
					PlayerID:   card.Player.ID,
					PlayerName: card.Player.Name(),
					Scores:     make([]int, 0, len(rounds)),
				}
				byPlayer[card.Player.ID] = entry
				entries = append(entries, entry)
			}

			total := card.CountTotal
			entry.Scores = append(entry.Scores, total)
			if total > 0 {
				entry.Thru += course.HoleCount
				entry.TotalAll += total
				entry.Total += total - round.Course.CountTotal
			}
		}
	}

	ranked := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		padScores(entry, len(rounds))
		ranked = append(ranked, *entry)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalAll < ranked[j].TotalAll
	})

	a.metrics.IncLeaderboardComputed()
	a.metrics.ObserveLeaderboardDuration(time.Since(startTime).Seconds())
	log.Debug("Computed leaderboard", "gameID", gameID, "rounds", len(rounds), "players", len(ranked))

	return Leaderboard{
		GameID:   gameID,
		RoundIDs: roundIDs,
		Entries:  ranked,
	}, nil
}

// padScores appends zeros until the entry has one score per round.
// Zeros always go at the end, whichever round was actually skipped.
func padScores(entry *Entry, rounds int) {
	for len(entry.Scores) < rounds {
		entry.Scores = append(entry.Scores, 0)
	}
}

// RoundScores returns one round's scorecards ranked by hole wins, together with the
// game's rounds as selectable options. An empty roundID selects the game's first round.
func (a *Aggregator) RoundScores(gameID, roundID string) (RoundList, error) {
	g, err := a.games.Find(gameID)
	if err != nil {
		if errors.Is(err, game.ErrNotFound) {
			return RoundList{}, fmt.Errorf("%w: %w", ErrGameNotFound, err)
		}
		return RoundList{}, fmt.Errorf("failed to get game %s: %w", gameID, err)
	}

	options := make([]RoundOption, 0, len(g.Rounds))
	selected := false
	for i, round := range g.Rounds {
		if i == 0 && roundID == "" {
			roundID = round.ID
		}
		if round.ID == roundID {
			selected = true
		}
		options = append(options, RoundOption{ID: round.ID, Label: round.Label()})
	}

	list := RoundList{
		Game:            *g,
		ScoreList:       []scorecard.Scorecard{},
		RoundList:       options,
		SelectedRoundID: roundID,
	}
	if roundID == "" {
		return list, nil
	}
	if !selected {
		return RoundList{}, fmt.Errorf("%w: round %s, game %s", ErrRoundNotFound, roundID, gameID)
	}

	cards, err := a.scorecards.CountWins(roundID)
	if err != nil {
		return RoundList{}, fmt.Errorf("failed to count wins for round %s: %w", roundID, err)
	}
	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].Win > cards[j].Win
	})
	list.ScoreList = cards
	return list, nil
}
