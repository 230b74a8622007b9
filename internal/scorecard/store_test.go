package scorecard_test

import (
	"database/sql"
	"testing"

	"github.com/mauv0809/golf-scorecard/internal/course"
	"github.com/mauv0809/golf-scorecard/internal/database"
	"github.com/mauv0809/golf-scorecard/internal/game"
	"github.com/mauv0809/golf-scorecard/internal/player"
	"github.com/mauv0809/golf-scorecard/internal/scorecard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	db      *sql.DB
	store   scorecard.ScorecardStore
	round   *game.Round
	players []*player.Player
}

func setupTestDB(t *testing.T) (*fixture, func()) {
	t.Helper()

	db, teardown, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)

	c := &course.Course{Name: "Tali", Pars: []int{4, 4, 3, 5, 4, 4, 3, 4, 5, 4, 4, 3, 5, 4, 4, 3, 4, 5}}
	require.NoError(t, course.New(db).Save(c))

	games := game.New(db)
	g := &game.Game{Name: "Weekly"}
	require.NoError(t, games.Save(g))
	r := &game.Round{GameID: g.ID, Name: "Round 1", Course: course.Course{ID: c.ID}}
	require.NoError(t, games.SaveRound(r))

	players := player.New(db)
	var ps []*player.Player
	for _, name := range [][2]string{{"Anna", "Korhonen"}, {"Sami", "Virtanen"}, {"Aino", "Laine"}} {
		p := &player.Player{FirstName: name[0], LastName: name[1]}
		require.NoError(t, players.Save(p))
		ps = append(ps, p)
	}

	return &fixture{db: db, store: scorecard.New(db), round: r, players: ps}, teardown
}

func holes(strokes ...int) []int {
	out := make([]int, course.HoleCount)
	copy(out, strokes)
	return out
}

func TestSaveComputesCountTotal(t *testing.T) {
	f, teardown := setupTestDB(t)
	defer teardown()

	card := &scorecard.Scorecard{RoundID: f.round.ID, Player: player.Player{ID: f.players[0].ID}, Holes: holes(4, 5, 3)}
	require.NoError(t, f.store.Save(card))
	assert.NotEmpty(t, card.ID)
	assert.Equal(t, 12, card.CountTotal)
	assert.Equal(t, "Anna Korhonen", card.Player.Name(), "Save should resolve the player")

	found, err := f.store.Find(card.ID)
	require.NoError(t, err)
	assert.Equal(t, 12, found.CountTotal)
	assert.Equal(t, holes(4, 5, 3), found.Holes)
	assert.Equal(t, f.players[0].ID, found.Player.ID)

	card.Holes[17] = 6
	require.NoError(t, f.store.Save(card))
	found, err = f.store.Find(card.ID)
	require.NoError(t, err)
	assert.Equal(t, 18, found.CountTotal)
}

func TestSaveEmptyCardIsUnplayed(t *testing.T) {
	f, teardown := setupTestDB(t)
	defer teardown()

	card := &scorecard.Scorecard{RoundID: f.round.ID, Player: player.Player{ID: f.players[0].ID}}
	require.NoError(t, f.store.Save(card))
	assert.Equal(t, 0, card.CountTotal)
	assert.Len(t, card.Holes, course.HoleCount)
}

func TestSaveValidation(t *testing.T) {
	f, teardown := setupTestDB(t)
	defer teardown()

	tests := []struct {
		name string
		card scorecard.Scorecard
		err  error
	}{
		{"wrong hole count", scorecard.Scorecard{RoundID: f.round.ID, Player: player.Player{ID: f.players[0].ID}, Holes: []int{4, 4}}, scorecard.ErrInvalidHoles},
		{"negative strokes", scorecard.Scorecard{RoundID: f.round.ID, Player: player.Player{ID: f.players[0].ID}, Holes: holes(-1)}, scorecard.ErrInvalidHoles},
		{"too many strokes", scorecard.Scorecard{RoundID: f.round.ID, Player: player.Player{ID: f.players[0].ID}, Holes: holes(scorecard.MaxStrokes + 1)}, scorecard.ErrInvalidHoles},
		{"unknown round", scorecard.Scorecard{RoundID: "nope", Player: player.Player{ID: f.players[0].ID}, Holes: holes(4)}, game.ErrRoundNotFound},
		{"unknown player", scorecard.Scorecard{RoundID: f.round.ID, Player: player.Player{ID: "nope"}, Holes: holes(4)}, player.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := tt.card
			assert.ErrorIs(t, f.store.Save(&card), tt.err)
		})
	}
}

func TestSaveRejectsSecondCardForPlayer(t *testing.T) {
	f, teardown := setupTestDB(t)
	defer teardown()

	first := &scorecard.Scorecard{RoundID: f.round.ID, Player: player.Player{ID: f.players[0].ID}, Holes: holes(4)}
	require.NoError(t, f.store.Save(first))

	second := &scorecard.Scorecard{RoundID: f.round.ID, Player: player.Player{ID: f.players[0].ID}, Holes: holes(5)}
	assert.ErrorIs(t, f.store.Save(second), scorecard.ErrAlreadyRecorded)
}

func TestFindByRoundIDAndCountWins(t *testing.T) {
	f, teardown := setupTestDB(t)
	defer teardown()

	for i, strokes := range [][]int{holes(4, 4, 4), holes(3, 5, 4), holes(5, 3, 3)} {
		card := &scorecard.Scorecard{RoundID: f.round.ID, Player: player.Player{ID: f.players[i].ID}, Holes: strokes}
		require.NoError(t, f.store.Save(card))
	}

	cards, err := f.store.FindByRoundID(f.round.ID)
	require.NoError(t, err)
	require.Len(t, cards, 3)
	assert.Equal(t, "Anna Korhonen", cards[0].Player.Name())
	assert.Equal(t, "Aino Laine", cards[2].Player.Name())
	for _, c := range cards {
		assert.Zero(t, c.Win, "FindByRoundID must not tally wins")
	}

	withWins, err := f.store.CountWins(f.round.ID)
	require.NoError(t, err)
	require.Len(t, withWins, 3)
	assert.Equal(t, 0, withWins[0].Win)
	assert.Equal(t, 1, withWins[1].Win)
	assert.Equal(t, 2, withWins[2].Win)

	empty, err := f.store.FindByRoundID("unknown")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestFindByRoundIDMissingPlayer(t *testing.T) {
	f, teardown := setupTestDB(t)
	defer teardown()

	_, err := f.db.Exec("PRAGMA foreign_keys = OFF")
	require.NoError(t, err)
	_, err = f.db.Exec(`INSERT INTO scorecards (id, round_id, player_id, count_total) VALUES ('orphan', ?, 'deleted-player', 80)`, f.round.ID)
	require.NoError(t, err)

	_, err = f.store.FindByRoundID(f.round.ID)
	assert.ErrorIs(t, err, scorecard.ErrMissingPlayer)
}

func TestDeleteScorecard(t *testing.T) {
	f, teardown := setupTestDB(t)
	defer teardown()

	card := &scorecard.Scorecard{RoundID: f.round.ID, Player: player.Player{ID: f.players[0].ID}, Holes: holes(4)}
	require.NoError(t, f.store.Save(card))

	require.NoError(t, f.store.Delete(card.ID))
	_, err := f.store.Find(card.ID)
	assert.ErrorIs(t, err, scorecard.ErrNotFound)
	assert.ErrorIs(t, f.store.Delete(card.ID), scorecard.ErrNotFound)
}
