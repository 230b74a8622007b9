package game_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/mauv0809/golf-scorecard/internal/course"
	"github.com/mauv0809/golf-scorecard/internal/database"
	"github.com/mauv0809/golf-scorecard/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (game.GameStore, course.CourseStore, *sql.DB, func()) {
	t.Helper()

	db, teardown, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)
	return game.New(db), course.New(db), db, teardown
}

func saveCourse(t *testing.T, store course.CourseStore, name string) *course.Course {
	t.Helper()
	c := &course.Course{Name: name, Pars: []int{4, 4, 3, 5, 4, 4, 3, 4, 5, 4, 4, 3, 5, 4, 4, 3, 4, 5}}
	require.NoError(t, store.Save(c))
	return c
}

func TestSaveAndFindGame(t *testing.T) {
	games, _, _, teardown := setupTestDB(t)
	defer teardown()

	playedOn := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	g := &game.Game{Name: "Midsummer Open", PlayedOn: playedOn}
	require.NoError(t, games.Save(g))
	require.NotEmpty(t, g.ID)

	found, err := games.Find(g.ID)
	require.NoError(t, err)
	assert.Equal(t, "Midsummer Open", found.Name)
	assert.True(t, playedOn.Equal(found.PlayedOn))
	assert.Empty(t, found.Rounds)

	assert.ErrorIs(t, games.Save(&game.Game{Name: "  "}), game.ErrInvalidName)
}

func TestFindUnknownGame(t *testing.T) {
	games, _, _, teardown := setupTestDB(t)
	defer teardown()

	_, err := games.Find("missing")
	assert.ErrorIs(t, err, game.ErrNotFound)

	_, err = games.GetRoundsForGame("missing")
	assert.ErrorIs(t, err, game.ErrNotFound)
}

func TestSaveRound(t *testing.T) {
	games, courses, _, teardown := setupTestDB(t)
	defer teardown()

	c := saveCourse(t, courses, "Tali")
	g := &game.Game{Name: "Club Championship"}
	require.NoError(t, games.Save(g))

	t.Run("assigns sequential ordinals", func(t *testing.T) {
		r1 := &game.Round{GameID: g.ID, Name: "Round 1", Course: course.Course{ID: c.ID}}
		r2 := &game.Round{GameID: g.ID, Name: "Round 2", Course: course.Course{ID: c.ID}}
		require.NoError(t, games.SaveRound(r1))
		require.NoError(t, games.SaveRound(r2))

		assert.Equal(t, 1, r1.Ordinal)
		assert.Equal(t, 2, r2.Ordinal)
		assert.Equal(t, "Tali", r1.Course.Name)
		assert.Equal(t, 72, r1.Course.CountTotal)
		assert.Equal(t, "Round 1 | Tali", r1.Label())
	})

	t.Run("unknown game", func(t *testing.T) {
		err := games.SaveRound(&game.Round{GameID: "nope", Name: "Round", Course: course.Course{ID: c.ID}})
		assert.ErrorIs(t, err, game.ErrNotFound)
	})

	t.Run("unknown course", func(t *testing.T) {
		err := games.SaveRound(&game.Round{GameID: g.ID, Name: "Round", Course: course.Course{ID: "nope"}})
		assert.ErrorIs(t, err, course.ErrNotFound)
	})
}

func TestGetRoundsForGameRespectsOrdinal(t *testing.T) {
	games, courses, _, teardown := setupTestDB(t)
	defer teardown()

	tali := saveCourse(t, courses, "Tali")
	kulta := saveCourse(t, courses, "Kultaranta")
	g := &game.Game{Name: "Tour"}
	require.NoError(t, games.Save(g))

	// Inserted out of play order on purpose.
	require.NoError(t, games.SaveRound(&game.Round{GameID: g.ID, Name: "Final", Ordinal: 3, Course: course.Course{ID: kulta.ID}}))
	require.NoError(t, games.SaveRound(&game.Round{GameID: g.ID, Name: "Opening", Ordinal: 1, Course: course.Course{ID: tali.ID}}))
	require.NoError(t, games.SaveRound(&game.Round{GameID: g.ID, Name: "Middle", Ordinal: 2, Course: course.Course{ID: tali.ID}}))

	rounds, err := games.GetRoundsForGame(g.ID)
	require.NoError(t, err)
	require.Len(t, rounds, 3)
	assert.Equal(t, "Opening", rounds[0].Name)
	assert.Equal(t, "Middle", rounds[1].Name)
	assert.Equal(t, "Final", rounds[2].Name)
	assert.Equal(t, "Kultaranta", rounds[2].Course.Name)
	assert.Len(t, rounds[2].Course.Pars, course.HoleCount)

	found, err := games.Find(g.ID)
	require.NoError(t, err)
	assert.Equal(t, rounds, found.Rounds)
}

func TestDeleteGameCascadesRounds(t *testing.T) {
	games, courses, db, teardown := setupTestDB(t)
	defer teardown()

	c := saveCourse(t, courses, "Tali")
	g := &game.Game{Name: "Short lived"}
	require.NoError(t, games.Save(g))
	r := &game.Round{GameID: g.ID, Name: "Round 1", Course: course.Course{ID: c.ID}}
	require.NoError(t, games.SaveRound(r))

	require.NoError(t, games.Delete(g.ID))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM rounds").Scan(&count))
	assert.Equal(t, 0, count)

	_, err := games.FindRound(r.ID)
	assert.ErrorIs(t, err, game.ErrRoundNotFound)
	assert.ErrorIs(t, games.Delete(g.ID), game.ErrNotFound)
}

func TestDeleteRound(t *testing.T) {
	games, courses, _, teardown := setupTestDB(t)
	defer teardown()

	c := saveCourse(t, courses, "Tali")
	g := &game.Game{Name: "Game"}
	require.NoError(t, games.Save(g))
	r := &game.Round{GameID: g.ID, Name: "Round 1", Course: course.Course{ID: c.ID}}
	require.NoError(t, games.SaveRound(r))

	found, err := games.FindRound(r.ID)
	require.NoError(t, err)
	assert.Equal(t, g.ID, found.GameID)

	require.NoError(t, games.DeleteRound(r.ID))
	assert.ErrorIs(t, games.DeleteRound(r.ID), game.ErrRoundNotFound)
}
