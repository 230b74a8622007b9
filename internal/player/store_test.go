package player_test

import (
	"testing"

	"github.com/mauv0809/golf-scorecard/internal/database"
	"github.com/mauv0809/golf-scorecard/internal/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (player.PlayerStore, func()) {
	t.Helper()

	db, teardown, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)
	return player.New(db), teardown
}

func TestSaveAndFindPlayer(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	p := &player.Player{FirstName: " Matti ", LastName: "Lappi"}
	require.NoError(t, store.Save(p))
	require.NotEmpty(t, p.ID)

	found, err := store.Find(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Matti", found.FirstName)
	assert.Equal(t, "Matti Lappi", found.Name())

	p.LastName = "Virtanen"
	require.NoError(t, store.Save(p))
	found, err = store.Find(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Matti Virtanen", found.Name())
}

func TestSaveRequiresNames(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	assert.ErrorIs(t, store.Save(&player.Player{FirstName: "Only"}), player.ErrInvalidName)
	assert.ErrorIs(t, store.Save(&player.Player{LastName: "Last"}), player.ErrInvalidName)
}

func TestGetAllPlayersOrdering(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	for _, p := range []*player.Player{
		{FirstName: "Sami", LastName: "Virtanen"},
		{FirstName: "Anna", LastName: "Korhonen"},
		{FirstName: "Aino", LastName: "Virtanen"},
	} {
		require.NoError(t, store.Save(p))
	}

	players, err := store.GetAllPlayers()
	require.NoError(t, err)
	require.Len(t, players, 3)
	assert.Equal(t, "Anna Korhonen", players[0].Name())
	assert.Equal(t, "Aino Virtanen", players[1].Name())
	assert.Equal(t, "Sami Virtanen", players[2].Name())
}

func TestFindAndDeleteUnknownPlayer(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	_, err := store.Find("ghost")
	assert.ErrorIs(t, err, player.ErrNotFound)
	assert.ErrorIs(t, store.Delete("ghost"), player.ErrNotFound)
}
