package scorecard

import (
	"testing"

	"github.com/mauv0809/golf-scorecard/internal/player"
	"github.com/stretchr/testify/assert"
)

func card(name string, holes ...int) Scorecard {
	return Scorecard{ID: name, Player: player.Player{ID: name}, Holes: holes}
}

func wins(cards []Scorecard) []int {
	out := make([]int, len(cards))
	for i, c := range cards {
		out[i] = c.Win
	}
	return out
}

func TestTallyWins(t *testing.T) {
	tests := []struct {
		name     string
		cards    []Scorecard
		expected []int
	}{
		{
			name:     "no cards",
			cards:    nil,
			expected: []int{},
		},
		{
			name:     "lowest score wins each hole",
			cards:    []Scorecard{card("a", 3, 4, 5), card("b", 4, 3, 6), card("c", 5, 5, 4)},
			expected: []int{1, 1, 1},
		},
		{
			name:     "tied low score awards nobody",
			cards:    []Scorecard{card("a", 3, 4), card("b", 3, 5), card("c", 4, 5)},
			expected: []int{1, 0, 0},
		},
		{
			name:     "tie broken by a later lower score",
			cards:    []Scorecard{card("a", 4), card("b", 4), card("c", 3)},
			expected: []int{0, 0, 1},
		},
		{
			name:     "unplayed holes are ignored",
			cards:    []Scorecard{card("a", 0, 4), card("b", 5, 0)},
			expected: []int{0, 0},
		},
		{
			name:     "single player cannot win",
			cards:    []Scorecard{card("a", 3, 3, 3)},
			expected: []int{0},
		},
		{
			name:     "shorter cards only compete on recorded holes",
			cards:    []Scorecard{card("a", 4, 4, 4), card("b", 5), card("c", 5, 5)},
			expected: []int{2, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, wins(TallyWins(tt.cards)))
		})
	}
}

func TestTallyWinsDoesNotMutateInput(t *testing.T) {
	cards := []Scorecard{card("a", 3), card("b", 4)}
	cards[1].Win = 7

	tallied := TallyWins(cards)

	assert.Equal(t, 0, cards[0].Win)
	assert.Equal(t, 7, cards[1].Win)
	assert.Equal(t, []int{1, 0}, wins(tallied))
	assert.Equal(t, "a", tallied[0].ID, "input order must be preserved")
}
