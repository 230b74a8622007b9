package scorecard

// TallyWins returns copies of the cards with Win set to the number of holes won.
// A hole is won by the single player with the lowest nonzero stroke count, provided
// at least two players scored the hole. Tied low scores award nobody.
// The input order is preserved.
func TallyWins(cards []Scorecard) []Scorecard {
	tallied := make([]Scorecard, len(cards))
	holes := 0
	for i, card := range cards {
		tallied[i] = card
		tallied[i].Win = 0
		holes = max(holes, len(card.Holes))
	}

	for hole := 0; hole < holes; hole++ {
		best, winner, scored := 0, -1, 0
		for i, card := range cards {
			if hole >= len(card.Holes) || card.Holes[hole] <= 0 {
				continue
			}
			strokes := card.Holes[hole]
			scored++
			switch {
			case best == 0 || strokes < best:
				best, winner = strokes, i
			case strokes == best:
				winner = -1
			}
		}
		if scored >= 2 && winner >= 0 {
			tallied[winner].Win++
		}
	}
	return tallied
}
