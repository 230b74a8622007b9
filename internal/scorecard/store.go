package scorecard

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/golf-scorecard/internal/course"
	"github.com/mauv0809/golf-scorecard/internal/game"
	"github.com/mauv0809/golf-scorecard/internal/player"
	"github.com/vmihailenco/msgpack/v5"
)

// Players are left joined so that a dangling player reference surfaces as ErrMissingPlayer
// instead of silently dropping the card.
const scorecardColumns = `
	s.id, s.round_id, s.holes_blob, s.count_total,
	p.id, p.first_name, p.last_name
	FROM scorecards s
	LEFT JOIN players p ON p.id = s.player_id`

// New creates a new ScorecardStore.
func New(db *sql.DB) ScorecardStore {
	return &store{
		db: db,
	}
}

// Save validates the holes, recomputes CountTotal and inserts or updates the card.
// An empty Holes slice is stored as an unplayed round.
func (s *store) Save(card *Scorecard) error {
	if len(card.Holes) == 0 {
		card.Holes = make([]int, course.HoleCount)
	}
	total, err := countTotal(card.Holes)
	if err != nil {
		return err
	}
	holesBlob, err := msgpack.Marshal(card.Holes)
	if err != nil {
		return fmt.Errorf("failed to encode holes: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkReferencesLocked(card); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	var existingID string
	err = tx.QueryRow("SELECT id FROM scorecards WHERE round_id = ? AND player_id = ?", card.RoundID, card.Player.ID).Scan(&existingID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		tx.Rollback()
		return err
	case existingID != card.ID:
		tx.Rollback()
		return fmt.Errorf("%w: player %s, round %s", ErrAlreadyRecorded, card.Player.ID, card.RoundID)
	}

	if card.ID == "" {
		card.ID = uuid.NewString()
	}
	_, err = tx.Exec(`
		INSERT INTO scorecards (id, round_id, player_id, holes_blob, count_total)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			round_id = excluded.round_id,
			player_id = excluded.player_id,
			holes_blob = excluded.holes_blob,
			count_total = excluded.count_total;
	`, card.ID, card.RoundID, card.Player.ID, holesBlob, total)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to save scorecard %s: %w", card.ID, err)
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	card.CountTotal = total
	log.Debug("Saved scorecard", "scorecardID", card.ID, "roundID", card.RoundID, "playerID", card.Player.ID, "countTotal", total)
	return nil
}

// checkReferencesLocked resolves the card's round and player, filling in the player's name.
func (s *store) checkReferencesLocked(card *Scorecard) error {
	var roundID string
	err := s.db.QueryRow("SELECT id FROM rounds WHERE id = ?", card.RoundID).Scan(&roundID)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", game.ErrRoundNotFound, card.RoundID)
	}
	if err != nil {
		return err
	}

	var p player.Player
	err = s.db.QueryRow("SELECT id, first_name, last_name FROM players WHERE id = ?", card.Player.ID).
		Scan(&p.ID, &p.FirstName, &p.LastName)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", player.ErrNotFound, card.Player.ID)
	}
	if err != nil {
		return err
	}
	card.Player = p
	return nil
}

func countTotal(holes []int) (int, error) {
	if len(holes) != course.HoleCount {
		return 0, fmt.Errorf("%w: expected %d holes, got %d", ErrInvalidHoles, course.HoleCount, len(holes))
	}
	total := 0
	for i, strokes := range holes {
		if strokes < 0 || strokes > MaxStrokes {
			return 0, fmt.Errorf("%w: hole %d has %d strokes", ErrInvalidHoles, i+1, strokes)
		}
		total += strokes
	}
	return total, nil
}

// Find returns the scorecard with the given ID.
func (s *store) Find(scorecardID string) (*Scorecard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow("SELECT"+scorecardColumns+" WHERE s.id = ?", scorecardID)
	card, err := scanScorecard(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, scorecardID)
	}
	if err != nil {
		return nil, err
	}
	return card, nil
}

// FindByRoundID returns all scorecards recorded for a round, oldest entry first.
func (s *store) FindByRoundID(roundID string) ([]Scorecard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT"+scorecardColumns+" WHERE s.round_id = ? ORDER BY s.rowid", roundID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cards := []Scorecard{}
	for rows.Next() {
		card, err := scanScorecard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, *card)
	}
	return cards, rows.Err()
}

// CountWins returns the round's scorecards with their hole wins tallied.
func (s *store) CountWins(roundID string) ([]Scorecard, error) {
	cards, err := s.FindByRoundID(roundID)
	if err != nil {
		return nil, err
	}
	return TallyWins(cards), nil
}

// Delete removes a scorecard.
func (s *store) Delete(scorecardID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM scorecards WHERE id = ?", scorecardID)
	if err != nil {
		return fmt.Errorf("failed to delete scorecard %s: %w", scorecardID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, scorecardID)
	}
	return nil
}

func scanScorecard(scanner interface{ Scan(...any) error }) (*Scorecard, error) {
	var card Scorecard
	var holesBlob []byte
	var playerID, firstName, lastName sql.NullString

	err := scanner.Scan(&card.ID, &card.RoundID, &holesBlob, &card.CountTotal, &playerID, &firstName, &lastName)
	if err != nil {
		return nil, err
	}
	if !playerID.Valid {
		log.Error("Scorecard references a missing player", "scorecardID", card.ID, "roundID", card.RoundID)
		return nil, fmt.Errorf("%w: scorecard %s", ErrMissingPlayer, card.ID)
	}
	card.Player = player.Player{ID: playerID.String, FirstName: firstName.String, LastName: lastName.String}

	if len(holesBlob) > 0 {
		if err := msgpack.Unmarshal(holesBlob, &card.Holes); err != nil {
			log.Error("Failed to unmarshal holes_blob", "error", err, "scorecardID", card.ID)
		}
	}
	return &card, nil
}
