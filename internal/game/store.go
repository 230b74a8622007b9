package game

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/golf-scorecard/internal/course"
	"github.com/vmihailenco/msgpack/v5"
)

const roundColumns = `
	r.id, r.game_id, r.name, r.ordinal,
	c.id, c.name, c.pars_blob, c.count_total
	FROM rounds r
	JOIN courses c ON c.id = r.course_id`

// New creates a new GameStore.
func New(db *sql.DB) GameStore {
	return &store{
		db: db,
	}
}

// Save inserts a new game or updates the name and date of an existing one.
func (s *store) Save(game *Game) error {
	game.Name = strings.TrimSpace(game.Name)
	if game.Name == "" {
		return ErrInvalidName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if game.ID == "" {
		game.ID = uuid.NewString()
	}
	if game.PlayedOn.IsZero() {
		game.PlayedOn = time.Now().Truncate(time.Second)
	}
	_, err := s.db.Exec(`
		INSERT INTO games (id, name, played_on) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			played_on = excluded.played_on;
	`, game.ID, game.Name, game.PlayedOn.Unix())
	if err != nil {
		return fmt.Errorf("failed to save game %s: %w", game.ID, err)
	}
	log.Debug("Saved game", "gameID", game.ID, "name", game.Name)
	return nil
}

// Find returns the game with the given ID including its rounds.
func (s *store) Find(gameID string) (*Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	game, err := s.findLocked(gameID)
	if err != nil {
		return nil, err
	}
	rounds, err := s.roundsLocked(gameID)
	if err != nil {
		return nil, err
	}
	game.Rounds = rounds
	return game, nil
}

func (s *store) findLocked(gameID string) (*Game, error) {
	var game Game
	var playedOn int64
	err := s.db.QueryRow("SELECT id, name, played_on FROM games WHERE id = ?", gameID).
		Scan(&game.ID, &game.Name, &playedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, gameID)
	}
	if err != nil {
		return nil, err
	}
	game.PlayedOn = time.Unix(playedOn, 0)
	return &game, nil
}

// GetAllGames returns every game, newest first. Rounds are not loaded.
func (s *store) GetAllGames() ([]Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT id, name, played_on FROM games ORDER BY played_on DESC, name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	games := []Game{}
	for rows.Next() {
		var game Game
		var playedOn int64
		if err := rows.Scan(&game.ID, &game.Name, &playedOn); err != nil {
			return nil, err
		}
		game.PlayedOn = time.Unix(playedOn, 0)
		games = append(games, game)
	}
	return games, rows.Err()
}

// Delete removes a game together with its rounds and their scorecards.
func (s *store) Delete(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM games WHERE id = ?", gameID)
	if err != nil {
		return fmt.Errorf("failed to delete game %s: %w", gameID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, gameID)
	}
	log.Info("Deleted game", "gameID", gameID)
	return nil
}

// SaveRound inserts or updates a round. A zero ordinal places the round after the game's last round.
// On success round.Course is populated from the store.
func (s *store) SaveRound(round *Round) error {
	round.Name = strings.TrimSpace(round.Name)
	if round.Name == "" {
		return ErrInvalidName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.findLocked(round.GameID); err != nil {
		return err
	}

	c, err := s.courseLocked(round.Course.ID)
	if err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if round.Ordinal == 0 {
		var last sql.NullInt64
		if err := tx.QueryRow("SELECT MAX(ordinal) FROM rounds WHERE game_id = ?", round.GameID).Scan(&last); err != nil {
			tx.Rollback()
			return err
		}
		round.Ordinal = int(last.Int64) + 1
	}
	if round.ID == "" {
		round.ID = uuid.NewString()
	}
	_, err = tx.Exec(`
		INSERT INTO rounds (id, game_id, name, ordinal, course_id) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			ordinal = excluded.ordinal,
			course_id = excluded.course_id;
	`, round.ID, round.GameID, round.Name, round.Ordinal, c.ID)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to save round %s: %w", round.ID, err)
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	round.Course = *c
	log.Debug("Saved round", "roundID", round.ID, "gameID", round.GameID, "ordinal", round.Ordinal)
	return nil
}

func (s *store) courseLocked(courseID string) (*course.Course, error) {
	var c course.Course
	var parsBlob []byte
	err := s.db.QueryRow("SELECT id, name, pars_blob, count_total FROM courses WHERE id = ?", courseID).
		Scan(&c.ID, &c.Name, &parsBlob, &c.CountTotal)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", course.ErrNotFound, courseID)
	}
	if err != nil {
		return nil, err
	}
	decodePars(parsBlob, &c)
	return &c, nil
}

// FindRound returns the round with the given ID.
func (s *store) FindRound(roundID string) (*Round, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow("SELECT"+roundColumns+" WHERE r.id = ?", roundID)
	round, err := scanRound(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRoundNotFound, roundID)
	}
	if err != nil {
		return nil, err
	}
	return round, nil
}

// GetRoundsForGame returns the rounds of a game ordered by ordinal.
// An unknown game yields ErrNotFound.
func (s *store) GetRoundsForGame(gameID string) ([]Round, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, err := s.findLocked(gameID); err != nil {
		return nil, err
	}
	return s.roundsLocked(gameID)
}

func (s *store) roundsLocked(gameID string) ([]Round, error) {
	rows, err := s.db.Query("SELECT"+roundColumns+" WHERE r.game_id = ? ORDER BY r.ordinal, r.rowid", gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rounds := []Round{}
	for rows.Next() {
		round, err := scanRound(rows)
		if err != nil {
			return nil, err
		}
		rounds = append(rounds, *round)
	}
	return rounds, rows.Err()
}

// DeleteRound removes a round and its scorecards.
func (s *store) DeleteRound(roundID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM rounds WHERE id = ?", roundID)
	if err != nil {
		return fmt.Errorf("failed to delete round %s: %w", roundID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrRoundNotFound, roundID)
	}
	return nil
}

func scanRound(scanner interface{ Scan(...any) error }) (*Round, error) {
	var round Round
	var parsBlob []byte
	err := scanner.Scan(
		&round.ID, &round.GameID, &round.Name, &round.Ordinal,
		&round.Course.ID, &round.Course.Name, &parsBlob, &round.Course.CountTotal,
	)
	if err != nil {
		return nil, err
	}
	decodePars(parsBlob, &round.Course)
	return &round, nil
}

func decodePars(blob []byte, c *course.Course) {
	if len(blob) == 0 {
		return
	}
	if err := msgpack.Unmarshal(blob, &c.Pars); err != nil {
		log.Error("Failed to unmarshal pars_blob", "error", err, "courseID", c.ID)
	}
}
