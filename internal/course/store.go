package course

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

// New creates a new CourseStore.
func New(db *sql.DB) CourseStore {
	return &store{
		db: db,
	}
}

// Save inserts a new course or updates an existing one. A course without an ID gets a fresh one.
// CountTotal is always recomputed from the pars.
func (s *store) Save(course *Course) error {
	if len(course.Pars) != HoleCount {
		return fmt.Errorf("%w: expected %d pars, got %d", ErrInvalidPars, HoleCount, len(course.Pars))
	}
	total := 0
	for hole, par := range course.Pars {
		if par <= 0 {
			return fmt.Errorf("%w: hole %d has par %d", ErrInvalidPars, hole+1, par)
		}
		total += par
	}

	parsBlob, err := msgpack.Marshal(course.Pars)
	if err != nil {
		return fmt.Errorf("failed to encode pars: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	course.CountTotal = total

	_, err = s.db.Exec(`
		INSERT INTO courses (id, name, pars_blob, count_total)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			pars_blob = excluded.pars_blob,
			count_total = excluded.count_total;
	`, course.ID, course.Name, parsBlob, course.CountTotal)
	if err != nil {
		return fmt.Errorf("failed to save course %s: %w", course.ID, err)
	}
	log.Debug("Saved course", "courseID", course.ID, "countTotal", course.CountTotal)
	return nil
}

// Find returns the course with the given ID.
func (s *store) Find(courseID string) (*Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow("SELECT id, name, pars_blob, count_total FROM courses WHERE id = ?", courseID)
	course, err := scanCourse(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, courseID)
	}
	if err != nil {
		return nil, err
	}
	return course, nil
}

// GetAllCourses returns every course ordered by name.
func (s *store) GetAllCourses() ([]Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT id, name, pars_blob, count_total FROM courses ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses := []Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, *course)
	}
	return courses, rows.Err()
}

// Delete removes a course. Courses still referenced by rounds cannot be deleted.
func (s *store) Delete(courseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM courses WHERE id = ?", courseID)
	if err != nil {
		return fmt.Errorf("failed to delete course %s: %w", courseID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, courseID)
	}
	return nil
}

func scanCourse(scanner interface{ Scan(...any) error }) (*Course, error) {
	var course Course
	var parsBlob []byte
	if err := scanner.Scan(&course.ID, &course.Name, &parsBlob, &course.CountTotal); err != nil {
		return nil, err
	}
	if len(parsBlob) > 0 {
		if err := msgpack.Unmarshal(parsBlob, &course.Pars); err != nil {
			log.Error("Failed to unmarshal pars_blob", "error", err, "courseID", course.ID)
		}
	}
	return &course, nil
}
