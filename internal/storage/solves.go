package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Solve represents a solve session in the database.
type Solve struct {
	SolveID      string
	StartedAt    time.Time
	EndedAt      *time.Time
	DurationMs   *int64
	ScrambleText *string
	FinalPhase   *string
	Solved       bool
	Notes        *string
}

// SolveRepository provides CRUD operations for solves.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Create creates a new solve and returns its ID.
func (r *SolveRepository) Create(scramble, notes string) (string, error) {
	id := uuid.New().String()
	startedAt := time.Now().UTC()

	var scramblePtr, notesPtr *string
	if scramble != "" {
		scramblePtr = &scramble
	}
	if notes != "" {
		notesPtr = &notes
	}

	_, err := r.db.Exec(`
		INSERT INTO solves (solve_id, started_at, scramble_text, notes)
		VALUES (?, ?, ?, ?)
	`, id, startedAt.Format(time.RFC3339), scramblePtr, notesPtr)

	if err != nil {
		return "", fmt.Errorf("create solve: %w", err)
	}

	return id, nil
}

// End marks a solve as complete, recording its duration and outcome.
func (r *SolveRepository) End(solveID, finalPhase string, solved bool) error {
	endedAt := time.Now().UTC()

	var startedAtStr string
	err := r.db.QueryRow("SELECT started_at FROM solves WHERE solve_id = ?", solveID).Scan(&startedAtStr)
	if err != nil {
		return fmt.Errorf("get solve start time: %w", err)
	}

	startedAt, err := time.Parse(time.RFC3339, startedAtStr)
	if err != nil {
		return fmt.Errorf("parse start time: %w", err)
	}

	durationMs := endedAt.Sub(startedAt).Milliseconds()

	_, err = r.db.Exec(`
		UPDATE solves
		SET ended_at = ?, duration_ms = ?, final_phase = ?, solved = ?
		WHERE solve_id = ?
	`, endedAt.Format(time.RFC3339), durationMs, finalPhase, boolToInt(solved), solveID)

	if err != nil {
		return fmt.Errorf("end solve: %w", err)
	}

	return nil
}

// Get retrieves a solve by ID, or nil when it does not exist.
func (r *SolveRepository) Get(solveID string) (*Solve, error) {
	var s Solve
	var startedAtStr string
	var endedAtStr sql.NullString
	var solved int

	err := r.db.QueryRow(`
		SELECT solve_id, started_at, ended_at, duration_ms, scramble_text, final_phase, solved, notes
		FROM solves
		WHERE solve_id = ?
	`, solveID).Scan(
		&s.SolveID, &startedAtStr, &endedAtStr,
		&s.DurationMs, &s.ScrambleText, &s.FinalPhase, &solved, &s.Notes,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get solve: %w", err)
	}

	s.StartedAt, _ = time.Parse(time.RFC3339, startedAtStr)
	if endedAtStr.Valid {
		t, _ := time.Parse(time.RFC3339, endedAtStr.String)
		s.EndedAt = &t
	}
	s.Solved = solved != 0

	return &s, nil
}

// GetLast retrieves the most recent solve, or nil when none exist.
func (r *SolveRepository) GetLast() (*Solve, error) {
	var solveID string
	err := r.db.QueryRow(`
		SELECT solve_id FROM solves
		ORDER BY started_at DESC
		LIMIT 1
	`).Scan(&solveID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get last solve: %w", err)
	}

	return r.Get(solveID)
}

// List retrieves the most recent solves, newest first.
func (r *SolveRepository) List(limit int) ([]Solve, error) {
	rows, err := r.db.Query(`
		SELECT solve_id FROM solves
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list solves: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan solve id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list solves: %w", err)
	}

	solves := make([]Solve, 0, len(ids))
	for _, id := range ids {
		s, err := r.Get(id)
		if err != nil {
			return nil, err
		}
		if s != nil {
			solves = append(solves, *s)
		}
	}
	return solves, nil
}

// Delete removes a solve and, via foreign keys, its moves.
func (r *SolveRepository) Delete(solveID string) error {
	if _, err := r.db.Exec("DELETE FROM solves WHERE solve_id = ?", solveID); err != nil {
		return fmt.Errorf("delete solve: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
