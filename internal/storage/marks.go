package storage

import "fmt"

// PhaseMark records the moment a solve first reached a phase.
type PhaseMark struct {
	MarkID    int64
	SolveID   string
	Phase     string
	Detail    *string
	MoveIndex int
	TsMs      int64
}

// PhaseMarkRepository stores phase transition marks.
type PhaseMarkRepository struct {
	db *DB
}

// NewPhaseMarkRepository creates a new phase mark repository.
func NewPhaseMarkRepository(db *DB) *PhaseMarkRepository {
	return &PhaseMarkRepository{db: db}
}

// Create records a phase mark.
func (r *PhaseMarkRepository) Create(solveID, phase, detail string, moveIndex int, tsMs int64) error {
	var detailPtr *string
	if detail != "" {
		detailPtr = &detail
	}

	_, err := r.db.Exec(`
		INSERT INTO phase_marks (solve_id, phase, detail, move_index, ts_ms)
		VALUES (?, ?, ?, ?, ?)
	`, solveID, phase, detailPtr, moveIndex, tsMs)

	if err != nil {
		return fmt.Errorf("create phase mark: %w", err)
	}
	return nil
}

// GetBySolve retrieves all phase marks for a solve in move order.
func (r *PhaseMarkRepository) GetBySolve(solveID string) ([]PhaseMark, error) {
	rows, err := r.db.Query(`
		SELECT mark_id, solve_id, phase, detail, move_index, ts_ms
		FROM phase_marks
		WHERE solve_id = ?
		ORDER BY move_index
	`, solveID)

	if err != nil {
		return nil, fmt.Errorf("get phase marks: %w", err)
	}
	defer rows.Close()

	var marks []PhaseMark
	for rows.Next() {
		var m PhaseMark
		if err := rows.Scan(&m.MarkID, &m.SolveID, &m.Phase, &m.Detail, &m.MoveIndex, &m.TsMs); err != nil {
			return nil, fmt.Errorf("scan phase mark: %w", err)
		}
		marks = append(marks, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get phase marks: %w", err)
	}

	return marks, nil
}
