package storage

import (
	"database/sql"
	"fmt"

	"github.com/cubesight/cubesight"
)

// MoveRecord represents a recorded move in the database.
type MoveRecord struct {
	MoveID    int64
	SolveID   string
	MoveIndex int
	TsMs      int64
	Notation  string
	Phase     *string
}

// MoveRepository provides CRUD operations for moves.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

// Create records one move and returns its row ID. phase is the phase
// the cube was in after the move, empty when unknown.
func (r *MoveRepository) Create(solveID string, moveIndex int, tsMs int64, m cubesight.Move, phase string) (int64, error) {
	var phasePtr *string
	if phase != "" {
		phasePtr = &phase
	}

	result, err := r.db.Exec(`
		INSERT INTO moves (solve_id, move_index, ts_ms, notation, phase)
		VALUES (?, ?, ?, ?, ?)
	`, solveID, moveIndex, tsMs, m.Notation(), phasePtr)

	if err != nil {
		return 0, fmt.Errorf("create move: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get move ID: %w", err)
	}

	return id, nil
}

// CreateBatch records multiple moves in a single transaction, using
// each move's own timestamp.
func (r *MoveRepository) CreateBatch(solveID string, moves []cubesight.Move, startIndex int) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		for i, m := range moves {
			_, err := tx.Exec(`
				INSERT INTO moves (solve_id, move_index, ts_ms, notation)
				VALUES (?, ?, ?, ?)
			`, solveID, startIndex+i, m.Time.UnixMilli(), m.Notation())
			if err != nil {
				return fmt.Errorf("create move %d: %w", startIndex+i, err)
			}
		}
		return nil
	})
}

// GetBySolve retrieves all moves for a solve in order.
func (r *MoveRepository) GetBySolve(solveID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, solve_id, move_index, ts_ms, notation, phase
		FROM moves
		WHERE solve_id = ?
		ORDER BY move_index
	`, solveID)

	if err != nil {
		return nil, fmt.Errorf("get moves: %w", err)
	}
	defer rows.Close()

	var records []MoveRecord
	for rows.Next() {
		var rec MoveRecord
		if err := rows.Scan(&rec.MoveID, &rec.SolveID, &rec.MoveIndex, &rec.TsMs, &rec.Notation, &rec.Phase); err != nil {
			return nil, fmt.Errorf("scan move: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get moves: %w", err)
	}

	return records, nil
}

// CountBySolve returns the number of moves recorded for a solve.
func (r *MoveRepository) CountBySolve(solveID string) (int, error) {
	var n int
	err := r.db.QueryRow("SELECT COUNT(*) FROM moves WHERE solve_id = ?", solveID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count moves: %w", err)
	}
	return n, nil
}
