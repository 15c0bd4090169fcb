package recorder

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cubesight/cubesight"
	"github.com/cubesight/cubesight/internal/storage"
)

// SessionState represents the current state of a recording session.
type SessionState int

const (
	StateIdle SessionState = iota
	StateRecording
	StateEnded
)

func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecording:
		return "recording"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Session records one solve: it feeds moves through a phase tracker,
// persists each move, and marks phase transitions as they happen.
type Session struct {
	db        *storage.DB
	stateFile *StateFile
	log       *slog.Logger

	mu        sync.Mutex
	state     SessionState
	solveID   string
	startTime time.Time
	moveIndex int
	tracker   *cubesight.Tracker

	solveRepo *storage.SolveRepository
	moveRepo  *storage.MoveRepository
	markRepo  *storage.PhaseMarkRepository
}

// NewSession creates a session manager.
func NewSession(db *storage.DB, stateFile *StateFile, log *slog.Logger) *Session {
	return &Session{
		db:        db,
		stateFile: stateFile,
		log:       log,
		tracker:   cubesight.NewTracker(),
		solveRepo: storage.NewSolveRepository(db),
		moveRepo:  storage.NewMoveRepository(db),
		markRepo:  storage.NewPhaseMarkRepository(db),
	}
}

// Start begins a new solve. The scramble is applied to the internal
// cube but not counted as solve moves.
func (s *Session) Start(scramble []cubesight.Move, notes string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateRecording {
		return "", fmt.Errorf("a solve is already being recorded (%s)", s.solveID)
	}

	s.tracker.Reset()
	s.tracker.ApplyMoves(scramble)
	s.tracker.Rebase()

	id, err := s.solveRepo.Create(cubesight.FormatMoves(scramble), notes)
	if err != nil {
		return "", err
	}

	s.state = StateRecording
	s.solveID = id
	s.startTime = time.Now()
	s.moveIndex = 0

	if s.stateFile != nil {
		st := s.stateFile.State()
		st.ActiveSolveID = id
		st.MoveIndex = 0
		if err := s.stateFile.SetState(st); err != nil {
			return "", err
		}
	}

	s.log.Info("solve started", "solve_id", id, "scramble", cubesight.FormatMoves(scramble))
	return id, nil
}

// Resume reloads an in-progress solve by replaying its scramble and
// recorded moves into the tracker.
func (s *Session) Resume(solveID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	solve, err := s.solveRepo.Get(solveID)
	if err != nil {
		return err
	}
	if solve == nil {
		return fmt.Errorf("solve %s not found", solveID)
	}
	if solve.EndedAt != nil {
		return fmt.Errorf("solve %s has already ended", solveID)
	}

	s.tracker.Reset()
	if solve.ScrambleText != nil {
		if _, err := s.tracker.ApplyNotation(*solve.ScrambleText); err != nil {
			return fmt.Errorf("replay scramble: %w", err)
		}
	}
	s.tracker.Rebase()

	records, err := s.moveRepo.GetBySolve(solveID)
	if err != nil {
		return err
	}
	for _, rec := range records {
		if _, err := s.tracker.ApplyNotation(rec.Notation); err != nil {
			return fmt.Errorf("replay move %d: %w", rec.MoveIndex, err)
		}
	}

	s.state = StateRecording
	s.solveID = solveID
	s.startTime = solve.StartedAt
	s.moveIndex = len(records)

	s.log.Info("solve resumed", "solve_id", solveID, "moves", len(records))
	return nil
}

// RecordMove applies one move, persists it, and marks any phase
// transition it caused.
func (s *Session) RecordMove(m cubesight.Move) (cubesight.Analysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return cubesight.Analysis{}, fmt.Errorf("no solve in progress")
	}

	before := s.tracker.HighestPhase()
	a := s.tracker.ApplyMove(m)
	tsMs := time.Since(s.startTime).Milliseconds()

	if _, err := s.moveRepo.Create(s.solveID, s.moveIndex, tsMs, m, a.Phase.String()); err != nil {
		return a, err
	}

	if a.Phase > before {
		detail := ""
		if a.Detail != nil {
			detail = a.Detail.Describe()
		}
		if err := s.markRepo.Create(s.solveID, a.Phase.String(), detail, s.moveIndex, tsMs); err != nil {
			return a, err
		}
		s.log.Info("phase reached",
			"solve_id", s.solveID,
			"phase", a.Phase.DisplayName(),
			"base", a.Base.Name(),
			"detail", detail,
			"move_index", s.moveIndex)
	}

	s.moveIndex++
	if s.stateFile != nil {
		st := s.stateFile.State()
		st.MoveIndex = s.moveIndex
		if err := s.stateFile.SetState(st); err != nil {
			return a, err
		}
	}

	return a, nil
}

// RecordNotation parses and records a space-separated move sequence,
// returning the analysis after the last move.
func (s *Session) RecordNotation(notation string) (cubesight.Analysis, error) {
	moves, err := cubesight.ParseMoves(notation)
	if err != nil {
		return cubesight.Analysis{}, err
	}
	var last cubesight.Analysis
	for _, m := range moves {
		if last, err = s.RecordMove(m); err != nil {
			return last, err
		}
	}
	return last, nil
}

// End finishes the solve and records its outcome.
func (s *Session) End() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return fmt.Errorf("no solve in progress")
	}

	a := s.tracker.Current()
	if err := s.solveRepo.End(s.solveID, a.Phase.String(), s.tracker.IsSolved()); err != nil {
		return err
	}

	s.state = StateEnded
	if s.stateFile != nil {
		if err := s.stateFile.Clear(); err != nil {
			return err
		}
	}

	s.log.Info("solve ended",
		"solve_id", s.solveID,
		"moves", s.moveIndex,
		"final_phase", a.Phase.DisplayName(),
		"solved", s.tracker.IsSolved())
	return nil
}

// State returns the session state.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SolveID returns the active solve ID.
func (s *Session) SolveID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.solveID
}

// Tracker exposes the underlying phase tracker for display.
func (s *Session) Tracker() *cubesight.Tracker {
	return s.tracker
}
