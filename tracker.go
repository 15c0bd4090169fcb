package cubesight

// Tracker wraps a Cube and watches phase transitions as moves arrive.
type Tracker struct {
	cube          *Cube
	last          Analysis
	highest       Phase // Monotonic - never goes backwards
	moveCount     int
	phaseCallback func(a Analysis)
}

// NewTracker creates a tracker starting from a solved cube.
func NewTracker() *Tracker {
	return &Tracker{cube: New()}
}

// SetPhaseCallback sets a callback that fires whenever a new highest
// phase is reached.
func (t *Tracker) SetPhaseCallback(cb func(a Analysis)) {
	t.phaseCallback = cb
}

// Reset returns the tracker to a solved cube and clears progress.
func (t *Tracker) Reset() {
	t.cube = New()
	t.last = Analysis{}
	t.highest = PhaseScrambled
	t.moveCount = 0
}

// Rebase clears solve progress while keeping the cube state, so a
// freshly scrambled cube starts a new attempt from zero.
func (t *Tracker) Rebase() {
	t.highest = PhaseScrambled
	t.moveCount = 0
}

// ApplyMove applies one move and re-analyzes the cube.
func (t *Tracker) ApplyMove(m Move) Analysis {
	t.cube = t.cube.Apply(m)
	t.moveCount++
	t.last = Analyze(t.cube)

	// Only fire the callback on a NEW high; raw analysis may go
	// backwards mid-solve, the highest phase never does.
	if t.last.Phase > t.highest {
		t.highest = t.last.Phase
		if t.phaseCallback != nil {
			t.phaseCallback(t.last)
		}
	}
	return t.last
}

// ApplyMoves applies a sequence of moves.
func (t *Tracker) ApplyMoves(moves []Move) Analysis {
	for _, m := range moves {
		t.ApplyMove(m)
	}
	return t.last
}

// ApplyNotation parses and applies a notation sequence.
func (t *Tracker) ApplyNotation(s string) (Analysis, error) {
	moves, err := ParseMoves(s)
	if err != nil {
		return Analysis{}, err
	}
	return t.ApplyMoves(moves), nil
}

// Current returns the analysis of the cube as it stands. This reflects
// the raw state and may go backwards during a solve.
func (t *Tracker) Current() Analysis {
	return t.last
}

// HighestPhase returns the furthest phase reached since the last reset.
func (t *Tracker) HighestPhase() Phase {
	return t.highest
}

// MoveCount returns moves applied since the last reset.
func (t *Tracker) MoveCount() int {
	return t.moveCount
}

// IsSolved reports whether the underlying cube is strictly solved.
func (t *Tracker) IsSolved() bool {
	return t.cube.IsSolved()
}

// Cube returns the underlying snapshot for inspection.
func (t *Tracker) Cube() *Cube {
	return t.cube
}
