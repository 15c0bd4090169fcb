package cubesight

import "fmt"

// Phase is a stage of a CFOP solve. Values order by solve progress, so
// phases compare directly: a later phase is a larger value.
type Phase int

const (
	// PhaseScrambled is the zero value, reported before any snapshot
	// has been analyzed.
	PhaseScrambled Phase = iota
	// PhaseCross means no base color has all four cross edges placed
	// yet: the solver is still building a cross.
	PhaseCross
	// PhaseF2L means a cross is complete and the first-two-layers
	// slots are being filled.
	PhaseF2L
	// PhaseOLL means the first two layers are done and the last layer
	// still needs orienting.
	PhaseOLL
	// PhasePLL means the last layer is oriented but not yet permuted.
	PhasePLL
	// PhaseSolved means the puzzle is solved up to final-layer rotation.
	PhaseSolved
)

func (p Phase) String() string {
	switch p {
	case PhaseScrambled:
		return "scrambled"
	case PhaseCross:
		return "cross"
	case PhaseF2L:
		return "f2l"
	case PhaseOLL:
		return "oll"
	case PhasePLL:
		return "pll"
	case PhaseSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// DisplayName returns the human-facing phase label.
func (p Phase) DisplayName() string {
	switch p {
	case PhaseScrambled:
		return "Scrambled"
	case PhaseCross:
		return "Cross"
	case PhaseF2L:
		return "F2L"
	case PhaseOLL:
		return "OLL"
	case PhasePLL:
		return "PLL"
	case PhaseSolved:
		return "Solved"
	default:
		return "Unknown"
	}
}

// F2LStage distinguishes progress within the first two layers.
type F2LStage int

const (
	// F2LPairs is the general case, counted in completed corner-edge pairs.
	F2LPairs F2LStage = iota
	// F2LFirstLayer means all four cross-layer corners are placed.
	F2LFirstLayer
	// F2LSecondLayer means all four middle-layer edges are placed.
	F2LSecondLayer
)

func (s F2LStage) String() string {
	switch s {
	case F2LFirstLayer:
		return "First Layer"
	case F2LSecondLayer:
		return "Second Layer"
	default:
		return ""
	}
}

// Detail carries phase-specific sub-classification on an Analysis.
type Detail interface {
	// Describe renders the detail for display, or "" if there is
	// nothing to add beyond the phase itself.
	Describe() string
}

// F2LDetail reports which F2L stage applies and how many slots remain.
type F2LDetail struct {
	Stage   F2LStage
	Missing int
}

func (d F2LDetail) Describe() string {
	if s := d.Stage.String(); s != "" {
		return fmt.Sprintf("%s, %d missing", s, d.Missing)
	}
	return fmt.Sprintf("%d missing", d.Missing)
}

// OLLDetail reports the recognized orientation case.
type OLLDetail struct {
	Case OLLCase
}

func (d OLLDetail) Describe() string { return d.Case.String() }

// PLLDetail reports the recognized permutation case.
type PLLDetail struct {
	Case PLLCase
}

func (d PLLDetail) Describe() string { return d.Case.String() }

// Analysis is the result of classifying a snapshot: the furthest phase
// reached, the base (cross) color that reached it, and any sub-case
// detail for that phase.
type Analysis struct {
	Phase  Phase
	Base   Color
	Solved bool
	Detail Detail
}

func (a Analysis) String() string {
	s := a.Phase.DisplayName()
	if a.Base != ColorNone {
		s += " (" + a.Base.Name() + ")"
	}
	if a.Detail != nil {
		if d := a.Detail.Describe(); d != "" {
			s += ": " + d
		}
	}
	return s
}
