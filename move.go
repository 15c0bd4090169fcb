package cubesight

import (
	"math"
	"strings"
	"time"
)

// Turn is a signed quarter-turn count about a move's axis, right-hand
// rule. Magnitude 2 is a half turn; its sign does not matter.
type Turn int

const (
	Quarter        Turn = 1  // +90 degrees about the axis
	QuarterInverse Turn = -1 // -90 degrees about the axis
	HalfTurn       Turn = 2  // 180 degrees
)

// Move rotates a set of layers about an axis. Layers holds the layer
// coordinates along Axis affected by the move, which covers face turns
// ({1} or {-1}), middle slices ({0}) and wide moves ({1,0}).
type Move struct {
	Axis   Axis
	Layers []int
	Turn   Turn
	Time   time.Time // when the move occurred (optional)
}

// affects reports whether the layer at coordinate c is part of the move.
func (m Move) affects(c float64) bool {
	layer := int(math.Round(c))
	for _, l := range m.Layers {
		if l == layer {
			return true
		}
	}
	return false
}

// Inverse returns the move that undoes this one.
func (m Move) Inverse() Move {
	inv := m
	inv.Turn = -m.Turn
	return inv
}

// WithTime returns a copy of the move with the given timestamp.
func (m Move) WithTime(t time.Time) Move {
	m.Time = t
	return m
}

// notationSpec maps a face letter to its move geometry. cw is the
// quarter-turn sign of the letter's clockwise turn: faces on the
// positive side of an axis turn clockwise by rotating -90 about it.
type notationSpec struct {
	letter string
	axis   Axis
	layers []int
	cw     Turn
}

var notationSpecs = []notationSpec{
	{"R", AxisX, []int{1}, -1},
	{"L", AxisX, []int{-1}, 1},
	{"U", AxisY, []int{1}, -1},
	{"D", AxisY, []int{-1}, 1},
	{"F", AxisZ, []int{1}, -1},
	{"B", AxisZ, []int{-1}, 1},
	{"M", AxisX, []int{0}, 1}, // follows L
	{"E", AxisY, []int{0}, 1}, // follows D
	{"S", AxisZ, []int{0}, -1}, // follows F
	{"r", AxisX, []int{1, 0}, -1},
	{"l", AxisX, []int{-1, 0}, 1},
	{"u", AxisY, []int{1, 0}, -1},
	{"d", AxisY, []int{-1, 0}, 1},
	{"f", AxisZ, []int{1, 0}, -1},
	{"b", AxisZ, []int{-1, 0}, 1},
}

func specForLetter(letter string) (notationSpec, bool) {
	for _, s := range notationSpecs {
		if s.letter == letter {
			return s, true
		}
	}
	return notationSpec{}, false
}

func (m Move) spec() (notationSpec, bool) {
	for _, s := range notationSpecs {
		if s.axis == m.Axis && sameLayers(s.layers, m.Layers) {
			return s, true
		}
	}
	return notationSpec{}, false
}

func sameLayers(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for _, l := range a {
		found := false
		for _, o := range b {
			if l == o {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Notation returns the standard cube notation for this move.
// Examples: R, R', R2, M, r, u'.
func (m Move) Notation() string {
	s, ok := m.spec()
	if !ok {
		return "?"
	}
	switch m.Turn {
	case s.cw:
		return s.letter
	case -s.cw:
		return s.letter + "'"
	case 2, -2:
		return s.letter + "2"
	default:
		return "?"
	}
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses a standard notation token into a Move.
// Face letters R L U D F B, middle slices M E S, lowercase letters for
// wide moves, optional suffix ' (reverse) or 2 (half turn).
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrInvalidNotation
	}

	spec, ok := specForLetter(s[:1])
	if !ok {
		return Move{}, ErrInvalidNotation
	}

	turn := spec.cw
	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			turn = -spec.cw
		case "2", "2'", "2`":
			turn = HalfTurn
		default:
			return Move{}, ErrInvalidNotation
		}
	}

	return Move{Axis: spec.axis, Layers: spec.layers, Turn: turn}, nil
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "R U R' U'"
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))
	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}
	return moves, nil
}

// FormatMoves formats a move sequence as space-separated notation.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}
	return strings.Join(parts, " ")
}

// InverseMoves returns the sequence that undoes moves.
func InverseMoves(moves []Move) []Move {
	out := make([]Move, len(moves))
	for i, m := range moves {
		out[len(moves)-1-i] = m.Inverse()
	}
	return out
}
