package cubesight

import (
	"strings"

	"github.com/westphae/quaternion"
)

// Color identifies a face color. The solved-state mapping follows the
// standard scheme: white up, green front, red right.
type Color int

const (
	ColorNone Color = iota
	White
	Yellow
	Green
	Blue
	Red
	Orange
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// Name returns the full color name.
func (c Color) Name() string {
	switch c {
	case White:
		return "white"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Red:
		return "red"
	case Orange:
		return "orange"
	default:
		return "none"
	}
}

// ParseColor resolves a color from its full name or single-letter code.
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return White, nil
	case "yellow", "y":
		return Yellow, nil
	case "green", "g":
		return Green, nil
	case "blue", "b":
		return Blue, nil
	case "red", "r":
		return Red, nil
	case "orange", "o":
		return Orange, nil
	default:
		return ColorNone, ErrUnknownColor
	}
}

// baseColors fixes the candidate evaluation order for the phase engine.
var baseColors = []Color{White, Yellow, Green, Blue, Red, Orange}

// colorForDirection maps a unit lattice direction to the color of the
// face pointing that way in the solved state.
func colorForDirection(v quaternion.Vec3) Color {
	switch {
	case v.Y > 0.5:
		return White
	case v.Y < -0.5:
		return Yellow
	case v.Z > 0.5:
		return Green
	case v.Z < -0.5:
		return Blue
	case v.X > 0.5:
		return Red
	case v.X < -0.5:
		return Orange
	default:
		return ColorNone
	}
}

// directionForColor is the inverse of colorForDirection.
func directionForColor(c Color) quaternion.Vec3 {
	switch c {
	case White:
		return quaternion.Vec3{Y: 1}
	case Yellow:
		return quaternion.Vec3{Y: -1}
	case Green:
		return quaternion.Vec3{Z: 1}
	case Blue:
		return quaternion.Vec3{Z: -1}
	case Red:
		return quaternion.Vec3{X: 1}
	case Orange:
		return quaternion.Vec3{X: -1}
	default:
		return quaternion.Vec3{}
	}
}

// OppositeColor returns the color on the far side of the puzzle.
func OppositeColor(c Color) Color {
	switch c {
	case White:
		return Yellow
	case Yellow:
		return White
	case Green:
		return Blue
	case Blue:
		return Green
	case Red:
		return Orange
	case Orange:
		return Red
	default:
		return ColorNone
	}
}
