package cubesight

import (
	"math"

	"github.com/westphae/quaternion"
)

// Kind classifies a piece by how many stickers it carries.
type Kind int

const (
	// KindCore is the hidden piece at the puzzle's center.
	KindCore Kind = iota
	// KindCenter carries one sticker and defines a face color.
	KindCenter
	// KindEdge carries two stickers.
	KindEdge
	// KindCorner carries three stickers.
	KindCorner
)

func (k Kind) String() string {
	switch k {
	case KindCenter:
		return "center"
	case KindEdge:
		return "edge"
	case KindCorner:
		return "corner"
	default:
		return "core"
	}
}

// Piece is one of the 27 physical units of the puzzle.
type Piece struct {
	// ID is a stable identity assigned at initialization.
	ID int

	// Origin is the piece's solved-state lattice position. It never
	// changes; its nonzero components are the directions the piece's
	// stickers face when solved, which also fixes the piece kind.
	Origin quaternion.Vec3

	// Pos is the current lattice position, in {-1,0,1}^3.
	Pos quaternion.Vec3

	// Rot is the accumulated world-space rotation. Identity when the
	// piece has never moved; always a composition of quarter turns
	// about cube axes (up to float drift).
	Rot quaternion.Quaternion
}

// Kind derives the piece kind from the origin coordinates alone. It
// never depends on the current position.
func (p Piece) Kind() Kind {
	n := int(math.Abs(p.Origin.X) + math.Abs(p.Origin.Y) + math.Abs(p.Origin.Z))
	switch n {
	case 1:
		return KindCenter
	case 2:
		return KindEdge
	case 3:
		return KindCorner
	default:
		return KindCore
	}
}

// Color returns the face color a center piece stands for, or ColorNone
// for any other kind.
func (p Piece) Color() Color {
	if p.Kind() != KindCenter {
		return ColorNone
	}
	return colorForDirection(p.Origin)
}

// stickerNormals lists the piece's sticker directions in its own frame,
// one unit vector per nonzero origin component.
func (p Piece) stickerNormals() []quaternion.Vec3 {
	normals := make([]quaternion.Vec3, 0, 3)
	if p.Origin.X != 0 {
		normals = append(normals, quaternion.Vec3{X: p.Origin.X})
	}
	if p.Origin.Y != 0 {
		normals = append(normals, quaternion.Vec3{Y: p.Origin.Y})
	}
	if p.Origin.Z != 0 {
		normals = append(normals, quaternion.Vec3{Z: p.Origin.Z})
	}
	return normals
}

// StickerColor returns the color of the sticker currently facing
// direction d, if one faces it closely enough.
func (p Piece) StickerColor(d quaternion.Vec3) (Color, bool) {
	best := ColorNone
	bestDot := stickerFaceDot
	for _, n := range p.stickerNormals() {
		world := p.Rot.RotateVec3(n)
		if a := dot(world, d); a > bestDot {
			bestDot = a
			best = colorForDirection(n)
		}
	}
	return best, best != ColorNone
}

// stickerFaceDot is the alignment threshold for reading a sticker color
// off a face direction. Positions are exact, so any aligned sticker
// clears this comfortably; orientation drift stays far below it.
const stickerFaceDot = 0.85
