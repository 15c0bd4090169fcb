package cubesight

import (
	"math"

	"github.com/westphae/quaternion"
)

// Test fixtures build last-layer states by editing pieces in place
// rather than searching for move sequences that produce each case.

// editPiece returns a copy of the cube with the piece of the given
// origin modified.
func editPiece(c *Cube, origin quaternion.Vec3, f func(*Piece)) *Cube {
	next := make([]Piece, len(c.pieces))
	copy(next, c.pieces)
	for i := range next {
		if vecEq(next[i].Origin, origin) {
			f(&next[i])
		}
	}
	return &Cube{pieces: next}
}

// twistCorner rotates a solved-position corner about its own diagonal
// by sign*120 degrees, keeping its position.
func twistCorner(c *Cube, origin quaternion.Vec3, sign float64) *Cube {
	q := axisQuat(vecUnit(origin), sign*2*math.Pi/3)
	return editPiece(c, origin, func(p *Piece) { p.Rot = q })
}

// flipEdge flips a solved-position edge in place by rotating it half a
// turn about its own diagonal, swapping its two stickers.
func flipEdge(c *Cube, origin quaternion.Vec3) *Cube {
	q := axisQuat(vecUnit(origin), math.Pi)
	return editPiece(c, origin, func(p *Piece) { p.Rot = q })
}

// movePiece relocates a piece to a new position with a new orientation.
// Used to build last-layer permutation fixtures.
func movePiece(c *Cube, origin, pos quaternion.Vec3, rot quaternion.Quaternion) *Cube {
	return editPiece(c, origin, func(p *Piece) {
		p.Pos = pos
		p.Rot = rot
	})
}

func corner(x, y, z float64) quaternion.Vec3 { return quaternion.Vec3{X: x, Y: y, Z: z} }

// yQuat is the quarter- or half-turn rotation about the world Y axis
// used to keep relocated last-layer pieces oriented.
func yQuat(quarters int) quaternion.Quaternion {
	return axisQuat(quaternion.Vec3{Y: 1}, float64(quarters)*math.Pi/2)
}
