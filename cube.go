package cubesight

import (
	"strings"

	"github.com/westphae/quaternion"
)

// Cube is an immutable snapshot of the 27 pieces. Apply returns a new
// snapshot; a snapshot handed to the analyzer is never mutated.
type Cube struct {
	pieces []Piece
}

// identity is the orientation of a piece that has never moved.
var identity = quaternion.Quaternion{W: 1}

// New creates a solved cube: every piece at its origin lattice position
// with identity orientation. Piece IDs are assigned once, in lattice
// order, and are stable across moves.
func New() *Cube {
	pieces := make([]Piece, 0, 27)
	id := 0
	for z := -1.0; z <= 1; z++ {
		for y := -1.0; y <= 1; y++ {
			for x := -1.0; x <= 1; x++ {
				v := quaternion.Vec3{X: x, Y: y, Z: z}
				pieces = append(pieces, Piece{ID: id, Origin: v, Pos: v, Rot: identity})
				id++
			}
		}
	}
	return &Cube{pieces: pieces}
}

// Pieces returns the snapshot's pieces. The slice is shared; callers
// must treat it as read-only.
func (c *Cube) Pieces() []Piece {
	return c.pieces
}

// Apply returns the snapshot after one move. Pieces whose position lies
// in the move's layer set get a rotated position and a pre-multiplied
// (world-space) orientation; all other pieces are copied unchanged. A
// move with an empty layer set is a no-op.
func (c *Cube) Apply(m Move) *Cube {
	if len(m.Layers) == 0 || m.Turn == 0 {
		return c
	}
	q := turnQuat(m.Axis, int(m.Turn))
	next := make([]Piece, len(c.pieces))
	copy(next, c.pieces)
	for i := range next {
		p := &next[i]
		if !m.affects(component(p.Pos, m.Axis)) {
			continue
		}
		p.Pos = rotatePos(p.Pos, m.Axis, int(m.Turn))
		p.Rot = quaternion.Prod(q, p.Rot)
	}
	return &Cube{pieces: next}
}

// ApplyAll applies a sequence of moves.
func (c *Cube) ApplyAll(moves ...Move) *Cube {
	for _, m := range moves {
		c = c.Apply(m)
	}
	return c
}

// ApplyNotation applies a space-separated notation sequence.
func (c *Cube) ApplyNotation(s string) (*Cube, error) {
	moves, err := ParseMoves(s)
	if err != nil {
		return nil, err
	}
	return c.ApplyAll(moves...), nil
}

// centers returns the six face centers in the fixed color order used by
// the phase engine.
func (c *Cube) centers() []Piece {
	out := make([]Piece, 0, 6)
	for _, color := range baseColors {
		if ctr, ok := c.centerFor(color); ok {
			out = append(out, ctr)
		}
	}
	return out
}

func (c *Cube) centerFor(color Color) (Piece, bool) {
	for _, p := range c.pieces {
		if p.Kind() == KindCenter && p.Color() == color {
			return p, true
		}
	}
	return Piece{}, false
}

// PieceAt returns the piece currently occupying the lattice position.
func (c *Cube) PieceAt(pos quaternion.Vec3) (Piece, bool) {
	for _, p := range c.pieces {
		if vecEq(p.Pos, pos) {
			return p, true
		}
	}
	return Piece{}, false
}

// IsSolved reports whether every piece sits in its solved position and
// orientation, allowing only a rigid rotation of the whole cube. A
// corner anchors the frame since corners carry a unique orientation.
// Centers are compared by face axis alone: a center spun about its own
// axis is indistinguishable from home.
func (c *Cube) IsSolved() bool {
	var ref Piece
	for _, p := range c.pieces {
		if p.Kind() == KindCorner {
			ref = p
			break
		}
	}
	for _, p := range c.pieces {
		switch p.Kind() {
		case KindCore:
			continue
		case KindCenter:
			local := conj(ref.Rot).RotateVec3(vecSub(p.Pos, ref.Pos))
			if vecDist(local, vecSub(p.Origin, ref.Origin)) >= placeTolerance {
				return false
			}
			axis := vecUnit(p.Origin)
			if vecDist(p.Rot.RotateVec3(axis), ref.Rot.RotateVec3(axis)) >= placeTolerance {
				return false
			}
		default:
			if !placed(p, ref) {
				return false
			}
		}
	}
	return true
}

// faceGrid describes how to walk a face's 9 stickers in reading order.
type faceGrid struct {
	normal quaternion.Vec3
	right  quaternion.Vec3
	down   quaternion.Vec3
}

var faceGrids = map[Color]faceGrid{
	White:  {quaternion.Vec3{Y: 1}, quaternion.Vec3{X: 1}, quaternion.Vec3{Z: 1}},
	Yellow: {quaternion.Vec3{Y: -1}, quaternion.Vec3{X: 1}, quaternion.Vec3{Z: -1}},
	Green:  {quaternion.Vec3{Z: 1}, quaternion.Vec3{X: 1}, quaternion.Vec3{Y: -1}},
	Blue:   {quaternion.Vec3{Z: -1}, quaternion.Vec3{X: -1}, quaternion.Vec3{Y: -1}},
	Red:    {quaternion.Vec3{X: 1}, quaternion.Vec3{Z: -1}, quaternion.Vec3{Y: -1}},
	Orange: {quaternion.Vec3{X: -1}, quaternion.Vec3{Z: 1}, quaternion.Vec3{Y: -1}},
}

// FaceColors reads the 3x3 sticker colors of the face that is the given
// color when solved, in reading order (top-left to bottom-right).
func (c *Cube) FaceColors(face Color) [3][3]Color {
	var out [3][3]Color
	g, ok := faceGrids[face]
	if !ok {
		return out
	}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			pos := vecAdd(g.normal, vecAdd(
				vecScale(g.right, float64(col-1)),
				vecScale(g.down, float64(row-1)),
			))
			p, found := c.PieceAt(pos)
			if !found {
				continue
			}
			if col1, okc := p.StickerColor(g.normal); okc {
				out[row][col] = col1
			}
		}
	}
	return out
}

// String renders the cube as a flat net: U on top, then L F R B, then D.
func (c *Cube) String() string {
	var b strings.Builder

	writeRow := func(face Color, row int, indent bool) {
		grid := c.FaceColors(face)
		if indent {
			b.WriteString("      ")
		}
		for col := 0; col < 3; col++ {
			b.WriteString(grid[row][col].String())
			b.WriteByte(' ')
		}
	}

	for row := 0; row < 3; row++ {
		writeRow(White, row, true)
		b.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		for _, face := range []Color{Orange, Green, Red, Blue} {
			writeRow(face, row, false)
		}
		b.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		writeRow(Yellow, row, true)
		b.WriteByte('\n')
	}

	return b.String()
}
