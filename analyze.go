package cubesight

import (
	"math"

	"github.com/westphae/quaternion"
)

// Placement and orientation tolerances. Positions are exact lattice
// values, so these only need to absorb quaternion drift accumulated
// over long move sequences.
const (
	placeTolerance  = 0.2
	orientTolerance = 0.5
	adjacentEdge    = 1.1
	// alignedW bounds |w| of the relative rotation of a placed piece.
	// The identity has |w| = 1; the nearest legal misalignment is a
	// quarter turn at cos(pi/4).
	alignedW = 0.9
)

// placed reports whether p sits in its solved slot relative to the
// reference piece: position and orientation must both match home in the
// reference's frame. Working relative to a reference makes the check
// invariant under whole-cube rotation, and a turn of the reference's
// own layer shows up on the pieces that stayed behind.
func placed(p, ref Piece) bool {
	local := conj(ref.Rot).RotateVec3(vecSub(p.Pos, ref.Pos))
	if vecDist(local, vecSub(p.Origin, ref.Origin)) >= placeTolerance {
		return false
	}
	// A quaternion and its negation encode the same rotation, so the
	// relative rotation is the identity exactly when |w| is near 1.
	twist := quaternion.Prod(conj(ref.Rot), p.Rot)
	return math.Abs(twist.W) > alignedW
}

// oriented reports whether the sticker of p that faces the top when
// solved currently faces the same way as the top center's sticker.
func oriented(p, top Piece) bool {
	axis := vecUnit(top.Origin)
	topNormal := top.Rot.RotateVec3(axis)
	pieceNormal := p.Rot.RotateVec3(axis)
	return angleBetween(topNormal, pieceNormal) < orientTolerance
}

// adjacentEdges returns the four edges whose solved position touches
// the center's face.
func (c *Cube) adjacentEdges(center Piece) []Piece {
	out := make([]Piece, 0, 4)
	for _, p := range c.pieces {
		if p.Kind() == KindEdge && vecDist(p.Origin, center.Origin) < adjacentEdge {
			out = append(out, p)
		}
	}
	return out
}

// layerCorners returns the four corners belonging to the center's layer
// in the solved state.
func (c *Cube) layerCorners(center Piece) []Piece {
	out := make([]Piece, 0, 4)
	for _, p := range c.pieces {
		if p.Kind() == KindCorner && dot(p.Origin, center.Origin) > 0.5 {
			out = append(out, p)
		}
	}
	return out
}

// pairedEdge returns the middle-layer edge that forms an F2L pair with
// the given cross-layer corner: the corner's origin with its base-axis
// component removed.
func (c *Cube) pairedEdge(corner, base Piece) (Piece, bool) {
	want := vecSub(corner.Origin, base.Origin)
	for _, p := range c.pieces {
		if p.Kind() == KindEdge && vecEq(p.Origin, want) {
			return p, true
		}
	}
	return Piece{}, false
}

// oppositeCenter returns the center on the far side of base.
func (c *Cube) oppositeCenter(base Piece) (Piece, bool) {
	for _, p := range c.pieces {
		if p.Kind() == KindCenter && dot(p.Origin, base.Origin) < -0.9 {
			return p, true
		}
	}
	return Piece{}, false
}

// Analyze classifies the snapshot against every candidate base color
// and returns the analysis of the furthest-progressed candidate. When
// no base has a completed cross the result is PhaseCross with no base.
func Analyze(c *Cube) Analysis {
	best := Analysis{Phase: PhaseCross, Base: ColorNone}
	found := false
	for _, base := range baseColors {
		a, ok := AnalyzeFrom(c, base)
		if !ok {
			continue
		}
		if !found || better(a, best) {
			best = a
			found = true
		}
	}
	return best
}

// AnalyzeFrom classifies the snapshot for one candidate base color. It
// reports false when that base's cross is not complete.
func AnalyzeFrom(c *Cube, base Color) (Analysis, bool) {
	center, ok := c.centerFor(base)
	if !ok {
		return Analysis{}, false
	}

	// Cross: all four adjacent edges placed relative to the center.
	for _, e := range c.adjacentEdges(center) {
		if !placed(e, center) {
			return Analysis{}, false
		}
	}

	// F2L: count completed corner-edge pairs in the first two layers.
	var pairs, cornersOK, edgesOK int
	corners := c.layerCorners(center)
	for _, corner := range corners {
		cOK := placed(corner, center)
		eOK := false
		if edge, found := c.pairedEdge(corner, center); found {
			eOK = placed(edge, center)
		}
		if cOK {
			cornersOK++
		}
		if eOK {
			edgesOK++
		}
		if cOK && eOK {
			pairs++
		}
	}

	if pairs < 4 {
		d := F2LDetail{Missing: 4 - pairs}
		switch {
		case pairs >= 2:
			// Enough pairs done that the stage label adds nothing.
		case cornersOK == 4:
			d.Stage = F2LSecondLayer
			d.Missing = 4 - edgesOK
		default:
			d.Stage = F2LFirstLayer
			d.Missing = 4 - cornersOK
		}
		return Analysis{Phase: PhaseF2L, Base: base, Detail: d}, true
	}

	// Last layer: gather the top pieces and decide OLL vs PLL.
	top, ok := c.oppositeCenter(center)
	if !ok {
		return Analysis{}, false
	}
	edges := c.adjacentEdges(top)
	topCorners := c.layerCorners(top)

	allOriented := true
	for _, p := range append(append([]Piece{}, edges...), topCorners...) {
		if !oriented(p, top) {
			allOriented = false
			break
		}
	}

	if !allOriented {
		return Analysis{
			Phase:  PhaseOLL,
			Base:   base,
			Detail: OLLDetail{Case: classifyOLL(edges, topCorners, top)},
		}, true
	}

	pll := classifyPLL(edges, topCorners, top)
	if pll == PLLSolved {
		return Analysis{Phase: PhaseSolved, Base: base, Solved: true}, true
	}
	return Analysis{Phase: PhasePLL, Base: base, Detail: PLLDetail{Case: pll}}, true
}

// better reports whether a ranks ahead of b: later phase first, then
// fewer missing F2L slots.
func better(a, b Analysis) bool {
	if a.Phase != b.Phase {
		return a.Phase > b.Phase
	}
	if a.Phase == PhaseF2L {
		da, aok := a.Detail.(F2LDetail)
		db, bok := b.Detail.(F2LDetail)
		if aok && bok {
			return da.Missing < db.Missing
		}
	}
	return false
}

// upDirection is the world-space up axis of a last layer: the top
// center's current radial direction.
func upDirection(top Piece) quaternion.Vec3 {
	return vecUnit(top.Pos)
}
