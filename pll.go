package cubesight

import "github.com/westphae/quaternion"

// PLLCase is the recognized last-layer permutation pattern.
type PLLCase int

const (
	PLLUnknown PLLCase = iota
	// PLLDiagonal means two corners swap across the diagonal.
	PLLDiagonal
	// PLLHeadlights means exactly one side shows matching corners.
	PLLHeadlights
	PLLH
	PLLZ
	PLLUa
	PLLUb
	// PLLSolved means every side is a solid bar: the layer only needs
	// a final rotation, which counts as solved.
	PLLSolved
)

func (p PLLCase) String() string {
	switch p {
	case PLLDiagonal:
		return "Diagonal"
	case PLLHeadlights:
		return "Headlights"
	case PLLH:
		return "PLL (H)"
	case PLLZ:
		return "PLL (Z)"
	case PLLUa:
		return "PLL (Ua)"
	case PLLUb:
		return "PLL (Ub)"
	case PLLSolved:
		return "Solved"
	default:
		return "Unknown"
	}
}

// side is one vertical face of the last layer: its outward direction
// and the colors its three stickers show.
type side struct {
	dir        quaternion.Vec3
	cornerA    Color
	cornerB    Color
	edge       Color
	headlights bool
	bar        bool
}

// readSides splits the last layer into its four vertical faces and
// reads the sticker colors each one shows.
func readSides(edges, corners []Piece, up quaternion.Vec3) []side {
	sides := make([]side, 0, 4)
	for _, e := range edges {
		d := vecUnit(radial(e, up))
		s := side{dir: d}
		s.edge, _ = e.StickerColor(d)
		first := true
		for _, c := range corners {
			if dot(c.Pos, d) < 0.5 {
				continue
			}
			col, _ := c.StickerColor(d)
			if first {
				s.cornerA = col
				first = false
			} else {
				s.cornerB = col
			}
		}
		s.headlights = s.cornerA != ColorNone && s.cornerA == s.cornerB
		s.bar = s.headlights && s.edge == s.cornerA
		sides = append(sides, s)
	}
	return sides
}

// classifyPLL names the permutation case of a fully oriented last
// layer by counting headlight sides and solid bars.
func classifyPLL(edges, corners []Piece, top Piece) PLLCase {
	up := upDirection(top)
	sides := readSides(edges, corners, up)
	if len(sides) != 4 {
		return PLLUnknown
	}

	headlights := 0
	bars := 0
	for _, s := range sides {
		if s.headlights {
			headlights++
		}
		if s.bar {
			bars++
		}
	}

	switch headlights {
	case 0:
		return PLLDiagonal
	case 1:
		return PLLHeadlights
	case 4:
		return classifyEdgeCycle(sides, up, bars)
	default:
		return PLLUnknown
	}
}

// classifyEdgeCycle handles the four-headlights states, where the
// corners are already permuted and only edges may still cycle.
func classifyEdgeCycle(sides []side, up quaternion.Vec3, bars int) PLLCase {
	switch bars {
	case 4:
		// Solid bars all around. Four distinct side colors confirm a
		// genuinely solved layer.
		seen := map[Color]bool{}
		for _, s := range sides {
			seen[s.cornerA] = true
		}
		if len(seen) == 4 {
			return PLLSolved
		}
		return PLLUnknown
	case 0:
		// Every edge is misplaced: H swaps each edge with its
		// opposite side, Z with an adjacent one.
		if sides[0].edge == OppositeColor(sides[0].cornerA) {
			return PLLH
		}
		return PLLZ
	case 1:
		// One solid bar marks the back; a three-edge cycle remains.
		var back side
		for _, s := range sides {
			if s.bar {
				back = s
			}
		}
		front := vecNeg(back.dir)
		right := cross(up, front)
		var frontEdge, rightCorner Color
		for _, s := range sides {
			if dot(s.dir, front) > 0.9 {
				frontEdge = s.edge
			}
			if dot(s.dir, right) > 0.9 {
				rightCorner = s.cornerA
			}
		}
		if frontEdge == rightCorner {
			return PLLUa
		}
		return PLLUb
	default:
		return PLLZ
	}
}
