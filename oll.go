package cubesight

import "github.com/westphae/quaternion"

// OLLCase is the recognized last-layer orientation pattern.
type OLLCase int

const (
	OLLUnknown OLLCase = iota
	// Edge stage: not all last-layer edges show the top color.
	OLLDot
	OLLLShape
	OLLLine
	// Corner stage: edges done, corners still twisted.
	OLLH
	OLLPi
	OLLSune
	OLLAntiSune
	OLLL
	OLLU
	OLLT
)

func (o OLLCase) String() string {
	switch o {
	case OLLDot:
		return "Dot"
	case OLLLShape:
		return "L-Shape"
	case OLLLine:
		return "Line"
	case OLLH:
		return "H"
	case OLLPi:
		return "Pi"
	case OLLSune:
		return "Sune"
	case OLLAntiSune:
		return "Anti-Sune"
	case OLLL:
		return "L"
	case OLLU:
		return "U"
	case OLLT:
		return "T"
	default:
		return "Unknown"
	}
}

// Pattern-geometry thresholds, in lattice units of current positions.
// Adjacent top edges sit sqrt(2) apart, opposite ones 2 apart; adjacent
// top corners sit 2 apart, diagonal ones 2*sqrt(2).
const (
	ollEdgeAdjacent   = 1.8
	ollCornerAdjacent = 2.2
	headlightParallel = 0.9
	looseParallel     = 0.8
)

// topNormal is the world direction of the sticker that faces the top
// when the piece is solved.
func topNormal(p, top Piece) quaternion.Vec3 {
	return p.Rot.RotateVec3(vecUnit(top.Origin))
}

// radial is the horizontal offset of a top-layer piece from the up
// axis, taken from its current position.
func radial(p Piece, up quaternion.Vec3) quaternion.Vec3 {
	return vecSub(p.Pos, vecScale(up, dot(p.Pos, up)))
}

// classifyOLL names the orientation case of a last layer that is not
// fully oriented. Edges and corners are the eight top-layer pieces;
// top is the last layer's center.
func classifyOLL(edges, corners []Piece, top Piece) OLLCase {
	up := upDirection(top)

	var orientedEdges []Piece
	for _, e := range edges {
		if oriented(e, top) {
			orientedEdges = append(orientedEdges, e)
		}
	}

	// Edge stage. A legal state orients 0, 2, or 4 edges.
	switch len(orientedEdges) {
	case 0:
		return OLLDot
	case 2:
		if vecDist(orientedEdges[0].Pos, orientedEdges[1].Pos) < ollEdgeAdjacent {
			return OLLLShape
		}
		return OLLLine
	case 4:
		// Edges done, fall through to the corner stage.
	default:
		return OLLUnknown
	}

	var orientedCorners, twisted []Piece
	for _, c := range corners {
		if oriented(c, top) {
			orientedCorners = append(orientedCorners, c)
		} else {
			twisted = append(twisted, c)
		}
	}

	switch len(orientedCorners) {
	case 0:
		return classifyAllTwisted(twisted, top)
	case 1:
		return classifySune(orientedCorners[0], twisted, top, up)
	case 2:
		if vecDist(orientedCorners[0].Pos, orientedCorners[1].Pos) > ollCornerAdjacent {
			return OLLL
		}
		if dot(topNormal(twisted[0], top), topNormal(twisted[1], top)) > looseParallel {
			return OLLU
		}
		return OLLT
	default:
		return OLLUnknown
	}
}

// classifyAllTwisted separates H from Pi by counting headlight pairs:
// adjacent twisted corners whose top stickers face the same way. H
// shows at least two such pairs, Pi exactly one.
func classifyAllTwisted(twisted []Piece, top Piece) OLLCase {
	pairs := 0
	for i := 0; i < len(twisted); i++ {
		for j := i + 1; j < len(twisted); j++ {
			if vecDist(twisted[i].Pos, twisted[j].Pos) > ollCornerAdjacent {
				continue
			}
			ni := topNormal(twisted[i], top)
			nj := topNormal(twisted[j], top)
			if dot(ni, nj) > headlightParallel {
				pairs++
			}
		}
	}
	switch {
	case pairs >= 2:
		return OLLH
	case pairs == 1:
		return OLLPi
	default:
		return OLLUnknown
	}
}

// classifySune separates Sune from Anti-Sune by the twist sense of the
// corner clockwise of the single oriented one.
func classifySune(orientedCorner Piece, twisted []Piece, top Piece, up quaternion.Vec3) OLLCase {
	// Walking clockwise (seen from above) from the oriented corner
	// means moving along the tangent of its radial.
	tangent := cross(up, radial(orientedCorner, up))

	var neighbor Piece
	best := -1.0
	for _, c := range twisted {
		if d := dot(vecUnit(radial(c, up)), vecUnit(tangent)); d > best {
			best = d
			neighbor = c
		}
	}

	// The neighbor's top sticker leans either with or against the
	// clockwise direction; the sign of the scalar triple product
	// picks the case.
	twist := dot(cross(radial(neighbor, up), topNormal(neighbor, top)), up)
	if twist > 0 {
		return OLLSune
	}
	return OLLAntiSune
}
