package cubesight

import (
	"math"

	"github.com/westphae/quaternion"
)

// Axis selects one of the three rotation axes of the puzzle.
// X points right, Y up, Z toward the viewer.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

func (a Axis) unit() quaternion.Vec3 {
	switch a {
	case AxisX:
		return quaternion.Vec3{X: 1}
	case AxisY:
		return quaternion.Vec3{Y: 1}
	default:
		return quaternion.Vec3{Z: 1}
	}
}

// component returns the coordinate of v along a.
func component(v quaternion.Vec3, a Axis) float64 {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	default:
		return v.Z
	}
}

// rotatePos rotates a lattice position by the given number of quarter
// turns about axis (right-hand rule). Results are rounded back onto the
// lattice; quaternion orientations drift across long move sequences and
// positions must stay exact integers.
func rotatePos(p quaternion.Vec3, axis Axis, turns int) quaternion.Vec3 {
	x, y, z := p.X, p.Y, p.Z
	if turns == 2 || turns == -2 {
		switch axis {
		case AxisX:
			y, z = -y, -z
		case AxisY:
			x, z = -x, -z
		default:
			x, y = -x, -y
		}
	} else {
		d := float64(turns)
		switch axis {
		case AxisX:
			y, z = -d*z, d*y
		case AxisY:
			x, z = d*z, -d*x
		default:
			x, y = -d*y, d*x
		}
	}
	return quaternion.Vec3{X: math.Round(x), Y: math.Round(y), Z: math.Round(z)}
}

// turnQuat returns the world-space rotation applied by the given number
// of quarter turns about axis. Built directly from the axis-angle form
// so it shares rotatePos's handedness.
func turnQuat(axis Axis, turns int) quaternion.Quaternion {
	theta := float64(turns) * math.Pi / 2
	u := axis.unit()
	s := math.Sin(theta / 2)
	return quaternion.Quaternion{
		W: math.Cos(theta / 2),
		X: u.X * s,
		Y: u.Y * s,
		Z: u.Z * s,
	}
}

// axisQuat returns the rotation by theta radians about an arbitrary unit
// axis. Used by tests and fixtures to build piece orientations.
func axisQuat(axis quaternion.Vec3, theta float64) quaternion.Quaternion {
	s := math.Sin(theta / 2)
	return quaternion.Quaternion{
		W: math.Cos(theta / 2),
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
	}
}

// conj returns the quaternion conjugate; for the unit quaternions used
// here it is the inverse rotation.
func conj(q quaternion.Quaternion) quaternion.Quaternion {
	return quaternion.Quaternion{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

func vecAdd(a, b quaternion.Vec3) quaternion.Vec3 {
	return quaternion.Vec3{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z}
}

func vecSub(a, b quaternion.Vec3) quaternion.Vec3 {
	return quaternion.Vec3{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}

func vecScale(v quaternion.Vec3, s float64) quaternion.Vec3 {
	return quaternion.Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func vecNeg(v quaternion.Vec3) quaternion.Vec3 {
	return quaternion.Vec3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

func dot(a, b quaternion.Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func cross(a, b quaternion.Vec3) quaternion.Vec3 {
	return quaternion.Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func vecLen(v quaternion.Vec3) float64 {
	return math.Sqrt(dot(v, v))
}

func vecDist(a, b quaternion.Vec3) float64 {
	return vecLen(vecSub(a, b))
}

func vecUnit(v quaternion.Vec3) quaternion.Vec3 {
	l := vecLen(v)
	if l == 0 {
		return v
	}
	return vecScale(v, 1/l)
}

// angleBetween returns the angle in radians between two nonzero vectors.
func angleBetween(a, b quaternion.Vec3) float64 {
	c := dot(vecUnit(a), vecUnit(b))
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}
	return math.Acos(c)
}

// vecEq reports whether two lattice vectors match after rounding.
func vecEq(a, b quaternion.Vec3) bool {
	return math.Round(a.X) == math.Round(b.X) &&
		math.Round(a.Y) == math.Round(b.Y) &&
		math.Round(a.Z) == math.Round(b.Z)
}
