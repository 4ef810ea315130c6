package geom

import (
	"fmt"
	"math"
)

// DefaultTolerance is the length below which a vector is treated as zero.
const DefaultTolerance = 1e-6

// World axes.
var (
	XAxis = Vector3{X: 1}
	YAxis = Vector3{Y: 1}
	ZAxis = Vector3{Z: 1}
)

// Vector3 is a point or direction in model space.
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Vec is shorthand for Vector3{x, y, z}.
func Vec(x, y, z float64) Vector3 { return Vector3{X: x, Y: y, Z: z} }

func (v Vector3) Add(o Vector3) Vector3   { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vector3) Sub(o Vector3) Vector3   { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vector3) Scale(k float64) Vector3 { return Vector3{v.X * k, v.Y * k, v.Z * k} }
func (v Vector3) Negate() Vector3         { return Vector3{-v.X, -v.Y, -v.Z} }
func (v Vector3) Dot(o Vector3) float64   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns v × o.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean norm of v.
func (v Vector3) Length() float64 { return math.Sqrt(v.Dot(v)) }

// IsZero reports whether v is shorter than DefaultTolerance.
func (v Vector3) IsZero() bool { return v.Length() < DefaultTolerance }

// Normalize returns v scaled to unit length and false when v has no usable
// length; in that case v is returned unchanged.
func (v Vector3) Normalize() (Vector3, bool) {
	l := v.Length()
	if l < DefaultTolerance {
		return v, false
	}
	return v.Scale(1 / l), true
}

// Unit is Normalize without the flag.
func (v Vector3) Unit() Vector3 {
	u, _ := v.Normalize()
	return u
}

// Midpoint returns the point halfway between v and o.
func (v Vector3) Midpoint(o Vector3) Vector3 { return v.Add(o).Scale(0.5) }

// ApproxEqual reports whether every component of v and o differs by at most tol.
func (v Vector3) ApproxEqual(o Vector3, tol float64) bool {
	return math.Abs(v.X-o.X) <= tol && math.Abs(v.Y-o.Y) <= tol && math.Abs(v.Z-o.Z) <= tol
}

func (v Vector3) String() string {
	return fmt.Sprintf("(%.4g, %.4g, %.4g)", v.X, v.Y, v.Z)
}

// =============================================================================
// Planar Helpers
// =============================================================================

// Rotate turns v by angle radians about the world Z axis. Z is unchanged.
func Rotate(v Vector3, angle float64) Vector3 {
	sin, cos := math.Sincos(angle)
	return Vector3{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
		Z: v.Z,
	}
}

// AngleBetween returns the unsigned angle in [0, π] between v1 and v2.
// It returns 0 only when either vector is exactly zero; short vectors are
// measured like any other.
func AngleBetween(v1, v2 Vector3) float64 {
	l1, l2 := v1.Length(), v2.Length()
	if l1 == 0 || l2 == 0 {
		return 0
	}
	dot := v1.Scale(1 / l1).Dot(v2.Scale(1 / l2))
	return math.Acos(math.Max(-1, math.Min(1, dot)))
}

// ProjectXY drops the Z component of v.
func ProjectXY(v Vector3) Vector3 { return Vector3{X: v.X, Y: v.Y} }

// AreParallel reports whether |v1 × v2| <= tol, so exactly collinear
// vectors are parallel even at tolerance 0. Zero-length input is parallel
// to everything.
func AreParallel(v1, v2 Vector3, tol float64) bool {
	return v1.Cross(v2).Length() <= tol
}

// RotationAxis returns the line through origin along normal. A zero-length
// normal yields the vertical axis through origin.
func RotationAxis(origin, normal Vector3) Line {
	dir, ok := normal.Normalize()
	if !ok {
		dir = ZAxis
	}
	return Line{Origin: origin, Direction: dir}
}
