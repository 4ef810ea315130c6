package geom

import "math"

// Line is an unbounded axis through Origin. Direction is expected to be unit
// length; RotationAxis guarantees that.
type Line struct {
	Origin    Vector3 `json:"origin"`
	Direction Vector3 `json:"direction"`
}

// RotateVector turns the free vector v about the line's direction by angle
// radians following the right-hand rule (Rodrigues' formula).
func (l Line) RotateVector(v Vector3, angle float64) Vector3 {
	k := l.Direction.Unit()
	sin, cos := math.Sincos(angle)
	return v.Scale(cos).
		Add(k.Cross(v).Scale(sin)).
		Add(k.Scale(k.Dot(v) * (1 - cos)))
}

// RotatePoint turns p about the line by angle radians.
func (l Line) RotatePoint(p Vector3, angle float64) Vector3 {
	return l.Origin.Add(l.RotateVector(p.Sub(l.Origin), angle))
}

// ClosestOnSegment returns the point of segment [a, b] nearest to p.
// A degenerate segment returns a.
func ClosestOnSegment(a, b, p Vector3) Vector3 {
	ab := b.Sub(a)
	den := ab.Dot(ab)
	if den < DefaultTolerance*DefaultTolerance {
		return a
	}
	t := math.Max(0, math.Min(1, p.Sub(a).Dot(ab)/den))
	return a.Add(ab.Scale(t))
}
