package geom

// Transform places a local coordinate system in model space.
// The basis is orthonormal and right-handed: BasisX × BasisY = BasisZ.
type Transform struct {
	Origin Vector3 `json:"origin"`
	BasisX Vector3 `json:"basis_x"`
	BasisY Vector3 `json:"basis_y"`
	BasisZ Vector3 `json:"basis_z"`
}

// Identity is the world coordinate system.
var Identity = Transform{BasisX: XAxis, BasisY: YAxis, BasisZ: ZAxis}

// LookAt builds a view transform at eye looking toward target.
//
// BasisZ is the look direction, BasisX the right direction (up × forward)
// and BasisY the corrected up direction. When up is parallel to the look
// direction the world Y axis is used as the up hint instead.
func LookAt(eye, target, up Vector3) Transform {
	forward, ok := target.Sub(eye).Normalize()
	if !ok {
		return Transform{Origin: eye, BasisX: XAxis, BasisY: YAxis, BasisZ: ZAxis}
	}
	right, ok := up.Cross(forward).Normalize()
	if !ok {
		right = YAxis.Cross(forward).Unit()
	}
	return Transform{
		Origin: eye,
		BasisX: right,
		BasisY: forward.Cross(right),
		BasisZ: forward,
	}
}

// OfPoint maps a local point into model space.
func (t Transform) OfPoint(p Vector3) Vector3 {
	return t.Origin.Add(t.OfVector(p))
}

// OfVector maps a local direction into model space.
func (t Transform) OfVector(v Vector3) Vector3 {
	return t.BasisX.Scale(v.X).Add(t.BasisY.Scale(v.Y)).Add(t.BasisZ.Scale(v.Z))
}

// Rotated returns t turned about axis by angle radians.
func (t Transform) Rotated(axis Line, angle float64) Transform {
	return Transform{
		Origin: axis.RotatePoint(t.Origin, angle),
		BasisX: axis.RotateVector(t.BasisX, angle),
		BasisY: axis.RotateVector(t.BasisY, angle),
		BasisZ: axis.RotateVector(t.BasisZ, angle),
	}
}
