// Package geom provides the small amount of 3D vector math that frame
// inference, section building and alignment need.
//
// # Overview
//
// All types in this package are plain values. Nothing here allocates on the
// heap or holds state between calls, so every function is safe for
// concurrent use.
//
//   - [Vector3]: an (X, Y, Z) triple with the usual arithmetic
//   - [BoundingBox]: an axis-aligned volume given by its Min and Max corners
//   - [Line]: an infinite axis through a point, used for rotations
//   - [Transform]: an origin plus an orthonormal basis
//
// # Planar Helpers
//
// Model geometry is mostly reasoned about in plan. [Rotate] turns a vector
// about the world Z axis, [ProjectXY] flattens it onto the horizontal plane
// and [AngleBetween] measures the unsigned angle between two directions:
//
//	d := geom.Rotate(geom.Vector3{X: 1}, math.Pi/2) // (0, 1, 0)
//	a := geom.AngleBetween(geom.ProjectXY(d), geom.XAxis) // π/2
//
// # Degenerate Input
//
// Functions never panic on zero-length vectors. [AngleBetween] returns 0,
// [AreParallel] reports true (the cross product of a zero vector is zero), and
// [RotationAxis] falls back to the vertical axis through the origin. Callers
// that need a meaningful direction should check [Vector3.IsZero] first.
package geom
