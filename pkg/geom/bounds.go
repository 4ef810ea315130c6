package geom

import "math"

// BoundingBox is an axis-aligned volume. A box whose Min exceeds its Max on
// any axis is empty.
type BoundingBox struct {
	Min Vector3 `json:"min"`
	Max Vector3 `json:"max"`
}

// BoxOf returns the smallest box containing every point in pts.
// It returns the zero box when pts is empty.
func BoxOf(pts ...Vector3) BoundingBox {
	if len(pts) == 0 {
		return BoundingBox{}
	}
	b := BoundingBox{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		b.Min = Vector3{math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y), math.Min(b.Min.Z, p.Z)}
		b.Max = Vector3{math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y), math.Max(b.Max.Z, p.Z)}
	}
	return b
}

// Center returns the midpoint of the box.
func (b BoundingBox) Center() Vector3 { return b.Min.Midpoint(b.Max) }

// Size returns the X, Y and Z extents of the box.
func (b BoundingBox) Size() Vector3 { return b.Max.Sub(b.Min) }

// IsEmpty reports whether Min exceeds Max on any axis.
func (b BoundingBox) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Corners returns the eight corners of the box.
func (b BoundingBox) Corners() [8]Vector3 {
	var out [8]Vector3
	for i := range out {
		c := b.Min
		if i&1 != 0 {
			c.X = b.Max.X
		}
		if i&2 != 0 {
			c.Y = b.Max.Y
		}
		if i&4 != 0 {
			c.Z = b.Max.Z
		}
		out[i] = c
	}
	return out
}

// OrientedBox is a box in its own axes placed in model space by Transform.
// Rotations accumulate in the transform, so the box never grows however
// often it is turned.
type OrientedBox struct {
	Box       BoundingBox `json:"box"`
	Transform Transform   `json:"transform"`
}

// Orient returns b as an oriented box with the identity transform.
func Orient(b BoundingBox) OrientedBox {
	return OrientedBox{Box: b, Transform: Identity}
}

// Rotated returns o turned about axis by angle radians.
func (o OrientedBox) Rotated(axis Line, angle float64) OrientedBox {
	return OrientedBox{Box: o.Box, Transform: o.Transform.Rotated(axis, angle)}
}

// Enclosing returns the axis-aligned box around o in model space.
func (o OrientedBox) Enclosing() BoundingBox {
	corners := o.Box.Corners()
	for i, c := range corners {
		corners[i] = o.Transform.OfPoint(c)
	}
	return BoxOf(corners[:]...)
}
