package frame

import (
	"fmt"

	"github.com/matzehuels/framewright/pkg/geom"
	"github.com/matzehuels/framewright/pkg/model"
)

// DefaultHeight is used for curve-based elements that report no height.
const DefaultHeight = 10.0

// Frame is the canonical local frame of one element. Direction is not
// normalized; for curve-based elements its length is the width.
type Frame struct {
	Origin    geom.Vector3 `json:"origin"`
	Direction geom.Vector3 `json:"direction"`
	Width     float64      `json:"width"`
	Height    float64      `json:"height"`
	Depth     float64      `json:"depth"`
	Valid     bool         `json:"valid"`
}

// HasDirection reports whether f is valid and its direction is not degenerate.
func (f Frame) HasDirection() bool {
	return f.Valid && !f.Direction.IsZero()
}

func (f Frame) String() string {
	if !f.Valid {
		return "Frame(invalid)"
	}
	return fmt.Sprintf("Frame(origin=%v dir=%v w=%g h=%g d=%g)", f.Origin, f.Direction, f.Width, f.Height, f.Depth)
}

// Infer computes the frame of e. It never fails: elements without enough
// geometry yield an invalid frame.
func Infer(e *model.Element, r model.Reader) Frame {
	if e == nil {
		return Frame{}
	}
	return Classify(e, r).Frame()
}

// extents measures a box as width along X, height along Z and depth along Y.
func extents(b geom.BoundingBox) (w, h, d float64) {
	s := b.Size()
	return s.X, s.Z, s.Y
}

// baseline returns the vector along the box's X axis at mid-Y, min-Z.
func baseline(b geom.BoundingBox) geom.Vector3 {
	midY := (b.Min.Y + b.Max.Y) / 2
	start := geom.Vec(b.Min.X, midY, b.Min.Z)
	end := geom.Vec(b.Max.X, midY, b.Min.Z)
	return end.Sub(start)
}
