package frame

import (
	"math"

	"github.com/matzehuels/framewright/pkg/geom"
	"github.com/matzehuels/framewright/pkg/model"
)

// Kind identifies a placement variant.
type Kind int

// Placement kinds, in classification order.
const (
	KindViewProxy Kind = iota
	KindCurveBased
	KindPointBased
	KindHosted
	KindBoundedVolume
)

var kindNames = [...]string{
	KindViewProxy:     "derived_view_proxy",
	KindCurveBased:    "curve_based",
	KindPointBased:    "point_based",
	KindHosted:        "hosted_on_curve_host",
	KindBoundedVolume: "bounded_volume_only",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Placement is one resolved placement strategy. Each implementation carries
// the data its extraction needs and computes the frame without further
// lookups.
type Placement interface {
	Kind() Kind
	Frame() Frame
}

// ViewProxy is a viewer whose sketch plane belongs to a view. The frame
// follows the view: its origin and right direction. Bounds, when present,
// give the extents.
type ViewProxy struct {
	View   model.ViewFrame
	Bounds *geom.BoundingBox
}

func (ViewProxy) Kind() Kind { return KindViewProxy }

func (p ViewProxy) Frame() Frame {
	f := Frame{Origin: p.View.Origin, Direction: p.View.Right, Valid: true}
	if p.Bounds != nil {
		f.Width, f.Height, f.Depth = extents(*p.Bounds)
	}
	return f
}

// CurveBased is an element located by a curve.
//
// Height is the element's height parameter (then its type's) when HasHeight
// is set. CurveDriven marks family instances driven by their curve: the end
// point is levelled with the start and a missing height is taken from the
// bounds instead of [DefaultHeight].
type CurveBased struct {
	Curve       model.Curve
	Bounds      *geom.BoundingBox
	Height      float64
	HasHeight   bool
	CurveDriven bool
}

func (CurveBased) Kind() Kind { return KindCurveBased }

func (p CurveBased) Frame() Frame {
	if p.Bounds == nil {
		return Frame{}
	}
	start, end := p.Curve.Start, p.Curve.End
	if p.CurveDriven && math.Abs(start.Z-end.Z) > geom.DefaultTolerance {
		end.Z = start.Z
	}
	dir := end.Sub(start)

	height := DefaultHeight
	switch {
	case p.HasHeight:
		height = p.Height
	case p.CurveDriven:
		height = p.Bounds.Size().Z
	}
	return Frame{
		Origin:    p.Bounds.Center(),
		Direction: dir,
		Width:     dir.Length(),
		Height:    height,
		Valid:     true,
	}
}

// PointBased is a family instance placed on a point. Extents and direction
// come from the type's bounds when known, turned by the instance rotation;
// otherwise the instance's own bounds are used as they are.
type PointBased struct {
	Bounds     *geom.BoundingBox
	TypeBounds *geom.BoundingBox
	Location   *model.LocationPoint
}

func (PointBased) Kind() Kind { return KindPointBased }

func (p PointBased) Frame() Frame {
	if p.Bounds == nil {
		return Frame{}
	}
	f := Frame{Origin: p.Bounds.Center(), Valid: true}
	if p.TypeBounds == nil {
		f.Width, f.Height, f.Depth = extents(*p.Bounds)
		f.Direction = baseline(*p.Bounds)
		return f
	}
	f.Width, f.Height, f.Depth = extents(*p.TypeBounds)
	f.Direction = baseline(*p.TypeBounds)
	if p.Location != nil {
		f.Direction = geom.Rotate(f.Direction, p.Location.Rotation)
	}
	return f
}

// Hosted is an instance measured along its host's curve, such as a door in a
// wall. The direction is reversed for flipped instances.
type Hosted struct {
	HostCurve  model.Curve
	Flipped    bool
	Bounds     *geom.BoundingBox
	TypeBounds *geom.BoundingBox
}

func (Hosted) Kind() Kind { return KindHosted }

func (p Hosted) Frame() Frame {
	vol := p.TypeBounds
	if vol == nil {
		vol = p.Bounds
	}
	if vol == nil {
		return Frame{}
	}

	dir := p.HostCurve.Vector()
	if p.Flipped {
		dir = dir.Negate()
	}
	origin := p.HostCurve.Midpoint()
	if p.Bounds != nil {
		origin = geom.ClosestOnSegment(p.HostCurve.Start, p.HostCurve.End, p.Bounds.Center())
	}
	w, h, _ := extents(*vol)
	return Frame{Origin: origin, Direction: dir, Width: w, Height: h, Valid: true}
}

// BoundedVolume is the fallback: only bounding boxes are known. The
// direction runs along the instance box's X axis.
type BoundedVolume struct {
	Bounds     *geom.BoundingBox
	TypeBounds *geom.BoundingBox
}

func (BoundedVolume) Kind() Kind { return KindBoundedVolume }

func (p BoundedVolume) Frame() Frame {
	if p.Bounds == nil {
		return Frame{}
	}
	f := Frame{Origin: p.Bounds.Center(), Direction: baseline(*p.Bounds), Valid: true}
	if p.TypeBounds != nil {
		f.Width, f.Height, f.Depth = extents(*p.TypeBounds)
	} else {
		f.Width, f.Height, f.Depth = extents(*p.Bounds)
	}
	return f
}
