package align

import (
	"fmt"
	"math"

	"github.com/matzehuels/framewright/pkg/errors"
	"github.com/matzehuels/framewright/pkg/frame"
	"github.com/matzehuels/framewright/pkg/geom"
	"github.com/matzehuels/framewright/pkg/model"
)

// Plan is a computed rotation: turn Proxy by Angle radians about the axis
// through AxisOrigin along AxisDirection.
type Plan struct {
	AxisOrigin    geom.Vector3 `json:"axis_origin"`
	AxisDirection geom.Vector3 `json:"axis_direction"`
	Angle         float64      `json:"angle"`
	Proxy         model.ID     `json:"proxy"`
}

// Degrees returns the absolute rotation in degrees.
func (p Plan) Degrees() float64 {
	return math.Abs(p.Angle * 180 / math.Pi)
}

func (p Plan) String() string {
	return fmt.Sprintf("rotate %s by %.1f° about %v", p.Proxy, p.Angle*180/math.Pi, p.AxisOrigin)
}

// NewPlan computes the rotation that makes target parallel to reference.
func NewPlan(reference, target *model.Element, r model.Reader) (Plan, error) {
	if reference == nil || target == nil {
		return Plan{}, errors.New(errors.ErrCodeInvalidInput, "alignment needs a reference and a target")
	}
	refDir, ok := Direction(reference, r)
	if !ok {
		return Plan{}, errors.New(errors.ErrCodeNoDirection, "no direction for reference %s", reference.ID)
	}
	targetDir, ok := Direction(target, r)
	if !ok {
		return Plan{}, errors.New(errors.ErrCodeNoDirection, "no direction for target %s", target.ID)
	}

	refXY := geom.ProjectXY(refDir)
	targetXY := geom.ProjectXY(targetDir)
	if refXY.IsZero() || targetXY.IsZero() {
		return Plan{}, errors.New(errors.ErrCodeNoDirection, "direction of %s or %s is vertical", reference.ID, target.ID)
	}

	angle := geom.AngleBetween(targetXY, refXY)
	if angle > math.Pi/2 {
		angle -= math.Pi
	}

	origin, ok := Origin(target, r)
	if !ok {
		return Plan{}, errors.New(errors.ErrCodeNoOrigin, "no origin for target %s", target.ID)
	}

	proxy, err := Proxy(target, r)
	if err != nil {
		return Plan{}, err
	}

	return Plan{
		AxisOrigin:    origin,
		AxisDirection: targetXY.Cross(refXY),
		Angle:         angle,
		Proxy:         proxy.ID,
	}, nil
}

// Direction returns the direction of e used for alignment.
//
// Grids and reference planes follow their curve, family instances their
// facing orientation, other curve elements their curve, and viewers the right
// direction of their view. Anything else falls back to the inferred frame.
func Direction(e *model.Element, r model.Reader) (geom.Vector3, bool) {
	if e == nil {
		return geom.Vector3{}, false
	}
	var dir geom.Vector3
	switch {
	case (e.Class == model.ClassGrid || e.Class == model.ClassReferencePlane) && e.Curve != nil:
		dir = e.Curve.Direction()
	case e.Class == model.ClassFamilyInstance && e.Facing != nil:
		dir = *e.Facing
	case e.Curve != nil:
		dir = e.Curve.Direction()
	case model.IsViewProxy(e):
		v := model.ResolveView(r, e)
		if v == nil {
			return geom.Vector3{}, false
		}
		dir = v.View.Right
	default:
		f := frame.Infer(e, r)
		if !f.HasDirection() {
			return geom.Vector3{}, false
		}
		dir = f.Direction
	}
	if dir.IsZero() {
		return geom.Vector3{}, false
	}
	return dir, true
}

// Origin returns the point the target rotates about: a curve start, a
// location point, a view origin or the bounding box centre, in that order.
func Origin(e *model.Element, r model.Reader) (geom.Vector3, bool) {
	switch {
	case e == nil:
		return geom.Vector3{}, false
	case e.Class == model.ClassFamilyInstance && e.Point != nil:
		return e.Point.Point, true
	case e.Curve != nil:
		return e.Curve.Start, true
	case e.Point != nil:
		return e.Point.Point, true
	case model.IsViewProxy(e):
		if v := model.ResolveView(r, e); v != nil {
			return v.View.Origin, true
		}
	}
	if e.Bounds != nil {
		return e.Bounds.Center(), true
	}
	return geom.Vector3{}, false
}

// Proxy resolves the element that receives the rotation for target. Viewers
// of elevation views resolve to the owning elevation marker.
func Proxy(target *model.Element, r model.Reader) (*model.Element, error) {
	proxy := target
	if v := model.ResolveView(r, target); v != nil && v.View.Type == model.ViewElevation {
		m, err := model.OwningMarker(r, v.ID)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeNotRotatable, err, "elevation view %s has no marker", v.ID)
		}
		proxy = m
	}
	if !proxy.HasLocation() {
		return nil, errors.New(errors.ErrCodeNotRotatable, "element %s has no location to rotate", proxy.ID)
	}
	return proxy, nil
}
