package section

import (
	"fmt"

	"github.com/matzehuels/framewright/pkg/errors"
	"github.com/matzehuels/framewright/pkg/frame"
	"github.com/matzehuels/framewright/pkg/geom"
)

// Spec is an oriented section volume centred on an element.
type Spec struct {
	Right      geom.Vector3
	Up         geom.Vector3
	View       geom.Vector3
	HalfWidth  float64
	HalfHeight float64
	HalfDepth  float64
}

// BuildElevation returns a spec looking along the frame's direction.
// The view direction is the frame direction, up is world Z and right is
// up × view.
func BuildElevation(f frame.Frame, offset, depthOffset float64) (Spec, error) {
	if err := checkFrame(f, offset, depthOffset); err != nil {
		return Spec{}, err
	}
	view := f.Direction.Unit()
	right, ok := geom.ZAxis.Cross(view).Normalize()
	if !ok {
		return Spec{}, errors.New(errors.ErrCodeInvalidFrame, "direction %v is vertical", f.Direction)
	}
	return newSpec(f, right, geom.ZAxis, view, offset, depthOffset), nil
}

// BuildCrossSection returns a spec looking across the frame's direction.
// Right is the frame direction, up is world Z and the view direction is
// Z × right.
func BuildCrossSection(f frame.Frame, offset, depthOffset float64) (Spec, error) {
	if err := checkFrame(f, offset, depthOffset); err != nil {
		return Spec{}, err
	}
	right := f.Direction.Unit()
	view, ok := geom.ZAxis.Cross(right).Normalize()
	if !ok {
		return Spec{}, errors.New(errors.ErrCodeInvalidFrame, "direction %v is vertical", f.Direction)
	}
	return newSpec(f, right, geom.ZAxis, view, offset, depthOffset), nil
}

func checkFrame(f frame.Frame, offset, depthOffset float64) error {
	if !f.HasDirection() {
		return errors.New(errors.ErrCodeInvalidFrame, "frame has no usable direction")
	}
	if err := errors.ValidateOffset("offset", offset); err != nil {
		return err
	}
	return errors.ValidateOffset("depth offset", depthOffset)
}

func newSpec(f frame.Frame, right, up, view geom.Vector3, offset, depthOffset float64) Spec {
	return Spec{
		Right:      right,
		Up:         up,
		View:       view,
		HalfWidth:  f.Width/2 + offset,
		HalfHeight: f.Height/2 + offset,
		HalfDepth:  f.Depth/2 + depthOffset,
	}
}

// Box returns the section volume centred on the origin in view-local axes:
// X along right, Y along the view direction and Z along up.
func (s Spec) Box() geom.BoundingBox {
	return geom.BoundingBox{
		Min: geom.Vec(-s.HalfWidth, -s.HalfDepth, -s.HalfHeight),
		Max: geom.Vec(s.HalfWidth, s.HalfDepth, s.HalfHeight),
	}
}

// Transform returns the look-at transform from origin towards origin + View
// with Up as the up vector.
func (s Spec) Transform(origin geom.Vector3) geom.Transform {
	return geom.LookAt(origin, origin.Add(s.View), s.Up)
}

func (s Spec) String() string {
	return fmt.Sprintf("Spec(view=%v right=%v half=%g×%g×%g)", s.View, s.Right, s.HalfWidth, s.HalfHeight, s.HalfDepth)
}
