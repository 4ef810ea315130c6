package frame

import (
	"github.com/matzehuels/framewright/pkg/geom"
	"github.com/matzehuels/framewright/pkg/model"
)

// Classify resolves the placement of e, looking up its type, host or owning
// view through r as needed.
func Classify(e *model.Element, r model.Reader) Placement {
	if model.IsViewProxy(e) {
		if v := model.ResolveView(r, e); v != nil {
			return ViewProxy{View: *v.View, Bounds: e.Bounds}
		}
		return BoundedVolume{Bounds: e.Bounds}
	}

	typ := model.TypeOf(r, e)
	var (
		placement  model.FamilyPlacement
		typeBounds = typeBoundsOf(typ)
	)
	if typ != nil {
		placement = typ.Placement
	}

	if e.Curve != nil {
		p := CurveBased{
			Curve:       *e.Curve,
			Bounds:      e.Bounds,
			CurveDriven: e.Class == model.ClassFamilyInstance && isCurveDriven(placement),
		}
		p.Height, p.HasHeight = heightOf(e, typ)
		return p
	}

	if isPointBased(placement) || (isUnrecognised(placement) && e.Point != nil) {
		return PointBased{Bounds: e.Bounds, TypeBounds: typeBounds, Location: e.Point}
	}

	if placement == model.PlacementOneLevelHosted || e.HostID != "" {
		if host := model.HostOf(r, e); host != nil && host.Curve != nil {
			return Hosted{
				HostCurve:  *host.Curve,
				Flipped:    e.FacingFlipped,
				Bounds:     e.Bounds,
				TypeBounds: typeBounds,
			}
		}
	}

	return BoundedVolume{Bounds: e.Bounds, TypeBounds: typeBounds}
}

func typeBoundsOf(typ *model.Element) *geom.BoundingBox {
	if typ == nil {
		return nil
	}
	return typ.Bounds
}

func heightOf(e, typ *model.Element) (float64, bool) {
	if h, ok := e.Param(model.ParamHeight); ok {
		return h, true
	}
	if typ != nil {
		return typ.Param(model.ParamHeight)
	}
	return 0, false
}

func isCurveDriven(p model.FamilyPlacement) bool {
	return p == model.PlacementCurve || p == model.PlacementCurveDrivenStructural
}

func isPointBased(p model.FamilyPlacement) bool {
	switch p {
	case model.PlacementOneLevel, model.PlacementTwoLevels, model.PlacementWorkPlane:
		return true
	}
	return false
}

// isUnrecognised reports a declared placement that no other variant handles.
func isUnrecognised(p model.FamilyPlacement) bool {
	switch p {
	case model.PlacementNone, model.PlacementOneLevelHosted,
		model.PlacementCurve, model.PlacementCurveDrivenStructural:
		return false
	}
	return !isPointBased(p)
}
