package model

import (
	"maps"
	"slices"

	"github.com/matzehuels/framewright/pkg/geom"
)

// ID identifies an element within one document.
type ID string

// Class is the store's own classification of an element.
type Class string

// Element classes.
const (
	ClassWall            Class = "wall"
	ClassFamilyInstance  Class = "family_instance"
	ClassElementType     Class = "element_type"
	ClassGrid            Class = "grid"
	ClassReferencePlane  Class = "reference_plane"
	ClassView            Class = "view"
	ClassViewer          Class = "viewer" // graphic representing a view in other views
	ClassSketchPlane     Class = "sketch_plane"
	ClassElevationMarker Class = "elevation_marker"
	ClassLevel           Class = "level"
	ClassTitleBlock      Class = "title_block"
	ClassSheet           Class = "sheet"
	ClassViewport        Class = "viewport"
	ClassGeneric         Class = "generic"
)

// FamilyPlacement is the placement strategy declared by an element type.
type FamilyPlacement string

// Family placement strategies.
const (
	PlacementNone                  FamilyPlacement = ""
	PlacementOneLevel              FamilyPlacement = "one_level"
	PlacementTwoLevels             FamilyPlacement = "two_levels"
	PlacementWorkPlane             FamilyPlacement = "work_plane"
	PlacementCurve                 FamilyPlacement = "curve"
	PlacementCurveDrivenStructural FamilyPlacement = "curve_driven_structural"
	PlacementOneLevelHosted        FamilyPlacement = "one_level_hosted"
	PlacementViewBased             FamilyPlacement = "view_based"
)

// ViewType distinguishes the kinds of views a document holds.
type ViewType string

// View types.
const (
	ViewSection   ViewType = "section"
	ViewElevation ViewType = "elevation"
	ViewFloorPlan ViewType = "floor_plan"
	ViewDetail    ViewType = "detail"
)

// Well-known parameter names.
const (
	ParamHeight    = "height"
	ParamElevation = "elevation"
)

// Curve is a bounded location curve.
type Curve struct {
	Start geom.Vector3 `json:"start"`
	End   geom.Vector3 `json:"end"`
}

// Vector returns End - Start.
func (c Curve) Vector() geom.Vector3 { return c.End.Sub(c.Start) }

// Direction returns the unit direction from Start to End.
func (c Curve) Direction() geom.Vector3 { return c.Vector().Unit() }

// Midpoint returns the point halfway along the curve.
func (c Curve) Midpoint() geom.Vector3 { return c.Start.Midpoint(c.End) }

// LocationPoint is a point location with a planar rotation in radians.
type LocationPoint struct {
	Point    geom.Vector3 `json:"point"`
	Rotation float64      `json:"rotation,omitempty"`
}

// ViewFrame is the orientation of a view. Box is the view's crop volume in
// its own local axes.
type ViewFrame struct {
	Type          ViewType          `json:"type"`
	Origin        geom.Vector3      `json:"origin"`
	Right         geom.Vector3      `json:"right"`
	Up            geom.Vector3      `json:"up"`
	ViewDirection geom.Vector3      `json:"view_direction"`
	Box           *geom.BoundingBox `json:"box,omitempty"`
	LevelID       ID                `json:"level_id,omitempty"`
	TemplateID    ID                `json:"template_id,omitempty"`
	IsTemplate    bool              `json:"is_template,omitempty"`
}

// Transform returns the view's placement as a transform: X right, Y up,
// Z view direction.
func (v *ViewFrame) Transform() geom.Transform {
	return geom.Transform{Origin: v.Origin, BasisX: v.Right, BasisY: v.Up, BasisZ: v.ViewDirection}
}

// SetTransform places the view at t.
func (v *ViewFrame) SetTransform(t geom.Transform) {
	v.Origin, v.Right, v.Up, v.ViewDirection = t.Origin, t.BasisX, t.BasisY, t.BasisZ
}

// SheetInfo holds the identity of a sheet.
type SheetInfo struct {
	Number       string `json:"number"`
	TitleBlockID ID     `json:"title_block_id,omitempty"`
}

// Viewport places a view on a sheet.
type Viewport struct {
	SheetID  ID           `json:"sheet_id"`
	ViewID   ID           `json:"view_id"`
	Position geom.Vector3 `json:"position"`
}

// Element is a snapshot of everything a store can report about one entity.
// Optional capabilities are nil or zero when the entity lacks them.
type Element struct {
	ID           ID     `json:"id"`
	Class        Class  `json:"class"`
	Name         string `json:"name,omitempty"`
	Category     string `json:"category,omitempty"`
	TypeID       ID     `json:"type_id,omitempty"`
	HostID       ID     `json:"host_id,omitempty"`
	ViewSpecific bool   `json:"view_specific,omitempty"`

	Curve  *Curve             `json:"curve,omitempty"`
	Point  *LocationPoint     `json:"point,omitempty"`
	Bounds *geom.BoundingBox  `json:"bounds,omitempty"`
	Params map[string]float64 `json:"params,omitempty"`

	// OrientedBounds holds the unrotated Bounds and the rotation applied
	// since. Nil until the element is first rotated.
	OrientedBounds *geom.OrientedBox `json:"oriented_bounds,omitempty"`

	// Family instances
	Facing        *geom.Vector3 `json:"facing,omitempty"`
	FacingFlipped bool          `json:"facing_flipped,omitempty"`

	// Element types
	Placement FamilyPlacement `json:"placement,omitempty"`

	// View ownership: viewers point at a sketch plane, sketch planes at a view.
	SketchPlaneID ID `json:"sketch_plane_id,omitempty"`
	OwnerViewID   ID `json:"owner_view_id,omitempty"`

	View        *ViewFrame `json:"view,omitempty"`
	MarkerViews []ID       `json:"marker_views,omitempty"`
	Sheet       *SheetInfo `json:"sheet,omitempty"`
	Viewport    *Viewport  `json:"viewport,omitempty"`

	// Default marks the default type of its class (title blocks).
	Default bool `json:"default,omitempty"`
}

// HasLocation reports whether the element can be moved or rotated.
func (e *Element) HasLocation() bool {
	return e != nil && (e.Curve != nil || e.Point != nil)
}

// Param returns the named parameter.
func (e *Element) Param(name string) (float64, bool) {
	v, ok := e.Params[name]
	return v, ok
}

// Clone returns a deep copy of e.
func (e *Element) Clone() *Element {
	if e == nil {
		return nil
	}
	c := *e
	if e.Curve != nil {
		cv := *e.Curve
		c.Curve = &cv
	}
	if e.Point != nil {
		p := *e.Point
		c.Point = &p
	}
	if e.Bounds != nil {
		b := *e.Bounds
		c.Bounds = &b
	}
	if e.OrientedBounds != nil {
		o := *e.OrientedBounds
		c.OrientedBounds = &o
	}
	if e.Facing != nil {
		f := *e.Facing
		c.Facing = &f
	}
	if e.View != nil {
		v := *e.View
		if e.View.Box != nil {
			b := *e.View.Box
			v.Box = &b
		}
		c.View = &v
	}
	if e.Sheet != nil {
		s := *e.Sheet
		c.Sheet = &s
	}
	if e.Viewport != nil {
		vp := *e.Viewport
		c.Viewport = &vp
	}
	c.Params = maps.Clone(e.Params)
	c.MarkerViews = slices.Clone(e.MarkerViews)
	return &c
}
