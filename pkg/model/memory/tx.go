package memory

import (
	"fmt"

	"github.com/matzehuels/framewright/pkg/errors"
	"github.com/matzehuels/framewright/pkg/geom"
	"github.com/matzehuels/framewright/pkg/model"
)

// tx is the model.Tx handed to Transact callbacks. The store lock is held for
// its whole lifetime, so methods use the unlocked helpers.
type tx struct {
	s      *Store
	closed bool
}

var _ model.Tx = (*tx)(nil)

func (t *tx) Element(id model.ID) (*model.Element, error) {
	if err := t.check(); err != nil {
		return nil, err
	}
	return t.s.get(id)
}

func (t *tx) Elements(class model.Class) ([]*model.Element, error) {
	if err := t.check(); err != nil {
		return nil, err
	}
	return t.s.list(class), nil
}

func (t *tx) check() error {
	if t.closed {
		return errors.New(errors.ErrCodeInternal, "transaction already finished")
	}
	return nil
}

// lookup returns the stored element itself, not a copy.
func (t *tx) lookup(id model.ID, class model.Class) (*model.Element, error) {
	if err := t.check(); err != nil {
		return nil, err
	}
	e, ok := t.s.elements[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "element %s not found", id)
	}
	if class != "" && e.Class != class {
		return nil, errors.New(errors.ErrCodeInvalidInput, "element %s is a %s, not a %s", id, e.Class, class)
	}
	return e, nil
}

// =============================================================================
// Rotation
// =============================================================================

func (t *tx) Rotate(id model.ID, axis geom.Line, angle float64) error {
	e, err := t.lookup(id, "")
	if err != nil {
		return err
	}
	if !e.HasLocation() {
		return errors.New(errors.ErrCodeUnsupported, "element %s has no location to rotate", id)
	}
	rotateElement(e, axis, angle)

	// Views carried by the rotated element follow it.
	for _, vid := range e.MarkerViews {
		if v, ok := t.s.elements[vid]; ok {
			rotateElement(v, axis, angle)
		}
	}
	if sp, ok := t.s.elements[e.SketchPlaneID]; ok {
		if v, ok := t.s.elements[sp.OwnerViewID]; ok && v.View != nil {
			rotateElement(v, axis, angle)
		}
	}
	return nil
}

func rotateElement(e *model.Element, axis geom.Line, angle float64) {
	if e.Curve != nil {
		e.Curve.Start = axis.RotatePoint(e.Curve.Start, angle)
		e.Curve.End = axis.RotatePoint(e.Curve.End, angle)
	}
	if e.Point != nil {
		e.Point.Point = axis.RotatePoint(e.Point.Point, angle)
		e.Point.Rotation += angle * axis.Direction.Unit().Z
	}
	if e.Bounds != nil {
		if e.OrientedBounds == nil {
			o := geom.Orient(*e.Bounds)
			e.OrientedBounds = &o
		}
		*e.OrientedBounds = e.OrientedBounds.Rotated(axis, angle)
		b := e.OrientedBounds.Enclosing()
		e.Bounds = &b
	}
	if e.Facing != nil {
		f := axis.RotateVector(*e.Facing, angle)
		e.Facing = &f
	}
	if v := e.View; v != nil {
		v.SetTransform(v.Transform().Rotated(axis, angle))
	}
}

// =============================================================================
// Views
// =============================================================================

func (t *tx) CreateSectionView(box geom.BoundingBox, tr geom.Transform) (model.ID, error) {
	if err := t.check(); err != nil {
		return "", err
	}
	if box.IsEmpty() {
		return "", errors.New(errors.ErrCodeInvalidInput, "section box is empty")
	}
	v := &model.Element{
		ID:    t.s.newID(),
		Class: model.ClassView,
		Name:  t.s.nextName("Section"),
		View:  &model.ViewFrame{Type: model.ViewSection, Box: &box},
	}
	v.View.SetTransform(tr)
	return v.ID, t.s.insert(v)
}

func (t *tx) CreatePlanView(levelID model.ID) (model.ID, error) {
	level, err := t.lookup(levelID, model.ClassLevel)
	if err != nil {
		return "", err
	}
	elev, _ := level.Param(model.ParamElevation)
	v := &model.Element{
		ID:    t.s.newID(),
		Class: model.ClassView,
		Name:  t.s.nextName("Floor Plan"),
		View: &model.ViewFrame{
			Type:          model.ViewFloorPlan,
			Origin:        geom.Vec(0, 0, elev),
			Right:         geom.XAxis,
			Up:            geom.YAxis,
			ViewDirection: geom.ZAxis.Negate(),
			LevelID:       levelID,
		},
	}
	return v.ID, t.s.insert(v)
}

func (t *tx) SetName(id model.ID, name string) error {
	if err := errors.ValidateName(name); err != nil {
		return err
	}
	e, err := t.lookup(id, "")
	if err != nil {
		return err
	}
	if e.Class == model.ClassView && t.s.viewNameTaken(name, id) {
		return errors.New(errors.ErrCodeDuplicateName, "view name %q is already in use", name)
	}
	e.Name = name
	return nil
}

func (t *tx) ApplyTemplate(viewID, templateID model.ID) error {
	v, err := t.lookup(viewID, model.ClassView)
	if err != nil {
		return err
	}
	tpl, err := t.lookup(templateID, model.ClassView)
	if err != nil {
		return err
	}
	if !tpl.View.IsTemplate {
		return errors.New(errors.ErrCodeInvalidInput, "view %s is not a view template", templateID)
	}
	if v.View.IsTemplate {
		return errors.New(errors.ErrCodeInvalidInput, "cannot apply a template to template %s", viewID)
	}
	v.View.TemplateID = templateID
	return nil
}

// =============================================================================
// Sheets
// =============================================================================

func (t *tx) CreateSheet(titleBlockID model.ID) (model.ID, error) {
	if err := t.check(); err != nil {
		return "", err
	}
	if titleBlockID != "" {
		if _, err := t.lookup(titleBlockID, model.ClassTitleBlock); err != nil {
			return "", err
		}
	}
	number := ""
	for n := 1; number == ""; n++ {
		if candidate := fmt.Sprintf("S-%03d", n); !t.sheetNumberTaken(candidate, "") {
			number = candidate
		}
	}
	sheet := &model.Element{
		ID:    t.s.newID(),
		Class: model.ClassSheet,
		Name:  "Unnamed",
		Sheet: &model.SheetInfo{Number: number, TitleBlockID: titleBlockID},
	}
	return sheet.ID, t.s.insert(sheet)
}

func (t *tx) SetSheetNumber(sheetID model.ID, number, name string) error {
	if err := errors.ValidateName(number); err != nil {
		return err
	}
	if err := errors.ValidateName(name); err != nil {
		return err
	}
	sheet, err := t.lookup(sheetID, model.ClassSheet)
	if err != nil {
		return err
	}
	if t.sheetNumberTaken(number, sheetID) {
		return errors.New(errors.ErrCodeDuplicateName, "sheet number %q is already in use", number)
	}
	sheet.Sheet.Number = number
	sheet.Name = name
	return nil
}

func (t *tx) sheetNumberTaken(number string, except model.ID) bool {
	for id, e := range t.s.elements {
		if id != except && e.Class == model.ClassSheet && e.Sheet != nil && e.Sheet.Number == number {
			return true
		}
	}
	return false
}

func (t *tx) PlaceView(sheetID, viewID model.ID, position geom.Vector3) (model.ID, error) {
	if _, err := t.lookup(sheetID, model.ClassSheet); err != nil {
		return "", err
	}
	v, err := t.lookup(viewID, model.ClassView)
	if err != nil {
		return "", err
	}
	if v.View.IsTemplate {
		return "", errors.New(errors.ErrCodeInvalidInput, "view template %s cannot be placed on a sheet", viewID)
	}
	for _, e := range t.s.elements {
		if e.Class == model.ClassViewport && e.Viewport != nil && e.Viewport.ViewID == viewID {
			return "", errors.New(errors.ErrCodeInvalidInput, "view %s is already placed on sheet %s", viewID, e.Viewport.SheetID)
		}
	}
	vp := &model.Element{
		ID:       t.s.newID(),
		Class:    model.ClassViewport,
		Viewport: &model.Viewport{SheetID: sheetID, ViewID: viewID, Position: position},
	}
	return vp.ID, t.s.insert(vp)
}
