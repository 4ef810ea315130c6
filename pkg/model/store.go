package model

import "github.com/matzehuels/framewright/pkg/geom"

// Reader answers geometry and relation queries.
//
// Element returns an error carrying errors.ErrCodeNotFound when id does not
// exist. Elements returns every element of the class in a stable order.
type Reader interface {
	Element(id ID) (*Element, error)
	Elements(class Class) ([]*Element, error)
}

// Mutator is the set of changes the core asks a store to make.
// Every method reports failure through its error.
type Mutator interface {
	// Rotate turns the element about axis by angle radians. Bounds become
	// the axis-aligned box around the turned element; the unrotated box is
	// kept in OrientedBounds so repeated turns do not grow it.
	Rotate(id ID, axis geom.Line, angle float64) error

	// CreateSectionView creates a section view with the given crop box
	// (view-local axes) and placement. The view gets a store-assigned name.
	CreateSectionView(box geom.BoundingBox, transform geom.Transform) (ID, error)

	// CreatePlanView creates a floor plan associated with the level.
	CreatePlanView(levelID ID) (ID, error)

	// SetName renames an element. View names are unique per document.
	SetName(id ID, name string) error

	// ApplyTemplate assigns a view template to a view.
	ApplyTemplate(viewID, templateID ID) error

	// CreateSheet creates an empty sheet using the title block type.
	// An empty titleBlockID creates a sheet without a title block.
	CreateSheet(titleBlockID ID) (ID, error)

	// SetSheetNumber sets the number and name of a sheet. Sheet numbers are
	// unique per document.
	SetSheetNumber(sheetID ID, number, name string) error

	// PlaceView adds a viewport for the view onto the sheet. A view can be
	// placed on at most one sheet.
	PlaceView(sheetID, viewID ID, position geom.Vector3) (ID, error)
}

// Tx is the handle passed to a unit of work.
type Tx interface {
	Reader
	Mutator
}

// Store is a model store with transactional mutation.
//
// Transact runs fn as a single unit of work. When fn returns an error, every
// change made through tx is discarded and the error is returned unchanged.
// Only one transaction is active at a time.
type Store interface {
	Reader
	Transact(name string, fn func(tx Tx) error) error
}
