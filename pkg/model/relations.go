package model

import (
	"slices"

	"github.com/matzehuels/framewright/pkg/errors"
)

// TypeOf returns the element type of e, or nil when e has none or the type
// cannot be found.
func TypeOf(r Reader, e *Element) *Element {
	if e == nil || e.TypeID == "" {
		return nil
	}
	t, err := r.Element(e.TypeID)
	if err != nil {
		return nil
	}
	return t
}

// HostOf returns the host of e, or nil when e is not hosted or the host
// cannot be found.
func HostOf(r Reader, e *Element) *Element {
	if e == nil || e.HostID == "" {
		return nil
	}
	h, err := r.Element(e.HostID)
	if err != nil {
		return nil
	}
	return h
}

// IsViewProxy reports whether e stands in for a view through a sketch plane.
func IsViewProxy(e *Element) bool {
	return e != nil && e.SketchPlaneID != ""
}

// ResolveView follows e's sketch plane to the view that owns it.
// It returns nil when any link in the chain is missing or the owner is not a
// view.
func ResolveView(r Reader, e *Element) *Element {
	if !IsViewProxy(e) {
		return nil
	}
	sp, err := r.Element(e.SketchPlaneID)
	if err != nil || sp.OwnerViewID == "" {
		return nil
	}
	v, err := r.Element(sp.OwnerViewID)
	if err != nil || v.View == nil {
		return nil
	}
	return v
}

// OwningMarker scans every elevation marker for the one whose sub-views
// include viewID.
func OwningMarker(r Reader, viewID ID) (*Element, error) {
	markers, err := r.Elements(ClassElevationMarker)
	if err != nil {
		return nil, err
	}
	for _, m := range markers {
		if slices.Contains(m.MarkerViews, viewID) {
			return m, nil
		}
	}
	return nil, errors.New(errors.ErrCodeNotFound, "no elevation marker owns view %s", viewID)
}

// DefaultTitleBlock returns the title block type flagged as default, falling
// back to the first one. It returns "" when the document has none.
func DefaultTitleBlock(r Reader) ID {
	blocks, err := r.Elements(ClassTitleBlock)
	if err != nil || len(blocks) == 0 {
		return ""
	}
	for _, b := range blocks {
		if b.Default {
			return b.ID
		}
	}
	return blocks[0].ID
}

// LowestLevel returns the level with the smallest elevation, or nil.
func LowestLevel(r Reader) *Element {
	levels, err := r.Elements(ClassLevel)
	if err != nil || len(levels) == 0 {
		return nil
	}
	return slices.MinFunc(levels, func(a, b *Element) int {
		ea, _ := a.Param(ParamElevation)
		eb, _ := b.Param(ParamElevation)
		switch {
		case ea < eb:
			return -1
		case ea > eb:
			return 1
		}
		return 0
	})
}
