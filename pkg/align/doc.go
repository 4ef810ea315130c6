// Package align rotates one element so that it runs parallel to another.
//
// # Overview
//
// An alignment takes a reference element, which stays fixed, and a target
// element, which is rotated in plan by the smallest angle that makes the
// two directions parallel. Directions are projected onto the XY plane
// first, so alignment never tilts an element.
//
//	plan, err := align.NewPlan(gridID, wallID, store)
//	if err != nil {
//	    return err // NO_DIRECTION, NO_ORIGIN or NOT_ROTATABLE
//	}
//	err = align.Apply(plan, store) // one transaction
//
// # Smallest Rotation
//
// If the angle between the two directions exceeds a right angle the target
// is turned the other way instead, ending up anti-parallel. Exactly π/2 is
// left as it is.
//
// # Proxies
//
// The element that receives the rotation is not always the one that was
// selected. A viewer of an elevation view cannot be rotated on its own: the
// elevation marker that owns the view is rotated instead, carrying all of its
// views with it. [Plan.Proxy] names the element that is actually rotated.
package align
