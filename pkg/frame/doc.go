// Package frame reduces model elements to a canonical local frame.
//
// # Overview
//
// Elements reach the model through very different placement strategies:
// walls follow a location curve, furniture sits on a point with a planar
// rotation, doors and windows are hosted by a wall, and plenty of elements
// report nothing more than a bounding box. [Infer] turns any of them into one
// [Frame]: an origin, a principal direction and the width, height and depth
// measured along that direction.
//
//	f := frame.Infer(wall, store)
//	if f.HasDirection() {
//	    spec, _ := section.BuildElevation(f, 1, 1)
//	    ...
//	}
//
// # Placement Kinds
//
// [Classify] resolves an element once into a [Placement], a closed set of
// variants that each carry only the data their extraction needs:
//
//   - [ViewProxy]: a viewer standing in for a view through its sketch plane
//   - [CurveBased]: walls and anything else with a location curve
//   - [PointBased]: one-level, two-level and work-plane families
//   - [Hosted]: instances measured along their host's curve
//   - [BoundedVolume]: the fallback for everything else
//
// Variants are tried in that order and the first match wins. Lookups that
// fail during classification (a missing type, a host without a curve, an
// unresolvable view) degrade to a later variant instead of failing.
//
// # Invalid Frames
//
// A frame with Valid == false means the element carried no bounding
// information at all. Its other fields are meaningless. Batch callers count
// such elements as failures and move on; nothing in this package returns an
// error or panics.
package frame
