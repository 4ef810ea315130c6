// Package section turns element frames into section view volumes and
// creates the views in a model store.
//
// # Specs
//
// [BuildElevation] looks along an element's principal direction and
// [BuildCrossSection] looks across it. Both return a [Spec]: an orthonormal
// right/up/view triple plus half extents padded by the caller's offsets.
//
//	spec, err := section.BuildElevation(f, 1, 1)
//	box := spec.Box()                // view-local: X right, Y depth, Z up
//	tr := spec.Transform(f.Origin)   // look-at from the origin along View
//
// # Generator
//
// [Generator] creates the views inside a running model transaction and
// names them after a base name:
//
//	<base>_Elevation
//	<base>_CrossSection
//	<base>_Plan
//
// A name already in use is retried with a trailing "*" up to ten times.
// When every attempt collides the view keeps the name the store gave it;
// the collision is logged and the view is still returned.
package section
