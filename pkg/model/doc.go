// Package model defines the contract between framewright and the model store
// that owns the building document.
//
// # Overview
//
// The core never talks to a concrete document. Every entry point receives a
// [Reader] (geometry queries) or a [Store] (queries plus transactional
// mutation) explicitly, so there is no ambient "current document".
//
// Entities are exposed as [Element] records: plain snapshots carrying the
// capabilities a store can report for an entity (location curve, location
// point, bounding volume, type, host, view ownership, parameters). A store
// hands out copies; mutating a returned record never changes the document.
//
// # Relations
//
// Some answers need more than one lookup. The helpers in this package walk
// those relations on top of any [Reader]:
//
//   - [ResolveView]: viewer graphic → sketch plane → owning view
//   - [OwningMarker]: view → the elevation marker that hosts it
//   - [TypeOf], [HostOf]: instance → type, hosted instance → host
//   - [DefaultTitleBlock], [LowestLevel]: document-wide defaults
//
// # Transactions
//
// [Store.Transact] runs a function against a [Tx]. Returning an error from
// the function discards every mutation made through that Tx.
//
//	err := store.Transact("Rotate", func(tx model.Tx) error {
//	    return tx.Rotate(id, axis, angle)
//	})
//
// The reference implementation lives in [github.com/matzehuels/framewright/pkg/model/memory].
package model
