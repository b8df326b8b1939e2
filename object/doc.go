// Package object provides the uniform storage wrapper the variant machinery
// is built on.
//
// Every alternative of a variant is stored as an ordinary Go value, but the
// set of things callers want to put in a variant is wider than "ordinary Go
// value": it includes the empty unit alternative and reference-like
// alternatives. This package normalizes all of them:
//
//   - Unit is the statically-empty marker type (zero size, trivially
//     constructible).
//   - Ref[T] wraps a non-owning reference so it can be stored, compared and
//     niche-tested like a value.
//   - Object[T] is the generic storable slot with construct-in-place,
//     dereference and comparison.
//
// The package also defines the Destroyer hook. Go has no destructors; a
// payload that owns a resource participates in the variant's explicit
// lifetime management by implementing Destroy, and the owning container
// invokes it through this package when the payload's slot dies.
package object
