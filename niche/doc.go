// Package niche implements niche detection and the niched-pair layout.
//
// A niche is a statically-known invalid representation of a type: a bit
// pattern no valid value ever has. A two-alternative choice pairing a
// niche-bearing type with the empty Unit marker needs no discriminant at
// all — "which alternative is active" is recovered by testing the stored
// value against the niche. Pair is that layout: it is exactly the size of
// its payload type.
//
// Two families of types have niches:
//
//   - Reference-like kinds (pointers, unsafe pointers, maps, channels,
//     funcs, interfaces), whose niche is nil.
//   - Value types implementing Niched on the pointer receiver, which
//     reserve an invalid representation of their own.
//
// A niche representation never owns resources: no Destroyer hook runs for
// it, and none may be needed. This is what makes the empty alternative's
// destroy unconditionally a no-op.
//
// The niche layout is a pure size optimization. Anything expressible with
// Pair is also expressible with a tagged two-alternative choice; the layout
// package decides which of the two a given alternative list gets.
package niche
