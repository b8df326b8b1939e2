// Package layout provides representation calculations for alternative
// lists.
//
// Given the ordered list of alternative types of a choice — its Shape —
// this package computes which of the two storage strategies the list is
// entitled to and what the canonical smallest representation costs:
//
//   - Tagged: an untagged union of all alternatives plus a discriminant
//     field, sized as the smallest unsigned integer covering the
//     alternative count.
//   - Niched: exactly two alternatives, one statically empty and trivially
//     constructible, the other carrying a niche (a statically-invalid bit
//     pattern). Storage is the niche-bearing payload alone; no
//     discriminant.
//
// The decision is a pure function of the shape, made once and cached.
// It is a size optimization only: every niched shape is also correct
// under the tagged strategy.
//
// # Layout Rules
//
// The tagged representation places the discriminant first, then the
// payload union aligned to the widest alternative:
//
//	disc | padding | max-sized payload | tail padding
//
// Reported sizes describe this canonical overlapped representation. The
// in-memory Go containers (choice.ChoiceN) store alternatives side by side
// because Go cannot overlap storage; niche.Pair matches the niched numbers
// exactly.
//
// # Usage
//
//	calc := layout.NewCalculator()
//	info := calc.Calculate(layout.Of2[object.Unit, *int]())
//	// info.Decision == layout.NichedSecond, info.Size == unsafe.Sizeof(uintptr(0))
package layout
