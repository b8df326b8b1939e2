// Package choice provides a sum type for Go: a value that is exactly one of
// a fixed list of alternatives, with a runtime discriminant, checked and
// unchecked access, in-place re-construction, pattern dispatch, and
// lexicographic comparison. It is the foundation the option and result
// packages are built on.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	choice/              Root package: Choice2..Choice5, match, compare
//	├── object/          Uniform payload slots, Unit marker, Destroyer hook
//	├── pun/             Raw per-alternative storage, liveness untracked
//	├── niche/           Niche detection and the discriminant-free Pair
//	├── layout/          Layout engine: sizes, alignment, tagged-vs-niched
//	├── option/          Option[T] built on Choice2
//	├── result/          Result[T,E] built on Choice2
//	├── errors/          Structured error types for fatal diagnostics
//	├── interop/         WIT renderings of alternative shapes
//	└── cmd/inspect/     Layout inspector CLI and TUI
//
// # Quick Start
//
// Construct a choice with an explicit per-alternative factory, then branch
// on it:
//
//	c := choice.First2[int, string](42)
//
//	n := choice.Match2(&c,
//	    func(n *int) int { return *n },
//	    func(s *string) int { return len(*s) },
//	)
//
// # Access
//
// There are four ways to read an alternative out of a choice:
//
//	c.Which()        // the current discriminant
//	c.Get0()         // checked: (*T0, bool), ok iff alternative 0 is active
//	c.Must0()        // panics with a diagnostic on the wrong alternative
//	c.Raw0()         // no check at all; caller has already branched on Which
//
// Wrong-alternative access through Must is a programming bug, never a
// data-dependent condition, so it panics rather than returning an error.
// The panic value is a structured *errors.Error naming the expected and
// actual discriminants and the offending call site.
//
// # Lifetimes
//
// Payload types owning resources implement object.Destroyer. Destroy runs
// the active alternative's hook; Emplace destroys the outgoing alternative
// before switching, but assigns in place — no destroy — when re-emplacing
// the already-active alternative. Move transfers the payload and leaves the
// source fit only for Destroy.
//
// # Thread Safety
//
// Choices are plain values with no internal synchronization. Sharing one
// across goroutines requires external synchronization, as with any Go
// struct.
package choice
