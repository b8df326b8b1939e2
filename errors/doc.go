// Package errors provides structured error types for the choice library.
//
// Errors are categorized by Phase (which operation failed) and Kind (error
// category). The Error type carries the discriminants involved, type names,
// the source location of the offending call, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseAccess, errors.KindWrongAlternative).
//		Expected(1).
//		Actual(0).
//		Type("int").
//		Caller(1).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.WrongAlternative(1, 0, "int")
//	err := errors.NicheCollision("*int")
//
// All errors implement the standard error interface and support
// errors.Is/As.
//
// The wrong-alternative error deserves a note: it is only ever used as a
// panic value. Accessing the wrong alternative of a choice is a programming
// bug, never a data-dependent condition, so the library surfaces it as an
// unrecoverable panic carrying one of these errors rather than returning
// it.
package errors
