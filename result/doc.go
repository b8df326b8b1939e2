// Package result provides an explicit success-or-failure value built on
// the choice core.
//
// Result[T, E] is a two-alternative choice of {T, E}; the zero Result is
// Ok of T's zero value. It composes with Go's native error convention
// through Std, which lowers a Result with an error-typed failure back to
// the (T, error) pair.
package result
