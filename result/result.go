package result

import (
	"fmt"

	"github.com/wippyai/choice"
)

// Result holds either a success value of T or a failure value of E. The
// zero Result is Ok of T's zero value.
type Result[T, E any] struct {
	rep choice.Choice2[T, E]
}

// Ok constructs a success Result.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{rep: choice.First2[T, E](v)}
}

// Err constructs a failure Result.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{rep: choice.Second2[T, E](e)}
}

// From lifts Go's native (value, error) pair: a nil error becomes Ok,
// anything else Err.
func From[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Err[T, error](err)
	}
	return Ok[T, error](v)
}

// IsOk reports whether the Result holds a success value.
func (r Result[T, E]) IsOk() bool { return r.rep.Which() == 0 }

// IsErr reports whether the Result holds a failure value.
func (r Result[T, E]) IsErr() bool { return r.rep.Which() == 1 }

// Get returns the success value and whether one is present.
func (r Result[T, E]) Get() (T, bool) {
	if p, ok := r.rep.Get0(); ok {
		return *p, true
	}
	var zero T
	return zero, false
}

// GetErr returns the failure value and whether one is present.
func (r Result[T, E]) GetErr() (E, bool) {
	if p, ok := r.rep.Get1(); ok {
		return *p, true
	}
	var zero E
	return zero, false
}

// Must returns the success value, panicking with a wrong-alternative
// diagnostic on a failure Result.
func (r Result[T, E]) Must() T { return *r.rep.Must0() }

// MustErr returns the failure value, panicking on a success Result.
func (r Result[T, E]) MustErr() E { return *r.rep.Must1() }

// GetOr returns the success value, or fallback on failure.
func (r Result[T, E]) GetOr(fallback T) T {
	if p, ok := r.rep.Get0(); ok {
		return *p
	}
	return fallback
}

// Destroy runs the active value's Destroyer hook, if any.
func (r *Result[T, E]) Destroy() { r.rep.Destroy() }

// String implements fmt.Stringer.
func (r *Result[T, E]) String() string {
	if p, ok := r.rep.Get0(); ok {
		return fmt.Sprintf("ok(%v)", *p)
	}
	return fmt.Sprintf("err(%v)", *r.rep.Raw1())
}

// Match dispatches to onOk or onErr depending on the active alternative.
func Match[T, E, R any](r *Result[T, E], onOk func(T) R, onErr func(E) R) R {
	return choice.Match2(&r.rep,
		func(v *T) R { return onOk(*v) },
		func(e *E) R { return onErr(*e) },
	)
}

// Map transforms the success value, propagating failure.
func Map[T, E, U any](r Result[T, E], f func(T) U) Result[U, E] {
	if v, ok := r.Get(); ok {
		return Ok[U, E](f(v))
	}
	return Err[U, E](*r.rep.Raw1())
}

// MapErr transforms the failure value, propagating success.
func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if e, ok := r.GetErr(); ok {
		return Err[T, F](f(e))
	}
	return Ok[T, F](*r.rep.Raw0())
}

// AndThen chains a result-producing transform on success, propagating
// failure.
func AndThen[T, E, U any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if v, ok := r.Get(); ok {
		return f(v)
	}
	return Err[U, E](*r.rep.Raw1())
}

// Std lowers a Result with an error-typed failure to Go's (T, error) pair.
func Std[T any, E error](r Result[T, E]) (T, error) {
	if v, ok := r.Get(); ok {
		return v, nil
	}
	var zero T
	return zero, *r.rep.Raw1()
}

// Equal reports whether two results hold the same alternative with equal
// payloads.
func Equal[T, E comparable](a, b Result[T, E]) bool {
	return choice.Equal2(a.rep, b.rep)
}
