package option

import (
	"cmp"
	"fmt"

	"github.com/wippyai/choice"
	"github.com/wippyai/choice/object"
)

// Option is a value of T that may be absent. The zero Option is None.
type Option[T any] struct {
	rep choice.Choice2[object.Unit, T]
}

// Some constructs a present Option.
func Some[T any](v T) Option[T] {
	return Option[T]{rep: choice.Second2[object.Unit, T](v)}
}

// None constructs an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr lifts a possibly-nil pointer: nil becomes None, anything else
// Some of the pointee.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool { return o.rep.Which() == 1 }

// IsNone reports whether the Option is absent.
func (o Option[T]) IsNone() bool { return o.rep.Which() == 0 }

// Get returns the value and whether one is present.
func (o Option[T]) Get() (T, bool) {
	if p, ok := o.rep.Get1(); ok {
		return *p, true
	}
	var zero T
	return zero, false
}

// Must returns the value, panicking with a wrong-alternative diagnostic on
// None.
func (o Option[T]) Must() T { return *o.rep.Must1() }

// GetOr returns the value, or fallback when absent.
func (o Option[T]) GetOr(fallback T) T {
	if p, ok := o.rep.Get1(); ok {
		return *p
	}
	return fallback
}

// GetOrElse returns the value, or the result of fallback when absent.
func (o Option[T]) GetOrElse(fallback func() T) T {
	if p, ok := o.rep.Get1(); ok {
		return *p
	}
	return fallback()
}

// Insert emplaces v and returns a pointer to the stored value.
func (o *Option[T]) Insert(v T) *T {
	o.rep.Emplace1(v)
	return o.rep.Raw1()
}

// Take moves the value out, leaving None behind.
func (o *Option[T]) Take() Option[T] {
	if o.IsNone() {
		return None[T]()
	}
	moved := o.rep.Move()
	o.rep.Emplace0(object.Unit{})
	return Option[T]{rep: moved}
}

// Replace emplaces v and returns the previous contents.
func (o *Option[T]) Replace(v T) Option[T] {
	prev := o.Take()
	o.rep.Emplace1(v)
	return prev
}

// Clear emplaces None, destroying a present value through its Destroyer
// hook.
func (o *Option[T]) Clear() { o.rep.Emplace0(object.Unit{}) }

// Destroy runs the present value's Destroyer hook, if any.
func (o *Option[T]) Destroy() { o.rep.Destroy() }

// Ptr returns a pointer to the stored value, or nil when absent.
func (o *Option[T]) Ptr() *T {
	if p, ok := o.rep.Get1(); ok {
		return p
	}
	return nil
}

// String implements fmt.Stringer.
func (o *Option[T]) String() string {
	if p, ok := o.rep.Get1(); ok {
		return fmt.Sprintf("some(%v)", *p)
	}
	return "none"
}

// Match dispatches to onSome or onNone depending on presence.
func Match[T, R any](o *Option[T], onSome func(T) R, onNone func() R) R {
	return choice.Match2(&o.rep,
		func(*object.Unit) R { return onNone() },
		func(v *T) R { return onSome(*v) },
	)
}

// Map transforms a present value, propagating None.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if v, ok := o.Get(); ok {
		return Some(f(v))
	}
	return None[U]()
}

// AndThen chains an option-producing transform, propagating None.
func AndThen[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if v, ok := o.Get(); ok {
		return f(v)
	}
	return None[U]()
}

// Filter keeps a present value only if pred accepts it.
func Filter[T any](o Option[T], pred func(T) bool) Option[T] {
	if v, ok := o.Get(); ok && pred(v) {
		return o
	}
	return None[T]()
}

// Or returns o when present, else fallback.
func Or[T any](o, fallback Option[T]) Option[T] {
	if o.IsSome() {
		return o
	}
	return fallback
}

// Equal reports whether two options agree on presence and value. Two Nones
// compare equal.
func Equal[T comparable](a, b Option[T]) bool {
	return choice.Equal2(a.rep, b.rep)
}

// Compare orders options with None first, matching the discriminant-first
// ordering of the choice core.
func Compare[T cmp.Ordered](a, b Option[T]) int {
	return choice.CompareFunc2(a.rep, b.rep,
		func(object.Unit, object.Unit) int { return 0 },
		cmp.Compare[T],
	)
}
