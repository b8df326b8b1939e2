package option

import (
	"fmt"

	"github.com/wippyai/choice/niche"
)

// Ptr is the niche-compressed optional pointer: exactly pointer-sized, with
// nil as the absent representation. The zero Ptr is absent.
type Ptr[T any] struct {
	rep niche.Pair[*T]
}

// SomePtr constructs a present Ptr. Panics with a niche-collision error on
// a nil argument; nil is the absent representation, so a present-nil is
// unrepresentable by construction.
func SomePtr[T any](p *T) Ptr[T] {
	return Ptr[T]{rep: niche.PairOf(p)}
}

// NonePtr constructs an absent Ptr.
func NonePtr[T any]() Ptr[T] {
	return Ptr[T]{rep: niche.EmptyPair[*T]()}
}

// IsSome reports whether a pointer is present.
func (o *Ptr[T]) IsSome() bool { return !o.rep.IsUnit() }

// IsNone reports whether the Ptr is absent.
func (o *Ptr[T]) IsNone() bool { return o.rep.IsUnit() }

// Get returns the pointer and whether one is present.
func (o *Ptr[T]) Get() (*T, bool) {
	if p, ok := o.rep.Get(); ok {
		return *p, true
	}
	return nil, false
}

// Must returns the pointer, panicking with a wrong-alternative diagnostic
// when absent.
func (o *Ptr[T]) Must() *T { return *o.rep.Must() }

// Set stores p, panicking on nil like SomePtr.
func (o *Ptr[T]) Set(p *T) { o.rep.Set(p) }

// Clear makes the Ptr absent.
func (o *Ptr[T]) Clear() { o.rep.Clear() }

// Full widens to the general Option form.
func (o *Ptr[T]) Full() Option[*T] {
	if p, ok := o.Get(); ok {
		return Some(p)
	}
	return None[*T]()
}

// String implements fmt.Stringer.
func (o *Ptr[T]) String() string {
	if p, ok := o.Get(); ok {
		return fmt.Sprintf("some(%v)", p)
	}
	return "none"
}
