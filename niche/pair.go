package niche

import (
	"reflect"

	"github.com/wippyai/choice/errors"
	"github.com/wippyai/choice/object"
)

// Pair is the niched-pair layout for the alternative list {Unit, T}:
// alternative 0 is the empty unit marker, alternative 1 a value of T.
// Storage is exactly one T — no discriminant. The unit alternative is
// represented by T's niche; any other bit pattern is alternative 1.
//
// Constructing a Pair of a type without a niche panics: the layout is
// simply not available for such types, and callers are expected to have
// consulted the layout package (or to know their payload type) beforehand.
//
// The zero Pair of a reference-like T holds the unit alternative (nil is
// the niche). For Niched implementors whose niche is not the zero value,
// use EmptyPair rather than relying on the zero value.
type Pair[T any] struct {
	value T
}

// EmptyPair constructs the unit alternative: the niche representation of T.
func EmptyPair[T any]() Pair[T] {
	requireNiche[T]()
	var p Pair[T]
	Store(&p.value)
	return p
}

// PairOf constructs alternative 1 holding v. Panics with a niche-collision
// error if v equals the niche representation, which would make the two
// alternatives indistinguishable.
func PairOf[T any](v T) Pair[T] {
	requireNiche[T]()
	if Holds(v) {
		panic(errors.NicheCollision(reflect.TypeFor[T]().String()))
	}
	return Pair[T]{value: v}
}

// Which returns the active discriminant: 0 for the unit alternative, 1 for
// a value.
func (p *Pair[T]) Which() uint8 {
	if Holds(p.value) {
		return 0
	}
	return 1
}

// IsUnit reports whether the unit alternative is active.
func (p *Pair[T]) IsUnit() bool { return Holds(p.value) }

// Get returns the value alternative's payload, checked: ok is false when
// the unit alternative is active.
func (p *Pair[T]) Get() (*T, bool) {
	if Holds(p.value) {
		return nil, false
	}
	return &p.value, true
}

// Must returns the value alternative's payload, panicking with a
// wrong-alternative diagnostic when the unit alternative is active.
func (p *Pair[T]) Must() *T {
	if Holds(p.value) {
		panic(errors.WrongAlternative(1, 0, reflect.TypeFor[T]().String()))
	}
	return &p.value
}

// Raw returns the payload storage with no check at all. If the unit
// alternative is active, the returned value is the niche representation,
// for which no operation is guaranteed valid.
func (p *Pair[T]) Raw() *T { return &p.value }

// Set emplaces alternative 1 with v. The outgoing alternative needs no
// destroy: either it was the niche (no-op by contract) or it is being
// assigned over, preserving the no-destroy-on-same-alternative rule.
// Panics on a niche collision, like PairOf.
func (p *Pair[T]) Set(v T) {
	if Holds(v) {
		panic(errors.NicheCollision(reflect.TypeFor[T]().String()))
	}
	p.value = v
}

// Clear emplaces the unit alternative, destroying the outgoing value
// through its Destroyer hook if it has one.
func (p *Pair[T]) Clear() {
	if !Holds(p.value) {
		object.Destroy(&p.value)
	}
	Store(&p.value)
}

// PairEqual reports whether two pairs hold the same alternative with equal
// payloads. Two unit alternatives compare equal.
func PairEqual[T comparable](a, b Pair[T]) bool {
	return a.value == b.value
}

func requireNiche[T any]() {
	if !Has[T]() {
		panic(errors.Unsupported(errors.PhaseLayout,
			"type "+reflect.TypeFor[T]().String()+" has no niche"))
	}
}
