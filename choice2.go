package choice

import (
	"cmp"
	"fmt"
	"reflect"

	"github.com/wippyai/choice/errors"
	"github.com/wippyai/choice/pun"
)

// Choice2 is a sum of two alternatives. Exactly one is active at any time;
// the zero value is alternative 0 holding its zero payload.
type Choice2[T0, T1 any] struct {
	bits pun.Pun2[T0, T1]
	tag  uint8
}

// First2 constructs a Choice2 holding alternative 0.
func First2[T0, T1 any](v T0) Choice2[T0, T1] {
	var c Choice2[T0, T1]
	c.bits.Make0(v)
	return c
}

// Second2 constructs a Choice2 holding alternative 1.
func Second2[T0, T1 any](v T1) Choice2[T0, T1] {
	var c Choice2[T0, T1]
	c.bits.Make1(v)
	c.tag = 1
	return c
}

// Which returns the current discriminant.
func (c *Choice2[T0, T1]) Which() uint8 { return c.tag }

// Get0 returns alternative 0's payload, checked: ok is false when another
// alternative is active.
func (c *Choice2[T0, T1]) Get0() (*T0, bool) {
	if c.tag != 0 {
		return nil, false
	}
	return c.bits.Get0(), true
}

// Get1 returns alternative 1's payload, checked.
func (c *Choice2[T0, T1]) Get1() (*T1, bool) {
	if c.tag != 1 {
		return nil, false
	}
	return c.bits.Get1(), true
}

// Must0 returns alternative 0's payload, panicking with a wrong-alternative
// diagnostic if another alternative is active.
func (c *Choice2[T0, T1]) Must0() *T0 {
	if c.tag != 0 {
		panic(errors.WrongAlternative(0, int(c.tag), reflect.TypeFor[T0]().String()))
	}
	return c.bits.Get0()
}

// Must1 returns alternative 1's payload, panicking on the wrong alternative.
func (c *Choice2[T0, T1]) Must1() *T1 {
	if c.tag != 1 {
		panic(errors.WrongAlternative(1, int(c.tag), reflect.TypeFor[T1]().String()))
	}
	return c.bits.Get1()
}

// Raw0 returns alternative 0's storage with no check. The caller must have
// already established Which() == 0.
func (c *Choice2[T0, T1]) Raw0() *T0 { return c.bits.Get0() }

// Raw1 returns alternative 1's storage with no check.
func (c *Choice2[T0, T1]) Raw1() *T1 { return c.bits.Get1() }

// Emplace0 re-constructs the choice as alternative 0. If alternative 0 is
// already active the payload is assigned in place and no destroy runs;
// otherwise the outgoing alternative is destroyed first.
func (c *Choice2[T0, T1]) Emplace0(v T0) {
	if c.tag == 0 {
		c.bits.Make0(v)
		return
	}
	c.bits.Destroy(c.tag)
	c.bits.Make0(v)
	c.tag = 0
}

// Emplace1 re-constructs the choice as alternative 1.
func (c *Choice2[T0, T1]) Emplace1(v T1) {
	if c.tag == 1 {
		c.bits.Make1(v)
		return
	}
	c.bits.Destroy(c.tag)
	c.bits.Make1(v)
	c.tag = 1
}

// Destroy runs the active alternative's Destroyer hook, if any, and zeroes
// its storage. The discriminant is unchanged; the choice remains a valid
// value holding a zero payload.
func (c *Choice2[T0, T1]) Destroy() { c.bits.Destroy(c.tag) }

// Move transfers the payload out, returning a choice that owns it. The
// source keeps its discriminant but its slot is zeroed; the only safe
// operation on a moved-from choice is Destroy.
func (c *Choice2[T0, T1]) Move() Choice2[T0, T1] {
	moved := *c
	c.bits.Clear(c.tag)
	return moved
}

// String implements fmt.Stringer.
func (c *Choice2[T0, T1]) String() string {
	switch c.tag {
	case 0:
		return fmt.Sprintf("choice[0](%v)", *c.bits.Get0())
	default:
		return fmt.Sprintf("choice[1](%v)", *c.bits.Get1())
	}
}

// Match2 dispatches on the active alternative, invoking exactly the
// callback for the current discriminant with a pointer to the live payload.
// One callback per alternative; two same-typed alternatives get two
// distinct callbacks, which is what makes dispatch unambiguous.
func Match2[T0, T1, R any](c *Choice2[T0, T1], f0 func(*T0) R, f1 func(*T1) R) R {
	if c.tag == 0 {
		return f0(c.bits.Get0())
	}
	return f1(c.bits.Get1())
}

// Equal2 reports whether two choices hold the same alternative with equal
// payloads.
func Equal2[T0, T1 comparable](a, b Choice2[T0, T1]) bool {
	if a.tag != b.tag {
		return false
	}
	if a.tag == 0 {
		return *a.bits.Get0() == *b.bits.Get0()
	}
	return *a.bits.Get1() == *b.bits.Get1()
}

// EqualFunc2 is Equal2 with caller-supplied payload comparisons, for
// payload types outside the comparable constraint.
func EqualFunc2[T0, T1 any](a, b Choice2[T0, T1], eq0 func(T0, T0) bool, eq1 func(T1, T1) bool) bool {
	if a.tag != b.tag {
		return false
	}
	if a.tag == 0 {
		return eq0(*a.bits.Get0(), *b.bits.Get0())
	}
	return eq1(*a.bits.Get1(), *b.bits.Get1())
}

// Compare2 orders two choices lexicographically: by discriminant first
// (lower index sorts first), then by the shared active payload.
func Compare2[T0, T1 cmp.Ordered](a, b Choice2[T0, T1]) int {
	if c := cmp.Compare(a.tag, b.tag); c != 0 {
		return c
	}
	if a.tag == 0 {
		return cmp.Compare(*a.bits.Get0(), *b.bits.Get0())
	}
	return cmp.Compare(*a.bits.Get1(), *b.bits.Get1())
}

// CompareFunc2 is Compare2 with caller-supplied payload orderings.
func CompareFunc2[T0, T1 any](a, b Choice2[T0, T1], cmp0 func(T0, T0) int, cmp1 func(T1, T1) int) int {
	if a.tag != b.tag {
		if a.tag < b.tag {
			return -1
		}
		return 1
	}
	if a.tag == 0 {
		return cmp0(*a.bits.Get0(), *b.bits.Get0())
	}
	return cmp1(*a.bits.Get1(), *b.bits.Get1())
}

// Swap2 permutes the alternative order, re-expressing the active
// alternative at its new index. Swap2 is its own inverse.
func Swap2[T0, T1 any](c Choice2[T0, T1]) Choice2[T1, T0] {
	return Match2(&c,
		func(v *T0) Choice2[T1, T0] { return Second2[T1, T0](*v) },
		func(v *T1) Choice2[T1, T0] { return First2[T1, T0](*v) },
	)
}
