package choice

import (
	"cmp"
	"fmt"
	"reflect"

	"github.com/wippyai/choice/errors"
	"github.com/wippyai/choice/pun"
)

// Choice3 is a sum of three alternatives.
type Choice3[T0, T1, T2 any] struct {
	bits pun.Pun3[T0, T1, T2]
	tag  uint8
}

// First3 constructs a Choice3 holding alternative 0.
func First3[T0, T1, T2 any](v T0) Choice3[T0, T1, T2] {
	var c Choice3[T0, T1, T2]
	c.bits.Make0(v)
	return c
}

// Second3 constructs a Choice3 holding alternative 1.
func Second3[T0, T1, T2 any](v T1) Choice3[T0, T1, T2] {
	var c Choice3[T0, T1, T2]
	c.bits.Make1(v)
	c.tag = 1
	return c
}

// Third3 constructs a Choice3 holding alternative 2.
func Third3[T0, T1, T2 any](v T2) Choice3[T0, T1, T2] {
	var c Choice3[T0, T1, T2]
	c.bits.Make2(v)
	c.tag = 2
	return c
}

// Which returns the current discriminant.
func (c *Choice3[T0, T1, T2]) Which() uint8 { return c.tag }

func (c *Choice3[T0, T1, T2]) Get0() (*T0, bool) {
	if c.tag != 0 {
		return nil, false
	}
	return c.bits.Get0(), true
}

func (c *Choice3[T0, T1, T2]) Get1() (*T1, bool) {
	if c.tag != 1 {
		return nil, false
	}
	return c.bits.Get1(), true
}

func (c *Choice3[T0, T1, T2]) Get2() (*T2, bool) {
	if c.tag != 2 {
		return nil, false
	}
	return c.bits.Get2(), true
}

func (c *Choice3[T0, T1, T2]) Must0() *T0 {
	if c.tag != 0 {
		panic(errors.WrongAlternative(0, int(c.tag), reflect.TypeFor[T0]().String()))
	}
	return c.bits.Get0()
}

func (c *Choice3[T0, T1, T2]) Must1() *T1 {
	if c.tag != 1 {
		panic(errors.WrongAlternative(1, int(c.tag), reflect.TypeFor[T1]().String()))
	}
	return c.bits.Get1()
}

func (c *Choice3[T0, T1, T2]) Must2() *T2 {
	if c.tag != 2 {
		panic(errors.WrongAlternative(2, int(c.tag), reflect.TypeFor[T2]().String()))
	}
	return c.bits.Get2()
}

func (c *Choice3[T0, T1, T2]) Raw0() *T0 { return c.bits.Get0() }
func (c *Choice3[T0, T1, T2]) Raw1() *T1 { return c.bits.Get1() }
func (c *Choice3[T0, T1, T2]) Raw2() *T2 { return c.bits.Get2() }

func (c *Choice3[T0, T1, T2]) Emplace0(v T0) {
	if c.tag == 0 {
		c.bits.Make0(v)
		return
	}
	c.bits.Destroy(c.tag)
	c.bits.Make0(v)
	c.tag = 0
}

func (c *Choice3[T0, T1, T2]) Emplace1(v T1) {
	if c.tag == 1 {
		c.bits.Make1(v)
		return
	}
	c.bits.Destroy(c.tag)
	c.bits.Make1(v)
	c.tag = 1
}

func (c *Choice3[T0, T1, T2]) Emplace2(v T2) {
	if c.tag == 2 {
		c.bits.Make2(v)
		return
	}
	c.bits.Destroy(c.tag)
	c.bits.Make2(v)
	c.tag = 2
}

// Destroy runs the active alternative's Destroyer hook and zeroes its slot.
func (c *Choice3[T0, T1, T2]) Destroy() { c.bits.Destroy(c.tag) }

// Move transfers the payload out; the source is fit only for Destroy.
func (c *Choice3[T0, T1, T2]) Move() Choice3[T0, T1, T2] {
	moved := *c
	c.bits.Clear(c.tag)
	return moved
}

// String implements fmt.Stringer.
func (c *Choice3[T0, T1, T2]) String() string {
	switch c.tag {
	case 0:
		return fmt.Sprintf("choice[0](%v)", *c.bits.Get0())
	case 1:
		return fmt.Sprintf("choice[1](%v)", *c.bits.Get1())
	default:
		return fmt.Sprintf("choice[2](%v)", *c.bits.Get2())
	}
}

// Match3 dispatches on the active alternative. The switch is dense over
// the discriminant, which the compiler lowers to a jump table.
func Match3[T0, T1, T2, R any](c *Choice3[T0, T1, T2], f0 func(*T0) R, f1 func(*T1) R, f2 func(*T2) R) R {
	switch c.tag {
	case 0:
		return f0(c.bits.Get0())
	case 1:
		return f1(c.bits.Get1())
	default:
		return f2(c.bits.Get2())
	}
}

// Equal3 reports whether two choices hold the same alternative with equal
// payloads.
func Equal3[T0, T1, T2 comparable](a, b Choice3[T0, T1, T2]) bool {
	if a.tag != b.tag {
		return false
	}
	switch a.tag {
	case 0:
		return *a.bits.Get0() == *b.bits.Get0()
	case 1:
		return *a.bits.Get1() == *b.bits.Get1()
	default:
		return *a.bits.Get2() == *b.bits.Get2()
	}
}

// EqualFunc3 is Equal3 with caller-supplied payload comparisons.
func EqualFunc3[T0, T1, T2 any](a, b Choice3[T0, T1, T2],
	eq0 func(T0, T0) bool, eq1 func(T1, T1) bool, eq2 func(T2, T2) bool,
) bool {
	if a.tag != b.tag {
		return false
	}
	switch a.tag {
	case 0:
		return eq0(*a.bits.Get0(), *b.bits.Get0())
	case 1:
		return eq1(*a.bits.Get1(), *b.bits.Get1())
	default:
		return eq2(*a.bits.Get2(), *b.bits.Get2())
	}
}

// Compare3 orders two choices lexicographically by discriminant, then by
// the shared active payload.
func Compare3[T0, T1, T2 cmp.Ordered](a, b Choice3[T0, T1, T2]) int {
	if c := cmp.Compare(a.tag, b.tag); c != 0 {
		return c
	}
	switch a.tag {
	case 0:
		return cmp.Compare(*a.bits.Get0(), *b.bits.Get0())
	case 1:
		return cmp.Compare(*a.bits.Get1(), *b.bits.Get1())
	default:
		return cmp.Compare(*a.bits.Get2(), *b.bits.Get2())
	}
}

// CompareFunc3 is Compare3 with caller-supplied payload orderings.
func CompareFunc3[T0, T1, T2 any](a, b Choice3[T0, T1, T2],
	cmp0 func(T0, T0) int, cmp1 func(T1, T1) int, cmp2 func(T2, T2) int,
) int {
	if c := cmp.Compare(a.tag, b.tag); c != 0 {
		return c
	}
	switch a.tag {
	case 0:
		return cmp0(*a.bits.Get0(), *b.bits.Get0())
	case 1:
		return cmp1(*a.bits.Get1(), *b.bits.Get1())
	default:
		return cmp2(*a.bits.Get2(), *b.bits.Get2())
	}
}

// Rotate3 permutes the alternatives one position right: alternative i of
// the input becomes alternative (i+1) mod 3 of the result. Applying it
// three times is the identity, so its inverse is Rotate3 twice.
func Rotate3[T0, T1, T2 any](c Choice3[T0, T1, T2]) Choice3[T2, T0, T1] {
	return Match3(&c,
		func(v *T0) Choice3[T2, T0, T1] { return Second3[T2, T0, T1](*v) },
		func(v *T1) Choice3[T2, T0, T1] { return Third3[T2, T0, T1](*v) },
		func(v *T2) Choice3[T2, T0, T1] { return First3[T2, T0, T1](*v) },
	)
}

// SwapHead3 exchanges the first two alternatives. Together with Rotate3 it
// generates every permutation of three alternatives.
func SwapHead3[T0, T1, T2 any](c Choice3[T0, T1, T2]) Choice3[T1, T0, T2] {
	return Match3(&c,
		func(v *T0) Choice3[T1, T0, T2] { return Second3[T1, T0, T2](*v) },
		func(v *T1) Choice3[T1, T0, T2] { return First3[T1, T0, T2](*v) },
		func(v *T2) Choice3[T1, T0, T2] { return Third3[T1, T0, T2](*v) },
	)
}
