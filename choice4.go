package choice

import (
	"cmp"
	"fmt"
	"reflect"

	"github.com/wippyai/choice/errors"
	"github.com/wippyai/choice/pun"
)

// Choice4 is a sum of four alternatives.
type Choice4[T0, T1, T2, T3 any] struct {
	bits pun.Pun4[T0, T1, T2, T3]
	tag  uint8
}

func First4[T0, T1, T2, T3 any](v T0) Choice4[T0, T1, T2, T3] {
	var c Choice4[T0, T1, T2, T3]
	c.bits.Make0(v)
	return c
}

func Second4[T0, T1, T2, T3 any](v T1) Choice4[T0, T1, T2, T3] {
	var c Choice4[T0, T1, T2, T3]
	c.bits.Make1(v)
	c.tag = 1
	return c
}

func Third4[T0, T1, T2, T3 any](v T2) Choice4[T0, T1, T2, T3] {
	var c Choice4[T0, T1, T2, T3]
	c.bits.Make2(v)
	c.tag = 2
	return c
}

func Fourth4[T0, T1, T2, T3 any](v T3) Choice4[T0, T1, T2, T3] {
	var c Choice4[T0, T1, T2, T3]
	c.bits.Make3(v)
	c.tag = 3
	return c
}

func (c *Choice4[T0, T1, T2, T3]) Which() uint8 { return c.tag }

func (c *Choice4[T0, T1, T2, T3]) Get0() (*T0, bool) {
	if c.tag != 0 {
		return nil, false
	}
	return c.bits.Get0(), true
}

func (c *Choice4[T0, T1, T2, T3]) Get1() (*T1, bool) {
	if c.tag != 1 {
		return nil, false
	}
	return c.bits.Get1(), true
}

func (c *Choice4[T0, T1, T2, T3]) Get2() (*T2, bool) {
	if c.tag != 2 {
		return nil, false
	}
	return c.bits.Get2(), true
}

func (c *Choice4[T0, T1, T2, T3]) Get3() (*T3, bool) {
	if c.tag != 3 {
		return nil, false
	}
	return c.bits.Get3(), true
}

func (c *Choice4[T0, T1, T2, T3]) Must0() *T0 {
	if c.tag != 0 {
		panic(errors.WrongAlternative(0, int(c.tag), reflect.TypeFor[T0]().String()))
	}
	return c.bits.Get0()
}

func (c *Choice4[T0, T1, T2, T3]) Must1() *T1 {
	if c.tag != 1 {
		panic(errors.WrongAlternative(1, int(c.tag), reflect.TypeFor[T1]().String()))
	}
	return c.bits.Get1()
}

func (c *Choice4[T0, T1, T2, T3]) Must2() *T2 {
	if c.tag != 2 {
		panic(errors.WrongAlternative(2, int(c.tag), reflect.TypeFor[T2]().String()))
	}
	return c.bits.Get2()
}

func (c *Choice4[T0, T1, T2, T3]) Must3() *T3 {
	if c.tag != 3 {
		panic(errors.WrongAlternative(3, int(c.tag), reflect.TypeFor[T3]().String()))
	}
	return c.bits.Get3()
}

func (c *Choice4[T0, T1, T2, T3]) Raw0() *T0 { return c.bits.Get0() }
func (c *Choice4[T0, T1, T2, T3]) Raw1() *T1 { return c.bits.Get1() }
func (c *Choice4[T0, T1, T2, T3]) Raw2() *T2 { return c.bits.Get2() }
func (c *Choice4[T0, T1, T2, T3]) Raw3() *T3 { return c.bits.Get3() }

func (c *Choice4[T0, T1, T2, T3]) Emplace0(v T0) {
	if c.tag == 0 {
		c.bits.Make0(v)
		return
	}
	c.bits.Destroy(c.tag)
	c.bits.Make0(v)
	c.tag = 0
}

func (c *Choice4[T0, T1, T2, T3]) Emplace1(v T1) {
	if c.tag == 1 {
		c.bits.Make1(v)
		return
	}
	c.bits.Destroy(c.tag)
	c.bits.Make1(v)
	c.tag = 1
}

func (c *Choice4[T0, T1, T2, T3]) Emplace2(v T2) {
	if c.tag == 2 {
		c.bits.Make2(v)
		return
	}
	c.bits.Destroy(c.tag)
	c.bits.Make2(v)
	c.tag = 2
}

func (c *Choice4[T0, T1, T2, T3]) Emplace3(v T3) {
	if c.tag == 3 {
		c.bits.Make3(v)
		return
	}
	c.bits.Destroy(c.tag)
	c.bits.Make3(v)
	c.tag = 3
}

func (c *Choice4[T0, T1, T2, T3]) Destroy() { c.bits.Destroy(c.tag) }

func (c *Choice4[T0, T1, T2, T3]) Move() Choice4[T0, T1, T2, T3] {
	moved := *c
	c.bits.Clear(c.tag)
	return moved
}

func (c *Choice4[T0, T1, T2, T3]) String() string {
	switch c.tag {
	case 0:
		return fmt.Sprintf("choice[0](%v)", *c.bits.Get0())
	case 1:
		return fmt.Sprintf("choice[1](%v)", *c.bits.Get1())
	case 2:
		return fmt.Sprintf("choice[2](%v)", *c.bits.Get2())
	default:
		return fmt.Sprintf("choice[3](%v)", *c.bits.Get3())
	}
}

// Match4 dispatches on the active alternative via a dense switch.
func Match4[T0, T1, T2, T3, R any](c *Choice4[T0, T1, T2, T3],
	f0 func(*T0) R, f1 func(*T1) R, f2 func(*T2) R, f3 func(*T3) R,
) R {
	switch c.tag {
	case 0:
		return f0(c.bits.Get0())
	case 1:
		return f1(c.bits.Get1())
	case 2:
		return f2(c.bits.Get2())
	default:
		return f3(c.bits.Get3())
	}
}

func Equal4[T0, T1, T2, T3 comparable](a, b Choice4[T0, T1, T2, T3]) bool {
	if a.tag != b.tag {
		return false
	}
	switch a.tag {
	case 0:
		return *a.bits.Get0() == *b.bits.Get0()
	case 1:
		return *a.bits.Get1() == *b.bits.Get1()
	case 2:
		return *a.bits.Get2() == *b.bits.Get2()
	default:
		return *a.bits.Get3() == *b.bits.Get3()
	}
}

// EqualFunc4 is Equal4 with caller-supplied payload comparisons.
func EqualFunc4[T0, T1, T2, T3 any](a, b Choice4[T0, T1, T2, T3],
	eq0 func(T0, T0) bool, eq1 func(T1, T1) bool, eq2 func(T2, T2) bool, eq3 func(T3, T3) bool,
) bool {
	if a.tag != b.tag {
		return false
	}
	switch a.tag {
	case 0:
		return eq0(*a.bits.Get0(), *b.bits.Get0())
	case 1:
		return eq1(*a.bits.Get1(), *b.bits.Get1())
	case 2:
		return eq2(*a.bits.Get2(), *b.bits.Get2())
	default:
		return eq3(*a.bits.Get3(), *b.bits.Get3())
	}
}

func Compare4[T0, T1, T2, T3 cmp.Ordered](a, b Choice4[T0, T1, T2, T3]) int {
	if c := cmp.Compare(a.tag, b.tag); c != 0 {
		return c
	}
	switch a.tag {
	case 0:
		return cmp.Compare(*a.bits.Get0(), *b.bits.Get0())
	case 1:
		return cmp.Compare(*a.bits.Get1(), *b.bits.Get1())
	case 2:
		return cmp.Compare(*a.bits.Get2(), *b.bits.Get2())
	default:
		return cmp.Compare(*a.bits.Get3(), *b.bits.Get3())
	}
}

// CompareFunc4 is Compare4 with caller-supplied payload orderings.
func CompareFunc4[T0, T1, T2, T3 any](a, b Choice4[T0, T1, T2, T3],
	cmp0 func(T0, T0) int, cmp1 func(T1, T1) int, cmp2 func(T2, T2) int, cmp3 func(T3, T3) int,
) int {
	if c := cmp.Compare(a.tag, b.tag); c != 0 {
		return c
	}
	switch a.tag {
	case 0:
		return cmp0(*a.bits.Get0(), *b.bits.Get0())
	case 1:
		return cmp1(*a.bits.Get1(), *b.bits.Get1())
	case 2:
		return cmp2(*a.bits.Get2(), *b.bits.Get2())
	default:
		return cmp3(*a.bits.Get3(), *b.bits.Get3())
	}
}
