package choice

import (
	"cmp"
	"fmt"
	"reflect"

	"github.com/wippyai/choice/errors"
	"github.com/wippyai/choice/pun"
)

// Choice5 is a sum of five alternatives.
type Choice5[T0, T1, T2, T3, T4 any] struct {
	bits pun.Pun5[T0, T1, T2, T3, T4]
	tag  uint8
}

func First5[T0, T1, T2, T3, T4 any](v T0) Choice5[T0, T1, T2, T3, T4] {
	var c Choice5[T0, T1, T2, T3, T4]
	c.bits.Make0(v)
	return c
}

func Second5[T0, T1, T2, T3, T4 any](v T1) Choice5[T0, T1, T2, T3, T4] {
	var c Choice5[T0, T1, T2, T3, T4]
	c.bits.Make1(v)
	c.tag = 1
	return c
}

func Third5[T0, T1, T2, T3, T4 any](v T2) Choice5[T0, T1, T2, T3, T4] {
	var c Choice5[T0, T1, T2, T3, T4]
	c.bits.Make2(v)
	c.tag = 2
	return c
}

func Fourth5[T0, T1, T2, T3, T4 any](v T3) Choice5[T0, T1, T2, T3, T4] {
	var c Choice5[T0, T1, T2, T3, T4]
	c.bits.Make3(v)
	c.tag = 3
	return c
}

func Fifth5[T0, T1, T2, T3, T4 any](v T4) Choice5[T0, T1, T2, T3, T4] {
	var c Choice5[T0, T1, T2, T3, T4]
	c.bits.Make4(v)
	c.tag = 4
	return c
}

func (c *Choice5[T0, T1, T2, T3, T4]) Which() uint8 { return c.tag }

func (c *Choice5[T0, T1, T2, T3, T4]) Get0() (*T0, bool) {
	if c.tag != 0 {
		return nil, false
	}
	return c.bits.Get0(), true
}

func (c *Choice5[T0, T1, T2, T3, T4]) Get1() (*T1, bool) {
	if c.tag != 1 {
		return nil, false
	}
	return c.bits.Get1(), true
}

func (c *Choice5[T0, T1, T2, T3, T4]) Get2() (*T2, bool) {
	if c.tag != 2 {
		return nil, false
	}
	return c.bits.Get2(), true
}

func (c *Choice5[T0, T1, T2, T3, T4]) Get3() (*T3, bool) {
	if c.tag != 3 {
		return nil, false
	}
	return c.bits.Get3(), true
}

func (c *Choice5[T0, T1, T2, T3, T4]) Get4() (*T4, bool) {
	if c.tag != 4 {
		return nil, false
	}
	return c.bits.Get4(), true
}

func (c *Choice5[T0, T1, T2, T3, T4]) Must0() *T0 {
	if c.tag != 0 {
		panic(errors.WrongAlternative(0, int(c.tag), reflect.TypeFor[T0]().String()))
	}
	return c.bits.Get0()
}

func (c *Choice5[T0, T1, T2, T3, T4]) Must1() *T1 {
	if c.tag != 1 {
		panic(errors.WrongAlternative(1, int(c.tag), reflect.TypeFor[T1]().String()))
	}
	return c.bits.Get1()
}

func (c *Choice5[T0, T1, T2, T3, T4]) Must2() *T2 {
	if c.tag != 2 {
		panic(errors.WrongAlternative(2, int(c.tag), reflect.TypeFor[T2]().String()))
	}
	return c.bits.Get2()
}

func (c *Choice5[T0, T1, T2, T3, T4]) Must3() *T3 {
	if c.tag != 3 {
		panic(errors.WrongAlternative(3, int(c.tag), reflect.TypeFor[T3]().String()))
	}
	return c.bits.Get3()
}

func (c *Choice5[T0, T1, T2, T3, T4]) Must4() *T4 {
	if c.tag != 4 {
		panic(errors.WrongAlternative(4, int(c.tag), reflect.TypeFor[T4]().String()))
	}
	return c.bits.Get4()
}

func (c *Choice5[T0, T1, T2, T3, T4]) Raw0() *T0 { return c.bits.Get0() }
func (c *Choice5[T0, T1, T2, T3, T4]) Raw1() *T1 { return c.bits.Get1() }
func (c *Choice5[T0, T1, T2, T3, T4]) Raw2() *T2 { return c.bits.Get2() }
func (c *Choice5[T0, T1, T2, T3, T4]) Raw3() *T3 { return c.bits.Get3() }
func (c *Choice5[T0, T1, T2, T3, T4]) Raw4() *T4 { return c.bits.Get4() }

func (c *Choice5[T0, T1, T2, T3, T4]) Emplace0(v T0) {
	if c.tag == 0 {
		c.bits.Make0(v)
		return
	}
	c.bits.Destroy(c.tag)
	c.bits.Make0(v)
	c.tag = 0
}

func (c *Choice5[T0, T1, T2, T3, T4]) Emplace1(v T1) {
	if c.tag == 1 {
		c.bits.Make1(v)
		return
	}
	c.bits.Destroy(c.tag)
	c.bits.Make1(v)
	c.tag = 1
}

func (c *Choice5[T0, T1, T2, T3, T4]) Emplace2(v T2) {
	if c.tag == 2 {
		c.bits.Make2(v)
		return
	}
	c.bits.Destroy(c.tag)
	c.bits.Make2(v)
	c.tag = 2
}

func (c *Choice5[T0, T1, T2, T3, T4]) Emplace3(v T3) {
	if c.tag == 3 {
		c.bits.Make3(v)
		return
	}
	c.bits.Destroy(c.tag)
	c.bits.Make3(v)
	c.tag = 3
}

func (c *Choice5[T0, T1, T2, T3, T4]) Emplace4(v T4) {
	if c.tag == 4 {
		c.bits.Make4(v)
		return
	}
	c.bits.Destroy(c.tag)
	c.bits.Make4(v)
	c.tag = 4
}

func (c *Choice5[T0, T1, T2, T3, T4]) Destroy() { c.bits.Destroy(c.tag) }

func (c *Choice5[T0, T1, T2, T3, T4]) Move() Choice5[T0, T1, T2, T3, T4] {
	moved := *c
	c.bits.Clear(c.tag)
	return moved
}

func (c *Choice5[T0, T1, T2, T3, T4]) String() string {
	switch c.tag {
	case 0:
		return fmt.Sprintf("choice[0](%v)", *c.bits.Get0())
	case 1:
		return fmt.Sprintf("choice[1](%v)", *c.bits.Get1())
	case 2:
		return fmt.Sprintf("choice[2](%v)", *c.bits.Get2())
	case 3:
		return fmt.Sprintf("choice[3](%v)", *c.bits.Get3())
	default:
		return fmt.Sprintf("choice[4](%v)", *c.bits.Get4())
	}
}

// Match5 dispatches on the active alternative via a dense switch.
func Match5[T0, T1, T2, T3, T4, R any](c *Choice5[T0, T1, T2, T3, T4],
	f0 func(*T0) R, f1 func(*T1) R, f2 func(*T2) R, f3 func(*T3) R, f4 func(*T4) R,
) R {
	switch c.tag {
	case 0:
		return f0(c.bits.Get0())
	case 1:
		return f1(c.bits.Get1())
	case 2:
		return f2(c.bits.Get2())
	case 3:
		return f3(c.bits.Get3())
	default:
		return f4(c.bits.Get4())
	}
}

func Equal5[T0, T1, T2, T3, T4 comparable](a, b Choice5[T0, T1, T2, T3, T4]) bool {
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
	case 3:
		return *a.bits.Get3() == *b.bits.Get3()
	default:
		return *a.bits.Get4() == *b.bits.Get4()
	}
}

// EqualFunc5 is Equal5 with caller-supplied payload comparisons.
func EqualFunc5[T0, T1, T2, T3, T4 any](a, b Choice5[T0, T1, T2, T3, T4],
	eq0 func(T0, T0) bool, eq1 func(T1, T1) bool, eq2 func(T2, T2) bool,
	eq3 func(T3, T3) bool, eq4 func(T4, T4) bool,
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
	case 3:
		return eq3(*a.bits.Get3(), *b.bits.Get3())
	default:
		return eq4(*a.bits.Get4(), *b.bits.Get4())
	}
}

func Compare5[T0, T1, T2, T3, T4 cmp.Ordered](a, b Choice5[T0, T1, T2, T3, T4]) int {
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
	case 3:
		return cmp.Compare(*a.bits.Get3(), *b.bits.Get3())
	default:
		return cmp.Compare(*a.bits.Get4(), *b.bits.Get4())
	}
}

// CompareFunc5 is Compare5 with caller-supplied payload orderings.
func CompareFunc5[T0, T1, T2, T3, T4 any](a, b Choice5[T0, T1, T2, T3, T4],
	cmp0 func(T0, T0) int, cmp1 func(T1, T1) int, cmp2 func(T2, T2) int,
	cmp3 func(T3, T3) int, cmp4 func(T4, T4) int,
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
	case 3:
		return cmp3(*a.bits.Get3(), *b.bits.Get3())
	default:
		return cmp4(*a.bits.Get4(), *b.bits.Get4())
	}
}
