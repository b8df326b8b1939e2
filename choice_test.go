package choice

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/choice/errors"
)

// counts tracks resource lifecycle events for destroy-sensitive tests.
type counts struct {
	destroys int
}

// tracked is a payload owning a fake resource. Destroy on the zero value
// is a no-op, the contract moved-from slots rely on.
type tracked struct {
	c  *counts
	id int
}

func (t *tracked) Destroy() {
	if t.c != nil {
		t.c.destroys++
	}
}

func TestConstructionRoundtrip(t *testing.T) {
	c := First3[int, float64, bool](42)

	assert.Equal(t, uint8(0), c.Which())

	v, ok := c.Get0()
	require.True(t, ok)
	assert.Equal(t, 42, *v)

	_, ok = c.Get1()
	assert.False(t, ok)
	_, ok = c.Get2()
	assert.False(t, ok)

	assert.Equal(t, 42, *c.Must0())
}

func TestConstructionEveryIndex(t *testing.T) {
	c2a := First2[int, string](1)
	c2b := Second2[int, string]("x")
	assert.Equal(t, uint8(0), c2a.Which())
	assert.Equal(t, uint8(1), c2b.Which())

	c5 := Fifth5[int, int, int, int, string]("last")
	assert.Equal(t, uint8(4), c5.Which())
	assert.Equal(t, "last", *c5.Must4())
}

func TestZeroValue(t *testing.T) {
	var c Choice2[int, string]
	assert.Equal(t, uint8(0), c.Which())
	v, ok := c.Get0()
	require.True(t, ok)
	assert.Equal(t, 0, *v)
}

func TestSameTypedAlternatives(t *testing.T) {
	// Two int alternatives are only distinguishable by explicit index.
	c := Second2[int, int](45)
	assert.Equal(t, uint8(1), c.Which())

	got := Match2(&c,
		func(v *int) string { return "first" },
		func(v *int) string { return "second" },
	)
	assert.Equal(t, "second", got)
}

func TestMustPanicsWithDiagnostic(t *testing.T) {
	c := Second2[int, string]("hello")

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(*errors.Error)
		require.True(t, ok, "panic value should be a structured error, got %T", r)
		assert.Equal(t, errors.KindWrongAlternative, err.Kind)
		assert.Equal(t, 0, err.Expected)
		assert.Equal(t, 1, err.Actual)
		assert.Contains(t, err.Location, "choice_test.go:")
	}()
	c.Must0()
}

func TestRawIsUnchecked(t *testing.T) {
	c := Second2[int, string]("hello")
	// Raw performs no check; reading the inactive slot yields its zero
	// storage rather than crashing.
	assert.Equal(t, 0, *c.Raw0())
	assert.Equal(t, "hello", *c.Raw1())
}

func TestEmplaceSameAlternativeAssigns(t *testing.T) {
	var cnt counts
	c := First2[int, tracked](43)
	c.Emplace0(44)

	assert.Equal(t, 0, cnt.destroys, "same-alternative emplace must not destroy")
	assert.Equal(t, 44, *c.Must0())
}

func TestEmplaceSwitchDestroysOutgoing(t *testing.T) {
	var cnt counts
	c := Second2[int, tracked](tracked{c: &cnt, id: 7})

	c.Emplace0(99)

	assert.Equal(t, 1, cnt.destroys)
	assert.Equal(t, uint8(0), c.Which())
	assert.Equal(t, 99, *c.Must0())
}

func TestEmplaceSameTrackedAssigns(t *testing.T) {
	var cnt counts
	c := Second2[int, tracked](tracked{c: &cnt, id: 1})
	c.Emplace1(tracked{c: &cnt, id: 2})

	assert.Equal(t, 0, cnt.destroys, "assignment path must skip destroy")
	assert.Equal(t, 2, c.Must1().id)
}

func TestMoveThenDestroyReleasesOnce(t *testing.T) {
	var cnt counts
	c := First2[tracked, int](tracked{c: &cnt, id: 1})

	moved := c.Move()
	c.Destroy()
	moved.Destroy()

	assert.Equal(t, 1, cnt.destroys, "exactly one release across both instances")
}

func TestDestroyZeroesSlot(t *testing.T) {
	var cnt counts
	c := First2[tracked, int](tracked{c: &cnt, id: 5})
	c.Destroy()

	assert.Equal(t, 1, cnt.destroys)
	assert.Equal(t, 0, c.Raw0().id)
	assert.Equal(t, uint8(0), c.Which(), "discriminant survives destroy")
}

func TestMatchDispatch(t *testing.T) {
	tests := []struct {
		name string
		c    Choice3[int, string, float64]
		want string
	}{
		{"first", First3[int, string, float64](1), "int:1"},
		{"second", Second3[int, string, float64]("hi"), "string:hi"},
		{"third", Third3[int, string, float64](2.5), "float:2.5"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Match3(&tc.c,
				func(v *int) string { return "int:" + strconv.Itoa(*v) },
				func(v *string) string { return "string:" + *v },
				func(v *float64) string { return "float:" + strconv.FormatFloat(*v, 'g', -1, 64) },
			)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMatchAllowsMutation(t *testing.T) {
	c := First2[int, string](10)
	Match2(&c,
		func(v *int) struct{} { *v += 5; return struct{}{} },
		func(v *string) struct{} { return struct{}{} },
	)
	assert.Equal(t, 15, *c.Must0())
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal2(First2[int, string](1), First2[int, string](1)))
	assert.False(t, Equal2(First2[int, string](1), First2[int, string](2)))
	assert.False(t, Equal2(First2[int, string](1), Second2[int, string]("1")))
	assert.True(t, Equal3(Third3[int, int, string]("x"), Third3[int, int, string]("x")))
}

func TestCompareLexicographic(t *testing.T) {
	tests := []struct {
		name string
		a, b Choice2[int, int]
		want int
	}{
		{"lower index first", First2[int, int](100), Second2[int, int](0), -1},
		{"higher index last", Second2[int, int](0), First2[int, int](100), 1},
		{"same index by payload", First2[int, int](1), First2[int, int](2), -1},
		{"equal", Second2[int, int](5), Second2[int, int](5), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Compare2(tc.a, tc.b))
		})
	}
}

func TestCompareFunc(t *testing.T) {
	a := First2[[]int, int]([]int{1})
	b := Second2[[]int, int](3)
	got := CompareFunc2(a, b,
		func(x, y []int) int { return len(x) - len(y) },
		func(x, y int) int { return x - y },
	)
	assert.Equal(t, -1, got)
}

func TestSwapRoundtrip(t *testing.T) {
	c := Second2[int, string]("v")
	swapped := Swap2(c)
	assert.Equal(t, uint8(0), swapped.Which())
	assert.Equal(t, "v", *swapped.Must0())

	back := Swap2(swapped)
	assert.True(t, Equal2(c, back))
}

func TestRotate3MovesActiveAlternative(t *testing.T) {
	// {int, float64, *int} holding 42.5 at index 1, rotated, lands the
	// value at index 2 of {*int, int, float64}.
	c := Second3[int, float64, *int](42.5)
	rotated := Rotate3(c)

	assert.Equal(t, uint8(2), rotated.Which())
	assert.Equal(t, 42.5, *rotated.Must2())
}

func TestRotate3Roundtrip(t *testing.T) {
	c := First3[int, string, bool](7)
	back := Rotate3(Rotate3(Rotate3(c)))
	assert.True(t, Equal3(c, back))
}

func TestSwapHead3Roundtrip(t *testing.T) {
	c := Third3[int, string, bool](true)
	flipped := SwapHead3(c)
	assert.Equal(t, uint8(2), flipped.Which())
	back := SwapHead3(flipped)
	assert.True(t, Equal3(c, back))
}

func TestString(t *testing.T) {
	c := First2[int, string](42)
	assert.Equal(t, "choice[0](42)", c.String())

	d := Second3[int, string, bool]("hi")
	assert.Equal(t, "choice[1](hi)", d.String())
}
