package result

import (
	stderrors "errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/choice/errors"
)

func TestOkAndErr(t *testing.T) {
	ok := Ok[int, string](42)
	assert.True(t, ok.IsOk())
	assert.False(t, ok.IsErr())

	v, present := ok.Get()
	require.True(t, present)
	assert.Equal(t, 42, v)
	_, present = ok.GetErr()
	assert.False(t, present)

	bad := Err[int, string]("broken")
	assert.True(t, bad.IsErr())
	e, present := bad.GetErr()
	require.True(t, present)
	assert.Equal(t, "broken", e)
}

func TestZeroValueIsOk(t *testing.T) {
	var r Result[int, string]
	assert.True(t, r.IsOk())
	assert.Equal(t, 0, r.Must())
}

func TestMustPanics(t *testing.T) {
	bad := Err[int, string]("broken")

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(*errors.Error)
		require.True(t, ok)
		assert.Equal(t, errors.KindWrongAlternative, err.Kind)
		assert.Equal(t, 0, err.Expected)
		assert.Equal(t, 1, err.Actual)
	}()
	bad.Must()
}

func TestMustErrPanicsOnOk(t *testing.T) {
	ok := Ok[int, string](1)
	assert.Panics(t, func() { ok.MustErr() })
}

func TestGetOr(t *testing.T) {
	assert.Equal(t, 1, Ok[int, string](1).GetOr(9))
	assert.Equal(t, 9, Err[int, string]("e").GetOr(9))
}

func TestFromAndStd(t *testing.T) {
	boom := stderrors.New("boom")

	r := From(42, nil)
	assert.True(t, r.IsOk())
	v, err := Std(r)
	assert.NoError(t, err)
	assert.Equal(t, 42, v)

	r = From(0, boom)
	assert.True(t, r.IsErr())
	_, err = Std(r)
	assert.ErrorIs(t, err, boom)
}

func TestMatch(t *testing.T) {
	ok := Ok[int, string](7)
	got := Match(&ok,
		func(v int) string { return "ok:" + strconv.Itoa(v) },
		func(e string) string { return "err:" + e },
	)
	assert.Equal(t, "ok:7", got)

	bad := Err[int, string]("x")
	got = Match(&bad,
		func(v int) string { return "ok" },
		func(e string) string { return "err:" + e },
	)
	assert.Equal(t, "err:x", got)
}

func TestCombinators(t *testing.T) {
	double := func(v int) int { return v * 2 }

	assert.Equal(t, 4, Map(Ok[int, string](2), double).Must())
	assert.Equal(t, "e", Map(Err[int, string]("e"), double).MustErr())

	upper := func(e string) string { return e + "!" }
	assert.Equal(t, "e!", MapErr(Err[int, string]("e"), upper).MustErr())
	assert.Equal(t, 2, MapErr(Ok[int, string](2), upper).Must())

	parse := func(s string) Result[int, string] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Err[int, string]("not a number")
		}
		return Ok[int, string](n)
	}
	assert.Equal(t, 12, AndThen(Ok[string, string]("12"), parse).Must())
	assert.Equal(t, "not a number", AndThen(Ok[string, string]("x"), parse).MustErr())
	assert.Equal(t, "e", AndThen(Err[string, string]("e"), parse).MustErr())
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(Ok[int, string](1), Ok[int, string](1)))
	assert.False(t, Equal(Ok[int, string](1), Ok[int, string](2)))
	assert.False(t, Equal(Ok[int, string](1), Err[int, string]("1")))
	assert.True(t, Equal(Err[int, string]("e"), Err[int, string]("e")))
}

func TestString(t *testing.T) {
	ok := Ok[int, string](1)
	assert.Equal(t, "ok(1)", ok.String())
	bad := Err[int, string]("nope")
	assert.Equal(t, "err(nope)", bad.String())
}
