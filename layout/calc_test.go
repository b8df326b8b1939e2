package layout

import (
	"reflect"
	"testing"
	"unsafe"

	"github.com/wippyai/choice/niche"
	"github.com/wippyai/choice/object"
)

type fd struct {
	raw int
}

func (f *fd) SetNiche()     { f.raw = -1 }
func (f *fd) IsNiche() bool { return f.raw == -1 }

func TestDiscriminantSize(t *testing.T) {
	tests := []struct {
		n    int
		want uintptr
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{256, 1},
		{257, 2},
		{1 << 16, 2},
		{1<<16 + 1, 4},
	}

	for _, tc := range tests {
		if got := DiscriminantSize(tc.n); got != tc.want {
			t.Errorf("DiscriminantSize(%d): got %d, want %d", tc.n, got, tc.want)
		}
	}
}

func TestAlignTo(t *testing.T) {
	tests := []struct {
		offset, align, want uintptr
	}{
		{0, 1, 0},
		{1, 1, 1},
		{1, 4, 4},
		{4, 4, 4},
		{5, 8, 8},
		{3, 0, 3},
	}

	for _, tc := range tests {
		if got := AlignTo(tc.offset, tc.align); got != tc.want {
			t.Errorf("AlignTo(%d, %d): got %d, want %d", tc.offset, tc.align, got, tc.want)
		}
	}
}

func TestSelect(t *testing.T) {
	calc := NewCalculator()

	tests := []struct {
		name  string
		shape Shape
		want  Decision
	}{
		{"unit then pointer", Of2[object.Unit, *int](), NichedSecond},
		{"pointer then unit", Of2[*int, object.Unit](), NichedFirst},
		{"unit then map", Of2[object.Unit, map[string]int](), NichedSecond},
		{"unit then niched value", Of2[object.Unit, fd](), NichedSecond},
		{"unit then plain int", Of2[object.Unit, int](), Tagged},
		{"two units", Of2[object.Unit, struct{}](), Tagged},
		{"two pointers", Of2[*int, *string](), Tagged},
		{"three alternatives", Of3[object.Unit, *int, int](), Tagged},
		{"scalars", Of2[int32, float64](), Tagged},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := calc.Select(tc.shape); got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestCalculateNiched(t *testing.T) {
	calc := NewCalculator()

	info := calc.Calculate(Of2[object.Unit, *int]())
	if info.Decision != NichedSecond {
		t.Fatalf("decision: got %s", info.Decision)
	}
	if want := unsafe.Sizeof((*int)(nil)); info.Size != want {
		t.Errorf("size: got %d, want %d (payload alone, no discriminant)", info.Size, want)
	}
	if info.DiscSize != 0 {
		t.Errorf("disc size: got %d, want 0", info.DiscSize)
	}

	// The niche pair container matches the computed layout exactly.
	if got := unsafe.Sizeof(niche.Pair[*int]{}); got != info.Size {
		t.Errorf("pair container size %d disagrees with layout %d", got, info.Size)
	}
}

func TestCalculateTagged(t *testing.T) {
	calc := NewCalculator()

	t.Run("scalar pair", func(t *testing.T) {
		info := calc.Calculate(Of2[int32, float64]())
		// 1-byte discriminant, payload aligned to 8: |d|pad*7|payload*8|
		if info.DiscSize != 1 {
			t.Errorf("disc size: got %d, want 1", info.DiscSize)
		}
		if info.Align != 8 {
			t.Errorf("align: got %d, want 8", info.Align)
		}
		if info.PayloadOffset != 8 {
			t.Errorf("payload offset: got %d, want 8", info.PayloadOffset)
		}
		if info.Size != 16 {
			t.Errorf("size: got %d, want 16", info.Size)
		}
	})

	t.Run("byte pair", func(t *testing.T) {
		info := calc.Calculate(Of2[uint8, bool]())
		if info.Size != 2 || info.Align != 1 || info.PayloadOffset != 1 {
			t.Errorf("layout: %+v", info)
		}
	})

	t.Run("single alternative has trivial discriminant", func(t *testing.T) {
		info := calc.Calculate(ShapeOf(reflect.TypeFor[uint64]()))
		if info.DiscSize != 0 {
			t.Errorf("disc size: got %d, want 0", info.DiscSize)
		}
		if info.Size != 8 {
			t.Errorf("size: got %d, want 8", info.Size)
		}
	})
}

func TestCalculateCaches(t *testing.T) {
	calc := NewCalculator()
	shape := Of3[int, string, *int]()

	first := calc.Calculate(shape)
	second := calc.Calculate(shape)
	if first != second {
		t.Error("cached result differs")
	}
	if len(calc.cache) != 1 {
		t.Errorf("cache entries: got %d, want 1", len(calc.cache))
	}
}

func TestShapeString(t *testing.T) {
	s := Of2[object.Unit, *int]()
	if got := s.String(); got != "{object.Unit, *int}" {
		t.Errorf("shape string: got %q", got)
	}
}

func FuzzTaggedLayoutInvariants(f *testing.F) {
	f.Add(3, 8, 4)
	f.Add(1, 1, 1)
	f.Add(300, 2, 2)

	f.Fuzz(func(t *testing.T, n, size, align int) {
		if n < 1 || n > 1<<20 {
			t.Skip()
		}
		disc := DiscriminantSize(n)
		if n > 1 && disc == 0 {
			t.Fatalf("no discriminant for %d alternatives", n)
		}
		if align < 1 || align > 64 || align&(align-1) != 0 || size < 0 || size > 1<<16 {
			t.Skip()
		}
		a, s := uintptr(align), uintptr(size)
		off := AlignTo(disc, a)
		if off%a != 0 {
			t.Fatalf("payload offset %d not aligned to %d", off, a)
		}
		total := AlignTo(off+s, a)
		if total < off+s {
			t.Fatalf("size %d smaller than contents %d", total, off+s)
		}
	})
}
