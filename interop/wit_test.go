package interop

import (
	"reflect"
	"testing"

	"go.bytecodealliance.org/wit"

	stderrors "errors"

	"github.com/wippyai/choice/errors"
	"github.com/wippyai/choice/layout"
	"github.com/wippyai/choice/object"
)

func TestWitTypePrimitives(t *testing.T) {
	tests := []struct {
		goType reflect.Type
		want   string
	}{
		{reflect.TypeFor[bool](), "bool"},
		{reflect.TypeFor[int8](), "s8"},
		{reflect.TypeFor[uint8](), "u8"},
		{reflect.TypeFor[int16](), "s16"},
		{reflect.TypeFor[uint16](), "u16"},
		{reflect.TypeFor[int32](), "s32"},
		{reflect.TypeFor[uint32](), "u32"},
		{reflect.TypeFor[int64](), "s64"},
		{reflect.TypeFor[int](), "s64"},
		{reflect.TypeFor[uint64](), "u64"},
		{reflect.TypeFor[float32](), "f32"},
		{reflect.TypeFor[float64](), "f64"},
		{reflect.TypeFor[string](), "string"},
	}

	for _, tc := range tests {
		t.Run(tc.want+"/"+tc.goType.String(), func(t *testing.T) {
			mapped, err := witType(tc.goType)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := Render(mapped); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestWitTypePointerBecomesOption(t *testing.T) {
	mapped, err := witType(reflect.TypeFor[*int32]())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := Render(mapped); got != "option<s32>" {
		t.Errorf("got %q, want %q", got, "option<s32>")
	}
}

func TestWitTypeUnsupported(t *testing.T) {
	_, err := witType(reflect.TypeFor[chan int]())
	if err == nil {
		t.Fatal("expected error")
	}
	var structured *errors.Error
	if !stderrors.As(err, &structured) {
		t.Fatalf("error type: %T", err)
	}
	if structured.Kind != errors.KindUnsupported {
		t.Errorf("kind: got %s", structured.Kind)
	}
}

func TestWitShape(t *testing.T) {
	td, err := WitShape(layout.Of3[object.Unit, int32, string]())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	variant, ok := td.Kind.(*wit.Variant)
	if !ok {
		t.Fatalf("kind: got %T", td.Kind)
	}
	if len(variant.Cases) != 3 {
		t.Fatalf("cases: got %d, want 3", len(variant.Cases))
	}
	if variant.Cases[0].Type != nil {
		t.Error("unit alternative should be a payload-less case")
	}

	want := "variant { alt0, alt1(s32), alt2(string) }"
	if got := Render(td); got != want {
		t.Errorf("rendering: got %q, want %q", got, want)
	}
}

func TestWitShapeUnsupportedAlternative(t *testing.T) {
	if _, err := WitShape(layout.Of2[object.Unit, chan int]()); err == nil {
		t.Fatal("expected error for unsupported alternative")
	}
}

func TestWitOption(t *testing.T) {
	td, err := WitOption(reflect.TypeFor[uint64]())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := Render(td); got != "option<u64>" {
		t.Errorf("got %q", got)
	}
}

func TestWitResult(t *testing.T) {
	tests := []struct {
		name string
		ok   reflect.Type
		err  reflect.Type
		want string
	}{
		{"both", reflect.TypeFor[string](), reflect.TypeFor[int32](), "result<string, s32>"},
		{"ok only", reflect.TypeFor[string](), nil, "result<string>"},
		{"err only", nil, reflect.TypeFor[string](), "result<_, string>"},
		{"neither", nil, nil, "result"},
		{"unit sides are payload-less", reflect.TypeFor[object.Unit](), nil, "result"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			td, err := WitResult(tc.ok, tc.err)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := Render(td); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}
