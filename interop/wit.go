package interop

import (
	"fmt"
	"reflect"
	"strings"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/choice/errors"
	"github.com/wippyai/choice/layout"
)

// WitShape renders a shape as a WIT variant type: one case per
// alternative, in order, with statically-empty alternatives becoming
// payload-less cases.
func WitShape(shape layout.Shape) (*wit.TypeDef, error) {
	cases := make([]wit.Case, 0, len(shape.Alts))
	for i, alt := range shape.Alts {
		name := fmt.Sprintf("alt%d", i)
		if alt.Size() == 0 {
			cases = append(cases, wit.Case{Name: name})
			continue
		}
		t, err := witType(alt)
		if err != nil {
			return nil, err
		}
		cases = append(cases, wit.Case{Name: name, Type: t})
	}
	return &wit.TypeDef{Kind: &wit.Variant{Cases: cases}}, nil
}

// WitOption renders an optional payload type as a WIT option.
func WitOption(t reflect.Type) (*wit.TypeDef, error) {
	inner, err := witType(t)
	if err != nil {
		return nil, err
	}
	return &wit.TypeDef{Kind: &wit.Option{Type: inner}}, nil
}

// WitResult renders a success/failure pair as a WIT result. A nil (or
// zero-sized) side becomes a payload-less half.
func WitResult(ok, errT reflect.Type) (*wit.TypeDef, error) {
	res := &wit.Result{}
	if ok != nil && ok.Size() > 0 {
		t, err := witType(ok)
		if err != nil {
			return nil, err
		}
		res.OK = t
	}
	if errT != nil && errT.Size() > 0 {
		t, err := witType(errT)
		if err != nil {
			return nil, err
		}
		res.Err = t
	}
	return &wit.TypeDef{Kind: res}, nil
}

// witType maps a Go type to its WIT analogue.
func witType(t reflect.Type) (wit.Type, error) {
	switch t.Kind() {
	case reflect.Bool:
		return wit.Bool{}, nil
	case reflect.Int8:
		return wit.S8{}, nil
	case reflect.Uint8:
		return wit.U8{}, nil
	case reflect.Int16:
		return wit.S16{}, nil
	case reflect.Uint16:
		return wit.U16{}, nil
	case reflect.Int32:
		return wit.S32{}, nil
	case reflect.Uint32:
		return wit.U32{}, nil
	case reflect.Int, reflect.Int64:
		return wit.S64{}, nil
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		return wit.U64{}, nil
	case reflect.Float32:
		return wit.F32{}, nil
	case reflect.Float64:
		return wit.F64{}, nil
	case reflect.String:
		return wit.String{}, nil
	case reflect.Pointer:
		// Pointers map to option of the pointee: nil is the none case,
		// mirroring the nil niche.
		inner, err := witType(t.Elem())
		if err != nil {
			return nil, err
		}
		return &wit.TypeDef{Kind: &wit.Option{Type: inner}}, nil
	default:
		return nil, errors.Unsupported(errors.PhaseInterop,
			"no WIT analogue for Go type "+t.String())
	}
}

// Render produces a WIT-syntax rendering of a mapped type.
func Render(t wit.Type) string {
	switch v := t.(type) {
	case wit.Bool:
		return "bool"
	case wit.U8:
		return "u8"
	case wit.S8:
		return "s8"
	case wit.U16:
		return "u16"
	case wit.S16:
		return "s16"
	case wit.U32:
		return "u32"
	case wit.S32:
		return "s32"
	case wit.U64:
		return "u64"
	case wit.S64:
		return "s64"
	case wit.F32:
		return "f32"
	case wit.F64:
		return "f64"
	case wit.Char:
		return "char"
	case wit.String:
		return "string"
	case *wit.TypeDef:
		return renderTypeDef(v)
	default:
		return fmt.Sprintf("%T", t)
	}
}

func renderTypeDef(td *wit.TypeDef) string {
	switch kind := td.Kind.(type) {
	case *wit.Option:
		return "option<" + Render(kind.Type) + ">"
	case *wit.Result:
		switch {
		case kind.OK == nil && kind.Err == nil:
			return "result"
		case kind.Err == nil:
			return "result<" + Render(kind.OK) + ">"
		case kind.OK == nil:
			return "result<_, " + Render(kind.Err) + ">"
		default:
			return "result<" + Render(kind.OK) + ", " + Render(kind.Err) + ">"
		}
	case *wit.Variant:
		var b strings.Builder
		b.WriteString("variant { ")
		for i, c := range kind.Cases {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(c.Name)
			if c.Type != nil {
				b.WriteByte('(')
				b.WriteString(Render(c.Type))
				b.WriteByte(')')
			}
		}
		b.WriteString(" }")
		return b.String()
	default:
		if td.Name != nil {
			return *td.Name
		}
		return "typedef"
	}
}
