package layout

import (
	"reflect"
	"strings"
)

// Decision identifies the storage strategy selected for a shape.
type Decision int

const (
	// Tagged is the fallback: union storage plus an explicit discriminant.
	Tagged Decision = iota
	// NichedFirst: two alternatives, the first holds the niche, the second
	// is the empty marker.
	NichedFirst
	// NichedSecond: two alternatives, the first is the empty marker, the
	// second holds the niche.
	NichedSecond
)

// String implements fmt.Stringer.
func (d Decision) String() string {
	switch d {
	case NichedFirst:
		return "niched(first)"
	case NichedSecond:
		return "niched(second)"
	default:
		return "tagged"
	}
}

// Niched reports whether the decision omits the discriminant.
func (d Decision) Niched() bool { return d != Tagged }

// Shape is an ordered alternative list, the input to layout selection.
type Shape struct {
	Alts []reflect.Type
}

// ShapeOf builds a shape from explicit alternative types.
func ShapeOf(alts ...reflect.Type) Shape {
	return Shape{Alts: alts}
}

// Of2 builds the shape of a two-alternative choice.
func Of2[T0, T1 any]() Shape {
	return ShapeOf(reflect.TypeFor[T0](), reflect.TypeFor[T1]())
}

// Of3 builds the shape of a three-alternative choice.
func Of3[T0, T1, T2 any]() Shape {
	return ShapeOf(reflect.TypeFor[T0](), reflect.TypeFor[T1](), reflect.TypeFor[T2]())
}

// Of4 builds the shape of a four-alternative choice.
func Of4[T0, T1, T2, T3 any]() Shape {
	return ShapeOf(reflect.TypeFor[T0](), reflect.TypeFor[T1](), reflect.TypeFor[T2](), reflect.TypeFor[T3]())
}

// Of5 builds the shape of a five-alternative choice.
func Of5[T0, T1, T2, T3, T4 any]() Shape {
	return ShapeOf(reflect.TypeFor[T0](), reflect.TypeFor[T1](), reflect.TypeFor[T2](), reflect.TypeFor[T3](), reflect.TypeFor[T4]())
}

// String renders the shape as a type list, e.g. "{object.Unit, *int}".
func (s Shape) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, t := range s.Alts {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(t.String())
	}
	b.WriteByte('}')
	return b.String()
}

// key is the cache key; type names are unique within a process.
func (s Shape) key() string { return s.String() }

// Info describes the canonical smallest representation of a shape.
type Info struct {
	// Size is the total representation size in bytes.
	Size uintptr
	// Align is the representation's alignment requirement.
	Align uintptr
	// DiscSize is the discriminant width; 0 for niched shapes and for
	// single-alternative shapes, whose discriminant is trivially 0.
	DiscSize uintptr
	// PayloadOffset is where the payload union begins.
	PayloadOffset uintptr
	// Decision is the selected storage strategy.
	Decision Decision
}

// DiscriminantSize returns the width of the smallest unsigned integer able
// to represent discriminants in [0, n). Zero for n <= 1, where the
// discriminant is trivial.
func DiscriminantSize(n int) uintptr {
	switch {
	case n <= 1:
		return 0
	case n <= 1<<8:
		return 1
	case n <= 1<<16:
		return 2
	case int64(n) <= 1<<32:
		return 4
	default:
		return 8
	}
}

// AlignTo rounds offset up to the next multiple of align.
func AlignTo(offset, align uintptr) uintptr {
	if align == 0 {
		return offset
	}
	return (offset + align - 1) &^ (align - 1)
}
