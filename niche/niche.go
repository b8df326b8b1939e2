package niche

import (
	"reflect"
	"sync"
)

// Niched is implemented by value types that reserve an invalid
// representation. Both methods are pointer-receiver methods: SetNiche
// overwrites the receiver with the invalid representation, and IsNiche
// reports whether the receiver currently holds it. Only values produced by
// SetNiche may report true.
type Niched interface {
	SetNiche()
	IsNiche() bool
}

var nichedType = reflect.TypeOf((*Niched)(nil)).Elem()

// hasCache memoizes the per-type niche decision. The decision is a pure
// function of the type, so the cache never invalidates.
var hasCache sync.Map // reflect.Type -> bool

// Has reports whether T carries a niche: a reference-like kind (nil niche)
// or a Niched implementor.
func Has[T any]() bool {
	return HasType(reflect.TypeFor[T]())
}

// HasType is Has for a reflect.Type, for callers that work with erased
// types (the layout engine).
func HasType(t reflect.Type) bool {
	if v, ok := hasCache.Load(t); ok {
		return v.(bool)
	}
	has := isRefKind(t.Kind()) || reflect.PointerTo(t).Implements(nichedType)
	hasCache.Store(t, has)
	return has
}

// Store writes T's niche representation into *p. Precondition: Has[T]().
func Store[T any](p *T) {
	if n, ok := any(p).(Niched); ok {
		n.SetNiche()
		return
	}
	// Reference kinds: the zero value is nil, which is the niche.
	var zero T
	*p = zero
}

// Holds reports whether v is T's niche representation. Always false for
// types without a niche.
func Holds[T any](v T) bool {
	if n, ok := any(&v).(Niched); ok {
		return n.IsNiche()
	}
	rv := reflect.ValueOf(&v).Elem()
	if isRefKind(rv.Kind()) {
		return rv.IsNil()
	}
	return false
}

func isRefKind(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map,
		reflect.Chan, reflect.Func, reflect.Interface:
		return true
	}
	return false
}

// RefKind reports whether t is a reference-like kind, i.e. one whose niche
// is the nil value. Exported for the layout engine.
func RefKind(t reflect.Type) bool {
	return isRefKind(t.Kind())
}
