package object

import "reflect"

// Unit is the statically-empty alternative marker. It carries no data and
// its destroy operation is always a no-op, which is what makes it eligible
// for the niched-pair layout.
type Unit struct{}

// Destroyer is implemented by payload types that own a resource requiring
// explicit release. Destroy must tolerate being called on the zero value
// (a moved-from slot is zeroed before its destroy runs).
type Destroyer interface {
	Destroy()
}

// Object is a uniform storable slot for any payload type. It exists so the
// union and variant layers never special-case unit or reference
// alternatives: everything is a slot with the same construct, dereference
// and destroy surface.
type Object[T any] struct {
	value T
}

// Make constructs a slot holding v.
func Make[T any](v T) Object[T] {
	return Object[T]{value: v}
}

// Ptr returns a pointer to the stored value.
func (o *Object[T]) Ptr() *T { return &o.value }

// Value returns a copy of the stored value.
func (o Object[T]) Value() T { return o.value }

// Set overwrites the stored value in place.
func (o *Object[T]) Set(v T) { o.value = v }

// Destroy releases the slot: it runs the payload's Destroyer hook if the
// payload implements one, then zeroes the storage.
func (o *Object[T]) Destroy() { Destroy(&o.value) }

// Equal reports whether two slots hold equal values.
func Equal[T comparable](a, b Object[T]) bool {
	return a.value == b.value
}

// Ref is a non-owning reference alternative. Storing a reference in a
// variant never transfers ownership; the variant will not release what the
// reference points at. The nil reference is the type's niche.
type Ref[T any] struct {
	ptr *T
}

// RefOf wraps p as a storable reference.
func RefOf[T any](p *T) Ref[T] { return Ref[T]{ptr: p} }

// Deref returns the referenced pointer. Nil for the niche representation.
func (r Ref[T]) Deref() *T { return r.ptr }

// Ok reports whether the reference is non-nil.
func (r Ref[T]) Ok() bool { return r.ptr != nil }

// SetNiche stores the invalid (nil) representation.
func (r *Ref[T]) SetNiche() { r.ptr = nil }

// IsNiche reports whether the reference holds the invalid representation.
func (r *Ref[T]) IsNiche() bool { return r.ptr == nil }

var destroyerType = reflect.TypeOf((*Destroyer)(nil)).Elem()

// Destroy runs *p's Destroyer hook if T implements one (directly or on the
// pointer receiver), then zeroes *p so the slot holds no live value.
func Destroy[T any](p *T) {
	if d, ok := any(p).(Destroyer); ok {
		d.Destroy()
	} else if d, ok := any(*p).(Destroyer); ok {
		d.Destroy()
	}
	var zero T
	*p = zero
}

// NeedsDestroy reports whether T carries a Destroyer hook. Containers use
// it to skip the destroy walk for trivially-destructible alternatives; the
// skip is a performance special case, not a semantic one.
func NeedsDestroy[T any]() bool {
	t := reflect.TypeFor[T]()
	return t.Implements(destroyerType) || reflect.PointerTo(t).Implements(destroyerType)
}
