package object

import (
	"testing"
	"unsafe"
)

type closable struct {
	released *int
}

func (c *closable) Destroy() {
	if c.released != nil {
		*c.released++
	}
}

func TestObjectStoreAndGet(t *testing.T) {
	o := Make(42)
	if got := o.Value(); got != 42 {
		t.Errorf("value: got %d, want 42", got)
	}

	*o.Ptr() = 7
	if got := o.Value(); got != 7 {
		t.Errorf("value after write: got %d, want 7", got)
	}

	o.Set(9)
	if got := o.Value(); got != 9 {
		t.Errorf("value after set: got %d, want 9", got)
	}
}

func TestEqual(t *testing.T) {
	if !Equal(Make("a"), Make("a")) {
		t.Error("equal slots compared unequal")
	}
	if Equal(Make("a"), Make("b")) {
		t.Error("unequal slots compared equal")
	}
}

func TestUnitIsEmpty(t *testing.T) {
	if size := unsafe.Sizeof(Unit{}); size != 0 {
		t.Errorf("unit size: got %d, want 0", size)
	}
}

func TestDestroyRunsHook(t *testing.T) {
	released := 0
	v := closable{released: &released}
	Destroy(&v)

	if released != 1 {
		t.Errorf("releases: got %d, want 1", released)
	}
	if v.released != nil {
		t.Error("slot not zeroed after destroy")
	}
}

func TestDestroyZeroValueIsNoop(t *testing.T) {
	var v closable
	Destroy(&v) // hook runs on the zero value; must tolerate it
}

func TestDestroyWithoutHook(t *testing.T) {
	v := 42
	Destroy(&v)
	if v != 0 {
		t.Errorf("slot: got %d, want 0", v)
	}
}

func TestNeedsDestroy(t *testing.T) {
	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"int", NeedsDestroy[int](), false},
		{"string", NeedsDestroy[string](), false},
		{"closable", NeedsDestroy[closable](), true},
		{"pointer to closable", NeedsDestroy[*closable](), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("got %v, want %v", tc.got, tc.want)
			}
		})
	}
}

func TestRef(t *testing.T) {
	x := 10
	r := RefOf(&x)

	if !r.Ok() {
		t.Fatal("reference should be non-nil")
	}
	if r.Deref() != &x {
		t.Error("deref does not return the referent")
	}
	if r.IsNiche() {
		t.Error("live reference reported as niche")
	}

	r.SetNiche()
	if !r.IsNiche() {
		t.Error("niche not stored")
	}
	if r.Ok() {
		t.Error("niche reference reported live")
	}
}
