package pun

import "github.com/wippyai/choice/object"

// Pun2 is untracked storage for two alternatives. At most one slot is live;
// the owner tracks which.
type Pun2[T0, T1 any] struct {
	t0 T0
	t1 T1
}

// Make0 constructs alternative 0 in place. The owner must ensure no slot is
// currently live.
func (p *Pun2[T0, T1]) Make0(v T0) { p.t0 = v }

// Make1 constructs alternative 1 in place.
func (p *Pun2[T0, T1]) Make1(v T1) { p.t1 = v }

// Get0 returns alternative 0's storage. Only meaningful while slot 0 is live.
func (p *Pun2[T0, T1]) Get0() *T0 { return &p.t0 }

// Get1 returns alternative 1's storage. Only meaningful while slot 1 is live.
func (p *Pun2[T0, T1]) Get1() *T1 { return &p.t1 }

// Destroy releases the live slot named by which: the slot's Destroyer hook
// runs if the payload has one, and the storage is zeroed.
func (p *Pun2[T0, T1]) Destroy(which uint8) {
	switch which {
	case 0:
		object.Destroy(&p.t0)
	case 1:
		object.Destroy(&p.t1)
	}
}

// Clear zeroes the slot named by which without running its Destroyer hook.
// Used after a move, when ownership of the payload's resources has already
// been transferred out.
func (p *Pun2[T0, T1]) Clear(which uint8) {
	switch which {
	case 0:
		var zero T0
		p.t0 = zero
	case 1:
		var zero T1
		p.t1 = zero
	}
}

// Pun3 is untracked storage for three alternatives.
type Pun3[T0, T1, T2 any] struct {
	t0 T0
	t1 T1
	t2 T2
}

func (p *Pun3[T0, T1, T2]) Make0(v T0) { p.t0 = v }
func (p *Pun3[T0, T1, T2]) Make1(v T1) { p.t1 = v }
func (p *Pun3[T0, T1, T2]) Make2(v T2) { p.t2 = v }

func (p *Pun3[T0, T1, T2]) Get0() *T0 { return &p.t0 }
func (p *Pun3[T0, T1, T2]) Get1() *T1 { return &p.t1 }
func (p *Pun3[T0, T1, T2]) Get2() *T2 { return &p.t2 }

func (p *Pun3[T0, T1, T2]) Destroy(which uint8) {
	switch which {
	case 0:
		object.Destroy(&p.t0)
	case 1:
		object.Destroy(&p.t1)
	case 2:
		object.Destroy(&p.t2)
	}
}

func (p *Pun3[T0, T1, T2]) Clear(which uint8) {
	switch which {
	case 0:
		var zero T0
		p.t0 = zero
	case 1:
		var zero T1
		p.t1 = zero
	case 2:
		var zero T2
		p.t2 = zero
	}
}

// Pun4 is untracked storage for four alternatives.
type Pun4[T0, T1, T2, T3 any] struct {
	t0 T0
	t1 T1
	t2 T2
	t3 T3
}

func (p *Pun4[T0, T1, T2, T3]) Make0(v T0) { p.t0 = v }
func (p *Pun4[T0, T1, T2, T3]) Make1(v T1) { p.t1 = v }
func (p *Pun4[T0, T1, T2, T3]) Make2(v T2) { p.t2 = v }
func (p *Pun4[T0, T1, T2, T3]) Make3(v T3) { p.t3 = v }

func (p *Pun4[T0, T1, T2, T3]) Get0() *T0 { return &p.t0 }
func (p *Pun4[T0, T1, T2, T3]) Get1() *T1 { return &p.t1 }
func (p *Pun4[T0, T1, T2, T3]) Get2() *T2 { return &p.t2 }
func (p *Pun4[T0, T1, T2, T3]) Get3() *T3 { return &p.t3 }

func (p *Pun4[T0, T1, T2, T3]) Destroy(which uint8) {
	switch which {
	case 0:
		object.Destroy(&p.t0)
	case 1:
		object.Destroy(&p.t1)
	case 2:
		object.Destroy(&p.t2)
	case 3:
		object.Destroy(&p.t3)
	}
}

func (p *Pun4[T0, T1, T2, T3]) Clear(which uint8) {
	switch which {
	case 0:
		var zero T0
		p.t0 = zero
	case 1:
		var zero T1
		p.t1 = zero
	case 2:
		var zero T2
		p.t2 = zero
	case 3:
		var zero T3
		p.t3 = zero
	}
}

// Pun5 is untracked storage for five alternatives.
type Pun5[T0, T1, T2, T3, T4 any] struct {
	t0 T0
	t1 T1
	t2 T2
	t3 T3
	t4 T4
}

func (p *Pun5[T0, T1, T2, T3, T4]) Make0(v T0) { p.t0 = v }
func (p *Pun5[T0, T1, T2, T3, T4]) Make1(v T1) { p.t1 = v }
func (p *Pun5[T0, T1, T2, T3, T4]) Make2(v T2) { p.t2 = v }
func (p *Pun5[T0, T1, T2, T3, T4]) Make3(v T3) { p.t3 = v }
func (p *Pun5[T0, T1, T2, T3, T4]) Make4(v T4) { p.t4 = v }

func (p *Pun5[T0, T1, T2, T3, T4]) Get0() *T0 { return &p.t0 }
func (p *Pun5[T0, T1, T2, T3, T4]) Get1() *T1 { return &p.t1 }
func (p *Pun5[T0, T1, T2, T3, T4]) Get2() *T2 { return &p.t2 }
func (p *Pun5[T0, T1, T2, T3, T4]) Get3() *T3 { return &p.t3 }
func (p *Pun5[T0, T1, T2, T3, T4]) Get4() *T4 { return &p.t4 }

func (p *Pun5[T0, T1, T2, T3, T4]) Destroy(which uint8) {
	switch which {
	case 0:
		object.Destroy(&p.t0)
	case 1:
		object.Destroy(&p.t1)
	case 2:
		object.Destroy(&p.t2)
	case 3:
		object.Destroy(&p.t3)
	case 4:
		object.Destroy(&p.t4)
	}
}

func (p *Pun5[T0, T1, T2, T3, T4]) Clear(which uint8) {
	switch which {
	case 0:
		var zero T0
		p.t0 = zero
	case 1:
		var zero T1
		p.t1 = zero
	case 2:
		var zero T2
		p.t2 = zero
	case 3:
		var zero T3
		p.t3 = zero
	case 4:
		var zero T4
		p.t4 = zero
	}
}
