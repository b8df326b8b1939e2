// Package pun provides the raw alternative storage underneath the variant
// core.
//
// A Pun holds storage for every alternative of a choice but tracks nothing
// about which one is live; that bookkeeping belongs to the owning layer,
// which knows the discriminant and drives construction and destruction
// through Make/Get/Clear. Reading a slot the owner never made live returns
// a zero value rather than the C notion of undefined behavior, but it is a
// contract violation all the same.
//
// Go cannot overlap storage, so alternatives live side by side instead of
// in a true union. The contract is unchanged: at most one slot is live at a
// time, and only the owner knows which. Where overlap actually pays off —
// a two-alternative choice whose payload has a spare invalid bit pattern —
// the niche package stores a single value and this package is bypassed
// entirely.
package pun
