// Package option provides an optional value built on the choice core.
//
// Option[T] is a two-alternative choice of {unit, T}; the zero Option is
// None. It adds nothing to the variant machinery beyond naming: Some/None
// construction, value-flavored accessors, and the usual combinators.
//
// For pointer payloads, Ptr[T] is the niche-compressed form: it is exactly
// pointer-sized, using nil as the absent representation. It exists for
// callers counting bytes; Option[*T] behaves identically and costs one
// extra word.
package option
