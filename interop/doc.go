// Package interop renders alternative shapes as WebAssembly Component
// Model types.
//
// A choice's alternative list maps directly onto a WIT variant: one case
// per alternative, the empty unit alternative becoming a payload-less
// case. Option and result shapes get their dedicated WIT forms. The
// mapping gives a shape a language-neutral description — useful for
// documenting a layout across an FFI boundary — and nothing more: it is
// not a wire format, and the in-memory layouts on the two sides are
// unrelated.
//
// Only Go types with a WIT analogue are mappable: fixed-width integers,
// bool, floats, strings, and pointers (mapped to option of the pointee,
// mirroring the nil niche). Everything else yields an unsupported error.
package interop
