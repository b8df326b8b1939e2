package errors

import (
	"fmt"
	"runtime"
	"strings"
)

// Phase indicates which operation the error occurred in
type Phase string

const (
	PhaseAccess  Phase = "access"  // checked-by-crash alternative access
	PhaseEmplace Phase = "emplace" // in-place reconstruction
	PhaseLayout  Phase = "layout"  // layout selection and sizing
	PhaseInterop Phase = "interop" // WIT shape rendering
)

// Kind categorizes the error
type Kind string

const (
	KindWrongAlternative Kind = "wrong_alternative"
	KindNicheCollision   Kind = "niche_collision"
	KindBadIndex         Kind = "bad_index"
	KindUnsupported      Kind = "unsupported"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause    error
	Phase    Phase
	Kind     Kind
	Type     string
	Detail   string
	Location string
	Expected int
	Actual   int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Kind == KindWrongAlternative {
		fmt.Fprintf(&b, ": expected alternative %d, have %d", e.Expected, e.Actual)
	}

	if e.Type != "" {
		b.WriteString(" (type ")
		b.WriteString(e.Type)
		b.WriteByte(')')
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Location != "" {
		b.WriteString(" at ")
		b.WriteString(e.Location)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Expected sets the discriminant the caller asked for
func (b *Builder) Expected(n int) *Builder {
	b.err.Expected = n
	return b
}

// Actual sets the discriminant the choice actually held
func (b *Builder) Actual(n int) *Builder {
	b.err.Actual = n
	return b
}

// Type sets the payload type name
func (b *Builder) Type(t string) *Builder {
	b.err.Type = t
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Caller records the file:line that is skip+1 stack frames above this call.
func (b *Builder) Caller(skip int) *Builder {
	if _, file, line, ok := runtime.Caller(skip + 1); ok {
		if i := strings.LastIndexByte(file, '/'); i >= 0 {
			file = file[i+1:]
		}
		b.err.Location = fmt.Sprintf("%s:%d", file, line)
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// WrongAlternative creates the fatal wrong-alternative access error. The
// location recorded is the caller of the accessor, two frames up.
func WrongAlternative(expected, actual int, typeName string) *Error {
	return New(PhaseAccess, KindWrongAlternative).
		Expected(expected).
		Actual(actual).
		Type(typeName).
		Caller(2).
		Build()
}

// NicheCollision reports a constructed value that equals its type's niche
// representation, which would make the two alternatives indistinguishable.
func NicheCollision(typeName string) *Error {
	return New(PhaseEmplace, KindNicheCollision).
		Type(typeName).
		Detail("constructed value equals the niche representation").
		Caller(2).
		Build()
}

// BadIndex reports a discriminant outside [0, n).
func BadIndex(phase Phase, index, n int) *Error {
	return New(phase, KindBadIndex).
		Actual(index).
		Detail("discriminant %d out of range (alternatives: %d)", index, n).
		Build()
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return New(phase, KindUnsupported).Detail("%s", what).Build()
}
