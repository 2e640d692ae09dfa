package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the transformation the error occurred
type Phase string

const (
	PhaseParse    Phase = "parse"    // extern block and prototype parsing
	PhaseClassify Phase = "classify" // parameter and type classification
	PhaseGenerate Phase = "generate" // wrapper and file emission
)

// Kind categorizes the error
type Kind string

const (
	// KindStructural means the input is not an extern "C" block holding
	// exactly one prototype.
	KindStructural Kind = "structural"
	// KindShape means a parameter is not a named pointer, or the
	// declaration violates the pointer-argument contract.
	KindShape Kind = "shape"
	// KindUnsupportedType means a pointee is not a simple named type the
	// generator knows how to map.
	KindUnsupportedType Kind = "unsupported_type"
	KindInvalidInput    Kind = "invalid_input"
	KindInternal        Kind = "internal"
)

// Error is the structured error type returned by every lapackgen phase.
// All errors are fatal for the declaration being transformed; there is
// no partial output.
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Decl   string // raw declaration name, when known
	Param  string // parameter name, when the error is per-parameter
	Detail string
	Line   int // 1-based source line, 0 if unknown
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Line > 0 {
		fmt.Fprintf(&b, " at line %d", e.Line)
	}

	if e.Decl != "" {
		b.WriteString(" in ")
		b.WriteString(e.Decl)
		if e.Param != "" {
			b.WriteByte('.')
			b.WriteString(e.Param)
		}
	} else if e.Param != "" {
		b.WriteString(" at parameter ")
		b.WriteString(e.Param)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
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

// Convenience constructors used across the generator packages

// Structural creates a parse error for a malformed extern block
func Structural(line int, detail string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindStructural,
		Line:   line,
		Detail: detail,
	}
}

// Shape creates an error for a parameter that is not a plain named pointer
func Shape(decl, param, detail string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindShape,
		Decl:   decl,
		Param:  param,
		Detail: detail,
	}
}

// Unsupported creates an error for a pointee shape the generator rejects
func Unsupported(decl, param, detail string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindUnsupportedType,
		Decl:   decl,
		Param:  param,
		Detail: detail,
	}
}

// UnknownType creates a classification error for a pointee with no Go mapping
func UnknownType(decl, param, ctype string) *Error {
	return &Error{
		Phase:  PhaseClassify,
		Kind:   KindUnsupportedType,
		Decl:   decl,
		Param:  param,
		Detail: fmt.Sprintf("no Go mapping for C type %q", ctype),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Format creates a generate-phase error for output that failed gofmt.
// This always indicates a generator bug, not bad input.
func Format(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseGenerate,
		Kind:   KindInternal,
		Detail: detail,
		Cause:  cause,
	}
}
