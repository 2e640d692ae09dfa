package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseParse,
				Kind:   KindShape,
				Decl:   "dgetrs_",
				Param:  "trans",
				Detail: "parameter is not a pointer",
			},
			contains: []string{"[parse]", "shape", "dgetrs_.trans", "parameter is not a pointer"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseClassify,
				Kind:  KindUnsupportedType,
			},
			contains: []string{"[classify]", "unsupported_type"},
		},
		{
			name: "line number",
			err: &Error{
				Phase:  PhaseParse,
				Kind:   KindStructural,
				Line:   3,
				Detail: "expected extern block",
			},
			contains: []string{"[parse]", "structural", "line 3", "expected extern block"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseGenerate,
				Kind:   KindInternal,
				Detail: "gofmt failed",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[generate]", "internal", "gofmt failed", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseGenerate,
		Kind:  KindInternal,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseParse,
		Kind:  KindShape,
		Decl:  "dgetrs_",
	}

	if !err.Is(&Error{Phase: PhaseParse, Kind: KindShape}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseClassify, Kind: KindShape}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseParse, Kind: KindStructural}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseParse, Kind: KindShape}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name  string
		err   *Error
		phase Phase
		kind  Kind
	}{
		{"structural", Structural(2, "two prototypes in block"), PhaseParse, KindStructural},
		{"shape", Shape("dgetrs_", "n", "anonymous parameter"), PhaseParse, KindShape},
		{"unsupported", Unsupported("dgetrs_", "A", "pointer to pointer"), PhaseParse, KindUnsupportedType},
		{"unknown type", UnknownType("dgetrs_", "A", "quaternion"), PhaseClassify, KindUnsupportedType},
		{"invalid input", InvalidInput(PhaseParse, "empty source"), PhaseParse, KindInvalidInput},
		{"format", Format("wrapper for dgetrs_", errors.New("bad syntax")), PhaseGenerate, KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Phase != tt.phase {
				t.Errorf("Phase = %v, want %v", tt.err.Phase, tt.phase)
			}
			if tt.err.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tt.err.Kind, tt.kind)
			}
		})
	}
}

func TestUnknownType_Detail(t *testing.T) {
	err := UnknownType("dlange_", "work", "long double")
	if !strings.Contains(err.Error(), `"long double"`) {
		t.Errorf("detail missing C type name: %q", err.Error())
	}
}
