package wrap

import (
	stderrors "errors"
	"testing"

	"github.com/wippyai/lapackgen/cdecl"
	"github.com/wippyai/lapackgen/errors"
)

func mustParse(t *testing.T, src string) *cdecl.Decl {
	t.Helper()
	d, err := cdecl.Parse(src)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return d
}

const dgetrsBlock = `extern "C" {
	void dgetrs_(const char *trans, const int *n, const int *nrhs,
	             const double *A, const int *lda, const int *ipiv,
	             double *B, const int *ldb, int *info);
}`

const dlangeBlock = `extern "C" {
	double dlange_(const char *norm, const int *m, const int *n,
	               const double *A, const int *lda, double *work);
}`

func TestSignature_Dgetrs(t *testing.T) {
	d := mustParse(t, dgetrsBlock)

	sig, err := Signature(d)
	if err != nil {
		t.Fatalf("Signature failed: %v", err)
	}

	want := []SafeParam{
		{"trans", "byte"},
		{"n", "int32"},
		{"nrhs", "int32"},
		{"A", "[]float64"},
		{"lda", "int32"},
		{"ipiv", "[]int32"},
		{"B", "[]float64"},
		{"ldb", "int32"},
		{"info", "*int32"},
	}
	if len(sig) != len(want) {
		t.Fatalf("got %d safe params, want %d", len(sig), len(want))
	}
	for i, w := range want {
		if sig[i] != w {
			t.Errorf("safe param %d = %+v, want %+v", i, sig[i], w)
		}
	}
}

func TestSignature_OrderAndLength(t *testing.T) {
	d := mustParse(t, dlangeBlock)

	sig, err := Signature(d)
	if err != nil {
		t.Fatalf("Signature failed: %v", err)
	}
	if len(sig) != len(d.Params) {
		t.Fatalf("length changed: %d raw, %d safe", len(d.Params), len(sig))
	}
	for i := range sig {
		if sig[i].Name != d.Params[i].Name {
			t.Errorf("param %d renamed or reordered: %q vs %q", i, sig[i].Name, d.Params[i].Name)
		}
	}
}

func TestSignature_StatusIgnoresPointee(t *testing.T) {
	// The status slot is always *int32, whatever the prototype declares.
	d := mustParse(t, `extern "C" { void f_(double *info); }`)

	sig, err := Signature(d)
	if err != nil {
		t.Fatalf("Signature failed: %v", err)
	}
	if sig[0].Type != "*int32" {
		t.Errorf("info type = %q, want *int32", sig[0].Type)
	}
}

func TestSignature_UnknownPointee(t *testing.T) {
	d := mustParse(t, `extern "C" { void f_(const quaternion *q); }`)

	_, err := Signature(d)
	if err == nil {
		t.Fatal("expected error for unmapped pointee")
	}
	var genErr *errors.Error
	if !stderrors.As(err, &genErr) {
		t.Fatalf("error %T is not *errors.Error", err)
	}
	if genErr.Kind != errors.KindUnsupportedType {
		t.Errorf("Kind = %v, want %v", genErr.Kind, errors.KindUnsupportedType)
	}
	if genErr.Phase != errors.PhaseClassify {
		t.Errorf("Phase = %v, want %v", genErr.Phase, errors.PhaseClassify)
	}
}

func TestReturn(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{`extern "C" { void f_(const int *n); }`, ""},
		{`extern "C" { double f_(const int *n); }`, "float64"},
		{`extern "C" { float f_(const int *n); }`, "float32"},
		{`extern "C" { int f_(const int *n); }`, "int32"},
	}
	for _, tt := range tests {
		d := mustParse(t, tt.src)
		got, err := Return(d)
		if err != nil {
			t.Fatalf("Return(%q) failed: %v", tt.src, err)
		}
		if got != tt.want {
			t.Errorf("Return(%q) = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestReturn_Unknown(t *testing.T) {
	d := mustParse(t, `extern "C" { quaternion f_(const int *n); }`)
	if _, err := Return(d); err == nil {
		t.Fatal("expected error for unmapped return type")
	}
}
