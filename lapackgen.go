package lapackgen

import (
	"fmt"
	"go/format"
	"go/token"
	"strings"

	"github.com/wippyai/lapackgen/cdecl"
	"github.com/wippyai/lapackgen/errors"
	"github.com/wippyai/lapackgen/wrap"
)

// Options configures generated file assembly.
type Options struct {
	Package string // package clause of the generated file, default "lapack"
	LDFlags string // cgo LDFLAGS line, default "-llapack"
}

func (o *Options) defaults() {
	if o.Package == "" {
		o.Package = "lapack"
	}
	if o.LDFlags == "" {
		o.LDFlags = "-llapack"
	}
}

// Unit is one transformed declaration: the raw prototype preserved
// verbatim and the wrapper that calls it, emitted side by side.
type Unit struct {
	Prototype string
	Wrapper   string
}

// Wrap transforms a single extern "C" block.
func Wrap(src string) (*Unit, error) {
	d, err := cdecl.Parse(src)
	if err != nil {
		return nil, err
	}
	w, err := wrap.Wrap(d)
	if err != nil {
		return nil, err
	}
	return &Unit{Prototype: d.Prototype(), Wrapper: w}, nil
}

// Generate transforms a header of extern "C" blocks into one complete
// cgo source file: every raw prototype preserved in the preamble and a
// wrapper for each emitted after it, gofmt-formatted. Blocks are
// independent, but any malformed block fails the whole run; there is no
// partial output file.
func Generate(src string, opts Options) (string, error) {
	opts.defaults()
	if !token.IsIdentifier(opts.Package) {
		return "", errors.InvalidInput(errors.PhaseGenerate,
			fmt.Sprintf("package name %q is not a valid Go identifier", opts.Package))
	}

	decls, err := cdecl.ParseAll(src)
	if err != nil {
		return "", err
	}

	wrappers := make([]string, len(decls))
	for i, d := range decls {
		w, err := wrap.Wrap(d)
		if err != nil {
			return "", err
		}
		wrappers[i] = w
	}

	var b strings.Builder
	b.WriteString("// Code generated by lapackgen. DO NOT EDIT.\n\n")
	b.WriteString("package " + opts.Package + "\n\n")

	b.WriteString("/*\n")
	b.WriteString("#cgo LDFLAGS: " + opts.LDFlags + "\n")
	b.WriteString("#include <stdint.h>\n")
	if usesLapackInt(decls) {
		b.WriteString("\ntypedef int32_t lapack_int;\n")
	}
	b.WriteByte('\n')
	for _, d := range decls {
		b.WriteString(d.Prototype())
		b.WriteByte('\n')
	}
	b.WriteString("*/\n")
	b.WriteString("import \"C\"\n\n")

	body := strings.Join(wrappers, "\n")
	if strings.Contains(body, "unsafe.Pointer") {
		b.WriteString("import \"unsafe\"\n\n")
	}
	b.WriteString(body)

	out, err := format.Source([]byte(b.String()))
	if err != nil {
		// Input errors are caught during parse and classification, so a
		// file that fails gofmt is a generator bug.
		return "", errors.Format("generated file is not valid Go", err)
	}
	return string(out), nil
}

func usesLapackInt(decls []*cdecl.Decl) bool {
	for _, d := range decls {
		if d.Return == "lapack_int" {
			return true
		}
		for _, p := range d.Params {
			if p.Ptr.Pointee == "lapack_int" {
				return true
			}
		}
	}
	return false
}
