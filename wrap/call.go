package wrap

import (
	"fmt"

	"github.com/wippyai/lapackgen/cdecl"
	"github.com/wippyai/lapackgen/errors"
)

// CallArg is the call-site expression recovering a raw pointer from one
// safe parameter, plus the prologue statement it needs, if any.
type CallArg struct {
	Expr     string
	Prologue string // conversion temporary declared before the call, "" if none
}

// Call maps the raw parameter list to the argument expressions of the
// call to the raw symbol, in parameter order. It walks the same
// classification as Signature, so substituting its output into the raw
// prototype type-checks with no cast beyond the char conversion below.
//
// Constant and mutable pointers recover the same expression in Go; the
// constness distinction lives in the prototype preserved in the cgo
// preamble.
func Call(d *cdecl.Decl) ([]CallArg, error) {
	// Prologue temporaries must not shadow any parameter.
	taken := make(map[string]bool, len(d.Params))
	for _, p := range d.Params {
		taken[p.Name] = true
	}

	args := make([]CallArg, 0, len(d.Params))
	for _, p := range d.Params {
		t, ok := ctypes[p.Ptr.Pointee]
		if !ok {
			return nil, errors.UnknownType(d.Name, p.Name, p.Ptr.Pointee)
		}

		var arg CallArg
		switch Classify(p.Name) {
		case CategoryStatus:
			// Go has no implicit reference-to-pointer coercion at the C
			// boundary, so the recovery cast is explicit.
			arg.Expr = fmt.Sprintf("(*%s)(unsafe.Pointer(%s))", t.Cgo, p.Name)
		case CategoryArray:
			// unsafe.SliceData stays valid for a zero-length view, so an
			// n=0 quick-return call reaches the routine instead of
			// panicking on an index.
			arg.Expr = fmt.Sprintf("(*%s)(unsafe.Pointer(unsafe.SliceData(%s)))", t.Cgo, p.Name)
		default:
			if p.Ptr.Pointee == "char" {
				// The safe signature takes a plain byte while the raw ABI
				// expects the platform char type, so convert the value
				// before taking its address.
				tmp := "c" + p.Name
				for taken[tmp] {
					tmp += "_"
				}
				taken[tmp] = true
				arg.Prologue = fmt.Sprintf("%s := %s(%s)", tmp, t.Cgo, p.Name)
				arg.Expr = "&" + tmp
			} else {
				arg.Expr = fmt.Sprintf("(*%s)(unsafe.Pointer(&%s))", t.Cgo, p.Name)
			}
		}
		args = append(args, arg)
	}
	return args, nil
}
