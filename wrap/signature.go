package wrap

import (
	"github.com/wippyai/lapackgen/cdecl"
	"github.com/wippyai/lapackgen/errors"
)

// SafeParam is one parameter of the generated wrapper.
type SafeParam struct {
	Name string
	Type string // Go type
}

// Signature maps the raw parameter list to the safe-facing one. Output
// length and order equal the input's; order drives the positional call
// at the raw boundary.
//
// Constant array pointees still come out as plain slices: Go slices
// carry no const qualifier, and the constness survives in the prototype
// preserved alongside the wrapper.
func Signature(d *cdecl.Decl) ([]SafeParam, error) {
	params := make([]SafeParam, 0, len(d.Params))
	for _, p := range d.Params {
		var typ string
		cat := Classify(p.Name)
		switch cat {
		case CategoryStatus:
			// The status slot is always a 32-bit signed integer on the
			// safe side, whatever width the prototype declares.
			typ = "*int32"
		case CategoryArray:
			t, ok := ctypes[p.Ptr.Pointee]
			if !ok {
				return nil, errors.UnknownType(d.Name, p.Name, p.Ptr.Pointee)
			}
			typ = "[]" + t.Go
		default:
			t, ok := ctypes[p.Ptr.Pointee]
			if !ok {
				return nil, errors.UnknownType(d.Name, p.Name, p.Ptr.Pointee)
			}
			typ = t.Go
		}

		debugf("classified %s.%s as %s -> %s", d.Name, p.Name, cat, typ)
		params = append(params, SafeParam{Name: p.Name, Type: typ})
	}
	return params, nil
}

// Return maps the declaration's return type onto the wrapper's, "" for
// void. Raw return values are plain values, never pointers, so the map
// is the same pointee table the parameters use.
func Return(d *cdecl.Decl) (string, error) {
	if d.Return == "" {
		return "", nil
	}
	t, ok := ctypes[d.Return]
	if !ok {
		return "", errors.UnknownType(d.Name, "", d.Return)
	}
	return t.Go, nil
}
