package cdecl

import "strings"

// Pointer classifies one parameter's pointer type: constant or mutable
// pointer to a simple named C type. Constness of the source pointer is
// preserved exactly, never inferred.
type Pointer struct {
	Pointee string // name of the pointed-to C type, e.g. "double"
	Const   bool
}

// String renders the pointer the way it appears in a prototype.
func (p Pointer) String() string {
	if p.Const {
		return "const " + p.Pointee + " *"
	}
	return p.Pointee + " *"
}

// Param is one raw parameter: a plain identifier bound to a pointer type.
type Param struct {
	Name string
	Ptr  Pointer
}

// Decl is a raw foreign declaration extracted from an extern "C" block.
// Params keep source order; the order is load-bearing for the positional
// call at the raw boundary. Return is the C return type name, "" for void.
type Decl struct {
	Name   string
	Params []Param
	Return string
}

// Prototype renders the declaration back to canonical C prototype text.
// This is what the generator preserves verbatim in the cgo preamble so
// the raw symbol and its wrapper are emitted side by side.
func (d *Decl) Prototype() string {
	var b strings.Builder

	ret := d.Return
	if ret == "" {
		ret = "void"
	}
	b.WriteString(ret)
	b.WriteByte(' ')
	b.WriteString(d.Name)
	b.WriteByte('(')
	for i, p := range d.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Ptr.String())
		b.WriteString(p.Name)
	}
	b.WriteString(");")

	return b.String()
}
