package wrap

import (
	"fmt"
	"strings"

	"github.com/wippyai/lapackgen/cdecl"
)

// Name derives the wrapper's identifier: the raw identifier with all
// trailing underscores stripped and nothing else. An identifier without
// a trailing underscore passes through unchanged.
func Name(raw string) string {
	return strings.TrimRight(raw, "_")
}

// Wrap assembles the wrapper function source for one raw declaration:
// the safe signature, the prologue conversions, and exactly one call to
// the raw symbol. The caller is responsible for emitting the preserved
// prototype alongside it.
func Wrap(d *cdecl.Decl) (string, error) {
	sig, err := Signature(d)
	if err != nil {
		return "", err
	}
	args, err := Call(d)
	if err != nil {
		return "", err
	}
	ret, err := Return(d)
	if err != nil {
		return "", err
	}
	name := Name(d.Name)

	var b strings.Builder
	fmt.Fprintf(&b, "// %s calls the raw %s routine.\n", name, d.Name)
	b.WriteString("//\n")
	b.WriteString("// Unsafe: slice lengths are not validated against the dimension and\n")
	b.WriteString("// stride arguments; the caller must guarantee they are consistent.\n")

	fmt.Fprintf(&b, "func %s(", name)
	for i, p := range sig {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
		b.WriteByte(' ')
		b.WriteString(p.Type)
	}
	b.WriteByte(')')
	if ret != "" {
		b.WriteByte(' ')
		b.WriteString(ret)
	}
	b.WriteString(" {\n")

	exprs := make([]string, len(args))
	for i, a := range args {
		if a.Prologue != "" {
			b.WriteByte('\t')
			b.WriteString(a.Prologue)
			b.WriteByte('\n')
		}
		exprs[i] = a.Expr
	}

	call := fmt.Sprintf("C.%s(%s)", d.Name, strings.Join(exprs, ", "))
	if ret != "" {
		fmt.Fprintf(&b, "\treturn %s(%s)\n", ret, call)
	} else {
		b.WriteByte('\t')
		b.WriteString(call)
		b.WriteByte('\n')
	}
	b.WriteString("}\n")

	debugf("wrapped %s as %s (%d parameters)", d.Name, name, len(sig))
	return b.String(), nil
}
