package cdecl

import (
	"fmt"
	"strings"

	"github.com/wippyai/lapackgen/cdecl/internal/token"
	"github.com/wippyai/lapackgen/errors"
)

// Parse extracts the single declaration from one extern "C" block.
// Anything other than exactly one block holding exactly one prototype is
// a structural error: the block is the unit of transformation, and
// malformed input means the generator was invoked on the wrong source,
// not that a declaration should be skipped.
func Parse(src string) (*Decl, error) {
	p := &parser{tokens: token.Tokenize(src)}
	d, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t != nil {
		return nil, errors.Structural(t.Line, fmt.Sprintf("unexpected %q after extern block", t.Value))
	}
	return d, nil
}

// ParseAll extracts declarations from a header holding any number of
// extern "C" blocks. Blocks are independent, but one malformed block
// fails the whole parse; there is no partial result.
func ParseAll(src string) ([]*Decl, error) {
	p := &parser{tokens: token.Tokenize(src)}

	var decls []*Decl
	for p.peek() != nil {
		d, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		decls = append(decls, d)
	}
	if len(decls) == 0 {
		return nil, errors.Structural(0, `no extern "C" block found`)
	}
	return decls, nil
}

type parser struct {
	tokens []token.Token
	pos    int
}

func (p *parser) peek() *token.Token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	return &p.tokens[p.pos]
}

func (p *parser) next() *token.Token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	t := &p.tokens[p.pos]
	p.pos++
	return t
}

// line reports the current source line for diagnostics.
func (p *parser) line() int {
	if t := p.peek(); t != nil {
		return t.Line
	}
	if len(p.tokens) > 0 {
		return p.tokens[len(p.tokens)-1].Line
	}
	return 0
}

func (p *parser) expect(typ token.Type) (*token.Token, error) {
	t := p.next()
	if t == nil {
		return nil, errors.Structural(p.line(), "unexpected end of input")
	}
	if t.Type != typ {
		return nil, errors.Structural(t.Line, fmt.Sprintf("expected %v, got %q", typ, t.Value))
	}
	return t, nil
}

// parseBlock parses `extern "C" { <one prototype> }`.
func (p *parser) parseBlock() (*Decl, error) {
	t, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	if t.Value != "extern" {
		return nil, errors.Structural(t.Line, fmt.Sprintf(`expected "extern", got %q`, t.Value))
	}
	t, err = p.expect(token.String)
	if err != nil {
		return nil, err
	}
	if t.Value != "C" {
		return nil, errors.Structural(t.Line, fmt.Sprintf(`expected "C" linkage, got %q`, t.Value))
	}
	if _, err := p.expect(token.LBrace); err != nil {
		return nil, err
	}

	d, err := p.parseProto()
	if err != nil {
		return nil, err
	}

	t = p.next()
	if t == nil {
		return nil, errors.Structural(p.line(), "unterminated extern block")
	}
	if t.Type != token.RBrace {
		return nil, errors.Structural(t.Line, "extern block must hold exactly one declaration")
	}
	return d, nil
}

// parseProto parses `<ret> <name>(<params>);`.
func (p *parser) parseProto() (*Decl, error) {
	ret, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t != nil && t.Type == token.Star {
		return nil, errors.Shape("", "", "pointer return types are not part of the raw API surface")
	}
	name, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}

	d := &Decl{Name: name.Value}
	if ret.Value != "void" {
		d.Return = ret.Value
	}

	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	if err := p.parseParams(d); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semi); err != nil {
		return nil, err
	}
	return d, nil
}

func (p *parser) parseParams(d *Decl) error {
	// Empty list, `()` or `(void)`.
	if t := p.peek(); t != nil && t.Type == token.RParen {
		p.next()
		return nil
	}
	if t := p.peek(); t != nil && t.Type == token.Ident && t.Value == "void" {
		p.next()
		_, err := p.expect(token.RParen)
		return err
	}

	for {
		param, err := p.parseParam(d.Name)
		if err != nil {
			return err
		}
		d.Params = append(d.Params, param)

		t := p.next()
		if t == nil {
			return errors.Structural(p.line(), "unterminated parameter list")
		}
		if t.Type == token.RParen {
			return nil
		}
		if t.Type != token.Comma {
			return errors.Structural(t.Line, fmt.Sprintf("expected ',' or ')', got %q", t.Value))
		}
	}
}

// parseParam parses `[const] <type> [const] * [const] <name>` and
// classifies the pointer. Every raw parameter must be a plain identifier
// bound to a pointer to a simple named type; all other shapes are fatal.
func (p *parser) parseParam(decl string) (Param, error) {
	var (
		isConst bool
		words   []string
	)

	// Qualifiers and type words up to the first '*'. A non-pointer
	// parameter like `int n` lands here as two words and is rejected
	// below once no star shows up.
	for {
		t := p.peek()
		if t == nil {
			return Param{}, errors.Structural(p.line(), "unterminated parameter list")
		}
		if t.Type != token.Ident || !isIdentifier(t.Value) {
			break
		}
		if t.Value == "const" {
			isConst = true
		} else {
			words = append(words, t.Value)
		}
		p.next()
	}
	if len(words) == 0 {
		t := p.peek()
		return Param{}, errors.Structural(t.Line, fmt.Sprintf("expected parameter type, got %q", t.Value))
	}

	stars := 0
	for t := p.peek(); t != nil && t.Type == token.Star; t = p.peek() {
		stars++
		p.next()
		// `T *const name` makes the pointer itself const; the pointee
		// qualifier is what classification cares about, so skip it.
		if q := p.peek(); q != nil && q.Type == token.Ident && q.Value == "const" {
			p.next()
		}
	}
	switch {
	case stars == 0:
		name := ""
		if len(words) > 1 {
			name = words[len(words)-1]
		}
		return Param{}, errors.Shape(decl, name, "parameter is not a pointer")
	case stars > 1:
		return Param{}, errors.Unsupported(decl, "",
			fmt.Sprintf("pointer to pointer to %q is not supported", words[0]))
	}
	if len(words) > 1 {
		return Param{}, errors.Unsupported(decl, "",
			fmt.Sprintf("%q is not a simple named type", strings.Join(words, " ")))
	}
	pointee := words[0]

	t := p.peek()
	if t == nil {
		return Param{}, errors.Structural(p.line(), "unterminated parameter list")
	}
	if t.Type != token.Ident || !isIdentifier(t.Value) {
		return Param{}, errors.Shape(decl, "", "parameter must be bound to a plain identifier")
	}
	name := t.Value
	p.next()

	if b := p.peek(); b != nil && b.Type == token.Ident && b.Value == "[" {
		return Param{}, errors.Unsupported(decl, name, "array declarators are not supported")
	}

	return Param{Name: name, Ptr: Pointer{Pointee: pointee, Const: isConst}}, nil
}

// isIdentifier rejects the one-rune fallback tokens the tokenizer emits
// for characters it has no class for (brackets, punctuation).
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
