package token

import "unicode"

type Type int

const (
	LBrace Type = iota
	RBrace
	LParen
	RParen
	Star
	Comma
	Semi
	Ident
	String
)

func (t Type) String() string {
	switch t {
	case LBrace:
		return "'{'"
	case RBrace:
		return "'}'"
	case LParen:
		return "'('"
	case RParen:
		return "')'"
	case Star:
		return "'*'"
	case Comma:
		return "','"
	case Semi:
		return "';'"
	case Ident:
		return "identifier"
	case String:
		return "string"
	}
	return "unknown"
}

type Token struct {
	Value string
	Type  Type
	Line  int
}

// Tokenize splits C header text into tokens. Line comments, block
// comments, and preprocessor lines are skipped; lines are tracked for
// diagnostics.
func Tokenize(input string) []Token {
	var tokens []Token
	line := 1
	runes := []rune(input)

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if r == '\n' {
			line++
			continue
		}
		if unicode.IsSpace(r) {
			continue
		}

		// Line comment
		if r == '/' && i+1 < len(runes) && runes[i+1] == '/' {
			for i < len(runes) && runes[i] != '\n' {
				i++
			}
			line++
			continue
		}

		// Block comment
		if r == '/' && i+1 < len(runes) && runes[i+1] == '*' {
			i += 2
			for i+1 < len(runes) && !(runes[i] == '*' && runes[i+1] == '/') {
				if runes[i] == '\n' {
					line++
				}
				i++
			}
			i++
			continue
		}

		// Preprocessor line (#include, guards); continuations included
		if r == '#' {
			for i < len(runes) && runes[i] != '\n' {
				if runes[i] == '\\' && i+1 < len(runes) && runes[i+1] == '\n' {
					line++
					i++
				}
				i++
			}
			line++
			continue
		}

		switch r {
		case '{':
			tokens = append(tokens, Token{"{", LBrace, line})
			continue
		case '}':
			tokens = append(tokens, Token{"}", RBrace, line})
			continue
		case '(':
			tokens = append(tokens, Token{"(", LParen, line})
			continue
		case ')':
			tokens = append(tokens, Token{")", RParen, line})
			continue
		case '*':
			tokens = append(tokens, Token{"*", Star, line})
			continue
		case ',':
			tokens = append(tokens, Token{",", Comma, line})
			continue
		case ';':
			tokens = append(tokens, Token{";", Semi, line})
			continue
		}

		// String literal (the "C" linkage name)
		if r == '"' {
			start := i + 1
			i++
			for i < len(runes) && runes[i] != '"' {
				i++
			}
			tokens = append(tokens, Token{string(runes[start:i]), String, line})
			continue
		}

		// Identifier or keyword
		if r == '_' || unicode.IsLetter(r) {
			start := i
			for i < len(runes) {
				c := runes[i]
				if unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_' {
					i++
				} else {
					break
				}
			}
			tokens = append(tokens, Token{string(runes[start:i]), Ident, line})
			i--
			continue
		}

		// Anything else (e.g. [ ] for array declarators) is kept as a
		// one-rune identifier so the parser can reject it with context.
		tokens = append(tokens, Token{string(r), Ident, line})
	}

	return tokens
}
