/*
File: cc/lexer/token.go
*/

// Package lexer tokenizes preprocessed C source text into the small fixed
// set of tokens this compiler's grammar needs: identifiers, integer
// constants, the three reserved keywords, and single-character punctuation.
package lexer

import "fmt"

// Kind classifies a Token. Unlike a general-purpose language lexer, this
// one never needs multi-character operator tokens: the parser recognizes
// `<<`/`>>` itself from two consecutive single-character tokens (see the
// parser package), so the lexer's token set stays flat.
type Kind int

const (
	// EOF marks the end of the token stream. The lexer always appends
	// exactly one EOF token so cursors never need a separate "have we
	// run out" check.
	EOF Kind = iota

	Identifier
	Constant

	KeywordInt
	KeywordReturn
	KeywordVoid

	LeftParen
	RightParen
	LeftBrace
	RightBrace
	Semicolon

	Tilde
	Hyphen
	Plus
	Star
	Slash
	Percent
	Amp
	Pipe
	Caret
	LessThan
	GreaterThan
)

// kindNames gives each Kind a short, human-readable name used both for
// debugging and for rendering the "Expected X but found Y" family of
// parse errors.
var kindNames = map[Kind]string{
	EOF:           "EOF",
	Identifier:    "Identifier",
	Constant:      "Constant",
	KeywordInt:    "Keyword",
	KeywordReturn: "Keyword",
	KeywordVoid:   "Keyword",
	LeftParen:     "LeftParen",
	RightParen:    "RightParen",
	LeftBrace:     "LeftBrace",
	RightBrace:    "RightBrace",
	Semicolon:     "Semicolon",
	Tilde:         "Tilde",
	Hyphen:        "Hyphen",
	Plus:          "Plus",
	Star:          "Star",
	Slash:         "Slash",
	Percent:       "Percent",
	Amp:           "Amp",
	Pipe:          "Pipe",
	Caret:         "Caret",
	LessThan:      "LessThan",
	GreaterThan:   "GreaterThan",
}

// String renders the kind's name, falling back to a numeric form for any
// value outside the known set (which should never happen in practice).
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// keywords maps the three reserved words to their keyword kinds. Any other
// identifier-shaped lexeme is a plain Identifier.
var keywords = map[string]Kind{
	"int":    KeywordInt,
	"return": KeywordReturn,
	"void":   KeywordVoid,
}

// punctuation maps every single punctuation character this grammar uses to
// its token kind.
var punctuation = map[byte]Kind{
	'(': LeftParen,
	')': RightParen,
	'{': LeftBrace,
	'}': RightBrace,
	';': Semicolon,
	'~': Tilde,
	'-': Hyphen,
	'+': Plus,
	'*': Star,
	'/': Slash,
	'%': Percent,
	'&': Amp,
	'|': Pipe,
	'^': Caret,
	'<': LessThan,
	'>': GreaterThan,
}

// Token is a single lexeme: its kind plus, where the kind alone doesn't
// determine it, the source text it came from.
type Token struct {
	Kind    Kind
	Literal string
}

// String renders a Token the way the parser's error messages quote it:
// Identifier and Constant (and keywords) show their literal text;
// punctuation and EOF just show their kind name.
func (t Token) String() string {
	switch t.Kind {
	case Identifier, Constant:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Literal)
	case KeywordInt, KeywordReturn, KeywordVoid:
		return fmt.Sprintf("Keyword(%q)", t.Literal)
	default:
		return t.Kind.String()
	}
}
