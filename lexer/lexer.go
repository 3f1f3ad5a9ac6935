/*
File: cc/lexer/lexer.go
*/
package lexer

import (
	"fmt"
	"strconv"
)

// LexicalError is raised, as a panic value, the first time a lexeme fails
// to match any token rule (§4.1/§7 of the source specification this
// compiler follows).
type LexicalError struct {
	Text string
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("%s should be one of the known lexical token types", e.Text)
}

// Lexer scans source text byte by byte, tracking only the cursor position
// it needs: there is no line/column bookkeeping because diagnostics in
// this grammar never carry source locations (errors name the offending
// construct instead).
type Lexer struct {
	src string
	pos int
}

// New creates a Lexer positioned at the start of src. Lex builds its own
// Lexer with New.
func New(src string) *Lexer {
	return &Lexer{src: src}
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

func (l *Lexer) current() byte {
	return l.src[l.pos]
}

func (l *Lexer) advance() byte {
	c := l.src[l.pos]
	l.pos++
	return c
}

func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isWordChar(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

// skipWhitespace consumes a maximal run of whitespace.
func (l *Lexer) skipWhitespace() {
	for !l.atEnd() && isWhitespace(l.current()) {
		l.advance()
	}
}

// readWord consumes a maximal run of identifier/digit characters. The
// result may be a valid Constant, a valid Identifier/Keyword, or neither
// (e.g. "123bar"), which classify resolves.
func (l *Lexer) readWord() string {
	start := l.pos
	for !l.atEnd() && isWordChar(l.current()) {
		l.advance()
	}
	return l.src[start:l.pos]
}

// classify turns a word-shaped lexeme into its token, or panics with a
// LexicalError if the text matches neither the constant nor the
// identifier pattern (spec §3/§4.1).
func classify(word string) Token {
	if isDigit(word[0]) {
		if _, err := strconv.ParseInt(word, 10, 32); err != nil {
			panic(&LexicalError{Text: word})
		}
		return Token{Kind: Constant, Literal: word}
	}

	// word consists solely of [A-Za-z0-9_] and doesn't start with a
	// digit, so by construction it already matches
	// [A-Za-z_][A-Za-z0-9_]*.
	if kind, ok := keywords[word]; ok {
		return Token{Kind: kind, Literal: word}
	}
	return Token{Kind: Identifier, Literal: word}
}

// Lex tokenizes the entire source text, returning the token stream
// terminated by a single EOF token. It panics with a *LexicalError at the
// first lexeme that matches no token rule.
//
// Two consecutive '-' characters always yield two Hyphen tokens, never a
// single "--" token: the lexer has no multi-character rule for '-' at all
// (its only rules are the maximal-munch word rule and the single-character
// fallback), so "--" and "- -" are lexically identical by construction.
func Lex(src string) []Token {
	l := New(src)
	var tokens []Token

	for {
		l.skipWhitespace()
		if l.atEnd() {
			tokens = append(tokens, Token{Kind: EOF})
			return tokens
		}

		c := l.current()
		if isWordChar(c) {
			tokens = append(tokens, classify(l.readWord()))
			continue
		}

		l.advance()
		kind, ok := punctuation[c]
		if !ok {
			panic(&LexicalError{Text: string(c)})
		}
		tokens = append(tokens, Token{Kind: kind, Literal: string(c)})
	}
}
