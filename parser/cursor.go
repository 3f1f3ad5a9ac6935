/*
File: cc/parser/cursor.go
*/
package parser

import (
	"fmt"

	"github.com/go-mini-cc/cc/lexer"
)

// cursor is a small, non-backtracking read head over the token stream. It
// supports lookahead at offsets 0 and 1 (everything the grammar in §4.2
// needs: one token of ordinary lookahead plus one more to recognize the
// two-token `<<`/`>>` shift operators) and destructive advance.
type cursor struct {
	tokens []lexer.Token
	pos    int
}

func newCursor(tokens []lexer.Token) *cursor {
	return &cursor{tokens: tokens}
}

// at returns the token `offset` positions ahead of the cursor, or the
// trailing EOF token if that runs past the end of the stream.
func (c *cursor) at(offset int) lexer.Token {
	idx := c.pos + offset
	if idx >= len(c.tokens) {
		return lexer.Token{Kind: lexer.EOF}
	}
	return c.tokens[idx]
}

func (c *cursor) peek() lexer.Token {
	return c.at(0)
}

// advance returns the current token and moves the cursor past it. Once
// past the end of the stream it keeps returning EOF without panicking,
// so callers never need a bounds check before a final peek.
func (c *cursor) advance() lexer.Token {
	tok := c.peek()
	if c.pos < len(c.tokens) {
		c.pos++
	}
	return tok
}

// done reports whether every non-EOF token has been consumed.
func (c *cursor) done() bool {
	return c.peek().Kind == lexer.EOF
}

// expect panics with an *ExpectedError unless the current token has the
// given kind, otherwise consuming and returning it.
func (c *cursor) expect(kind lexer.Kind) lexer.Token {
	tok := c.peek()
	if tok.Kind != kind {
		panic(expected(kind.String(), tok))
	}
	return c.advance()
}

// expectKeyword is like expect but for the three reserved-word kinds,
// whose kind alone renders as the generic "Keyword" name; this names the
// specific keyword expected instead, matching how a found keyword token
// renders (see Token.String).
func (c *cursor) expectKeyword(kind lexer.Kind, literal string) lexer.Token {
	tok := c.peek()
	if tok.Kind != kind {
		panic(expected(fmt.Sprintf("Keyword(%q)", literal), tok))
	}
	return c.advance()
}
