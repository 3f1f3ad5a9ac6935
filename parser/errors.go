/*
File: cc/parser/errors.go
*/
package parser

import (
	"fmt"

	"github.com/go-mini-cc/cc/lexer"
)

// ExpectedError is raised when the parser requires a specific token kind
// and finds something else (or runs out of input). Found is nil exactly
// when the stream was exhausted, rendering as "None" (spec §7).
type ExpectedError struct {
	Expected string
	Found    *lexer.Token
}

func (e *ExpectedError) Error() string {
	found := "None"
	if e.Found != nil {
		found = e.Found.String()
	}
	return fmt.Sprintf("Expected %s but found %s", e.Expected, found)
}

// TrailingError is raised when a complete program has been parsed but
// tokens remain in the stream (spec §4.2's "consumes the entire token
// stream" parser contract).
type TrailingError struct {
	Token lexer.Token
}

func (e *TrailingError) Error() string {
	return fmt.Sprintf("Parsed entire program but found extra content starting with token %s", e.Token)
}

// ExpressionError is raised when a token that cannot begin an expression
// is found where a primary expression is expected.
type ExpressionError struct {
	Token lexer.Token
}

func (e *ExpressionError) Error() string {
	return fmt.Sprintf("Invalid expression. Cannot begin with %s", e.Token)
}

// expected builds an *ExpectedError from the token actually found,
// mapping an EOF token to the "None" rendering.
func expected(wanted string, found lexer.Token) *ExpectedError {
	if found.Kind == lexer.EOF {
		return &ExpectedError{Expected: wanted}
	}
	f := found
	return &ExpectedError{Expected: wanted, Found: &f}
}
