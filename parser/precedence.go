/*
File: cc/parser/precedence.go
*/
package parser

import "github.com/go-mini-cc/cc/lexer"

// minPrecedence is the floor passed to the top-level call to
// parseExpression; every binary operator has a precedence at or above it.
const minPrecedence = 1

// binaryOperatorAt inspects the token(s) at the cursor and reports whether
// they start a binary operator, which one, its precedence (§4.2's table),
// and how many tokens it occupies (1 for everything except the two shift
// operators, which are two LessThan/GreaterThan tokens).
//
// `<` and `>` are never ordinary "not an operator, stop parsing"
// terminators: this grammar has no relational operators, so a lone `<` or
// `>` can only ever be half of `<<`/`>>`. A mismatched pairing (`<>` or
// `><`) is therefore always a fatal error here, reported as an
// ExpectedError naming the partner token that was required.
func binaryOperatorAt(c *cursor) (op BinOp, precedence int, tokenCount int, ok bool) {
	switch c.peek().Kind {
	case lexer.Star:
		return Mul, 6, 1, true
	case lexer.Slash:
		return Div, 6, 1, true
	case lexer.Percent:
		return Mod, 6, 1, true
	case lexer.Plus:
		return Add, 5, 1, true
	case lexer.Hyphen:
		return Sub, 5, 1, true
	case lexer.Amp:
		return And, 3, 1, true
	case lexer.Caret:
		return Xor, 2, 1, true
	case lexer.Pipe:
		return Or, 1, 1, true
	case lexer.LessThan:
		if c.at(1).Kind == lexer.LessThan {
			return Shl, 4, 2, true
		}
		panic(expected(lexer.LessThan.String(), c.at(1)))
	case lexer.GreaterThan:
		if c.at(1).Kind == lexer.GreaterThan {
			return Shr, 4, 2, true
		}
		panic(expected(lexer.GreaterThan.String(), c.at(1)))
	}
	return 0, 0, 0, false
}
