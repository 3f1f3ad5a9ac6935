/*
File: cc/parser/parser.go
*/
package parser

import (
	"strconv"

	"github.com/go-mini-cc/cc/lexer"
)

// Parse consumes the entire token stream and returns the single function
// it describes. Every error in this package is fatal: rather than
// threading an error return through every recursive call, parsing
// functions panic with one of the typed errors in errors.go, and the
// caller (normally main, via a single top-level recover) treats the panic
// as the whole compilation's failure. This keeps the grammar functions
// themselves pure, total functions from cursor state to AST.
//
//	program    := function
//	function   := "int" identifier "(" ( "void" )? ")" "{" statement "}"
//	statement  := "return" expression ";"
func Parse(tokens []lexer.Token) *Program {
	c := newCursor(tokens)
	fn := parseFunction(c)
	if !c.done() {
		panic(&TrailingError{Token: c.peek()})
	}
	return &Program{Func: *fn}
}

func parseFunction(c *cursor) *Function {
	c.expectKeyword(lexer.KeywordInt, "int")

	name := c.expect(lexer.Identifier)

	c.expect(lexer.LeftParen)
	if c.peek().Kind == lexer.KeywordVoid {
		c.advance()
	}
	c.expect(lexer.RightParen)

	c.expect(lexer.LeftBrace)
	body := parseReturnStatement(c)
	c.expect(lexer.RightBrace)

	return &Function{Name: name.Literal, Body: body}
}

func parseReturnStatement(c *cursor) *ReturnStmt {
	c.expectKeyword(lexer.KeywordReturn, "return")
	value := parseExpression(c, minPrecedence)
	c.expect(lexer.Semicolon)
	return &ReturnStmt{Value: value}
}

// parseExpression implements precedence climbing:
//
//	expression(p) := primary { binop(>=p) expression(prec(binop)+1) }
//
// All ten binary operators are left-associative, which falls out of this
// algorithm directly: after folding one infix operator into `left`, the
// loop immediately looks for the next one at the same minimum precedence
// rather than recursing again at the same level.
func parseExpression(c *cursor, minPrec int) Expression {
	left := parsePrimary(c)

	for {
		op, prec, tokenCount, ok := binaryOperatorAt(c)
		if !ok || prec < minPrec {
			break
		}
		for i := 0; i < tokenCount; i++ {
			c.advance()
		}
		right := parseExpression(c, prec+1)
		left = &BinaryExpr{Op: op, Left: left, Right: right}
	}

	return left
}

// parsePrimary handles everything that can stand on its own or bind a
// prefix operator: constants, `~`/`-` applied to another primary, and
// parenthesized expressions.
//
//	primary := constant
//	         | "~" primary
//	         | "-" primary
//	         | "(" expression ")"
func parsePrimary(c *cursor) Expression {
	tok := c.peek()

	switch tok.Kind {
	case lexer.Constant:
		c.advance()
		value, err := strconv.ParseInt(tok.Literal, 10, 32)
		if err != nil {
			// The lexer only ever emits a Constant token after verifying
			// it parses as a signed 32-bit integer (see lexer.classify),
			// so this is unreachable on any token stream this package's
			// own lexer produced.
			panic(&ExpressionError{Token: tok})
		}
		return &ConstantExpr{Value: int32(value)}

	case lexer.Tilde:
		c.advance()
		return &UnaryExpr{Op: Complement, Operand: parsePrimary(c)}

	case lexer.Hyphen:
		c.advance()
		return &UnaryExpr{Op: Negation, Operand: parsePrimary(c)}

	case lexer.LeftParen:
		c.advance()
		inner := parseExpression(c, minPrecedence)
		c.expect(lexer.RightParen)
		return inner

	default:
		panic(&ExpressionError{Token: tok})
	}
}
