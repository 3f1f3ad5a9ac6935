/*
File: cc/ir/lower.go
*/
package ir

import "github.com/go-mini-cc/cc/parser"

// Lower translates a parsed source AST into the three-address IR.
func Lower(prog *parser.Program) *Program {
	seq := newNameSeq()
	instrs := lowerStatement(prog.Func.Body, seq)
	return &Program{Func: Function{Name: prog.Func.Name, Instrs: instrs}}
}

func lowerStatement(stmt parser.Statement, seq *nameSeq) []Instruction {
	ret, ok := stmt.(*parser.ReturnStmt)
	if !ok {
		panic("ir: unreachable statement kind")
	}
	instrs, value := lowerExpr(ret.Value, seq)
	return append(instrs, ReturnInstr{Value: value})
}

// lowerExpr flattens a (possibly nested) source expression into a
// straight-line instruction sequence, returning that sequence alongside
// the Value its last instruction (or the expression itself, if it's a
// bare constant) produces. seq is shared across the whole function being
// lowered so every minted destination gets a function-wide unique name
// (see freshUnaryDst/freshBinaryDst in mangle.go).
func lowerExpr(expr parser.Expression, seq *nameSeq) ([]Instruction, Value) {
	switch e := expr.(type) {
	case *parser.ConstantExpr:
		return nil, Constant{Value: e.Value}

	case *parser.UnaryExpr:
		instrs, operand := lowerExpr(e.Operand, seq)
		dst := freshUnaryDst(operand, seq)
		instrs = append(instrs, UnaryInstr{Op: lowerUnOp(e.Op), Src: operand, Dst: dst})
		return instrs, dst

	case *parser.BinaryExpr:
		leftInstrs, left := lowerExpr(e.Left, seq)
		rightInstrs, right := lowerExpr(e.Right, seq)

		instrs := make([]Instruction, 0, len(leftInstrs)+len(rightInstrs)+1)
		instrs = append(instrs, leftInstrs...)
		instrs = append(instrs, rightInstrs...)

		dst := freshBinaryDst(e.Op, left, right, seq)
		instrs = append(instrs, BinaryInstr{Op: lowerBinOp(e.Op), A: left, B: right, Dst: dst})
		return instrs, dst
	}

	panic("ir: unreachable expression kind")
}

func lowerUnOp(op parser.UnOp) UnOp {
	switch op {
	case parser.Negation:
		return Negate
	case parser.Complement:
		return Complement
	}
	panic("ir: unreachable unary operator")
}

func lowerBinOp(op parser.BinOp) BinOp {
	switch op {
	case parser.Add:
		return Add
	case parser.Sub:
		return Sub
	case parser.Mul:
		return Mul
	case parser.Div:
		return Div
	case parser.Mod:
		return Mod
	case parser.Shl:
		return Shl
	case parser.Shr:
		return Shr
	case parser.And:
		return And
	case parser.Or:
		return Or
	case parser.Xor:
		return Xor
	}
	panic("ir: unreachable binary operator")
}
