/*
File: cc/asmgen/lower.go
*/
package asmgen

import (
	"fmt"

	"github.com/go-mini-cc/cc/ir"
)

// Lower translates three-address IR into virtual assembly: legal
// instruction shapes, but operands may still be Pseudo and a frame has
// not yet been allocated. See the pass_*.go files for what turns this
// into concrete assembly.
func Lower(prog *ir.Program) *Program {
	var instrs []Instruction
	for _, in := range prog.Func.Instrs {
		instrs = append(instrs, lowerInstr(in)...)
	}
	return &Program{Func: Function{Name: prog.Func.Name, Instrs: instrs}}
}

func lowerInstr(in ir.Instruction) []Instruction {
	switch i := in.(type) {
	case ir.ReturnInstr:
		return []Instruction{
			MovInstr{Src: lowerValue(i.Value), Dst: Reg{Register: AX}},
			RetInstr{},
		}

	case ir.UnaryInstr:
		dst := lowerValue(i.Dst)
		return []Instruction{
			MovInstr{Src: lowerValue(i.Src), Dst: dst},
			UnaryOpInstr{Op: lowerUnOp(i.Op), Operand: dst},
		}

	case ir.BinaryInstr:
		return lowerBinaryInstr(i)
	}
	panic(fmt.Sprintf("asmgen: unreachable IR instruction kind %T", in))
}

func lowerBinaryInstr(i ir.BinaryInstr) []Instruction {
	switch i.Op {
	case ir.Div:
		return []Instruction{
			MovInstr{Src: lowerValue(i.A), Dst: Reg{Register: AX}},
			CdqInstr{},
			IdivInstr{Divisor: lowerValue(i.B)},
			MovInstr{Src: Reg{Register: AX}, Dst: lowerValue(i.Dst)},
		}
	case ir.Mod:
		return []Instruction{
			MovInstr{Src: lowerValue(i.A), Dst: Reg{Register: AX}},
			CdqInstr{},
			IdivInstr{Divisor: lowerValue(i.B)},
			MovInstr{Src: Reg{Register: DX}, Dst: lowerValue(i.Dst)},
		}
	default:
		dst := lowerValue(i.Dst)
		return []Instruction{
			MovInstr{Src: lowerValue(i.A), Dst: dst},
			BinaryInstr{Op: lowerBinOp(i.Op), Src: lowerValue(i.B), Dst: dst},
		}
	}
}

func lowerValue(v ir.Value) Operand {
	switch val := v.(type) {
	case ir.Constant:
		return Imm{Value: val.Value}
	case ir.Variable:
		return Pseudo{Name: val.PseudoName()}
	}
	panic(fmt.Sprintf("asmgen: unreachable IR value kind %T", v))
}

func lowerUnOp(op ir.UnOp) UnaryOp {
	switch op {
	case ir.Negate:
		return Neg
	case ir.Complement:
		return Not
	}
	panic("asmgen: unreachable IR unary operator")
}

func lowerBinOp(op ir.BinOp) BinaryOp {
	switch op {
	case ir.Add:
		return Add
	case ir.Sub:
		return Sub
	case ir.Mul:
		return Mul
	case ir.Shl:
		return Sal
	case ir.Shr:
		return Sar
	case ir.And:
		return And
	case ir.Or:
		return Or
	case ir.Xor:
		return Xor
	}
	panic("asmgen: unreachable IR binary operator")
}
