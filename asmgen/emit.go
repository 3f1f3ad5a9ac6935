/*
File: cc/asmgen/emit.go
*/
package asmgen

import (
	"fmt"
	"strings"
)

// Emit renders a fully rewritten Program as GAS text for x86-64 Linux.
// prog must already have passed through Rewrite; a surviving Pseudo
// operand panics with an *InternalError.
func Emit(prog *Program) string {
	var b strings.Builder
	fn := prog.Func

	fmt.Fprintf(&b, "  .globl %s\n", fn.Name)
	fmt.Fprintf(&b, "%s:\n", fn.Name)
	b.WriteString("  pushq %rbp\n")
	b.WriteString("  movq %rsp, %rbp\n")

	for _, in := range fn.Instrs {
		emitInstr(&b, in)
	}

	b.WriteString(".section .note.GNU-stack,\"\",@progbits\n")
	return b.String()
}

func emitInstr(b *strings.Builder, in Instruction) {
	switch ins := in.(type) {
	case AllocateStackInstr:
		fmt.Fprintf(b, "  subq $%d, %%rsp\n", ins.Bytes)

	case MovInstr:
		fmt.Fprintf(b, "  movl %s, %s\n", operand(ins.Src), operand(ins.Dst))

	case UnaryOpInstr:
		mnemonic := map[UnaryOp]string{Neg: "negl", Not: "notl"}[ins.Op]
		fmt.Fprintf(b, "  %s %s\n", mnemonic, operand(ins.Operand))

	case BinaryInstr:
		mnemonic := map[BinaryOp]string{
			Add: "addl", Sub: "subl", Mul: "imull",
			And: "andl", Or: "orl", Xor: "xorl",
			Sal: "sall", Sar: "sarl",
		}[ins.Op]
		fmt.Fprintf(b, "  %s %s, %s\n", mnemonic, operand(ins.Src), operand(ins.Dst))

	case IdivInstr:
		fmt.Fprintf(b, "  idivl %s\n", operand(ins.Divisor))

	case CdqInstr:
		b.WriteString("  cdq\n")

	case RetInstr:
		b.WriteString("  movq %rbp, %rsp\n")
		b.WriteString("  popq %rbp\n")
		b.WriteString("  ret\n")

	default:
		panic(internalf("asmgen: unreachable concrete instruction kind %T", in))
	}
}

var registerNames = map[Register]string{
	AX:  "%eax",
	DX:  "%edx",
	R10: "%r10d",
	R11: "%r11d",
	CX:  "%ecx",
	CL:  "%cl",
}

func operand(op Operand) string {
	switch o := op.(type) {
	case Imm:
		return fmt.Sprintf("$%d", o.Value)
	case Reg:
		return registerNames[o.Register]
	case Stack:
		return fmt.Sprintf("-%d(%%rbp)", o.Offset)
	case Pseudo:
		panic(internalf("asmgen: Pseudo(%s) reached the emitter", o.Name))
	}
	panic(internalf("asmgen: unreachable operand kind %T", op))
}
