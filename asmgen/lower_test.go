/*
File: cc/asmgen/lower_test.go
*/
package asmgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-mini-cc/cc/ir"
)

func TestLower_ReturnConstantMovesIntoEAXThenRets(t *testing.T) {
	prog := &ir.Program{Func: ir.Function{Name: "main", Instrs: []ir.Instruction{
		ir.ReturnInstr{Value: ir.Constant{Value: 2}},
	}}}
	asm := Lower(prog)
	require.Len(t, asm.Func.Instrs, 2)
	mov := asm.Func.Instrs[0].(MovInstr)
	assert.Equal(t, Imm{Value: 2}, mov.Src)
	assert.Equal(t, Reg{Register: AX}, mov.Dst)
	_, ok := asm.Func.Instrs[1].(RetInstr)
	assert.True(t, ok)
}

func TestLower_UnaryExpandsToMovThenOp(t *testing.T) {
	dst := ir.Variable{Name: "unary", Version: 0}
	prog := &ir.Program{Func: ir.Function{Name: "main", Instrs: []ir.Instruction{
		ir.UnaryInstr{Op: ir.Negate, Src: ir.Constant{Value: 2}, Dst: dst},
	}}}
	asm := Lower(prog)
	require.Len(t, asm.Func.Instrs, 2)
	mov := asm.Func.Instrs[0].(MovInstr)
	assert.Equal(t, Imm{Value: 2}, mov.Src)
	assert.Equal(t, Pseudo{Name: "unary.0"}, mov.Dst)
	op := asm.Func.Instrs[1].(UnaryOpInstr)
	assert.Equal(t, Neg, op.Op)
	assert.Equal(t, Pseudo{Name: "unary.0"}, op.Operand)
}

func TestLower_DivReadsQuotientFromEAX(t *testing.T) {
	dst := ir.Variable{Name: "QuotientOf4And5", Version: 0}
	prog := &ir.Program{Func: ir.Function{Name: "main", Instrs: []ir.Instruction{
		ir.BinaryInstr{Op: ir.Div, A: ir.Constant{Value: 4}, B: ir.Constant{Value: 5}, Dst: dst},
	}}}
	asm := Lower(prog)
	require.Len(t, asm.Func.Instrs, 4)
	assert.Equal(t, MovInstr{Src: Imm{Value: 4}, Dst: Reg{Register: AX}}, asm.Func.Instrs[0])
	_, isCdq := asm.Func.Instrs[1].(CdqInstr)
	assert.True(t, isCdq)
	assert.Equal(t, IdivInstr{Divisor: Imm{Value: 5}}, asm.Func.Instrs[2])
	assert.Equal(t, MovInstr{Src: Reg{Register: AX}, Dst: Pseudo{Name: "QuotientOf4And5.0"}}, asm.Func.Instrs[3])
}

func TestLower_ModReadsRemainderFromEDX(t *testing.T) {
	dst := ir.Variable{Name: "RemainderOf6And7", Version: 0}
	prog := &ir.Program{Func: ir.Function{Name: "main", Instrs: []ir.Instruction{
		ir.BinaryInstr{Op: ir.Mod, A: ir.Constant{Value: 6}, B: ir.Constant{Value: 7}, Dst: dst},
	}}}
	asm := Lower(prog)
	last := asm.Func.Instrs[3].(MovInstr)
	assert.Equal(t, Reg{Register: DX}, last.Src)
}

func TestLower_OtherBinaryMovesLeftIntoDstThenAppliesOp(t *testing.T) {
	dst := ir.Variable{Name: "SumOf1And2", Version: 0}
	prog := &ir.Program{Func: ir.Function{Name: "main", Instrs: []ir.Instruction{
		ir.BinaryInstr{Op: ir.Add, A: ir.Constant{Value: 1}, B: ir.Constant{Value: 2}, Dst: dst},
	}}}
	asm := Lower(prog)
	require.Len(t, asm.Func.Instrs, 2)
	assert.Equal(t, MovInstr{Src: Imm{Value: 1}, Dst: Pseudo{Name: "SumOf1And2.0"}}, asm.Func.Instrs[0])
	assert.Equal(t, BinaryInstr{Op: Add, Src: Imm{Value: 2}, Dst: Pseudo{Name: "SumOf1And2.0"}}, asm.Func.Instrs[1])
}
