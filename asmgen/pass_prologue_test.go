/*
File: cc/asmgen/pass_prologue_test.go
*/
package asmgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertPrologue_UsesMaxStackOffsetSeen(t *testing.T) {
	fn := Function{Name: "main", Instrs: []Instruction{
		MovInstr{Src: Imm{Value: 2}, Dst: Stack{Offset: 4}},
		MovInstr{Src: Stack{Offset: 4}, Dst: Stack{Offset: 8}},
		UnaryOpInstr{Op: Not, Operand: Stack{Offset: 12}},
	}}
	out := insertPrologue(fn)
	alloc, ok := out.Instrs[0].(AllocateStackInstr)
	require.True(t, ok)
	assert.EqualValues(t, 12, alloc.Bytes)
}

func TestInsertPrologue_NoStackUseYieldsZero(t *testing.T) {
	fn := Function{Name: "main", Instrs: []Instruction{
		MovInstr{Src: Imm{Value: 2}, Dst: Reg{Register: AX}},
		RetInstr{},
	}}
	out := insertPrologue(fn)
	alloc := out.Instrs[0].(AllocateStackInstr)
	assert.EqualValues(t, 0, alloc.Bytes)
	require.Len(t, out.Instrs, 3)
}

func TestInsertPrologue_ScansIdivAndBinaryOperands(t *testing.T) {
	fn := Function{Name: "main", Instrs: []Instruction{
		IdivInstr{Divisor: Stack{Offset: 20}},
		BinaryInstr{Op: Add, Src: Stack{Offset: 4}, Dst: Stack{Offset: 16}},
	}}
	out := insertPrologue(fn)
	alloc := out.Instrs[0].(AllocateStackInstr)
	assert.EqualValues(t, 20, alloc.Bytes)
}
