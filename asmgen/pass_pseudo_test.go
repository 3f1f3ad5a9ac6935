/*
File: cc/asmgen/pass_pseudo_test.go
*/
package asmgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEliminatePseudos_AssignsDistinctOffsetsInFirstOccurrenceOrder(t *testing.T) {
	fn := Function{Name: "main", Instrs: []Instruction{
		MovInstr{Src: Imm{Value: 2}, Dst: Pseudo{Name: "unary.0"}},
		UnaryOpInstr{Op: Neg, Operand: Pseudo{Name: "unary.0"}},
		MovInstr{Src: Pseudo{Name: "unary.0"}, Dst: Pseudo{Name: "unary.1"}},
		UnaryOpInstr{Op: Not, Operand: Pseudo{Name: "unary.1"}},
	}}
	out := eliminatePseudos(fn)

	mov0 := out.Instrs[0].(MovInstr)
	assert.Equal(t, Stack{Offset: 4}, mov0.Dst)

	op0 := out.Instrs[1].(UnaryOpInstr)
	assert.Equal(t, Stack{Offset: 4}, op0.Operand)

	mov1 := out.Instrs[2].(MovInstr)
	assert.Equal(t, Stack{Offset: 4}, mov1.Src)
	assert.Equal(t, Stack{Offset: 8}, mov1.Dst)
}

func TestEliminatePseudos_NoPseudoSurvives(t *testing.T) {
	fn := Function{Name: "main", Instrs: []Instruction{
		MovInstr{Src: Imm{Value: 5}, Dst: Pseudo{Name: "a.0"}},
		BinaryInstr{Op: Add, Src: Imm{Value: 1}, Dst: Pseudo{Name: "a.0"}},
		IdivInstr{Divisor: Pseudo{Name: "a.0"}},
	}}
	out := eliminatePseudos(fn)
	for _, in := range out.Instrs {
		switch ins := in.(type) {
		case MovInstr:
			_, srcIsPseudo := ins.Src.(Pseudo)
			_, dstIsPseudo := ins.Dst.(Pseudo)
			require.False(t, srcIsPseudo)
			require.False(t, dstIsPseudo)
		case BinaryInstr:
			_, dstIsPseudo := ins.Dst.(Pseudo)
			require.False(t, dstIsPseudo)
		case IdivInstr:
			_, isPseudo := ins.Divisor.(Pseudo)
			require.False(t, isPseudo)
		}
	}
}

func TestEliminatePseudos_SameNameReusesSameOffset(t *testing.T) {
	fn := Function{Name: "main", Instrs: []Instruction{
		MovInstr{Src: Imm{Value: 1}, Dst: Pseudo{Name: "x.0"}},
		BinaryInstr{Op: Add, Src: Imm{Value: 2}, Dst: Pseudo{Name: "x.0"}},
	}}
	out := eliminatePseudos(fn)
	mov := out.Instrs[0].(MovInstr)
	bin := out.Instrs[1].(BinaryInstr)
	assert.Equal(t, mov.Dst, bin.Dst)
}
