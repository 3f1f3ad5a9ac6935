/*
File: cc/asmgen/pipeline.go
*/
package asmgen

// Rewrite carries a virtual-assembly program (as produced by Lower)
// through the three rewriting passes in order, producing concrete
// assembly with no remaining Pseudo operands, a prepended frame
// allocation, and only legal operand pairings.
func Rewrite(prog *Program) *Program {
	fn := prog.Func
	fn = eliminatePseudos(fn)
	fn = insertPrologue(fn)
	fn = fixupOperands(fn)
	return &Program{Func: fn}
}
