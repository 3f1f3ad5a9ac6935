/*
File: cc/asmgen/pass_pseudo.go
*/
package asmgen

// eliminatePseudos replaces every Pseudo operand with a Stack slot.
// Distinct pseudo names are assigned distinct offsets in first-occurrence
// order, 4 bytes apart, starting at 4. The mapping is local to this pass
// and discarded once it returns.
func eliminatePseudos(fn Function) Function {
	offsets := map[string]int32{}
	next := int32(4)

	resolve := func(op Operand) Operand {
		p, ok := op.(Pseudo)
		if !ok {
			return op
		}
		off, ok := offsets[p.Name]
		if !ok {
			off = next
			offsets[p.Name] = off
			next += 4
		}
		return Stack{Offset: off}
	}

	instrs := make([]Instruction, len(fn.Instrs))
	for i, in := range fn.Instrs {
		switch ins := in.(type) {
		case MovInstr:
			instrs[i] = MovInstr{Src: resolve(ins.Src), Dst: resolve(ins.Dst)}
		case UnaryOpInstr:
			instrs[i] = UnaryOpInstr{Op: ins.Op, Operand: resolve(ins.Operand)}
		case BinaryInstr:
			instrs[i] = BinaryInstr{Op: ins.Op, Src: resolve(ins.Src), Dst: resolve(ins.Dst)}
		case IdivInstr:
			instrs[i] = IdivInstr{Divisor: resolve(ins.Divisor)}
		default:
			instrs[i] = in
		}
	}
	return Function{Name: fn.Name, Instrs: instrs}
}
