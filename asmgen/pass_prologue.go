/*
File: cc/asmgen/pass_prologue.go
*/
package asmgen

// insertPrologue computes the largest Stack offset referenced anywhere in
// fn and prepends a single AllocateStack instruction for that many bytes,
// unconditionally (AllocateStack(0) if the function touches no stack slot
// at all), so the emitted prologue shape is uniform.
func insertPrologue(fn Function) Function {
	var max int32
	scan := func(op Operand) {
		if s, ok := op.(Stack); ok && s.Offset > max {
			max = s.Offset
		}
	}

	for _, in := range fn.Instrs {
		switch ins := in.(type) {
		case MovInstr:
			scan(ins.Src)
			scan(ins.Dst)
		case UnaryOpInstr:
			scan(ins.Operand)
		case BinaryInstr:
			scan(ins.Src)
			scan(ins.Dst)
		case IdivInstr:
			scan(ins.Divisor)
		}
	}

	instrs := make([]Instruction, 0, len(fn.Instrs)+1)
	instrs = append(instrs, AllocateStackInstr{Bytes: max})
	instrs = append(instrs, fn.Instrs...)
	return Function{Name: fn.Name, Instrs: instrs}
}
