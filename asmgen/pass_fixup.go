/*
File: cc/asmgen/pass_fixup.go
*/
package asmgen

func isMemory(op Operand) bool {
	_, ok := op.(Stack)
	return ok
}

func isImmediate(op Operand) bool {
	_, ok := op.(Imm)
	return ok
}

// fixupOperands corrects instructions whose operand forms are illegal on
// x86-64: two memory operands to a single mov, an immediate divisor, a
// memory destination for an imul, or two memory operands to an
// add/sub/and/or/xor. Every shift is rewritten to load its count into
// %ecx and shift by %cl.
func fixupOperands(fn Function) Function {
	var instrs []Instruction
	for _, in := range fn.Instrs {
		instrs = append(instrs, fixupOne(in)...)
	}
	return Function{Name: fn.Name, Instrs: instrs}
}

func fixupOne(in Instruction) []Instruction {
	switch ins := in.(type) {
	case MovInstr:
		if isMemory(ins.Src) && isMemory(ins.Dst) {
			return []Instruction{
				MovInstr{Src: ins.Src, Dst: Reg{Register: R10}},
				MovInstr{Src: Reg{Register: R10}, Dst: ins.Dst},
			}
		}
		return []Instruction{ins}

	case IdivInstr:
		if isImmediate(ins.Divisor) {
			return []Instruction{
				MovInstr{Src: ins.Divisor, Dst: Reg{Register: R10}},
				IdivInstr{Divisor: Reg{Register: R10}},
			}
		}
		return []Instruction{ins}

	case BinaryInstr:
		switch ins.Op {
		case Mul:
			if isMemory(ins.Dst) {
				return []Instruction{
					MovInstr{Src: ins.Dst, Dst: Reg{Register: R11}},
					BinaryInstr{Op: Mul, Src: ins.Src, Dst: Reg{Register: R11}},
					MovInstr{Src: Reg{Register: R11}, Dst: ins.Dst},
				}
			}
		case Sal, Sar:
			return []Instruction{
				MovInstr{Src: ins.Src, Dst: Reg{Register: CX}},
				BinaryInstr{Op: ins.Op, Src: Reg{Register: CL}, Dst: ins.Dst},
			}
		case Add, Sub, And, Or, Xor:
			if isMemory(ins.Src) && isMemory(ins.Dst) {
				return []Instruction{
					MovInstr{Src: ins.Src, Dst: Reg{Register: R10}},
					BinaryInstr{Op: ins.Op, Src: Reg{Register: R10}, Dst: ins.Dst},
				}
			}
		}
		return []Instruction{ins}

	default:
		return []Instruction{in}
	}
}
