/*
File: cc/ir/instr.go
*/
package ir

// UnOp is an IR-level unary operator.
type UnOp int

const (
	Negate UnOp = iota
	Complement
)

// BinOp is an IR-level binary operator.
type BinOp int

const (
	Add BinOp = iota
	Sub
	Mul
	Div
	Mod
	Shl
	Shr
	And
	Or
	Xor
)

// Instruction is one three-address IR instruction.
type Instruction interface {
	isInstruction()
}

// ReturnInstr returns a value from the function.
type ReturnInstr struct {
	Value Value
}

// UnaryInstr computes Dst = Op Src.
type UnaryInstr struct {
	Op  UnOp
	Src Value
	Dst Variable
}

// BinaryInstr computes Dst = A Op B.
type BinaryInstr struct {
	Op   BinOp
	A, B Value
	Dst  Variable
}

func (ReturnInstr) isInstruction() {}
func (UnaryInstr) isInstruction()  {}
func (BinaryInstr) isInstruction() {}

// Function is a single IR function: a name and its straight-line body.
type Function struct {
	Name   string
	Instrs []Instruction
}

// Program is the whole IR translation unit.
type Program struct {
	Func Function
}
