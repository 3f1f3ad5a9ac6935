/*
File: cc/ir/mangle.go
*/
package ir

import (
	"fmt"

	"github.com/go-mini-cc/cc/parser"
)

// binaryTag is the descriptive word each binary operator contributes to
// its destination's mangled name (spec §4.3). This keeps generated
// pseudo-names readable in the emitted assembly ("SumOf4And3" rather than
// an opaque counter), which spec §9 explicitly allows substituting for a
// monotonic counter — this implementation keeps the descriptive form
// since it reads closer to the rest of this codebase's documented,
// human-oriented style.
var binaryTag = map[parser.BinOp]string{
	parser.Add: "Sum",
	parser.Sub: "Difference",
	parser.Mul: "Product",
	parser.Div: "Quotient",
	parser.Mod: "Remainder",
	parser.Shl: "LeftShift",
	parser.Shr: "RightShift",
	parser.And: "BitAnd",
	parser.Or:  "BitOr",
	parser.Xor: "BitXor",
}

// mangledBinaryName builds the deterministic destination name for a
// binary instruction from its operator and its two operands' display
// names. Structurally distinct subexpressions contribute distinct
// composite names, but two occurrences of the *same* subexpression (e.g.
// both sides of `(1+2)+(1+2)`) compute the same composite name despite
// being separate instructions; nameSeq (below) disambiguates that case.
func mangledBinaryName(op parser.BinOp, a, b Value) string {
	return fmt.Sprintf("%sOf%sAnd%s", binaryTag[op], displayName(a), displayName(b))
}

// nameSeq hands out a globally unique Name for each base string minted
// within one function's lowering. The first request for a given base gets
// the bare base string (keeping the common case's names exactly as
// descriptive as spec §4.3 describes); every subsequent request for the
// same base gets it suffixed with an occurrence count. Any candidate that
// was already handed out is skipped (a suffixed name such as
// "SumOf1And2"+"1" is the same text as the base for `1+21`), so the (Name,
// Version) pair spec §3 requires to be unique per function never
// collides even when two destinations would otherwise mangle to the same
// text — e.g. two unary-on-constant leaves (both would otherwise mint
// `Variable("unary", 0)`) or two occurrences of an identical
// subexpression.
type nameSeq struct {
	seen map[string]int32
	used map[string]bool
}

func newNameSeq() *nameSeq {
	return &nameSeq{seen: map[string]int32{}, used: map[string]bool{}}
}

func (s *nameSeq) next(base string) string {
	for {
		n := s.seen[base]
		s.seen[base] = n + 1
		name := base
		if n > 0 {
			name = fmt.Sprintf("%s%d", base, n)
		}
		if !s.used[name] {
			s.used[name] = true
			return name
		}
	}
}

// freshUnaryDst implements the naming rule from spec §4.3: bumping the
// version of an existing variable, or minting a uniquified "unary"-based
// name when negating or complementing a bare constant. Chaining off an
// existing variable can never collide (each variable's own version chain
// is already unique), so only the from-constant case needs to go through
// seq.
func freshUnaryDst(operand Value, seq *nameSeq) Variable {
	if v, ok := operand.(Variable); ok {
		return Variable{Name: v.Name, Version: v.Version + 1}
	}
	return Variable{Name: seq.next("unary"), Version: 0}
}

// freshBinaryDst mints the version-0 destination for a binary
// instruction, uniquifying its mangled name against every other
// destination minted so far in the function.
func freshBinaryDst(op parser.BinOp, a, b Value, seq *nameSeq) Variable {
	return Variable{Name: seq.next(mangledBinaryName(op, a, b)), Version: 0}
}
