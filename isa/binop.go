package isa

// BinOp is an ALU operation of the Rrr and Rri formats.
type BinOp int

//go:generate go tool stringer -linecomment -type=BinOp
const (
	OP_ADD   = BinOp(0)  // add
	OP_SUB   = BinOp(1)  // sub
	OP_MUL   = BinOp(2)  // mul
	OP_DIV   = BinOp(3)  // div
	OP_MOD   = BinOp(4)  // mod
	OP_AND   = BinOp(5)  // and
	OP_OR    = BinOp(6)  // or
	OP_XOR   = BinOp(7)  // xor
	OP_SHL   = BinOp(8)  // shl
	OP_SHR   = BinOp(9)  // shr
	OP_ASL   = BinOp(10) // asl
	OP_ASR   = BinOp(11) // asr
	OP_ROL   = BinOp(12) // rol
	OP_ROR   = BinOp(13) // ror
	OP_NOT   = BinOp(14) // not
	OP_NEG   = BinOp(15) // neg
	OP_ADDCC = BinOp(16) // addcc
	OP_SUBCC = BinOp(17) // subcc
)

// Valid returns true for a defined operation.
func (op BinOp) Valid() bool {
	return op >= OP_ADD && op <= OP_SUBCC
}

// IsCC returns true if the operation updates the condition codes.
func (op BinOp) IsCC() bool {
	switch op {
	case OP_ADDCC, OP_SUBCC:
		return true
	default:
		return false
	}
}

func decodeBinOp(value uint32) (op BinOp, ok bool) {
	op = BinOp(value)
	if !op.Valid() {
		return 0, false
	}
	return op, true
}
