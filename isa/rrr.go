package isa

import (
	"fmt"
)

// Rrr is a register-register-register ALU operation:
//
//	Dest = Lhs <Op> (Rhs <Shift>)
//
// Layout: kind 31:28, op 27:23, dest 22:18, lhs 17:13, rhs 12:8,
// shift kind 7:5, shift amount 4:0.
type Rrr struct {
	Op    BinOp
	Dest  Register
	Lhs   Register
	Rhs   Register
	Shift Shift
}

var _ Instruction = Rrr{}

// DecodeRrr decodes an Rrr word.
func DecodeRrr(word uint32) (inst Rrr, ok bool) {
	if !isKind(word, KIND_RRR) {
		return
	}

	op, ok := decodeBinOp(fieldOp5.get(word))
	if !ok {
		return
	}

	shift, ok := decodeShift(word)
	if !ok {
		return
	}

	inst = Rrr{
		Op:    op,
		Dest:  decodeRegister(fieldDest.get(word)),
		Lhs:   decodeRegister(fieldSrc.get(word)),
		Rhs:   decodeRegister(fieldQuery.get(word)),
		Shift: shift,
	}

	return
}

func (inst Rrr) Kind() Kind {
	return KIND_RRR
}

func (inst Rrr) Encode() uint32 {
	word := KIND_RRR.Encode()
	word = fieldOp5.set(word, uint32(inst.Op))
	word = fieldDest.set(word, inst.Dest.encode())
	word = fieldSrc.set(word, inst.Lhs.encode())
	word = fieldQuery.set(word, inst.Rhs.encode())
	word = inst.Shift.encode(word)
	return word
}

func (inst Rrr) String() string {
	if inst.Shift.IsZero() {
		return fmt.Sprintf("%v %v, %v, %v", inst.Op, inst.Dest, inst.Lhs, inst.Rhs)
	}
	return fmt.Sprintf("%v %v, %v, %v %v", inst.Op, inst.Dest, inst.Lhs, inst.Rhs, inst.Shift)
}

func (Rrr) isInstruction() {}
