package isa

import (
	"fmt"
)

const RRI_IMM_BITS = 12 // Width of the signed Rri immediate.

// Rri is a conditional register-register-immediate ALU operation:
//
//	if Cond { Dest = Src <Op> Imm }
//
// Layout: kind 31:30, op 29:25, dest 24:20, src 19:15, cond 14:12, imm 11:0.
type Rri struct {
	Op   BinOp
	Cond Condition
	Dest Register
	Src  Register
	Imm  int16 // Truncated to RRI_IMM_BITS when encoded.
}

var _ Instruction = Rri{}

var (
	rriOp   = field{29, 25}
	rriDest = field{24, 20}
	rriSrc  = field{19, 15}
	rriCond = field{14, 12}
	rriImm  = field{11, 0}
)

// DecodeRri decodes an Rri word.
func DecodeRri(word uint32) (inst Rri, ok bool) {
	if !isKind(word, KIND_RRI) {
		return
	}

	op, ok := decodeBinOp(rriOp.get(word))
	if !ok {
		return
	}

	cond, ok := decodeCondition(rriCond.get(word))
	if !ok {
		return
	}

	inst = Rri{
		Op:   op,
		Cond: cond,
		Dest: decodeRegister(rriDest.get(word)),
		Src:  decodeRegister(rriSrc.get(word)),
		Imm:  int16(SignExtend(rriImm.get(word), RRI_IMM_BITS)),
	}

	return
}

func (inst Rri) Kind() Kind {
	return KIND_RRI
}

func (inst Rri) Encode() uint32 {
	word := KIND_RRI.Encode()
	word = rriOp.set(word, uint32(inst.Op))
	word = rriDest.set(word, inst.Dest.encode())
	word = rriSrc.set(word, inst.Src.encode())
	word = rriCond.set(word, uint32(inst.Cond))
	word = rriImm.set(word, SignContract(int32(inst.Imm), RRI_IMM_BITS))
	return word
}

func (inst Rri) String() string {
	if inst.Cond == COND_ALWAYS {
		return fmt.Sprintf("%vi %v, %v, %d", inst.Op, inst.Dest, inst.Src, inst.Imm)
	}
	return fmt.Sprintf("%vi.%v %v, %v, %d", inst.Op, inst.Cond, inst.Dest, inst.Src, inst.Imm)
}

func (Rri) isInstruction() {}
