package isa

import (
	"fmt"
)

const CSR_IMM_MASK = 0x3ffff // CSR addresses are 18 bits.

// Csr reads (load) or writes (store) the control/status register at
// address Imm, using Reg as the data register.
//
// Layout: kind 31:27, op 26:23, reg 22:18, imm 17:0.
type Csr struct {
	Op  LoadStoreOp
	Reg Register
	Imm uint32 // Masked with CSR_IMM_MASK when encoded.
}

var _ Instruction = Csr{}

var csrImm = field{17, 0}

// DecodeCsr decodes a Csr word.
func DecodeCsr(word uint32) (inst Csr, ok bool) {
	if !isKind(word, KIND_CSR) {
		return
	}

	op, ok := decodeLoadStoreOp(fieldOp4.get(word))
	if !ok {
		return
	}

	inst = Csr{
		Op:  op,
		Reg: decodeRegister(fieldDest.get(word)),
		Imm: csrImm.get(word),
	}

	return
}

func (inst Csr) Kind() Kind {
	return KIND_CSR
}

// IsRead returns true if the instruction reads the CSR into Reg.
func (inst Csr) IsRead() bool {
	return inst.Op.IsLoad()
}

// IsWrite returns true if the instruction writes Reg to the CSR.
func (inst Csr) IsWrite() bool {
	return inst.Op.IsStore()
}

func (inst Csr) Encode() uint32 {
	word := KIND_CSR.Encode()
	word = fieldOp4.set(word, inst.Op.encode())
	word = fieldDest.set(word, inst.Reg.encode())
	word = csrImm.set(word, inst.Imm)
	return word
}

func (inst Csr) String() string {
	return fmt.Sprintf("csr.%v %v, %#x", inst.Op, inst.Reg, inst.Imm)
}

func (Csr) isInstruction() {}
