package isa

import (
	"fmt"
)

const MEMORY_IMM_BITS = 13 // Width of the signed MemoryRi offset.

// Memory is a load or store, either register indexed or immediate offset.
type Memory interface {
	Instruction
	LoadStore() LoadStoreOp
}

// MemoryRr is a register indexed load or store at Src + (Query <Shift>).
//
// Layout: kind 31:27, op 26:23, dest 22:18, src 17:13, query 12:8,
// shift kind 7:5, shift amount 4:0.
type MemoryRr struct {
	Op    LoadStoreOp
	Dest  Register
	Src   Register
	Query Register
	Shift Shift
}

// MemoryRi is an immediate offset load or store at Src + Imm.
//
// Layout: kind 31:30, must-be-zero 29:27, op 26:23, dest 22:18, src 17:13,
// imm 12:0.
type MemoryRi struct {
	Op   LoadStoreOp
	Dest Register
	Src  Register
	Imm  int16 // Truncated to MEMORY_IMM_BITS when encoded.
}

var (
	_ Memory = MemoryRr{}
	_ Memory = MemoryRi{}
)

var (
	memoryRiZero = field{29, 27}
	memoryRiImm  = field{12, 0}
)

// DecodeMemoryRr decodes a MemoryRr word.
func DecodeMemoryRr(word uint32) (inst MemoryRr, ok bool) {
	if !isKind(word, KIND_MEMORY_RR) {
		return
	}

	op, ok := decodeLoadStoreOp(fieldOp4.get(word))
	if !ok {
		return
	}

	shift, ok := decodeShift(word)
	if !ok {
		return
	}

	inst = MemoryRr{
		Op:    op,
		Dest:  decodeRegister(fieldDest.get(word)),
		Src:   decodeRegister(fieldSrc.get(word)),
		Query: decodeRegister(fieldQuery.get(word)),
		Shift: shift,
	}

	return
}

func (inst MemoryRr) Kind() Kind {
	return KIND_MEMORY_RR
}

func (inst MemoryRr) LoadStore() LoadStoreOp {
	return inst.Op
}

func (inst MemoryRr) Encode() uint32 {
	word := KIND_MEMORY_RR.Encode()
	word = fieldOp4.set(word, inst.Op.encode())
	word = fieldDest.set(word, inst.Dest.encode())
	word = fieldSrc.set(word, inst.Src.encode())
	word = fieldQuery.set(word, inst.Query.encode())
	word = inst.Shift.encode(word)
	return word
}

func (inst MemoryRr) String() string {
	if inst.Shift.IsZero() {
		return fmt.Sprintf("%v %v, [%v, %v]", inst.Op, inst.Dest, inst.Src, inst.Query)
	}
	return fmt.Sprintf("%v %v, [%v, %v %v]", inst.Op, inst.Dest, inst.Src, inst.Query, inst.Shift)
}

func (MemoryRr) isInstruction() {}

// DecodeMemoryRi decodes a MemoryRi word.
func DecodeMemoryRi(word uint32) (inst MemoryRi, ok bool) {
	if !isKind(word, KIND_MEMORY_RI) {
		return
	}

	if memoryRiZero.get(word) != 0 {
		return
	}

	op, ok := decodeLoadStoreOp(fieldOp4.get(word))
	if !ok {
		return
	}

	inst = MemoryRi{
		Op:   op,
		Dest: decodeRegister(fieldDest.get(word)),
		Src:  decodeRegister(fieldSrc.get(word)),
		Imm:  int16(SignExtend(memoryRiImm.get(word), MEMORY_IMM_BITS)),
	}

	return
}

func (inst MemoryRi) Kind() Kind {
	return KIND_MEMORY_RI
}

func (inst MemoryRi) LoadStore() LoadStoreOp {
	return inst.Op
}

func (inst MemoryRi) Encode() uint32 {
	word := KIND_MEMORY_RI.Encode()
	word = fieldOp4.set(word, inst.Op.encode())
	word = fieldDest.set(word, inst.Dest.encode())
	word = fieldSrc.set(word, inst.Src.encode())
	word = memoryRiImm.set(word, SignContract(int32(inst.Imm), MEMORY_IMM_BITS))
	return word
}

func (inst MemoryRi) String() string {
	return fmt.Sprintf("%v %v, [%v, %d]", inst.Op, inst.Dest, inst.Src, inst.Imm)
}

func (MemoryRi) isInstruction() {}
