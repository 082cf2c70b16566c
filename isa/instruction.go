// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

// Instruction is a decoded instruction word. It is implemented only by the
// format types of this package: Rrr, Rri, MemoryRr, MemoryRi, Csr, Jump and
// Reserved.
type Instruction interface {
	Kind() Kind     // Format of the instruction.
	Encode() uint32 // Instruction word.
	String() string // Human readable form.

	isInstruction()
}

// Decode decodes an instruction word. The error is an ErrDecode wrapping
// ErrKind when no format matches, or ErrField when a field of the matched
// format is out of range.
func Decode(word uint32) (inst Instruction, err error) {
	kind, ok := DecodeKind(word)
	if !ok {
		err = ErrDecode{Word: word, Err: ErrKind}
		return
	}

	switch kind {
	case KIND_RRR:
		var rrr Rrr
		rrr, ok = DecodeRrr(word)
		inst = rrr
	case KIND_RRI:
		var rri Rri
		rri, ok = DecodeRri(word)
		inst = rri
	case KIND_MEMORY_RR:
		var mem MemoryRr
		mem, ok = DecodeMemoryRr(word)
		inst = mem
	case KIND_MEMORY_RI:
		var mem MemoryRi
		mem, ok = DecodeMemoryRi(word)
		inst = mem
	case KIND_CSR:
		var csr Csr
		csr, ok = DecodeCsr(word)
		inst = csr
	case KIND_JUMP:
		var jmp Jump
		jmp, ok = DecodeJump(word)
		inst = jmp
	case KIND_RESERVED_0010, KIND_RESERVED_0011:
		var res Reserved
		res, ok = DecodeReserved(word)
		inst = res
	default:
		ok = false
	}

	if !ok {
		inst = nil
		err = ErrDecode{Word: word, Kind: kind, Err: ErrField}
	}

	return
}

// Encode returns the instruction word of inst.
func Encode(inst Instruction) uint32 {
	return inst.Encode()
}

// AddRegs returns `add dest, lhs, rhs` with no shift.
func AddRegs(dest, lhs, rhs Register) Rrr {
	return Rrr{Op: OP_ADD, Dest: dest, Lhs: lhs, Rhs: rhs}
}

// Nop returns the canonical no-operation, an add into r0.
func Nop() Rrr {
	r1, _ := NewRegister(1)
	return AddRegs(Register{}, Register{}, r1)
}
