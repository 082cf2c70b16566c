package isa

import (
	"fmt"
)

const JUMP_IMM_BITS = 30 // Stored width of the jump offset, in words.

// Jump is a jump by a signed, word aligned offset. The two low bits of Imm
// are not stored.
//
// Layout: kind 31:30, imm 29:0.
type Jump struct {
	Imm int32
}

var _ Instruction = Jump{}

var jumpImm = field{29, 0}

// DecodeJump decodes a Jump word.
func DecodeJump(word uint32) (inst Jump, ok bool) {
	if !isKind(word, KIND_JUMP) {
		return
	}

	inst.Imm = SignExtend(jumpImm.get(word), JUMP_IMM_BITS) << 2

	return inst, true
}

func (inst Jump) Kind() Kind {
	return KIND_JUMP
}

func (inst Jump) Encode() uint32 {
	word := KIND_JUMP.Encode()
	word = jumpImm.set(word, SignContract(inst.Imm>>2, JUMP_IMM_BITS))
	return word
}

func (inst Jump) String() string {
	return fmt.Sprintf("jmp %+d", inst.Imm)
}

func (Jump) isInstruction() {}
