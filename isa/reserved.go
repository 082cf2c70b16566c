package isa

import (
	"fmt"
)

const RESERVED_PAYLOAD_MASK = 0x0fffffff

// Reserved is a word in one of the reserved formats. Its payload is
// carried unchanged so that such words survive a decode/encode cycle.
type Reserved struct {
	Tag     Kind // KIND_RESERVED_0010 or KIND_RESERVED_0011
	Payload uint32
}

var _ Instruction = Reserved{}

// DecodeReserved decodes a word of either reserved format.
func DecodeReserved(word uint32) (inst Reserved, ok bool) {
	kind, ok := DecodeKind(word)
	if !ok {
		return
	}

	switch kind {
	case KIND_RESERVED_0010, KIND_RESERVED_0011:
		inst = Reserved{Tag: kind, Payload: word & RESERVED_PAYLOAD_MASK}
		return inst, true
	}

	return Reserved{}, false
}

func (inst Reserved) Kind() Kind {
	return inst.Tag
}

func (inst Reserved) Encode() uint32 {
	return inst.Tag.Encode() | (inst.Payload & RESERVED_PAYLOAD_MASK)
}

func (inst Reserved) String() string {
	return fmt.Sprintf("%v %#x", inst.Tag, inst.Payload)
}

func (Reserved) isInstruction() {}
