package isa

import (
	"fmt"
)

const REGISTER_COUNT = 32 // Number of general purpose registers.

// Register is a general purpose register index in [0, 31].
type Register struct {
	index uint8
}

// NewRegister returns the register with the given index, or ok == false if
// the index is out of range.
func NewRegister(index uint) (reg Register, ok bool) {
	if index >= REGISTER_COUNT {
		return
	}

	return Register{index: uint8(index)}, true
}

// decodeRegister converts a 5-bit register field.
func decodeRegister(value uint32) Register {
	return Register{index: uint8(value & (REGISTER_COUNT - 1))}
}

// Index returns the register number.
func (reg Register) Index() uint8 {
	return reg.index
}

func (reg Register) encode() uint32 {
	return uint32(reg.index)
}

func (reg Register) String() string {
	return fmt.Sprintf("r%d", reg.index)
}
