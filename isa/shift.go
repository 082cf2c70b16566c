package isa

import (
	"fmt"
)

// ShiftKind is the barrel shifter operation applied to an operand.
type ShiftKind int

//go:generate go tool stringer -linecomment -type=ShiftKind
const (
	SHIFT_SHL = ShiftKind(0) // shl
	SHIFT_SHR = ShiftKind(1) // shr
	SHIFT_ASL = ShiftKind(2) // asl
	SHIFT_ASR = ShiftKind(3) // asr
	SHIFT_ROL = ShiftKind(4) // rol
	SHIFT_ROR = ShiftKind(5) // ror
)

// Valid returns true for a defined shift kind.
func (kind ShiftKind) Valid() bool {
	return kind >= SHIFT_SHL && kind <= SHIFT_ROR
}

const SHIFT_LIMIT = 32 // Shift amounts are in [0, SHIFT_LIMIT).

// Shift is a barrel shift applied to the last register operand of an
// instruction. The zero Shift (shl 0) leaves the operand unchanged.
//
// Use NewShift to build a validated Shift. When encoded, Kind and Amount
// keep only the bits that fit their fields, so an Amount of SHIFT_LIMIT or
// more wraps modulo SHIFT_LIMIT.
type Shift struct {
	Kind   ShiftKind
	Amount uint8
}

// NewShift returns a shift, or ok == false if kind or amount is out of range.
func NewShift(kind ShiftKind, amount uint) (shift Shift, ok bool) {
	if !kind.Valid() || amount >= SHIFT_LIMIT {
		return
	}

	return Shift{Kind: kind, Amount: uint8(amount)}, true
}

// IsZero returns true if the shift does not modify its operand.
func (shift Shift) IsZero() bool {
	return shift.Amount == 0
}

func decodeShift(word uint32) (shift Shift, ok bool) {
	kind := ShiftKind(fieldShiftKind.get(word))
	if !kind.Valid() {
		return
	}

	return Shift{Kind: kind, Amount: uint8(fieldShiftCount.get(word))}, true
}

func (shift Shift) encode(word uint32) uint32 {
	word = fieldShiftKind.set(word, uint32(shift.Kind))
	word = fieldShiftCount.set(word, uint32(shift.Amount))
	return word
}

func (shift Shift) String() string {
	return fmt.Sprintf("%v %d", shift.Kind, shift.Amount)
}
