package isa

import (
	"fmt"
)

// Width is a memory access width.
type Width int

//go:generate go tool stringer -linecomment -type=Width
const (
	WIDTH_BYTE  = Width(0) // byte
	WIDTH_SHORT = Width(1) // short
	WIDTH_WORD  = Width(2) // word
)

// ParseWidth parses a width name (byte, short or word).
func ParseWidth(name string) (width Width, ok bool) {
	for width = WIDTH_BYTE; width <= WIDTH_WORD; width++ {
		if width.String() == name {
			return width, true
		}
	}

	return 0, false
}

// Valid returns true for a defined width.
func (width Width) Valid() bool {
	return width >= WIDTH_BYTE && width <= WIDTH_WORD
}

// Len returns the access length in bytes.
func (width Width) Len() uint32 {
	return 1 << uint32(width)
}

// Mask returns the mask of the bits read by an access of this width.
func (width Width) Mask() uint32 {
	switch width {
	case WIDTH_BYTE:
		return 0xff
	case WIDTH_SHORT:
		return 0xffff
	default:
		return 0xffffffff
	}
}

// LoadStore is the direction of a memory or CSR access.
type LoadStore int

//go:generate go tool stringer -linecomment -type=LoadStore
const (
	LOAD  = LoadStore(0) // ld
	STORE = LoadStore(1) // st
)

// LoadStoreOp describes a memory or CSR access.
//
// The 4-bit encoding is the width in bits 1:0 and the direction in bit 2;
// bit 3 is always zero.
type LoadStoreOp struct {
	Dir   LoadStore
	Width Width
}

const (
	loadStoreWidthMask = 0x3
	loadStoreStoreBit  = 0x4
	loadStoreMask      = 0x7
)

// decodeLoadStoreOp decodes a 4-bit op field.
func decodeLoadStoreOp(value uint32) (op LoadStoreOp, ok bool) {
	if value&^loadStoreMask != 0 {
		return
	}

	width := Width(value & loadStoreWidthMask)
	if !width.Valid() {
		return
	}

	op.Width = width
	if value&loadStoreStoreBit != 0 {
		op.Dir = STORE
	} else {
		op.Dir = LOAD
	}

	return op, true
}

func (op LoadStoreOp) encode() uint32 {
	value := uint32(op.Width) & loadStoreWidthMask
	if op.Dir == STORE {
		value |= loadStoreStoreBit
	}
	return value
}

// IsLoad returns true for a load (or CSR read).
func (op LoadStoreOp) IsLoad() bool {
	return op.Dir == LOAD
}

// IsStore returns true for a store (or CSR write).
func (op LoadStoreOp) IsStore() bool {
	return op.Dir == STORE
}

func (op LoadStoreOp) String() string {
	return fmt.Sprintf("%v.%v", op.Dir, op.Width)
}
