// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

// Kind is the instruction format selected by the top bits of a word.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_MEMORY_RR     = Kind(0) // memory_rr
	KIND_MEMORY_RI     = Kind(1) // memory_ri
	KIND_CSR           = Kind(2) // csr
	KIND_RRR           = Kind(3) // rrr
	KIND_RRI           = Kind(4) // rri
	KIND_JUMP          = Kind(5) // jump
	KIND_RESERVED_0010 = Kind(6) // reserved0010
	KIND_RESERVED_0011 = Kind(7) // reserved0011
)

// Discriminator fields. high selects between the two-bit formats; sub and
// discrim are only meaningful when high is KIND_HIGH_RR.
var (
	kindHigh    = field{31, 30}
	kindSub     = field{29, 28}
	kindDiscrim = field{27, 27}
)

const (
	KIND_HIGH_RR  = 0x0
	KIND_HIGH_RRI = 0x1
	KIND_HIGH_RI  = 0x2
	KIND_HIGH_JMP = 0x3

	KIND_SUB_RRR          = 0x0
	KIND_SUB_MEMORY_CSR   = 0x1
	KIND_SUB_RESERVED0010 = 0x2
	KIND_SUB_RESERVED0011 = 0x3

	KIND_DISCRIM_MEMORY = 0x0
	KIND_DISCRIM_CSR    = 0x1
)

// Valid returns true for a defined kind.
func (kind Kind) Valid() bool {
	return kind >= KIND_MEMORY_RR && kind <= KIND_RESERVED_0011
}

// DecodeKind classifies a word by its discriminator bits.
func DecodeKind(word uint32) (kind Kind, ok bool) {
	switch kindHigh.get(word) {
	case KIND_HIGH_RR:
		return decodeKindRr(word)
	case KIND_HIGH_RRI:
		return KIND_RRI, true
	case KIND_HIGH_RI:
		return KIND_MEMORY_RI, true
	case KIND_HIGH_JMP:
		return KIND_JUMP, true
	}

	return
}

// decodeKindRr classifies the formats that share the 00 prefix.
func decodeKindRr(word uint32) (kind Kind, ok bool) {
	switch kindSub.get(word) {
	case KIND_SUB_RRR:
		return KIND_RRR, true
	case KIND_SUB_MEMORY_CSR:
		switch kindDiscrim.get(word) {
		case KIND_DISCRIM_MEMORY:
			return KIND_MEMORY_RR, true
		case KIND_DISCRIM_CSR:
			return KIND_CSR, true
		}
	case KIND_SUB_RESERVED0010:
		return KIND_RESERVED_0010, true
	case KIND_SUB_RESERVED0011:
		return KIND_RESERVED_0011, true
	}

	return
}

// Encode returns a word with only the discriminator bits of kind set.
// An invalid kind encodes as 0.
func (kind Kind) Encode() (word uint32) {
	switch kind {
	case KIND_RRR:
		word = kindHigh.set(word, KIND_HIGH_RR)
		word = kindSub.set(word, KIND_SUB_RRR)
	case KIND_MEMORY_RR:
		word = kindHigh.set(word, KIND_HIGH_RR)
		word = kindSub.set(word, KIND_SUB_MEMORY_CSR)
		word = kindDiscrim.set(word, KIND_DISCRIM_MEMORY)
	case KIND_CSR:
		word = kindHigh.set(word, KIND_HIGH_RR)
		word = kindSub.set(word, KIND_SUB_MEMORY_CSR)
		word = kindDiscrim.set(word, KIND_DISCRIM_CSR)
	case KIND_RESERVED_0010:
		word = kindHigh.set(word, KIND_HIGH_RR)
		word = kindSub.set(word, KIND_SUB_RESERVED0010)
	case KIND_RESERVED_0011:
		word = kindHigh.set(word, KIND_HIGH_RR)
		word = kindSub.set(word, KIND_SUB_RESERVED0011)
	case KIND_RRI:
		word = kindHigh.set(word, KIND_HIGH_RRI)
	case KIND_MEMORY_RI:
		word = kindHigh.set(word, KIND_HIGH_RI)
	case KIND_JUMP:
		word = kindHigh.set(word, KIND_HIGH_JMP)
	}

	return
}

// Mask returns the bits of a word that make up the discriminator of kind.
func (kind Kind) Mask() uint32 {
	switch kind {
	case KIND_MEMORY_RR, KIND_CSR:
		return 0xf8000000
	case KIND_RRR, KIND_RESERVED_0010, KIND_RESERVED_0011:
		return 0xf0000000
	case KIND_RRI, KIND_MEMORY_RI, KIND_JUMP:
		return 0xc0000000
	}

	return 0
}

// isKind returns true if word is an instruction of the given kind.
func isKind(word uint32, kind Kind) bool {
	decoded, ok := DecodeKind(word)
	return ok && decoded == kind
}
