package isa

// SignExtend interprets the low width bits of value as a two's complement
// number. width must be in [1, 32].
func SignExtend(value uint32, width uint) int32 {
	shift := 32 - width
	return int32(value<<shift) >> shift
}

// SignContract truncates value to its low width bits. For any value that is
// representable in width bits, SignExtend(SignContract(v, width), width) == v.
func SignContract(value int32, width uint) uint32 {
	shift := 32 - width
	return (uint32(value) << shift) >> shift
}
