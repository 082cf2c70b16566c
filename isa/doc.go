// Package isa implements the binary encoding of the isa32 instruction set.
//
// Every instruction is a single 32-bit word. The top bits of the word form a
// variable length prefix (the Kind) that selects one of the instruction
// formats: register-register-register ALU operations (Rrr), conditional
// register-register-immediate ALU operations (Rri), register indexed and
// immediate offset memory access (MemoryRr, MemoryRi), control/status
// register access (Csr), and PC relative jumps (Jump). Two prefixes are
// reserved for future formats.
//
// Decoding never executes anything; it only maps words to structured values
// and back. All codecs are pure and safe for concurrent use.
package isa
