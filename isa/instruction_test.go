package isa

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		word uint32
		inst Instruction
		str  string
	}){
		{"rrr", 0x00044300,
			Rrr{Op: OP_ADD, Dest: reg(1), Lhs: reg(2), Rhs: reg(3)},
			"add r1, r2, r3"},
		{"rrr_shift", 0x088443a7,
			Rrr{Op: OP_SUBCC, Dest: reg(1), Lhs: reg(2), Rhs: reg(3), Shift: Shift{SHIFT_ROR, 7}},
			"subcc r1, r2, r3 ror 7"},
		{"rri", 0x40113fff,
			Rri{Op: OP_ADD, Cond: COND_ZERO, Dest: reg(1), Src: reg(2), Imm: -1},
			"addi.z r1, r2, -1"},
		{"rri_always", 0x40110005,
			Rri{Op: OP_ADD, Cond: COND_ALWAYS, Dest: reg(1), Src: reg(2), Imm: 5},
			"addi r1, r2, 5"},
		{"memory_rr", 0x10044300,
			MemoryRr{Op: LoadStoreOp{LOAD, WIDTH_BYTE}, Dest: reg(1), Src: reg(2), Query: reg(3)},
			"ld.byte r1, [r2, r3]"},
		{"memory_rr_shift", 0x10044322,
			MemoryRr{Op: LoadStoreOp{LOAD, WIDTH_BYTE}, Dest: reg(1), Src: reg(2), Query: reg(3), Shift: Shift{SHIFT_SHR, 2}},
			"ld.byte r1, [r2, r3 shr 2]"},
		{"memory_ri", 0x82939ffc,
			MemoryRi{Op: LoadStoreOp{STORE, WIDTH_SHORT}, Dest: reg(4), Src: reg(28), Imm: -4},
			"st.short r4, [r28, -4]"},
		{"csr", 0x1b140064,
			Csr{Op: LoadStoreOp{STORE, WIDTH_WORD}, Reg: reg(5), Imm: 100},
			"csr.st.word r5, 0x64"},
		{"jump_back", 0xfffffffe,
			Jump{Imm: -8},
			"jmp -8"},
		{"jump_fwd", 0xc0000400,
			Jump{Imm: 4096},
			"jmp +4096"},
		{"reserved0010", 0x2abcdef0,
			Reserved{Tag: KIND_RESERVED_0010, Payload: 0xabcdef0},
			"reserved0010 0xabcdef0"},
		{"reserved0011", 0x30000001,
			Reserved{Tag: KIND_RESERVED_0011, Payload: 1},
			"reserved0011 0x1"},
	}

	for _, entry := range table {
		inst, err := Decode(entry.word)
		assert.NoError(err, entry.name)
		assert.Equal(entry.inst, inst, entry.name)
		assert.Equal(entry.str, entry.inst.String(), entry.name)
		assert.Equal(entry.word, entry.inst.Encode(), entry.name)
		assert.Equal(entry.word, Encode(entry.inst), entry.name)
	}
}

func TestDecode_Csr(t *testing.T) {
	assert := assert.New(t)

	word := KIND_CSR.Encode() | (0x6 << 23) | (5 << 18) | 100

	inst, err := Decode(word)
	assert.NoError(err)

	csr, ok := inst.(Csr)
	assert.True(ok)
	assert.True(csr.IsWrite())
	assert.False(csr.IsRead())
	assert.Equal(reg(5), csr.Reg)
	assert.Equal(uint32(100), csr.Imm)
	assert.Equal(word, csr.Encode())
}

func TestDecode_Invalid(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		word uint32
		kind Kind
	}){
		{"rrr_op", 0x09000000, KIND_RRR},
		{"rrr_op_max", 0x0f800000, KIND_RRR},
		{"rrr_shift_kind", 0x000000c0, KIND_RRR},
		{"rri_op", 0x64000000, KIND_RRI},
		{"memory_rr_op_bit3", 0x14000000, KIND_MEMORY_RR},
		{"memory_rr_width", 0x11800000, KIND_MEMORY_RR},
		{"memory_rr_shift_kind", 0x100000e0, KIND_MEMORY_RR},
		{"memory_ri_zero", 0x90000000, KIND_MEMORY_RI},
		{"memory_ri_discrim", 0x88000000, KIND_MEMORY_RI},
		{"memory_ri_width", 0x81800000, KIND_MEMORY_RI},
		{"csr_width", 0x19800000, KIND_CSR},
		{"csr_op_bit3", 0x1c000000, KIND_CSR},
	}

	for _, entry := range table {
		inst, err := Decode(entry.word)
		assert.Nil(inst, entry.name)
		assert.Error(err, entry.name)
		assert.True(errors.Is(err, ErrField), entry.name)
		assert.False(errors.Is(err, ErrKind), entry.name)

		var decode_err ErrDecode
		assert.True(errors.As(err, &decode_err), entry.name)
		assert.Equal(entry.word, decode_err.Word, entry.name)
		assert.Equal(entry.kind, decode_err.Kind, entry.name)
	}
}

func TestDecode_WrongKind(t *testing.T) {
	assert := assert.New(t)

	samples := map[Kind]uint32{
		KIND_RRR:           0x00044300,
		KIND_RRI:           0x40113fff,
		KIND_MEMORY_RR:     0x10044300,
		KIND_MEMORY_RI:     0x82939ffc,
		KIND_CSR:           0x1b140064,
		KIND_JUMP:          0xfffffffe,
		KIND_RESERVED_0010: 0x2abcdef0,
		KIND_RESERVED_0011: 0x30000001,
	}

	decoders := map[Kind]func(word uint32) bool{
		KIND_RRR:       func(word uint32) bool { _, ok := DecodeRrr(word); return ok },
		KIND_RRI:       func(word uint32) bool { _, ok := DecodeRri(word); return ok },
		KIND_MEMORY_RR: func(word uint32) bool { _, ok := DecodeMemoryRr(word); return ok },
		KIND_MEMORY_RI: func(word uint32) bool { _, ok := DecodeMemoryRi(word); return ok },
		KIND_CSR:       func(word uint32) bool { _, ok := DecodeCsr(word); return ok },
		KIND_JUMP:      func(word uint32) bool { _, ok := DecodeJump(word); return ok },
	}

	for decoder_kind, decode := range decoders {
		for word_kind, word := range samples {
			assert.Equal(decoder_kind == word_kind, decode(word), "%v decoding %v", decoder_kind, word_kind)
		}
	}

	for word_kind, word := range samples {
		_, ok := DecodeReserved(word)
		reserved := word_kind == KIND_RESERVED_0010 || word_kind == KIND_RESERVED_0011
		assert.Equal(reserved, ok, word_kind.String())
	}
}

func TestEncode_Truncation(t *testing.T) {
	assert := assert.New(t)

	// 2048 does not fit in 12 signed bits, and wraps to -2048.
	rri := Rri{Op: OP_OR, Dest: reg(1), Src: reg(1), Imm: 2048}
	decoded, ok := DecodeRri(rri.Encode())
	assert.True(ok)
	assert.Equal(int16(-2048), decoded.Imm)

	// 8192 does not fit in 13 signed bits, and wraps to 0.
	mem := MemoryRi{Op: LoadStoreOp{LOAD, WIDTH_WORD}, Dest: reg(2), Src: reg(3), Imm: 8192}
	decoded_mem, ok := DecodeMemoryRi(mem.Encode())
	assert.True(ok)
	assert.Equal(int16(0), decoded_mem.Imm)

	csr := Csr{Op: LoadStoreOp{LOAD, WIDTH_WORD}, Reg: reg(1), Imm: 0xfffff}
	decoded_csr, ok := DecodeCsr(csr.Encode())
	assert.True(ok)
	assert.Equal(uint32(CSR_IMM_MASK), decoded_csr.Imm)

	// The low bits of a jump offset are not stored.
	jmp := Jump{Imm: 7}
	decoded_jmp, ok := DecodeJump(jmp.Encode())
	assert.True(ok)
	assert.Equal(int32(4), decoded_jmp.Imm)

	// Out of range fields never disturb the discriminator.
	rrr := Rrr{Op: OP_SUBCC, Dest: reg(31), Lhs: reg(31), Rhs: reg(31), Shift: Shift{SHIFT_ROR, 0xff}}
	kind, ok := DecodeKind(rrr.Encode())
	assert.True(ok)
	assert.Equal(KIND_RRR, kind)
}

func TestRoundTrip(t *testing.T) {
	assert := assert.New(t)

	var insts []Instruction

	for op := OP_ADD; op <= OP_SUBCC; op++ {
		for kind := SHIFT_SHL; kind <= SHIFT_ROR; kind++ {
			insts = append(insts, Rrr{Op: op, Dest: reg(uint(op)), Lhs: reg(31), Rhs: reg(uint(kind)), Shift: Shift{kind, uint8(op)}})
		}
		for cond := COND_ALWAYS; cond <= COND_GREATER_THAN; cond++ {
			insts = append(insts, Rri{Op: op, Cond: cond, Dest: reg(30), Src: reg(uint(cond)), Imm: -2048})
			insts = append(insts, Rri{Op: op, Cond: cond, Dest: reg(0), Src: reg(29), Imm: 2047})
		}
	}

	for _, dir := range []LoadStore{LOAD, STORE} {
		for width := WIDTH_BYTE; width <= WIDTH_WORD; width++ {
			op := LoadStoreOp{dir, width}
			insts = append(insts,
				MemoryRr{Op: op, Dest: reg(1), Src: reg(28), Query: reg(31), Shift: Shift{SHIFT_ASL, 31}},
				MemoryRi{Op: op, Dest: reg(31), Src: reg(0), Imm: -4096},
				MemoryRi{Op: op, Dest: reg(7), Src: reg(8), Imm: 4095},
				Csr{Op: op, Reg: reg(31), Imm: CSR_IMM_MASK},
				Csr{Op: op, Reg: reg(0), Imm: 0},
			)
		}
	}

	insts = append(insts,
		Jump{Imm: 0},
		Jump{Imm: -4},
		Jump{Imm: -(1 << 31)},
		Jump{Imm: (1 << 31) - 4},
		Reserved{Tag: KIND_RESERVED_0010, Payload: RESERVED_PAYLOAD_MASK},
		Reserved{Tag: KIND_RESERVED_0011, Payload: 0},
		Nop(),
	)

	for _, inst := range insts {
		word := inst.Encode()
		assert.Equal(word&inst.Kind().Mask(), inst.Kind().Encode(), inst.String())

		decoded, err := Decode(word)
		assert.NoError(err, inst.String())
		assert.Equal(inst, decoded, inst.String())
	}
}

func TestNop(t *testing.T) {
	assert := assert.New(t)

	nop := Nop()
	assert.Equal(Rrr{Op: OP_ADD, Dest: reg(0), Lhs: reg(0), Rhs: reg(1)}, nop)
	assert.Equal(uint32(0x00000100), nop.Encode())
	assert.Equal(AddRegs(reg(0), reg(0), reg(1)), nop)
}

func TestMemory(t *testing.T) {
	assert := assert.New(t)

	inst, err := Decode(0x82939ffc)
	assert.NoError(err)

	mem, ok := inst.(Memory)
	assert.True(ok)
	assert.True(mem.LoadStore().IsStore())
	assert.Equal(WIDTH_SHORT, mem.LoadStore().Width)

	inst, err = Decode(0x00044300)
	assert.NoError(err)
	_, ok = inst.(Memory)
	assert.False(ok)
}
