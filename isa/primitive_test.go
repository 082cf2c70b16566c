package isa

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// reg is a test helper that returns a known-valid register.
func reg(index uint) Register {
	r, ok := NewRegister(index)
	if !ok {
		panic(index)
	}
	return r
}

func TestRegister(t *testing.T) {
	assert := assert.New(t)

	_, ok := NewRegister(32)
	assert.False(ok)

	_, ok = NewRegister(1000)
	assert.False(ok)

	r, ok := NewRegister(0)
	assert.True(ok)
	assert.Equal(uint8(0), r.Index())
	assert.Equal(Register{}, r)

	r, ok = NewRegister(31)
	assert.True(ok)
	assert.Equal(uint8(31), r.Index())
	assert.Equal("r31", r.String())

	assert.Equal(reg(17), decodeRegister(17))
	assert.Equal(reg(1), decodeRegister(33))
}

func TestWidth(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		width Width
		name  string
		len   uint32
		mask  uint32
	}){
		{WIDTH_BYTE, "byte", 1, 0xff},
		{WIDTH_SHORT, "short", 2, 0xffff},
		{WIDTH_WORD, "word", 4, 0xffffffff},
	}

	for _, entry := range table {
		assert.True(entry.width.Valid())
		assert.Equal(entry.name, entry.width.String())
		assert.Equal(entry.len, entry.width.Len(), entry.name)
		assert.Equal(entry.mask, entry.width.Mask(), entry.name)

		width, ok := ParseWidth(entry.name)
		assert.True(ok, entry.name)
		assert.Equal(entry.width, width)
	}

	_, ok := ParseWidth("long")
	assert.False(ok)
	_, ok = ParseWidth("")
	assert.False(ok)
	assert.False(Width(3).Valid())
}

func TestLoadStoreOp(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		op    LoadStoreOp
		value uint32
		str   string
	}){
		{LoadStoreOp{LOAD, WIDTH_BYTE}, 0x0, "ld.byte"},
		{LoadStoreOp{LOAD, WIDTH_SHORT}, 0x1, "ld.short"},
		{LoadStoreOp{LOAD, WIDTH_WORD}, 0x2, "ld.word"},
		{LoadStoreOp{STORE, WIDTH_BYTE}, 0x4, "st.byte"},
		{LoadStoreOp{STORE, WIDTH_SHORT}, 0x5, "st.short"},
		{LoadStoreOp{STORE, WIDTH_WORD}, 0x6, "st.word"},
	}

	for _, entry := range table {
		assert.Equal(entry.value, entry.op.encode(), entry.str)
		assert.Equal(entry.str, entry.op.String())
		assert.Equal(entry.op.Dir == LOAD, entry.op.IsLoad())
		assert.Equal(entry.op.Dir == STORE, entry.op.IsStore())

		op, ok := decodeLoadStoreOp(entry.value)
		assert.True(ok, entry.str)
		assert.Equal(entry.op, op)
	}

	for _, value := range []uint32{0x3, 0x7, 0x8, 0x9, 0xc, 0xf} {
		_, ok := decodeLoadStoreOp(value)
		assert.False(ok, "%#x", value)
	}
}

func TestShift(t *testing.T) {
	assert := assert.New(t)

	shift, ok := NewShift(SHIFT_ROR, 31)
	assert.True(ok)
	assert.Equal(Shift{Kind: SHIFT_ROR, Amount: 31}, shift)
	assert.Equal("ror 31", shift.String())
	assert.False(shift.IsZero())

	_, ok = NewShift(SHIFT_SHL, 32)
	assert.False(ok)

	_, ok = NewShift(ShiftKind(6), 0)
	assert.False(ok)

	assert.True(Shift{}.IsZero())
	assert.Equal("shl 0", Shift{}.String())

	for kind := SHIFT_SHL; kind <= SHIFT_ROR; kind++ {
		shift := Shift{Kind: kind, Amount: 7}
		decoded, ok := decodeShift(shift.encode(0))
		assert.True(ok, kind.String())
		assert.Equal(shift, decoded)
	}

	_, ok = decodeShift(6 << 5)
	assert.False(ok)
	_, ok = decodeShift(7 << 5)
	assert.False(ok)
}

func TestShift_Wrap(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		amount uint8
		wraps  uint8
	}){
		{31, 31},
		{32, 0},
		{40, 8},
		{255, 31},
	}

	for _, entry := range table {
		shift := Shift{Kind: SHIFT_ASR, Amount: entry.amount}
		decoded, ok := decodeShift(shift.encode(0))
		assert.True(ok, entry.amount)
		assert.Equal(Shift{Kind: SHIFT_ASR, Amount: entry.wraps}, decoded, entry.amount)

		// Neighbouring fields are untouched.
		inst := Rrr{Op: OP_XOR, Dest: reg(1), Lhs: reg(2), Rhs: reg(31), Shift: shift}
		rrr, ok := DecodeRrr(inst.Encode())
		assert.True(ok, entry.amount)
		assert.Equal(reg(31), rrr.Rhs, entry.amount)
		assert.Equal(OP_XOR, rrr.Op, entry.amount)
		assert.Equal(entry.wraps, rrr.Shift.Amount, entry.amount)
	}
}

func TestBinOp(t *testing.T) {
	assert := assert.New(t)

	names := []string{"add", "sub", "mul", "div", "mod", "and", "or", "xor",
		"shl", "shr", "asl", "asr", "rol", "ror", "not", "neg", "addcc", "subcc"}

	for n, name := range names {
		op, ok := decodeBinOp(uint32(n))
		assert.True(ok, name)
		assert.Equal(name, op.String())
		assert.Equal(name == "addcc" || name == "subcc", op.IsCC(), name)
	}

	for value := uint32(len(names)); value < 32; value++ {
		_, ok := decodeBinOp(value)
		assert.False(ok, value)
	}

	assert.Equal("BinOp(18)", BinOp(18).String())
}

func TestCondition(t *testing.T) {
	assert := assert.New(t)

	for value := range uint32(8) {
		cond, ok := decodeCondition(value)
		assert.True(ok)
		assert.Equal(Condition(value), cond)
	}

	_, ok := decodeCondition(8)
	assert.False(ok)
	assert.Equal("gt", COND_GREATER_THAN.String())
}

func TestSignExtend(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(int32(-102), SignExtend(0x9a, 8))
	assert.Equal(int32(-86), SignExtend(0x7aa, 11))
	assert.Equal(int32(-21846), SignExtend(0xaaaa, 16))
	assert.Equal(int32(-3495254), SignExtend(0xcaaaaa, 24))
	assert.Equal(int32(0x2aa), SignExtend(0x2aa, 11))
	assert.Equal(int32(-1), SignExtend(0xffffffff, 32))
}

func TestSignContract(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint32(0x9a), SignContract(-102, 8))
	assert.Equal(uint32(0x7aa), SignContract(-86, 11))
	assert.Equal(uint32(0xaaaa), SignContract(-3495254, 16))
	assert.Equal(uint32(0xcaaaaa), SignContract(-3495254, 24))
	assert.Equal(uint32(0x7ff), SignContract(2047, 12))
}

func TestSignInverse(t *testing.T) {
	assert := assert.New(t)

	rng := rand.New(rand.NewSource(1))

	for width := uint(1); width < 32; width++ {
		lo := -(int64(1) << (width - 1))
		hi := (int64(1) << (width - 1)) - 1

		values := []int64{lo, hi, 0, -1}
		for range 64 {
			values = append(values, lo+rng.Int63n(hi-lo+1))
		}

		for _, value := range values {
			v := int32(value)
			contracted := SignContract(v, width)
			assert.Zero(contracted>>width, "width %d value %d", width, v)
			assert.Equal(v, SignExtend(contracted, width), "width %d value %d", width, v)
		}
	}
}
