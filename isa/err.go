package isa

import (
	"errors"

	"github.com/ezrec/isa32/translate"
)

var f = translate.From

var (
	// Instruction decode errors
	ErrKind  = errors.New(f("instruction kind invalid"))
	ErrField = errors.New(f("instruction field out of range"))
)

// ErrDecode reports a word that does not decode to an instruction.
type ErrDecode struct {
	Word uint32
	Kind Kind // Valid only when Err is ErrField.
	Err  error
}

func (err ErrDecode) Error() string {
	if errors.Is(err.Err, ErrKind) {
		return f("word 0x%08x: %v", err.Word, err.Err)
	}
	return f("word 0x%08x: %v %v", err.Word, err.Kind, err.Err)
}

func (err ErrDecode) Unwrap() error {
	return err.Err
}

type ErrParseWord string

func (err ErrParseWord) Error() string {
	return f("'%v' is not a 32-bit word", string(err))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
