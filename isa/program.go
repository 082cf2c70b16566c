// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"bufio"
	"io"
	"iter"
	"log"
	"strconv"
	"strings"
)

const WORD_SIZE = 4 // Bytes per instruction word.

// Line is a single word of a disassembled program.
type Line struct {
	LineNo      int         // Source line, or 0 if not parsed from text.
	Address     uint32      // Byte address of the word.
	Word        uint32      // Raw instruction word.
	Instruction Instruction // Decoded instruction, nil if Err is set.
	Err         error       // Decode error, if any.
}

// Program is a disassembled listing of consecutive instruction words.
type Program struct {
	Lines []Line
}

// Disassembler builds Programs from instruction words.
type Disassembler struct {
	Verbose bool   // If set, logs every decoded word.
	Strict  bool   // If set, stops at the first word that does not decode.
	Base    uint32 // Address of the first word.
}

// Disassemble decodes words into a program listing.
func (dis *Disassembler) Disassemble(words ...uint32) (prog *Program, err error) {
	prog = &Program{}

	for _, word := range words {
		err = dis.append(prog, word, 0)
		if err != nil {
			return
		}
	}

	return
}

// Parse reads whitespace separated hex words, with ';' comments, and
// decodes them into a program listing.
func (dis *Disassembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	prog = &Program{}

	for scanner.Scan() {
		lineno += 1

		text_comment := strings.Split(scanner.Text(), ";")
		line = strings.TrimSpace(text_comment[0])

		for _, text := range strings.Fields(line) {
			var word uint32
			word, err = parseWord(text)
			if err != nil {
				return
			}

			err = dis.append(prog, word, lineno)
			if err != nil {
				return
			}
		}
	}

	err = scanner.Err()

	return
}

// parseWord parses a hex word, with or without a 0x prefix.
func parseWord(text string) (word uint32, err error) {
	digits := strings.TrimPrefix(strings.ToLower(text), "0x")
	digits = strings.ReplaceAll(digits, "_", "")
	if len(digits) == 0 {
		err = ErrParseWord(text)
		return
	}

	value, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		err = ErrParseWord(text)
		return
	}

	word = uint32(value)
	return
}

func (dis *Disassembler) append(prog *Program, word uint32, lineno int) (err error) {
	address := dis.Base + uint32(len(prog.Lines))*WORD_SIZE

	inst, decode_err := Decode(word)
	if dis.Verbose {
		if decode_err != nil {
			log.Printf("%08x: %v", address, decode_err)
		} else {
			log.Printf("%08x: 0x%08x %v %v", address, word, inst.Kind(), inst)
		}
	}

	if decode_err != nil && dis.Strict {
		return decode_err
	}

	prog.Lines = append(prog.Lines, Line{
		LineNo:      lineno,
		Address:     address,
		Word:        word,
		Instruction: inst,
		Err:         decode_err,
	})

	return
}

// Debug returns the line at address, or nil if there is none.
func (prog *Program) Debug(address uint32) (line *Line) {
	for n := range prog.Lines {
		if prog.Lines[n].Address == address {
			return &prog.Lines[n]
		}
	}

	return
}

// Binary re-encodes the program. Words that did not decode are emitted
// unchanged.
func (prog *Program) Binary() (bins []uint32) {
	for _, line := range prog.Lines {
		if line.Instruction == nil {
			bins = append(bins, line.Word)
		} else {
			bins = append(bins, line.Instruction.Encode())
		}
	}

	return
}

// Instructions iterates over the decoded instructions by address, skipping
// words that did not decode.
func (prog *Program) Instructions() iter.Seq2[uint32, Instruction] {
	return func(yield func(address uint32, inst Instruction) bool) {
		for _, line := range prog.Lines {
			if line.Instruction == nil {
				continue
			}
			if !yield(line.Address, line.Instruction) {
				return
			}
		}
	}
}

// Errors returns the lines that did not decode.
func (prog *Program) Errors() (lines []Line) {
	for _, line := range prog.Lines {
		if line.Err != nil {
			lines = append(lines, line)
		}
	}

	return
}
