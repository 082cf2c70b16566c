// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package csr

import (
	"cmp"
	"iter"
	"slices"

	"github.com/ezrec/isa32/internal"
	"github.com/ezrec/isa32/isa"
)

const (
	BLOCK_SIZE  = 64         // Bytes per block instance.
	ADDRESS_MAX = 0xffffffff // Highest address a block may span, end included.
)

// Register describes a single CSR within a block.
type Register struct {
	Block   string    // Name of the containing block.
	Name    string    // Name within the block.
	Offset  uint32    // Byte offset from the block base.
	Width   isa.Width // Access width.
	Aliases []string  // Alternative names.
}

// QualifiedName returns the registry wide name, block_register.
func (reg Register) QualifiedName() string {
	return reg.Block + "_" + reg.Name
}

// Block is a named group of registers, repeated Count times.
type Block struct {
	Name      string
	Base      uint32
	Count     uint32
	Registers []Register
}

// Size returns the number of bytes spanned by all instances of the block.
func (block Block) Size() uint32 {
	return block.Count * BLOCK_SIZE
}

// End returns the first address after the block.
func (block Block) End() uint32 {
	return block.Base + block.Size()
}

func (block Block) clone() Block {
	block.Registers = slices.Clone(block.Registers)
	for n := range block.Registers {
		block.Registers[n].Aliases = slices.Clone(block.Registers[n].Aliases)
	}
	return block
}

// Registry is a resolved CSR address map. It has no mutating methods and
// may be shared between goroutines.
type Registry struct {
	blocks  map[string]*Block
	address map[string]uint32 // Qualified names and aliases.
	name    map[uint32]string // Address to qualified name.
}

// newRegistry indexes resolved blocks.
func newRegistry(blocks map[string]*Block) (reg *Registry, err error) {
	reg = &Registry{
		blocks:  blocks,
		address: make(map[string]uint32),
		name:    make(map[uint32]string),
	}

	for block := range reg.Blocks() {
		for _, register := range block.Registers {
			address := block.Base + register.Offset
			names := append([]string{register.QualifiedName()}, register.Aliases...)
			for _, name := range names {
				_, dup := reg.address[name]
				if dup {
					return nil, ErrRegisterDuplicate(name)
				}
				reg.address[name] = address
			}

			_, named := reg.name[address]
			if !named {
				reg.name[address] = register.QualifiedName()
			}
		}
	}

	return
}

// Len returns the number of blocks.
func (reg *Registry) Len() int {
	return len(reg.blocks)
}

// Block returns a copy of the named block.
func (reg *Registry) Block(name string) (block Block, ok bool) {
	ptr, ok := reg.blocks[name]
	if !ok {
		return
	}

	return ptr.clone(), true
}

// Blocks iterates over copies of all blocks in address order.
func (reg *Registry) Blocks() iter.Seq[Block] {
	sorted := internal.IterSortedFunc(reg.blocks, func(a, b *Block) int {
		return cmp.Compare(a.Base, b.Base)
	})

	return func(yield func(Block) bool) {
		for block := range sorted {
			if !yield(block.clone()) {
				return
			}
		}
	}
}

// Registers iterates over all registers, in block address order.
func (reg *Registry) Registers() iter.Seq[Register] {
	var seqs []iter.Seq[Register]
	for block := range reg.Blocks() {
		seqs = append(seqs, slices.Values(block.Registers))
	}

	return internal.IterSeqConcat(seqs...)
}

// Address returns the absolute address of a register by qualified name or
// alias.
func (reg *Registry) Address(name string) (address uint32, ok bool) {
	address, ok = reg.address[name]
	return
}

// Name returns the qualified name of the register at address.
func (reg *Registry) Name(address uint32) (name string, ok bool) {
	name, ok = reg.name[address]
	return
}

// CsrName returns the name of the register accessed by a Csr instruction.
func (reg *Registry) CsrName(inst isa.Csr) (name string, ok bool) {
	return reg.Name(inst.Imm)
}
