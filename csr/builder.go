// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package csr

import (
	"io"
	"log"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/ezrec/isa32/isa"
)

// Element and attribute names of a declaration.
const (
	NODE_CSR   = "csr"
	NODE_BLOCK = "block"
	NODE_REG   = "reg"
	NODE_ALIAS = "alias"

	ATTR_NAME   = "name"
	ATTR_BASE   = "base"
	ATTR_COUNT  = "count"
	ATTR_OFFSET = "offset"
	ATTR_SIZE   = "size"
)

// Builder accumulates block declarations until Finish resolves them.
type Builder struct {
	Verbose bool // If set, logs every block as it is added and resolved.

	blocks   map[string]*Block
	relative map[string]string // Block name to the name of the block it follows.
	names    map[string]string // Qualified register names and aliases to their block.
	finished bool
}

// NewBuilder creates an empty builder.
func NewBuilder() (bld *Builder) {
	bld = &Builder{}
	bld.init()
	return
}

func (bld *Builder) init() {
	if bld.blocks == nil {
		bld.blocks = make(map[string]*Block)
	}
	if bld.relative == nil {
		bld.relative = make(map[string]string)
	}
	if bld.names == nil {
		bld.names = make(map[string]string)
	}
}

// checkSpan verifies that every address of block, and the address following
// it, fits in 32 bits.
func checkSpan(block *Block) (err error) {
	end := uint64(block.Base) + uint64(block.Count)*BLOCK_SIZE
	if end > ADDRESS_MAX {
		return ErrInvalidBaseAddress
	}

	for _, register := range block.Registers {
		if uint64(block.Base)+uint64(register.Offset) > ADDRESS_MAX {
			return ErrAttribute{Node: NODE_REG, Attr: ATTR_OFFSET, Err: ErrInvalidBaseAddress}
		}
	}

	return
}

// registerNames returns the qualified names and aliases of block, or
// ErrRegisterDuplicate if one is already taken.
func (bld *Builder) registerNames(block *Block) (names []string, err error) {
	seen := make(map[string]bool)
	for _, register := range block.Registers {
		for _, name := range append([]string{register.QualifiedName()}, register.Aliases...) {
			_, taken := bld.names[name]
			if taken || seen[name] {
				return nil, ErrRegisterDuplicate(name)
			}
			seen[name] = true
			names = append(names, name)
		}
	}

	return
}

// attr returns an attribute of node, or ErrMissingAttribute.
func attr(node *etree.Element, key string) (value string, err error) {
	at := node.SelectAttr(key)
	if at == nil {
		err = ErrAttribute{Node: node.Tag, Attr: key, Err: ErrMissingAttribute}
		return
	}

	value = at.Value
	return
}

// parseHex parses a 0x prefixed 32-bit hexadecimal address.
func parseHex(text string) (value uint32, ok bool) {
	digits, found := strings.CutPrefix(text, "0x")
	if !found || len(digits) == 0 {
		return
	}

	v64, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return
	}

	return uint32(v64), true
}

// AddBlock adds a <block> declaration. A base naming another block is
// resolved immediately when that block already has an absolute base, and
// deferred to Finish otherwise. Register names and aliases must be unique
// across all blocks. A failed declaration leaves previously added blocks in
// place.
func (bld *Builder) AddBlock(node *etree.Element) (err error) {
	var name string

	defer func() {
		if err != nil && err != ErrFinished {
			err = ErrDeclaration{Block: name, Err: err}
		}
	}()

	if bld.finished {
		return ErrFinished
	}

	bld.init()

	if node.Tag != NODE_BLOCK {
		return ErrInvalidNode
	}

	base_text, err := attr(node, ATTR_BASE)
	if err != nil {
		return
	}

	name, err = attr(node, ATTR_NAME)
	if err != nil {
		return
	}

	count_text, err := attr(node, ATTR_COUNT)
	if err != nil {
		return
	}

	_, dup := bld.blocks[name]
	if dup {
		return ErrBlockDuplicate
	}

	count, err := strconv.ParseUint(count_text, 10, 32)
	if err != nil {
		return ErrAttribute{Node: node.Tag, Attr: ATTR_COUNT, Err: ErrInvalidAttribute}
	}

	block := &Block{
		Name:  name,
		Count: uint32(count),
	}

	var ref string
	if strings.HasPrefix(base_text, "0x") {
		var ok bool
		block.Base, ok = parseHex(base_text)
		if !ok {
			return ErrAttribute{Node: node.Tag, Attr: ATTR_BASE, Err: ErrInvalidBaseAddress}
		}
	} else if len(base_text) == 0 {
		return ErrAttribute{Node: node.Tag, Attr: ATTR_BASE, Err: ErrInvalidBaseAddress}
	} else {
		ref = base_text
	}

	for _, child := range node.ChildElements() {
		var register Register
		register, err = parseRegister(name, child)
		if err != nil {
			return
		}

		for _, other := range block.Registers {
			if other.Name == register.Name {
				return ErrRegisterDuplicate(register.QualifiedName())
			}
		}

		block.Registers = append(block.Registers, register)
	}

	names, err := bld.registerNames(block)
	if err != nil {
		return
	}

	pending := false
	if len(ref) != 0 {
		_, ref_pending := bld.relative[ref]
		prior, exists := bld.blocks[ref]
		if exists && !ref_pending {
			block.Base = prior.End()
		} else {
			pending = true
		}
	}

	err = checkSpan(block)
	if err != nil {
		return
	}

	if bld.Verbose {
		if len(ref) == 0 {
			log.Printf("csr: block %v base 0x%x count %d", name, block.Base, block.Count)
		} else {
			log.Printf("csr: block %v follows %v count %d", name, ref, block.Count)
		}
	}

	bld.blocks[name] = block
	if pending {
		bld.relative[name] = ref
	}
	for _, reg_name := range names {
		bld.names[reg_name] = name
	}

	return
}

// parseRegister parses a <reg> declaration of the named block.
func parseRegister(block string, node *etree.Element) (register Register, err error) {
	if node.Tag != NODE_REG {
		err = ErrInvalidNode
		return
	}

	name, err := attr(node, ATTR_NAME)
	if err != nil {
		return
	}

	offset_text, err := attr(node, ATTR_OFFSET)
	if err != nil {
		return
	}

	size_text, err := attr(node, ATTR_SIZE)
	if err != nil {
		return
	}

	offset, ok := parseHex(offset_text)
	if !ok {
		err = ErrAttribute{Node: node.Tag, Attr: ATTR_OFFSET, Err: ErrInvalidBaseAddress}
		return
	}

	width, ok := isa.ParseWidth(size_text)
	if !ok {
		err = ErrAttribute{Node: node.Tag, Attr: ATTR_SIZE, Err: ErrInvalidAttribute}
		return
	}

	register = Register{
		Block:  block,
		Name:   name,
		Offset: offset,
		Width:  width,
	}

	for _, child := range node.ChildElements() {
		if child.Tag != NODE_ALIAS {
			err = ErrInvalidNode
			return
		}

		var alias string
		alias, err = attr(child, ATTR_NAME)
		if err != nil {
			return
		}

		register.Aliases = append(register.Aliases, alias)
	}

	return
}

// Parse reads an XML document holding either a single <block> or a <csr>
// element of blocks, and adds every block.
func (bld *Builder) Parse(input io.Reader) (err error) {
	doc := etree.NewDocument()
	_, err = doc.ReadFrom(input)
	if err != nil {
		return
	}

	root := doc.Root()
	if root == nil {
		return ErrEmptyDocument
	}

	switch root.Tag {
	case NODE_BLOCK:
		return bld.AddBlock(root)
	case NODE_CSR:
		for _, node := range root.ChildElements() {
			err = bld.AddBlock(node)
			if err != nil {
				return
			}
		}
	default:
		return ErrDeclaration{Err: ErrInvalidNode}
	}

	return
}

type visitState int

const (
	visitNone = visitState(iota)
	visitActive
	visitDone
)

// order returns the block names such that every block follows the block
// its base refers to.
func (bld *Builder) order() (order []string, err error) {
	state := make(map[string]visitState, len(bld.blocks))

	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case visitDone:
			return nil
		case visitActive:
			return ErrBlockCycle(name)
		}

		state[name] = visitActive

		ref, relative := bld.relative[name]
		if relative {
			_, exists := bld.blocks[ref]
			if !exists {
				return ErrUnresolvedBlock(name)
			}

			err := visit(ref)
			if err != nil {
				return err
			}
		}

		state[name] = visitDone
		order = append(order, name)

		return nil
	}

	for _, name := range slices.Sorted(maps.Keys(bld.blocks)) {
		err = visit(name)
		if err != nil {
			return nil, err
		}
	}

	return
}

// Finish resolves every relative base and returns the registry. On error no
// registry is returned and the builder is unchanged, so missing blocks may
// be added and Finish retried. A resolved block extending past the 32-bit
// address space fails with ErrInvalidBaseAddress. After a successful Finish
// the builder accepts no more blocks.
func (bld *Builder) Finish() (reg *Registry, err error) {
	if bld.finished {
		return nil, ErrFinished
	}

	bld.init()

	order, err := bld.order()
	if err != nil {
		return
	}

	resolved := make(map[string]*Block, len(bld.blocks))
	for _, name := range order {
		block := bld.blocks[name].clone()

		ref, relative := bld.relative[name]
		if relative {
			block.Base = resolved[ref].End()
			err = checkSpan(&block)
			if err != nil {
				err = ErrDeclaration{Block: name, Err: err}
				return
			}
			if bld.Verbose {
				log.Printf("csr: block %v resolved to 0x%x", name, block.Base)
			}
		}

		resolved[name] = &block
	}

	reg, err = newRegistry(resolved)
	if err != nil {
		return
	}

	bld.finished = true
	bld.blocks = nil
	bld.relative = nil
	bld.names = nil

	return
}
