package csr

import (
	"errors"

	"github.com/ezrec/isa32/translate"
)

var f = translate.From

var (
	// Declaration errors
	ErrInvalidNode        = errors.New(f("invalid node"))
	ErrMissingAttribute   = errors.New(f("missing attribute"))
	ErrInvalidAttribute   = errors.New(f("invalid attribute"))
	ErrInvalidBaseAddress = errors.New(f("invalid base address"))
	ErrBlockDuplicate     = errors.New(f("block duplicated"))
	ErrEmptyDocument      = errors.New(f("document has no root element"))

	// Builder errors
	ErrFinished = errors.New(f("registry already finished"))
)

// ErrUnresolvedBlock is returned by Finish when the named block's base
// refers to a block that was never added.
type ErrUnresolvedBlock string

func (err ErrUnresolvedBlock) Error() string {
	return f("block %v base is unresolved", string(err))
}

// ErrBlockCycle is returned by Finish when the named block's base refers,
// directly or through other blocks, back to itself.
type ErrBlockCycle string

func (err ErrBlockCycle) Error() string {
	return f("block %v base is circular", string(err))
}

// ErrRegisterDuplicate is returned when two registers, or aliases, share a
// name.
type ErrRegisterDuplicate string

func (err ErrRegisterDuplicate) Error() string {
	return f("register %v duplicated", string(err))
}

// ErrAttribute locates an attribute error on an element.
type ErrAttribute struct {
	Node string
	Attr string
	Err  error
}

func (err ErrAttribute) Error() string {
	return f("<%v %v> %v", err.Node, err.Attr, err.Err)
}

func (err ErrAttribute) Unwrap() error {
	return err.Err
}

// ErrDeclaration locates an error in a block declaration.
type ErrDeclaration struct {
	Block string // Empty if the block name is unknown.
	Err   error
}

func (err ErrDeclaration) Error() string {
	if err.Block == "" {
		return f("block: %v", err.Err)
	}
	return f("block %v: %v", err.Block, err.Err)
}

func (err ErrDeclaration) Unwrap() error {
	return err.Err
}

// ErrScript reports a failure executing a declaration script.
type ErrScript struct {
	Filename string
	Err      error
}

func (err ErrScript) Error() string {
	return f("%v: %v", err.Filename, err.Err)
}

func (err ErrScript) Unwrap() error {
	return err.Err
}
