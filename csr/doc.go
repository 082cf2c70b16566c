// Package csr resolves the address map of the control/status register
// blocks.
//
// A block declaration names a block, its base address and the number of
// BLOCK_SIZE byte instances it occupies. The base is either an absolute
// address or the name of another block, in which case the block starts
// immediately after that block ends. A Builder accumulates declarations in
// any order; Builder.Finish resolves every relative base and returns a
// read-only Registry.
//
// Declarations are XML element trees:
//
//	<block name="isr" base="psr" count="3">
//	  <reg name="base" offset="0x0" size="word">
//	    <alias name="isr"/>
//	  </reg>
//	</block>
//
// or Starlark scripts calling block() and reg(), see LoadScript.
package csr
