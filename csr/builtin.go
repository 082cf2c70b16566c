package csr

import (
	"bytes"
	_ "embed"
)

//go:embed builtin.xml
var builtinXml []byte

// Builtin returns the registry of the processor's own CSR blocks.
func Builtin() (reg *Registry, err error) {
	bld := NewBuilder()

	err = bld.Parse(bytes.NewReader(builtinXml))
	if err != nil {
		return
	}

	return bld.Finish()
}
