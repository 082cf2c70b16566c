// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/ezrec/isa32/csr"
	"github.com/ezrec/isa32/isa"
)

// loadRegistry loads a .xml or .star declaration, or the built-in map.
func loadRegistry(path string, verbose bool) (reg *csr.Registry, err error) {
	if len(path) == 0 {
		return csr.Builtin()
	}

	bld := csr.NewBuilder()
	bld.Verbose = verbose

	if filepath.Ext(path) == ".star" {
		err = bld.LoadScript(path, nil)
	} else {
		var inf *os.File
		inf, err = os.Open(path)
		if err != nil {
			return
		}
		defer inf.Close()
		err = bld.Parse(inf)
	}
	if err != nil {
		return
	}

	return bld.Finish()
}

func listRegistry(out io.Writer, reg *csr.Registry) {
	for block := range reg.Blocks() {
		fmt.Fprintf(out, "%08x %08x %v\n", block.Base, block.End(), block.Name)
		for _, register := range block.Registers {
			fmt.Fprintf(out, "  %08x %-5v %v", block.Base+register.Offset, register.Width, register.QualifiedName())
			if len(register.Aliases) != 0 {
				fmt.Fprintf(out, " (%v)", strings.Join(register.Aliases, ", "))
			}
			fmt.Fprintln(out)
		}
	}
}

func listProgram(out io.Writer, prog *isa.Program, reg *csr.Registry) {
	for _, line := range prog.Lines {
		if line.Err != nil {
			fmt.Fprintf(out, "%08x: %08x  ; %v\n", line.Address, line.Word, line.Err)
			continue
		}

		fmt.Fprintf(out, "%08x: %08x  %v", line.Address, line.Word, line.Instruction)
		if inst, ok := line.Instruction.(isa.Csr); ok {
			if name, ok := reg.CsrName(inst); ok {
				fmt.Fprintf(out, "  ; %v", name)
			}
		}
		fmt.Fprintln(out)
	}
}

func main() {
	var registry string
	var input string
	var base string
	var verbose bool
	var dump bool

	flag.StringVar(&registry, "r", "", ".xml or .star CSR declaration to use, instead of the built-in map")
	flag.StringVar(&input, "i", "", "File of hex words to disassemble, '-' for stdin")
	flag.StringVar(&base, "b", "0", "Base address of the first word")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&dump, "dump", false, "Dump decoded structures")

	flag.Parse()

	base_addr, err := strconv.ParseUint(base, 0, 32)
	if err != nil {
		log.Fatalf("%v: -b %v: %v", os.Args[0], base, err)
	}

	reg, err := loadRegistry(registry, verbose)
	if err != nil {
		log.Fatalf("%v: %v", registry, err)
	}

	dis := &isa.Disassembler{
		Verbose: verbose,
		Base:    uint32(base_addr),
	}

	var prog *isa.Program
	switch {
	case len(input) != 0:
		inf := os.Stdin
		if input != "-" {
			inf, err = os.Open(input)
			if err != nil {
				log.Fatalf("%v: %v", input, err)
			}
			defer inf.Close()
		}
		prog, err = dis.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
	case flag.NArg() != 0:
		prog, err = dis.Parse(strings.NewReader(strings.Join(flag.Args(), "\n")))
		if err != nil {
			log.Fatalf("%v: %v", os.Args[0], err)
		}
	}

	if prog == nil {
		listRegistry(os.Stdout, reg)
		if dump {
			spew.Dump(slices.Collect(reg.Blocks()))
		}
		return
	}

	listProgram(os.Stdout, prog, reg)
	if dump {
		spew.Dump(prog)
	}

	if len(prog.Errors()) != 0 {
		os.Exit(1)
	}
}
