package csr

import (
	"fmt"
	"log"
	"strconv"

	"github.com/beevik/etree"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// elementValue is a declaration element as a Starlark value.
type elementValue struct {
	elem *etree.Element
}

var _ starlark.Value = (*elementValue)(nil)

func (ev *elementValue) String() string {
	doc := etree.NewDocument()
	doc.SetRoot(ev.elem.Copy())
	text, _ := doc.WriteToString()
	return text
}

func (ev *elementValue) Type() string         { return ev.elem.Tag }
func (ev *elementValue) Freeze()              {}
func (ev *elementValue) Truth() starlark.Bool { return starlark.True }

func (ev *elementValue) Hash() (uint32, error) {
	return 0, fmt.Errorf("unhashable type: %v", ev.Type())
}

// scriptAddress converts a Starlark int to a 0x prefixed address.
func scriptAddress(fn string, arg string, value starlark.Int) (text string, err error) {
	u64, ok := value.Uint64()
	if !ok || u64 > 0xffffffff {
		err = fmt.Errorf("%v: %v out of range", fn, arg)
		return
	}

	text = fmt.Sprintf("0x%x", u64)
	return
}

// scriptReg implements reg(name, offset, size, aliases=[]).
func scriptReg(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var name, size string
	var offset starlark.Int
	var aliases *starlark.List

	err = starlark.UnpackArgs(fn.Name(), args, kwargs,
		"name", &name,
		"offset", &offset,
		"size", &size,
		"aliases?", &aliases)
	if err != nil {
		return
	}

	offset_text, err := scriptAddress(fn.Name(), ATTR_OFFSET, offset)
	if err != nil {
		return
	}

	elem := etree.NewElement(NODE_REG)
	elem.CreateAttr(ATTR_NAME, name)
	elem.CreateAttr(ATTR_OFFSET, offset_text)
	elem.CreateAttr(ATTR_SIZE, size)

	if aliases != nil {
		for n := range aliases.Len() {
			alias, ok := starlark.AsString(aliases.Index(n))
			if !ok {
				err = fmt.Errorf("%v: aliases[%d] is not a string", fn.Name(), n)
				return
			}
			elem.CreateElement(NODE_ALIAS).CreateAttr(ATTR_NAME, alias)
		}
	}

	value = &elementValue{elem: elem}
	return
}

// ScriptBlocks executes a Starlark declaration script and returns the
// <block> elements it declared, in declaration order.
//
// The script declares blocks with block(name, base, count, regs=[]), where
// base is an address or the name of a preceding block, and registers with
// reg(name, offset, size, aliases=[]). BLOCK_SIZE is predeclared. src is
// as for starlark.ExecFile; if nil, filename is read.
func ScriptBlocks(filename string, src any) (blocks []*etree.Element, err error) {
	scriptBlock := func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
		var name string
		var base starlark.Value
		var count int
		var regs *starlark.List

		err = starlark.UnpackArgs(fn.Name(), args, kwargs,
			"name", &name,
			"base", &base,
			"count", &count,
			"regs?", &regs)
		if err != nil {
			return
		}

		if count < 0 {
			err = fmt.Errorf("%v: count must not be negative", fn.Name())
			return
		}

		var base_text string
		switch base := base.(type) {
		case starlark.Int:
			base_text, err = scriptAddress(fn.Name(), ATTR_BASE, base)
			if err != nil {
				return
			}
		case starlark.String:
			base_text = string(base)
		default:
			err = fmt.Errorf("%v: base must be int or string, not %v", fn.Name(), base.Type())
			return
		}

		elem := etree.NewElement(NODE_BLOCK)
		elem.CreateAttr(ATTR_NAME, name)
		elem.CreateAttr(ATTR_BASE, base_text)
		elem.CreateAttr(ATTR_COUNT, strconv.Itoa(count))

		if regs != nil {
			for n := range regs.Len() {
				reg, ok := regs.Index(n).(*elementValue)
				if !ok || reg.elem.Tag != NODE_REG {
					err = fmt.Errorf("%v: regs[%d] is not a reg", fn.Name(), n)
					return
				}
				elem.AddChild(reg.elem.Copy())
			}
		}

		blocks = append(blocks, elem)

		value = &elementValue{elem: elem}
		return
	}

	thread := starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("%v: %v", filename, msg)
		},
	}
	opts := syntax.FileOptions{
		TopLevelControl: true,
		GlobalReassign:  true,
	}
	pred := starlark.StringDict{
		"BLOCK_SIZE": starlark.MakeInt(BLOCK_SIZE),
		"block":      starlark.NewBuiltin("block", scriptBlock),
		"reg":        starlark.NewBuiltin("reg", scriptReg),
	}

	_, err = starlark.ExecFileOptions(&opts, &thread, filename, src, pred)
	if err != nil {
		err = ErrScript{Filename: filename, Err: err}
		blocks = nil
		return
	}

	return
}

// LoadScript executes a Starlark declaration script, and adds every block
// it declared.
func (bld *Builder) LoadScript(filename string, src any) (err error) {
	blocks, err := ScriptBlocks(filename, src)
	if err != nil {
		return
	}

	for _, block := range blocks {
		err = bld.AddBlock(block)
		if err != nil {
			return
		}
	}

	return
}
