// Package program builds memory images for the vm16 machine from Starlark
// scripts.
//
// A script assigns the global `program` a list of bytes. Nested lists,
// tuples and bytes literals are flattened in order. Two optional globals
// select where the image goes: `origin` (load address, default 0) and
// `entry` (initial ip, default origin).
//
// Every define handed to Load is predeclared as an int, along with two
// helpers:
//
//	word(v)         - [v >> 8, v & 0xff], for 16-bit operands
//	cell(col, row)  - screen offset of a zero based character cell
package program

import (
	"iter"
	"log"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/vm16/io"
)

// Image is a flat memory image and where to start executing it.
type Image struct {
	Origin uint16 // Load address of Bytes.
	Entry  uint16 // Initial ip.
	Bytes  []byte
}

// Load evaluates the script in src, and returns the image it describes.
// As with starlark.ExecFile, src may be a string, []byte or io.Reader. If src
// is nil, the script is read from the file called name.
func Load(name string, src any, defines iter.Seq2[string, int]) (image Image, err error) {
	defer func() {
		if err != nil {
			err = &ErrProgram{Name: name, Err: err}
		}
	}()

	thread := &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("%v: %v", name, msg)
		},
	}
	opts := syntax.FileOptions{
		TopLevelControl: true,
		GlobalReassign:  true,
		While:           true,
	}

	pred := starlark.StringDict{}
	if defines != nil {
		for key, value := range defines {
			pred[key] = starlark.MakeInt(value)
		}
	}
	pred["word"] = starlark.NewBuiltin("word", builtinWord)
	pred["cell"] = starlark.NewBuiltin("cell", builtinCell)

	globals, err := starlark.ExecFileOptions(&opts, thread, name, src, pred)
	if err != nil {
		return
	}

	st_program, ok := globals["program"]
	if !ok {
		err = ErrProgramMissing
		return
	}

	image.Bytes, err = flatten(st_program, nil)
	if err != nil {
		return
	}

	image.Origin, err = address(globals, "origin", 0)
	if err != nil {
		return
	}

	image.Entry, err = address(globals, "entry", image.Origin)
	if err != nil {
		return
	}

	if int(image.Origin)+len(image.Bytes) > io.MEMORY_SIZE {
		err = ErrProgramSize
		return
	}

	return
}

// flatten appends the bytes of value to data, walking nested sequences.
func flatten(value starlark.Value, data []byte) (out []byte, err error) {
	out = data

	switch value := value.(type) {
	case starlark.Int:
		n, ok := value.Int64()
		if !ok || n < 0 || n > 0xff {
			err = &ErrElement{Index: len(out), Err: ErrElementByte}
			return
		}
		out = append(out, byte(n))
	case starlark.Bytes:
		out = append(out, value...)
	case *starlark.List, starlark.Tuple:
		it := value.(starlark.Iterable).Iterate()
		defer it.Done()
		var elem starlark.Value
		for it.Next(&elem) {
			out, err = flatten(elem, out)
			if err != nil {
				return
			}
		}
	default:
		err = &ErrElement{Index: len(out), Err: ErrElementType}
	}

	return
}

// address returns the 16-bit global called name, or def if it is unset.
func address(globals starlark.StringDict, name string, def uint16) (addr uint16, err error) {
	addr = def

	value, ok := globals[name]
	if !ok {
		return
	}

	n, err := asInt(value, 0, 0xffff)
	if err != nil {
		err = &ErrGlobal{Name: name, Err: err}
		return
	}

	addr = uint16(n)
	return
}

// asInt converts value to an int in the range [low, high].
func asInt(value starlark.Value, low int, high int) (n int, err error) {
	st_int, ok := value.(starlark.Int)
	if !ok {
		err = ErrValueType
		return
	}

	n64, ok := st_int.Int64()
	if !ok || n64 < int64(low) || n64 > int64(high) {
		err = ErrValueRange
		return
	}

	n = int(n64)
	return
}

func builtinWord(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (rc starlark.Value, err error) {
	var value starlark.Value
	err = starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &value)
	if err != nil {
		return
	}

	// Negative values wrap to their two's complement encoding.
	n, err := asInt(value, -0x8000, 0xffff)
	if err != nil {
		return
	}

	word := uint16(n)
	rc = starlark.NewList([]starlark.Value{
		starlark.MakeInt(int(word >> 8)),
		starlark.MakeInt(int(word & 0xff)),
	})
	return
}

func builtinCell(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (rc starlark.Value, err error) {
	var st_col, st_row starlark.Value
	err = starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 2, &st_col, &st_row)
	if err != nil {
		return
	}

	rows := io.SCREEN_SIZE / io.SCREEN_COLUMNS

	col, err := asInt(st_col, 0, io.SCREEN_COLUMNS-1)
	if err != nil {
		return
	}
	row, err := asInt(st_row, 0, rows-1)
	if err != nil {
		return
	}

	rc = starlark.MakeInt(row*io.SCREEN_COLUMNS + col)
	return
}
