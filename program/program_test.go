package program

import (
	"errors"
	"maps"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testDefines = map[string]int{
	"MOV_LIT_REG": 0x10,
	"HLT":         0xff,
	"R1":          2,
	"SCREEN_BASE": 0x3000,
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	src := strings.Join([]string{
		"program = [",
		"    MOV_LIT_REG, word(0x1234), R1,",
		"    HLT,",
		"]",
	}, "\n")

	image, err := Load("test.star", src, maps.All(testDefines))
	assert.NoError(err)
	assert.Equal(uint16(0), image.Origin)
	assert.Equal(uint16(0), image.Entry)
	assert.Equal([]byte{0x10, 0x12, 0x34, 0x02, 0xff}, image.Bytes)
}

func TestLoad_Globals(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		src    string
		origin uint16
		entry  uint16
		bytes  []byte
	}){
		{"program = [1, 2]\norigin = 0x100",
			0x100, 0x100, []byte{1, 2}},
		{"program = [1, 2]\norigin = 0x100\nentry = 0x101",
			0x100, 0x101, []byte{1, 2}},
		{"program = (1, [2, (3, [4])], b'\\x05\\x06')",
			0, 0, []byte{1, 2, 3, 4, 5, 6}},
		{"program = []",
			0, 0, nil},
		{"program = word(-1) + word(0x8000)",
			0, 0, []byte{0xff, 0xff, 0x80, 0x00}},
		{"program = word(SCREEN_BASE + cell(3, 2))",
			0, 0, []byte{0x30, 0x23}},
		{"program = []\nfor n in range(4):\n    program += [n]",
			0, 0, []byte{0, 1, 2, 3}},
		{"def twice(op):\n    return [op, op]\nprogram = twice(HLT)",
			0, 0, []byte{0xff, 0xff}},
		{"program = [0] * 0x100\norigin = 0xff00",
			0xff00, 0xff00, make([]byte, 0x100)},
	}

	for _, entry := range table {
		image, err := Load("test.star", entry.src, maps.All(testDefines))
		if !assert.NoError(err, entry.src) {
			continue
		}
		assert.Equal(entry.origin, image.Origin, entry.src)
		assert.Equal(entry.entry, image.Entry, entry.src)
		assert.Equal(entry.bytes, image.Bytes, entry.src)
	}
}

func TestLoad_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		src  string
		err  error
		text string
	}){
		{"origin = 0", ErrProgramMissing, "test.star: program not defined"},
		{"program = [1, 256]", ErrElementByte, "test.star: program[1] element not a byte"},
		{"program = [1, -1]", ErrElementByte, ""},
		{"program = [1, 2, 'x']", ErrElementType, "test.star: program[2] element not an int or list"},
		{"program = {1: 2}", ErrElementType, ""},
		{"program = [1]\norigin = 0x10000", ErrValueRange, "test.star: origin value out of range"},
		{"program = [1]\nentry = 'main'", ErrValueType, "test.star: entry value not an int"},
		{"program = [0] * 0x101\norigin = 0xff00", ErrProgramSize, "test.star: program does not fit in memory"},
	}

	for _, entry := range table {
		_, err := Load("test.star", entry.src, maps.All(testDefines))
		assert.ErrorIs(err, entry.err, entry.src)
		if len(entry.text) != 0 {
			assert.Equal(entry.text, err.Error(), entry.src)
		}

		var prog_err *ErrProgram
		assert.True(errors.As(err, &prog_err))
		assert.Equal("test.star", prog_err.Name)
	}
}

func TestLoad_Script(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		src  string
		text string
	}){
		{"program = [", "test.star: test.star:"},
		{"program = UNDEFINED", "undefined: UNDEFINED"},
		{"program = word(0x10000)", "value out of range"},
		{"program = word('a')", "value not an int"},
		{"program = cell(16, 0)", "value out of range"},
		{"program = cell(0, 16)", "value out of range"},
		{"program = cell(0)", "cell: got 1 arguments"},
	}

	for _, entry := range table {
		_, err := Load("test.star", entry.src, nil)
		if assert.Error(err, entry.src) {
			assert.Contains(err.Error(), entry.text, entry.src)
		}
	}
}

func TestLoad_File(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "hello.star")
	err := os.WriteFile(path, []byte("program = [HLT]\n"), 0o644)
	assert.NoError(err)

	image, err := Load(path, nil, maps.All(testDefines))
	assert.NoError(err)
	assert.Equal([]byte{0xff}, image.Bytes)

	_, err = Load(filepath.Join(t.TempDir(), "missing.star"), nil, nil)
	assert.ErrorIs(err, os.ErrNotExist)
}
