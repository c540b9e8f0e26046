package cpu

import (
	"fmt"
	"strings"

	"github.com/ezrec/vm16/io"
	"github.com/ezrec/vm16/translate"
)

// Opcode is the first byte of every instruction.
type Opcode uint8

//go:generate go tool stringer -type=Opcode
const (
	// Move
	MOV_LIT_REG     = Opcode(0x10)
	MOV_REG_REG     = Opcode(0x11)
	MOV_REG_MEM     = Opcode(0x12)
	MOV_MEM_REG     = Opcode(0x13)
	MOV_LIT_MEM     = Opcode(0x1b)
	MOV_REG_PTR_REG = Opcode(0x1c)
	MOV_LIT_OFF_REG = Opcode(0x1d)

	// Arithmetic
	ADD_REG_REG = Opcode(0x14)
	ADD_LIT_REG = Opcode(0x3f)
	SUB_LIT_REG = Opcode(0x16)
	SUB_REG_LIT = Opcode(0x1e)
	SUB_REG_REG = Opcode(0x1f)
	INC_REG     = Opcode(0x35)
	DEC_REG     = Opcode(0x36)
	MUL_LIT_REG = Opcode(0x20)
	MUL_REG_REG = Opcode(0x21)

	// Logic
	LSF_REG_LIT = Opcode(0x26)
	LSF_REG_REG = Opcode(0x27)
	RSF_REG_LIT = Opcode(0x2a)
	RSF_REG_REG = Opcode(0x2b)
	AND_REG_LIT = Opcode(0x2e)
	AND_REG_REG = Opcode(0x2f)
	OR_REG_LIT  = Opcode(0x30)
	OR_REG_REG  = Opcode(0x31)
	XOR_REG_LIT = Opcode(0x32)
	XOR_REG_REG = Opcode(0x33)
	NOT         = Opcode(0x34)

	// Conditional branch, comparing against ac
	JNE_REG = Opcode(0x40)
	JNE_LIT = Opcode(0x15)
	JEQ_REG = Opcode(0x3e)
	JEQ_LIT = Opcode(0x41)
	JLT_REG = Opcode(0x42)
	JLT_LIT = Opcode(0x43)
	JGT_REG = Opcode(0x44)
	JGT_LIT = Opcode(0x45)
	JLE_REG = Opcode(0x46)
	JLE_LIT = Opcode(0x47)
	JGE_REG = Opcode(0x48)
	JGE_LIT = Opcode(0x49)

	// Stack and subroutines
	PSH_LIT = Opcode(0x17)
	PSH_REG = Opcode(0x18)
	POP     = Opcode(0x1a)
	CAL_LIT = Opcode(0x5e)
	CAL_REG = Opcode(0x5f)
	RET     = Opcode(0x60)
	HLT     = Opcode(0xff)
)

// Operand is the encoding of one instruction operand.
type Operand int

//go:generate go tool stringer -linecomment -type=Operand
const (
	OPERAND_REG  = Operand(0) // reg
	OPERAND_LIT  = Operand(1) // lit
	OPERAND_ADDR = Operand(2) // addr
)

// Width returns the number of bytes the operand occupies.
func (operand Operand) Width() int {
	if operand == OPERAND_REG {
		return 1
	}
	return 2
}

// MAX_OPERANDS is the largest operand count of any instruction.
const MAX_OPERANDS = 3

var (
	_reg          = []Operand{OPERAND_REG}
	_lit          = []Operand{OPERAND_LIT}
	_addr         = []Operand{OPERAND_ADDR}
	_reg_reg      = []Operand{OPERAND_REG, OPERAND_REG}
	_lit_reg      = []Operand{OPERAND_LIT, OPERAND_REG}
	_reg_lit      = []Operand{OPERAND_REG, OPERAND_LIT}
	_reg_addr     = []Operand{OPERAND_REG, OPERAND_ADDR}
	_addr_reg     = []Operand{OPERAND_ADDR, OPERAND_REG}
	_lit_addr     = []Operand{OPERAND_LIT, OPERAND_ADDR}
	_lit_reg_reg  = []Operand{OPERAND_LIT, OPERAND_REG, OPERAND_REG}
	_none         = []Operand{}
	_cpu_operands = map[Opcode][]Operand{
		MOV_LIT_REG:     _lit_reg,
		MOV_REG_REG:     _reg_reg,
		MOV_REG_MEM:     _reg_addr,
		MOV_MEM_REG:     _addr_reg,
		MOV_LIT_MEM:     _lit_addr,
		MOV_REG_PTR_REG: _reg_reg,
		MOV_LIT_OFF_REG: _lit_reg_reg,

		ADD_REG_REG: _reg_reg,
		ADD_LIT_REG: _lit_reg,
		SUB_LIT_REG: _lit_reg,
		SUB_REG_LIT: _reg_lit,
		SUB_REG_REG: _reg_reg,
		INC_REG:     _reg,
		DEC_REG:     _reg,
		MUL_LIT_REG: _lit_reg,
		MUL_REG_REG: _reg_reg,

		LSF_REG_LIT: _reg_lit,
		LSF_REG_REG: _reg_reg,
		RSF_REG_LIT: _reg_lit,
		RSF_REG_REG: _reg_reg,
		AND_REG_LIT: _reg_lit,
		AND_REG_REG: _reg_reg,
		OR_REG_LIT:  _reg_lit,
		OR_REG_REG:  _reg_reg,
		XOR_REG_LIT: _reg_lit,
		XOR_REG_REG: _reg_reg,
		NOT:         _reg,

		JNE_REG: _reg_addr,
		JNE_LIT: _lit_addr,
		JEQ_REG: _reg_addr,
		JEQ_LIT: _lit_addr,
		JLT_REG: _reg_addr,
		JLT_LIT: _lit_addr,
		JGT_REG: _reg_addr,
		JGT_LIT: _lit_addr,
		JLE_REG: _reg_addr,
		JLE_LIT: _lit_addr,
		JGE_REG: _reg_addr,
		JGE_LIT: _lit_addr,

		PSH_LIT: _lit,
		PSH_REG: _reg,
		POP:     _reg,
		CAL_LIT: _addr,
		CAL_REG: _reg,
		RET:     _none,
		HLT:     _none,
	}
)

// Operands returns the operand encoding of the opcode, in fetch order.
// ok is false for bytes that are not an opcode.
func (op Opcode) Operands() (operands []Operand, ok bool) {
	operands, ok = _cpu_operands[op]
	return
}

// Valid returns true if the opcode has a handler.
func (op Opcode) Valid() bool {
	_, ok := _cpu_operands[op]
	return ok
}

// Size returns the encoded size of the instruction in bytes, or 0 for an
// invalid opcode.
func (op Opcode) Size() (size int) {
	operands, ok := op.Operands()
	if !ok {
		return
	}

	size = 1
	for _, operand := range operands {
		size += operand.Width()
	}
	return
}

// decode reads the operands of op with the supplied fetchers. Register
// operands are reduced to a valid register index.
func decode(op Opcode, fetch8 func() (uint8, error), fetch16 func() (uint16, error)) (args [MAX_OPERANDS]uint16, count int, err error) {
	operands, ok := op.Operands()
	if !ok {
		err = ErrOpcodeInvalid
		return
	}

	for n, operand := range operands {
		switch operand {
		case OPERAND_REG:
			var value uint8
			value, err = fetch8()
			args[n] = uint16(registerOperand(value))
		default:
			args[n], err = fetch16()
		}
		if err != nil {
			return
		}
	}

	count = len(operands)
	return
}

// Instruction is a decoded instruction, for display.
type Instruction struct {
	Address uint16
	Opcode  Opcode
	Args    []uint16
}

// Decode decodes the instruction at addr without executing it.
func Decode(device io.Device, addr uint16) (ins Instruction, err error) {
	ins.Address = addr

	op, err := device.Read8(addr)
	if err != nil {
		return
	}
	ins.Opcode = Opcode(op)

	next := addr + 1
	fetch8 := func() (value uint8, err error) {
		value, err = device.Read8(next)
		next++
		return
	}
	fetch16 := func() (value uint16, err error) {
		value, err = device.Read16(next)
		next += 2
		return
	}

	args, count, err := decode(ins.Opcode, fetch8, fetch16)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrOpcode{Address: addr, Opcode: ins.Opcode}, err)
		return
	}
	ins.Args = args[:count]

	return
}

// String returns the instruction as "OPCODE arg, arg".
func (ins Instruction) String() string {
	operands, _ := ins.Opcode.Operands()

	args := make([]string, len(ins.Args))
	for n, arg := range ins.Args {
		if n < len(operands) && operands[n] == OPERAND_REG {
			args[n] = Register(arg).String()
		} else {
			args[n] = translate.Hex16(arg)
		}
	}

	if len(args) == 0 {
		return ins.Opcode.String()
	}

	return ins.Opcode.String() + " " + strings.Join(args, ", ")
}
