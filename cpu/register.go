package cpu

import (
	"strings"
)

// Register identifies one of the CPU registers.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_IP = Register(0)  // ip
	REG_AC = Register(1)  // ac
	REG_R1 = Register(2)  // r1
	REG_R2 = Register(3)  // r2
	REG_R3 = Register(4)  // r3
	REG_R4 = Register(5)  // r4
	REG_R5 = Register(6)  // r5
	REG_R6 = Register(7)  // r6
	REG_R7 = Register(8)  // r7
	REG_R8 = Register(9)  // r8
	REG_SP = Register(10) // sp
	REG_FP = Register(11) // fp
)

// REGISTER_COUNT is the number of registers in the register file.
const REGISTER_COUNT = 12

// STACK_TOP is the reset value of sp and fp.
const STACK_TOP = uint16(0xfffe)

// Registers saved by a call, in push order.
var _frame_registers = [...]Register{
	REG_R1, REG_R2, REG_R3, REG_R4, REG_R5, REG_R6, REG_R7, REG_R8,
}

// RegisterByName returns the register called name, as printed by
// Register.String.
func RegisterByName(name string) (reg Register, err error) {
	name = strings.ToLower(name)
	for n := range REGISTER_COUNT {
		reg = Register(n)
		if reg.String() == name {
			return
		}
	}

	err = ErrRegisterName(name)
	return
}

// registerOperand reduces an encoded register byte to a register.
func registerOperand(value uint8) Register {
	return Register(value % REGISTER_COUNT)
}

// Registers is the register file.
type Registers [REGISTER_COUNT]uint16

// Get returns the value of reg.
func (regs *Registers) Get(reg Register) uint16 {
	return regs[reg]
}

// Set stores value in reg.
func (regs *Registers) Set(reg Register, value uint16) {
	regs[reg] = value
}

// Reset zeros every register, then points sp and fp at the stack top.
func (regs *Registers) Reset() {
	clear(regs[:])
	regs[REG_SP] = STACK_TOP
	regs[REG_FP] = STACK_TOP
}
