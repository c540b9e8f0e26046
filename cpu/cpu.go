package cpu

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"
	"runtime"
	"strings"

	"github.com/ezrec/vm16/io"
	"github.com/ezrec/vm16/translate"
)

// Cpu is the simulation context for the vm16 processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Memory io.Device // Address space for fetches, loads, stores and the stack.

	Registers Registers // Register file.
	FrameSize uint16    // Bytes pushed since the last frame boundary.
	Halted    bool      // Set once HLT has executed.

	Ticks int // Instructions executed since reset.
}

// NewCpu creates a reset CPU attached to memory.
func NewCpu(memory io.Device) (cpu *Cpu) {
	cpu = &Cpu{
		Memory: memory,
	}
	cpu.Reset()

	return
}

// Defines returns the opcode and register names, with their encodings.
func (cpu *Cpu) Defines() iter.Seq2[string, int] {
	defines := map[string]int{}
	for op := range _cpu_operands {
		defines[op.String()] = int(op)
	}
	for n := range REGISTER_COUNT {
		defines[strings.ToUpper(Register(n).String())] = n
	}
	defines["STACK_TOP"] = int(STACK_TOP)

	return maps.All(defines)
}

// Reset the CPU state.
// - Clears the registers, then points sp and fp at STACK_TOP.
// - Zeros the frame size and the tick counter.
// - Clears the halted state.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Registers.Reset()
	cpu.FrameSize = 0
	cpu.Halted = false
	cpu.Ticks = 0
}

// GetRegister returns the value of the register called name.
func (cpu *Cpu) GetRegister(name string) (value uint16, err error) {
	reg, err := RegisterByName(name)
	if err != nil {
		return
	}

	value = cpu.Registers.Get(reg)
	return
}

// SetRegister stores value in the register called name.
func (cpu *Cpu) SetRegister(name string, value uint16) (err error) {
	reg, err := RegisterByName(name)
	if err != nil {
		return
	}

	cpu.Registers.Set(reg, value)
	return
}

// fetch8 reads the byte at ip, and advances ip.
func (cpu *Cpu) fetch8() (value uint8, err error) {
	ip := cpu.Registers.Get(REG_IP)
	value, err = cpu.Memory.Read8(ip)
	if err != nil {
		return
	}

	cpu.Registers.Set(REG_IP, ip+1)
	return
}

// fetch16 reads the word at ip, and advances ip past it.
func (cpu *Cpu) fetch16() (value uint16, err error) {
	ip := cpu.Registers.Get(REG_IP)
	value, err = cpu.Memory.Read16(ip)
	if err != nil {
		return
	}

	cpu.Registers.Set(REG_IP, ip+2)
	return
}

// fetchRegister reads a register operand at ip.
func (cpu *Cpu) fetchRegister() (reg Register, err error) {
	value, err := cpu.fetch8()
	if err != nil {
		return
	}

	reg = registerOperand(value)
	return
}

// Step executes a single instruction. halted is true if it was HLT.
func (cpu *Cpu) Step() (halted bool, err error) {
	if cpu.Halted {
		err = ErrHalted
		return
	}

	ip := cpu.Registers.Get(REG_IP)

	value, err := cpu.fetch8()
	if err != nil {
		return
	}
	op := Opcode(value)

	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode{Address: ip, Opcode: op}, err)
		}
	}()

	args, _, err := decode(op, cpu.fetch8, cpu.fetch16)
	if err != nil {
		return
	}

	if cpu.Verbose {
		log.Printf("%v: %v", translate.Hex16(ip), Instruction{Address: ip, Opcode: op, Args: args[:len(_cpu_operands[op])]})
	}

	halted, err = cpu.Execute(op, args)
	cpu.Ticks++
	cpu.Halted = halted

	return
}

// Execute performs a decoded instruction. Register operands in args must
// already be reduced to register indexes.
func (cpu *Cpu) Execute(op Opcode, args [MAX_OPERANDS]uint16) (halted bool, err error) {
	regs := &cpu.Registers
	mem := cpu.Memory

	reg := func(n int) Register {
		return Register(args[n])
	}
	get := func(n int) uint16 {
		return regs.Get(reg(n))
	}
	accumulate := func(value uint16) {
		regs.Set(REG_AC, value)
	}
	branch := func(taken bool, addr uint16) {
		if taken {
			regs.Set(REG_IP, addr)
		}
	}
	load := func(addr uint16, dst Register) {
		var value uint16
		value, err = mem.Read16(addr)
		if err == nil {
			regs.Set(dst, value)
		}
	}

	ac := regs.Get(REG_AC)

	switch op {
	// Move
	case MOV_LIT_REG:
		regs.Set(reg(1), args[0])
	case MOV_REG_REG:
		regs.Set(reg(1), get(0))
	case MOV_REG_MEM:
		err = mem.Write16(args[1], get(0))
	case MOV_MEM_REG:
		load(args[0], reg(1))
	case MOV_LIT_MEM:
		err = mem.Write16(args[1], args[0])
	case MOV_REG_PTR_REG:
		load(get(0), reg(1))
	case MOV_LIT_OFF_REG:
		load(args[0]+get(1), reg(2))

	// Arithmetic
	case ADD_REG_REG:
		accumulate(get(0) + get(1))
	case ADD_LIT_REG:
		accumulate(args[0] + get(1))
	case SUB_LIT_REG:
		accumulate(get(1) - args[0])
	case SUB_REG_LIT:
		accumulate(args[1] - get(0))
	case SUB_REG_REG:
		accumulate(get(0) - get(1))
	case MUL_LIT_REG:
		accumulate(args[0] * get(1))
	case MUL_REG_REG:
		accumulate(get(0) * get(1))
	case INC_REG:
		regs.Set(reg(0), get(0)+1)
	case DEC_REG:
		regs.Set(reg(0), get(0)-1)

	// Logic
	case LSF_REG_LIT:
		regs.Set(reg(0), get(0)<<args[1])
	case LSF_REG_REG:
		regs.Set(reg(0), get(0)<<get(1))
	case RSF_REG_LIT:
		regs.Set(reg(0), get(0)>>args[1])
	case RSF_REG_REG:
		regs.Set(reg(0), get(0)>>get(1))
	case AND_REG_LIT:
		accumulate(get(0) & args[1])
	case AND_REG_REG:
		accumulate(get(0) & get(1))
	case OR_REG_LIT:
		accumulate(get(0) | args[1])
	case OR_REG_REG:
		accumulate(get(0) | get(1))
	case XOR_REG_LIT:
		accumulate(get(0) ^ args[1])
	case XOR_REG_REG:
		accumulate(get(0) ^ get(1))
	case NOT:
		accumulate(^get(0))

	// Conditional branch
	case JNE_LIT:
		branch(args[0] != ac, args[1])
	case JNE_REG:
		branch(get(0) != ac, args[1])
	case JEQ_LIT:
		branch(args[0] == ac, args[1])
	case JEQ_REG:
		branch(get(0) == ac, args[1])
	case JLT_LIT:
		branch(args[0] < ac, args[1])
	case JLT_REG:
		branch(get(0) < ac, args[1])
	case JGT_LIT:
		branch(args[0] > ac, args[1])
	case JGT_REG:
		branch(get(0) > ac, args[1])
	case JLE_LIT:
		branch(args[0] <= ac, args[1])
	case JLE_REG:
		branch(get(0) <= ac, args[1])
	case JGE_LIT:
		branch(args[0] >= ac, args[1])
	case JGE_REG:
		branch(get(0) >= ac, args[1])

	// Stack and subroutines
	case PSH_LIT:
		err = cpu.Push(args[0])
	case PSH_REG:
		err = cpu.Push(get(0))
	case POP:
		var value uint16
		value, err = cpu.Pop()
		if err == nil {
			regs.Set(reg(0), value)
		}
	case CAL_LIT:
		err = cpu.call(args[0])
	case CAL_REG:
		err = cpu.call(get(0))
	case RET:
		err = cpu.popState()
	case HLT:
		halted = true
		if cpu.Verbose {
			log.Printf("cpu: halt")
		}

	default:
		err = ErrOpcodeInvalid
	}

	return
}

// call saves the caller state and jumps to addr.
func (cpu *Cpu) call(addr uint16) (err error) {
	err = cpu.pushState()
	if err != nil {
		return
	}

	cpu.Registers.Set(REG_IP, addr)
	return
}

// Run steps until HLT, an error, or ctx is done. The goroutine yields
// between instructions so the host can interleave other work.
func (cpu *Cpu) Run(ctx context.Context) (err error) {
	for {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		default:
		}

		var halted bool
		halted, err = cpu.Step()
		if err != nil || halted {
			return
		}

		runtime.Gosched()
	}
}

// String returns the current register state, one register per line.
func (cpu *Cpu) String() (text string) {
	for reg, value := range cpu.Dump() {
		text += fmt.Sprintf("%s: %v\n", reg, translate.Hex16(value))
	}

	return
}
