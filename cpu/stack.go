package cpu

import (
	"log"

	"github.com/ezrec/vm16/translate"
)

// Push stores value at sp, then moves sp down one word.
func (cpu *Cpu) Push(value uint16) (err error) {
	sp := cpu.Registers.Get(REG_SP)

	err = cpu.Memory.Write16(sp, value)
	if err != nil {
		return
	}

	cpu.Registers.Set(REG_SP, sp-2)
	cpu.FrameSize += 2
	return
}

// Pop moves sp up one word, then returns the value stored there.
func (cpu *Cpu) Pop() (value uint16, err error) {
	sp := cpu.Registers.Get(REG_SP) + 2

	value, err = cpu.Memory.Read16(sp)
	if err != nil {
		return
	}

	cpu.Registers.Set(REG_SP, sp)
	cpu.FrameSize -= 2
	return
}

// pushState opens a new stack frame. It pushes r1-r8, ip, and the size of
// the frame being closed (including the marker word itself), then starts
// counting the new frame from fp.
func (cpu *Cpu) pushState() (err error) {
	for _, reg := range _frame_registers {
		err = cpu.Push(cpu.Registers.Get(reg))
		if err != nil {
			return
		}
	}

	err = cpu.Push(cpu.Registers.Get(REG_IP))
	if err != nil {
		return
	}

	err = cpu.Push(cpu.FrameSize + 2)
	if err != nil {
		return
	}

	cpu.Registers.Set(REG_FP, cpu.Registers.Get(REG_SP))
	cpu.FrameSize = 0

	if cpu.Verbose {
		log.Printf("cpu: call, fp %v", translate.Hex16(cpu.Registers.Get(REG_FP)))
	}

	return
}

// popState closes the current stack frame. It unwinds sp to fp, restores
// ip and r8-r1, then drops the argument count word and that many arguments
// pushed by the caller. fp moves back up by the saved frame size.
func (cpu *Cpu) popState() (err error) {
	fp := cpu.Registers.Get(REG_FP)
	cpu.Registers.Set(REG_SP, fp)

	frame_size, err := cpu.Pop()
	if err != nil {
		return
	}
	// The caller's count resumes less the marker word.
	cpu.FrameSize = frame_size - 2

	ip, err := cpu.Pop()
	if err != nil {
		return
	}
	cpu.Registers.Set(REG_IP, ip)

	for n := len(_frame_registers) - 1; n >= 0; n-- {
		var value uint16
		value, err = cpu.Pop()
		if err != nil {
			return
		}
		cpu.Registers.Set(_frame_registers[n], value)
	}

	args, err := cpu.Pop()
	if err != nil {
		return
	}
	for range args {
		_, err = cpu.Pop()
		if err != nil {
			return
		}
	}

	cpu.Registers.Set(REG_FP, fp+frame_size)

	if cpu.Verbose {
		log.Printf("cpu: ret to %v, %d args, fp %v", translate.Hex16(ip), args, translate.Hex16(fp+frame_size))
	}

	return
}
