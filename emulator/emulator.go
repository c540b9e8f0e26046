// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"context"
	"errors"
	"iter"
	"log"
	"maps"
	"runtime"

	"github.com/ezrec/vm16/cpu"
	"github.com/ezrec/vm16/internal"
	"github.com/ezrec/vm16/io"
	"github.com/ezrec/vm16/program"
	"github.com/ezrec/vm16/translate"
)

const (
	RAM_BASE    = 0x0000                           // First RAM address.
	RAM_END     = 0xffff                           // Last RAM address.
	SCREEN_BASE = 0x3000                           // First screen cell.
	SCREEN_END  = SCREEN_BASE + io.SCREEN_SIZE - 1 // Last screen cell.
)

var _emulator_defines = map[string]int{
	"RAM_BASE":           RAM_BASE,
	"RAM_END":            RAM_END,
	"SCREEN_BASE":        SCREEN_BASE,
	"SCREEN_END":         SCREEN_END,
	"SCREEN_COLUMNS":     io.SCREEN_COLUMNS,
	"SCREEN_CMD_NONE":    int(io.SCREEN_CMD_NONE),
	"SCREEN_CMD_BOLD":    int(io.SCREEN_CMD_BOLD),
	"SCREEN_CMD_REGULAR": int(io.SCREEN_CMD_REGULAR),
	"SCREEN_CMD_CLEAR":   int(io.SCREEN_CMD_CLEAR),
}

// Emulator state. CPU + address space + devices.
type Emulator struct {
	Verbose bool // If set, enables verbose logging.
	*cpu.Cpu     // Reference to the CPU simulation.

	Mapper io.Mapper     // Address space seen by the CPU.
	Ram    *io.Memory    // Full 64K of RAM, under every other device.
	Screen io.Screen     // Character display.
	Image  program.Image // Currently loaded image.

	screen    io.Token
	screen_on bool
}

// NewEmulator creates a new emulator, with RAM and the screen mapped.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Ram: io.NewMemory(io.MEMORY_SIZE),
	}

	emu.Mapper.Map(emu.Ram, RAM_BASE, RAM_END, true)
	emu.SetScreen(true)

	emu.Cpu = cpu.NewCpu(&emu.Mapper)

	return
}

// SetScreen maps or unmaps the screen device. With the screen unmapped,
// its addresses fall through to RAM.
func (emu *Emulator) SetScreen(enabled bool) (err error) {
	if enabled == emu.screen_on {
		return
	}

	if enabled {
		emu.screen, err = emu.Mapper.Map(&emu.Screen, SCREEN_BASE, SCREEN_END, true)
	} else {
		err = emu.Mapper.Unmap(emu.screen)
	}
	if err != nil {
		return
	}

	emu.screen_on = enabled
	return
}

// Defines returns an iterator over all of the defines.
func (emu *Emulator) Defines() iter.Seq2[string, int] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// Load copies an image into RAM, and resets to its entry point.
func (emu *Emulator) Load(image program.Image) (err error) {
	emu.Image = image

	err = emu.Reset()
	return
}

// Reset restores RAM to the loaded image, and the CPU to its entry point.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose
	emu.Mapper.Verbose = emu.Verbose

	emu.Ram.Reset()
	err = emu.Ram.Load(emu.Image.Origin, emu.Image.Bytes)
	if err != nil {
		return
	}

	emu.Cpu.Reset()
	emu.Cpu.Registers.Set(cpu.REG_IP, emu.Image.Entry)

	if emu.Verbose {
		log.Printf("emulator: %d bytes at %v, entry %v", len(emu.Image.Bytes),
			translate.Hex16(emu.Image.Origin), translate.Hex16(emu.Image.Entry))
	}

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Ip returns current instruction pointer.
func (emu *Emulator) Ip() uint16 {
	return emu.Cpu.Registers.Get(cpu.REG_IP)
}

// Instruction decodes the instruction at ip.
func (emu *Emulator) Instruction() (cpu.Instruction, error) {
	return cpu.Decode(&emu.Mapper, emu.Ip())
}

// Tick performs a single tick of the emulator. done is set once the CPU
// has halted.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	ip := emu.Ip()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Ip: ip, Err: err}
		}
	}()

	done, err = emu.Cpu.Step()
	if errors.Is(err, cpu.ErrHalted) {
		done = true
		err = nil
	}

	return
}

// Run ticks until the CPU halts, an error occurs, or ctx is done.
func (emu *Emulator) Run(ctx context.Context) (err error) {
	for {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		default:
		}

		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			return
		}

		runtime.Gosched()
	}
}
