package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ezrec/vm16/cpu"
	"github.com/ezrec/vm16/emulator"
)

const debugUsage = "commands: [s]tep, [c]ontinue, [m]emory ADDR, [r]eset, [q]uit"

// debugger single steps an emulator, one command per input line.
type debugger struct {
	Emulator *emulator.Emulator
	Input    io.Reader
	Output   io.Writer
	Window   int  // Bytes shown in each memory window.
	Prompt   bool // Print a prompt before each command.
}

// Run reads commands until quit, end of input, or ctx is done.
func (dbg *debugger) Run(ctx context.Context) (err error) {
	scanner := bufio.NewScanner(dbg.Input)

	dbg.show()

	for {
		if dbg.Prompt {
			fmt.Fprint(dbg.Output, "> ")
		}

		if !scanner.Scan() {
			err = scanner.Err()
			return
		}

		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		default:
		}

		args := strings.Fields(scanner.Text())
		cmd := ""
		if len(args) > 0 {
			cmd = args[0]
			args = args[1:]
		}

		switch cmd {
		case "", "s", "step":
			dbg.step()
		case "c", "continue":
			err := dbg.Emulator.Run(ctx)
			dbg.report(err, dbg.Emulator.Cpu.Halted)
			dbg.show()
		case "m", "memory":
			dbg.memory(args)
		case "r", "reset":
			err := dbg.Emulator.Reset()
			dbg.report(err, false)
			dbg.show()
		case "q", "quit":
			return
		default:
			fmt.Fprintln(dbg.Output, debugUsage)
		}
	}
}

// step executes one instruction, then shows the machine state.
func (dbg *debugger) step() {
	done, err := dbg.Emulator.Tick()
	dbg.report(err, done)
	dbg.show()
}

func (dbg *debugger) report(err error, halted bool) {
	if err != nil {
		fmt.Fprintf(dbg.Output, "error: %v\n", err)
	} else if halted {
		fmt.Fprintln(dbg.Output, "halted")
	}
}

// show prints the registers, the next instruction, and memory at ip and sp.
func (dbg *debugger) show() {
	emu := dbg.Emulator

	fmt.Fprint(dbg.Output, emu.Cpu.String())

	ins, err := emu.Instruction()
	if err != nil {
		fmt.Fprintf(dbg.Output, "next: %v\n", err)
	} else {
		fmt.Fprintf(dbg.Output, "next: %v\n", ins)
	}

	dbg.window(emu.Ip())
	dbg.window(emu.Cpu.Registers.Get(cpu.REG_SP))
}

func (dbg *debugger) memory(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(dbg.Output, "memory ADDR")
		return
	}

	addr, err := strconv.ParseUint(args[0], 0, 16)
	if err != nil {
		fmt.Fprintf(dbg.Output, "error: %v\n", err)
		return
	}

	dbg.window(uint16(addr))
}

func (dbg *debugger) window(addr uint16) {
	data, err := dbg.Emulator.Cpu.Window(addr, dbg.Window)
	if err != nil {
		fmt.Fprintf(dbg.Output, "error: %v\n", err)
		return
	}

	fmt.Fprintln(dbg.Output, cpu.FormatWindow(addr, data))
}
