// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/ezrec/vm16/emulator"
	"github.com/ezrec/vm16/program"
)

func init() {
	exe, _ := os.Executable()
	log.SetFlags(0)
	log.SetPrefix(fmt.Sprintf("%s: ", filepath.Base(exe)))
}

func main() {
	var prog string
	var interactive bool
	var verbose bool
	var window int
	var screen bool

	flag.StringVar(&prog, "p", "", ".star program to load")
	flag.BoolVar(&interactive, "i", false, "Interactive single stepping")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.IntVar(&window, "w", 8, "Memory window size, in bytes")
	flag.BoolVar(&screen, "screen", true, "Map the screen device")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("Unknown arguments: %v", flag.Args())
	}

	if len(prog) == 0 {
		log.Fatalf("No program, use -p program.star")
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.Screen.Output = os.Stdout

	err := emu.SetScreen(screen)
	if err != nil {
		log.Fatalf("%v", err)
	}

	image, err := program.Load(prog, nil, emu.Defines())
	if err != nil {
		log.Fatalf("%v", err)
	}

	err = emu.Load(image)
	if err != nil {
		log.Fatalf("%v: %v", prog, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if interactive {
		dbg := &debugger{
			Emulator: emu,
			Input:    os.Stdin,
			Output:   os.Stdout,
			Window:   window,
			Prompt:   isTerminal(int(os.Stdin.Fd())),
		}
		err = dbg.Run(ctx)
	} else {
		err = emu.Run(ctx)
	}

	if err != nil {
		stop()
		log.Fatalf("%v", err)
	}
}
