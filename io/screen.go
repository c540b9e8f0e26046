package io

import (
	"fmt"
	"io"
)

// Screen command codes, carried in the high byte of a 16-bit write.
const (
	SCREEN_CMD_NONE    = uint8(0x00) // Draw the character only.
	SCREEN_CMD_BOLD    = uint8(0x01) // Switch to bold before drawing.
	SCREEN_CMD_REGULAR = uint8(0x02) // Switch to regular before drawing.
	SCREEN_CMD_CLEAR   = uint8(0xff) // Erase the screen before drawing.
)

const (
	SCREEN_COLUMNS    = 16  // Cells per row.
	SCREEN_SIZE       = 256 // Cells on the screen, one per address.
	SCREEN_CELL_WIDTH = 2   // Default terminal columns per cell.
)

// Screen is a write-only character display rendered on an ANSI terminal.
// Every cell is one address: column = addr%16 + 1, row = addr/16 + 1.
type Screen struct {
	Output    io.Writer // Terminal output. nil discards.
	CellWidth int       // Terminal columns per cell. 0 is SCREEN_CELL_WIDTH.
}

var _ Device = (*Screen)(nil)

// Cell returns the 1-based column and row of a screen address.
func Cell(addr uint16) (column, row int) {
	column = int(addr%SCREEN_COLUMNS) + 1
	row = int(addr/SCREEN_COLUMNS) + 1
	return
}

// Read8 always reads 0; the screen is write-only.
func (sc *Screen) Read8(addr uint16) (value uint8, err error) {
	return
}

// Read16 always reads 0; the screen is write-only.
func (sc *Screen) Read16(addr uint16) (value uint16, err error) {
	return
}

// Write8 draws the character at the cell for addr.
func (sc *Screen) Write8(addr uint16, value uint8) error {
	return sc.draw(addr, SCREEN_CMD_NONE, value)
}

// Write16 applies the command in the high byte, then draws the character in
// the low byte at the cell for addr.
func (sc *Screen) Write16(addr uint16, value uint16) error {
	return sc.draw(addr, uint8(value>>8), uint8(value))
}

func (sc *Screen) draw(addr uint16, command uint8, char uint8) (err error) {
	out := sc.Output
	if out == nil {
		out = io.Discard
	}

	var seq string
	switch command {
	case SCREEN_CMD_CLEAR:
		seq = "\x1b[2J"
	case SCREEN_CMD_BOLD:
		seq = "\x1b[1m"
	case SCREEN_CMD_REGULAR:
		seq = "\x1b[0m"
	}

	width := sc.CellWidth
	if width <= 0 {
		width = SCREEN_CELL_WIDTH
	}

	column, row := Cell(addr)
	_, err = fmt.Fprintf(out, "%s\x1b[%d;%dH%c", seq, row, column*width, rune(char))
	return
}
