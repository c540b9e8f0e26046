//go:build linux

package main

import (
	"golang.org/x/sys/unix"
)

// isTerminal returns true if fd is a terminal.
func isTerminal(fd int) bool {
	_, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	return err == nil
}
