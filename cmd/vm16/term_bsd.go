//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package main

import (
	"golang.org/x/sys/unix"
)

// isTerminal returns true if fd is a terminal.
func isTerminal(fd int) bool {
	_, err := unix.IoctlGetTermios(fd, unix.TIOCGETA)
	return err == nil
}
