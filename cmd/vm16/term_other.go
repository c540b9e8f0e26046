//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd

package main

// isTerminal never prompts where termios is unavailable.
func isTerminal(fd int) bool {
	return false
}
