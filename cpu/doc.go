// Package cpu implements the vm16 processor.
//
// The CPU has twelve 16-bit registers: the instruction pointer (ip), the
// accumulator (ac), eight general-purpose registers (r1-r8), the stack
// pointer (sp) and the frame pointer (fp). Instructions are a single opcode
// byte followed by a fixed sequence of register (1 byte) and literal or
// address (2 bytes, big-endian) operands, fetched through an io.Device.
//
// Subroutine calls save r1-r8, ip and a frame size marker on the memory stack,
// which grows downward from 0xfffe. Returns restore them and discard the
// arguments the caller pushed, as counted by the word just above the frame.
package cpu
