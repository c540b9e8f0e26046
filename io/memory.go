package io

import (
	"encoding/binary"
)

// MEMORY_SIZE is the size of the full 16-bit address space in bytes.
const MEMORY_SIZE = 1 << 16

// Memory is a block of byte addressable RAM.
type Memory struct {
	Data []byte
}

var _ Device = (*Memory)(nil)

// NewMemory creates a zeroed memory block of size bytes.
func NewMemory(size int) *Memory {
	return &Memory{
		Data: make([]byte, size),
	}
}

// Reset zeros the memory block.
func (mem *Memory) Reset() {
	clear(mem.Data)
}

func (mem *Memory) check(addr uint16, width int) (err error) {
	if int(addr)+width > len(mem.Data) {
		err = &ErrAddress{Address: addr, Err: ErrAddressRange}
	}
	return
}

// Read8 returns the byte at addr.
func (mem *Memory) Read8(addr uint16) (value uint8, err error) {
	err = mem.check(addr, 1)
	if err != nil {
		return
	}

	value = mem.Data[addr]
	return
}

// Read16 returns the big-endian word at addr.
// A word straddling the end of the block is ErrAddressRange.
func (mem *Memory) Read16(addr uint16) (value uint16, err error) {
	err = mem.check(addr, 2)
	if err != nil {
		return
	}

	value = binary.BigEndian.Uint16(mem.Data[addr:])
	return
}

// Write8 stores a byte at addr.
func (mem *Memory) Write8(addr uint16, value uint8) (err error) {
	err = mem.check(addr, 1)
	if err != nil {
		return
	}

	mem.Data[addr] = value
	return
}

// Write16 stores a big-endian word at addr.
func (mem *Memory) Write16(addr uint16, value uint16) (err error) {
	err = mem.check(addr, 2)
	if err != nil {
		return
	}

	binary.BigEndian.PutUint16(mem.Data[addr:], value)
	return
}

// Load copies data into memory starting at addr.
func (mem *Memory) Load(addr uint16, data []byte) (err error) {
	if int(addr)+len(data) > len(mem.Data) {
		err = &ErrAddress{Address: addr, Err: ErrAddressRange}
		return
	}

	copy(mem.Data[addr:], data)
	return
}
