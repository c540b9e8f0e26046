// Package io provides the address space of the vm16 machine: the Device
// contract every memory-mapped peripheral implements, plain RAM (Memory), the
// character Screen, and the Mapper that dispatches addresses to devices.
package io

// Device defines the interface for everything that can answer an address.
// Addresses are device local when the device is mapped with remapping, and
// global otherwise. 16-bit values are big-endian.
type Device interface {
	// Read8 returns the byte at addr.
	Read8(addr uint16) (value uint8, err error)
	// Read16 returns the word at addr and addr+1.
	Read16(addr uint16) (value uint16, err error)
	// Write8 stores a byte at addr.
	Write8(addr uint16, value uint8) error
	// Write16 stores a word at addr and addr+1.
	Write16(addr uint16, value uint16) error
}
