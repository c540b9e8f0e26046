package io

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory_ReadWrite(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(16)
	assert.Len(mem.Data, 16)

	assert.NoError(mem.Write16(0, 0x1234))
	assert.Equal([]byte{0x12, 0x34}, mem.Data[0:2])

	value8, err := mem.Read8(1)
	assert.NoError(err)
	assert.Equal(uint8(0x34), value8)

	assert.NoError(mem.Write8(2, 0xab))
	value16, err := mem.Read16(1)
	assert.NoError(err)
	assert.Equal(uint16(0x34ab), value16)
}

func TestMemory_Range(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(4)

	_, err := mem.Read8(4)
	assert.ErrorIs(err, ErrAddressRange)

	_, err = mem.Read16(3)
	assert.ErrorIs(err, ErrAddressRange)

	err = mem.Write16(3, 0xffff)
	assert.ErrorIs(err, ErrAddressRange)
	assert.Equal([]byte{0, 0, 0, 0}, mem.Data)

	var addr_err *ErrAddress
	assert.True(errors.As(err, &addr_err))
	assert.Equal(uint16(3), addr_err.Address)

	assert.NoError(mem.Write16(2, 0xffff))
}

func TestMemory_FullSpace(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(MEMORY_SIZE)

	assert.NoError(mem.Write16(0xfffe, 0xbeef))
	value, err := mem.Read16(0xfffe)
	assert.NoError(err)
	assert.Equal(uint16(0xbeef), value)

	_, err = mem.Read16(0xffff)
	assert.ErrorIs(err, ErrAddressRange)
}

func TestMemory_LoadReset(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(8)
	assert.NoError(mem.Load(2, []byte{1, 2, 3}))
	assert.Equal([]byte{0, 0, 1, 2, 3, 0, 0, 0}, mem.Data)

	assert.ErrorIs(mem.Load(6, []byte{1, 2, 3}), ErrAddressRange)

	mem.Reset()
	assert.Equal(make([]byte, 8), mem.Data)
}
