package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCpuMemory_RAMMirrors(t *testing.T) {
	console := NewConsole()
	mem := console.Memory()

	mem.Write8(0x0001, 0x42)
	for _, addr := range []uint16{0x0001, 0x0801, 0x1001, 0x1801} {
		assert.Equal(t, uint8(0x42), mem.Read8(addr), "address %04X", addr)
	}

	mem.Write8(0x1fff, 0x24)
	assert.Equal(t, uint8(0x24), mem.Read8(0x07ff))
}

func TestCpuMemory_OpenRanges(t *testing.T) {
	console := NewConsole()
	mem := console.Memory()

	for _, addr := range []uint16{0x2000, 0x2007, 0x3fff, 0x4016, 0x401f, 0x4020, 0x5fff} {
		mem.Write8(addr, 0xff)
		assert.Equal(t, uint8(0), mem.Read8(addr), "address %04X", addr)
	}
	assert.Equal(t, uint8(0), mem.Read8(0x8000), "no cartridge inserted")
	mem.Write8(0x8000, 0xff)
}

func TestCpuMemory_Cartridge(t *testing.T) {
	console := newTestConsole(t, 0xea)
	mem := console.Memory()

	assert.Equal(t, uint8(0xea), mem.Read8(0x8000))
	assert.Equal(t, uint8(0xea), mem.Read8(0xc000))

	mem.Write8(0x6123, 0x77)
	assert.Equal(t, uint8(0x77), mem.Read8(0x6123))
}
