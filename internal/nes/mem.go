package nes

// ReadWriter is satisfied by every device on the CPU bus.
type ReadWriter interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, data uint8)
}

// $0000-$07FF: 2 KB of internal RAM
// $0800-$1FFF: Mirrors of $0000-$07FF
// $2000-$3FFF: PPU registers and their mirrors
// $4000-$4017: APU and I/O registers
// $4018-$401F: APU and I/O functionality that is normally disabled
// $4020-$5FFF: Expansion area
// $6000-$FFFF: Cartridge space, including PRG-RAM and PRG-ROM
//
// No picture, audio or input device is attached: the register ranges
// read as 0 and ignore writes.
type cpuMemory struct {
	console *Console
}

func (c *Console) newCpuMemory() *cpuMemory {
	return &cpuMemory{console: c}
}

func (m *cpuMemory) Read8(addr uint16) uint8 {
	switch {
	// read from ram
	case addr < 0x2000:
		return m.console.ram.Read8(addr)
	// read from ppu, apu and io
	case addr < 0x4020:
		return 0
	// read from expansion area
	case addr < 0x6000:
		return 0
	}
	// read from cartridge
	if m.console.cart == nil {
		return 0
	}
	return m.console.cart.Read8(addr)
}

func (m *cpuMemory) Write8(addr uint16, data uint8) {
	switch {
	// write to ram
	case addr < 0x2000:
		m.console.ram.Write8(addr, data)
	// write to ppu, apu, io and expansion area
	case addr < 0x6000:
	// write to cartridge
	case m.console.cart != nil:
		m.console.cart.Write8(addr, data)
	}
}
