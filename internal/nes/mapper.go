package nes

import "fmt"

// Mapper translates CPU accesses in cartridge space ($4020-$FFFF).
type Mapper interface {
	ReadWriter
}

// NewMapper returns the mapper the cartridge header asks for.
func NewMapper(cart *Cart) (Mapper, error) {
	switch cart.mapperID {
	case 0:
		return newMapper0(cart)
	}
	return nil, fmt.Errorf("%w: %d", ErrUnsupportedMapper, cart.mapperID)
}

const prgRAMSizeBytes = 0x2000

// Mapper0 is NROM: one or two fixed 16 KB PRG banks and 8 KB of PRG RAM.
//
// $6000-$7FFF: PRG RAM
// $8000-$BFFF: first 16 KB of PRG ROM
// $C000-$FFFF: last 16 KB of PRG ROM, or a mirror of $8000-$BFFF
type Mapper0 struct {
	cart   *Cart
	prgRAM [prgRAMSizeBytes]uint8
}

func newMapper0(cart *Cart) (*Mapper0, error) {
	switch {
	case cart.pal:
		return nil, fmt.Errorf("%w: only NTSC images are supported", ErrInvalidROM)
	case cart.prgBanks == 0 || cart.prgBanks > 2:
		return nil, fmt.Errorf("%w: NROM holds 1 or 2 PRG banks, got %d", ErrInvalidROM, cart.prgBanks)
	case cart.chrBanks > 1:
		return nil, fmt.Errorf("%w: NROM holds at most 1 CHR bank, got %d", ErrInvalidROM, cart.chrBanks)
	}
	return &Mapper0{cart: cart}, nil
}

func (m *Mapper0) mapAddr(addr uint16) uint16 {
	if m.cart.prgBanks > 1 {
		return addr & 0x7fff
	}
	return addr & 0x3fff
}

func (m *Mapper0) Read8(addr uint16) uint8 {
	switch {
	// Read from PRG RAM
	case addr >= 0x6000 && addr <= 0x7fff:
		return m.prgRAM[addr&(prgRAMSizeBytes-1)]
	// Read from PRG ROM
	case addr >= 0x8000:
		return m.cart.prgMem[m.mapAddr(addr)]
	}
	return 0
}

// Write8 stores into PRG RAM. Writes to ROM are dropped.
func (m *Mapper0) Write8(addr uint16, data uint8) {
	if addr >= 0x6000 && addr <= 0x7fff {
		m.prgRAM[addr&(prgRAMSizeBytes-1)] = data
	}
}
