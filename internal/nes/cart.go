package nes

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

const (
	inesMagic        = 0x1a53454e // "NES\x1A"
	prgBankSizeBytes = 0x4000
	chrBankSizeBytes = 0x2000
	trainerSizeBytes = 0x200
)

// Mirroring is the nametable layout wired on the cartridge board.
type Mirroring uint8

const (
	MirrorHorizontal Mirroring = iota
	MirrorVertical
	MirrorFourScreen
)

func (m Mirroring) String() string {
	switch m {
	case MirrorHorizontal:
		return "horizontal"
	case MirrorVertical:
		return "vertical"
	case MirrorFourScreen:
		return "four-screen"
	}
	return "unknown"
}

type Cart struct {
	prgMem []uint8
	chrMem []uint8

	prgBanks uint8
	chrBanks uint8
	ramBanks uint8
	mapperID uint8
	mirror   Mirroring
	battery  bool
	vsSystem bool
	pal      bool

	mapper Mapper
}

// NewCartFromFile reads a .nes file and returns a Cart struct.
// Supported NES format: iNES
func NewCartFromFile(path string) (*Cart, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't open the file: %w", err)
	}
	defer file.Close()

	cart, err := LoadCart(bufio.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cart, nil
}

// LoadCart parses an iNES image from r and binds it to its mapper.
func LoadCart(r io.Reader) (*Cart, error) {
	var header struct {
		Magic      uint32
		PrgRomSize uint8
		ChrRomSize uint8
		Flags6     uint8
		Flags7     uint8
		Flags8     uint8
		Flags9     uint8
		Flags10    uint8
		_          [5]uint8 // unused
	}
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("%w: couldn't read the header: %s", ErrInvalidROM, err)
	}
	if header.Magic != inesMagic {
		return nil, fmt.Errorf("%w: bad magic number %08X", ErrInvalidROM, header.Magic)
	}
	// the second bit of flags6 is the trainer flag
	if header.Flags6&0x4 != 0 {
		if _, err := io.CopyN(io.Discard, r, trainerSizeBytes); err != nil {
			return nil, fmt.Errorf("%w: couldn't skip the trainer: %s", ErrInvalidROM, err)
		}
	}

	cart := &Cart{
		prgMem:   make([]uint8, int(header.PrgRomSize)*prgBankSizeBytes),
		chrMem:   make([]uint8, int(header.ChrRomSize)*chrBankSizeBytes),
		prgBanks: header.PrgRomSize,
		chrBanks: header.ChrRomSize,
		ramBanks: max(header.Flags8, 1), // 0 means one bank for compatibility
		// flag6: lower 4 bits of mapper ID
		// flag7: upper 4 bits of mapper ID
		mapperID: (header.Flags7 & 0xf0) | (header.Flags6 >> 4),
		battery:  header.Flags6&0x2 != 0,
		vsSystem: header.Flags7&0x1 != 0,
		pal:      header.Flags9&0x1 != 0,
	}
	switch {
	case header.Flags6&0x8 != 0:
		cart.mirror = MirrorFourScreen
	case header.Flags6&0x1 != 0:
		cart.mirror = MirrorVertical
	default:
		cart.mirror = MirrorHorizontal
	}

	if _, err := io.ReadFull(r, cart.prgMem); err != nil {
		return nil, fmt.Errorf("%w: couldn't read PRG ROM (%d bytes): %s", ErrInvalidROM, len(cart.prgMem), err)
	}
	if _, err := io.ReadFull(r, cart.chrMem); err != nil {
		return nil, fmt.Errorf("%w: couldn't read CHR ROM (%d bytes): %s", ErrInvalidROM, len(cart.chrMem), err)
	}

	mapper, err := NewMapper(cart)
	if err != nil {
		return nil, err
	}
	cart.mapper = mapper

	return cart, nil
}

func (c *Cart) PRGBanks() int        { return int(c.prgBanks) }
func (c *Cart) CHRBanks() int        { return int(c.chrBanks) }
func (c *Cart) RAMBanks() int        { return int(c.ramBanks) }
func (c *Cart) MapperID() uint8      { return c.mapperID }
func (c *Cart) Mirroring() Mirroring { return c.mirror }
func (c *Cart) HasBattery() bool     { return c.battery }
func (c *Cart) IsVSSystem() bool     { return c.vsSystem }
func (c *Cart) IsPAL() bool          { return c.pal }

func (c *Cart) Read8(addr uint16) uint8 {
	return c.mapper.Read8(addr)
}

func (c *Cart) Write8(addr uint16, data uint8) {
	c.mapper.Write8(addr, data)
}
