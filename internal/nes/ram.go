package nes

const ramSizeBytes = 0x800

// RAM is the 2 KB of internal work RAM. Addresses are mirrored
// every 2 KB, so the bus can pass $0000-$1FFF through unchanged.
type RAM struct {
	ram [ramSizeBytes]uint8
}

func NewRAM() *RAM {
	return &RAM{}
}

func (r *RAM) Read8(addr uint16) uint8 {
	return r.ram[addr&(ramSizeBytes-1)]
}

func (r *RAM) Write8(addr uint16, data uint8) {
	r.ram[addr&(ramSizeBytes-1)] = data
}
