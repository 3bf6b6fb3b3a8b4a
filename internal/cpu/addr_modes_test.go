package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name            string
		mode            addrMode
		operand         []uint8
		x, y            uint8
		mem             map[uint16]uint8
		expectedAddr    uint16
		expectedCrossed bool
		expectedPC      uint16
	}{
		{
			name:         "immediate points at the operand",
			mode:         addrModeIMM,
			operand:      []uint8{0x42},
			expectedAddr: 0x8000,
			expectedPC:   0x8001,
		},
		{
			name:         "zero page",
			mode:         addrModeZP,
			operand:      []uint8{0x42},
			expectedAddr: 0x0042,
			expectedPC:   0x8001,
		},
		{
			name:         "zero page x wraps",
			mode:         addrModeZPX,
			operand:      []uint8{0x80},
			x:            0xff,
			expectedAddr: 0x007f,
			expectedPC:   0x8001,
		},
		{
			name:         "zero page y wraps",
			mode:         addrModeZPY,
			operand:      []uint8{0xff},
			y:            0x02,
			expectedAddr: 0x0001,
			expectedPC:   0x8001,
		},
		{
			name:         "absolute is little endian",
			mode:         addrModeABS,
			operand:      []uint8{0x34, 0x12},
			expectedAddr: 0x1234,
			expectedPC:   0x8002,
		},
		{
			name:         "absolute x same page",
			mode:         addrModeABSX,
			operand:      []uint8{0x00, 0x12},
			x:            0x10,
			expectedAddr: 0x1210,
			expectedPC:   0x8002,
		},
		{
			name:            "absolute x crosses a page",
			mode:            addrModeABSX,
			operand:         []uint8{0xff, 0x12},
			x:               0x01,
			expectedAddr:    0x1300,
			expectedCrossed: true,
			expectedPC:      0x8002,
		},
		{
			name:            "absolute y wraps the address space",
			mode:            addrModeABSY,
			operand:         []uint8{0xff, 0xff},
			y:               0x01,
			expectedAddr:    0x0000,
			expectedCrossed: true,
			expectedPC:      0x8002,
		},
		{
			name:         "indirect",
			mode:         addrModeIND,
			operand:      []uint8{0x20, 0x01},
			mem:          map[uint16]uint8{0x0120: 0xfc, 0x0121: 0xba},
			expectedAddr: 0xbafc,
			expectedPC:   0x8002,
		},
		{
			name:         "indirect x",
			mode:         addrModeINDX,
			operand:      []uint8{0x20},
			x:            0x04,
			mem:          map[uint16]uint8{0x0024: 0x74, 0x0025: 0x20},
			expectedAddr: 0x2074,
			expectedPC:   0x8001,
		},
		{
			name:         "indirect x pointer wraps in zero page",
			mode:         addrModeINDX,
			operand:      []uint8{0xfe},
			x:            0x01,
			mem:          map[uint16]uint8{0x00ff: 0x34, 0x0000: 0x12, 0x0100: 0x99},
			expectedAddr: 0x1234,
			expectedPC:   0x8001,
		},
		{
			name:            "indirect y crosses a page",
			mode:            addrModeINDY,
			operand:         []uint8{0x86},
			y:               0x10,
			mem:             map[uint16]uint8{0x0086: 0xf8, 0x0087: 0x40},
			expectedAddr:    0x4108,
			expectedCrossed: true,
			expectedPC:      0x8001,
		},
		{
			name:         "indirect y pointer wraps in zero page",
			mode:         addrModeINDY,
			operand:      []uint8{0xff},
			y:            0x01,
			mem:          map[uint16]uint8{0x00ff: 0x00, 0x0000: 0x30},
			expectedAddr: 0x3001,
			expectedPC:   0x8001,
		},
		{
			name:         "relative forward",
			mode:         addrModeREL,
			operand:      []uint8{0x10},
			expectedAddr: 0x8011,
			expectedPC:   0x8001,
		},
		{
			name:            "relative backward across a page",
			mode:            addrModeREL,
			operand:         []uint8{0xf0},
			expectedAddr:    0x7ff1,
			expectedCrossed: true,
			expectedPC:      0x8001,
		},
		{
			name:       "accumulator reads nothing",
			mode:       addrModeACC,
			expectedPC: 0x8000,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, mem := newTestCPU(tt.operand...)
			c.SetX(tt.x)
			c.SetY(tt.y)
			for addr, v := range tt.mem {
				mem.data[addr] = v
			}

			addr, crossed, err := c.resolve(tt.mode)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, addr, "address")
			assert.Equal(t, tt.expectedCrossed, crossed, "page crossed")
			assert.Equal(t, tt.expectedPC, c.PC(), "PC")
			assert.Empty(t, mem.writes())
		})
	}
}

func TestResolve_UnknownMode(t *testing.T) {
	c, _ := newTestCPU()

	_, _, err := c.resolve(addrMode(0xff))

	assert.ErrorIs(t, err, ErrInvalidOperation)
}

func TestPageCrossCycles(t *testing.T) {
	tests := []struct {
		name           string
		program        []uint8
		x, y           uint8
		expectedCycles int
	}{
		{"LDA abs,X same page", []uint8{0xbd, 0x00, 0x02}, 0x01, 0, 4},
		{"LDA abs,X crossed", []uint8{0xbd, 0xff, 0x02}, 0x01, 0, 5},
		{"LDX abs,Y crossed", []uint8{0xbe, 0xff, 0x02}, 0, 0x01, 5},
		{"LDY abs,X crossed", []uint8{0xbc, 0xff, 0x02}, 0x01, 0, 5},
		{"LDA (zp),Y crossed", []uint8{0xb1, 0x10}, 0, 0x01, 6},
		{"STA abs,X crossed", []uint8{0x9d, 0xff, 0x02}, 0x01, 0, 5},
		{"STA abs,X same page", []uint8{0x9d, 0x00, 0x02}, 0x01, 0, 5},
		{"STA (zp),Y crossed", []uint8{0x91, 0x10}, 0, 0x01, 6},
		{"INC abs,X crossed", []uint8{0xfe, 0xff, 0x02}, 0x01, 0, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, mem := newTestCPU(tt.program...)
			mem.load(0x0010, 0xff, 0x02)
			c.SetX(tt.x)
			c.SetY(tt.y)

			assert.Equal(t, tt.expectedCycles, step(t, c))
		})
	}
}
