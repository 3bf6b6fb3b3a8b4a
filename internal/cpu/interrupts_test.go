package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNMI(t *testing.T) {
	// NOP at $8000, NOP at $9000
	c, mem := newTestCPU(0xea)
	mem.load(nmiVector, 0x00, 0x90)
	mem.data[0x9000] = 0xea
	c.SetStatus(flagB | flagC | flagI)

	c.NMI()
	n := step(t, c)

	assert.Equal(t, interruptCycles, n)
	assert.Equal(t, uint16(0x9000), c.PC())
	assert.Equal(t, uint8(0xfa), c.SP())
	assert.Equal(t, uint8(0x80), mem.data[0x01fd], "PC high")
	assert.Equal(t, uint8(0x00), mem.data[0x01fc], "PC low")
	assert.Equal(t, uint8(0x25), mem.data[0x01fb], "status is pushed with B clear")
	assert.True(t, c.Flag(FlagInterrupt))

	assert.Equal(t, 2, step(t, c), "NMI is serviced once")
	assert.Equal(t, uint16(0x9001), c.PC())
}

func TestIRQ(t *testing.T) {
	t.Run("masked while interrupts are disabled", func(t *testing.T) {
		c, mem := newTestCPU(0xea)
		mem.load(irqVector, 0x00, 0x90)
		c.SetFlag(FlagInterrupt, true)

		c.SetIRQ(true)

		assert.Equal(t, 2, step(t, c))
		assert.Equal(t, uint16(0x8001), c.PC())
	})

	t.Run("serviced while interrupts are enabled", func(t *testing.T) {
		c, mem := newTestCPU(0xea)
		mem.load(irqVector, 0x00, 0x90)
		mem.data[0x9000] = 0xea
		c.SetStatus(0)

		c.SetIRQ(true)

		assert.Equal(t, interruptCycles, step(t, c))
		assert.Equal(t, uint16(0x9000), c.PC())
		assert.Equal(t, uint8(0x20), mem.data[0x01fb])
		assert.True(t, c.Flag(FlagInterrupt))

		// the line is still high but now masked
		assert.Equal(t, 2, step(t, c))
	})

	t.Run("line released before service", func(t *testing.T) {
		c, mem := newTestCPU(0xea)
		mem.load(irqVector, 0x00, 0x90)
		c.SetStatus(0)

		c.SetIRQ(true)
		c.SetIRQ(false)

		assert.Equal(t, 2, step(t, c))
		assert.Equal(t, uint16(0x8001), c.PC())
	})
}

func TestInterruptPriority(t *testing.T) {
	c, mem := newTestCPU(0xea)
	mem.load(resetVector, 0x00, 0x90)
	mem.load(irqVector, 0x00, 0xa0)
	mem.data[0x9000] = 0xea
	c.SetStatus(0)

	c.SetIRQ(true)
	c.NMI()
	c.Reset()

	// reset first: no stack writes, interrupts disabled afterwards
	assert.Equal(t, interruptCycles, step(t, c))
	assert.Equal(t, uint16(0x9000), c.PC())
	assert.Equal(t, uint8(0xfd), c.SP())
	assert.Empty(t, mem.writes())

	// then the latched NMI
	assert.Equal(t, interruptCycles, step(t, c))
	assert.Equal(t, uint16(0x9000), c.PC())
	assert.Equal(t, uint8(0xfa), c.SP())

	// IRQ stays masked by the I flag set during reset
	assert.Equal(t, 2, step(t, c))
	assert.Equal(t, uint16(0x9001), c.PC())
}

func TestBRK_RTI(t *testing.T) {
	// BRK; padding; NOP
	c, mem := newTestCPU(0x00, 0xff, 0xea)
	mem.load(irqVector, 0x00, 0x90)
	mem.data[0x9000] = 0x40 // RTI
	c.SetStatus(flagC)

	assert.Equal(t, 7, step(t, c))
	assert.Equal(t, uint16(0x9000), c.PC())
	assert.Equal(t, uint8(0xfa), c.SP())
	assert.Equal(t, uint8(0x80), mem.data[0x01fd])
	assert.Equal(t, uint8(0x02), mem.data[0x01fc], "return address skips the padding byte")
	assert.Equal(t, uint8(0x31), mem.data[0x01fb], "status is pushed with B and unused set")
	assert.True(t, c.Flag(FlagInterrupt))
	assert.False(t, c.Flag(FlagBreak))

	assert.Equal(t, 6, step(t, c))
	assert.Equal(t, uint16(0x8002), c.PC())
	assert.Equal(t, uint8(0xfd), c.SP())
	assert.Equal(t, uint8(0x21), c.Status())

	assert.Equal(t, 2, step(t, c))
}

func TestRTI_FromNMI(t *testing.T) {
	c, mem := newTestCPU(0xea)
	mem.load(nmiVector, 0x00, 0x90)
	mem.data[0x9000] = 0x40 // RTI
	c.SetStatus(flagN | flagV)

	c.NMI()
	step(t, c)
	assert.Equal(t, 6, step(t, c))

	assert.Equal(t, programStart, c.PC(), "RTI does not add one")
	assert.Equal(t, uint8(0xe0), c.Status())
	assert.Equal(t, uint8(0xfd), c.SP())
}
