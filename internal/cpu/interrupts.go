package cpu

// Reset raises the reset line. It is serviced by the next Step
// ahead of any other pending interrupt.
func (c *CPU) Reset() {
	c.resetLine = true
}

// NMI latches a non-maskable interrupt. It is serviced once by
// a following Step regardless of the interrupt disable flag.
func (c *CPU) NMI() {
	c.nmiLine = true
}

// SetIRQ drives the level of the maskable interrupt line. While the
// line is high and interrupts are enabled, every Step services it.
func (c *CPU) SetIRQ(high bool) {
	c.irqLine = high
}

// serviceInterrupt handles at most one pending line in priority order
// reset, NMI, IRQ. ok is false when nothing was serviced.
func (c *CPU) serviceInterrupt() (cycles int, ok bool) {
	switch {
	case c.resetLine:
		c.resetLine = false
		c.reset()
	case c.nmiLine:
		c.nmiLine = false
		c.interrupt(nmiVector)
	case c.irqLine && !c.getFlag(flagI):
		c.interrupt(irqVector)
	default:
		return 0, false
	}
	return interruptCycles, true
}

// reset puts registers in their post-reset state. The stack pointer
// reflects three decrements that do not write to memory.
func (c *CPU) reset() {
	c.a = 0
	c.x = 0
	c.y = 0
	c.sp = 0xfd
	c.p = flagU | flagI
	c.pc = c.read16(resetVector)
}

// interrupt pushes the return address and the status with B clear,
// then jumps through vector.
func (c *CPU) interrupt(vector uint16) {
	c.stackPush16(c.pc)
	c.stackPush8(c.p&^flagB | flagU)
	c.setFlag(flagI, true)
	c.pc = c.read16(vector)
}
