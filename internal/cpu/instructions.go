package cpu

import "fmt"

// execute runs the instruction described by op against the effective
// address and returns the cycles it costs beyond its base cost.
func (c *CPU) execute(op opcode, addr uint16, crossed bool) (int, error) {
	switch op.mnemonic {
	case opADC:
		c.adc(addr)
	case opAND:
		c.and(addr)
	case opASL:
		c.shift(op.mode, addr, c.asl)
	case opBCC:
		return c.branch(!c.getFlag(flagC), addr, crossed), nil
	case opBCS:
		return c.branch(c.getFlag(flagC), addr, crossed), nil
	case opBEQ:
		return c.branch(c.getFlag(flagZ), addr, crossed), nil
	case opBIT:
		c.bit(addr)
	case opBMI:
		return c.branch(c.getFlag(flagN), addr, crossed), nil
	case opBNE:
		return c.branch(!c.getFlag(flagZ), addr, crossed), nil
	case opBPL:
		return c.branch(!c.getFlag(flagN), addr, crossed), nil
	case opBRK:
		c.brk()
	case opBVC:
		return c.branch(!c.getFlag(flagV), addr, crossed), nil
	case opBVS:
		return c.branch(c.getFlag(flagV), addr, crossed), nil
	case opCLC:
		c.setFlag(flagC, false)
	case opCLD:
		c.setFlag(flagD, false)
	case opCLI:
		c.setFlag(flagI, false)
	case opCLV:
		c.setFlag(flagV, false)
	case opCMP:
		c.compare(c.a, addr)
	case opCPX:
		c.compare(c.x, addr)
	case opCPY:
		c.compare(c.y, addr)
	case opDEC:
		c.modify(addr, c.dec)
	case opDEX:
		c.x--
		c.setFlagsZN(c.x)
	case opDEY:
		c.y--
		c.setFlagsZN(c.y)
	case opEOR:
		c.eor(addr)
	case opINC:
		c.modify(addr, c.inc)
	case opINX:
		c.x++
		c.setFlagsZN(c.x)
	case opINY:
		c.y++
		c.setFlagsZN(c.y)
	case opJMP:
		c.pc = addr
	case opJSR:
		c.jsr(addr)
	case opLDA:
		c.a = c.load(addr)
	case opLDX:
		c.x = c.load(addr)
	case opLDY:
		c.y = c.load(addr)
	case opLSR:
		c.shift(op.mode, addr, c.lsr)
	case opNOP:
	case opORA:
		c.ora(addr)
	case opPHA:
		c.stackPush8(c.a)
	case opPHP:
		c.php()
	case opPLA:
		c.a = c.stackPop8()
		c.setFlagsZN(c.a)
	case opPLP:
		c.plp()
	case opROL:
		c.shift(op.mode, addr, c.rol)
	case opROR:
		c.shift(op.mode, addr, c.ror)
	case opRTI:
		c.rti()
	case opRTS:
		c.rts()
	case opSBC:
		c.sbc(addr)
	case opSEC:
		c.setFlag(flagC, true)
	case opSED:
		c.setFlag(flagD, true)
	case opSEI:
		c.setFlag(flagI, true)
	case opSTA:
		c.write8(addr, c.a)
	case opSTX:
		c.write8(addr, c.x)
	case opSTY:
		c.write8(addr, c.y)
	case opTAX:
		c.x = c.a
		c.setFlagsZN(c.x)
	case opTAY:
		c.y = c.a
		c.setFlagsZN(c.y)
	case opTSX:
		c.x = c.sp
		c.setFlagsZN(c.x)
	case opTXA:
		c.a = c.x
		c.setFlagsZN(c.a)
	case opTXS:
		c.sp = c.x
	case opTYA:
		c.a = c.y
		c.setFlagsZN(c.a)
	default:
		return 0, fmt.Errorf("%w: no executor for %s", ErrInvalidOperation, op.mnemonic)
	}
	return 0, nil
}

// Add with Carry
// A = A + M + C
//
// Flags affected: C, Z, N, V
func (c *CPU) adc(addr uint16) {
	c.addWithCarry(c.read8(addr))
}

// Subtract with Carry
// A = A - M - (1 - C)
//
// Flags affected: C, Z, N, V
//
// Adding the one's complement of M gives the same result and leaves
// C set when no borrow happened.
func (c *CPU) sbc(addr uint16) {
	c.addWithCarry(^c.read8(addr))
}

func (c *CPU) addWithCarry(m uint8) {
	sum := uint16(c.a) + uint16(m)
	if c.getFlag(flagC) {
		sum++
	}
	r := uint8(sum)
	c.setFlag(flagC, sum > 0xff)
	// operands share a sign and the result does not
	c.setFlag(flagV, ^(c.a^m)&(c.a^r)&0x80 != 0)
	c.a = r
	c.setFlagsZN(r)
}

func (c *CPU) and(addr uint16) {
	c.a &= c.read8(addr)
	c.setFlagsZN(c.a)
}

func (c *CPU) ora(addr uint16) {
	c.a |= c.read8(addr)
	c.setFlagsZN(c.a)
}

func (c *CPU) eor(addr uint16) {
	c.a ^= c.read8(addr)
	c.setFlagsZN(c.a)
}

func (c *CPU) load(addr uint16) uint8 {
	v := c.read8(addr)
	c.setFlagsZN(v)
	return v
}

// Bit Test
// A & M, N <- M7, V <- M6
//
// Flags affected: Z, N, V
func (c *CPU) bit(addr uint16) {
	m := c.read8(addr)
	c.setFlag(flagZ, c.a&m == 0)
	c.setFlag(flagN, m&0x80 > 0)
	c.setFlag(flagV, m&0x40 > 0)
}

// compare sets the flags as reg - M would, without storing the result.
//
// Flags affected: C, Z, N
func (c *CPU) compare(reg uint8, addr uint16) {
	m := c.read8(addr)
	c.setFlag(flagC, reg >= m)
	c.setFlagsZN(reg - m)
}

// modify reads addr, applies fn and writes the result back to addr.
func (c *CPU) modify(addr uint16, fn func(uint8) uint8) {
	v := c.read8(addr)
	c.write8(addr, fn(v))
}

// shift applies fn to the accumulator or to memory depending on the mode.
func (c *CPU) shift(mode addrMode, addr uint16, fn func(uint8) uint8) {
	if mode == addrModeACC {
		c.a = fn(c.a)
		return
	}
	c.modify(addr, fn)
}

func (c *CPU) inc(v uint8) uint8 {
	v++
	c.setFlagsZN(v)
	return v
}

func (c *CPU) dec(v uint8) uint8 {
	v--
	c.setFlagsZN(v)
	return v
}

// Arithmetic Shift Left
// C <- [76543210] <- 0
func (c *CPU) asl(v uint8) uint8 {
	c.setFlag(flagC, v&0x80 > 0)
	v <<= 1
	c.setFlagsZN(v)
	return v
}

// Logical Shift Right
// 0 -> [76543210] -> C
func (c *CPU) lsr(v uint8) uint8 {
	c.setFlag(flagC, v&0x01 > 0)
	v >>= 1
	c.setFlagsZN(v)
	return v
}

// Rotate Left
// C <- [76543210] <- C
func (c *CPU) rol(v uint8) uint8 {
	r := v << 1
	if c.getFlag(flagC) {
		r |= 0x01
	}
	c.setFlag(flagC, v&0x80 > 0)
	c.setFlagsZN(r)
	return r
}

// Rotate Right
// C -> [76543210] -> C
func (c *CPU) ror(v uint8) uint8 {
	r := v >> 1
	if c.getFlag(flagC) {
		r |= 0x80
	}
	c.setFlag(flagC, v&0x01 > 0)
	c.setFlagsZN(r)
	return r
}

// branch moves PC to target when condition holds.
//
// An additional cycles:
//
//	If the branch occurs on the same page (1 cycle)
//	If the branch occurs on a different page (2 cycles)
func (c *CPU) branch(condition bool, target uint16, crossed bool) int {
	if !condition {
		return 0
	}
	c.pc = target
	if crossed {
		return 2
	}
	return 1
}

// Jump to Subroutine
// pushes the address of the last byte of the JSR instruction.
func (c *CPU) jsr(addr uint16) {
	c.stackPush16(c.pc - 1)
	c.pc = addr
}

// Return from Subroutine
func (c *CPU) rts() {
	c.pc = c.stackPop16() + 1
}

// Push Processor Status
// The pushed copy always has B and the unused bit set.
func (c *CPU) php() {
	c.stackPush8(c.p | flagB | flagU)
}

// Pull Processor Status
// B keeps its current value, the unused bit is forced on.
func (c *CPU) plp() {
	pulled := c.stackPop8()
	c.p = pulled&^flagB | c.p&flagB | flagU
}

// Force Interrupt
// The byte after BRK is padding and is skipped by the return address.
func (c *CPU) brk() {
	c.pc++
	c.stackPush16(c.pc)
	c.stackPush8(c.p | flagB | flagU)
	c.setFlag(flagI, true)
	c.pc = c.read16(irqVector)
}

// Return from Interrupt
func (c *CPU) rti() {
	c.plp()
	c.pc = c.stackPop16()
}
