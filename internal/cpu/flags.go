package cpu

import "strings"

// Flag identifies one bit of the processor status register.
type Flag uint8

const (
	FlagCarry     Flag = Flag(flagC)
	FlagZero      Flag = Flag(flagZ)
	FlagInterrupt Flag = Flag(flagI)
	FlagDecimal   Flag = Flag(flagD) // stored only, arithmetic is always binary
	FlagBreak     Flag = Flag(flagB)
	FlagOverflow  Flag = Flag(flagV)
	FlagNegative  Flag = Flag(flagN)
)

const (
	flagC = uint8(1 << iota) // Carry
	flagZ                    // Zero
	flagI                    // Interrupt Disable
	flagD                    // Decimal Mode
	flagB                    // Break Command
	flagU                    // Unused
	flagV                    // Overflow
	flagN                    // Negative
)

func (f Flag) String() string {
	switch f {
	case FlagCarry:
		return "C"
	case FlagZero:
		return "Z"
	case FlagInterrupt:
		return "I"
	case FlagDecimal:
		return "D"
	case FlagBreak:
		return "B"
	case FlagOverflow:
		return "V"
	case FlagNegative:
		return "N"
	}
	return "?"
}

// Flag reports whether f is set.
func (c *CPU) Flag(f Flag) bool {
	return c.getFlag(uint8(f))
}

func (c *CPU) SetFlag(f Flag, v bool) {
	c.setFlag(uint8(f), v)
}

// Status returns the status register as it would be pushed,
// with the unused bit always set.
func (c *CPU) Status() uint8 {
	return c.p | flagU
}

// SetStatus loads every flag from p. The unused bit is forced on.
func (c *CPU) SetStatus(p uint8) {
	c.p = p | flagU
}

// StatusString renders the flags as NV-BDIZC, lower case when clear.
func (c *CPU) StatusString() string {
	var sb strings.Builder
	for _, f := range []struct {
		bit  uint8
		name byte
	}{
		{flagN, 'N'}, {flagV, 'V'}, {flagU, '-'}, {flagB, 'B'},
		{flagD, 'D'}, {flagI, 'I'}, {flagZ, 'Z'}, {flagC, 'C'},
	} {
		switch {
		case f.bit == flagU:
			sb.WriteByte('-')
		case c.getFlag(f.bit):
			sb.WriteByte(f.name)
		default:
			sb.WriteByte(f.name + 'a' - 'A')
		}
	}
	return sb.String()
}

func (c *CPU) getFlag(flag uint8) bool {
	return c.p&flag > 0
}

func (c *CPU) setFlag(flag uint8, v bool) {
	if v {
		c.p |= flag
		return
	}
	c.p &= ^flag
}

func (c *CPU) setFlagsZN(value uint8) {
	c.setFlag(flagZ, value == 0)
	c.setFlag(flagN, value&0x80 > 0)
}
