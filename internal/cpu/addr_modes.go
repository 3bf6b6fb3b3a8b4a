package cpu

import "fmt"

type addrMode uint8

const (
	addrModeIMP  addrMode = iota // Implied
	addrModeACC                  // Accumulator
	addrModeIMM                  // Immediate
	addrModeZP                   // Zero Page
	addrModeZPX                  // Zero Page X
	addrModeZPY                  // Zero Page Y
	addrModeABS                  // Absolute
	addrModeABSX                 // Absolute X
	addrModeABSY                 // Absolute Y
	addrModeIND                  // Indirect
	addrModeINDX                 // Indirect X
	addrModeINDY                 // Indirect Y
	addrModeREL                  // Relative
)

func (mode addrMode) String() string {
	switch mode {
	case addrModeIMM:
		return "IMM"
	case addrModeZP:
		return "ZP"
	case addrModeZPX:
		return "ZPX"
	case addrModeZPY:
		return "ZPY"
	case addrModeABS:
		return "ABS"
	case addrModeABSX:
		return "ABSX"
	case addrModeABSY:
		return "ABSY"
	case addrModeIND:
		return "IND"
	case addrModeINDX:
		return "INDX"
	case addrModeINDY:
		return "INDY"
	case addrModeREL:
		return "REL"
	case addrModeACC:
		return "ACC"
	case addrModeIMP:
		return "IMP"
	}
	return "???"
}

// operandSize is the number of bytes following the opcode.
func (mode addrMode) operandSize() int {
	switch mode {
	case addrModeIMP, addrModeACC:
		return 0
	case addrModeABS, addrModeABSX, addrModeABSY, addrModeIND:
		return 2
	}
	return 1
}

func isDiffPage(a, b uint16) bool {
	return a&0xff00 != b&0xff00
}

// resolve reads the operand bytes of the current instruction, moving PC
// past them, and returns the effective address. crossed reports whether
// indexing moved the address onto another page.
func (c *CPU) resolve(mode addrMode) (addr uint16, crossed bool, err error) {
	switch mode {
	case addrModeIMP, addrModeACC:
		return 0, false, nil

	case addrModeIMM:
		addr = c.pc
		c.pc++
		return addr, false, nil

	case addrModeZP:
		return uint16(c.next()), false, nil

	case addrModeZPX:
		return uint16(c.next() + c.x), false, nil

	case addrModeZPY:
		return uint16(c.next() + c.y), false, nil

	case addrModeABS:
		lo := uint16(c.next())
		hi := uint16(c.next())
		return lo | hi<<8, false, nil

	case addrModeABSX, addrModeABSY:
		lo := uint16(c.next())
		hi := uint16(c.next())
		base := lo | hi<<8
		index := c.x
		if mode == addrModeABSY {
			index = c.y
		}
		addr = base + uint16(index)
		return addr, isDiffPage(base, addr), nil

	case addrModeIND:
		lo := uint16(c.next())
		hi := uint16(c.next())
		ptr := lo | hi<<8
		// the high byte is fetched without carrying into the pointer's page,
		// so JMP ($30FF) reads $30FF and $3000
		ptrHi := ptr&0xff00 | uint16(uint8(ptr)+1)
		addr = uint16(c.read8(ptr)) | uint16(c.read8(ptrHi))<<8
		return addr, false, nil

	case addrModeINDX:
		zp := c.next() + c.x
		lo := uint16(c.read8(uint16(zp)))
		hi := uint16(c.read8(uint16(zp + 1)))
		return lo | hi<<8, false, nil

	case addrModeINDY:
		zp := c.next()
		lo := uint16(c.read8(uint16(zp)))
		hi := uint16(c.read8(uint16(zp + 1)))
		base := lo | hi<<8
		addr = base + uint16(c.y)
		return addr, isDiffPage(base, addr), nil

	case addrModeREL:
		offset := int8(c.next())
		addr = c.pc + uint16(offset)
		return addr, isDiffPage(c.pc, addr), nil
	}

	return 0, false, fmt.Errorf("%w: addressing mode %d", ErrInvalidOperation, mode)
}
