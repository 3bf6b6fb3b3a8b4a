package cpu

import "fmt"

// Disassemble decodes the instruction at addr and returns its text with
// the operand in assembler syntax, and the instruction size in bytes.
// Undefined opcodes are rendered as "???" with size 1.
//
// Operand bytes are read through the memory port, so Disassemble should
// not be pointed at registers with read side effects.
func (c *CPU) Disassemble(addr uint16) (string, int) {
	op := opcodes[c.read8(addr)]
	if op.mnemonic == opUndefined {
		return opUndefined.String(), 1
	}

	name := op.mnemonic.String()
	size := 1 + op.mode.operandSize()
	operand8 := c.read8(addr + 1)
	operand16 := c.read16(addr + 1)

	switch op.mode {
	case addrModeIMM:
		return fmt.Sprintf("%s #$%02X", name, operand8), size
	case addrModeZP:
		return fmt.Sprintf("%s $%02X", name, operand8), size
	case addrModeZPX:
		return fmt.Sprintf("%s $%02X,X", name, operand8), size
	case addrModeZPY:
		return fmt.Sprintf("%s $%02X,Y", name, operand8), size
	case addrModeABS:
		return fmt.Sprintf("%s $%04X", name, operand16), size
	case addrModeABSX:
		return fmt.Sprintf("%s $%04X,X", name, operand16), size
	case addrModeABSY:
		return fmt.Sprintf("%s $%04X,Y", name, operand16), size
	case addrModeIND:
		return fmt.Sprintf("%s ($%04X)", name, operand16), size
	case addrModeINDX:
		return fmt.Sprintf("%s ($%02X,X)", name, operand8), size
	case addrModeINDY:
		return fmt.Sprintf("%s ($%02X),Y", name, operand8), size
	case addrModeREL:
		target := addr + 2 + uint16(int8(operand8))
		return fmt.Sprintf("%s $%04X", name, target), size
	case addrModeACC:
		return name + " A", size
	}
	return name, size
}
