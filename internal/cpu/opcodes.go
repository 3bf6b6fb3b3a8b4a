package cpu

type mnemonic uint8

const (
	opUndefined mnemonic = iota
	opADC                // Add with Carry
	opAND                // Logical AND
	opASL                // Arithmetic Shift Left
	opBCC                // Branch if Carry Clear
	opBCS                // Branch if Carry Set
	opBEQ                // Branch if Equal
	opBIT                // Bit Test
	opBMI                // Branch if Minus
	opBNE                // Branch if Not Equal
	opBPL                // Branch if Positive
	opBRK                // Force Interrupt
	opBVC                // Branch if Overflow Clear
	opBVS                // Branch if Overflow Set
	opCLC                // Clear Carry Flag
	opCLD                // Clear Decimal Mode
	opCLI                // Clear Interrupt Disable
	opCLV                // Clear Overflow Flag
	opCMP                // Compare
	opCPX                // Compare X Register
	opCPY                // Compare Y Register
	opDEC                // Decrement Memory
	opDEX                // Decrement X Register
	opDEY                // Decrement Y Register
	opEOR                // Exclusive OR
	opINC                // Increment Memory
	opINX                // Increment X Register
	opINY                // Increment Y Register
	opJMP                // Jump
	opJSR                // Jump to Subroutine
	opLDA                // Load Accumulator
	opLDX                // Load X Register
	opLDY                // Load Y Register
	opLSR                // Logical Shift Right
	opNOP                // No Operation
	opORA                // Logical Inclusive OR
	opPHA                // Push Accumulator
	opPHP                // Push Processor Status
	opPLA                // Pull Accumulator
	opPLP                // Pull Processor Status
	opROL                // Rotate Left
	opROR                // Rotate Right
	opRTI                // Return from Interrupt
	opRTS                // Return from Subroutine
	opSBC                // Subtract with Carry
	opSEC                // Set Carry Flag
	opSED                // Set Decimal Flag
	opSEI                // Set Interrupt Disable
	opSTA                // Store Accumulator
	opSTX                // Store X Register
	opSTY                // Store Y Register
	opTAX                // Transfer Accumulator to X
	opTAY                // Transfer Accumulator to Y
	opTSX                // Transfer Stack Pointer to X
	opTXA                // Transfer X to Accumulator
	opTXS                // Transfer X to Stack Pointer
	opTYA                // Transfer Y to Accumulator
)

var mnemonicNames = [...]string{
	opUndefined: "???",
	opADC:       "ADC",
	opAND:       "AND",
	opASL:       "ASL",
	opBCC:       "BCC",
	opBCS:       "BCS",
	opBEQ:       "BEQ",
	opBIT:       "BIT",
	opBMI:       "BMI",
	opBNE:       "BNE",
	opBPL:       "BPL",
	opBRK:       "BRK",
	opBVC:       "BVC",
	opBVS:       "BVS",
	opCLC:       "CLC",
	opCLD:       "CLD",
	opCLI:       "CLI",
	opCLV:       "CLV",
	opCMP:       "CMP",
	opCPX:       "CPX",
	opCPY:       "CPY",
	opDEC:       "DEC",
	opDEX:       "DEX",
	opDEY:       "DEY",
	opEOR:       "EOR",
	opINC:       "INC",
	opINX:       "INX",
	opINY:       "INY",
	opJMP:       "JMP",
	opJSR:       "JSR",
	opLDA:       "LDA",
	opLDX:       "LDX",
	opLDY:       "LDY",
	opLSR:       "LSR",
	opNOP:       "NOP",
	opORA:       "ORA",
	opPHA:       "PHA",
	opPHP:       "PHP",
	opPLA:       "PLA",
	opPLP:       "PLP",
	opROL:       "ROL",
	opROR:       "ROR",
	opRTI:       "RTI",
	opRTS:       "RTS",
	opSBC:       "SBC",
	opSEC:       "SEC",
	opSED:       "SED",
	opSEI:       "SEI",
	opSTA:       "STA",
	opSTX:       "STX",
	opSTY:       "STY",
	opTAX:       "TAX",
	opTAY:       "TAY",
	opTSX:       "TSX",
	opTXA:       "TXA",
	opTXS:       "TXS",
	opTYA:       "TYA",
}

func (m mnemonic) String() string {
	if int(m) < len(mnemonicNames) {
		return mnemonicNames[m]
	}
	return "???"
}

// opcode describes one instruction byte. A zero value is an undefined opcode.
type opcode struct {
	mnemonic  mnemonic
	mode      addrMode
	cycles    uint8
	pageCross bool // crossing a page while indexing costs one more cycle
}

var opcodes = [0x100]opcode{
	0x00: {mnemonic: opBRK, mode: addrModeIMP, cycles: 7},
	0x01: {mnemonic: opORA, mode: addrModeINDX, cycles: 6},
	0x05: {mnemonic: opORA, mode: addrModeZP, cycles: 3},
	0x06: {mnemonic: opASL, mode: addrModeZP, cycles: 5},
	0x08: {mnemonic: opPHP, mode: addrModeIMP, cycles: 3},
	0x09: {mnemonic: opORA, mode: addrModeIMM, cycles: 2},
	0x0a: {mnemonic: opASL, mode: addrModeACC, cycles: 2},
	0x0d: {mnemonic: opORA, mode: addrModeABS, cycles: 4},
	0x0e: {mnemonic: opASL, mode: addrModeABS, cycles: 6},
	0x10: {mnemonic: opBPL, mode: addrModeREL, cycles: 2},
	0x11: {mnemonic: opORA, mode: addrModeINDY, cycles: 5, pageCross: true},
	0x15: {mnemonic: opORA, mode: addrModeZPX, cycles: 4},
	0x16: {mnemonic: opASL, mode: addrModeZPX, cycles: 6},
	0x18: {mnemonic: opCLC, mode: addrModeIMP, cycles: 2},
	0x19: {mnemonic: opORA, mode: addrModeABSY, cycles: 4, pageCross: true},
	0x1d: {mnemonic: opORA, mode: addrModeABSX, cycles: 4, pageCross: true},
	0x1e: {mnemonic: opASL, mode: addrModeABSX, cycles: 7},
	0x20: {mnemonic: opJSR, mode: addrModeABS, cycles: 6},
	0x21: {mnemonic: opAND, mode: addrModeINDX, cycles: 6},
	0x24: {mnemonic: opBIT, mode: addrModeZP, cycles: 3},
	0x25: {mnemonic: opAND, mode: addrModeZP, cycles: 3},
	0x26: {mnemonic: opROL, mode: addrModeZP, cycles: 5},
	0x28: {mnemonic: opPLP, mode: addrModeIMP, cycles: 4},
	0x29: {mnemonic: opAND, mode: addrModeIMM, cycles: 2},
	0x2a: {mnemonic: opROL, mode: addrModeACC, cycles: 2},
	0x2c: {mnemonic: opBIT, mode: addrModeABS, cycles: 4},
	0x2d: {mnemonic: opAND, mode: addrModeABS, cycles: 4},
	0x2e: {mnemonic: opROL, mode: addrModeABS, cycles: 6},
	0x30: {mnemonic: opBMI, mode: addrModeREL, cycles: 2},
	0x31: {mnemonic: opAND, mode: addrModeINDY, cycles: 5, pageCross: true},
	0x35: {mnemonic: opAND, mode: addrModeZPX, cycles: 4},
	0x36: {mnemonic: opROL, mode: addrModeZPX, cycles: 6},
	0x38: {mnemonic: opSEC, mode: addrModeIMP, cycles: 2},
	0x39: {mnemonic: opAND, mode: addrModeABSY, cycles: 4, pageCross: true},
	0x3d: {mnemonic: opAND, mode: addrModeABSX, cycles: 4, pageCross: true},
	0x3e: {mnemonic: opROL, mode: addrModeABSX, cycles: 7},
	0x40: {mnemonic: opRTI, mode: addrModeIMP, cycles: 6},
	0x41: {mnemonic: opEOR, mode: addrModeINDX, cycles: 6},
	0x45: {mnemonic: opEOR, mode: addrModeZP, cycles: 3},
	0x46: {mnemonic: opLSR, mode: addrModeZP, cycles: 5},
	0x48: {mnemonic: opPHA, mode: addrModeIMP, cycles: 3},
	0x49: {mnemonic: opEOR, mode: addrModeIMM, cycles: 2},
	0x4a: {mnemonic: opLSR, mode: addrModeACC, cycles: 2},
	0x4c: {mnemonic: opJMP, mode: addrModeABS, cycles: 3},
	0x4d: {mnemonic: opEOR, mode: addrModeABS, cycles: 4},
	0x4e: {mnemonic: opLSR, mode: addrModeABS, cycles: 6},
	0x50: {mnemonic: opBVC, mode: addrModeREL, cycles: 2},
	0x51: {mnemonic: opEOR, mode: addrModeINDY, cycles: 5, pageCross: true},
	0x55: {mnemonic: opEOR, mode: addrModeZPX, cycles: 4},
	0x56: {mnemonic: opLSR, mode: addrModeZPX, cycles: 6},
	0x58: {mnemonic: opCLI, mode: addrModeIMP, cycles: 2},
	0x59: {mnemonic: opEOR, mode: addrModeABSY, cycles: 4, pageCross: true},
	0x5d: {mnemonic: opEOR, mode: addrModeABSX, cycles: 4, pageCross: true},
	0x5e: {mnemonic: opLSR, mode: addrModeABSX, cycles: 7},
	0x60: {mnemonic: opRTS, mode: addrModeIMP, cycles: 6},
	0x61: {mnemonic: opADC, mode: addrModeINDX, cycles: 6},
	0x65: {mnemonic: opADC, mode: addrModeZP, cycles: 3},
	0x66: {mnemonic: opROR, mode: addrModeZP, cycles: 5},
	0x68: {mnemonic: opPLA, mode: addrModeIMP, cycles: 4},
	0x69: {mnemonic: opADC, mode: addrModeIMM, cycles: 2},
	0x6a: {mnemonic: opROR, mode: addrModeACC, cycles: 2},
	0x6c: {mnemonic: opJMP, mode: addrModeIND, cycles: 5},
	0x6d: {mnemonic: opADC, mode: addrModeABS, cycles: 4},
	0x6e: {mnemonic: opROR, mode: addrModeABS, cycles: 6},
	0x70: {mnemonic: opBVS, mode: addrModeREL, cycles: 2},
	0x71: {mnemonic: opADC, mode: addrModeINDY, cycles: 5, pageCross: true},
	0x75: {mnemonic: opADC, mode: addrModeZPX, cycles: 4},
	0x76: {mnemonic: opROR, mode: addrModeZPX, cycles: 6},
	0x78: {mnemonic: opSEI, mode: addrModeIMP, cycles: 2},
	0x79: {mnemonic: opADC, mode: addrModeABSY, cycles: 4, pageCross: true},
	0x7d: {mnemonic: opADC, mode: addrModeABSX, cycles: 4, pageCross: true},
	0x7e: {mnemonic: opROR, mode: addrModeABSX, cycles: 7},
	0x81: {mnemonic: opSTA, mode: addrModeINDX, cycles: 6},
	0x84: {mnemonic: opSTY, mode: addrModeZP, cycles: 3},
	0x85: {mnemonic: opSTA, mode: addrModeZP, cycles: 3},
	0x86: {mnemonic: opSTX, mode: addrModeZP, cycles: 3},
	0x88: {mnemonic: opDEY, mode: addrModeIMP, cycles: 2},
	0x8a: {mnemonic: opTXA, mode: addrModeIMP, cycles: 2},
	0x8c: {mnemonic: opSTY, mode: addrModeABS, cycles: 4},
	0x8d: {mnemonic: opSTA, mode: addrModeABS, cycles: 4},
	0x8e: {mnemonic: opSTX, mode: addrModeABS, cycles: 4},
	0x90: {mnemonic: opBCC, mode: addrModeREL, cycles: 2},
	0x91: {mnemonic: opSTA, mode: addrModeINDY, cycles: 6},
	0x94: {mnemonic: opSTY, mode: addrModeZPX, cycles: 4},
	0x95: {mnemonic: opSTA, mode: addrModeZPX, cycles: 4},
	0x96: {mnemonic: opSTX, mode: addrModeZPY, cycles: 4},
	0x98: {mnemonic: opTYA, mode: addrModeIMP, cycles: 2},
	0x99: {mnemonic: opSTA, mode: addrModeABSY, cycles: 5},
	0x9a: {mnemonic: opTXS, mode: addrModeIMP, cycles: 2},
	0x9d: {mnemonic: opSTA, mode: addrModeABSX, cycles: 5},
	0xa0: {mnemonic: opLDY, mode: addrModeIMM, cycles: 2},
	0xa1: {mnemonic: opLDA, mode: addrModeINDX, cycles: 6},
	0xa2: {mnemonic: opLDX, mode: addrModeIMM, cycles: 2},
	0xa4: {mnemonic: opLDY, mode: addrModeZP, cycles: 3},
	0xa5: {mnemonic: opLDA, mode: addrModeZP, cycles: 3},
	0xa6: {mnemonic: opLDX, mode: addrModeZP, cycles: 3},
	0xa8: {mnemonic: opTAY, mode: addrModeIMP, cycles: 2},
	0xa9: {mnemonic: opLDA, mode: addrModeIMM, cycles: 2},
	0xaa: {mnemonic: opTAX, mode: addrModeIMP, cycles: 2},
	0xac: {mnemonic: opLDY, mode: addrModeABS, cycles: 4},
	0xad: {mnemonic: opLDA, mode: addrModeABS, cycles: 4},
	0xae: {mnemonic: opLDX, mode: addrModeABS, cycles: 4},
	0xb0: {mnemonic: opBCS, mode: addrModeREL, cycles: 2},
	0xb1: {mnemonic: opLDA, mode: addrModeINDY, cycles: 5, pageCross: true},
	0xb4: {mnemonic: opLDY, mode: addrModeZPX, cycles: 4},
	0xb5: {mnemonic: opLDA, mode: addrModeZPX, cycles: 4},
	0xb6: {mnemonic: opLDX, mode: addrModeZPY, cycles: 4},
	0xb8: {mnemonic: opCLV, mode: addrModeIMP, cycles: 2},
	0xb9: {mnemonic: opLDA, mode: addrModeABSY, cycles: 4, pageCross: true},
	0xba: {mnemonic: opTSX, mode: addrModeIMP, cycles: 2},
	0xbc: {mnemonic: opLDY, mode: addrModeABSX, cycles: 4, pageCross: true},
	0xbd: {mnemonic: opLDA, mode: addrModeABSX, cycles: 4, pageCross: true},
	0xbe: {mnemonic: opLDX, mode: addrModeABSY, cycles: 4, pageCross: true},
	0xc0: {mnemonic: opCPY, mode: addrModeIMM, cycles: 2},
	0xc1: {mnemonic: opCMP, mode: addrModeINDX, cycles: 6},
	0xc4: {mnemonic: opCPY, mode: addrModeZP, cycles: 3},
	0xc5: {mnemonic: opCMP, mode: addrModeZP, cycles: 3},
	0xc6: {mnemonic: opDEC, mode: addrModeZP, cycles: 5},
	0xc8: {mnemonic: opINY, mode: addrModeIMP, cycles: 2},
	0xc9: {mnemonic: opCMP, mode: addrModeIMM, cycles: 2},
	0xca: {mnemonic: opDEX, mode: addrModeIMP, cycles: 2},
	0xcc: {mnemonic: opCPY, mode: addrModeABS, cycles: 4},
	0xcd: {mnemonic: opCMP, mode: addrModeABS, cycles: 4},
	0xce: {mnemonic: opDEC, mode: addrModeABS, cycles: 6},
	0xd0: {mnemonic: opBNE, mode: addrModeREL, cycles: 2},
	0xd1: {mnemonic: opCMP, mode: addrModeINDY, cycles: 5, pageCross: true},
	0xd5: {mnemonic: opCMP, mode: addrModeZPX, cycles: 4},
	0xd6: {mnemonic: opDEC, mode: addrModeZPX, cycles: 6},
	0xd8: {mnemonic: opCLD, mode: addrModeIMP, cycles: 2},
	0xd9: {mnemonic: opCMP, mode: addrModeABSY, cycles: 4, pageCross: true},
	0xdd: {mnemonic: opCMP, mode: addrModeABSX, cycles: 4, pageCross: true},
	0xde: {mnemonic: opDEC, mode: addrModeABSX, cycles: 7},
	0xe0: {mnemonic: opCPX, mode: addrModeIMM, cycles: 2},
	0xe1: {mnemonic: opSBC, mode: addrModeINDX, cycles: 6},
	0xe4: {mnemonic: opCPX, mode: addrModeZP, cycles: 3},
	0xe5: {mnemonic: opSBC, mode: addrModeZP, cycles: 3},
	0xe6: {mnemonic: opINC, mode: addrModeZP, cycles: 5},
	0xe8: {mnemonic: opINX, mode: addrModeIMP, cycles: 2},
	0xe9: {mnemonic: opSBC, mode: addrModeIMM, cycles: 2},
	0xea: {mnemonic: opNOP, mode: addrModeIMP, cycles: 2},
	0xec: {mnemonic: opCPX, mode: addrModeABS, cycles: 4},
	0xed: {mnemonic: opSBC, mode: addrModeABS, cycles: 4},
	0xee: {mnemonic: opINC, mode: addrModeABS, cycles: 6},
	0xf0: {mnemonic: opBEQ, mode: addrModeREL, cycles: 2},
	0xf1: {mnemonic: opSBC, mode: addrModeINDY, cycles: 5, pageCross: true},
	0xf5: {mnemonic: opSBC, mode: addrModeZPX, cycles: 4},
	0xf6: {mnemonic: opINC, mode: addrModeZPX, cycles: 6},
	0xf8: {mnemonic: opSED, mode: addrModeIMP, cycles: 2},
	0xf9: {mnemonic: opSBC, mode: addrModeABSY, cycles: 4, pageCross: true},
	0xfd: {mnemonic: opSBC, mode: addrModeABSX, cycles: 4, pageCross: true},
	0xfe: {mnemonic: opINC, mode: addrModeABSX, cycles: 7},
}

// Instruction is the public description of an opcode.
type Instruction struct {
	Opcode    uint8
	Mnemonic  string
	Mode      string
	Size      int // bytes including the opcode
	Cycles    int // base cost
	PageCross bool
}

// Lookup returns the description of opcode and false
// if the byte is not a legal instruction.
func Lookup(opcode uint8) (Instruction, bool) {
	op := opcodes[opcode]
	if op.mnemonic == opUndefined {
		return Instruction{Opcode: opcode, Mnemonic: opUndefined.String()}, false
	}
	return Instruction{
		Opcode:    opcode,
		Mnemonic:  op.mnemonic.String(),
		Mode:      op.mode.String(),
		Size:      1 + op.mode.operandSize(),
		Cycles:    int(op.cycles),
		PageCross: op.pageCross,
	}, true
}
