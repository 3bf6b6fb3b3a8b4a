package cpu

import (
	"errors"
	"fmt"
)

var (
	ErrUndefinedOpcode  = errors.New("undefined opcode")
	ErrInvalidOperation = errors.New("invalid operation")
)

// UndefinedOpcodeError is returned by Step when the fetched byte
// is not a legal instruction. PC is the address the byte was fetched from.
type UndefinedOpcodeError struct {
	Opcode uint8
	PC     uint16
}

func (e *UndefinedOpcodeError) Error() string {
	return fmt.Sprintf("undefined opcode %02X at $%04X", e.Opcode, e.PC)
}

func (e *UndefinedOpcodeError) Is(target error) bool {
	return target == ErrUndefinedOpcode
}
