package interpreter

import (
	"errors"
	"fmt"
)

// Errors reported by instructions. An instruction that fails does not change
// any state and the program counter advances to the next instruction, except
// for ErrAddressOutOfRange during the opcode fetch which leaves it unchanged.
var (
	ErrUnknownOpcode     = errors.New("unknown opcode")
	ErrStackOverflow     = errors.New("stack overflow")
	ErrStackUnderflow    = errors.New("stack underflow")
	ErrAddressOutOfRange = errors.New("address out of range")
	ErrKeyOutOfRange     = errors.New("key out of range")
)

// Fault describes an instruction that could not be executed.
type Fault struct {
	PC     uint16
	Opcode uint16
	Err    error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("opcode $%04X at $%03X: %v", f.Opcode, f.PC, f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// checkRange verifies that length bytes starting at address are addressable.
func checkRange(address uint16, length int) error {
	if length == 0 {
		return nil
	}
	if end := int(address) + length - 1; end > MaxAddress {
		return fmt.Errorf("%w: $%04X-$%04X", ErrAddressOutOfRange, address, end)
	}
	return nil
}
