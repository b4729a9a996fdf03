// Package disasm converts CHIP-8 opcodes into assembly mnemonics.
// It is used for instruction tracing and ROM listings.
package disasm

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// opcodeSize is the size of CHIP-8 instructions in bytes.
const opcodeSize = 2

// Instruction is a disassembled CHIP-8 opcode.
type Instruction struct {
	Opcode uint16
	Name   string // mnemonic, .word for unknown opcodes
	Params string

	ins *chip8.Instruction
}

// String returns the instruction in assembly notation.
func (i Instruction) String() string {
	if i.Params == "" {
		return i.Name
	}
	return fmt.Sprintf("%s %s", i.Name, i.Params)
}

// IsValid returns whether the opcode matched a known instruction.
func (i Instruction) IsValid() bool {
	return i.ins != nil
}

// Disassemble returns the instruction encoded by the opcode. Opcodes that do
// not match any instruction are returned as a .word data directive and false.
func Disassemble(opcode uint16) (Instruction, bool) {
	op, ok := lookup(opcode)
	if !ok {
		return Instruction{
			Opcode: opcode,
			Name:   ".word",
			Params: fmt.Sprintf("$%04X", opcode),
		}, false
	}

	name := op.Instruction.Name
	return Instruction{
		Opcode: opcode,
		Name:   name,
		Params: operands(opcode),
		ins:    op.Instruction,
	}, true
}

// lookup finds the opcode definition matching the opcode word. The opcode
// tables are grouped by the most significant nibble.
func lookup(opcode uint16) (chip8.Opcode, bool) {
	firstNibble := (opcode & 0xF000) >> 12
	for _, op := range chip8.Opcodes[int(firstNibble)] {
		if op.Info.Mask&opcode == op.Info.Value && op.Instruction != nil {
			return op, true
		}
	}
	return chip8.Opcode{}, false
}

// decodeOpcode extracts the 16-bit opcode from instruction bytes.
func decodeOpcode(data []byte) (uint16, bool) {
	if len(data) < opcodeSize {
		return 0, false
	}
	return uint16(data[0])<<8 | uint16(data[1]), true
}
