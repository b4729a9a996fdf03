package disasm

import (
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// IsCall returns true if the instruction is a call instruction.
func (i Instruction) IsCall() bool {
	return i.ins == chip8.CallInst
}

// IsJump returns true if the instruction is a jump instruction.
func (i Instruction) IsJump() bool {
	return i.ins == chip8.JpInst
}

// IsReturn returns true if the instruction is a return instruction.
func (i Instruction) IsReturn() bool {
	return i.ins == chip8.RetInst
}

// IsSkip returns true if the instruction is a conditional skip instruction.
func (i Instruction) IsSkip() bool {
	if i.ins == nil {
		return false
	}
	return chip8.SkipInstructions.Contains(i.ins.Name)
}

// IsDataReference returns true if the instruction references data (LD I, addr).
func (i Instruction) IsDataReference() bool {
	return i.ins == chip8.LdInst && i.Opcode&0xF000 == 0xA000
}

// Target returns the absolute address referenced by JP addr, CALL addr and
// LD I, addr. JP V0, addr has no statically known target.
func (i Instruction) Target() (uint16, bool) {
	switch {
	case i.IsCall(), i.IsDataReference():
	case i.IsJump() && i.Opcode&0xF000 == 0x1000:
	default:
		return 0, false
	}
	return i.Opcode & 0x0FFF, true
}
