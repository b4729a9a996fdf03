package disasm

import (
	"fmt"

	"github.com/retroenv/retrogolib/set"
)

// Line is a single line of a program listing.
type Line struct {
	Address     uint16
	Label       string // set if the address is referenced by another instruction
	Data        []byte
	Instruction Instruction
}

// Program disassembles a program that is loaded at the base address. Every
// aligned 2 byte word is decoded, references of jumps, calls and index loads
// into the program are labeled. A trailing odd byte is emitted as .byte.
func Program(data []byte, base uint16) []Line {
	lines := make([]Line, 0, len(data)/opcodeSize+1)
	targets := set.New[uint16]()

	for offset := 0; offset < len(data); offset += opcodeSize {
		address := base + uint16(offset)
		chunk := data[offset:min(offset+opcodeSize, len(data))]

		opcode, ok := decodeOpcode(chunk)
		if !ok {
			lines = append(lines, Line{
				Address: address,
				Data:    chunk,
				Instruction: Instruction{
					Name:   ".byte",
					Params: fmt.Sprintf("$%02X", chunk[0]),
				},
			})
			continue
		}

		ins, _ := Disassemble(opcode)
		if target, ok := ins.Target(); ok {
			targets.Add(target)
		}
		lines = append(lines, Line{
			Address:     address,
			Data:        chunk,
			Instruction: ins,
		})
	}

	for i := range lines {
		if targets.Contains(lines[i].Address) {
			lines[i].Label = Label(lines[i].Address)
		}
	}
	return lines
}

// Label returns the label name used for an address.
func Label(address uint16) string {
	return fmt.Sprintf("_%03x", address)
}
