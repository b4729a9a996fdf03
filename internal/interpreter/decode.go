package interpreter

// Decoded contains the fields of an opcode.
//
// Field names follow the common CHIP-8 notation:
//
//	nnn: 12-bit address, lowest 12 bits
//	kk:  8-bit immediate byte, lowest 8 bits
//	x:   register index, lower 4 bits of the high byte
//	y:   register index, upper 4 bits of the low byte
//	n:   4-bit value, lowest 4 bits
type Decoded struct {
	Opcode  uint16
	Nibbles [4]uint8 // most significant nibble first
	Address uint16   // nnn
	Byte    uint8    // kk
	X       uint8
	Y       uint8
	N       uint8
}

// Decode splits an opcode into its fields. Every 16-bit value is decodable,
// whether it is a valid instruction is decided by Kind.
func Decode(opcode uint16) Decoded {
	d := Decoded{
		Opcode: opcode,
		Nibbles: [4]uint8{
			uint8(opcode >> 12),
			uint8(opcode>>8) & 0xF,
			uint8(opcode>>4) & 0xF,
			uint8(opcode) & 0xF,
		},
		Address: opcode & 0x0FFF,
		Byte:    uint8(opcode),
	}
	d.X = d.Nibbles[1]
	d.Y = d.Nibbles[2]
	d.N = d.Nibbles[3]
	return d
}
