package interpreter

// Kind identifies the instruction an opcode encodes.
type Kind uint8

// Instruction kinds of the standard CHIP-8 instruction set.
const (
	Unknown              Kind = iota
	ClearScreen               // 00E0
	Return                    // 00EE
	Jump                      // 1nnn
	Call                      // 2nnn
	SkipEqualByte             // 3xkk
	SkipNotEqualByte          // 4xkk
	SkipEqualRegister         // 5xy0
	LoadByte                  // 6xkk
	AddByte                   // 7xkk
	LoadRegister              // 8xy0
	Or                        // 8xy1
	And                       // 8xy2
	Xor                       // 8xy3
	AddRegister               // 8xy4
	Subtract                  // 8xy5
	ShiftRight                // 8xy6
	SubtractInverted          // 8xy7
	ShiftLeft                 // 8xyE
	SkipNotEqualRegister      // 9xy0
	LoadIndex                 // Annn
	JumpOffset                // Bnnn
	Random                    // Cxkk
	Draw                      // Dxyn
	SkipKeyPressed            // Ex9E
	SkipKeyNotPressed         // ExA1
	LoadDelay                 // Fx07
	WaitKey                   // Fx0A
	SetDelay                  // Fx15
	SetSound                  // Fx18
	AddIndex                  // Fx1E
	LoadFont                  // Fx29
	StoreBCD                  // Fx33
	StoreRegisters            // Fx55
	LoadRegisters             // Fx65
)

var kindNames = [...]string{
	Unknown:              "unknown",
	ClearScreen:          "clear screen",
	Return:               "return",
	Jump:                 "jump",
	Call:                 "call",
	SkipEqualByte:        "skip if equal byte",
	SkipNotEqualByte:     "skip if not equal byte",
	SkipEqualRegister:    "skip if equal register",
	LoadByte:             "load byte",
	AddByte:              "add byte",
	LoadRegister:         "load register",
	Or:                   "or",
	And:                  "and",
	Xor:                  "xor",
	AddRegister:          "add register",
	Subtract:             "subtract",
	ShiftRight:           "shift right",
	SubtractInverted:     "subtract inverted",
	ShiftLeft:            "shift left",
	SkipNotEqualRegister: "skip if not equal register",
	LoadIndex:            "load index",
	JumpOffset:           "jump with offset",
	Random:               "random",
	Draw:                 "draw",
	SkipKeyPressed:       "skip if key pressed",
	SkipKeyNotPressed:    "skip if key not pressed",
	LoadDelay:            "load delay timer",
	WaitKey:              "wait for key",
	SetDelay:             "set delay timer",
	SetSound:             "set sound timer",
	AddIndex:             "add to index",
	LoadFont:             "load font glyph",
	StoreBCD:             "store bcd",
	StoreRegisters:       "store registers",
	LoadRegisters:        "load registers",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return kindNames[Unknown]
}

// Kind returns the instruction kind of the decoded opcode.
func (d Decoded) Kind() Kind {
	switch d.Nibbles[0] {
	case 0x0:
		switch d.Opcode {
		case 0x00E0:
			return ClearScreen
		case 0x00EE:
			return Return
		}
	case 0x1:
		return Jump
	case 0x2:
		return Call
	case 0x3:
		return SkipEqualByte
	case 0x4:
		return SkipNotEqualByte
	case 0x5:
		if d.N == 0x0 {
			return SkipEqualRegister
		}
	case 0x6:
		return LoadByte
	case 0x7:
		return AddByte
	case 0x8:
		return aluKind(d.N)
	case 0x9:
		if d.N == 0x0 {
			return SkipNotEqualRegister
		}
	case 0xA:
		return LoadIndex
	case 0xB:
		return JumpOffset
	case 0xC:
		return Random
	case 0xD:
		return Draw
	case 0xE:
		switch d.Byte {
		case 0x9E:
			return SkipKeyPressed
		case 0xA1:
			return SkipKeyNotPressed
		}
	case 0xF:
		return miscKind(d.Byte)
	}
	return Unknown
}

// aluKind maps the lowest nibble of an 8xyn opcode.
func aluKind(n uint8) Kind {
	switch n {
	case 0x0:
		return LoadRegister
	case 0x1:
		return Or
	case 0x2:
		return And
	case 0x3:
		return Xor
	case 0x4:
		return AddRegister
	case 0x5:
		return Subtract
	case 0x6:
		return ShiftRight
	case 0x7:
		return SubtractInverted
	case 0xE:
		return ShiftLeft
	default:
		return Unknown
	}
}

// miscKind maps the low byte of an Fxkk opcode.
func miscKind(kk uint8) Kind {
	switch kk {
	case 0x07:
		return LoadDelay
	case 0x0A:
		return WaitKey
	case 0x15:
		return SetDelay
	case 0x18:
		return SetSound
	case 0x1E:
		return AddIndex
	case 0x29:
		return LoadFont
	case 0x33:
		return StoreBCD
	case 0x55:
		return StoreRegisters
	case 0x65:
		return LoadRegisters
	default:
		return Unknown
	}
}
