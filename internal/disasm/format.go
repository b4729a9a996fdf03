package disasm

import "fmt"

// operands formats the operands of a known opcode. The layout only depends
// on the opcode group given by the most significant nibble.
func operands(opcode uint16) string {
	x := registerX(opcode)
	address := opcode & 0x0FFF
	value := opcode & 0x00FF

	switch opcode >> 12 {
	case 0x1, 0x2:
		return fmt.Sprintf("$%03X", address)
	case 0x3, 0x4, 0x6, 0x7, 0xC:
		return fmt.Sprintf("V%X, $%02X", x, value)
	case 0x5, 0x9:
		return registerPair(opcode)
	case 0x8:
		if op := opcode & 0x000F; op == 0x6 || op == 0xE {
			return fmt.Sprintf("V%X", x)
		}
		return registerPair(opcode)
	case 0xA:
		return fmt.Sprintf("I, $%03X", address)
	case 0xB:
		return fmt.Sprintf("V0, $%03X", address)
	case 0xD:
		return fmt.Sprintf("%s, $%X", registerPair(opcode), opcode&0x000F)
	case 0xE:
		return fmt.Sprintf("V%X", x)
	case 0xF:
		return miscOperands(x, value)
	}
	return ""
}

// miscOperands formats the Fx group, which moves values between Vx and the
// timers, the keypad, I and memory.
func miscOperands(x, op uint16) string {
	var format string
	switch op {
	case 0x07:
		format = "V%X, DT"
	case 0x0A:
		format = "V%X, K"
	case 0x15:
		format = "DT, V%X"
	case 0x18:
		format = "ST, V%X"
	case 0x1E:
		format = "I, V%X"
	case 0x29:
		format = "F, V%X"
	case 0x33:
		format = "B, V%X"
	case 0x55:
		format = "[I], V%X"
	case 0x65:
		format = "V%X, [I]"
	default:
		return ""
	}
	return fmt.Sprintf(format, x)
}

func registerPair(opcode uint16) string {
	return fmt.Sprintf("V%X, V%X", registerX(opcode), registerY(opcode))
}

func registerX(opcode uint16) uint16 {
	return (opcode & 0x0F00) >> 8
}

func registerY(opcode uint16) uint16 {
	return (opcode & 0x00F0) >> 4
}
