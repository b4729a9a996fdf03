package interpreter

import "fmt"

// execute runs the decoded instruction and returns the program counter
// transition. On error the instruction did not change any state.
func (i *Interpreter) execute(d Decoded) (transition, error) {
	switch d.Kind() {
	case ClearScreen:
		return i.clearScreen(), nil
	case Return:
		return i.ret()
	case Jump:
		return jumpTo(d.Address), nil
	case Call:
		return i.call(d.Address)
	case SkipEqualByte:
		return skipIf(i.v[d.X] == d.Byte), nil
	case SkipNotEqualByte:
		return skipIf(i.v[d.X] != d.Byte), nil
	case SkipEqualRegister:
		return skipIf(i.v[d.X] == i.v[d.Y]), nil
	case SkipNotEqualRegister:
		return skipIf(i.v[d.X] != i.v[d.Y]), nil
	case LoadByte:
		i.v[d.X] = d.Byte
		return next, nil
	case AddByte:
		i.v[d.X] += d.Byte
		return next, nil
	case LoadRegister:
		i.v[d.X] = i.v[d.Y]
		return next, nil
	case Or:
		i.v[d.X] |= i.v[d.Y]
		return next, nil
	case And:
		i.v[d.X] &= i.v[d.Y]
		return next, nil
	case Xor:
		i.v[d.X] ^= i.v[d.Y]
		return next, nil
	case AddRegister:
		return i.addRegister(d.X, d.Y), nil
	case Subtract:
		return i.subtract(d.X, d.Y), nil
	case ShiftRight:
		return i.shiftRight(d.X), nil
	case SubtractInverted:
		return i.subtractInverted(d.X, d.Y), nil
	case ShiftLeft:
		return i.shiftLeft(d.X), nil
	case LoadIndex:
		i.index = d.Address
		return next, nil
	case JumpOffset:
		return jumpTo(d.Address + uint16(i.v[0])), nil
	case Random:
		i.v[d.X] = uint8(i.random.Uint32()) & d.Byte
		return next, nil
	case Draw:
		return i.draw(d.X, d.Y, d.N)
	case SkipKeyPressed:
		return i.skipKey(d.X, true)
	case SkipKeyNotPressed:
		return i.skipKey(d.X, false)
	case LoadDelay:
		i.v[d.X] = i.delayTimer
		return next, nil
	case WaitKey:
		i.waiting = true
		i.waitRegister = d.X
		return next, nil
	case SetDelay:
		i.delayTimer = i.v[d.X]
		return next, nil
	case SetSound:
		i.soundTimer = i.v[d.X]
		return next, nil
	case AddIndex:
		return i.addIndex(d.X), nil
	case LoadFont:
		i.index = fontAddress + uint16(i.v[d.X])*fontGlyphBytes
		return next, nil
	case StoreBCD:
		return i.storeBCD(d.X)
	case StoreRegisters:
		return i.storeRegisters(d.X)
	case LoadRegisters:
		return i.loadRegisters(d.X)
	default:
		return next, ErrUnknownOpcode
	}
}

func (i *Interpreter) clearScreen() transition {
	i.display = Framebuffer{}
	i.displayChanged = true
	return next
}

func (i *Interpreter) ret() (transition, error) {
	if i.sp == 0 {
		return next, ErrStackUnderflow
	}
	i.sp--
	return jumpTo(i.stack[i.sp]), nil
}

func (i *Interpreter) call(address uint16) (transition, error) {
	if int(i.sp) >= StackSize {
		return next, fmt.Errorf("%w: %d nested calls", ErrStackOverflow, i.sp)
	}
	i.stack[i.sp] = i.pc + opcodeSize
	i.sp++
	return jumpTo(address), nil
}

// addRegister stores the sum first, the carry flag wins if x is VF.
func (i *Interpreter) addRegister(x, y uint8) transition {
	sum := uint16(i.v[x]) + uint16(i.v[y])
	i.v[x] = uint8(sum)
	i.v[flagRegister] = boolToFlag(sum > 0xFF)
	return next
}

// subtract sets the flag first, the result wins if x is VF.
func (i *Interpreter) subtract(x, y uint8) transition {
	i.v[flagRegister] = boolToFlag(i.v[x] > i.v[y])
	i.v[x] -= i.v[y]
	return next
}

func (i *Interpreter) subtractInverted(x, y uint8) transition {
	i.v[flagRegister] = boolToFlag(i.v[y] > i.v[x])
	i.v[x] = i.v[y] - i.v[x]
	return next
}

func (i *Interpreter) shiftRight(x uint8) transition {
	i.v[flagRegister] = i.v[x] & 0x01
	i.v[x] >>= 1
	return next
}

func (i *Interpreter) shiftLeft(x uint8) transition {
	i.v[flagRegister] = i.v[x] >> 7
	i.v[x] <<= 1
	return next
}

// addIndex adds Vx to I. VF is set when I exceeds 0x0F00, a quirk of some
// interpreters that a few programs rely on.
func (i *Interpreter) addIndex(x uint8) transition {
	i.index += uint16(i.v[x])
	i.v[flagRegister] = boolToFlag(i.index > 0x0F00)
	return next
}

// draw XORs an 8 pixel wide sprite of n rows read from I onto the display at
// position (Vx, Vy). Coordinates wrap around the display edges. VF is set if
// any set pixel got cleared.
func (i *Interpreter) draw(x, y, n uint8) (transition, error) {
	if err := checkRange(i.index, int(n)); err != nil {
		return next, err
	}

	originX := int(i.v[x])
	originY := int(i.v[y])
	var collision uint8

	for row := range int(n) {
		py := (originY + row) % DisplayHeight
		sprite := i.memory[int(i.index)+row]

		for bit := range 8 {
			px := (originX + bit) % DisplayWidth
			color := (sprite >> (7 - bit)) & 1
			collision |= color & i.display[py][px]
			i.display[py][px] ^= color
		}
	}

	i.v[flagRegister] = collision
	i.displayChanged = true
	return next, nil
}

func (i *Interpreter) skipKey(x uint8, pressed bool) (transition, error) {
	key := i.v[x]
	if int(key) >= KeyCount {
		return next, fmt.Errorf("%w: $%02X", ErrKeyOutOfRange, key)
	}
	return skipIf(i.keypad[key] == pressed), nil
}

func (i *Interpreter) storeBCD(x uint8) (transition, error) {
	if err := checkRange(i.index, 3); err != nil {
		return next, err
	}
	value := i.v[x]
	i.memory[i.index] = value / 100
	i.memory[i.index+1] = (value % 100) / 10
	i.memory[i.index+2] = value % 10
	return next, nil
}

// storeRegisters writes V0 to Vx into memory starting at I. I is not changed.
func (i *Interpreter) storeRegisters(x uint8) (transition, error) {
	count := int(x) + 1
	if err := checkRange(i.index, count); err != nil {
		return next, err
	}
	copy(i.memory[i.index:], i.v[:count])
	return next, nil
}

// loadRegisters reads V0 to Vx from memory starting at I. I is not changed.
func (i *Interpreter) loadRegisters(x uint8) (transition, error) {
	count := int(x) + 1
	if err := checkRange(i.index, count); err != nil {
		return next, err
	}
	copy(i.v[:count], i.memory[i.index:])
	return next, nil
}

func boolToFlag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
