// Package interpreter implements a CHIP-8 virtual machine.
//
// An Interpreter owns the complete machine state: 4KB of memory with the
// hexadecimal font preloaded at address 0x000, sixteen 8-bit registers, the
// index register, a 16 level call stack, the delay and sound timers, a 64x32
// monochrome framebuffer and the keypad. Each call to Tick executes at most
// one instruction, pacing is left to the caller.
package interpreter

import (
	"math/rand/v2"

	"github.com/retroenv/retrogolib/log"
)

// CHIP-8 machine layout.
//
//	0x000-0x04F: Font glyphs (16 glyphs of 5 bytes)
//	0x050-0x1FF: Reserved interpreter area
//	0x200-0xFFF: Program space
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 4096
	// MaxAddress is the highest valid memory address.
	MaxAddress = MemorySize - 1
	// ProgramStart is the address programs are loaded at and execution starts from.
	ProgramStart = 0x200

	// RegisterCount is the number of general purpose V registers.
	RegisterCount = 16
	// StackSize is the maximum number of nested subroutine calls.
	StackSize = 16
	// KeyCount is the number of keys of the hexadecimal keypad.
	KeyCount = 16

	// DisplayWidth is the width of the framebuffer in pixels.
	DisplayWidth = 64
	// DisplayHeight is the height of the framebuffer in pixels.
	DisplayHeight = 32

	opcodeSize   = 2
	flagRegister = 0xF
)

// Keypad contains the pressed state of the keys 0x0 to 0xF.
type Keypad [KeyCount]bool

// Framebuffer is the monochrome display, indexed by row then column.
// Every pixel is either 0 or 1.
type Framebuffer [DisplayHeight][DisplayWidth]uint8

// Pixel returns whether the pixel at the given position is set.
// Coordinates outside of the display return false.
func (f *Framebuffer) Pixel(x, y int) bool {
	if x < 0 || x >= DisplayWidth || y < 0 || y >= DisplayHeight {
		return false
	}
	return f[y][x] != 0
}

// Bytes returns a row major copy of all pixels.
func (f *Framebuffer) Bytes() []byte {
	buf := make([]byte, 0, DisplayWidth*DisplayHeight)
	for y := range f {
		buf = append(buf, f[y][:]...)
	}
	return buf
}

// Option configures an interpreter.
type Option func(*Interpreter)

// WithRandom sets the random number generator used by the random instruction.
func WithRandom(random *rand.Rand) Option {
	return func(i *Interpreter) {
		i.random = random
	}
}

// Interpreter is a CHIP-8 virtual machine. It is not safe for concurrent use.
type Interpreter struct {
	logger *log.Logger
	random *rand.Rand

	memory [MemorySize]byte
	v      [RegisterCount]uint8
	index  uint16
	pc     uint16

	stack [StackSize]uint16
	sp    uint8

	delayTimer uint8
	soundTimer uint8

	display        Framebuffer
	displayChanged bool

	keypad       Keypad
	waiting      bool // waiting for a key press to resume execution
	waitRegister uint8
	stalled      bool // opcode fetch failed at the program counter
}

// New returns a new interpreter with the font loaded and the program counter
// set to ProgramStart.
func New(logger *log.Logger, options ...Option) *Interpreter {
	i := &Interpreter{
		logger: logger,
		pc:     ProgramStart,
	}
	copy(i.memory[:], font[:])

	for _, option := range options {
		option(i)
	}
	if i.random == nil {
		i.random = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return i
}

// Load copies the program into memory starting at ProgramStart. Bytes that do
// not fit into memory are dropped. It returns the number of bytes copied.
func (i *Interpreter) Load(program []byte) int {
	return copy(i.memory[ProgramStart:], program)
}

// Register returns the value of the register Vx.
func (i *Interpreter) Register(x uint8) uint8 {
	return i.v[x&0xF]
}

// Index returns the index register I.
func (i *Interpreter) Index() uint16 {
	return i.index
}

// PC returns the program counter.
func (i *Interpreter) PC() uint16 {
	return i.pc
}

// SP returns the stack pointer, which is the number of active subroutine calls.
func (i *Interpreter) SP() uint8 {
	return i.sp
}

// DelayTimer returns the current delay timer value.
func (i *Interpreter) DelayTimer() uint8 {
	return i.delayTimer
}

// SoundTimer returns the current sound timer value.
func (i *Interpreter) SoundTimer() uint8 {
	return i.soundTimer
}

// Waiting returns whether execution is suspended until a key gets pressed.
func (i *Interpreter) Waiting() bool {
	return i.waiting
}

// Display returns the framebuffer. The returned value must not be modified.
func (i *Interpreter) Display() *Framebuffer {
	return &i.display
}

