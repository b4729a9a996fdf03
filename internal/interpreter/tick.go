package interpreter

import (
	"errors"

	"github.com/retroenv/retrogolib/log"
)

// Output reports the result of a single tick.
type Output struct {
	Display        *Framebuffer // read-only view of the framebuffer
	DisplayChanged bool         // framebuffer was cleared or drawn to during this tick
	PlaySound      bool         // sound timer is active

	Executed bool   // an instruction was fetched this tick
	PC       uint16 // address of the fetched instruction
	Opcode   uint16
	Fault    error // instruction fault, execution continues regardless
}

// Tick runs one step of the machine using the passed keypad state.
//
// While waiting for a key press, the lowest pressed key is stored in the
// target register and execution resumes on the next tick. No instruction is
// executed and the timers are not decremented in that state. Otherwise the
// timers are decremented and exactly one instruction is executed.
func (i *Interpreter) Tick(keys Keypad) Output {
	i.keypad = keys
	i.displayChanged = false

	if i.waiting {
		i.resolveWait()
		return i.output()
	}

	i.decrementTimers()

	out := i.step()
	out.Display = &i.display
	out.DisplayChanged = i.displayChanged
	out.PlaySound = i.soundTimer > 0
	return out
}

func (i *Interpreter) output() Output {
	return Output{
		Display:        &i.display,
		DisplayChanged: i.displayChanged,
		PlaySound:      i.soundTimer > 0,
	}
}

func (i *Interpreter) resolveWait() {
	for key, pressed := range i.keypad {
		if pressed {
			i.v[i.waitRegister] = uint8(key)
			i.waiting = false
			return
		}
	}
}

func (i *Interpreter) decrementTimers() {
	if i.delayTimer > 0 {
		i.delayTimer--
	}
	if i.soundTimer > 0 {
		i.soundTimer--
	}
}

// step fetches, decodes and executes the instruction at the program counter.
func (i *Interpreter) step() Output {
	pc := i.pc
	opcode, err := i.fetch()
	if err != nil {
		// the program counter does not move, only the first tick logs the stall
		fault := &Fault{PC: pc, Err: err}
		if !i.stalled {
			fault = i.fault(pc, 0, err)
		}
		i.stalled = true
		return Output{PC: pc, Fault: fault}
	}
	i.stalled = false

	t, err := i.execute(Decode(opcode))
	i.pc = t.apply(pc)

	out := Output{
		Executed: true,
		PC:       pc,
		Opcode:   opcode,
	}
	if err != nil {
		out.Fault = i.fault(pc, opcode, err)
	}
	return out
}

// fetch reads the big endian opcode at the program counter.
func (i *Interpreter) fetch() (uint16, error) {
	if err := checkRange(i.pc, opcodeSize); err != nil {
		return 0, err
	}
	return uint16(i.memory[i.pc])<<8 | uint16(i.memory[i.pc+1]), nil
}

func (i *Interpreter) fault(pc, opcode uint16, err error) *Fault {
	if i.logger != nil {
		msg := "Instruction fault"
		if errors.Is(err, ErrUnknownOpcode) {
			msg = "Unknown opcode"
		}
		i.logger.Warn(msg,
			log.Hex("pc", pc),
			log.Hex("opcode", opcode),
			log.Err(err))
	}
	return &Fault{PC: pc, Opcode: opcode, Err: err}
}
