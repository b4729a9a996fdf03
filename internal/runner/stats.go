package runner

import (
	"github.com/cespare/xxhash"
	"github.com/retroenv/retrochip8/internal/interpreter"
	"github.com/retroenv/retrogolib/set"
)

// Stats contains the statistics of a program run.
type Stats struct {
	Ticks      uint64
	Executed   uint64 // ticks that executed an instruction
	Faults     uint64
	Frames     uint64 // ticks that changed the display
	SoundTicks uint64 // ticks with an active sound timer

	Addresses set.Set[uint16] // distinct addresses of executed instructions

	Screen     interpreter.Framebuffer // copy of the final display
	ScreenHash uint64                  // xxhash of the final display pixels
}

func (s *Stats) record(output interpreter.Output) {
	s.Ticks++
	if output.Executed {
		s.Executed++
		s.Addresses.Add(output.PC)
	}
	if output.Fault != nil {
		s.Faults++
	}
	if output.DisplayChanged {
		s.Frames++
	}
	if output.PlaySound {
		s.SoundTicks++
	}
}

func (s *Stats) finish(display *interpreter.Framebuffer) {
	s.Screen = *display
	s.ScreenHash = xxhash.Sum64(display.Bytes())
}
