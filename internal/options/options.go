// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input      string `flag:"i" usage:"input ROM file"`
	Screenshot string `flag:"screenshot" usage:"write the final screen as .png file"`
}

// Flags contains behavior options.
type Flags struct {
	Cycles uint64 `flag:"cycles" usage:"number of ticks to run, 0 runs until interrupted" default:"1000"`
	Hz     uint   `flag:"hz" usage:"ticks per second, 0 runs unthrottled" default:"500"`
	Keys   string `flag:"keys" usage:"comma separated hex keys held down during the run (e.g. 1,a)"`
	Seed   uint64 `flag:"seed" usage:"seed for the random number generator, 0 uses a random seed"`
	Disasm bool   `flag:"disasm" usage:"print a disassembly listing of the ROM and exit"`
	Trace  bool   `flag:"trace" usage:"log every executed instruction"`
	Debug  bool   `flag:"debug" usage:"enable debug logging"`
	Quiet  bool   `flag:"q" usage:"quiet mode"`
}

// OutputFlags contains output formatting options.
type OutputFlags struct {
	Screen bool `flag:"screen" usage:"print the final screen as text"`
	Scale  int  `flag:"scale" usage:"pixel scale factor of the screenshot" default:"8"`
}

// Program options of the interpreter.
type Program struct {
	Parameters
	Flags
	OutputFlags

	HeldKeys []uint8 // parsed from Keys
}
