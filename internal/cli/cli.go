// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/retroenv/retrochip8/internal/interpreter"
	"github.com/retroenv/retrochip8/internal/options"
)

// maxHz is the highest tick rate that still has a tick interval of 1ns.
const maxHz = uint(time.Second)

var errInvalidKey = errors.New("invalid key")

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "") {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	if opts.Input == "" {
		opts.Input = args[0]
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retrochip8 [options] <ROM file to run>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	if opts.Hz > maxHz {
		return fmt.Errorf("unsupported tick rate %d: must be at most %d", opts.Hz, maxHz)
	}
	if opts.Scale < 1 {
		return fmt.Errorf("unsupported scale %d: must be at least 1", opts.Scale)
	}

	keys, err := parseKeys(opts.Keys)
	if err != nil {
		return err
	}
	opts.HeldKeys = keys
	return nil
}

// parseKeys parses a comma separated list of hex keypad indices.
func parseKeys(s string) ([]uint8, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	keys := make([]uint8, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		value, err := strconv.ParseUint(part, 16, 8)
		if err != nil || value >= interpreter.KeyCount {
			return nil, fmt.Errorf("%w '%s': valid keys are 0-f", errInvalidKey, part)
		}
		keys = append(keys, uint8(value))
	}
	return keys, nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.Screenshot, "screenshot", "", "name of a .png file to write the final screen to")
	flags.Uint64Var(&opts.Cycles, "cycles", 1000, "number of ticks to run, 0 runs until interrupted")
	flags.UintVar(&opts.Hz, "hz", 500, "ticks per second, 0 runs as fast as possible")
	flags.StringVar(&opts.Keys, "keys", "", "comma separated hex keys held down during the run, for example 1,a")
	flags.Uint64Var(&opts.Seed, "seed", 0, "seed for the random number generator, 0 uses a random seed")
	flags.BoolVar(&opts.Disasm, "disasm", false, "print a disassembly listing of the ROM and exit")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, implies debug logging")
	flags.BoolVar(&opts.Screen, "screen", false, "print the final screen as text")
	flags.IntVar(&opts.Scale, "scale", 8, "pixel scale factor of the screenshot")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
