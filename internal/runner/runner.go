// Package runner orchestrates the interpreter run workflow stages.
package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/cespare/xxhash"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/detector"
	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/interpreter"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/screenshot"
	"github.com/retroenv/retrochip8/internal/writer"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
	"golang.org/x/term"
)

// Runner orchestrates loading a ROM, running it and reporting the results.
type Runner struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// New creates a new runner.
func New(logger *log.Logger) *Runner {
	return &Runner{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
	}
}

// Execute loads the ROM referenced by the options and either lists or runs it.
func (r *Runner) Execute(ctx context.Context, opts options.Program, out io.Writer) (*Stats, error) {
	r.detector.Detect(opts.Input)

	data, err := r.loader.Load(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("loading ROM: %w", err)
	}

	r.printInfo(opts, data)

	if opts.Disasm {
		if err := r.writeListing(data, out); err != nil {
			return nil, fmt.Errorf("writing listing: %w", err)
		}
		return nil, nil
	}

	return r.ExecuteWithProgram(ctx, data, opts, out)
}

// ExecuteWithProgram runs a program that is already in memory.
// This is useful for testing and programmatic usage.
func (r *Runner) ExecuteWithProgram(ctx context.Context, data []byte, opts options.Program, out io.Writer) (*Stats, error) {
	ip := interpreter.New(r.logger, interpreter.WithRandom(config.NewRandom(opts.Seed)))
	if copied := ip.Load(data); copied < len(data) {
		r.logger.Warn("Program does not fit into memory, truncating",
			log.Int("size", len(data)),
			log.Int("loaded", copied))
	}

	stats, runErr := r.run(ctx, ip, opts)
	if stats != nil {
		r.printStats(opts, stats)
	}
	if runErr != nil {
		return stats, runErr
	}

	if err := r.writeScreen(opts, stats, out); err != nil {
		return stats, err
	}
	return stats, nil
}

// run ticks the interpreter until the cycle limit is reached or the context
// is cancelled. A zero tick rate runs without throttling.
func (r *Runner) run(ctx context.Context, ip *interpreter.Interpreter, opts options.Program) (*Stats, error) {
	keys := heldKeys(opts.HeldKeys)
	stats := &Stats{
		Addresses: set.New[uint16](),
	}
	defer stats.finish(ip.Display())

	var tick <-chan time.Time
	if opts.Hz > 0 {
		ticker := time.NewTicker(tickInterval(opts.Hz))
		defer ticker.Stop()
		tick = ticker.C
	}

	for opts.Cycles == 0 || stats.Ticks < opts.Cycles {
		if tick != nil {
			select {
			case <-ctx.Done():
				return stats, fmt.Errorf("running program: %w", ctx.Err())
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return stats, fmt.Errorf("running program: %w", err)
		}

		output := ip.Tick(keys)
		stats.record(output)

		if opts.Trace && output.Executed {
			r.trace(output)
		}
	}

	return stats, nil
}

// tickInterval returns the ticker period for a tick rate, rates above 1GHz
// are limited to the smallest ticker period.
func tickInterval(hz uint) time.Duration {
	if hz >= uint(time.Second) {
		return time.Nanosecond
	}
	return time.Second / time.Duration(hz)
}

func (r *Runner) trace(output interpreter.Output) {
	ins, _ := disasm.Disassemble(output.Opcode)
	if !ins.IsValid() {
		return // already logged as fault
	}
	r.logger.Debug("Executed",
		log.Hex("pc", output.PC),
		log.Hex("opcode", output.Opcode),
		log.String("instruction", ins.String()))
}

func heldKeys(held []uint8) interpreter.Keypad {
	var keys interpreter.Keypad
	for _, key := range held {
		if int(key) < interpreter.KeyCount {
			keys[key] = true
		}
	}
	return keys
}

func (r *Runner) writeListing(data []byte, out io.Writer) error {
	lines := disasm.Program(data, interpreter.ProgramStart)
	w := writer.New(out, writer.Options{
		HexComments:    true,
		OffsetComments: true,
	})
	return w.Listing(lines, xxhash.Sum64(data))
}

func (r *Runner) writeScreen(opts options.Program, stats *Stats, out io.Writer) error {
	if opts.Screen {
		w := writer.New(out, writer.Options{})
		if err := w.Screen(&stats.Screen, screenStyle(out)); err != nil {
			return fmt.Errorf("writing screen: %w", err)
		}
	}

	if opts.Screenshot != "" {
		if err := screenshot.WriteFile(opts.Screenshot, &stats.Screen, opts.Scale); err != nil {
			return fmt.Errorf("writing screenshot: %w", err)
		}
		r.logger.Info("Screenshot written", log.String("file", opts.Screenshot))
	}
	return nil
}

// screenStyle uses unicode blocks when the output is an interactive terminal.
func screenStyle(out io.Writer) writer.ScreenStyle {
	file, ok := out.(*os.File)
	if ok && term.IsTerminal(int(file.Fd())) {
		return writer.BlockScreen
	}
	return writer.ASCIIScreen
}

// printInfo prints information about the ROM being processed.
func (r *Runner) printInfo(opts options.Program, data []byte) {
	if opts.Quiet {
		return
	}

	r.logger.Info("Processing CHIP-8 ROM",
		log.String("file", opts.Input),
		log.Int("size", len(data)),
		log.String("checksum", fmt.Sprintf("%016x", xxhash.Sum64(data))),
	)
}

func (r *Runner) printStats(opts options.Program, stats *Stats) {
	if opts.Quiet {
		return
	}

	r.logger.Info("Run finished",
		log.Int("ticks", int(stats.Ticks)),
		log.Int("executed", int(stats.Executed)),
		log.Int("faults", int(stats.Faults)),
		log.Int("frames", int(stats.Frames)),
		log.Int("sound_ticks", int(stats.SoundTicks)),
		log.Int("addresses", len(stats.Addresses)),
		log.String("screen_hash", fmt.Sprintf("%016x", stats.ScreenHash)),
	)
}

// PrintBanner prints the application name and version.
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	versionString := version
	if commit != "" {
		if len(commit) > 7 {
			commit = commit[:7]
		}
		versionString += fmt.Sprintf(" (%s)", commit)
	}

	logger.Info("retrochip8", log.String("version", versionString))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}
