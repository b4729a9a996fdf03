package runner

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// drawProgram draws the font glyph 0 at the top left corner and loops.
var drawProgram = []byte{
	0xA0, 0x00, // ld I, $000
	0xD0, 0x15, // drw V0, V1, $5
	0x12, 0x04, // jp $204
}

func testOptions(cycles uint64) options.Program {
	return options.Program{
		Flags: options.Flags{
			Cycles: cycles,
			Seed:   1,
			Quiet:  true,
		},
		OutputFlags: options.OutputFlags{Scale: 1},
	}
}

func TestNew(t *testing.T) {
	logger := log.NewTestLogger(t)
	r := New(logger)

	assert.NotNil(t, r)
	assert.NotNil(t, r.logger)
	assert.NotNil(t, r.detector)
	assert.NotNil(t, r.loader)
}

func TestExecuteWithProgram(t *testing.T) {
	r := New(log.NewTestLogger(t))

	var buf bytes.Buffer
	stats, err := r.ExecuteWithProgram(context.Background(), drawProgram, testOptions(10), &buf)
	assert.NoError(t, err)

	assert.Equal(t, uint64(10), stats.Ticks)
	assert.Equal(t, uint64(10), stats.Executed)
	assert.Equal(t, uint64(0), stats.Faults)
	assert.Equal(t, uint64(1), stats.Frames)
	assert.Equal(t, uint64(0), stats.SoundTicks)
	assert.Len(t, stats.Addresses, 3)
	assert.True(t, stats.Addresses.Contains(0x204))

	assert.True(t, stats.Screen.Pixel(0, 0))
	assert.True(t, stats.Screen.Pixel(3, 0))
	assert.False(t, stats.Screen.Pixel(1, 1))
	assert.False(t, stats.Screen.Pixel(4, 0))
	assert.True(t, stats.ScreenHash != 0)
	assert.Equal(t, 0, buf.Len())
}

func TestExecuteWithProgram_Deterministic(t *testing.T) {
	program := []byte{
		0xC0, 0xFF, // rnd V0, $FF
		0xC1, 0xFF, // rnd V1, $FF
		0xA0, 0x00, // ld I, $000
		0xD0, 0x15, // drw V0, V1, $5
		0x12, 0x00, // jp $200
	}

	r := New(log.NewTestLogger(t))
	first, err := r.ExecuteWithProgram(context.Background(), program, testOptions(50), &bytes.Buffer{})
	assert.NoError(t, err)
	second, err := r.ExecuteWithProgram(context.Background(), program, testOptions(50), &bytes.Buffer{})
	assert.NoError(t, err)

	assert.Equal(t, first.ScreenHash, second.ScreenHash)
}

func TestExecuteWithProgram_Faults(t *testing.T) {
	r := New(log.NewTestLogger(t))

	stats, err := r.ExecuteWithProgram(context.Background(), []byte{0x00, 0x00}, testOptions(3), &bytes.Buffer{})
	assert.NoError(t, err)
	assert.Equal(t, uint64(3), stats.Executed)
	assert.Equal(t, uint64(3), stats.Faults)
}

func TestExecuteWithProgram_FetchStall(t *testing.T) {
	r := New(log.NewTestLogger(t))

	stats, err := r.ExecuteWithProgram(context.Background(), []byte{0x1F, 0xFF}, testOptions(5), &bytes.Buffer{})
	assert.NoError(t, err)
	assert.Equal(t, uint64(1), stats.Executed)
	assert.Equal(t, uint64(4), stats.Faults)
}

func TestExecuteWithProgram_Truncated(t *testing.T) {
	r := New(log.NewTestLogger(t))

	program := bytes.Repeat([]byte{0x12, 0x00}, 4000)
	stats, err := r.ExecuteWithProgram(context.Background(), program, testOptions(2), &bytes.Buffer{})
	assert.NoError(t, err)
	assert.Len(t, stats.Addresses, 1)
}

func TestExecuteWithProgram_Cancelled(t *testing.T) {
	r := New(log.NewTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats, err := r.ExecuteWithProgram(ctx, drawProgram, testOptions(0), &bytes.Buffer{})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, uint64(0), stats.Ticks)
}

func TestExecuteWithProgram_Throttled(t *testing.T) {
	r := New(log.NewTestLogger(t))

	opts := testOptions(5)
	opts.Hz = 1000
	stats, err := r.ExecuteWithProgram(context.Background(), drawProgram, opts, &bytes.Buffer{})
	assert.NoError(t, err)
	assert.Equal(t, uint64(5), stats.Ticks)
}

func TestExecuteWithProgram_HighTickRate(t *testing.T) {
	r := New(log.NewTestLogger(t))

	opts := testOptions(3)
	opts.Hz = 2_000_000_000
	stats, err := r.ExecuteWithProgram(context.Background(), drawProgram, opts, &bytes.Buffer{})
	assert.NoError(t, err)
	assert.Equal(t, uint64(3), stats.Ticks)
}

func TestTickInterval(t *testing.T) {
	assert.Equal(t, 2*time.Millisecond, tickInterval(500))
	assert.Equal(t, time.Nanosecond, tickInterval(1_000_000_000))
	assert.Equal(t, time.Nanosecond, tickInterval(2_000_000_000))
}

func TestExecuteWithProgram_Trace(t *testing.T) {
	r := New(log.NewTestLogger(t))

	opts := testOptions(3)
	opts.Trace = true
	stats, err := r.ExecuteWithProgram(context.Background(), drawProgram, opts, &bytes.Buffer{})
	assert.NoError(t, err)
	assert.Equal(t, uint64(3), stats.Executed)
}

func TestExecuteWithProgram_Screen(t *testing.T) {
	r := New(log.NewTestLogger(t))

	opts := testOptions(2)
	opts.Screen = true
	opts.Screenshot = filepath.Join(t.TempDir(), "screen.png")

	var buf bytes.Buffer
	_, err := r.ExecuteWithProgram(context.Background(), drawProgram, opts, &buf)
	assert.NoError(t, err)

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "####"+strings.Repeat(".", 60), lines[0])
	assert.Equal(t, "#..#"+strings.Repeat(".", 60), lines[1])

	info, err := os.Stat(opts.Screenshot)
	assert.NoError(t, err)
	assert.True(t, info.Size() > 0)
}

func TestExecute(t *testing.T) {
	r := New(log.NewTestLogger(t))
	path := filepath.Join(t.TempDir(), "test.ch8")
	assert.NoError(t, os.WriteFile(path, drawProgram, 0600))

	t.Run("run", func(t *testing.T) {
		opts := testOptions(4)
		opts.Input = path

		stats, err := r.Execute(context.Background(), opts, &bytes.Buffer{})
		assert.NoError(t, err)
		assert.Equal(t, uint64(4), stats.Ticks)
	})

	t.Run("listing", func(t *testing.T) {
		opts := testOptions(4)
		opts.Input = path
		opts.Disasm = true

		var buf bytes.Buffer
		stats, err := r.Execute(context.Background(), opts, &buf)
		assert.NoError(t, err)
		assert.True(t, stats == nil)

		output := buf.String()
		assert.Contains(t, output, "ld I, $000")
		assert.Contains(t, output, "_204:")
		assert.Contains(t, output, "jp _204")
	})

	t.Run("missing file", func(t *testing.T) {
		opts := testOptions(4)
		opts.Input = filepath.Join(t.TempDir(), "missing.ch8")

		_, err := r.Execute(context.Background(), opts, &bytes.Buffer{})
		assert.ErrorContains(t, err, "loading ROM")
	})
}

func TestHeldKeys(t *testing.T) {
	keys := heldKeys([]uint8{0x1, 0xa, 0x20})
	assert.True(t, keys[0x1])
	assert.True(t, keys[0xa])
	assert.False(t, keys[0x0])
}
