package writer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/interpreter"
	"github.com/retroenv/retrogolib/assert"
)

func TestListing(t *testing.T) {
	lines := disasm.Program([]byte{
		0xA2, 0x04, // ld I, $204
		0x12, 0x02, // jp $202
		0xFF, 0xFF, // data
	}, interpreter.ProgramStart)

	var buf bytes.Buffer
	w := New(&buf, Options{})
	assert.NoError(t, w.Listing(lines, 0x1234))

	expected := `; ROM xxhash64 checksum: 0000000000001234
; Code base address: $0200

  ld I, _204

_202:
  jp _202

_204:
  .word $FFFF
`
	assert.Equal(t, expected, buf.String())
}

func TestListingBlocks(t *testing.T) {
	lines := disasm.Program([]byte{
		0x30, 0x00, // se V0, $00
		0x00, 0xEE, // ret
		0x00, 0xEE, // ret
		0x60, 0x01, // ld V0, $01
	}, interpreter.ProgramStart)

	var buf bytes.Buffer
	assert.NoError(t, New(&buf, Options{}).Listing(lines, 0))

	expected := `; ROM xxhash64 checksum: 0000000000000000
; Code base address: $0200

  se V0, $00
  ret
  ret

  ld V0, $01
`
	assert.Equal(t, expected, buf.String())
}

func TestListingExternalReference(t *testing.T) {
	lines := disasm.Program([]byte{0xA0, 0x00}, interpreter.ProgramStart)

	var buf bytes.Buffer
	assert.NoError(t, New(&buf, Options{}).Listing(lines, 0))
	assert.Contains(t, buf.String(), "  ld I, $000\n")
}

func TestListingComments(t *testing.T) {
	lines := disasm.Program([]byte{0x00, 0xE0}, interpreter.ProgramStart)

	var buf bytes.Buffer
	w := New(&buf, Options{HexComments: true, OffsetComments: true})
	assert.NoError(t, w.Listing(lines, 0))

	assert.Contains(t, buf.String(), "  cls                            ; $0200  00 E0\n")
}

func TestScreen(t *testing.T) {
	var fb interpreter.Framebuffer
	fb[0][0] = 1
	fb[1][1] = 1
	fb[31][63] = 1

	t.Run("ascii", func(t *testing.T) {
		var buf bytes.Buffer
		assert.NoError(t, New(&buf, Options{}).Screen(&fb, ASCIIScreen))

		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		assert.Len(t, lines, interpreter.DisplayHeight)
		assert.Equal(t, "#"+strings.Repeat(".", 63), lines[0])
		assert.Equal(t, ".#"+strings.Repeat(".", 62), lines[1])
		assert.Equal(t, strings.Repeat(".", 63)+"#", lines[31])
	})

	t.Run("blocks", func(t *testing.T) {
		var buf bytes.Buffer
		assert.NoError(t, New(&buf, Options{}).Screen(&fb, BlockScreen))

		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		assert.Len(t, lines, interpreter.DisplayHeight/2)
		assert.Equal(t, "▀▄", lines[0])
		assert.Equal(t, "", lines[1])
		assert.Equal(t, strings.Repeat(" ", 63)+"▄", lines[15])
	})
}
