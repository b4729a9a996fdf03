package writer

import (
	"fmt"
	"strings"

	"github.com/retroenv/retrochip8/internal/interpreter"
)

// ScreenStyle selects how framebuffer pixels are rendered as text.
type ScreenStyle int

const (
	// ASCIIScreen renders every pixel as a single character.
	ASCIIScreen ScreenStyle = iota
	// BlockScreen renders two pixel rows per text line using unicode half blocks.
	BlockScreen
)

const (
	asciiOn  = '#'
	asciiOff = '.'
)

// half block characters indexed by top pixel | bottom pixel << 1
var blocks = [4]rune{' ', '▀', '▄', '█'}

// Screen writes the framebuffer as text.
func (w Writer) Screen(fb *interpreter.Framebuffer, style ScreenStyle) error {
	var lines []string
	if style == BlockScreen {
		lines = blockLines(fb)
	} else {
		lines = asciiLines(fb)
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w.writer, line); err != nil {
			return fmt.Errorf("writing screen line: %w", err)
		}
	}
	return nil
}

func asciiLines(fb *interpreter.Framebuffer) []string {
	lines := make([]string, 0, interpreter.DisplayHeight)
	for y := range interpreter.DisplayHeight {
		var sb strings.Builder
		for x := range interpreter.DisplayWidth {
			if fb.Pixel(x, y) {
				sb.WriteRune(asciiOn)
			} else {
				sb.WriteRune(asciiOff)
			}
		}
		lines = append(lines, sb.String())
	}
	return lines
}

func blockLines(fb *interpreter.Framebuffer) []string {
	lines := make([]string, 0, interpreter.DisplayHeight/2)
	for y := 0; y < interpreter.DisplayHeight; y += 2 {
		var sb strings.Builder
		for x := range interpreter.DisplayWidth {
			index := 0
			if fb.Pixel(x, y) {
				index |= 1
			}
			if fb.Pixel(x, y+1) {
				index |= 2
			}
			sb.WriteRune(blocks[index])
		}
		lines = append(lines, strings.TrimRight(sb.String(), " "))
	}
	return lines
}
