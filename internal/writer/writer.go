// Package writer implements the text output of ROM listings and screens.
package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrogolib/set"
)

// Writer implements common listing writing functionality.
type Writer struct {
	options Options
	writer  io.Writer
}

// Options of the writer.
type Options struct {
	HexComments    bool // output opcode bytes as hex values in comments
	OffsetComments bool // output addresses in comments
}

// New creates a new writer.
func New(writer io.Writer, options Options) *Writer {
	return &Writer{
		options: options,
		writer:  writer,
	}
}

// Listing writes all lines of a disassembled program, preceded by a
// comment header.
func (w Writer) Listing(lines []disasm.Line, checksum uint64) error {
	if err := w.writeCommentHeader(lines, checksum); err != nil {
		return err
	}

	labels := set.New[uint16]()
	for _, line := range lines {
		if line.Label != "" {
			labels.Add(line.Address)
		}
	}

	for i, line := range lines {
		if err := w.writeLabel(i, line); err != nil {
			return err
		}
		if err := w.writeCodeLine(line, labels); err != nil {
			return err
		}

		// separate code blocks, labeled lines are already preceded by an empty line
		if endsBlock(lines, i) && i+1 < len(lines) && lines[i+1].Label == "" {
			if _, err := fmt.Fprintln(w.writer); err != nil {
				return fmt.Errorf("writing line: %w", err)
			}
		}
	}
	return nil
}

// endsBlock returns whether execution can not fall through the line, which is
// the case for returns and jumps that are not the target of a skip.
func endsBlock(lines []disasm.Line, index int) bool {
	ins := lines[index].Instruction
	if !ins.IsReturn() && !ins.IsJump() {
		return false
	}
	return index == 0 || !lines[index-1].Instruction.IsSkip()
}

// writeCommentHeader writes the checksum and load address as comments to the output.
func (w Writer) writeCommentHeader(lines []disasm.Line, checksum uint64) error {
	if _, err := fmt.Fprintf(w.writer, "; ROM xxhash64 checksum: %016x\n", checksum); err != nil {
		return fmt.Errorf("writing checksum: %w", err)
	}
	var base uint16
	if len(lines) > 0 {
		base = lines[0].Address
	}
	if _, err := fmt.Fprintf(w.writer, "; Code base address: $%04x\n\n", base); err != nil {
		return fmt.Errorf("writing code base address: %w", err)
	}
	return nil
}

func (w Writer) writeLabel(index int, line disasm.Line) error {
	if line.Label == "" {
		return nil
	}

	if index > 0 {
		if _, err := fmt.Fprintln(w.writer); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}

	if _, err := fmt.Fprintf(w.writer, "%s:\n", line.Label); err != nil {
		return fmt.Errorf("writing label: %w", err)
	}
	return nil
}

// writeCodeLine writes an instruction, references to labeled addresses are
// replaced by the label name.
func (w Writer) writeCodeLine(line disasm.Line, labels set.Set[uint16]) error {
	code := line.Instruction.String()
	if target, ok := line.Instruction.Target(); ok && labels.Contains(target) {
		code = line.Instruction.Name + " " + targetParams(line.Instruction, disasm.Label(target))
	}

	comment := w.lineComment(line)
	if comment == "" {
		if _, err := fmt.Fprintf(w.writer, "  %s\n", code); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
		return nil
	}

	if _, err := fmt.Fprintf(w.writer, "  %-30s ; %s\n", code, comment); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}

// targetParams replaces the absolute address operand by its label.
func targetParams(ins disasm.Instruction, label string) string {
	if ins.IsDataReference() {
		return "I, " + label
	}
	return label
}

func (w Writer) lineComment(line disasm.Line) string {
	var parts []string
	if w.options.OffsetComments {
		parts = append(parts, fmt.Sprintf("$%04X", line.Address))
	}
	if w.options.HexComments {
		hex := make([]string, 0, len(line.Data))
		for _, b := range line.Data {
			hex = append(hex, fmt.Sprintf("%02X", b))
		}
		parts = append(parts, strings.Join(hex, " "))
	}
	return strings.Join(parts, "  ")
}
