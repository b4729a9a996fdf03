// Package loader handles ROM file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// maxFileSize limits how much of an input is read, CHIP-8 programs are far
// smaller than this.
const maxFileSize = 1 << 20

// ErrEmptyProgram is returned for inputs that contain no program bytes.
var ErrEmptyProgram = errors.New("empty program")

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the ROM file at the given path.
func (l *Loader) Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	data, err := l.LoadFromReader(file)
	if err != nil {
		return nil, fmt.Errorf("loading file %s: %w", path, err)
	}
	return data, nil
}

// LoadFromReader reads a ROM from the reader. Inputs bigger than the
// interpreter memory are returned complete, truncation is up to the caller.
func (l *Loader) LoadFromReader(reader io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(reader, maxFileSize))
	if err != nil {
		return nil, fmt.Errorf("reading program: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyProgram
	}
	return data, nil
}
