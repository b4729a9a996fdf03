// Package detector handles system architecture detection.
package detector

import (
	"path/filepath"
	"strings"

	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/log"
)

// Detector handles system architecture detection from file extensions.
type Detector struct {
	logger *log.Logger
}

// New creates a new system detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the system architecture from the input filename
// extension and warns if the file does not look like a CHIP-8 program.
// Raw binaries with unknown extensions are assumed to be CHIP-8 programs.
func (d *Detector) Detect(filename string) arch.System {
	system := detectFromFile(filename)
	d.logger.Debug("Auto-detected system",
		log.Stringer("system", system),
		log.String("file", filename))

	if system != arch.CHIP8System {
		d.logger.Warn("File extension indicates a different system, running as CHIP-8 program",
			log.Stringer("system", system),
			log.String("file", filename))
	}
	return system
}

// detectFromFile determines the system type based on file extension.
func detectFromFile(filename string) arch.System {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".nes":
		return arch.NES
	default:
		return arch.CHIP8System
	}
}
