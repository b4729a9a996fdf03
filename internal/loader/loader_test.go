package loader

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestLoad(t *testing.T) {
	t.Run("load ROM file", func(t *testing.T) {
		tmpFile := createTempFile(t, []byte{0x00, 0xE0, 0x12, 0x00})

		data, err := New().Load(tmpFile)
		assert.NoError(t, err)
		assert.Equal(t, []byte{0x00, 0xE0, 0x12, 0x00}, data)
	})

	t.Run("load empty file", func(t *testing.T) {
		tmpFile := createTempFile(t, nil)

		_, err := New().Load(tmpFile)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrEmptyProgram))
	})

	t.Run("load missing file", func(t *testing.T) {
		_, err := New().Load(filepath.Join(t.TempDir(), "missing.ch8"))
		assert.ErrorContains(t, err, "opening file")
	})

	t.Run("load oversized program", func(t *testing.T) {
		rom := bytes.Repeat([]byte{0xAA}, 5000)
		tmpFile := createTempFile(t, rom)

		data, err := New().Load(tmpFile)
		assert.NoError(t, err)
		assert.Len(t, data, 5000)
	})
}

func TestLoadFromReader(t *testing.T) {
	data, err := New().LoadFromReader(bytes.NewReader([]byte{0x60, 0x01}))
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x60, 0x01}, data)

	_, err = New().LoadFromReader(bytes.NewReader(nil))
	assert.True(t, errors.Is(err, ErrEmptyProgram))
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.ch8")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
