package config

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(false, false))
	assert.NotNil(t, CreateLogger(true, false))
	assert.NotNil(t, CreateLogger(false, true))
}

func TestNewRandom(t *testing.T) {
	a := NewRandom(42)
	b := NewRandom(42)
	for range 16 {
		assert.Equal(t, a.Uint32(), b.Uint32())
	}

	assert.NotNil(t, NewRandom(0))
}
