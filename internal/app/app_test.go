package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestLoadROM(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "game.ch8")
	data := []byte{0x60, 0x05, 0x70, 0x03}
	assert.NoError(t, os.WriteFile(filename, data, 0o644))

	rom, err := LoadROM(filename)
	assert.NoError(t, err)
	assert.Equal(t, data, rom)
}

func TestLoadROMMissingFile(t *testing.T) {
	_, err := LoadROM(filepath.Join(t.TempDir(), "missing.ch8"))

	assert.True(t, err != nil)
	assert.Contains(t, err.Error(), "reading ROM file")
}

func TestLoadROMEmptyFile(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "empty.ch8")
	assert.NoError(t, os.WriteFile(filename, nil, 0o644))

	_, err := LoadROM(filename)

	assert.True(t, err != nil)
	assert.Contains(t, err.Error(), "is empty")
}

func TestLoadROMOversized(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "big.ch8")
	assert.NoError(t, os.WriteFile(filename, make([]byte, maxROMSize+1), 0o644))

	_, err := LoadROM(filename)

	assert.True(t, err != nil)
	assert.Contains(t, err.Error(), "exceeds")
}
