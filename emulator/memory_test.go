package emulator

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFontIsPreloaded(t *testing.T) {
	m := NewMemory()
	b, err := m.Read(CharacterSpritesOffset, len(characterSprites))
	require.NoError(t, err)
	assert.Equal(t, characterSprites[:], b)
	assert.Len(t, characterSprites, 16*CharacterSpriteBytes)

	// glyph F
	b, _ = m.Read(0xf*CharacterSpriteBytes, CharacterSpriteBytes)
	assert.Equal(t, []uint8{0xF0, 0x80, 0xF0, 0x80, 0x80}, b)
}

func TestLoadProgram(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.LoadProgram([]byte{0x12, 0x34, 0x56}))

	w, err := m.Word(ProgramOffset)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), w)

	full := make([]byte, MemorySize-ProgramOffset)
	assert.NoError(t, m.LoadProgram(full))
	assert.True(t, errors.Is(m.LoadProgram(append(full, 0)), ErrROMTooLarge))
}

func TestMemoryBounds(t *testing.T) {
	m := NewMemory()

	_, err := m.Read(MemorySize-2, 2)
	assert.NoError(t, err)
	assert.NoError(t, m.Write(MemorySize-1, []uint8{1}))

	tests := []struct {
		name string
		err  error
	}{
		{"read past end", func() error { _, err := m.Read(MemorySize-1, 2); return err }()},
		{"read beyond space", func() error { _, err := m.Read(0xffff, 1); return err }()},
		{"write past end", m.Write(MemorySize-2, []uint8{1, 2, 3})},
		{"word at last byte", func() error { _, err := m.Word(MemorySize - 1); return err }()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var access *MemoryAccessError
			assert.True(t, errors.As(tt.err, &access), "got %v", tt.err)
		})
	}
}

func TestLoadROM(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "ok.ch8")
	require.NoError(t, os.WriteFile(path, []byte{0x00, 0xE0}, 0o644))
	b, err := LoadROM(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xE0}, b)

	_, err = LoadROM(filepath.Join(dir, "missing.ch8"))
	assert.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)

	big := filepath.Join(dir, "big.ch8")
	require.NoError(t, os.WriteFile(big, make([]byte, MemorySize), 0o644))
	_, err = LoadROM(big)
	assert.True(t, errors.Is(err, ErrROMTooLarge), "got %v", err)
}
