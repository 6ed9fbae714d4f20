package emulator

import (
	"fmt"
	"os"
)

// LoadROM reads a raw program image. There is no header; the bytes are
// loaded verbatim at ProgramOffset.
func LoadROM(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rom %q: %w", path, err)
	}
	if len(b) > MemorySize-ProgramOffset {
		return nil, fmt.Errorf("rom %q is %d bytes: %w", path, len(b), ErrROMTooLarge)
	}
	return b, nil
}
