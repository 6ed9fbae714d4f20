package emulator

// Memory is the flat 4K address space. The hex font lives at
// CharacterSpritesOffset and programs are loaded at ProgramOffset.
type Memory struct {
	data [MemorySize]uint8
}

// NewMemory returns a zeroed memory image with the font preloaded.
func NewMemory() *Memory {
	m := &Memory{}
	copy(m.data[CharacterSpritesOffset:], characterSprites[:])
	return m
}

func checkRange(addr uint16, n int) error {
	if n < 0 || int(addr)+n > MemorySize {
		return &MemoryAccessError{Address: addr, Length: n}
	}
	return nil
}

// Read returns n bytes starting at addr. The slice aliases memory.
func (m *Memory) Read(addr uint16, n int) ([]uint8, error) {
	if err := checkRange(addr, n); err != nil {
		return nil, err
	}
	return m.data[addr : int(addr)+n], nil
}

// Write copies b into memory starting at addr.
func (m *Memory) Write(addr uint16, b []uint8) error {
	if err := checkRange(addr, len(b)); err != nil {
		return err
	}
	copy(m.data[addr:], b)
	return nil
}

// LoadProgram writes a program image at ProgramOffset.
func (m *Memory) LoadProgram(program []byte) error {
	if len(program) > MemorySize-ProgramOffset {
		return ErrROMTooLarge
	}
	return m.Write(ProgramOffset, program)
}

// Word reads the big-endian instruction word at addr.
func (m *Memory) Word(addr uint16) (uint16, error) {
	b, err := m.Read(addr, 2)
	if err != nil {
		return 0, err
	}
	return uint16(b[0])<<8 | uint16(b[1]), nil
}
