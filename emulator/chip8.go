package emulator

import "time"

const (
	Chip8DisplayW          = 64
	Chip8DisplayH          = 32
	MemorySize             = 4096
	CharacterSpritesOffset = 0x000
	CharacterSpriteBytes   = 5
	ProgramOffset          = 0x200
	StackDepth             = 16
	RegisterCount          = 16
	KeyCount               = 16
	TimerFrequency         = 60
	OpHistoryNum           = 16

	// FlagRegister doubles as carry/borrow flag and sprite collision flag.
	FlagRegister = 0xf
)

// TimerPeriod is the wall time of one 60Hz timer frame.
const TimerPeriod = time.Second / TimerFrequency

var characterSprites = [...]uint8{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}
