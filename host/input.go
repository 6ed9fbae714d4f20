package host

import "github.com/veandco/go-sdl2/sdl"

// scanCode2Key lays the 4x4 hex keypad
//
//	1 2 3 C
//	4 5 6 D
//	7 8 9 E
//	A 0 B F
//
// onto the left block of a QWERTY keyboard.
var scanCode2Key = map[int]uint8{
	sdl.SCANCODE_1: 0x1,
	sdl.SCANCODE_2: 0x2,
	sdl.SCANCODE_3: 0x3,
	sdl.SCANCODE_4: 0xc,
	sdl.SCANCODE_Q: 0x4,
	sdl.SCANCODE_W: 0x5,
	sdl.SCANCODE_E: 0x6,
	sdl.SCANCODE_R: 0xd,
	sdl.SCANCODE_A: 0x7,
	sdl.SCANCODE_S: 0x8,
	sdl.SCANCODE_D: 0x9,
	sdl.SCANCODE_F: 0xe,
	sdl.SCANCODE_Z: 0xa,
	sdl.SCANCODE_X: 0x0,
	sdl.SCANCODE_C: 0xb,
	sdl.SCANCODE_V: 0xf,
}
