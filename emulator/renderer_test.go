package emulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrawXorAndCollision(t *testing.T) {
	r := NewRenderer(nil)

	assert.False(t, r.Draw([]uint8{0xff}, 0, 0))
	f := r.Frame()
	for x := 0; x < 8; x++ {
		assert.True(t, f[0][x], "x=%d", x)
	}
	assert.False(t, f[0][8])
	assert.False(t, f[1][0])

	assert.True(t, r.Draw([]uint8{0xff}, 0, 0))
	assert.Equal(t, Frame{}, r.Frame())
}

func TestDrawPartialOverlap(t *testing.T) {
	r := NewRenderer(nil)
	r.Draw([]uint8{0x0f}, 0, 0)

	// only unlit pixels are turned on, no lit pixel is turned off
	assert.False(t, r.Draw([]uint8{0xf0}, 0, 0))
	// overlapping one lit pixel
	assert.True(t, r.Draw([]uint8{0x01}, 0, 0))
	f := r.Frame()
	assert.Equal(t, []bool{true, true, true, true, true, true, true, false}, f[0][:8])
}

func TestDrawAfterClearNeverCollides(t *testing.T) {
	r := NewRenderer(nil)
	r.Draw([]uint8{0xff, 0xff, 0xff}, 3, 4)
	r.Clear()
	assert.False(t, r.Draw([]uint8{0xff, 0xff, 0xff}, 3, 4))
}

func TestDrawWrapsEachPixel(t *testing.T) {
	r := NewRenderer(nil)
	assert.False(t, r.Draw([]uint8{0xff, 0x80}, 60, 31))

	f := r.Frame()
	for _, x := range []int{60, 61, 62, 63, 0, 1, 2, 3} {
		assert.True(t, f[31][x], "x=%d", x)
	}
	assert.False(t, f[31][4])
	assert.True(t, f[0][60])
	assert.False(t, f[0][61])
}

func TestDrawNormalizesOrigin(t *testing.T) {
	r := NewRenderer(nil)
	r.Draw([]uint8{0x80}, Chip8DisplayW+2, Chip8DisplayH+5)
	assert.True(t, r.Frame()[5][2])
}

func TestDrawPublishesSnapshot(t *testing.T) {
	out := NewLatest[Frame]()
	r := NewRenderer(out)

	r.Draw([]uint8{0x80}, 0, 0)
	r.Draw([]uint8{0x80}, 1, 0)

	// only the latest frame is kept
	f, ok := out.Take()
	assert.True(t, ok)
	assert.True(t, f[0][0])
	assert.True(t, f[0][1])

	// the published copy does not follow later draws
	r.Clear()
	assert.True(t, f[0][0])

	_, ok = out.Take()
	assert.True(t, ok)
	_, ok = out.Take()
	assert.False(t, ok)
}

func TestFrameRGBA(t *testing.T) {
	var f Frame
	f[0][1] = true
	f[31][63] = true

	buf := make([]uint8, Chip8DisplayW*Chip8DisplayH*4)
	f.RGBA(buf)

	assert.Equal(t, ColorUnset[:], buf[0:4])
	assert.Equal(t, ColorSet[:], buf[4:8])
	assert.Equal(t, ColorSet[:], buf[len(buf)-4:])
}
