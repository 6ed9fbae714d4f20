package emulator

// Pixel colours used when packing a frame, RGBA.
var (
	ColorSet   = [4]uint8{0x5e, 0x48, 0xe8, 0xff}
	ColorUnset = [4]uint8{0x48, 0xb2, 0xe8, 0xff}
)

// Frame is an immutable copy of the display.
type Frame [Chip8DisplayH][Chip8DisplayW]bool

// RGBA packs the frame into dst, 4 bytes per pixel, row major.
// dst must hold at least Chip8DisplayW*Chip8DisplayH*4 bytes.
func (f *Frame) RGBA(dst []uint8) {
	for y := range f {
		for x, on := range f[y] {
			c := ColorUnset
			if on {
				c = ColorSet
			}
			copy(dst[(y*Chip8DisplayW+x)*4:], c[:])
		}
	}
}

// Renderer owns the framebuffer and composites sprites onto it.
type Renderer struct {
	disp Frame
	out  *Latest[Frame]
}

// NewRenderer returns a cleared renderer publishing snapshots to out.
// out may be nil when nobody presents the frames.
func NewRenderer(out *Latest[Frame]) *Renderer {
	return &Renderer{out: out}
}

// Clear turns every pixel off.
func (r *Renderer) Clear() {
	r.disp = Frame{}
	r.publish()
}

// Draw XORs an 8-pixel wide sprite onto the display at (x, y), one byte per
// row, most significant bit leftmost. Pixels leaving the screen wrap around
// to the opposite edge. It reports whether any lit pixel was turned off.
func (r *Renderer) Draw(sprite []uint8, x, y uint8) bool {
	ox := int(x) % Chip8DisplayW
	oy := int(y) % Chip8DisplayH

	collision := false
	for iy, row := range sprite {
		ty := (oy + iy) % Chip8DisplayH
		for ix := 0; ix < 8; ix++ {
			if (row>>(7-ix))&0x01 == 0 {
				continue
			}
			tx := (ox + ix) % Chip8DisplayW
			if r.disp[ty][tx] {
				collision = true
			}
			r.disp[ty][tx] = !r.disp[ty][tx]
		}
	}
	r.publish()
	return collision
}

// Frame returns a copy of the current display.
func (r *Renderer) Frame() Frame {
	return r.disp
}

func (r *Renderer) publish() {
	if r.out != nil {
		r.out.Publish(r.disp)
	}
}
