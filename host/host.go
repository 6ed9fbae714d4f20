// Package host owns the window, the input devices and the tone device.
// It must run on the main OS thread.
package host

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/tuboc/chip8vm/emulator"
)

const DefaultScale = 10

// Host presents frames published by the emulator and feeds key state back.
type Host struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	scale    int32
	frames   *emulator.Latest[emulator.Frame]
	keypad   *emulator.KeyPad
	tone     Device
	frame    emulator.Frame
	running  bool
}

// Device is a tone device driven from the host loop once per presented frame.
type Device interface {
	emulator.Tone
	update()
	Close()
}

func checkError(s string, e error) error {
	if e != nil {
		return fmt.Errorf("%s: %w", s, e)
	}
	return nil
}

func initRenderer(scale int32) (*sdl.Window, *sdl.Renderer, error) {
	window, err := sdl.CreateWindow("Chip-8 Emulator", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		emulator.Chip8DisplayW*scale, emulator.Chip8DisplayH*scale, sdl.WINDOW_SHOWN)
	if err := checkError("CreateWindow", err); err != nil {
		return nil, nil, err
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_PRESENTVSYNC)
	if err := checkError("CreateRenderer", err); err != nil {
		window.Destroy()
		return nil, nil, err
	}

	// workaround for https://bugzilla.libsdl.org/show_bug.cgi?id=4272
	// 	or update sdl2 to 2.0.9
	window.Hide()
	sdl.PumpEvents()
	window.Show()

	return window, renderer, nil
}

// Init initialises SDL video and audio. Call it before opening an SDL tone device.
func Init() error {
	return checkError("sdl.Init", sdl.Init(sdl.INIT_VIDEO|sdl.INIT_AUDIO|sdl.INIT_EVENTS))
}

// New opens the window. frames is read every vsync; key changes go to keypad.
func New(scale int, frames *emulator.Latest[emulator.Frame], keypad *emulator.KeyPad, tone Device) (*Host, error) {
	if scale <= 0 {
		scale = DefaultScale
	}
	window, renderer, err := initRenderer(int32(scale))
	if err != nil {
		return nil, err
	}
	return &Host{
		window:   window,
		renderer: renderer,
		scale:    int32(scale),
		frames:   frames,
		keypad:   keypad,
		tone:     tone,
		running:  true,
	}, nil
}

// Run pumps events and presents frames until the window is closed.
func (h *Host) Run() {
	for h.running {
		h.pollEvents()
		if f, ok := h.frames.Take(); ok {
			h.frame = f
		}
		h.draw()
		h.tone.update()
	}
}

// Close releases the window and the tone device and shuts SDL down.
func (h *Host) Close() {
	h.tone.Close()
	h.renderer.Destroy()
	h.window.Destroy()
	sdl.Quit()
}

func (h *Host) draw() {
	h.renderer.SetDrawColor(emulator.ColorUnset[0], emulator.ColorUnset[1], emulator.ColorUnset[2], 255)
	h.renderer.Clear()

	h.renderer.SetDrawColor(emulator.ColorSet[0], emulator.ColorSet[1], emulator.ColorSet[2], 255)
	for y := range h.frame {
		for x, on := range h.frame[y] {
			if on {
				h.renderer.FillRect(&sdl.Rect{X: int32(x) * h.scale, Y: int32(y) * h.scale, W: h.scale, H: h.scale})
			}
		}
	}

	h.renderer.Present()
}

func (h *Host) pollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			h.running = false
		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}
			key, ok := scanCode2Key[int(ev.Keysym.Scancode)]
			if !ok {
				if ev.Type == sdl.KEYDOWN && ev.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
					h.running = false
				}
				continue
			}
			switch ev.Type {
			case sdl.KEYDOWN:
				h.keypad.Press(key)
			case sdl.KEYUP:
				h.keypad.Release(key)
			}
		case *sdl.WindowEvent:
			if ev.Event == sdl.WINDOWEVENT_FOCUS_LOST {
				glog.V(2).Info("focus lost, releasing keys")
				h.keypad.ReleaseAll()
			}
		}
	}
}
