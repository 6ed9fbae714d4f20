package host

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/golang/glog"
	"github.com/gordonklaus/portaudio"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/tuboc/chip8vm/emulator"
)

const (
	sampleRate       = 48000
	samplesPerFrame  = sampleRate / emulator.TimerFrequency
	amplitude        = 0.05
	DefaultFrequency = 440
)

// OpenTone opens the named tone device: "sdl", "portaudio" or "none".
func OpenTone(kind string, hz float64) (Device, error) {
	if hz <= 0 {
		hz = DefaultFrequency
	}
	switch kind {
	case "sdl":
		return newSDLTone(hz)
	case "portaudio":
		return newPortAudioTone(hz)
	case "none", "":
		return nullDevice{}, nil
	}
	return nil, fmt.Errorf("unknown audio device %q", kind)
}

// toneState is written by the emulation goroutine and read by the device.
type toneState struct {
	frames int32
	step   float64
}

func (t *toneState) ToneOn(frames uint8) {
	if atomic.SwapInt32(&t.frames, int32(frames)) == 0 && glog.V(2) {
		glog.Infof("tone on for %d frames", frames)
	}
}

func (t *toneState) ToneOff() {
	if atomic.SwapInt32(&t.frames, 0) != 0 && glog.V(2) {
		glog.Info("tone off")
	}
}

func (t *toneState) on() bool {
	return atomic.LoadInt32(&t.frames) > 0
}

type sdlTone struct {
	toneState
	audio   sdl.AudioDeviceID
	phase   float64
	buf     []byte
	playing bool
}

// queuedFrames is how much audio the SDL tone keeps buffered ahead.
const queuedFrames = 2

// queueAction decides what the SDL tone does on one host loop pass given
// the bytes already queued on the device.
func queueAction(on, playing bool, queued uint32, frameBytes int) (drop, queue bool) {
	if !on {
		return playing, false
	}
	return false, queued < uint32(queuedFrames*frameBytes)
}

func newSDLTone(hz float64) (*sdlTone, error) {
	want := &sdl.AudioSpec{
		Freq:     sampleRate,
		Format:   sdl.AUDIO_F32LSB,
		Channels: 1,
		Samples:  samplesPerFrame,
	}
	have := &sdl.AudioSpec{}
	audio, err := sdl.OpenAudioDevice("", false, want, have, 0)
	if err != nil {
		return nil, fmt.Errorf("OpenAudioDevice: %w", err)
	}
	sdl.PauseAudioDevice(audio, false)

	return &sdlTone{
		toneState: toneState{step: 2 * math.Pi * hz / sampleRate},
		audio:     audio,
		buf:       make([]byte, 4*samplesPerFrame),
	}, nil
}

// update keeps at most queuedFrames timer frames of sine wave queued while
// the tone is on and drops whatever is still queued once it goes off.
func (t *sdlTone) update() {
	drop, queue := queueAction(t.on(), t.playing, sdl.GetQueuedAudioSize(t.audio), len(t.buf))
	if drop {
		sdl.ClearQueuedAudio(t.audio)
		t.playing = false
	}
	if !queue {
		return
	}
	for i := 0; i < len(t.buf); i += 4 {
		f := float32(amplitude * math.Sin(t.phase))
		binary.LittleEndian.PutUint32(t.buf[i:], math.Float32bits(f))
		t.phase = math.Mod(t.phase+t.step, 2*math.Pi)
	}
	if err := sdl.QueueAudio(t.audio, t.buf); err != nil {
		glog.Warningf("QueueAudio: %v", err)
		return
	}
	t.playing = true
}

func (t *sdlTone) Close() {
	sdl.CloseAudioDevice(t.audio)
}

type portAudioTone struct {
	toneState
	stream *portaudio.Stream
	phase  float64
}

func newPortAudioTone(hz float64) (*portAudioTone, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("Failed to initialize portaudio: %w", err)
	}
	t := &portAudioTone{toneState: toneState{step: 2 * math.Pi * hz / sampleRate}}
	cb := func(out []float32) {
		if !t.on() {
			for i := range out {
				out[i] = 0
			}
			return
		}
		for i := range out {
			out[i] = float32(amplitude * math.Sin(t.phase))
			t.phase = math.Mod(t.phase+t.step, 2*math.Pi)
		}
	}
	stream, err := portaudio.OpenDefaultStream(0, 1, sampleRate, 0, cb)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("Failed to open the audio stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, fmt.Errorf("Failed to start the audio stream: %w", err)
	}
	t.stream = stream
	return t, nil
}

// update is a no-op; the stream callback pulls samples on its own.
func (t *portAudioTone) update() {}

func (t *portAudioTone) Close() {
	t.stream.Close()
	portaudio.Terminate()
}

type nullDevice struct {
	emulator.NullTone
}

func (nullDevice) update() {}
func (nullDevice) Close()  {}
