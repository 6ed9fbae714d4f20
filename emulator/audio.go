package emulator

// Tone is the fixed-frequency sound device driven by the sound timer.
// ToneOn is called on every timer frame while the sound timer is non-zero,
// with the number of 60Hz frames left; ToneOff on every other frame.
type Tone interface {
	ToneOn(frames uint8)
	ToneOff()
}

// NullTone discards all tone requests.
type NullTone struct{}

func (NullTone) ToneOn(uint8) {}
func (NullTone) ToneOff()     {}
