package emulator

import (
	"encoding/binary"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) now() time.Time { return f.t }

func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

type toneRecorder struct {
	on   []uint8
	off  int
	last bool
}

func (r *toneRecorder) ToneOn(frames uint8) {
	r.on = append(r.on, frames)
	r.last = true
}

func (r *toneRecorder) ToneOff() {
	r.off++
	r.last = false
}

type testMachine struct {
	*Cpu
	clock  *fakeClock
	frames *Latest[Frame]
	keys   *Latest[KeyState]
	tone   *toneRecorder
}

// newTestMachine loads the given words at ProgramOffset behind a frozen clock.
func newTestMachine(t *testing.T, words ...uint16) *testMachine {
	b := make([]byte, 0x100)
	for i, w := range words {
		binary.BigEndian.PutUint16(b[2*i:], w)
	}
	m := &testMachine{
		clock:  &fakeClock{t: time.Unix(1000, 0)},
		frames: NewLatest[Frame](),
		keys:   NewLatest[KeyState](),
		tone:   &toneRecorder{},
	}
	c, err := NewCpu(b, NewRenderer(m.frames), NewKeyboard(m.keys),
		WithClock(m.clock.now), WithRand(rand.New(rand.NewSource(1))), WithTone(m.tone))
	require.NoError(t, err)
	m.Cpu = c
	return m
}
