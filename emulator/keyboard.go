package emulator

import (
	"fmt"
	"time"

	"github.com/golang/glog"
)

// KeyState is the set of pressed keys 0x0-0xF, one bit per key.
type KeyState uint16

func (s KeyState) Pressed(key uint8) bool {
	return key < KeyCount && s&(1<<key) != 0
}

func (s KeyState) With(key uint8) KeyState    { return s | 1<<key }
func (s KeyState) Without(key uint8) KeyState { return s &^ (1 << key) }

func (s KeyState) String() string {
	return fmt.Sprintf("%016b", uint16(s))
}

// KeyPad is the host side of the keyboard boundary. It folds press and
// release events into a full key state and publishes it to the emulation
// side. KeyPad is not safe for concurrent use; one host goroutine owns it.
type KeyPad struct {
	state KeyState
	out   *Latest[KeyState]
}

func NewKeyPad(out *Latest[KeyState]) *KeyPad {
	return &KeyPad{out: out}
}

// Press marks key as held. Keys outside 0x0-0xF are ignored.
func (k *KeyPad) Press(key uint8) {
	if !validKey(key) {
		return
	}
	k.state = k.state.With(key)
	k.out.Publish(k.state)
}

// Release marks key as no longer held. Keys outside 0x0-0xF are ignored.
func (k *KeyPad) Release(key uint8) {
	if !validKey(key) {
		return
	}
	k.state = k.state.Without(key)
	k.out.Publish(k.state)
}

// ReleaseAll clears every key, e.g. when the window loses focus.
func (k *KeyPad) ReleaseAll() {
	k.state = 0
	k.out.Publish(k.state)
}

func validKey(key uint8) bool {
	if key >= KeyCount {
		glog.Warningf("ignoring key code %#x, keys are 0x0-0xF", key)
		return false
	}
	return true
}

// Keyboard is the emulation side of the keyboard boundary. It holds the
// authoritative pressed-key set and refreshes it from the inbound slot
// before answering any query.
type Keyboard struct {
	pressed KeyState
	in      *Latest[KeyState]
}

func NewKeyboard(in *Latest[KeyState]) *Keyboard {
	return &Keyboard{in: in}
}

// drain applies whatever the host published since the last query. It never waits.
func (k *Keyboard) drain() {
	if k.in == nil {
		return
	}
	if s, ok := k.in.Take(); ok {
		if glog.V(2) {
			glog.Infof("keys %v", s)
		}
		k.pressed = s
	}
}

// IsPressed reports whether key is currently held. Keys outside 0x0-0xF
// are never held.
func (k *Keyboard) IsPressed(key uint8) bool {
	if key >= KeyCount {
		if glog.V(2) {
			glog.Infof("key query %#x out of range, treated as released", key)
		}
		return false
	}
	k.drain()
	return k.pressed.Pressed(key)
}

// PressedKey returns one of the held keys. Which one is unspecified when
// several keys are held; currently it is the lowest.
func (k *Keyboard) PressedKey() (uint8, bool) {
	k.drain()
	for key := uint8(0); key < KeyCount; key++ {
		if k.pressed.Pressed(key) {
			return key, true
		}
	}
	return 0, false
}

// wait blocks until the host publishes a key state or d elapses.
// Take leaves the notification pending, so a publish already drained by an
// earlier query can end the first wait early. The caller just polls again.
func (k *Keyboard) wait(d time.Duration) {
	if k.in == nil {
		time.Sleep(d)
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-k.in.Updated():
	case <-t.C:
	}
}
