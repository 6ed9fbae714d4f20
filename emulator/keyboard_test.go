package emulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyPressThenReleaseBeforeQuery(t *testing.T) {
	slot := NewLatest[KeyState]()
	pad := NewKeyPad(slot)
	kb := NewKeyboard(slot)

	pad.Press(0x5)
	pad.Release(0x5)

	assert.False(t, kb.IsPressed(0x5))
	_, ok := kb.PressedKey()
	assert.False(t, ok)
}

func TestKeyStateIsAggregated(t *testing.T) {
	slot := NewLatest[KeyState]()
	pad := NewKeyPad(slot)
	kb := NewKeyboard(slot)

	pad.Press(0x1)
	pad.Press(0xf)
	pad.Release(0x1)
	pad.Press(0x9)

	assert.False(t, kb.IsPressed(0x1))
	assert.True(t, kb.IsPressed(0x9))
	assert.True(t, kb.IsPressed(0xf))

	// no new publish, state sticks
	assert.True(t, kb.IsPressed(0xf))

	pad.ReleaseAll()
	assert.False(t, kb.IsPressed(0xf))
}

func TestPressedKeyReportsHeldKey(t *testing.T) {
	slot := NewLatest[KeyState]()
	pad := NewKeyPad(slot)
	kb := NewKeyboard(slot)

	pad.Press(0xc)
	key, ok := kb.PressedKey()
	assert.True(t, ok)
	assert.Equal(t, uint8(0xc), key)

	pad.Press(0x2)
	key, ok = kb.PressedKey()
	assert.True(t, ok)
	assert.True(t, key == 0x2 || key == 0xc, "key=%#x", key)
}

func TestInvalidKeysAreIgnored(t *testing.T) {
	slot := NewLatest[KeyState]()
	pad := NewKeyPad(slot)
	kb := NewKeyboard(slot)

	pad.Press(0x10)
	pad.Press(0xff)
	_, ok := slot.Take()
	assert.False(t, ok)

	assert.False(t, kb.IsPressed(0x10))
	_, ok = kb.PressedKey()
	assert.False(t, ok)
}

func TestKeyStateString(t *testing.T) {
	assert.Equal(t, "1000000000000001", KeyState(0).With(0).With(0xf).String())
}

func TestOutOfRangeQueryIsReleased(t *testing.T) {
	slot := NewLatest[KeyState]()
	kb := NewKeyboard(slot)
	slot.Publish(KeyState(0xffff))

	assert.False(t, kb.IsPressed(0x10))
	assert.False(t, kb.IsPressed(0xff))
	assert.True(t, kb.IsPressed(0xf))
}
