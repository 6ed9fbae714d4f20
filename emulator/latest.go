package emulator

import "sync"

// Latest is a single-slot channel between the emulation and host goroutines.
// Publish overwrites whatever is pending, so readers only ever see the most
// recent value and may miss intermediate ones. Writers never block.
type Latest[T any] struct {
	mu     sync.Mutex
	value  T
	full   bool
	notify chan struct{}
}

func NewLatest[T any]() *Latest[T] {
	return &Latest[T]{notify: make(chan struct{}, 1)}
}

// Publish replaces the pending value.
func (l *Latest[T]) Publish(v T) {
	l.mu.Lock()
	l.value = v
	l.full = true
	l.mu.Unlock()

	select {
	case l.notify <- struct{}{}:
	default:
	}
}

// Take returns the pending value and empties the slot.
// ok is false when nothing was published since the last Take.
func (l *Latest[T]) Take() (v T, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.full {
		return v, false
	}
	v, l.value, l.full = l.value, v, false
	return v, true
}

// Updated fires after a Publish. A single receive may cover several publishes.
func (l *Latest[T]) Updated() <-chan struct{} {
	return l.notify
}
