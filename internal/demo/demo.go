// Package demo holds the process-wide latch that coordinates the one-shot
// pump demonstration between the mobile client and the polling device.
package demo

import "sync"

// Latch is a two-state flag: idle or armed. The control client arms it and
// the device consumes it on its next poll. An armed latch that is never
// consumed stays armed indefinitely; there is deliberately no timeout.
type Latch struct {
	mu    sync.Mutex
	armed bool
}

// NewLatch returns a latch in the idle state.
func NewLatch() *Latch {
	return &Latch{}
}

// Arm moves the latch to the armed state. Arming an already armed latch is a
// no-op.
func (l *Latch) Arm() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.armed = true
}

// Consume fires the latch: if armed it resets to idle and returns true,
// otherwise it returns false. Only one concurrent caller can observe true
// per Arm.
func (l *Latch) Consume() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.armed {
		return false
	}
	l.armed = false
	return true
}

// Armed reports the current state without consuming it.
func (l *Latch) Armed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.armed
}
