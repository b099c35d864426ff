package core

import "time"

// Timer is a one-shot countdown driven by simulation ticks instead of the
// wall clock, so it lives and dies with the game that owns it.
type Timer struct {
	remaining float64 // reference ticks left
	armed     bool
}

// TicksFor converts a duration to reference ticks.
func TicksFor(d time.Duration) float64 {
	return d.Seconds() * ReferenceTickRate
}

// Schedule arms the timer to fire after d. Re-scheduling replaces the
// previous deadline.
func (t *Timer) Schedule(d time.Duration) {
	t.remaining = TicksFor(d)
	t.armed = true
}

// Cancel disarms the timer. A cancelled timer never fires.
func (t *Timer) Cancel() {
	t.remaining = 0
	t.armed = false
}

// Armed reports whether the timer is waiting to fire.
func (t *Timer) Armed() bool {
	return t.armed
}

// Advance moves the timer forward by scale reference ticks and reports
// whether it fired on this call. A timer fires exactly once.
func (t *Timer) Advance(scale float64) bool {
	if !t.armed {
		return false
	}
	t.remaining -= scale
	if t.remaining > 0 {
		return false
	}
	t.armed = false
	t.remaining = 0
	return true
}
