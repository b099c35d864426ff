package core

import (
	"testing"
	"time"
)

func TestTimerFiresOnce(t *testing.T) {
	var tm Timer
	tm.Schedule(time.Second)

	fired := 0
	for i := 0; i < 200; i++ {
		if tm.Advance(1) {
			fired++
			if i != 59 {
				t.Errorf("timer should fire on tick 60, fired on tick %d", i+1)
			}
		}
	}
	if fired != 1 {
		t.Errorf("timer should fire exactly once, fired %d times", fired)
	}
	if tm.Armed() {
		t.Error("timer should be disarmed after firing")
	}
}

func TestTimerCancel(t *testing.T) {
	var tm Timer
	tm.Schedule(100 * time.Millisecond)
	tm.Advance(1)
	tm.Cancel()

	for i := 0; i < 100; i++ {
		if tm.Advance(1) {
			t.Fatal("cancelled timer should never fire")
		}
	}
}

func TestTimerScaled(t *testing.T) {
	var tm Timer
	tm.Schedule(time.Second)

	// 30 Hz ticks cover two reference ticks each.
	ticks := 0
	for !tm.Advance(2) {
		ticks++
		if ticks > 100 {
			t.Fatal("timer never fired")
		}
	}
	if ticks != 29 {
		t.Errorf("expected 30 ticks at 30 Hz, got %d", ticks+1)
	}
}

func TestTicksFor(t *testing.T) {
	if got := TicksFor(time.Second); got != 60 {
		t.Errorf("TicksFor(1s) = %f, expected 60", got)
	}
}
