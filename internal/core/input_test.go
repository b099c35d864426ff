package core

import "testing"

func TestInputFramePressImpliesHeld(t *testing.T) {
	f := NewInputFrame()
	f.Press(ActionInteract)

	if !f.Has(ActionInteract) {
		t.Error("Has() should report a pressed action")
	}
	if !f.IsHeld(ActionInteract) {
		t.Error("IsHeld() should report a pressed action")
	}
	if f.Has(ActionUp) {
		t.Error("Has() should not report an untouched action")
	}
}

func TestInputFrameHeldIsNotAnEdge(t *testing.T) {
	f := NewInputFrame()
	f.Hold(ActionLeft)

	if f.Has(ActionLeft) {
		t.Error("held action should not count as an edge press")
	}
	if !f.IsHeld(ActionLeft) {
		t.Error("IsHeld() should report a held action")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Press(ActionStart)
	f.Hold(ActionRight)
	f.Clear()

	if f.Has(ActionStart) || f.IsHeld(ActionRight) {
		t.Error("Clear() should drop pressed and held actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) || f.IsHeld(ActionUp) {
		t.Error("zero frame should report nothing")
	}
	f.Press(ActionUp)
	if !f.Has(ActionUp) {
		t.Error("Press() on a zero frame should allocate and record")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionInteract, "Interact"},
		{ActionLeft, "Left"},
		{ActionVolumeDown, "VolumeDown"},
		{Action(999), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}
