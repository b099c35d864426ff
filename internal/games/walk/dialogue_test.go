package walk

import "testing"

func TestDialogueAdvance(t *testing.T) {
	var d Dialogue
	d.Show("* ñé")

	if !d.Open || !d.Typing {
		t.Fatal("Show should open and start typing")
	}
	if d.Revealed() != "" {
		t.Errorf("Revealed() = %q, expected empty", d.Revealed())
	}

	if n := d.advance(1, 2); n != 0 {
		t.Errorf("first tick revealed %d runes, expected 0", n)
	}
	if n := d.advance(1, 2); n != 1 || d.Revealed() != "*" {
		t.Errorf("second tick: n=%d revealed=%q", n, d.Revealed())
	}

	// A large step catches up several runes at once.
	if n := d.advance(6, 2); n != 3 {
		t.Errorf("catch-up revealed %d runes, expected 3", n)
	}
	if d.Typing {
		t.Error("typing should stop once the text is complete")
	}
	if d.Revealed() != "* ñé" {
		t.Errorf("Revealed() = %q", d.Revealed())
	}
	if !d.AwaitingAdvance() {
		t.Error("expected awaiting advance")
	}
}

func TestDialogueSkipAndClose(t *testing.T) {
	var d Dialogue
	d.Show("* know them.")
	d.advance(2, 2)
	d.Skip()

	if d.Typing || d.Revealed() != d.Target() {
		t.Errorf("after Skip: typing=%v revealed=%q", d.Typing, d.Revealed())
	}

	d.Close()
	if d.Open || d.AwaitingAdvance() {
		t.Error("Close should hide the box")
	}
	if n := d.advance(10, 2); n != 0 {
		t.Errorf("closed dialogue revealed %d runes", n)
	}
}

func TestDialogueEmpty(t *testing.T) {
	var d Dialogue
	d.Show("")
	if d.Typing {
		t.Error("empty text should not type")
	}
	if !d.AwaitingAdvance() {
		t.Error("empty text should await advance immediately")
	}
}
