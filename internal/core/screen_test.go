package core

import (
	"strings"
	"testing"
)

func runeAt(s *Screen, x, y int) rune {
	return s.GetCell(x, y).Rune
}

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Errorf("NewScreen(80, 24) = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	if strings.Trim(s.String(), " \n") != "" {
		t.Error("new screen should be blank")
	}

	empty := NewScreen(-3, 2)
	if empty.Width() != 0 {
		t.Errorf("Width() = %d, expected 0 for a negative width", empty.Width())
	}
}

func TestScreenClipping(t *testing.T) {
	s := NewScreen(4, 2)

	// None of these may panic.
	s.Set(-1, 0, 'A')
	s.SetFG(4, 0, 'A', ColorGold)
	s.SetBG(0, 2, ColorBlue)
	s.SetCell(0, -1, Cell{Rune: 'A'})

	if got := s.GetCell(9, 9); got != blankCell {
		t.Errorf("GetCell() off screen = %+v, expected blank", got)
	}
	if strings.ContainsRune(s.String(), 'A') {
		t.Errorf("off-screen writes leaked: %q", s.String())
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetBG(1, 0, ColorBlue)
	s.SetFG(1, 0, '@', ColorGold)

	cell := s.GetCell(1, 0)
	if cell.Rune != '@' || cell.FG != ColorGold || cell.BG != ColorBlue {
		t.Errorf("GetCell() = %+v, expected @ gold on blue", cell)
	}

	// Set keeps both colors
	s.Set(1, 0, '#')
	cell = s.GetCell(1, 0)
	if cell.FG != ColorGold || cell.BG != ColorBlue {
		t.Errorf("Set() dropped colors: %+v", cell)
	}

	s.Clear()
	if s.GetCell(1, 0) != blankCell {
		t.Errorf("Clear() left %+v", s.GetCell(1, 0))
	}
}

func TestScreenFill(t *testing.T) {
	s := NewScreen(3, 2)
	s.Fill('~', ColorBlue)
	s.FillRect(NewRect(1, 1, 5, 5), '=', ColorBrown)

	tests := []struct {
		x, y int
		rune rune
		bg   Color
	}{
		{0, 0, '~', ColorBlue},
		{2, 0, '~', ColorBlue},
		{0, 1, '~', ColorBlue},
		{1, 1, '=', ColorBrown},
		{2, 1, '=', ColorBrown},
	}

	for _, tc := range tests {
		cell := s.GetCell(tc.x, tc.y)
		if cell.Rune != tc.rune || cell.BG != tc.bg {
			t.Errorf("GetCell(%d, %d) = %+v, expected %q on %s", tc.x, tc.y, cell, tc.rune, tc.bg)
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextColor(8, 0, "* your", ColorWhite)
	s.DrawTextCenteredColor(1, "life", ColorGold)
	s.DrawText(0, 2, "☼·x")

	if runeAt(s, 8, 0) != '*' || runeAt(s, 9, 0) != ' ' {
		t.Errorf("DrawTextColor() should clip at the right edge, got %q", s.String())
	}
	if got := s.GetCell(3, 1); got.Rune != 'l' || got.FG != ColorGold {
		t.Errorf("DrawTextCenteredColor() = %+v at x=3, expected gold l", got)
	}
	if runeAt(s, 0, 2) != '☼' || runeAt(s, 1, 2) != '·' || runeAt(s, 2, 2) != 'x' {
		t.Errorf("DrawText() should advance one cell per rune, got %q", s.String())
	}
}

func TestScreenDrawBoxColor(t *testing.T) {
	s := NewScreen(8, 5)
	s.DrawText(2, 2, "in")
	s.DrawBoxColor(NewRect(1, 1, 5, 4), ColorWhite)

	expected := []string{
		"        ",
		" ╭───╮  ",
		" │in │  ",
		" │   │  ",
		" ╰───╯  ",
	}
	if got := s.String(); got != strings.Join(expected, "\n") {
		t.Errorf("DrawBoxColor() =\n%s\nexpected\n%s", got, strings.Join(expected, "\n"))
	}
	if s.GetCell(1, 1).FG != ColorWhite {
		t.Errorf("corner FG = %q, expected %q", s.GetCell(1, 1).FG, ColorWhite)
	}

	// Too small to draw: nothing happens.
	s.Clear()
	s.DrawBoxColor(NewRect(0, 0, 1, 3), ColorWhite)
	if strings.Trim(s.String(), " \n") != "" {
		t.Errorf("degenerate box drew %q", s.String())
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("Resize(8, 4) = %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.String(), "Hello") {
		t.Errorf("Resize() lost content: %q", s.String())
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.String(), "Hello") {
		t.Errorf("Resize() lost content after enlarging: %q", s.String())
	}
}

func TestScreenTint(t *testing.T) {
	s := NewScreen(2, 1)
	s.Fill(' ', ColorBlack)
	s.Tint(ColorWhite, 1)

	if got := s.GetCell(0, 0).BG; got != ColorWhite {
		t.Errorf("Tint(white, 1) BG = %q, expected %q", got, ColorWhite)
	}

	s.Fill(' ', ColorBlack)
	s.Tint(ColorWhite, 0)
	if got := s.GetCell(0, 0).BG; got != ColorBlack {
		t.Errorf("Tint(white, 0) BG = %q, expected %q", got, ColorBlack)
	}
}
