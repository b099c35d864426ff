package tui

import (
	"io"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/poemwalk/internal/audio"
	"github.com/vovakirdan/poemwalk/internal/core"
	"github.com/vovakirdan/poemwalk/internal/storage"
)

func newTestSession(t *testing.T) SessionModel {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	session := Session{Store: store, Audio: audio.NewSilentPlayer(), Player: "walker"}
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	return NewSessionModel(session, cfg, lipgloss.NewRenderer(io.Discard))
}

func sendKey(m SessionModel, k string) SessionModel {
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	next, _ := m.Update(msg)
	return next.(SessionModel)
}

func TestSessionMenuToWalkAndBack(t *testing.T) {
	m := newTestSession(t)

	m = sendKey(m, "enter")
	if m.screen != screenWalk || m.walk == nil {
		t.Fatalf("screen = %v after select, expected walk", m.screen)
	}
	if m.View() == "" {
		t.Error("walk view should not be empty")
	}

	m = sendKey(m, "esc")
	if m.screen != screenMenu {
		t.Errorf("screen = %v after back, expected menu", m.screen)
	}
	if m.walk != nil {
		t.Error("walk should be dropped when leaving it")
	}
	if m.quitting {
		t.Error("back from a walk should not end the session")
	}
}

func TestSessionJournal(t *testing.T) {
	m := newTestSession(t)

	m = sendKey(m, "tab")
	if m.screen != screenJournal {
		t.Fatalf("screen = %v after tab, expected journal", m.screen)
	}
	if m.journal.exportDir != "" {
		t.Errorf("journal exportDir = %q, expected export disabled", m.journal.exportDir)
	}

	m = sendKey(m, "esc")
	if m.screen != screenMenu {
		t.Errorf("screen = %v after back, expected menu", m.screen)
	}
}

func TestSessionQuit(t *testing.T) {
	m := newTestSession(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = next.(SessionModel)
	if !m.quitting || cmd == nil {
		t.Error("q should end the session")
	}
	if m.View() != "" {
		t.Errorf("View() = %q after quit, expected empty", m.View())
	}
}

func TestSessionResize(t *testing.T) {
	m := newTestSession(t)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(SessionModel)
	m = sendKey(m, "enter")

	if m.config.ScreenW != 120 || m.config.ScreenH != 40 {
		t.Errorf("config = %dx%d, expected 120x40", m.config.ScreenW, m.config.ScreenH)
	}
}
