package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/poemwalk/internal/audio"
	"github.com/vovakirdan/poemwalk/internal/config"
	"github.com/vovakirdan/poemwalk/internal/core"
	"github.com/vovakirdan/poemwalk/internal/games/walk"
	"github.com/vovakirdan/poemwalk/internal/storage"
)

// stubWalk finishes after a fixed number of ticks once started.
type stubWalk struct {
	state    core.GameState
	finishAt int
	found    int
	inputs   []core.InputFrame
}

func (g *stubWalk) ID() string               { return "stub" }
func (g *stubWalk) Title() string            { return "Stub" }
func (g *stubWalk) Reset(core.RuntimeConfig) { g.state = core.GameState{Total: 3} }
func (g *stubWalk) Render(dst *core.Screen)  { dst.DrawText(0, 0, "stub") }
func (g *stubWalk) State() core.GameState    { return g.state }
func (g *stubWalk) Summary() walk.Summary {
	return walk.Summary{
		Variant:  "stub",
		Lines:    []int{2, 0, 1}[:g.found],
		Found:    g.found,
		Total:    3,
		Duration: time.Second,
		Complete: g.state.GameOver,
	}
}

// copyFrame snapshots a frame; the model clears its maps after each tick.
func copyFrame(in core.InputFrame) core.InputFrame {
	out := core.NewInputFrame()
	for a, v := range in.Pressed {
		out.Pressed[a] = v
	}
	for a, v := range in.Held {
		out.Held[a] = v
	}
	return out
}

func (g *stubWalk) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, copyFrame(in))
	g.state.Restarted = false
	if !g.state.Started {
		if in.Has(core.ActionStart) {
			g.state.Started = true
			return core.StepResult{State: g.state, Cues: []core.Cue{core.CueAmbient}}
		}
		return core.StepResult{State: g.state}
	}
	if in.Has(core.ActionRestart) {
		g.state = core.GameState{Total: 3, Started: true, Restarted: true}
		g.found = 0
		return core.StepResult{State: g.state}
	}
	g.state.Ticks++
	if g.state.Ticks >= g.finishAt && g.finishAt > 0 {
		g.state.GameOver = true
	}
	return core.StepResult{State: g.state}
}

func testSession(t *testing.T) (Session, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return Session{Store: store, Audio: audio.NewSilentPlayer(), Player: "tester"}, store
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func ticks(n int) []tea.Msg {
	msgs := make([]tea.Msg, n)
	for i := range msgs {
		msgs[i] = TickMsg(time.Time{})
	}
	return msgs
}

func TestModelJournalsCompletedWalkOnce(t *testing.T) {
	session, store := testSession(t)
	game := &stubWalk{finishAt: 3, found: 3}
	m := NewModel(game, session, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	m.Init()

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(m, ticks(10)...)

	if !m.GameState().GameOver {
		t.Fatal("walk did not complete")
	}

	runs, err := store.RecentRuns("", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("journaled %d runs, expected 1", len(runs))
	}
	if runs[0].Player != "tester" || !runs[0].Completed || runs[0].Found != 3 {
		t.Errorf("journaled run = %+v", runs[0])
	}
	if m.LastRunID() != runs[0].ID {
		t.Errorf("LastRunID() = %q, expected %q", m.LastRunID(), runs[0].ID)
	}
	if !strings.Contains(m.View(), "journaled as") {
		t.Error("View() does not show the journal status")
	}
}

func TestModelSkipsEmptyWalk(t *testing.T) {
	session, store := testSession(t)
	game := &stubWalk{}
	m := NewModel(game, session, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter}, TickMsg(time.Time{}))
	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})

	if !m.BackToMenu() {
		t.Error("BackToMenu() = false after esc")
	}
	runs, _ := store.RecentRuns("", 10)
	if len(runs) != 0 {
		t.Errorf("journaled %d runs for an empty walk, expected 0", len(runs))
	}
}

func TestModelJournalsPartialWalkOnRestart(t *testing.T) {
	session, store := testSession(t)
	game := &stubWalk{found: 2}
	m := NewModel(game, session, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter}, TickMsg(time.Time{}), TickMsg(time.Time{}))
	m = send(m, runeKey('r'), TickMsg(time.Time{}))

	runs, _ := store.RecentRuns("stub", 10)
	if len(runs) != 1 {
		t.Fatalf("journaled %d runs, expected 1", len(runs))
	}
	if runs[0].Completed || runs[0].Found != 2 {
		t.Errorf("partial run = %+v", runs[0])
	}
}

func TestModelHoldsMovementAcrossTicks(t *testing.T) {
	session, _ := testSession(t)
	game := &stubWalk{}
	m := NewModel(game, session, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter}, TickMsg(time.Time{}))
	m = send(m, runeKey('d'))
	m = send(m, ticks(3)...)

	last := game.inputs[len(game.inputs)-1]
	if !last.IsHeld(core.ActionRight) {
		t.Error("right not held three ticks after a single press")
	}
	if last.Has(core.ActionRight) {
		t.Error("press edge repeated on a later tick")
	}
}

func TestModelVolumeKeys(t *testing.T) {
	session, _ := testSession(t)
	m := NewModel(&stubWalk{}, session, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})

	m = send(m, runeKey('+'))
	if got := session.Audio.Volume(); got < 0.39 || got > 0.41 {
		t.Errorf("volume after + = %v, expected 0.4", got)
	}
	if !strings.Contains(m.View(), "volume 40%") {
		t.Error("View() does not show the volume")
	}

	m = send(m, runeKey('m'))
	if !session.Audio.Muted() {
		t.Error("m did not mute")
	}
	if !strings.Contains(m.View(), "muted") {
		t.Error("View() does not show mute status")
	}
}

func TestModelQuit(t *testing.T) {
	session, _ := testSession(t)
	m := NewModel(&stubWalk{}, session, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})

	next, cmd := m.Update(runeKey('q'))
	m = next.(Model)
	if !m.IsQuitting() || cmd == nil {
		t.Error("q did not quit")
	}
	if m.View() != "" {
		t.Error("View() not empty after quit")
	}
}

func TestModelPlaysRealWalk(t *testing.T) {
	session, _ := testSession(t)
	game := walk.New(config.DefaultVariant())
	m := NewModel(game, session, core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 60, Seed: 42})
	m.Init()

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter}, TickMsg(time.Time{}))
	start := game.World().Player.Pos

	m = send(m, tea.KeyMsg{Type: tea.KeyRight})
	m = send(m, ticks(10)...)

	if got := game.World().Player.Pos.X; got <= start.X {
		t.Errorf("player x = %v after holding right, expected > %v", got, start.X)
	}
	if view := m.View(); view == "" {
		t.Error("View() is empty")
	}
}
