package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/poemwalk/internal/audio"
	"github.com/vovakirdan/poemwalk/internal/core"
	"github.com/vovakirdan/poemwalk/internal/games/walk"
	"github.com/vovakirdan/poemwalk/internal/registry"
	"github.com/vovakirdan/poemwalk/internal/storage"
)

const (
	volumeStep   = 0.1
	statusLength = 2 * time.Second
)

// Session carries the collaborators a walk needs from its host.
type Session struct {
	Store  *storage.Store // nil disables the journal
	Audio  *audio.Player  // nil plays nothing
	Player string         // recorded with each journaled run
	Cells  *CellRenderer  // nil renders for the local terminal
	Logger *log.Logger    // nil discards
}

// summarizer is implemented by games that can be journaled.
type summarizer interface {
	Summary() walk.Summary
}

// Model is the Bubble Tea model for one walk.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	session    Session
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	standalone bool // back quits the program instead of returning to a menu
	quitting   bool
	backToMenu bool
	runSaved   bool // current walk already journaled
	lastRunID  string
	status     string
	statusLeft int
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(game registry.Game, session Session, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.ReferenceTickRate
	}
	if session.Cells == nil {
		session.Cells = defaultCells
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		session:    session,
		config:     cfg,
		keys:       NewKeyMapper(cfg.TickRate),
		inputFrame: core.NewInputFrame(),
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The scene scales to any size, so the walk keeps going.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err == nil {
			m.setStatus("screenshot: " + filepath.Base(path))
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.leaveWalk()
		m.quitting = true
		return m, tea.Quit
	}

	// Platform-level actions never reach the game.
	switch {
	case m.inputFrame.Has(core.ActionBack):
		m.leaveWalk()
		m.backToMenu = true
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	case m.inputFrame.Has(core.ActionMute):
		m.toggleMute()
	case m.inputFrame.Has(core.ActionVolumeUp):
		m.changeVolume(volumeStep)
	case m.inputFrame.Has(core.ActionVolumeDown):
		m.changeVolume(-volumeStep)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	// A restart throws the current walk away; keep what was found.
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.Started {
		m.saveRun()
	}

	m.keys.Apply(&m.inputFrame)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.State.Restarted {
		m.runSaved = false
		m.keys.Release()
	}

	if m.session.Audio != nil && len(result.Cues) > 0 {
		m.session.Audio.Play(result.Cues...)
	}

	// Journal the walk once it is complete
	if m.gameState.GameOver && !m.runSaved {
		if id := m.saveRun(); id != "" {
			m.setStatus("journaled as " + id[:min(8, len(id))])
		}
	}

	if m.statusLeft > 0 {
		m.statusLeft--
		if m.statusLeft == 0 {
			m.status = ""
		}
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// leaveWalk journals unfinished progress before the model goes away.
func (m *Model) leaveWalk() {
	if m.gameState.Started && !m.runSaved {
		m.saveRun()
	}
	m.keys.Release()
}

// saveRun writes the current walk to the journal.
// Walks with nothing found are not journaled. Returns the run ID.
func (m *Model) saveRun() string {
	if m.runSaved {
		return ""
	}
	s, ok := m.game.(summarizer)
	if !ok || m.session.Store == nil {
		m.runSaved = true
		return ""
	}

	sum := s.Summary()
	if sum.Found == 0 {
		return ""
	}

	id, err := m.session.Store.SaveRun(storage.Run{
		Variant:   sum.Variant,
		Player:    m.session.Player,
		Found:     sum.Found,
		Total:     sum.Total,
		Ticks:     m.gameState.Ticks,
		Duration:  sum.Duration,
		Lines:     sum.Lines,
		Completed: sum.Complete,
	})
	m.runSaved = true
	if err != nil {
		if m.session.Logger != nil {
			m.session.Logger.Warn("could not journal walk", "error", err)
		}
		return ""
	}
	m.lastRunID = id
	return id
}

func (m *Model) toggleMute() {
	if m.session.Audio == nil {
		return
	}
	if m.session.Audio.ToggleMute() {
		m.setStatus("muted")
		return
	}
	m.setStatus(volumeLabel(m.session.Audio.Volume()))
}

func (m *Model) changeVolume(delta float64) {
	if m.session.Audio == nil {
		return
	}
	m.session.Audio.SetVolume(m.session.Audio.Volume() + delta)
	m.setStatus(volumeLabel(m.session.Audio.Volume()))
}

func volumeLabel(v float64) string {
	return fmt.Sprintf("volume %d%%", int(v*100+0.5))
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusLeft = int(statusLength * time.Duration(m.config.TickRate) / time.Second)
}

// saveScreenshot saves the current screen as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".poemwalk", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.status != "" && m.screen.Height() > 0 {
		x := m.screen.Width() - utf8.RuneCountInString(m.status) - 1
		m.screen.DrawTextColor(max(0, x), m.screen.Height()-1, m.status, core.ColorGray)
	}
	return m.session.Cells.Render(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// LastRunID returns the journal ID of the most recently saved walk.
func (m Model) LastRunID() string {
	return m.lastRunID
}

// GameState returns the state after the latest tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// RunResult reports how a walk program ended.
type RunResult struct {
	BackToMenu bool
	LastRunID  string
}

// Run starts a Bubble Tea program for one walk on the local terminal.
// When menu is true, back returns to the caller's menu instead of quitting.
func Run(game registry.Game, session Session, cfg core.RuntimeConfig, menu bool) (RunResult, error) {
	model := NewModel(game, session, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return RunResult{}, err
	}

	m, ok := final.(Model)
	if !ok {
		return RunResult{}, nil
	}
	return RunResult{
		BackToMenu: menu && m.BackToMenu(),
		LastRunID:  m.LastRunID(),
	}, nil
}
