package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/poemwalk/internal/core"
	"github.com/vovakirdan/poemwalk/internal/registry"
	"github.com/vovakirdan/poemwalk/internal/storage"
)

// MenuItem represents a selectable variant in the menu.
type MenuItem struct {
	VariantID   string
	Title       string
	Description string
	Stats       string // journal summary, empty when never walked
}

// MenuModel is the Bubble Tea model for the variant picker.
type MenuModel struct {
	items       []MenuItem
	cursor      int
	width       int
	height      int
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	renderer    *lipgloss.Renderer
	quitting    bool
	selected    *MenuItem // Set when user selects a variant
	openJournal bool      // True if user pressed Tab for the journal
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	var stats map[string]*storage.VariantStats
	if store != nil {
		stats, _ = store.AllStats() // the menu works without stats
	}

	variants := registry.List()
	items := make([]MenuItem, 0, len(variants))
	for _, v := range variants {
		title := v.Title
		if title == "" {
			title = v.ID
		}
		items = append(items, MenuItem{
			VariantID:   v.ID,
			Title:       title,
			Description: v.Description,
			Stats:       statsLine(stats[v.ID]),
		})
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(cfg.TickRate),
		renderer:  lipgloss.DefaultRenderer(),
	}
}

// WithRenderer binds the menu styles to a session's renderer.
func (m MenuModel) WithRenderer(r *lipgloss.Renderer) MenuModel {
	if r != nil {
		m.renderer = r
	}
	return m
}

// statsLine summarizes the journal for one variant.
func statsLine(s *storage.VariantStats) string {
	if s == nil || s.Runs == 0 {
		return ""
	}
	line := fmt.Sprintf("%s, %d complete", pluralize(s.Runs, "walk"), s.Completed)
	if s.BestDuration > 0 {
		line += ", best " + s.BestDuration.Round(time.Second).String()
	}
	if !s.LastPlayed.IsZero() {
		line += ", last " + humanize.Time(s.LastPlayed)
	}
	return line
}

func pluralize(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return humanize.Comma(int64(n)) + " " + word + "s"
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start the walk
		}

	case MenuActionJournal:
		m.openJournal = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := m.renderer.NewStyle().Bold(true).Foreground(lipgloss.Color(core.ColorGold))
	dimStyle := m.renderer.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := m.renderer.NewStyle().Bold(true).Foreground(lipgloss.Color(core.ColorSky))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("P O E M W A L K", m.width)))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(centerText("choose where to walk", m.width)))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		style := m.renderer.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = activeStyle
		}
		b.WriteString(style.Render(centerText(cursor+item.Title, m.width)))
		b.WriteString("\n")

		if i == m.cursor {
			if item.Description != "" {
				b.WriteString(dimStyle.Render(centerText(item.Description, m.width)))
				b.WriteString("\n")
			}
			if item.Stats != "" {
				b.WriteString(dimStyle.Render(centerText(item.Stats, m.width)))
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Walk  |  Tab: Journal  |  Q: Quit"
	b.WriteString(dimStyle.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsJournal returns true if user requested the journal.
func (m MenuModel) WantsJournal() bool {
	return m.openJournal
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	VariantID    string
	Config       core.RuntimeConfig
	WantsJournal bool
	Quit         bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	switch {
	case m.WantsJournal():
		result.WantsJournal = true
	case m.IsQuitting() || m.Selected() == nil:
		result.Quit = true
	default:
		result.VariantID = m.Selected().VariantID
	}

	return result, nil
}
