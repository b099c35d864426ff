package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/poemwalk/internal/core"
)

// cellStyle is the color pair a run of cells shares.
type cellStyle struct {
	fg, bg core.Color
}

// CellRenderer converts Screen buffers to styled strings.
// Styles are cached per color pair. Not safe for concurrent use; give each
// program its own renderer.
type CellRenderer struct {
	renderer *lipgloss.Renderer
	styles   map[cellStyle]lipgloss.Style
}

// NewCellRenderer creates a renderer bound to a lipgloss renderer.
// nil uses the default renderer (the local terminal).
func NewCellRenderer(r *lipgloss.Renderer) *CellRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &CellRenderer{
		renderer: r,
		styles:   make(map[cellStyle]lipgloss.Style),
	}
}

func (cr *CellRenderer) style(key cellStyle) lipgloss.Style {
	if st, ok := cr.styles[key]; ok {
		return st
	}
	st := cr.renderer.NewStyle()
	if !key.fg.IsDefault() {
		st = st.Foreground(lipgloss.Color(key.fg))
	}
	if !key.bg.IsDefault() {
		st = st.Background(lipgloss.Color(key.bg))
	}
	cr.styles[key] = st
	return st
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (cr *CellRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			key := cellStyle{fg: cell.FG, bg: cell.BG}

			run.Reset()
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.FG != key.fg || cell.BG != key.bg {
					break
				}
				r := cell.Rune
				if r == 0 {
					r = ' '
				}
				run.WriteRune(r)
				x++
			}

			if key.fg.IsDefault() && key.bg.IsDefault() {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(cr.style(key).Render(run.String()))
		}
	}
	return sb.String()
}

var defaultCells = NewCellRenderer(nil)

// RenderScreen renders with the local terminal's renderer.
func RenderScreen(s *core.Screen) string {
	return defaultCells.Render(s)
}
