package walk

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/poemwalk/internal/core"
)

// Minimum terminal size the scene is drawn at.
const (
	MinScreenW = 40
	MinScreenH = 12
)

// Render draws the walk. It only reads the world.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	w := g.world
	pal := g.chapters.Palette(w.Chapter)
	dst.Fill(' ', core.Color(pal.Sky))

	p := newPainter(dst, g.cfg, w, pal)
	p.drawLayers(false)
	p.drawInteractables()
	p.drawParticles()
	p.drawPlayer()
	p.drawLayers(true)

	if g.cfg.HUD && w.Started {
		g.drawHUD(dst)
	}
	if w.Dialogue.Open {
		g.drawDialogue(dst)
	}

	switch {
	case !w.Started:
		g.drawStart(dst)
	case w.Completed:
		g.drawCompletion(dst)
	case w.Paused:
		drawPanel(dst, []string{"PAUSED", "", "p to resume"}, core.ColorWhite)
	}

	dst.Tint(core.ColorWhite, w.Camera.Flash*0.5)
}

func (p *painter) drawInteractables() {
	w := p.w
	for i := range w.Interactables {
		obj := &w.Interactables[i]
		vx := obj.Pos.X - p.cam.X
		if !p.inView(vx, 30) {
			continue
		}

		alpha := 0.3
		if !obj.Discovered {
			pulse := math.Sin(w.Camera.Pulse+obj.Pos.X*0.01)*0.1 + 1.0
			alpha = core.ClampF(pulse*0.9, 0, 1)
		}

		cx, cy := p.worldCell(obj.Pos)
		if i == w.Nearest && !obj.Discovered {
			p.drawPrompt(obj)
		}
		spriteFor(obj.Kind).draw(p, cx, cy, alpha)
		if obj.Kind == "light" {
			p.glow(vx, obj.Pos.Y-10-p.cam.Y, 15, core.ColorWhite, 0.5*alpha)
		}
	}
}

// drawPrompt marks the interactable in reach: glow rings, orbiting
// sparkles and the [Z] hint.
func (p *painter) drawPrompt(obj *Interactable) {
	vx := obj.Pos.X - p.cam.X
	vy := obj.Pos.Y - 10 - p.cam.Y

	for i := 3; i > 0; i-- {
		size := 15 + float64(i)*5 + math.Sin(p.tick/18)*3
		ring := 0.2 - float64(i)*0.05
		x0, y0 := p.viewCell(vx-size, vy-size)
		x1, y1 := p.viewCell(vx+size, vy+size)
		for cy := core.Max(y0, 0); cy <= core.Min(y1, p.dst.Height()-1); cy++ {
			for cx := core.Max(x0, 0); cx <= core.Min(x1, p.dst.Width()-1); cx++ {
				px, py := p.cellView(cx, cy)
				if math.Hypot(px-vx, py-vy) < size {
					p.tintBG(cx, cy, core.ColorGold, ring)
				}
			}
		}
	}

	for i := 0; i < 4; i++ {
		a := p.tick/30 + float64(i)*math.Pi/2
		cx, cy := p.viewCell(vx+math.Cos(a)*20, vy+math.Sin(a)*20)
		p.glyph(cx, cy, '✦', core.ColorWhite, 1)
	}

	cx, cy := p.worldCell(obj.Pos)
	cy -= len(spriteFor(obj.Kind).rows)
	p.text(cx-1, cy, "[Z]", core.ColorGold, 0.8+math.Sin(p.tick/12)*0.2)
}

func (p *painter) drawParticles() {
	for _, pt := range p.w.Particles {
		vx := pt.Pos.X - p.cam.X
		if vx < 0 || vx > p.cfg.View.Width {
			continue
		}
		r := '·'
		if pt.Size > 1 {
			r = '•'
		}
		cx, cy := p.worldCell(pt.Pos)
		p.glyph(cx, cy, r, pt.Color, pt.Life)
	}
}

func (p *painter) drawPlayer() {
	pl := &p.w.Player
	cx, _ := p.worldCell(core.V(pl.Pos.X+pl.W/2, pl.Pos.Y))
	_, bottom := p.worldCell(core.V(pl.Pos.X, pl.Pos.Y+pl.H))
	playerSprite(pl.Facing, pl.Frame).draw(p, cx, bottom, 1)
}

func (g *Game) drawHUD(dst *core.Screen) {
	w := g.world
	for x := 0; x < dst.Width(); x++ {
		cell := dst.GetCell(x, 0)
		dst.SetBG(x, 0, core.Blend(cell.BG, core.ColorBlack, 0.5))
	}

	const barW = 12
	filled := 0
	if total := w.Total(); total > 0 {
		filled = core.Clamp(w.Discovered*barW/total, 0, barW)
	}
	barColor := core.ColorSky
	if w.Chapter >= 2 {
		barColor = core.ColorGold
	}
	dst.DrawTextColor(1, 0, "[", core.ColorGray)
	dst.DrawTextColor(2, 0, strings.Repeat("█", filled), barColor)
	dst.DrawTextColor(2+filled, 0, strings.Repeat("░", barW-filled), core.ColorDimGray)
	dst.DrawTextColor(2+barW, 0, "]", core.ColorGray)
	dst.DrawTextColor(4+barW, 0, fmt.Sprintf("%d/%d", w.Discovered, w.Total()), core.ColorWhite)

	name := g.chapters.Name(w.Chapter)
	dst.DrawTextColor(dst.Width()-utf8.RuneCountInString(name)-1, 0, name, "#cccccc")
}

func (g *Game) drawDialogue(dst *core.Screen) {
	d := &g.world.Dialogue
	boxW := dst.Width() - 4
	boxH := 5
	box := core.NewRect(2, dst.Height()-boxH-1, boxW, boxH)
	dst.FillRect(box, ' ', "#000000")
	dst.DrawBoxColor(box, core.ColorWhite)

	lines := wrapText(d.Revealed(), boxW-4)
	if len(lines) > boxH-2 {
		lines = lines[len(lines)-(boxH-2):]
	}
	for i, line := range lines {
		dst.DrawTextColor(box.X+2, box.Y+1+i, line, core.ColorWhite)
	}

	if d.AwaitingAdvance() && (g.world.Ticks/20)%2 == 0 {
		dst.SetFG(box.Right()-3, box.Bottom()-2, '▼', core.ColorWhite)
	}
}

func (g *Game) drawStart(dst *core.Screen) {
	poem := g.cfg.Poem
	drawPanel(dst, []string{
		g.Title(),
		"",
		poem.Title,
		"by " + poem.Author,
		"",
		"walk: arrows / wasd   read: z / enter",
		"",
		"press enter to begin",
	}, core.ColorGold)
}

func (g *Game) drawCompletion(dst *core.Screen) {
	w := g.world
	poem := g.cfg.Poem
	last := ""
	if n := len(poem.Lines); n > 0 {
		last = poem.Lines[n-1]
	}
	found := fmt.Sprintf("all %d lines found", w.Total())
	if w.Total() < len(poem.Lines) {
		found = fmt.Sprintf("%d of %d lines found", w.Total(), len(poem.Lines))
	}
	drawPanel(dst, []string{
		poem.Title,
		"by " + poem.Author,
		"",
		found,
		"",
		last,
		"",
		"r: walk again   esc: menu",
	}, core.ColorGold)
}

// drawPanel centers a boxed block of lines on the screen. The first line
// takes the accent color.
func drawPanel(dst *core.Screen, lines []string, accent core.Color) {
	width := 0
	for _, l := range lines {
		width = core.Max(width, utf8.RuneCountInString(l))
	}
	boxW := core.Min(width+6, dst.Width())
	boxH := core.Min(len(lines)+2, dst.Height())
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)
	dst.FillRect(box, ' ', "#000000")
	dst.DrawBoxColor(box, core.ColorGray)

	for i, l := range lines {
		fg := core.ColorWhite
		if i == 0 {
			fg = accent
		}
		dst.DrawTextCenteredColor(box.Y+1+i, l, fg)
	}
}

// wrapText breaks s into lines of at most width runes on word boundaries.
func wrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var cur []rune
	for _, word := range strings.Fields(s) {
		wr := []rune(word)
		for len(wr) > width {
			if len(cur) > 0 {
				lines = append(lines, string(cur))
				cur = nil
			}
			lines = append(lines, string(wr[:width]))
			wr = wr[width:]
		}
		switch {
		case len(cur) == 0:
			cur = wr
		case len(cur)+1+len(wr) <= width:
			cur = append(append(cur, ' '), wr...)
		default:
			lines = append(lines, string(cur))
			cur = wr
		}
	}
	if len(cur) > 0 {
		lines = append(lines, string(cur))
	}
	return lines
}
