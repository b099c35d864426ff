package walk

import (
	"math"

	"github.com/vovakirdan/poemwalk/internal/config"
	"github.com/vovakirdan/poemwalk/internal/core"
)

// painter maps the logical view onto screen cells.
type painter struct {
	dst    *core.Screen
	cfg    config.VariantConfig
	w      *World
	pal    config.ChapterPalette
	sx, sy float64  // cells per view unit
	cam    core.Vec // camera position plus shake
	tick   float64  // animation clock in reference ticks
}

func newPainter(dst *core.Screen, cfg config.VariantConfig, w *World, pal config.ChapterPalette) *painter {
	return &painter{
		dst:  dst,
		cfg:  cfg,
		w:    w,
		pal:  pal,
		sx:   float64(dst.Width()) / cfg.View.Width,
		sy:   float64(dst.Height()) / cfg.View.Height,
		cam:  w.Camera.Pos.Add(w.Camera.ShakeOffset),
		tick: float64(w.Ticks),
	}
}

// viewCell converts view units to a cell.
func (p *painter) viewCell(vx, vy float64) (int, int) {
	return int(math.Floor(vx * p.sx)), int(math.Floor(vy * p.sy))
}

// worldCell converts world units to a cell through the camera.
func (p *painter) worldCell(pos core.Vec) (int, int) {
	return p.viewCell(pos.X-p.cam.X, pos.Y-p.cam.Y)
}

// cellView returns the view-space center of a cell.
func (p *painter) cellView(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) / p.sx, (float64(cy) + 0.5) / p.sy
}

// cellWorld returns the world-space center of a cell.
func (p *painter) cellWorld(cx, cy int) core.Vec {
	vx, vy := p.cellView(cx, cy)
	return core.V(vx+p.cam.X, vy+p.cam.Y)
}

func (p *painter) bg(cx, cy int) core.Color {
	bg := p.dst.GetCell(cx, cy).BG
	if bg.IsDefault() {
		return core.Color(p.pal.Sky)
	}
	return bg
}

// tintBG blends a cell's background toward c.
func (p *painter) tintBG(cx, cy int, c core.Color, alpha float64) {
	if alpha <= 0 {
		return
	}
	p.dst.SetBG(cx, cy, core.Blend(p.bg(cx, cy), c, alpha))
}

// glyph draws r in fg faded against the cell background by alpha.
func (p *painter) glyph(cx, cy int, r rune, fg core.Color, alpha float64) {
	if alpha <= 0 {
		return
	}
	p.dst.SetFG(cx, cy, r, core.Fade(fg, p.bg(cx, cy), alpha))
}

// text draws a string starting at a cell.
func (p *painter) text(cx, cy int, s string, fg core.Color, alpha float64) {
	i := 0
	for _, r := range s {
		p.glyph(cx+i, cy, r, fg, alpha)
		i++
	}
}

// fillView paints a view-space rectangle; anything wider or taller than
// zero covers at least one cell.
func (p *painter) fillView(x, y, w, h float64, c core.Color, alpha float64) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, y0 := p.viewCell(x, y)
	x1 := int(math.Ceil((x + w) * p.sx))
	y1 := int(math.Ceil((y + h) * p.sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	x0, y0 = core.Max(x0, 0), core.Max(y0, 0)
	x1, y1 = core.Min(x1, p.dst.Width()), core.Min(y1, p.dst.Height())
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			p.tintBG(cx, cy, c, alpha)
		}
	}
}

// glow brightens cells around a view-space point, fading to nothing at radius.
func (p *painter) glow(vx, vy, radius float64, c core.Color, peak float64) {
	x0, y0 := p.viewCell(vx-radius, vy-radius)
	x1, y1 := p.viewCell(vx+radius, vy+radius)
	for cy := core.Max(y0, 0); cy <= core.Min(y1, p.dst.Height()-1); cy++ {
		for cx := core.Max(x0, 0); cx <= core.Min(x1, p.dst.Width()-1); cx++ {
			px, py := p.cellView(cx, cy)
			d := math.Hypot(px-vx, py-vy)
			if d < radius {
				p.tintBG(cx, cy, c, peak*(1-d/radius))
			}
		}
	}
}

// inView reports whether a view-space x is on screen with some margin.
func (p *painter) inView(vx, margin float64) bool {
	return vx > -margin && vx < p.cfg.View.Width+margin
}

// hash returns a stable pseudo-random value in [0, 1) for a pair of ints.
// Scenery flickers through it so rendering never touches the world RNG.
func hash(a, b int) float64 {
	h := uint64(a)*0x9e3779b97f4a7c15 ^ uint64(b)*0xc2b2ae3d27d4eb4f
	h ^= h >> 29
	h *= 0xbf58476d1ce4e5b9
	h ^= h >> 32
	return float64(h>>11) / float64(1<<53)
}

// wrap repeats v into [0, period).
func wrap(v, period float64) float64 {
	if period <= 0 {
		return v
	}
	v = math.Mod(v, period)
	if v < 0 {
		v += period
	}
	return v
}
