package walk

import (
	"math"

	"github.com/vovakirdan/poemwalk/internal/config"
	"github.com/vovakirdan/poemwalk/internal/core"
)

// drawLayers paints every visible layer of one depth class in config order.
func (p *painter) drawLayers(foreground bool) {
	for i, l := range p.cfg.Layers {
		if l.Foreground != foreground || !l.VisibleIn(p.w.Chapter) {
			continue
		}
		p.drawLayer(i, l)
	}
}

func (p *painter) drawLayer(seed int, l config.LayerConfig) {
	switch l.Kind {
	case "sky":
		p.drawSky(l)
	case "stars":
		p.drawStars(seed, l)
	case "aurora":
		p.drawAurora(l)
	case "mountains":
		p.drawMountains(seed, l)
	case "pillars":
		p.drawPillars(l)
	case "torches":
		p.drawTorches(l)
	case "crowd":
		p.drawCrowd(l)
	case "final_light":
		p.drawFinalLight(l)
	case "ground":
		p.drawGround(l)
	case "sea":
		p.drawSea(l)
	case "terrain":
		p.drawTerrain(l)
	case "stones":
		p.drawScatter(seed, l, '•', false)
	case "fireflies":
		p.drawScatter(seed, l, '·', true)
	}
}

// scroll is the view-space x of a layer-space x.
func (p *painter) scroll(x float64, l config.LayerConfig) float64 {
	return x - p.cam.X*l.Speed
}

func (p *painter) drawSky(l config.LayerConfig) {
	if l.Height <= 0 {
		return
	}
	for cy := 0; cy < p.dst.Height(); cy++ {
		_, vy := p.cellView(0, cy)
		if vy < l.Y || vy >= l.Y+l.Height {
			continue
		}
		c := core.Blend(core.Color(p.pal.Sky), core.Color(p.pal.Horizon), (vy-l.Y)/l.Height)
		for cx := 0; cx < p.dst.Width(); cx++ {
			p.dst.SetBG(cx, cy, c)
		}
	}
}

func (p *painter) drawStars(seed int, l config.LayerConfig) {
	if l.Spacing <= 0 {
		return
	}
	strip := p.cfg.View.Width * 2
	n := int(strip / l.Spacing)
	for i := 0; i < n; i++ {
		x := wrap(hash(seed, i*3)*strip-p.cam.X*l.Speed, strip)
		if x >= p.cfg.View.Width {
			continue
		}
		y := l.Y + hash(seed, i*3+1)*l.Height
		cx, cy := p.viewCell(x, y)
		r := '·'
		if hash(i, int(p.tick/20)) > 0.85 {
			r = '*'
		}
		p.glyph(cx, cy, r, core.Color(l.Color), 0.4+0.6*hash(seed, i*3+2))
	}
}

func (p *painter) drawAurora(l config.LayerConfig) {
	half := l.Height / 4
	if half <= 0 {
		return
	}
	for cx := 0; cx < p.dst.Width(); cx++ {
		vx, _ := p.cellView(cx, 0)
		lx := vx + p.cam.X*l.Speed
		center := l.Y + l.Height/2 + math.Sin(lx*0.04+p.tick*0.02)*l.Height/3
		mix := (math.Sin(lx*0.02+p.tick*0.01) + 1) / 2
		c := core.Blend(core.Color(l.Color), core.Color(l.AltColor), mix)
		for cy := 0; cy < p.dst.Height(); cy++ {
			_, vy := p.cellView(cx, cy)
			d := math.Abs(vy - center)
			if d < half {
				p.tintBG(cx, cy, c, 0.35*(1-d/half))
			}
		}
	}
}

// ridge is the mountain height above the layer bottom at layer-space x.
func ridge(seed int, x float64, l config.LayerConfig) float64 {
	i := int(math.Floor(x / l.Spacing))
	best := 0.0
	for k := i - 1; k <= i+1; k++ {
		peak := (float64(k)+0.5)*l.Spacing + (hash(seed, k*2)-0.5)*l.Spacing*0.4
		h := l.Height * (0.5 + 0.5*hash(seed, k*2+1))
		if v := h - math.Abs(x-peak)*0.9; v > best {
			best = v
		}
	}
	return best
}

func (p *painter) drawMountains(seed int, l config.LayerConfig) {
	if l.Spacing <= 0 {
		return
	}
	bottom := l.Y + l.Height
	for cx := 0; cx < p.dst.Width(); cx++ {
		vx, _ := p.cellView(cx, 0)
		h := ridge(seed, vx+p.cam.X*l.Speed, l)
		top := bottom - h
		for cy := 0; cy < p.dst.Height(); cy++ {
			_, vy := p.cellView(cx, cy)
			if vy < top || vy >= bottom {
				continue
			}
			c := core.Color(l.Color)
			if h > l.Height*0.6 && vy < top+h*0.15 {
				c = core.Blend(c, core.Color(l.AltColor), 0.6)
			}
			p.dst.SetBG(cx, cy, c)
		}
	}
}

func (p *painter) drawPillars(l config.LayerConfig) {
	for i := 0; i < l.Count; i++ {
		x := p.scroll(l.Offset+float64(i)*l.Spacing, l)
		if !p.inView(x, 50) {
			continue
		}
		p.fillView(x, l.Y, 25, l.Height, core.Color(l.Color), 1)
		p.fillView(x+25, l.Y, 3, l.Height, core.Color(l.AltColor), 1)
	}
}

func (p *painter) drawTorches(l config.LayerConfig) {
	for i := 0; i < l.Count; i++ {
		x := p.scroll(l.Offset+float64(i)*l.Spacing, l)
		if !p.inView(x, 20) {
			continue
		}
		flame := core.Color(l.AltColor)
		p.glow(x+2, l.Y, 20, flame, 0.3)
		p.fillView(x, l.Y+2, 4, l.Height-2, core.Color(l.Color), 1)
		cx, cy := p.viewCell(x+2, l.Y)
		p.glyph(cx, cy, '♦', flame, 0.6+0.4*hash(i, int(p.tick/4)))
	}
}

func (p *painter) drawCrowd(l config.LayerConfig) {
	shades := []core.Color{core.Color(l.Color), core.Color(l.AltColor), core.Blend(core.Color(l.Color), core.ColorBlack, 0.25)}
	for i := 0; i < l.Count; i++ {
		x := p.scroll(l.Offset+float64(i)*l.Spacing, l)
		if !p.inView(x, 30) {
			continue
		}
		v := i % 3
		c := shades[v]
		cx, cy := p.viewCell(x, l.Y)
		p.glyph(cx, cy, 'o', c, 1)
		p.glyph(cx, cy+1, '█', c, 1)
		if math.Sin(p.tick/30+float64(v)) > 0 {
			p.glyph(cx-1, cy+1, '╲', c, 1)
			p.glyph(cx+1, cy+1, '╱', c, 1)
		} else {
			p.glyph(cx-1, cy+1, '╱', c, 1)
			p.glyph(cx+1, cy+1, '╲', c, 1)
		}
	}
}

func (p *painter) drawFinalLight(l config.LayerConfig) {
	const radius = 300
	x := p.scroll(l.Offset, l)
	c := core.Color(l.Color)
	for cy := 0; cy < p.dst.Height(); cy++ {
		for cx := 0; cx < p.dst.Width(); cx++ {
			vx, vy := p.cellView(cx, cy)
			t := math.Hypot(vx-x, vy-80) / radius
			switch {
			case t < 0.5:
				p.tintBG(cx, cy, c, 0.6-0.8*t)
			case t < 1:
				p.tintBG(cx, cy, c, 0.4*(1-t))
			}
		}
	}
}

func (p *painter) drawGround(l config.LayerConfig) {
	p.fillView(0, l.Y, p.cfg.View.Width, l.Height, core.Color(p.pal.Ground), 1)
	if l.Spacing <= 0 {
		return
	}
	off := wrap(p.cam.X*l.Speed, l.Spacing)
	for x := -off; x < p.cfg.View.Width; x += l.Spacing {
		p.fillView(x, l.Y, 2, l.Height, core.Color(l.Color), 1)
	}
}

func (p *painter) drawSea(l config.LayerConfig) {
	p.fillView(0, l.Y, p.cfg.View.Width, l.Height, core.Color(l.Color), 1)
	_, cy := p.viewCell(0, l.Y)
	for cx := 0; cx < p.dst.Width(); cx++ {
		vx, _ := p.cellView(cx, cy)
		lx := vx + p.cam.X*l.Speed + p.tick*0.3
		if hash(int(math.Floor(lx/8)), 5) > 0.5 {
			p.glyph(cx, cy, '~', core.Color(l.AltColor), 0.8)
		}
	}
}

// drawTerrain paints world-locked ground tiles for top-down variants.
func (p *painter) drawTerrain(l config.LayerConfig) {
	if l.Spacing <= 0 {
		return
	}
	ground := core.Color(p.pal.Ground)
	for cy := 0; cy < p.dst.Height(); cy++ {
		for cx := 0; cx < p.dst.Width(); cx++ {
			wp := p.cellWorld(cx, cy)
			tx := int(math.Floor(wp.X / l.Spacing))
			ty := int(math.Floor(wp.Y / l.Spacing))
			p.dst.SetBG(cx, cy, core.Blend(ground, core.Color(l.Color), 0.25*hash(tx, ty)))
			if hash(int(wp.X/6), int(wp.Y/10)) > 0.94 {
				p.glyph(cx, cy, '"', core.Color(l.AltColor), 0.5)
			}
		}
	}
}

// drawScatter places one glyph per world tile. Drifting glyphs float and blink.
func (p *painter) drawScatter(seed int, l config.LayerConfig, r rune, drift bool) {
	if l.Spacing <= 0 {
		return
	}
	s := l.Spacing
	tx0 := int(math.Floor(p.cam.X/s)) - 1
	ty0 := int(math.Floor(p.cam.Y/s)) - 1
	tx1 := int(math.Ceil((p.cam.X+p.cfg.View.Width)/s)) + 1
	ty1 := int(math.Ceil((p.cam.Y+p.cfg.View.Height)/s)) + 1
	for ty := ty0; ty <= ty1; ty++ {
		for tx := tx0; tx <= tx1; tx++ {
			h := hash(tx*31+seed, ty)
			if !drift && h < 0.5 {
				continue
			}
			pos := core.V(float64(tx)*s+hash(tx, ty*7+seed)*s, float64(ty)*s+hash(tx*7+seed, ty)*s)
			alpha := 0.8
			if drift {
				pos = pos.Add(core.V(math.Sin(p.tick/40+h*6)*6, math.Cos(p.tick/50+h*4)*4))
				alpha = 0.5 + 0.5*math.Sin(p.tick/15+h*10)
			}
			cx, cy := p.worldCell(pos)
			p.glyph(cx, cy, r, core.Color(l.Color), alpha)
		}
	}
}
