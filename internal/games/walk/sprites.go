package walk

import "github.com/vovakirdan/poemwalk/internal/core"

// sprite is glyph art drawn bottom-up from an anchor. Each row is
// centered on its own and has one color.
type sprite struct {
	rows   []string
	colors []core.Color
}

func sp(rows []string, colors ...core.Color) sprite {
	return sprite{rows: rows, colors: colors}
}

func (s sprite) color(row int) core.Color {
	if len(s.colors) == 0 {
		return core.ColorWhite
	}
	if row >= len(s.colors) {
		return s.colors[len(s.colors)-1]
	}
	return s.colors[row]
}

var unknownSprite = sp([]string{"?"}, core.ColorWhite)

// sprites holds the art for every interactable kind.
var sprites = map[string]sprite{
	// corridor
	"stone":    sp([]string{"▟█▙"}, "#555555"),
	"candle":   sp([]string{"*", "║"}, "#ffff00", "#dddddd"),
	"sign":     sp([]string{"[≡]", "│"}, "#654321", "#8b4513"),
	"flower":   sp([]string{"✿", "│"}, "#ff55ff", "#22dd55"),
	"torch":    sp([]string{"♦", "┃"}, core.ColorOrange, "#665544"),
	"book":     sp([]string{"[▤]"}, core.ColorBrown),
	"crystal":  sp([]string{"▲", "◆"}, core.ColorCyan),
	"mirror":   sp([]string{"┌▒┐", "└─┘"}, "#aaaaff", core.ColorDimGray),
	"statue":   sp([]string{"●", "█", "▀█▀"}, "#777777"),
	"person":   sp([]string{"o", "/█\\"}, "#aaaaaa"),
	"tree":     sp([]string{"▓▓▓", "█"}, core.ColorGreen, "#665544"),
	"star":     sp([]string{"★"}, "#ffff00"),
	"fountain": sp([]string{"╵╿╵", "▀▀▀"}, "#5599ff", core.ColorGray),
	"heart":    sp([]string{"♥"}, core.ColorRed),
	"sun":      sp([]string{"☼"}, "#ffdd00"),
	"crown":    sp([]string{"♛"}, "#ffdd00"),
	"light":    sp([]string{"✺"}, core.ColorWhite),

	// highlands and coast
	"signpost":        sp([]string{"[≡]", "│"}, "#654321", core.ColorBrown),
	"cairn":           sp([]string{"▲", "▟█▙"}, "#8a8a8a"),
	"hiker":           sp([]string{"o", "█", "╱╲"}, core.ColorSkin, "#cc3333", core.ColorBlue),
	"plane_wreck":     sp([]string{"▁▄▆▇▅▂"}, "#9a9a9a"),
	"lighthouse":      sp([]string{"☼", "█", "█", "▀█▀"}, "#ffee88", "#dddddd", "#cc3333", "#dddddd"),
	"weather_station": sp([]string{"╤", "│", "┴"}, "#cccccc"),
	"geothermal_vent": sp([]string{"≈", "▁▂▁"}, "#dddddd", "#665544"),
	"telescope":       sp([]string{"═╗", "╱╲"}, "#aaaaaa"),
	"viking_statue":   sp([]string{"▲", "█", "▀█▀"}, "#999999"),
	"tourist":         sp([]string{"o", "█", "╨"}, core.ColorSkin, core.ColorOrange, core.ColorBlue),
	"globe":           sp([]string{"●", "┴"}, "#2c8ad0", core.ColorGray),
	"ice_sculpture":   sp([]string{"◆", "▲"}, "#aee8ff"),
	"flag_pole":       sp([]string{"▶", "│", "┴"}, "#cc3333", "#cccccc"),
	"abandoned_car":   sp([]string{"▄██▄", "◦  ◦"}, core.ColorBrown, "#333333"),
	"bench":           sp([]string{"▀▀▀", "╹ ╹"}, core.ColorBrown),
	"ruins":           sp([]string{"▌ ▐", "█▄█"}, "#777777"),
	"whale_bones":     sp([]string{"╭─╮", "│ │"}, "#eeeedd"),
	"hot_spring":      sp([]string{"~~", "▄▄▄"}, "#dddddd", "#3b9ad0"),
	"viewpoint":       sp([]string{"⊙", "┴"}, "#cccccc"),
}

func spriteFor(kind string) sprite {
	if s, ok := sprites[kind]; ok {
		return s
	}
	return unknownSprite
}

// KnownKind reports whether kind has art of its own.
func KnownKind(kind string) bool {
	_, ok := sprites[kind]
	return ok
}

// playerSprite returns the walker for a facing and walk frame.
func playerSprite(f Facing, frame int) sprite {
	head := "(°)"
	switch f {
	case FacingUp:
		head = "( )"
	case FacingLeft:
		head = "(° "
	case FacingRight:
		head = " °)"
	}
	legs := "╿ ╿"
	if frame == 1 {
		legs = "╱ ╲"
	}
	return sp([]string{head, "/█\\", legs}, core.ColorSkin, "#3a3a3a", core.ColorBlue)
}

// draw paints the sprite with its bottom row at (cx, bottom).
func (s sprite) draw(p *painter, cx, bottom int, alpha float64) {
	n := len(s.rows)
	for i, row := range s.rows {
		runes := []rune(row)
		y := bottom - (n - 1 - i)
		x := cx - len(runes)/2
		for j, r := range runes {
			if r == ' ' {
				continue
			}
			p.glyph(x+j, y, r, s.color(i), alpha)
		}
	}
}
