package core

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit terminal color in "#rrggbb" form.
// The empty Color means "terminal default".
type Color string

// Palette shared by the renderer and the HUD.
const (
	ColorDefault Color = ""
	ColorBlack   Color = "#000000"
	ColorWhite   Color = "#ffffff"
	ColorGold    Color = "#ffd700"
	ColorSky     Color = "#87ceeb"
	ColorGray    Color = "#888888"
	ColorDimGray Color = "#444444"
	ColorRed     Color = "#ff5555"
	ColorOrange  Color = "#ffaa00"
	ColorGreen   Color = "#22aa22"
	ColorCyan    Color = "#00ffff"
	ColorBlue    Color = "#2c5aa0"
	ColorSkin    Color = "#f5c99b"
	ColorBrown   Color = "#8b4513"
)

// IsDefault reports whether c leaves the terminal color untouched.
func (c Color) IsDefault() bool {
	return c == ColorDefault
}

// RGB parses the color. Invalid or default colors parse as black.
func (c Color) RGB() colorful.Color {
	if c == ColorDefault {
		return colorful.Color{}
	}
	parsed, err := colorful.Hex(string(c))
	if err != nil {
		return colorful.Color{}
	}
	return parsed
}

// Blend mixes c toward other by t in [0, 1]. t=0 returns c, t=1 returns other.
// A default color is treated as black so overlays still show on bare cells.
func Blend(c, other Color, t float64) Color {
	t = ClampF(t, 0, 1)
	if t == 0 {
		return c
	}
	if t == 1 && !other.IsDefault() {
		return other
	}
	return Color(c.RGB().BlendRgb(other.RGB(), t).Clamped().Hex())
}

// Fade applies alpha over a background: alpha=1 keeps c, alpha=0 yields bg.
func Fade(c, bg Color, alpha float64) Color {
	return Blend(c, bg, 1-ClampF(alpha, 0, 1))
}

// RGBA formats an opaque hex color from 8-bit channels.
func RGBA(r, g, b uint8) Color {
	return Color(colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}.Hex())
}
