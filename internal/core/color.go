package core

import colorful "github.com/lucasb-eyer/go-colorful"

// Predefined tints shared by the game and its renderers.
var (
	ColorWhite      = colorful.Color{R: 1, G: 1, B: 1}
	ColorBlack      = colorful.Color{}
	ColorGreen      = colorful.Color{R: 0, G: 1, B: 0}
	ColorYellow     = colorful.Color{R: 1, G: 1, B: 0}
	ColorBackground = colorful.Color{R: 0.05, G: 0.05, B: 0.12}
)

// Blend multiplies two tints channel by channel, the way a sprite texel is
// tinted by an object color.
func Blend(a, b colorful.Color) colorful.Color {
	return colorful.Color{R: a.R * b.R, G: a.G * b.G, B: a.B * b.B}
}

// RotateHue shifts the hue of c by deg degrees, keeping chroma and lightness.
func RotateHue(c colorful.Color, deg float64) colorful.Color {
	h, cr, l := c.Hcl()
	h += deg
	for h >= 360 {
		h -= 360
	}
	for h < 0 {
		h += 360
	}
	return colorful.Hcl(h, cr, l).Clamped()
}

// Invert returns the complementary color.
func Invert(c colorful.Color) colorful.Color {
	return colorful.Color{R: 1 - c.R, G: 1 - c.G, B: 1 - c.B}.Clamped()
}
