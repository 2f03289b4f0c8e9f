// Package raster renders game frames to images with gg, for headless runs
// and screenshots.
package raster

import (
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"
	"github.com/go-gl/mathgl/mgl64"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Labels drawn on falling power-ups.
var powerUpLabels = map[breakout.Sprite]string{
	breakout.SpritePowerUpSpeed:       "S",
	breakout.SpritePowerUpSticky:      "T",
	breakout.SpritePowerUpPassThrough: "P",
	breakout.SpritePowerUpIncrease:    "+",
	breakout.SpritePowerUpConfuse:     "C",
	breakout.SpritePowerUpChaos:       "X",
}

// Renderer draws frames into an in-memory image. The scene is drawn
// offscreen and composited onto the output during PostProcess, so text
// drawn afterwards is not affected by screen effects.
type Renderer struct {
	scene  *gg.Context
	output *gg.Context
	target *gg.Context // Where DrawText goes
	width  int
	height int
}

// New creates a renderer for a width x height world, one pixel per unit.
func New(width, height int) *Renderer {
	r := &Renderer{
		scene:  gg.NewContext(width, height),
		output: gg.NewContext(width, height),
		width:  width,
		height: height,
	}
	r.target = r.scene
	return r
}

// BeginFrame clears the scene to the background color.
func (r *Renderer) BeginFrame() {
	r.scene.SetColor(core.ColorBackground)
	r.scene.Clear()
	r.target = r.scene
}

// DrawSprite draws a sprite as a filled shape in its tint.
func (r *Renderer) DrawSprite(sprite breakout.Sprite, pos, size mgl64.Vec2, rotate float64, tint colorful.Color) {
	dc := r.scene
	dc.Push()
	defer dc.Pop()

	if rotate != 0 {
		center := pos.Add(size.Mul(0.5))
		dc.RotateAbout(gg.Radians(rotate), center.X(), center.Y())
	}

	x, y, w, h := pos.X(), pos.Y(), size.X(), size.Y()
	switch sprite {
	case breakout.SpriteBackground:
		dc.SetColor(core.Blend(core.ColorBackground, tint))
		dc.DrawRectangle(x, y, w, h)
		dc.Fill()

	case breakout.SpriteBall:
		dc.SetColor(tint)
		dc.DrawCircle(x+w/2, y+h/2, w/2)
		dc.Fill()

	case breakout.SpriteBlock, breakout.SpriteBlockSolid:
		dc.SetColor(tint)
		dc.DrawRectangle(x, y, w, h)
		dc.Fill()
		edge := 1.0
		if sprite == breakout.SpriteBlockSolid {
			edge = 3
		}
		dc.SetColor(shade(tint, 0.6))
		dc.SetLineWidth(edge)
		dc.DrawRectangle(x+edge/2, y+edge/2, w-edge, h-edge)
		dc.Stroke()

	case breakout.SpritePaddle:
		dc.SetColor(tint)
		dc.DrawRoundedRectangle(x, y, w, h, h/2)
		dc.Fill()

	default:
		dc.SetColor(tint)
		dc.DrawRoundedRectangle(x, y, w, h, 4)
		dc.Fill()
		if label, ok := powerUpLabels[sprite]; ok {
			dc.SetColor(core.ColorBlack)
			dc.DrawStringAnchored(label, x+w/2, y+h/2, 0.5, 0.35)
		}
	}
}

// PostProcess composites the scene onto the output with the screen
// effects applied.
func (r *Renderer) PostProcess(fx breakout.Effects, elapsed float64) {
	out := r.output
	out.SetColor(core.ColorBackground)
	out.Clear()

	out.Push()
	w, h := float64(r.width), float64(r.height)
	if fx.Shake {
		out.Translate(math.Cos(elapsed*10)*4, math.Cos(elapsed*15)*4)
	}
	if fx.Chaos {
		out.Translate(math.Sin(elapsed)*12, math.Cos(elapsed)*12)
	}
	if fx.Confuse {
		out.ScaleAbout(-1, -1, w/2, h/2)
	}
	out.DrawImage(r.scene.Image(), 0, 0)
	out.Pop()

	switch {
	case fx.Confuse:
		mapPixels(out.Image(), func(_, _ int, c colorful.Color) colorful.Color {
			return core.Invert(c)
		})
	case fx.Chaos:
		mapPixels(out.Image(), func(x, y int, c colorful.Color) colorful.Color {
			return core.RotateHue(c, elapsed*90+float64(x+y)*0.5)
		})
	}

	r.target = out
}

// DrawText draws text with its top-left corner at pos. The built-in font
// is 7x13 pixels at scale 1; text is drawn at twice that.
func (r *Renderer) DrawText(text string, pos mgl64.Vec2, scale float64, tint colorful.Color) {
	dc := r.target
	dc.Push()
	defer dc.Pop()

	dc.Translate(pos.X(), pos.Y())
	dc.Scale(scale*2, scale*2)
	dc.SetColor(tint)
	dc.DrawStringAnchored(text, 0, 0, 0, 1)
}

// Image returns the current frame.
func (r *Renderer) Image() image.Image {
	return r.target.Image()
}

// SavePNG writes the current frame to path.
func (r *Renderer) SavePNG(path string) error {
	if err := r.target.SavePNG(path); err != nil {
		return fmt.Errorf("raster: save %s: %w", path, err)
	}
	return nil
}

// mapPixels replaces every pixel of img with fn(x, y, color), keeping alpha.
func mapPixels(img image.Image, fn func(x, y int, c colorful.Color) colorful.Color) {
	rgba, ok := img.(*image.RGBA)
	if !ok {
		return
	}
	b := rgba.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := rgba.PixOffset(x, y)
			px := rgba.Pix[i : i+4 : i+4]
			c := colorful.Color{R: float64(px[0]) / 255, G: float64(px[1]) / 255, B: float64(px[2]) / 255}
			r, g, bl := fn(x, y, c).Clamped().RGB255()
			px[0], px[1], px[2] = r, g, bl
		}
	}
}

// shade darkens c by factor f.
func shade(c colorful.Color, f float64) colorful.Color {
	return colorful.Color{R: c.R * f, G: c.G * f, B: c.B * f}
}
