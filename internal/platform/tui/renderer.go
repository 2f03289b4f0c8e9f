package tui

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Glyphs used to fill sprites.
var spriteGlyphs = map[breakout.Sprite]rune{
	breakout.SpriteBlock:      '█',
	breakout.SpriteBlockSolid: '▓',
	breakout.SpritePaddle:     '▀',
	breakout.SpriteBall:       '●',

	breakout.SpritePowerUpSpeed:       'S',
	breakout.SpritePowerUpSticky:      'T',
	breakout.SpritePowerUpPassThrough: 'P',
	breakout.SpritePowerUpIncrease:    '+',
	breakout.SpritePowerUpConfuse:     'C',
	breakout.SpritePowerUpChaos:       'X',
}

// ScreenRenderer draws game frames into a character screen, scaling world
// units to cells.
type ScreenRenderer struct {
	screen *core.Screen
	world  mgl64.Vec2
}

// NewScreenRenderer creates a renderer drawing a world of the given size
// onto screen.
func NewScreenRenderer(screen *core.Screen, world mgl64.Vec2) *ScreenRenderer {
	return &ScreenRenderer{screen: screen, world: world}
}

// Screen returns the target screen.
func (r *ScreenRenderer) Screen() *core.Screen {
	return r.screen
}

// BeginFrame clears the screen.
func (r *ScreenRenderer) BeginFrame() {
	r.screen.Clear()
}

// DrawSprite fills the cells covered by the sprite with its glyph.
// The background is the terminal's own; sprites entirely off screen are skipped.
func (r *ScreenRenderer) DrawSprite(sprite breakout.Sprite, pos, size mgl64.Vec2, _ float64, tint colorful.Color) {
	if sprite == breakout.SpriteBackground {
		return
	}
	glyph, ok := spriteGlyphs[sprite]
	if !ok {
		glyph = '#'
	}

	rect := r.cellRect(pos, size)
	if sprite == breakout.SpriteBall {
		// The ball is a single cell at its center.
		c := r.cell(pos.Add(size.Mul(0.5)))
		rect = core.NewRect(c[0], c[1], 1, 1)
	}
	if !rect.Intersects(r.bounds()) {
		return
	}
	r.screen.FillRect(rect, glyph, tint)
}

// PostProcess applies the screen effects to the play field.
func (r *ScreenRenderer) PostProcess(fx breakout.Effects, elapsed float64) {
	full := r.bounds()

	if fx.Chaos {
		dx := int(math.Round(math.Sin(elapsed) * 2))
		dy := int(math.Round(math.Cos(elapsed)))
		r.screen.Shift(full, dx, dy)
		r.screen.MapColors(full, func(x, y int, fg colorful.Color) colorful.Color {
			return core.RotateHue(fg, elapsed*90+float64(x+y)*6)
		})
	}
	if fx.Confuse {
		r.screen.Flip(full)
		r.screen.MapColors(full, func(_, _ int, fg colorful.Color) colorful.Color {
			return core.Invert(fg)
		})
	}
	if fx.Shake {
		dx := int(math.Round(math.Cos(elapsed * 10)))
		dy := int(math.Round(math.Cos(elapsed * 15)))
		r.screen.Shift(full, dx, dy)
	}
}

// DrawText writes text starting at the cell containing pos.
func (r *ScreenRenderer) DrawText(text string, pos mgl64.Vec2, _ float64, tint colorful.Color) {
	c := r.cell(pos)
	r.screen.DrawText(c[0], c[1], text, tint)
}

// cell returns the cell containing the world point p.
func (r *ScreenRenderer) cell(p mgl64.Vec2) [2]int {
	sx, sy := r.scale()
	x := core.Clamp(int(math.Floor(p.X()*sx)), 0, max(r.screen.Width()-1, 0))
	y := core.Clamp(int(math.Floor(p.Y()*sy)), 0, max(r.screen.Height()-1, 0))
	return [2]int{x, y}
}

// cellRect returns the cells covered by a world-space box. Edges are
// rounded so adjacent bricks tile without gaps or overlap, and every
// visible box covers at least one cell.
func (r *ScreenRenderer) cellRect(pos, size mgl64.Vec2) core.Rect {
	sx, sy := r.scale()
	x0 := int(math.Round(pos.X() * sx))
	y0 := int(math.Round(pos.Y() * sy))
	x1 := int(math.Round((pos.X() + size.X()) * sx))
	y1 := int(math.Round((pos.Y() + size.Y()) * sy))
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

func (r *ScreenRenderer) bounds() core.Rect {
	return core.NewRect(0, 0, r.screen.Width(), r.screen.Height())
}

func (r *ScreenRenderer) scale() (float64, float64) {
	if r.world.X() <= 0 || r.world.Y() <= 0 {
		return 0, 0
	}
	return float64(r.screen.Width()) / r.world.X(), float64(r.screen.Height()) / r.world.Y()
}
