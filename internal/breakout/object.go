package breakout

import (
	"github.com/go-gl/mathgl/mgl64"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// GameObject is anything drawn as a single sprite: bricks, the paddle,
// power-ups and (embedded) the ball.
type GameObject struct {
	Position mgl64.Vec2 // Top-left corner in world units
	Size     mgl64.Vec2
	Velocity mgl64.Vec2 // Units per second
	Color    colorful.Color
	Rotation float64
	Sprite   Sprite

	IsSolid   bool // Solid bricks cannot be destroyed
	Destroyed bool
}

// NewGameObject creates a visible object with the given geometry.
func NewGameObject(pos, size mgl64.Vec2, sprite Sprite, color colorful.Color, velocity mgl64.Vec2) GameObject {
	return GameObject{
		Position: pos,
		Size:     size,
		Velocity: velocity,
		Color:    color,
		Sprite:   sprite,
	}
}

// Bounds returns the object's bounding box.
func (o *GameObject) Bounds() core.AABB {
	return core.NewAABB(o.Position.X(), o.Position.Y(), o.Size.X(), o.Size.Y())
}

// Draw submits the object's sprite to the renderer.
func (o *GameObject) Draw(r Renderer) {
	r.DrawSprite(o.Sprite, o.Position, o.Size, o.Rotation, o.Color)
}
