package breakout

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// BallObject is the ball. Its Position is the top-left of the bounding
// square, so the center is Position + (Radius, Radius).
type BallObject struct {
	GameObject
	Radius float64

	Stuck       bool // Follows the paddle until released
	Sticky      bool // Sticks to the paddle on the next paddle hit
	PassThrough bool // Breaks through destructible bricks without bouncing
}

// NewBall creates a ball resting at pos, stuck to the paddle.
func NewBall(pos mgl64.Vec2, radius float64, velocity mgl64.Vec2) *BallObject {
	return &BallObject{
		GameObject: NewGameObject(pos, mgl64.Vec2{radius * 2, radius * 2}, SpriteBall, core.ColorWhite, velocity),
		Radius:     radius,
		Stuck:      true,
	}
}

// Center returns the center point of the ball.
func (b *BallObject) Center() mgl64.Vec2 {
	return b.Position.Add(mgl64.Vec2{b.Radius, b.Radius})
}

// Circle returns the ball's collision shape.
func (b *BallObject) Circle() core.Circle {
	return core.Circle{Center: b.Center(), Radius: b.Radius}
}

// Move integrates the ball over dt seconds and reflects it off the left,
// right and top walls of a field width units wide. A stuck ball does not move.
// The bottom is open; falling through it is the game's concern.
func (b *BallObject) Move(dt, width float64) mgl64.Vec2 {
	if b.Stuck {
		return b.Position
	}

	b.Position = b.Position.Add(b.Velocity.Mul(dt))

	right := width - b.Size.X()
	switch {
	case b.Position.X() <= 0:
		b.Velocity[0] = -b.Velocity.X()
		b.Position[0] = 0
	case b.Position.X() >= right:
		b.Velocity[0] = -b.Velocity.X()
		b.Position[0] = right
	}
	if b.Position.Y() <= 0 {
		b.Velocity[1] = -b.Velocity.Y()
		b.Position[1] = 0
	}

	return b.Position
}

// Reset places the ball at pos with the given velocity, stuck and with
// its power-up flags cleared.
func (b *BallObject) Reset(pos, velocity mgl64.Vec2) {
	b.Position = pos
	b.Velocity = velocity
	b.Stuck = true
	b.Sticky = false
	b.PassThrough = false
}
