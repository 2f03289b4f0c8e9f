package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Autopilot drives the key table so a game can run unattended: it starts
// the level, releases the ball and keeps the paddle under it.
type Autopilot struct {
	// Deadzone is how far, in world units, the ball center may be from the
	// paddle center before the paddle moves. Zero means a quarter of the
	// configured paddle width.
	Deadzone float64
}

// Drive sets the keys for the next ProcessInput call.
func (a Autopilot) Drive(g *Game) {
	g.SetKey(core.KeyLeft, false)
	g.SetKey(core.KeyRight, false)
	g.SetKey(core.KeySpace, false)

	switch g.State {
	case StateMenu, StateWin:
		// Toggle Enter so every other frame is a fresh press.
		g.SetKey(core.KeyEnter, !g.Keys.Held(core.KeyEnter))
		return
	case StateActive:
		g.SetKey(core.KeyEnter, false)
	}

	if g.Ball.Stuck {
		g.SetKey(core.KeySpace, true)
		return
	}

	dz := a.Deadzone
	if dz <= 0 {
		dz = g.Config().Paddle.Size.X / 4
	}
	target := g.Ball.Center().X()
	center := g.Player.Position.X() + g.Player.Size.X()/2
	switch {
	case target < center-dz:
		g.SetKey(core.KeyLeft, true)
	case target > center+dz:
		g.SetKey(core.KeyRight, true)
	}
}
