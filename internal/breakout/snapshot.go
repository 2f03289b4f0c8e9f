package breakout

import "math"

// Snapshot contains the complete simulation state for replay and
// determinism checks. Uses primitive types only for stable serialization.
type Snapshot struct {
	Frame           uint64
	State           string
	Level           int
	Lives           int
	BricksRemaining int

	PaddleX     float64
	PaddleWidth float64

	BallX, BallY   float64
	BallVX, BallVY float64
	BallFlags      int // Bit 0 stuck, bit 1 sticky, bit 2 pass-through

	// Power-up state (each power-up is 5 values: Type, X, Y, Duration, Activated)
	PowerUpCount int
	PowerUpData  []float64

	// Brick states in level order, 1 for destroyed
	BrickData []int

	Shake, Confuse, Chaos bool
	ShakeTime             float64

	// RNG state for power-up manager
	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	lvl := g.CurrentLevel()
	brickData := make([]int, len(lvl.Bricks))
	for i := range lvl.Bricks {
		if lvl.Bricks[i].Destroyed {
			brickData[i] = 1
		}
	}

	powerUpData := make([]float64, 0, len(g.PowerUps.PowerUps)*5)
	for _, p := range g.PowerUps.PowerUps {
		active := 0.0
		if p.Activated {
			active = 1
		}
		powerUpData = append(powerUpData, float64(p.Type), p.Position.X(), p.Position.Y(), p.Duration, active)
	}

	flags := 0
	if g.Ball.Stuck {
		flags |= 1
	}
	if g.Ball.Sticky {
		flags |= 2
	}
	if g.Ball.PassThrough {
		flags |= 4
	}

	return Snapshot{
		Frame:           g.frame,
		State:           g.State.String(),
		Level:           g.Level,
		Lives:           g.Lives,
		BricksRemaining: lvl.Remaining(),

		PaddleX:     g.Player.Position.X(),
		PaddleWidth: g.Player.Size.X(),

		BallX:     g.Ball.Position.X(),
		BallY:     g.Ball.Position.Y(),
		BallVX:    g.Ball.Velocity.X(),
		BallVY:    g.Ball.Velocity.Y(),
		BallFlags: flags,

		PowerUpCount: len(g.PowerUps.PowerUps),
		PowerUpData:  powerUpData,
		BrickData:    brickData,

		Shake:     g.Effects.Shake,
		Confuse:   g.Effects.Confuse,
		Chaos:     g.Effects.Chaos,
		ShakeTime: g.Effects.ShakeTime,

		RNGState: g.PowerUps.RNG.state,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Level)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BricksRemaining) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.PaddleWidth)
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallVX)
	h = h*31 + math.Float64bits(snap.BallVY)
	h = h*31 + uint64(snap.BallFlags)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PowerUpCount) //#nosec G115 -- hash computation

	for _, v := range snap.PowerUpData {
		h = h*31 + math.Float64bits(v)
	}

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, b := range []bool{snap.Shake, snap.Confuse, snap.Chaos} {
		h *= 31
		if b {
			h++
		}
	}
	h = h*31 + math.Float64bits(snap.ShakeTime)

	h = h*31 + snap.RNGState

	return h
}
