package breakout

import (
	"github.com/go-gl/mathgl/mgl64"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// PowerUpType represents the kinds of power-up a brick can drop.
type PowerUpType int

const (
	PowerUpSpeed           PowerUpType = iota // Ball speed x1.2
	PowerUpSticky                             // Ball sticks to the paddle
	PowerUpPassThrough                        // Ball breaks through bricks
	PowerUpPadSizeIncrease                    // Paddle grows
	PowerUpConfuse                            // Screen flipped and inverted
	PowerUpChaos                              // Screen swirls
	PowerUpCount                              // Sentinel for counting types
)

// String returns the name of the power-up type.
func (t PowerUpType) String() string {
	switch t {
	case PowerUpSpeed:
		return "speed"
	case PowerUpSticky:
		return "sticky"
	case PowerUpPassThrough:
		return "pass-through"
	case PowerUpPadSizeIncrease:
		return "pad-size-increase"
	case PowerUpConfuse:
		return "confuse"
	case PowerUpChaos:
		return "chaos"
	default:
		return "unknown"
	}
}

// Color returns the tint of the falling power-up block.
func (t PowerUpType) Color() colorful.Color {
	switch t {
	case PowerUpSpeed:
		return colorful.Color{R: 0.5, G: 0.5, B: 1.0}
	case PowerUpSticky:
		return colorful.Color{R: 1.0, G: 0.5, B: 1.0}
	case PowerUpPassThrough:
		return colorful.Color{R: 0.5, G: 1.0, B: 0.5}
	case PowerUpPadSizeIncrease:
		return colorful.Color{R: 1.0, G: 0.6, B: 0.4}
	case PowerUpConfuse:
		return colorful.Color{R: 1.0, G: 0.3, B: 0.3}
	case PowerUpChaos:
		return colorful.Color{R: 0.9, G: 0.25, B: 0.25}
	default:
		return core.ColorWhite
	}
}

// Sprite returns the texture of the falling power-up block.
func (t PowerUpType) Sprite() Sprite {
	switch t {
	case PowerUpSpeed:
		return SpritePowerUpSpeed
	case PowerUpSticky:
		return SpritePowerUpSticky
	case PowerUpPassThrough:
		return SpritePowerUpPassThrough
	case PowerUpPadSizeIncrease:
		return SpritePowerUpIncrease
	case PowerUpConfuse:
		return SpritePowerUpConfuse
	case PowerUpChaos:
		return SpritePowerUpChaos
	default:
		return SpriteBlock
	}
}

// PowerUp is a falling power-up block, and once collected, the timer of
// its effect.
type PowerUp struct {
	GameObject
	Type      PowerUpType
	Duration  float64 // Seconds of effect left once activated; 0 for instant effects
	Activated bool
}

// PowerUpManager owns the power-ups in play and rolls new ones.
type PowerUpManager struct {
	Config   config.PowerUpConfig
	PowerUps []*PowerUp
	RNG      *SimpleRNG // Deterministic RNG
}

// NewPowerUpManager creates a new power-up manager with given seed.
func NewPowerUpManager(seed int64, cfg config.PowerUpConfig) *PowerUpManager {
	return &PowerUpManager{
		Config:   cfg,
		PowerUps: make([]*PowerUp, 0),
		RNG:      NewSimpleRNG(seed),
	}
}

// Clear removes every power-up, falling or active.
func (pm *PowerUpManager) Clear() {
	pm.PowerUps = pm.PowerUps[:0]
}

// Spawn rolls each power-up type independently at its 1-in-N chance and
// drops the winners from pos. A single brick can drop several power-ups.
func (pm *PowerUpManager) Spawn(pos mgl64.Vec2) []*PowerUp {
	chances := pm.Config.Chances.Values()
	durations := pm.Config.Durations.Values()

	var spawned []*PowerUp
	for t := PowerUpSpeed; t < PowerUpCount; t++ {
		if !pm.RNG.OneIn(chances[t]) {
			continue
		}
		p := &PowerUp{
			GameObject: NewGameObject(
				pos,
				mgl64.Vec2{pm.Config.Size.X, pm.Config.Size.Y},
				t.Sprite(),
				t.Color(),
				mgl64.Vec2{0, pm.Config.FallSpeed},
			),
			Type:     t,
			Duration: durations[t],
		}
		pm.PowerUps = append(pm.PowerUps, p)
		spawned = append(spawned, p)
	}
	return spawned
}

// Collect checks falling power-ups against the paddle. Power-ups that
// reached the bottom of a field fieldHeight units tall are destroyed;
// ones touching the paddle are destroyed, activated and returned.
func (pm *PowerUpManager) Collect(paddle core.AABB, fieldHeight float64) []*PowerUp {
	var collected []*PowerUp
	for _, p := range pm.PowerUps {
		if p.Destroyed {
			continue
		}
		if p.Position.Y() >= fieldHeight {
			p.Destroyed = true
		}
		if core.CheckAABB(paddle, p.Bounds()) {
			p.Destroyed = true
			p.Activated = true
			collected = append(collected, p)
		}
	}
	return collected
}

// Update moves power-ups, counts down active effects and drops finished
// entries. It returns the effect types that ended this tick with no other
// power-up of the same type still active; those effects must be reverted.
func (pm *PowerUpManager) Update(dt float64) []PowerUpType {
	var expired []PowerUpType
	for _, p := range pm.PowerUps {
		p.Position = p.Position.Add(p.Velocity.Mul(dt))
		if !p.Activated {
			continue
		}
		p.Duration -= dt
		if p.Duration <= 0 {
			p.Activated = false
			if !pm.IsOtherActive(p.Type) {
				expired = append(expired, p.Type)
			}
		}
	}

	kept := pm.PowerUps[:0]
	for _, p := range pm.PowerUps {
		if p.Destroyed && !p.Activated {
			continue
		}
		kept = append(kept, p)
	}
	for i := len(kept); i < len(pm.PowerUps); i++ {
		pm.PowerUps[i] = nil
	}
	pm.PowerUps = kept

	return expired
}

// IsOtherActive reports whether any power-up of type t is still active.
func (pm *PowerUpManager) IsOtherActive(t PowerUpType) bool {
	for _, p := range pm.PowerUps {
		if p.Activated && p.Type == t {
			return true
		}
	}
	return false
}

// Falling returns the power-ups still visible on the field.
func (pm *PowerUpManager) Falling() []*PowerUp {
	var out []*PowerUp
	for _, p := range pm.PowerUps {
		if !p.Destroyed {
			out = append(out, p)
		}
	}
	return out
}
