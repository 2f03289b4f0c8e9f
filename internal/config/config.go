// Package config provides YAML-based game configuration loading and
// difficulty presets for the breakout game.
package config

import (
	"errors"
	"fmt"
)

// BreakoutConfig contains all configuration for the game.
type BreakoutConfig struct {
	Field    FieldConfig    `yaml:"field"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Ball     BallConfig     `yaml:"ball"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	PowerUps PowerUpConfig  `yaml:"powerups"`
	Effects  EffectsConfig  `yaml:"effects"`
}

// Vec is a 2D value in world units.
type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// FieldConfig defines the play field size in world units.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines the player paddle.
type PaddleConfig struct {
	Size  Vec     `yaml:"size"`
	Speed float64 `yaml:"speed"` // Units per second
}

// BallConfig defines the ball and how it leaves the paddle.
type BallConfig struct {
	Radius         float64 `yaml:"radius"`
	Velocity       Vec     `yaml:"velocity"`        // Initial velocity, units per second
	PaddleStrength float64 `yaml:"paddle_strength"` // Horizontal gain on paddle bounce
}

// GameplayConfig defines lives and the level playlist.
type GameplayConfig struct {
	Lives  int      `yaml:"lives"`
	Levels []string `yaml:"levels"` // Level IDs in menu order
}

// PowerUpConfig defines spawn odds, durations and effect sizes.
type PowerUpConfig struct {
	Size      Vec     `yaml:"size"`
	FallSpeed float64 `yaml:"fall_speed"` // Units per second, downward

	// Chance denominators: a power-up spawns when a 1-in-N roll succeeds.
	Chances PowerUpTable[int] `yaml:"chances"`

	// Durations in seconds; 0 means the effect is instantaneous.
	Durations PowerUpTable[float64] `yaml:"durations"`

	SpeedMultiplier float64 `yaml:"speed_multiplier"`
	PadSizeIncrease float64 `yaml:"pad_size_increase"`
}

// PowerUpTable holds one value per power-up type.
type PowerUpTable[T int | float64] struct {
	Speed           T `yaml:"speed"`
	Sticky          T `yaml:"sticky"`
	PassThrough     T `yaml:"pass_through"`
	PadSizeIncrease T `yaml:"pad_size_increase"`
	Confuse         T `yaml:"confuse"`
	Chaos           T `yaml:"chaos"`
}

// Values returns the table in power-up enumeration order.
func (t PowerUpTable[T]) Values() []T {
	return []T{t.Speed, t.Sticky, t.PassThrough, t.PadSizeIncrease, t.Confuse, t.Chaos}
}

// EffectsConfig defines transient screen effects.
type EffectsConfig struct {
	ShakeDuration float64 `yaml:"shake_duration"` // Seconds
}

// Validate checks that the configuration describes a playable game.
func (c BreakoutConfig) Validate() error {
	var errs []error

	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field size must be positive, got %vx%v", c.Field.Width, c.Field.Height))
	}
	if c.Paddle.Size.X <= 0 || c.Paddle.Size.Y <= 0 {
		errs = append(errs, fmt.Errorf("paddle size must be positive, got %vx%v", c.Paddle.Size.X, c.Paddle.Size.Y))
	}
	if c.Paddle.Size.X > c.Field.Width {
		errs = append(errs, fmt.Errorf("paddle width %v exceeds field width %v", c.Paddle.Size.X, c.Field.Width))
	}
	if c.Paddle.Speed < 0 {
		errs = append(errs, fmt.Errorf("paddle speed must not be negative, got %v", c.Paddle.Speed))
	}
	if c.Ball.Radius <= 0 {
		errs = append(errs, fmt.Errorf("ball radius must be positive, got %v", c.Ball.Radius))
	}
	if c.Ball.Velocity.Y >= 0 {
		errs = append(errs, fmt.Errorf("ball must launch upward (negative y velocity), got %v", c.Ball.Velocity.Y))
	}
	if c.Gameplay.Lives <= 0 {
		errs = append(errs, fmt.Errorf("lives must be positive, got %d", c.Gameplay.Lives))
	}
	if len(c.Gameplay.Levels) == 0 {
		errs = append(errs, errors.New("at least one level is required"))
	}
	for i, n := range c.PowerUps.Chances.Values() {
		if n <= 0 {
			errs = append(errs, fmt.Errorf("power-up chance #%d must be positive, got %d", i, n))
		}
	}
	for i, d := range c.PowerUps.Durations.Values() {
		if d < 0 {
			errs = append(errs, fmt.Errorf("power-up duration #%d must not be negative, got %v", i, d))
		}
	}
	if c.Effects.ShakeDuration < 0 {
		errs = append(errs, fmt.Errorf("shake duration must not be negative, got %v", c.Effects.ShakeDuration))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
