package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default game configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Paddle: PaddleConfig{
			Size:  Vec{X: 100, Y: 20},
			Speed: 500,
		},
		Ball: BallConfig{
			Radius:         12.5,
			Velocity:       Vec{X: 100, Y: -350},
			PaddleStrength: 2.0,
		},
		Gameplay: GameplayConfig{
			Lives:  3,
			Levels: []string{"one", "two", "three", "four"},
		},
		PowerUps: PowerUpConfig{
			Size:      Vec{X: 60, Y: 20},
			FallSpeed: 150,
			Chances: PowerUpTable[int]{
				Speed:           75,
				Sticky:          75,
				PassThrough:     75,
				PadSizeIncrease: 75,
				Confuse:         15, // Negative effects are more common
				Chaos:           15,
			},
			Durations: PowerUpTable[float64]{
				Speed:           0,
				Sticky:          20,
				PassThrough:     10,
				PadSizeIncrease: 0,
				Confuse:         15,
				Chaos:           15,
			},
			SpeedMultiplier: 1.2,
			PadSizeIncrease: 50,
		},
		Effects: EffectsConfig{
			ShakeDuration: 0.05,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
