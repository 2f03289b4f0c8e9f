package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a CLI value to a preset. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
// Lives are never changed: a level always starts with the configured count.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Paddle.Size.X *= 1.5
		cfg.Ball.Velocity.X *= 0.8
		cfg.Ball.Velocity.Y *= 0.8
		cfg.PowerUps.Chances.Confuse *= 2
		cfg.PowerUps.Chances.Chaos *= 2
	case DifficultyHard:
		cfg.Paddle.Size.X *= 0.75
		cfg.Ball.Velocity.X *= 1.25
		cfg.Ball.Velocity.Y *= 1.25
		cfg.PowerUps.Chances.Confuse = max(cfg.PowerUps.Chances.Confuse/2, 1)
		cfg.PowerUps.Chances.Chaos = max(cfg.PowerUps.Chances.Chaos/2, 1)
	}
}
