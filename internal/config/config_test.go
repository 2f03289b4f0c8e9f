package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(DefaultYAML()) failed: %v", err)
	}
	def := DefaultBreakoutConfig()

	if cfg.Field != def.Field {
		t.Errorf("Field = %+v, expected %+v", cfg.Field, def.Field)
	}
	if cfg.Ball != def.Ball {
		t.Errorf("Ball = %+v, expected %+v", cfg.Ball, def.Ball)
	}
	if cfg.Paddle != def.Paddle {
		t.Errorf("Paddle = %+v, expected %+v", cfg.Paddle, def.Paddle)
	}
	if cfg.PowerUps.Chances != def.PowerUps.Chances {
		t.Errorf("Chances = %+v, expected %+v", cfg.PowerUps.Chances, def.PowerUps.Chances)
	}
	if cfg.PowerUps.Durations != def.PowerUps.Durations {
		t.Errorf("Durations = %+v, expected %+v", cfg.PowerUps.Durations, def.PowerUps.Durations)
	}
	if strings.Join(cfg.Gameplay.Levels, ",") != "one,two,three,four" {
		t.Errorf("Levels = %v, expected [one two three four]", cfg.Gameplay.Levels)
	}
	if cfg.Gameplay.Lives != 3 {
		t.Errorf("Lives = %d, expected 3", cfg.Gameplay.Lives)
	}
}

func TestParsePartialOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("ball:\n  radius: 8\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Ball.Radius != 8 {
		t.Errorf("Radius = %v, expected 8", cfg.Ball.Radius)
	}
	if cfg.Ball.Velocity.Y != -350 {
		t.Errorf("Velocity.Y = %v, expected default -350", cfg.Ball.Velocity.Y)
	}
	if cfg.Field.Width != 800 {
		t.Errorf("Field.Width = %v, expected default 800", cfg.Field.Width)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"zero chance", "powerups:\n  chances:\n    chaos: 0\n", "chance"},
		{"downward launch", "ball:\n  velocity: {x: 100, y: 50}\n", "upward"},
		{"no levels", "gameplay:\n  levels: []\n", "level"},
		{"negative field", "field:\n  width: -1\n", "field size"},
		{"malformed", "field: [", "parse"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("Parse() should fail")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadBreakoutCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("paddle:\n  speed: 750\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout() failed: %v", err)
	}
	if cfg.Paddle.Speed != 750 {
		t.Errorf("Paddle.Speed = %v, expected 750", cfg.Paddle.Speed)
	}

	if _, err := LoadBreakout(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadBreakout() with a missing custom file should fail")
	}
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	data, err := Marshal(DefaultBreakoutConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "pass_through") {
		t.Errorf("encoded config should use yaml field names, got:\n%s", data)
	}
	if _, err := Parse(data); err != nil {
		t.Errorf("Parse(Marshal(default)) failed: %v", err)
	}
}

func TestApplyBreakoutPreset(t *testing.T) {
	normal := DefaultBreakoutConfig()

	easy := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&easy, DifficultyEasy)
	if easy.Paddle.Size.X <= normal.Paddle.Size.X {
		t.Error("easy should widen the paddle")
	}
	if easy.PowerUps.Chances.Chaos <= normal.PowerUps.Chances.Chaos {
		t.Error("easy should make chaos rarer")
	}

	hard := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&hard, DifficultyHard)
	if hard.Ball.Velocity.Y >= normal.Ball.Velocity.Y {
		t.Error("hard should launch the ball faster")
	}
	if hard.Gameplay.Lives != normal.Gameplay.Lives {
		t.Errorf("presets must not change lives, got %d", hard.Gameplay.Lives)
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard preset should stay valid: %v", err)
	}
}

func TestParseDifficulty(t *testing.T) {
	for in, want := range map[string]DifficultyPreset{
		"":       DifficultyNormal,
		"normal": DifficultyNormal,
		"easy":   DifficultyEasy,
		"hard":   DifficultyHard,
	} {
		got, err := ParseDifficulty(in)
		if err != nil || got != want {
			t.Errorf("ParseDifficulty(%q) = %q, %v; expected %q", in, got, err, want)
		}
	}
	if _, err := ParseDifficulty("nightmare"); err == nil {
		t.Error("ParseDifficulty(nightmare) should fail")
	}
}
