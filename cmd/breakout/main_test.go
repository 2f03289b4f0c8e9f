package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/levels"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("breakout %s: %v\n%s", strings.Join(args, " "), err, out.String())
	}
	return out.String()
}

func TestConfigCommandPrintsDefaults(t *testing.T) {
	out := execute(t, "config")
	for _, want := range []string{"field:", "paddle:", "powerups:", "shake_duration"} {
		if !strings.Contains(out, want) {
			t.Errorf("config output missing %q", want)
		}
	}
}

func TestLevelsCommand(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bonus.lvl"), []byte("# name: Bonus\n2 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	out := execute(t, "levels", "--config", "", "--levels-dir", dir)

	for _, want := range []string{"Standard", "Bounce galore", "15x8", "Not in playlist", "Bonus"} {
		if !strings.Contains(out, want) {
			t.Errorf("levels output missing %q:\n%s", want, out)
		}
	}
	flagLevelsDir = ""
}

func TestRenderCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")

	out := execute(t, "render", "--frames", "120", "--seed", "3", "--out", path, "--log-level", "error")

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("PNG not written: %v", err)
	}
	if !strings.Contains(out, "frame 120") {
		t.Errorf("unexpected summary: %q", out)
	}
}

func TestLevelIndex(t *testing.T) {
	lvls := []levels.Level{{ID: "one"}, {ID: "two"}}

	if i, err := levelIndex(lvls, ""); err != nil || i != 0 {
		t.Errorf("empty ID = %d, %v; expected 0", i, err)
	}
	if i, err := levelIndex(lvls, "two"); err != nil || i != 1 {
		t.Errorf("two = %d, %v; expected 1", i, err)
	}
	if _, err := levelIndex(lvls, "nine"); err == nil {
		t.Error("expected error for unknown level")
	}
}
