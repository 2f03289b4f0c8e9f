package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/levels"
)

func newTestModel(t *testing.T) (Model, *breakout.Game) {
	t.Helper()
	cfg := config.DefaultBreakoutConfig()
	lvls, err := levels.LoadPlaylist(cfg.Gameplay.Levels, levels.Builtin())
	if err != nil {
		t.Fatalf("LoadPlaylist failed: %v", err)
	}

	screen := core.NewScreen(80, 23)
	renderer := NewScreenRenderer(screen, mgl64.Vec2{cfg.Field.Width, cfg.Field.Height})
	game, err := breakout.New(cfg, lvls, breakout.WithRenderer(renderer))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return NewModel(game, screen, Options{TickRate: 60}), game
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func TestModelEnterStartsGame(t *testing.T) {
	m, game := newTestModel(t)
	t0 := time.Now()

	m, cmd := update(t, m, TickMsg(t0))
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, TickMsg(t0.Add(16*time.Millisecond)))

	if game.State != breakout.StateActive {
		t.Errorf("State = %v, expected active after Enter", game.State)
	}
	if game.Frame() != 2 {
		t.Errorf("Frame = %d, expected 2", game.Frame())
	}

	if view := m.View(); !strings.Contains(view, "Lives: 3") {
		t.Errorf("view missing lives:\n%s", view)
	}
}

func TestModelMovesPaddle(t *testing.T) {
	m, game := newTestModel(t)
	game.State = breakout.StateActive
	t0 := time.Now()

	m, _ = update(t, m, TickMsg(t0))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	update(t, m, TickMsg(t0.Add(20*time.Millisecond)))

	// 500 units/s for 20ms
	if x := game.Player.Position.X(); x > 340.01 || x < 339.99 {
		t.Errorf("paddle x = %v, expected 340", x)
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelResize(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, expected 120x39", m.screen.Width(), m.screen.Height())
	}
}

func TestFrameTime(t *testing.T) {
	t0 := time.Unix(1000, 0)

	tests := []struct {
		name       string
		prev, now  time.Time
		wantSecond float64
	}{
		{"first frame", time.Time{}, t0, 0},
		{"normal", t0, t0.Add(16 * time.Millisecond), 0.016},
		{"stall is clamped", t0, t0.Add(2 * time.Second), maxFrameTime},
		{"clock going back", t0, t0.Add(-time.Second), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := frameTime(tc.prev, tc.now); got != tc.wantSecond {
				t.Errorf("frameTime = %v, expected %v", got, tc.wantSecond)
			}
		})
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(20, 2)
	s.DrawText(0, 0, "You WON!!!", core.ColorGreen)
	s.DrawText(0, 1, "Press ENTER", core.ColorYellow)

	out := RenderScreen(s)
	if !strings.Contains(out, "You WON!!!") || !strings.Contains(out, "Press ENTER") {
		t.Errorf("rendered screen lost text:\n%s", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
}
