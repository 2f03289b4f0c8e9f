package breakout

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/levels"
)

// recordingSound records every cue it is asked to play.
type recordingSound struct {
	played []Sound
}

func (r *recordingSound) Play(s Sound, _ bool) {
	r.played = append(r.played, s)
}

func (r *recordingSound) count(s Sound) int {
	n := 0
	for _, p := range r.played {
		if p == s {
			n++
		}
	}
	return n
}

// recordingRenderer records the order of renderer calls.
type recordingRenderer struct {
	calls   []string
	sprites []Sprite
	texts   []string
	fx      Effects
}

func (r *recordingRenderer) BeginFrame() {
	r.calls = append(r.calls, "begin")
}

func (r *recordingRenderer) DrawSprite(s Sprite, _, _ mgl64.Vec2, _ float64, _ colorful.Color) {
	r.calls = append(r.calls, "sprite")
	r.sprites = append(r.sprites, s)
}

func (r *recordingRenderer) PostProcess(fx Effects, _ float64) {
	r.calls = append(r.calls, "post")
	r.fx = fx
}

func (r *recordingRenderer) DrawText(text string, _ mgl64.Vec2, _ float64, _ colorful.Color) {
	r.calls = append(r.calls, "text")
	r.texts = append(r.texts, text)
}

// testLevels loads the built-in playlist in menu order.
func testLevels(t *testing.T) []levels.Level {
	t.Helper()
	cfg := config.DefaultBreakoutConfig()
	lvls, err := levels.LoadPlaylist(cfg.Gameplay.Levels, levels.Builtin())
	if err != nil {
		t.Fatalf("LoadPlaylist failed: %v", err)
	}
	return lvls
}

// newTestGame creates a game with the default configuration on level one.
func newTestGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	g, err := New(config.DefaultBreakoutConfig(), testLevels(t), opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return g
}

// placeBall puts the ball's center at (x, y) in flight with velocity v.
func placeBall(g *Game, x, y float64, v mgl64.Vec2) {
	g.Ball.Position = mgl64.Vec2{x - g.Ball.Radius, y - g.Ball.Radius}
	g.Ball.Velocity = v
	g.Ball.Stuck = false
}

// findBrick returns the brick of the current level at the given tile.
func findBrick(t *testing.T, g *Game, row, col int) *GameObject {
	t.Helper()
	lvl := g.CurrentLevel()
	pos := mgl64.Vec2{lvl.width / 15 * float64(col), lvl.height / 8 * float64(row)}
	for i := range lvl.Bricks {
		if lvl.Bricks[i].Position.ApproxEqual(pos) {
			return &lvl.Bricks[i]
		}
	}
	t.Fatalf("no brick at row %d col %d", row, col)
	return nil
}
