// Package breakout implements the brick-breaker game loop: the menu/active/win
// state machine, ball and paddle physics, brick and power-up collisions, and
// the transient screen effects. Drawing and audio go through the Renderer and
// SoundPlayer collaborators so the game itself stays platform-free.
package breakout

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/levels"
)

// State is the top-level game state.
type State int

const (
	StateMenu   State = iota // Level selection, ball on the paddle
	StateActive              // Playing
	StateWin                 // Level cleared
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateActive:
		return "active"
	case StateWin:
		return "win"
	default:
		return "unknown"
	}
}

// Tints applied while an effect is active.
var (
	stickyPaddleColor    = colorful.Color{R: 1, G: 0.5, B: 1}
	passThroughBallColor = colorful.Color{R: 1, G: 0.5, B: 0.5}
)

// ErrNoLevels is returned when a game is created without any level.
var ErrNoLevels = errors.New("breakout: no levels")

// Option configures a Game.
type Option func(*Game)

// WithRenderer sets the renderer frames are drawn with.
func WithRenderer(r Renderer) Option {
	return func(g *Game) { g.renderer = r }
}

// WithSound sets the sound player for audio cues.
func WithSound(s SoundPlayer) Option {
	return func(g *Game) { g.sound = s }
}

// WithLogger sets the logger for gameplay events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithSeed sets the seed of the power-up RNG.
func WithSeed(seed int64) Option {
	return func(g *Game) { g.seed = seed }
}

// Game implements the Breakout game logic.
type Game struct {
	State State
	Keys  core.KeyTable

	Width, Height float64

	Levels []*Level
	Level  int // Index of the selected level
	Lives  int

	Player   *GameObject
	Ball     *BallObject
	PowerUps *PowerUpManager
	Effects  Effects

	frame uint64
	seed  int64

	cfg      config.BreakoutConfig
	renderer Renderer
	sound    SoundPlayer
	logger   *log.Logger
}

// New creates a game over the given levels, with the paddle and ball in
// their start positions and the menu showing.
func New(cfg config.BreakoutConfig, lvls []levels.Level, opts ...Option) (*Game, error) {
	if len(lvls) == 0 {
		return nil, ErrNoLevels
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("breakout: %w", err)
	}

	g := &Game{
		State:  StateMenu,
		Width:  cfg.Field.Width,
		Height: cfg.Field.Height,
		Lives:  cfg.Gameplay.Lives,
		seed:   1,
		cfg:    cfg,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.renderer == nil {
		g.renderer = NopRenderer{}
	}
	if g.sound == nil {
		g.sound = NopSound{}
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	for _, src := range lvls {
		g.Levels = append(g.Levels, NewLevel(src, g.Width, g.Height/2))
	}
	g.PowerUps = NewPowerUpManager(g.seed, cfg.PowerUps)

	paddle := NewGameObject(mgl64.Vec2{}, g.paddleSize(), SpritePaddle, core.ColorWhite, mgl64.Vec2{})
	g.Player = &paddle
	g.Ball = NewBall(mgl64.Vec2{}, cfg.Ball.Radius, g.initialVelocity())
	g.ResetPlayer()

	return g, nil
}

// Init starts the background music.
func (g *Game) Init() {
	g.sound.Play(SoundMusic, true)
	g.logger.Info("game initialized", "levels", len(g.Levels), "lives", g.Lives, "seed", g.seed)
}

// Config returns the configuration the game was created with.
func (g *Game) Config() config.BreakoutConfig {
	return g.cfg
}

// Frame returns the number of updates run so far.
func (g *Game) Frame() uint64 {
	return g.frame
}

// CurrentLevel returns the selected level.
func (g *Game) CurrentLevel() *Level {
	return g.Levels[g.Level]
}

// SetKey records a key press or release in the key table.
func (g *Game) SetKey(k core.Key, down bool) {
	g.Keys.Set(k, down)
}

// ProcessInput applies the key table for this frame.
func (g *Game) ProcessInput(dt float64) {
	switch g.State {
	case StateMenu:
		if g.Keys.Pressed(core.KeyEnter) {
			g.State = StateActive
			g.logger.Info("level started", "level", g.CurrentLevel().ID)
		}
		n := len(g.Levels)
		if g.Keys.Pressed(core.KeyUp) {
			g.Level = (g.Level + 1) % n
			g.logger.Debug("level selected", "level", g.CurrentLevel().ID)
		}
		if g.Keys.Pressed(core.KeyDown) {
			g.Level = (g.Level - 1 + n) % n
			g.logger.Debug("level selected", "level", g.CurrentLevel().ID)
		}

	case StateWin:
		if g.Keys.Pressed(core.KeyEnter) {
			g.Effects.Chaos = false
			g.State = StateMenu
		}

	case StateActive:
		step := g.cfg.Paddle.Speed * dt
		if g.Keys.Held(core.KeyLeft) {
			g.movePaddle(-step)
		}
		if g.Keys.Held(core.KeyRight) {
			g.movePaddle(step)
		}
		if g.Keys.Held(core.KeySpace) && g.Ball.Stuck {
			g.Ball.Stuck = false
		}
	}
}

// movePaddle shifts the paddle by dx, bounded by the field edges.
// A stuck ball moves with it.
func (g *Game) movePaddle(dx float64) {
	old := g.Player.Position.X()
	x := core.ClampF(old+dx, 0, g.Width-g.Player.Size.X())
	g.Player.Position[0] = x
	if g.Ball.Stuck {
		g.Ball.Position[0] += x - old
	}
}

// Update advances the simulation by dt seconds.
func (g *Game) Update(dt float64) {
	g.frame++

	g.Ball.Move(dt, g.Width)
	g.doCollisions()

	for _, t := range g.PowerUps.Update(dt) {
		g.deactivatePowerUp(t)
	}

	g.Effects.Tick(dt)

	if g.Ball.Position.Y() >= g.Height {
		g.Lives--
		g.logger.Info("ball lost", "lives", g.Lives)
		if g.Lives <= 0 {
			g.logger.Info("game over", "level", g.CurrentLevel().ID)
			g.ResetLevel()
			g.State = StateMenu
		}
		g.ResetPlayer()
	}

	if g.State == StateActive && g.CurrentLevel().IsCompleted() {
		g.logger.Info("level cleared", "level", g.CurrentLevel().ID, "lives", g.Lives)
		g.ResetLevel()
		g.ResetPlayer()
		g.Effects.Chaos = true
		g.State = StateWin
	}
}

// doCollisions resolves ball-brick, power-up-paddle and ball-paddle contact.
func (g *Game) doCollisions() {
	bricks := g.CurrentLevel().Bricks
	for i := range bricks {
		box := &bricks[i]
		if box.Destroyed {
			continue
		}
		c := core.CheckCircleAABB(g.Ball.Circle(), box.Bounds())
		if c.Hit {
			g.hitBrick(box, c)
		}
	}

	for _, p := range g.PowerUps.Collect(g.Player.Bounds(), g.Height) {
		g.activatePowerUp(p)
		g.sound.Play(SoundPowerUp, false)
	}

	if g.Ball.Stuck {
		return
	}
	if c := core.CheckCircleAABB(g.Ball.Circle(), g.Player.Bounds()); c.Hit {
		g.bouncePaddle()
		g.sound.Play(SoundBleepPaddle, false)
	}
}

// hitBrick handles the ball touching a standing brick.
func (g *Game) hitBrick(box *GameObject, c core.Collision) {
	switch {
	case box.IsSolid:
		g.Effects.StartShake(g.cfg.Effects.ShakeDuration)
		g.sound.Play(SoundSolid, false)
	case g.Ball.PassThrough:
		g.Effects.StartShake(g.cfg.Effects.ShakeDuration)
		return
	default:
		box.Destroyed = true
		for _, p := range g.PowerUps.Spawn(box.Position) {
			g.logger.Debug("power-up spawned", "type", p.Type, "x", p.Position.X(), "y", p.Position.Y())
		}
		g.sound.Play(SoundBleepBrick, false)
	}

	// Reflect and push the ball out along the dominant axis.
	if c.Dir.Horizontal() {
		g.Ball.Velocity[0] = -g.Ball.Velocity.X()
		pen := g.Ball.Radius - math.Abs(c.Penetration.X())
		if c.Dir == core.DirLeft {
			g.Ball.Position[0] += pen
		} else {
			g.Ball.Position[0] -= pen
		}
	} else {
		g.Ball.Velocity[1] = -g.Ball.Velocity.Y()
		pen := g.Ball.Radius - math.Abs(c.Penetration.Y())
		if c.Dir == core.DirUp {
			g.Ball.Position[1] -= pen
		} else {
			g.Ball.Position[1] += pen
		}
	}
}

// bouncePaddle sends the ball back up, angled by where it struck the paddle,
// keeping its speed.
func (g *Game) bouncePaddle() {
	half := g.Player.Size.X() / 2
	center := g.Player.Position.X() + half
	distance := (g.Ball.Position.X() + g.Ball.Radius) - center
	percentage := distance / half

	speed := g.Ball.Velocity.Len()
	v := mgl64.Vec2{
		g.cfg.Ball.Velocity.X * percentage * g.cfg.Ball.PaddleStrength,
		-math.Abs(g.Ball.Velocity.Y()),
	}
	g.Ball.Velocity = core.Normalize(v).Mul(speed)

	g.Ball.Stuck = g.Ball.Sticky
}

// activatePowerUp applies the effect of a collected power-up.
func (g *Game) activatePowerUp(p *PowerUp) {
	g.logger.Debug("power-up activated", "type", p.Type, "duration", p.Duration)

	switch p.Type {
	case PowerUpSpeed:
		g.Ball.Velocity = g.Ball.Velocity.Mul(g.cfg.PowerUps.SpeedMultiplier)
	case PowerUpSticky:
		g.Ball.Sticky = true
		g.Player.Color = stickyPaddleColor
	case PowerUpPassThrough:
		g.Ball.PassThrough = true
		g.Ball.Color = passThroughBallColor
	case PowerUpPadSizeIncrease:
		g.Player.Size[0] = math.Min(g.Player.Size.X()+g.cfg.PowerUps.PadSizeIncrease, g.Width)
		g.Player.Position[0] = core.ClampF(g.Player.Position.X(), 0, g.Width-g.Player.Size.X())
	case PowerUpConfuse:
		if !g.Effects.Chaos {
			g.Effects.Confuse = true
		}
	case PowerUpChaos:
		if !g.Effects.Confuse {
			g.Effects.Chaos = true
		}
	}
}

// deactivatePowerUp reverts an expired effect. Speed and paddle size
// changes last until the player is reset.
func (g *Game) deactivatePowerUp(t PowerUpType) {
	switch t {
	case PowerUpSticky:
		g.Ball.Sticky = false
		g.Player.Color = core.ColorWhite
	case PowerUpPassThrough:
		g.Ball.PassThrough = false
		g.Ball.Color = core.ColorWhite
	case PowerUpConfuse:
		g.Effects.Confuse = false
	case PowerUpChaos:
		g.Effects.Chaos = false
	case PowerUpSpeed, PowerUpPadSizeIncrease:
		return
	}
	g.logger.Debug("power-up expired", "type", t)
}

// ResetLevel restores the selected level's bricks and the lives, and
// removes every power-up.
func (g *Game) ResetLevel() {
	g.CurrentLevel().Reset()
	g.Lives = g.cfg.Gameplay.Lives
	g.PowerUps.Clear()
}

// ResetPlayer returns the paddle and ball to their start positions and
// clears the effects tied to them.
func (g *Game) ResetPlayer() {
	size := g.paddleSize()
	g.Player.Size = size
	g.Player.Position = mgl64.Vec2{g.Width/2 - size.X()/2, g.Height - size.Y()}
	g.Player.Color = core.ColorWhite

	r := g.Ball.Radius
	g.Ball.Reset(g.Player.Position.Add(mgl64.Vec2{size.X()/2 - r, -2 * r}), g.initialVelocity())
	g.Ball.Color = core.ColorWhite

	g.Effects.Confuse = false
	g.Effects.Chaos = false
}

// Render draws the current frame. elapsed is the total running time in
// seconds, used to animate post-processing.
func (g *Game) Render(elapsed float64) {
	r := g.renderer
	r.BeginFrame()

	r.DrawSprite(SpriteBackground, mgl64.Vec2{}, mgl64.Vec2{g.Width, g.Height}, 0, core.ColorWhite)
	g.CurrentLevel().Draw(r)
	g.Player.Draw(r)
	for _, p := range g.PowerUps.Falling() {
		p.Draw(r)
	}
	g.Ball.Draw(r)

	r.PostProcess(g.Effects, elapsed)

	r.DrawText(fmt.Sprintf("Lives: %d", g.Lives), mgl64.Vec2{5, 5}, 1, core.ColorWhite)
	switch g.State {
	case StateMenu:
		r.DrawText("Press ENTER to start", mgl64.Vec2{250, g.Height / 2}, 1, core.ColorWhite)
		r.DrawText("Press W or S to select level", mgl64.Vec2{245, g.Height/2 + 20}, 0.75, core.ColorWhite)
	case StateWin:
		r.DrawText("You WON!!!", mgl64.Vec2{320, g.Height/2 - 20}, 1, core.ColorGreen)
		r.DrawText("Press ENTER to retry or ESC to quit", mgl64.Vec2{130, g.Height / 2}, 1, core.ColorYellow)
	}
}

func (g *Game) paddleSize() mgl64.Vec2 {
	return mgl64.Vec2{g.cfg.Paddle.Size.X, g.cfg.Paddle.Size.Y}
}

func (g *Game) initialVelocity() mgl64.Vec2 {
	return mgl64.Vec2{g.cfg.Ball.Velocity.X, g.cfg.Ball.Velocity.Y}
}
