package breakout

import (
	"github.com/go-gl/mathgl/mgl64"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Sprite names a texture known to the renderer.
type Sprite string

// Sprites used by the game.
const (
	SpriteBackground Sprite = "background"
	SpriteBlock      Sprite = "block"
	SpriteBlockSolid Sprite = "block_solid"
	SpritePaddle     Sprite = "paddle"
	SpriteBall       Sprite = "face"

	SpritePowerUpSpeed       Sprite = "powerup_speed"
	SpritePowerUpSticky      Sprite = "powerup_sticky"
	SpritePowerUpPassThrough Sprite = "powerup_passthrough"
	SpritePowerUpIncrease    Sprite = "powerup_increase"
	SpritePowerUpConfuse     Sprite = "powerup_confuse"
	SpritePowerUpChaos       Sprite = "powerup_chaos"
)

// Sound identifies an audio cue.
type Sound int

const (
	SoundMusic       Sound = iota // Background music, looped
	SoundBleepBrick               // Breakable brick destroyed
	SoundSolid                    // Solid brick hit
	SoundPowerUp                  // Power-up collected
	SoundBleepPaddle              // Ball bounced off the paddle
)

// String returns the name of the sound.
func (s Sound) String() string {
	switch s {
	case SoundMusic:
		return "music"
	case SoundBleepBrick:
		return "bleep_brick"
	case SoundSolid:
		return "solid"
	case SoundPowerUp:
		return "powerup"
	case SoundBleepPaddle:
		return "bleep_paddle"
	default:
		return "unknown"
	}
}

// Renderer draws a frame. The game calls it in order: BeginFrame, any number
// of DrawSprite calls, PostProcess with the active screen effects, then
// DrawText for the overlay, which is not post-processed.
// Coordinates are world units with the origin at the top-left.
type Renderer interface {
	BeginFrame()
	DrawSprite(sprite Sprite, pos, size mgl64.Vec2, rotate float64, tint colorful.Color)
	PostProcess(fx Effects, elapsed float64)
	DrawText(text string, pos mgl64.Vec2, scale float64, tint colorful.Color)
}

// SoundPlayer plays audio cues.
type SoundPlayer interface {
	Play(s Sound, loop bool)
}

// NopRenderer discards all drawing.
type NopRenderer struct{}

func (NopRenderer) BeginFrame() {}
func (NopRenderer) DrawSprite(Sprite, mgl64.Vec2, mgl64.Vec2, float64, colorful.Color) {}
func (NopRenderer) PostProcess(Effects, float64) {}
func (NopRenderer) DrawText(string, mgl64.Vec2, float64, colorful.Color) {}

// NopSound discards all audio cues.
type NopSound struct{}

func (NopSound) Play(Sound, bool) {}
