package breakout

import (
	"github.com/go-gl/mathgl/mgl64"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-breakout/internal/levels"
)

// Brick tints by tile code. Code 1 is the solid brick.
var brickColors = map[int]colorful.Color{
	levels.TileSolid: {R: 0.8, G: 0.8, B: 0.7},
	2:                {R: 0.2, G: 0.6, B: 1.0},
	3:                {R: 0.0, G: 0.7, B: 0.0},
	4:                {R: 0.8, G: 0.8, B: 0.4},
	5:                {R: 1.0, G: 0.5, B: 0.0},
}

// BrickColor returns the tint for a tile code.
func BrickColor(tile int) colorful.Color {
	if c, ok := brickColors[tile]; ok {
		return c
	}
	return colorful.Color{R: 1, G: 1, B: 1}
}

// Level is the playable brick field of one level.
type Level struct {
	ID     string
	Name   string
	Bricks []GameObject

	tiles         [][]int
	width, height float64
}

// NewLevel lays out the tiles of src as bricks filling a width x height area
// anchored at the top of the field.
func NewLevel(src levels.Level, width, height float64) *Level {
	l := &Level{
		ID:     src.ID,
		Name:   src.Name,
		tiles:  src.Tiles,
		width:  width,
		height: height,
	}
	l.Reset()
	return l
}

// Reset rebuilds every brick from the original layout.
func (l *Level) Reset() {
	l.Bricks = l.Bricks[:0]

	rows := len(l.tiles)
	if rows == 0 || len(l.tiles[0]) == 0 {
		return
	}
	cols := len(l.tiles[0])
	unitW := l.width / float64(cols)
	unitH := l.height / float64(rows)
	size := mgl64.Vec2{unitW, unitH}

	for y, row := range l.tiles {
		for x, tile := range row {
			if tile == levels.TileEmpty {
				continue
			}
			pos := mgl64.Vec2{unitW * float64(x), unitH * float64(y)}
			sprite := SpriteBlock
			if tile == levels.TileSolid {
				sprite = SpriteBlockSolid
			}
			brick := NewGameObject(pos, size, sprite, BrickColor(tile), mgl64.Vec2{})
			brick.IsSolid = tile == levels.TileSolid
			l.Bricks = append(l.Bricks, brick)
		}
	}
}

// IsCompleted reports whether every destructible brick is destroyed.
func (l *Level) IsCompleted() bool {
	return l.Remaining() == 0
}

// Remaining returns the number of destructible bricks still standing.
func (l *Level) Remaining() int {
	n := 0
	for i := range l.Bricks {
		if !l.Bricks[i].IsSolid && !l.Bricks[i].Destroyed {
			n++
		}
	}
	return n
}

// Draw renders every brick that is still standing.
func (l *Level) Draw(r Renderer) {
	for i := range l.Bricks {
		if !l.Bricks[i].Destroyed {
			l.Bricks[i].Draw(r)
		}
	}
}
