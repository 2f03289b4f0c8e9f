package breakout

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestBallMove(t *testing.T) {
	tests := []struct {
		name    string
		pos     mgl64.Vec2
		vel     mgl64.Vec2
		dt      float64
		wantPos mgl64.Vec2
		wantVel mgl64.Vec2
	}{
		{
			name:    "top wall clamps and reflects",
			pos:     mgl64.Vec2{100, 100},
			vel:     mgl64.Vec2{100, -350},
			dt:      1,
			wantPos: mgl64.Vec2{200, 0},
			wantVel: mgl64.Vec2{100, 350},
		},
		{
			name:    "right wall",
			pos:     mgl64.Vec2{770, 300},
			vel:     mgl64.Vec2{100, 0},
			dt:      0.1,
			wantPos: mgl64.Vec2{775, 300},
			wantVel: mgl64.Vec2{-100, 0},
		},
		{
			name:    "left wall",
			pos:     mgl64.Vec2{5, 300},
			vel:     mgl64.Vec2{-100, 0},
			dt:      0.1,
			wantPos: mgl64.Vec2{0, 300},
			wantVel: mgl64.Vec2{100, 0},
		},
		{
			name:    "free flight",
			pos:     mgl64.Vec2{400, 300},
			vel:     mgl64.Vec2{100, -350},
			dt:      0.5,
			wantPos: mgl64.Vec2{450, 125},
			wantVel: mgl64.Vec2{100, -350},
		},
		{
			name:    "bottom is open",
			pos:     mgl64.Vec2{400, 590},
			vel:     mgl64.Vec2{0, 350},
			dt:      0.1,
			wantPos: mgl64.Vec2{400, 625},
			wantVel: mgl64.Vec2{0, 350},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBall(tc.pos, 12.5, tc.vel)
			b.Stuck = false

			got := b.Move(tc.dt, 800)
			if !got.ApproxEqual(tc.wantPos) {
				t.Errorf("position = %v, expected %v", got, tc.wantPos)
			}
			if !b.Velocity.ApproxEqual(tc.wantVel) {
				t.Errorf("velocity = %v, expected %v", b.Velocity, tc.wantVel)
			}
			if x := b.Position.X(); x < 0 || x > 800-2*b.Radius {
				t.Errorf("x = %v escaped [0, %v]", x, 800-2*b.Radius)
			}
		})
	}
}

func TestBallStuckDoesNotMove(t *testing.T) {
	b := NewBall(mgl64.Vec2{100, 100}, 12.5, mgl64.Vec2{100, -350})
	if !b.Stuck {
		t.Fatal("new ball should be stuck")
	}

	b.Move(1, 800)
	if !b.Position.ApproxEqual(mgl64.Vec2{100, 100}) {
		t.Errorf("stuck ball moved to %v", b.Position)
	}
}

func TestBallReset(t *testing.T) {
	b := NewBall(mgl64.Vec2{100, 100}, 12.5, mgl64.Vec2{100, -350})
	b.Stuck = false
	b.Sticky = true
	b.PassThrough = true

	b.Reset(mgl64.Vec2{10, 20}, mgl64.Vec2{1, -2})

	if !b.Position.ApproxEqual(mgl64.Vec2{10, 20}) || !b.Velocity.ApproxEqual(mgl64.Vec2{1, -2}) {
		t.Errorf("Reset placed ball at %v with velocity %v", b.Position, b.Velocity)
	}
	if !b.Stuck || b.Sticky || b.PassThrough {
		t.Errorf("flags after Reset: stuck=%v sticky=%v pass=%v", b.Stuck, b.Sticky, b.PassThrough)
	}
}

func TestBallCircle(t *testing.T) {
	b := NewBall(mgl64.Vec2{100, 200}, 12.5, mgl64.Vec2{})
	c := b.Circle()
	if !c.Center.ApproxEqual(mgl64.Vec2{112.5, 212.5}) || c.Radius != 12.5 {
		t.Errorf("Circle() = %+v", c)
	}
	if !b.Size.ApproxEqual(mgl64.Vec2{25, 25}) {
		t.Errorf("Size = %v, expected 25x25", b.Size)
	}
}
