package core

import "github.com/go-gl/mathgl/mgl64"

// Direction is the side of a box a circle struck, in compass order.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// String returns the name of the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Horizontal reports whether the direction lies on the x axis.
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

// compass holds the unit vector of each Direction, indexed by its value.
var compass = [...]mgl64.Vec2{
	DirUp:    {0, 1},
	DirRight: {1, 0},
	DirDown:  {0, -1},
	DirLeft:  {-1, 0},
}

// Collision is the result of a circle-vs-box test.
type Collision struct {
	Hit         bool
	Dir         Direction
	Penetration mgl64.Vec2 // closest point on the box minus circle center
}

// CheckAABB reports whether two boxes overlap on both axes.
// Bounds are inclusive: touching boxes collide.
func CheckAABB(a, b AABB) bool {
	aMax, bMax := a.Max(), b.Max()
	collisionX := aMax[0] >= b.Position[0] && bMax[0] >= a.Position[0]
	collisionY := aMax[1] >= b.Position[1] && bMax[1] >= a.Position[1]
	return collisionX && collisionY
}

// CheckCircleAABB tests a circle against a box.
// The vector from the box center to the circle center is clamped into the
// box's half extents to find the closest point on the box; the circle hits
// when that point lies within radius of its center (distance == radius hits).
func CheckCircleAABB(c Circle, box AABB) Collision {
	half := box.HalfExtents()
	boxCenter := box.Center()

	diff := c.Center.Sub(boxCenter)
	clamped := ClampVec(diff, half.Mul(-1), half)
	closest := boxCenter.Add(clamped)

	diff = closest.Sub(c.Center)
	if diff.Len() <= c.Radius {
		return Collision{Hit: true, Dir: VectorDirection(diff), Penetration: diff}
	}
	return Collision{Hit: false, Dir: DirUp}
}

// VectorDirection classifies v by the compass direction with the largest dot
// product against its unit vector. Directions are checked Up, Right, Down,
// Left and only a strictly greater dot replaces the current best, so ties go
// to the earlier one. The zero vector yields DirUp.
func VectorDirection(v mgl64.Vec2) Direction {
	n := Normalize(v)
	best := DirUp
	bestDot := 0.0
	for i, dir := range compass {
		dot := n.Dot(dir)
		if dot > bestDot {
			bestDot = dot
			best = Direction(i)
		}
	}
	return best
}
