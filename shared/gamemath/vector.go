package gamemath

import (
	stdmath "math"

	"github.com/yohamta/donburi/features/math"
)

// Length returns the euclidean length of v.
func Length(v math.Vec2) float64 {
	return stdmath.Hypot(v.X, v.Y)
}

// NormalizeOrZero returns v scaled to unit length, or the zero vector when v
// has no length.
func NormalizeOrZero(v math.Vec2) math.Vec2 {
	l := Length(v)
	if l == 0 {
		return math.Vec2{}
	}
	return math.Vec2{X: v.X / l, Y: v.Y / l}
}

// DirectionSpeed returns a velocity of the given speed along direction.
func DirectionSpeed(direction math.Vec2, speed float64) math.Vec2 {
	n := NormalizeOrZero(direction)
	return math.Vec2{X: n.X * speed, Y: n.Y * speed}
}
