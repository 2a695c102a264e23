package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PositionData is an entity's world-space translation. Z only orders
// drawing and never takes part in collision.
type PositionData struct {
	X, Y float64
	Z    float64
}

func (p PositionData) Vec() math.Vec2 {
	return math.Vec2{X: p.X, Y: p.Y}
}

func (p *PositionData) Translate(d math.Vec2) {
	p.X += d.X
	p.Y += d.Y
}

var Position = donburi.NewComponentType[PositionData]()
