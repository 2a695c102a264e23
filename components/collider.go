package components

import (
	"github.com/automoto/survivors/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ColliderData is an axis-aligned box centered at position + Offset.
type ColliderData struct {
	Size   math.Vec2
	Offset math.Vec2

	// Collisions is rebuilt by every detection pass and is only valid until
	// the next one. Entries may refer to entities removed since.
	Collisions []donburi.Entity
}

// RectAt returns the collider's world rectangle for an entity at pos.
func (c *ColliderData) RectAt(pos PositionData) gamemath.Rect {
	center := math.Vec2{X: pos.X + c.Offset.X, Y: pos.Y + c.Offset.Y}
	return gamemath.RectFromCenter(center, c.Size)
}

var Collider = donburi.NewComponentType[ColliderData]()

// WorldRect returns the collider rectangle of an entry that has both a
// Position and a Collider.
func WorldRect(e *donburi.Entry) gamemath.Rect {
	return Collider.Get(e).RectAt(*Position.Get(e))
}
