package systems

import (
	"github.com/automoto/survivors/components"
	"github.com/automoto/survivors/shared/gamemath"
	"github.com/automoto/survivors/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/filter"
)

var chasers = donburi.NewQuery(filter.Contains(components.Chase, components.Position, components.Movement))

// UpdateChase steers every chaser straight at the player. Without a player
// chasers stand still.
func UpdateChase(w donburi.World) {
	target, hasTarget := playerPosition(w)
	chasers.Each(w, func(e *donburi.Entry) {
		movement := components.Movement.Get(e)
		if !hasTarget {
			movement.Velocity = math.Vec2{}
			return
		}
		pos := components.Position.Get(e)
		dir := math.Vec2{X: target.X - pos.X, Y: target.Y - pos.Y}
		movement.Velocity = gamemath.DirectionSpeed(dir, components.Chase.Get(e).Speed)
	})
}

func playerPosition(w donburi.World) (math.Vec2, bool) {
	e, ok := tags.Player.First(w)
	if !ok || !e.HasComponent(components.Position) {
		return math.Vec2{}, false
	}
	return components.Position.Get(e).Vec(), true
}
