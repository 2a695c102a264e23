package systems

import (
	"github.com/automoto/survivors/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var movers = donburi.NewQuery(filter.Contains(components.Position, components.Movement))

// UpdateMovement integrates velocity into position. An active knockback
// suspends integration.
func UpdateMovement(w donburi.World) {
	secs := components.MustSingleton(w, components.Clock).Delta.Seconds()
	movers.Each(w, func(e *donburi.Entry) {
		movement := components.Movement.Get(e)
		if movement.KnockBack != nil {
			return
		}
		pos := components.Position.Get(e)
		pos.X += movement.Velocity.X * secs
		pos.Y += movement.Velocity.Y * secs
	})
}
