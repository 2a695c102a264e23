package systems

import (
	"github.com/automoto/survivors/components"
	"github.com/automoto/survivors/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// ClearCollisionEvents empties the event queue before this tick's events are
// dispatched.
func ClearCollisionEvents(w donburi.World) {
	components.MustSingleton(w, components.CollisionEvents).Clear()
}

// NewDispatchSystem returns a system that turns the collisions of every
// entity carrying role into directed events, one per collision.
func NewDispatchSystem(role tags.Role) func(w donburi.World) {
	query := donburi.NewQuery(filter.Contains(role.Tag(), components.Collider))

	return func(w donburi.World) {
		queue := components.MustSingleton(w, components.CollisionEvents)
		query.Each(w, func(e *donburi.Entry) {
			for _, other := range components.Collider.Get(e).Collisions {
				queue.Push(components.CollisionEvent{Subject: e.Entity(), Other: other})
			}
		})
	}
}
