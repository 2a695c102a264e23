package factory

import (
	"github.com/automoto/survivors/archetypes"
	"github.com/yohamta/donburi"
)

// CreateClock spawns the world state entity: the clock, the collision event
// queue and the input direction.
func CreateClock(w donburi.World) *donburi.Entry {
	return archetypes.Clock.Spawn(w)
}
