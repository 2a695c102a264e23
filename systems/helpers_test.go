package systems

import (
	"testing"
	"time"

	"github.com/automoto/survivors/components"
	cfg "github.com/automoto/survivors/config"
	"github.com/automoto/survivors/schedule"
	"github.com/automoto/survivors/shared/leveldata"
	"github.com/automoto/survivors/systems/factory"
	"github.com/automoto/survivors/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

const testTick = 10 * time.Millisecond

// newTestWorld returns a world with the clock, event queue, input and an
// empty 20x20 level of 16px tiles.
func newTestWorld(t *testing.T) donburi.World {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	w := donburi.NewWorld()
	factory.CreateClock(w)
	factory.CreateLevel(w, &leveldata.WallGrid{
		Name:       "test",
		Width:      20,
		Height:     20,
		TileWidth:  16,
		TileHeight: 16,
	})
	return w
}

// spawnBox creates a bare collider with the given role tag.
func spawnBox(w donburi.World, role tags.Role, x, y, size float64) *donburi.Entry {
	e := w.Entry(w.Create(role.Tag(), components.Position, components.Collider))
	components.Position.SetValue(e, components.PositionData{X: x, Y: y})
	components.Collider.SetValue(e, components.ColliderData{Size: math.Vec2{X: size, Y: size}})
	return e
}

func collisionsOf(e *donburi.Entry) []donburi.Entity {
	return components.Collider.Get(e).Collisions
}

func events(w donburi.World) []components.CollisionEvent {
	return components.MustSingleton(w, components.CollisionEvents).Events
}

// combatScheduler runs detection and combat only, so entities stay where
// the test put them unless combat moves them.
func combatScheduler(w donburi.World) *schedule.Scheduler {
	s := schedule.NewScheduler(w)
	s.AddSystem(schedule.EntityUpdate, UpdateKnockback)
	s.AddSystem(schedule.EntityUpdate, UpdateDamageCooldowns)
	s.AddSystem(schedule.CollisionDetection, UpdateCollisions)
	RegisterCombat(s)
	return s
}
