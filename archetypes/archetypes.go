package archetypes

import (
	"github.com/automoto/survivors/components"
	"github.com/automoto/survivors/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Position,
		components.Movement,
		components.Collider,
		components.Health,
	)
	Ghost = newArchetype(
		tags.Enemy,
		components.Position,
		components.Movement,
		components.Collider,
		components.Health,
		components.CollisionDamage,
		components.Chase,
	)
	Dagger = newArchetype(
		tags.Projectile,
		components.Position,
		components.Movement,
		components.Collider,
		components.Health,
		components.CollisionDamage,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Position,
		components.Collider,
	)
	Level = newArchetype(
		components.Level,
	)
	Clock = newArchetype(
		components.Clock,
		components.CollisionEvents,
		components.Input,
	)
	Spawner = newArchetype(
		components.Spawner,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
