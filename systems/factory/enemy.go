package factory

import (
	"github.com/automoto/survivors/archetypes"
	"github.com/automoto/survivors/components"
	cfg "github.com/automoto/survivors/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateGhost spawns a chasing enemy that hurts on contact.
func CreateGhost(w donburi.World, x, y float64) *donburi.Entry {
	ghost := archetypes.Ghost.Spawn(w)

	components.Position.SetValue(ghost, components.PositionData{X: x, Y: y})
	components.Movement.SetValue(ghost, components.MovementData{})
	components.Collider.SetValue(ghost, components.ColliderData{
		Size: math.Vec2{X: cfg.Ghost.Size, Y: cfg.Ghost.Size},
	})
	components.Health.SetValue(ghost, components.HealthData{
		Amount:   cfg.Ghost.Health,
		Max:      cfg.Ghost.Health,
		Cooldown: cfg.Ghost.DamageCooldown,
	})
	components.CollisionDamage.SetValue(ghost, components.CollisionDamageData{Amount: cfg.Ghost.Damage})
	components.Chase.SetValue(ghost, components.ChaseData{Speed: cfg.Ghost.Speed})

	return ghost
}
