package factory

import (
	"github.com/automoto/survivors/archetypes"
	"github.com/automoto/survivors/components"
	cfg "github.com/automoto/survivors/config"
	"github.com/automoto/survivors/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateDagger spawns a projectile flying along direction. The dagger is owned
// by its thrower and is removed together with it.
func CreateDagger(w donburi.World, owner *donburi.Entry, from, direction math.Vec2) *donburi.Entry {
	dagger := archetypes.Dagger.Spawn(w)

	components.Position.SetValue(dagger, components.PositionData{X: from.X, Y: from.Y, Z: 2})
	components.Movement.SetValue(dagger, components.MovementData{
		Velocity: gamemath.DirectionSpeed(direction, cfg.Dagger.Speed),
	})
	components.Collider.SetValue(dagger, components.ColliderData{
		Size: math.Vec2{X: cfg.Dagger.Width, Y: cfg.Dagger.Height},
	})
	components.Health.SetValue(dagger, components.HealthData{
		Amount: cfg.Dagger.Health,
		Max:    cfg.Dagger.Health,
	})
	components.CollisionDamage.SetValue(dagger, components.CollisionDamageData{Amount: cfg.Dagger.Damage})

	if owner != nil && owner.Valid() {
		donburi.Add(dagger, components.Owner, &components.OwnerData{Owner: owner.Entity()})
	}

	return dagger
}
