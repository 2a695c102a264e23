package factory

import (
	"github.com/automoto/survivors/archetypes"
	"github.com/automoto/survivors/components"
	cfg "github.com/automoto/survivors/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func CreatePlayer(w donburi.World, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	components.Position.SetValue(player, components.PositionData{X: x, Y: y, Z: 1})
	components.Movement.SetValue(player, components.MovementData{})
	components.Collider.SetValue(player, components.ColliderData{
		Size: math.Vec2{X: cfg.Player.Size, Y: cfg.Player.Size},
	})
	components.Health.SetValue(player, components.HealthData{
		Amount:   cfg.Player.Health,
		Max:      cfg.Player.Health,
		Cooldown: cfg.Player.DamageCooldown,
	})

	return player
}
