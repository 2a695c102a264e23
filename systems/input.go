package systems

import (
	"github.com/automoto/survivors/components"
	cfg "github.com/automoto/survivors/config"
	"github.com/automoto/survivors/shared/gamemath"
	"github.com/automoto/survivors/tags"
	"github.com/yohamta/donburi"
)

// UpdatePlayerInput turns the input direction into player velocity.
func UpdatePlayerInput(w donburi.World) {
	input := components.MustSingleton(w, components.Input)
	tags.Player.Each(w, func(e *donburi.Entry) {
		if !e.HasComponent(components.Movement) {
			return
		}
		components.Movement.Get(e).Velocity = gamemath.DirectionSpeed(input.Direction, cfg.Player.Speed)
	})
}
