package systems

import (
	"testing"

	"github.com/automoto/survivors/components"
	"github.com/automoto/survivors/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/features/math"
)

func TestPlayerInputAndMovement(t *testing.T) {
	w := newTestWorld(t)
	player := factory.CreatePlayer(w, 100, 100)

	components.MustSingleton(w, components.Input).Direction = math.Vec2{X: 3, Y: 4}
	components.MustSingleton(w, components.Clock).Delta = testTick

	UpdatePlayerInput(w)
	v := components.Movement.Get(player).Velocity
	assert.InDelta(t, 30, v.X, 1e-9)
	assert.InDelta(t, 40, v.Y, 1e-9)

	UpdateMovement(w)
	pos := components.Position.Get(player)
	assert.InDelta(t, 100.3, pos.X, 1e-9)
	assert.InDelta(t, 100.4, pos.Y, 1e-9)

	components.MustSingleton(w, components.Input).Direction = math.Vec2{}
	UpdatePlayerInput(w)
	assert.Equal(t, math.Vec2{}, components.Movement.Get(player).Velocity)
}

func TestChaseSteersAtPlayer(t *testing.T) {
	w := newTestWorld(t)
	factory.CreatePlayer(w, 100, 100)
	ghost := factory.CreateGhost(w, 100, 40)

	UpdateChase(w)

	v := components.Movement.Get(ghost).Velocity
	assert.InDelta(t, 0, v.X, 1e-9)
	assert.InDelta(t, 30, v.Y, 1e-9)
}

func TestChaseWithoutPlayer(t *testing.T) {
	w := newTestWorld(t)
	ghost := factory.CreateGhost(w, 100, 40)
	components.Movement.Get(ghost).Velocity = math.Vec2{X: 9}

	UpdateChase(w)

	assert.Equal(t, math.Vec2{}, components.Movement.Get(ghost).Velocity)
}
