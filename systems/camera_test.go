package systems

import (
	"testing"

	"github.com/automoto/survivors/components"
	cfg "github.com/automoto/survivors/config"
	"github.com/automoto/survivors/systems/factory"
	"github.com/stretchr/testify/assert"
)

func TestCameraFollowsPlayerWithinLevel(t *testing.T) {
	w := newTestWorld(t) // 320x320 px level
	cfg.C.Width, cfg.C.Height, cfg.C.Scale = 160, 120, 1
	cfg.Camera.FollowSmoothing = 1

	camera := factory.CreateCamera(w)
	player := factory.CreatePlayer(w, 160, 160)

	UpdateCamera(w)
	pos := components.Camera.Get(camera).Position
	assert.Equal(t, 160.0, pos.X)
	assert.Equal(t, 160.0, pos.Y)

	// Near the corner the view stops at the level edge.
	components.Position.Get(player).X = 10
	components.Position.Get(player).Y = 10
	UpdateCamera(w)
	pos = components.Camera.Get(camera).Position
	assert.Equal(t, 80.0, pos.X)
	assert.Equal(t, 60.0, pos.Y)
}

func TestCameraSmoothing(t *testing.T) {
	w := newTestWorld(t)
	cfg.C.Width, cfg.C.Height, cfg.C.Scale = 160, 120, 1
	cfg.Camera.FollowSmoothing = 0.5

	camera := factory.CreateCamera(w)
	components.Camera.Get(camera).Position.X = 100
	components.Camera.Get(camera).Position.Y = 100
	factory.CreatePlayer(w, 200, 100)

	UpdateCamera(w)
	assert.Equal(t, 150.0, components.Camera.Get(camera).Position.X)
}
