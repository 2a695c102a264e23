package systems

import (
	"testing"

	"github.com/automoto/survivors/components"
	cfg "github.com/automoto/survivors/config"
	"github.com/automoto/survivors/tags"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
)

var playerFromWall = tags.RolePair{Receiver: tags.RolePlayer, Other: tags.RoleWall}

func containmentTick(w donburi.World) {
	UpdateCollisions(w)
	ClearCollisionEvents(w)
	NewDispatchSystem(tags.RolePlayer)(w)
	NewContainmentSystem(playerFromWall)(w)
}

func TestContainmentSoft(t *testing.T) {
	w := newTestWorld(t)

	// Wall [100,132]x[100,132]; player [95,105]x[110,120].
	spawnBox(w, tags.RoleWall, 116, 116, 32)
	player := spawnBox(w, tags.RolePlayer, 100, 115, 10)

	containmentTick(w)

	// Overlap [100,105]x[110,120] centered at (102.5, 115); half of the
	// vector to the player's center (100, 115) is (-1.25, 0).
	pos := components.Position.Get(player)
	assert.InDelta(t, 98.75, pos.X, 1e-9)
	assert.InDelta(t, 115, pos.Y, 1e-9)
}

func TestContainmentSoftConverges(t *testing.T) {
	w := newTestWorld(t)
	wall := spawnBox(w, tags.RoleWall, 116, 116, 32)
	player := spawnBox(w, tags.RolePlayer, 100, 115, 10)

	for i := 0; i < 40; i++ {
		containmentTick(w)
	}

	overlap := components.WorldRect(player).Intersect(components.WorldRect(wall))
	assert.Less(t, overlap.Width(), 0.01)
}

func TestContainmentMinAxis(t *testing.T) {
	w := newTestWorld(t)
	cfg.Containment.Policy = cfg.ContainmentMinAxis

	wall := spawnBox(w, tags.RoleWall, 116, 116, 32)
	player := spawnBox(w, tags.RolePlayer, 100, 115, 10)

	containmentTick(w)

	pos := components.Position.Get(player)
	assert.InDelta(t, 95, pos.X, 1e-9)
	assert.InDelta(t, 115, pos.Y, 1e-9)
	assert.False(t, components.WorldRect(player).Overlaps(components.WorldRect(wall)))
}

func TestContainmentMinAxisVertical(t *testing.T) {
	w := newTestWorld(t)
	cfg.Containment.Policy = cfg.ContainmentMinAxis

	spawnBox(w, tags.RoleWall, 116, 116, 32)
	player := spawnBox(w, tags.RolePlayer, 116, 136, 10) // [131,141] below the wall

	containmentTick(w)

	assert.InDelta(t, 137, components.Position.Get(player).Y, 1e-9)
}

func TestContainmentSkipsStaleEvents(t *testing.T) {
	w := newTestWorld(t)
	spawnBox(w, tags.RoleWall, 116, 116, 32)
	player := spawnBox(w, tags.RolePlayer, 100, 115, 10)

	UpdateCollisions(w)
	ClearCollisionEvents(w)
	NewDispatchSystem(tags.RolePlayer)(w)

	// The player left the wall after detection.
	components.Position.Get(player).X = 20
	NewContainmentSystem(playerFromWall)(w)

	assert.Equal(t, 20.0, components.Position.Get(player).X)
}
