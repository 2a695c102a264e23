package systems

import (
	"testing"
	"time"

	"github.com/automoto/survivors/components"
	cfg "github.com/automoto/survivors/config"
	"github.com/automoto/survivors/systems/factory"
	"github.com/automoto/survivors/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/filter"
)

func count(w donburi.World, role tags.Role) int {
	return donburi.NewQuery(filter.Contains(role.Tag())).Count(w)
}

func TestSpawnerSpawnsGhostsOnInterval(t *testing.T) {
	w := newTestWorld(t)
	cfg.Player.FireInterval = 0
	factory.CreatePlayer(w, 160, 160)
	factory.CreateSpawner(w, 42)

	clock := components.MustSingleton(w, components.Clock)
	clock.Delta = 250 * time.Millisecond
	for i := 0; i < 3; i++ {
		UpdateSpawner(w)
	}
	assert.Zero(t, count(w, tags.RoleEnemy))

	UpdateSpawner(w)
	require.Equal(t, 1, count(w, tags.RoleEnemy))

	bounds := components.MustSingleton(w, components.Level).Bounds()
	ghost, _ := tags.Enemy.First(w)
	assert.True(t, components.WorldRect(ghost).Overlaps(bounds), "spawned inside the level")
}

func TestSpawnerRespectsMaxAlive(t *testing.T) {
	w := newTestWorld(t)
	cfg.Player.FireInterval = 0
	cfg.Ghost.MaxAlive = 2
	factory.CreatePlayer(w, 160, 160)
	factory.CreateSpawner(w, 1)

	components.MustSingleton(w, components.Clock).Delta = 5 * time.Second
	UpdateSpawner(w)

	assert.Equal(t, 2, count(w, tags.RoleEnemy))
}

func TestSpawnerFiresAtNearestEnemy(t *testing.T) {
	w := newTestWorld(t)
	cfg.Ghost.SpawnInterval = 0
	player := factory.CreatePlayer(w, 100, 100)
	factory.CreateSpawner(w, 1)

	components.MustSingleton(w, components.Clock).Delta = cfg.Player.FireInterval
	UpdateSpawner(w)
	assert.Zero(t, count(w, tags.RoleProjectile), "nothing to throw at")

	factory.CreateGhost(w, 100, 200)
	factory.CreateGhost(w, 60, 100)

	components.MustSingleton(w, components.Clock).Delta = 0
	UpdateSpawner(w)
	require.Equal(t, 1, count(w, tags.RoleProjectile), "held throw fires once a target appears")

	dagger, _ := tags.Projectile.First(w)
	v := components.Movement.Get(dagger).Velocity
	assert.InDelta(t, -cfg.Dagger.Speed, v.X, 1e-9)
	assert.InDelta(t, 0, v.Y, 1e-9)
	assert.Equal(t, player.Entity(), components.Owner.Get(dagger).Owner)
}

func TestCullProjectiles(t *testing.T) {
	w := newTestWorld(t)
	player := factory.CreatePlayer(w, 100, 100)
	inside := factory.CreateDagger(w, player, math.Vec2{X: 50, Y: 50}, math.Vec2{X: 1})
	outside := factory.CreateDagger(w, player, math.Vec2{X: -50, Y: 50}, math.Vec2{X: -1})

	CullProjectiles(w)

	assert.True(t, inside.Valid())
	assert.False(t, outside.Valid())
	assert.True(t, player.Valid())
}
