package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/automoto/survivors/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	assert.Equal(t, 50.0, Player.Speed)
	assert.Equal(t, 30, Player.Health)
	assert.Equal(t, 250*time.Millisecond, Player.DamageCooldown)
	assert.Equal(t, time.Second, Ghost.SpawnInterval)
	assert.Equal(t, BroadphaseAllPairs, Collision.Broadphase)
	assert.Equal(t, ContainmentSoft, Containment.Policy)
	assert.Equal(t, WallMargins{Top: 12, Bottom: 2, Left: 2, Right: 2}, Walls.Margins)
	assert.Equal(t, time.Second/60, TickDelta())
	assert.Equal(t, []tags.Role{tags.RolePlayer, tags.RoleEnemy, tags.RoleProjectile}, WatchedRoles())
}

func TestLoadMergesOverDefaults(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	err := Load([]byte(`
player:
  speed: 80
  damage_cooldown: 500ms
combat:
  knockback_pairs:
    - receiver: enemy
      other: projectile
collision:
  broadphase: grid
  cell_size: 64
walls:
  margins:
    top: 4
`))
	require.NoError(t, err)

	assert.Equal(t, 80.0, Player.Speed)
	assert.Equal(t, 500*time.Millisecond, Player.DamageCooldown)
	assert.Equal(t, 30, Player.Health, "untouched keys keep defaults")
	assert.Equal(t, []tags.RolePair{{Receiver: tags.RoleEnemy, Other: tags.RoleProjectile}}, Combat.KnockbackPairs)
	assert.Len(t, Combat.DamagePairs, 3)
	assert.Equal(t, BroadphaseGrid, Collision.Broadphase)
	assert.Equal(t, 64, Collision.CellSize)
	assert.Equal(t, 4.0, Walls.Margins.Top)
	assert.Equal(t, 2.0, Walls.Margins.Left)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown key", "player:\n  sped: 3\n"},
		{"unknown role", "combat:\n  damage_pairs:\n    - receiver: boss\n      other: player\n"},
		{"unknown broadphase", "collision:\n  broadphase: quadtree\n"},
		{"unknown policy", "containment:\n  policy: bounce\n"},
		{"push fraction", "containment:\n  push_fraction: 2\n"},
		{"tick rate", "simulation:\n  tick_rate: 0\n"},
		{"half pair", "containment:\n  pairs:\n    - receiver: player\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Reset()
			t.Cleanup(Reset)

			err := Load([]byte(tt.doc))
			require.Error(t, err)
			assert.Equal(t, 60, Simulation.TickRate)
			assert.Equal(t, ContainmentSoft, Containment.Policy)
			assert.Equal(t, BroadphaseAllPairs, Collision.Broadphase)
		})
	}
}

func TestLoadEmptyDocument(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	require.NoError(t, Load(nil))
	assert.Equal(t, 50.0, Player.Speed)
}

func TestLoadFile(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "survivors.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ghost:\n  speed: 45\n"), 0o644))

	require.NoError(t, LoadFile(path))
	assert.Equal(t, 45.0, Ghost.Speed)

	assert.Error(t, LoadFile(filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestWatcherReportsWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "survivors.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ghost:\n  speed: 45\n"), 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("ghost:\n  speed: 46\n"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, filepath.Base(path), filepath.Base(name))
	case <-time.After(2 * time.Second):
		t.Fatal("no event for config write")
	}
}
