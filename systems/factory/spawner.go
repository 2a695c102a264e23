package factory

import (
	"math/rand"

	"github.com/automoto/survivors/archetypes"
	"github.com/automoto/survivors/components"
	"github.com/yohamta/donburi"
)

func CreateSpawner(w donburi.World, seed int64) *donburi.Entry {
	spawner := archetypes.Spawner.Spawn(w)
	components.Spawner.SetValue(spawner, components.SpawnerData{
		Rand: rand.New(rand.NewSource(seed)),
	})
	return spawner
}
