package components

import (
	"math/rand"
	"time"

	"github.com/yohamta/donburi"
)

type SpawnerData struct {
	GhostTimer time.Duration // time since the last ghost
	FireTimer  time.Duration // time since the last dagger
	Rand       *rand.Rand

	GhostsSpawned  int
	DaggersSpawned int
}

var Spawner = donburi.NewComponentType[SpawnerData]()
