package components

import "github.com/yohamta/donburi"

// OwnerData links a child entity to the entity that spawned it. Children are
// despawned together with their owner.
type OwnerData struct {
	Owner donburi.Entity
}

var Owner = donburi.NewComponentType[OwnerData]()
