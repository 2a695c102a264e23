package components

import "github.com/yohamta/donburi"

// CollisionDamageData is the damage dealt on contact. It does not change
// after spawn.
type CollisionDamageData struct {
	Amount int
}

var CollisionDamage = donburi.NewComponentType[CollisionDamageData]()
