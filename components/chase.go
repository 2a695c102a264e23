package components

import "github.com/yohamta/donburi"

// ChaseData steers an entity straight at the player.
type ChaseData struct {
	Speed float64
}

var Chase = donburi.NewComponentType[ChaseData]()
