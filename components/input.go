package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// InputData is the desired player direction. Any length is accepted; it is
// normalized when turned into velocity.
type InputData struct {
	Direction math.Vec2
}

var Input = donburi.NewComponentType[InputData]()
