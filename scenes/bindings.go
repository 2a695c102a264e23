package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/features/math"
)

// Action is a logical key the window scenes react to.
type Action int

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionRestart
	ActionToggleDebug
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

// Bindings maps actions to keys.
var Bindings = [ActionCount][]ebiten.Key{
	ActionMoveLeft:    {ebiten.KeyLeft, ebiten.KeyA},
	ActionMoveRight:   {ebiten.KeyRight, ebiten.KeyD},
	ActionMoveUp:      {ebiten.KeyUp, ebiten.KeyW},
	ActionMoveDown:    {ebiten.KeyDown, ebiten.KeyS},
	ActionRestart:     {ebiten.KeyEnter, ebiten.KeyR},
	ActionToggleDebug: {ebiten.KeyF3},
	ActionQuit:        {ebiten.KeyEscape},
}

// Pressed reports whether any key of a is held down.
func Pressed(a Action) bool {
	for _, k := range Bindings[a] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// JustPressed reports whether any key of a went down this frame.
func JustPressed(a Action) bool {
	for _, k := range Bindings[a] {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// MoveDirection combines the movement keys. The result is not normalized;
// the player input system does that.
func MoveDirection() math.Vec2 {
	var dir math.Vec2
	if Pressed(ActionMoveLeft) {
		dir.X--
	}
	if Pressed(ActionMoveRight) {
		dir.X++
	}
	if Pressed(ActionMoveUp) {
		dir.Y--
	}
	if Pressed(ActionMoveDown) {
		dir.Y++
	}
	return dir
}
