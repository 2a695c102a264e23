package systems

import (
	stdmath "math"

	"github.com/automoto/survivors/components"
	"github.com/automoto/survivors/config"
	"github.com/yohamta/donburi"
)

// UpdateCamera eases the camera towards the player, keeping the visible area
// inside the level when the level is larger than the view.
func UpdateCamera(w donburi.World) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	target, ok := playerPosition(w)
	if !ok {
		return // no player (could be dead), skip camera update
	}

	scale := camera.Scale
	if scale <= 0 {
		scale = 1
	}

	// Half of the view in world units.
	halfW := float64(config.C.Width) / scale / 2
	halfH := float64(config.C.Height) / scale / 2

	if levelEntry, ok := components.Level.First(w); ok {
		bounds := components.Level.Get(levelEntry).Bounds()
		target.X = clampCamera(target.X, bounds.MinX+halfW, bounds.MaxX-halfW)
		target.Y = clampCamera(target.Y, bounds.MinY+halfH, bounds.MaxY-halfH)
	}

	camera.Position.X += (target.X - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (target.Y - camera.Position.Y) * config.Camera.FollowSmoothing
}

// clampCamera centers the camera on levels smaller than the view.
func clampCamera(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	return stdmath.Max(lo, stdmath.Min(hi, v))
}
