package factory

import (
	"github.com/automoto/survivors/archetypes"
	"github.com/automoto/survivors/components"
	cfg "github.com/automoto/survivors/config"
	"github.com/yohamta/donburi"
)

func CreateCamera(w donburi.World) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.SetValue(camera, components.CameraData{Scale: cfg.C.Scale})
	return camera
}
