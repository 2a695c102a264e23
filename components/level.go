package components

import (
	"github.com/automoto/survivors/shared/gamemath"
	"github.com/automoto/survivors/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Name     string
	Width    int // tiles
	Height   int // tiles
	TileSize int

	Cells  []leveldata.WallCell
	Spawns []leveldata.SpawnPoint

	// WallsBuilt is set once the wall cells have been turned into colliders.
	WallsBuilt bool
	WallCount  int
}

// Bounds returns the level extent in world pixels.
func (l *LevelData) Bounds() gamemath.Rect {
	return gamemath.Rect{
		MaxX: float64(l.Width * l.TileSize),
		MaxY: float64(l.Height * l.TileSize),
	}
}

var Level = donburi.NewComponentType[LevelData]()
