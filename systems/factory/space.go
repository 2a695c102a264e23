package factory

import (
	"github.com/automoto/survivors/archetypes"
	"github.com/automoto/survivors/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateSpace spawns the uniform grid used by the grid broad phase. Width and
// height are in pixels and are rounded up to whole cells, since resolv only
// allocates cells that fit entirely.
func CreateSpace(w donburi.World, width, height, cellSize int) *donburi.Entry {
	if cellSize <= 0 {
		panic("collision space needs a positive cell size")
	}
	width = (width + cellSize - 1) / cellSize * cellSize
	height = (height + cellSize - 1) / cellSize * cellSize

	space := archetypes.Space.Spawn(w)
	components.Space.SetValue(space, components.SpaceData{
		Space:    resolv.NewSpace(width, height, cellSize, cellSize),
		Proxies:  make(map[donburi.Entity]*resolv.Object),
		Width:    float64(width),
		Height:   float64(height),
		CellSize: cellSize,
	})
	return space
}
