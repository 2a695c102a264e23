package factory

import (
	"github.com/automoto/survivors/archetypes"
	"github.com/automoto/survivors/components"
	"github.com/automoto/survivors/shared/leveldata"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
)

// CreateLevel stores a loaded level. Walls are built from its cells by the
// level geometry system on the next tick.
func CreateLevel(w donburi.World, grid *leveldata.WallGrid) *donburi.Entry {
	level := archetypes.Level.Spawn(w)

	tileSize := grid.TileWidth
	if grid.TileHeight > tileSize {
		tileSize = grid.TileHeight
	}

	components.Level.SetValue(level, components.LevelData{
		Name:     grid.Name,
		Width:    grid.Width,
		Height:   grid.Height,
		TileSize: tileSize,
		Cells:    grid.Cells,
		Spawns:   grid.PlayerSpawns,
	})

	log.Info().
		Str("level", grid.Name).
		Int("width", grid.Width).
		Int("height", grid.Height).
		Int("wall_cells", len(grid.Cells)).
		Msg("level created")

	return level
}

// PlayerStart returns the first spawn point of the level, or its center.
func PlayerStart(level *components.LevelData) (x, y float64) {
	if len(level.Spawns) > 0 {
		return level.Spawns[0].X, level.Spawns[0].Y
	}
	return level.Bounds().Center().X, level.Bounds().Center().Y
}
