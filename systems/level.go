package systems

import (
	"github.com/automoto/survivors/components"
	"github.com/automoto/survivors/shared/leveldata"
	"github.com/automoto/survivors/systems/factory"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
)

// UpdateLevelGeometry compacts the level's wall cells into rectangles and
// spawns one static wall per rectangle. It does its work once per level, on
// the first tick after wall cells are present.
func UpdateLevelGeometry(w donburi.World) {
	level := components.MustSingleton(w, components.Level)
	if level.WallsBuilt || len(level.Cells) == 0 {
		return
	}

	rects := leveldata.Compact(level.Cells)
	factory.CreateWalls(w, rects, level.TileSize)

	level = components.MustSingleton(w, components.Level)
	level.WallsBuilt = true
	level.WallCount = len(rects)

	log.Info().
		Str("level", level.Name).
		Int("cells", len(level.Cells)).
		Int("walls", len(rects)).
		Msg("level geometry compacted")
}
