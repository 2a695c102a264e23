// Package assets embeds the bundled Tiled levels.
package assets

import (
	"embed"

	cfg "github.com/automoto/survivors/config"
	"github.com/automoto/survivors/shared/leveldata"
	"github.com/rotisserie/eris"
)

//go:embed all:levels
var assetFS embed.FS

// LevelDir is the directory of the bundled levels inside the embedded FS.
const LevelDir = "levels"

func loadOptions() leveldata.LoadOptions {
	return leveldata.LoadOptions{
		LayerName:    cfg.Walls.LayerName,
		EdgeProperty: cfg.Walls.EdgeProperty,
	}
}

// LoadLevels loads every bundled level, keyed by file stem.
func LoadLevels() (map[string]*leveldata.WallGrid, []string, error) {
	return leveldata.LoadAllLevels(assetFS, LevelDir, loadOptions())
}

// LoadLevel loads one bundled level by name. The name "arena" always
// resolves to the generated outer-wall room sized by the map config.
func LoadLevel(name string) (*leveldata.WallGrid, error) {
	if name == "arena" {
		return leveldata.ArenaGrid(cfg.Map.Width, cfg.Map.Height, cfg.Map.TileSize), nil
	}

	levels, names, err := LoadLevels()
	if err != nil {
		return nil, err
	}
	grid, ok := levels[name]
	if !ok {
		return nil, eris.Errorf("unknown level %q (available: arena, %v)", name, names)
	}
	return grid, nil
}

// LevelNames lists the bundled level names plus the generated arena.
func LevelNames() ([]string, error) {
	_, names, err := LoadLevels()
	if err != nil {
		return nil, err
	}
	return append([]string{"arena"}, names...), nil
}
