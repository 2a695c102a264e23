package leveldata

import (
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
	"github.com/rotisserie/eris"
)

// LoadOptions selects where wall data lives inside a TMX map.
type LoadOptions struct {
	// LayerName is the tile layer whose non-empty tiles are walls.
	LayerName string
	// EdgeProperty is the tileset tile property holding edge labels,
	// e.g. "top,left".
	EdgeProperty string
}

// LoadWallGrid parses a TMX file and returns its wall cells and player spawn
// points. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadWallGrid(fsys fs.FS, tmxPath string, opts LoadOptions) (*WallGrid, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, eris.Wrapf(err, "load TMX %s", tmxPath)
	}

	grid := &WallGrid{
		Name:       strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Width:      levelMap.Width,
		Height:     levelMap.Height,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
	}

	found := false
	for _, layer := range levelMap.Layers {
		if layer.Name != opts.LayerName {
			continue
		}
		found = true
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				var edges EdgeSet
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					edges = ParseEdges(tilesetTile.Properties.GetString(opts.EdgeProperty))
				}

				grid.Cells = append(grid.Cells, WallCell{X: x, Y: y, Edges: edges})
			}
		}
		break
	}
	if !found {
		return nil, eris.Errorf("TMX %s has no tile layer %q", tmxPath, opts.LayerName)
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != "PlayerSpawn" {
			continue
		}
		for _, o := range og.Objects {
			grid.PlayerSpawns = append(grid.PlayerSpawns, SpawnPoint{
				X:     o.X,
				Y:     o.Y,
				Index: o.Properties.GetInt("spawnIndex"),
			})
		}
	}

	sort.Slice(grid.PlayerSpawns, func(i, j int) bool {
		return grid.PlayerSpawns[i].Index < grid.PlayerSpawns[j].Index
	})

	return grid, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads each
// one and returns them keyed by file stem plus the sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string, opts LoadOptions) (map[string]*WallGrid, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, eris.Wrapf(err, "glob %s", pattern)
	}
	if len(matches) == 0 {
		return nil, nil, eris.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*WallGrid, len(matches))
	names := make([]string, 0, len(matches))

	for _, p := range matches {
		grid, err := LoadWallGrid(fsys, p, opts)
		if err != nil {
			return nil, nil, eris.Wrapf(err, "load %s", p)
		}
		levels[grid.Name] = grid
		names = append(names, grid.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
