package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="2">
 <tileset firstgid="1" name="walls" tilewidth="16" tileheight="16" tilecount="3" columns="3">
  <image source="walls.png" width="48" height="16"/>
  <tile id="1">
   <properties>
    <property name="edges" value="bottom"/>
   </properties>
  </tile>
  <tile id="2">
   <properties>
    <property name="edges" value="top,left"/>
   </properties>
  </tile>
 </tileset>
 <layer id="1" name="walls" width="4" height="3">
  <data encoding="csv">
2,2,2,1,
0,0,0,1,
3,0,0,0
</data>
 </layer>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="1" x="32" y="24">
   <properties>
    <property name="spawnIndex" type="int" value="0"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

var testOptions = LoadOptions{LayerName: "walls", EdgeProperty: "edges"}

func TestLoadWallGrid(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/test.tmx": &fstest.MapFile{Data: []byte(testTMX)},
	}

	grid, err := LoadWallGrid(fsys, "levels/test.tmx", testOptions)
	require.NoError(t, err)

	assert.Equal(t, "test", grid.Name)
	assert.Equal(t, 4, grid.Width)
	assert.Equal(t, 3, grid.Height)
	assert.Equal(t, 16, grid.TileWidth)
	assert.Equal(t, 16, grid.TileHeight)

	assert.ElementsMatch(t, []WallCell{
		{X: 0, Y: 0, Edges: EdgeBottom},
		{X: 1, Y: 0, Edges: EdgeBottom},
		{X: 2, Y: 0, Edges: EdgeBottom},
		{X: 3, Y: 0},
		{X: 3, Y: 1},
		{X: 0, Y: 2, Edges: EdgeTop | EdgeLeft},
	}, grid.Cells)

	require.Len(t, grid.PlayerSpawns, 1)
	assert.Equal(t, SpawnPoint{X: 32, Y: 24, Index: 0}, grid.PlayerSpawns[0])

	assert.Len(t, Compact(grid.Cells), 3)
}

func TestLoadWallGridMissingLayer(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/test.tmx": &fstest.MapFile{Data: []byte(testTMX)},
	}

	_, err := LoadWallGrid(fsys, "levels/test.tmx", LoadOptions{LayerName: "collision", EdgeProperty: "edges"})
	assert.Error(t, err)
}

func TestLoadAllLevels(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx": &fstest.MapFile{Data: []byte(testTMX)},
		"levels/a.tmx": &fstest.MapFile{Data: []byte(testTMX)},
	}

	levels, names, err := LoadAllLevels(fsys, "levels", testOptions)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, names)
	assert.Contains(t, levels, "a")
	assert.Contains(t, levels, "b")

	_, _, err = LoadAllLevels(fstest.MapFS{}, "levels", testOptions)
	assert.Error(t, err)
}
