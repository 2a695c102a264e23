package systems

import (
	"testing"

	"github.com/automoto/survivors/components"
	"github.com/automoto/survivors/shared/leveldata"
	"github.com/automoto/survivors/systems/factory"
	"github.com/automoto/survivors/tags"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
)

func countWalls(w donburi.World) int {
	n := 0
	tags.Wall.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func TestUpdateLevelGeometryBuildsOnce(t *testing.T) {
	w := newTestWorld(t)
	level := components.MustSingleton(w, components.Level)
	level.Cells = leveldata.Arena(level.Width, level.Height)

	UpdateLevelGeometry(w)
	assert.Equal(t, 4, countWalls(w))

	level = components.MustSingleton(w, components.Level)
	assert.True(t, level.WallsBuilt)
	assert.Equal(t, 4, level.WallCount)

	UpdateLevelGeometry(w)
	assert.Equal(t, 4, countWalls(w), "geometry is not rebuilt")
}

func TestUpdateLevelGeometryNoCells(t *testing.T) {
	w := newTestWorld(t)

	UpdateLevelGeometry(w)

	assert.Zero(t, countWalls(w))
	assert.False(t, components.MustSingleton(w, components.Level).WallsBuilt)
}

func TestUpdateLevelGeometryTrimsEdges(t *testing.T) {
	w := newTestWorld(t)
	components.MustSingleton(w, components.Level).Cells = []leveldata.WallCell{
		{X: 2, Y: 3, Edges: leveldata.EdgeTop},
	}

	UpdateLevelGeometry(w)

	wall, ok := tags.Wall.First(w)
	if assert.True(t, ok) {
		pos := components.Position.Get(wall)
		col := components.Collider.Get(wall)
		assert.Equal(t, 40.0, pos.X)
		assert.Equal(t, 56.0, pos.Y)
		assert.Equal(t, 16.0, col.Size.X)
		assert.Equal(t, 4.0, col.Size.Y)
		assert.Equal(t, 6.0, col.Offset.Y)
	}
}

func TestMissingLevelPanics(t *testing.T) {
	w := donburi.NewWorld()
	factory.CreateClock(w)
	assert.Panics(t, func() { UpdateLevelGeometry(w) })
}
