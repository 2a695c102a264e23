package factory

import (
	"github.com/automoto/survivors/archetypes"
	"github.com/automoto/survivors/components"
	cfg "github.com/automoto/survivors/config"
	"github.com/automoto/survivors/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// WallCollider turns a compacted wall rectangle into the wall entity's
// position and collider. Each labelled edge is pulled inward by its margin so
// that sprites can overlap the wall face, and no side shrinks below minSize.
func WallCollider(r leveldata.WallRect, tileSize float64, m cfg.WallMargins, minSize float64) (center math.Vec2, collider components.ColliderData) {
	width := float64(r.Width()) * tileSize
	height := float64(r.Height()) * tileSize
	center = math.Vec2{
		X: float64(r.Left)*tileSize + width/2,
		Y: float64(r.Top)*tileSize + height/2,
	}

	var offset math.Vec2
	if r.Edges.Has(leveldata.EdgeLeft) {
		width -= m.Left
		offset.X += m.Left / 2
	}
	if r.Edges.Has(leveldata.EdgeRight) {
		width -= m.Right
		offset.X -= m.Right / 2
	}
	if r.Edges.Has(leveldata.EdgeTop) {
		height -= m.Top
		offset.Y += m.Top / 2
	}
	if r.Edges.Has(leveldata.EdgeBottom) {
		height -= m.Bottom
		offset.Y -= m.Bottom / 2
	}

	collider = components.ColliderData{
		Size:   math.Vec2{X: max(width, minSize), Y: max(height, minSize)},
		Offset: offset,
	}
	return center, collider
}

func CreateWall(w donburi.World, center math.Vec2, collider components.ColliderData) *donburi.Entry {
	wall := archetypes.Wall.Spawn(w)
	components.Position.SetValue(wall, components.PositionData{X: center.X, Y: center.Y})
	components.Collider.SetValue(wall, collider)
	return wall
}

// CreateWalls spawns one static wall per compacted rectangle using the
// configured margins.
func CreateWalls(w donburi.World, rects []leveldata.WallRect, tileSize int) []*donburi.Entry {
	walls := make([]*donburi.Entry, 0, len(rects))
	for _, r := range rects {
		center, collider := WallCollider(r, float64(tileSize), cfg.Walls.Margins, cfg.Walls.MinSize)
		walls = append(walls, CreateWall(w, center, collider))
	}
	return walls
}
