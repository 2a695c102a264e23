package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SpaceData is the uniform grid used by the grid broad phase. Proxies maps
// each collider entity to its resolv object.
type SpaceData struct {
	Space   *resolv.Space
	Proxies map[donburi.Entity]*resolv.Object

	// Pixel extent covered by the grid cells, a whole number of cells.
	Width, Height float64
	CellSize      int
}

var Space = donburi.NewComponentType[SpaceData]()
