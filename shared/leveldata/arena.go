package leveldata

// Arena returns the wall cells of a closed rectangular room of the given size
// in tiles. Every wall cell is labelled with the edge that faces the room.
func Arena(width, height int) []WallCell {
	if width <= 0 || height <= 0 {
		return nil
	}

	var cells []WallCell
	for x := 0; x < width; x++ {
		cells = append(cells, WallCell{X: x, Y: 0, Edges: EdgeBottom})
		if height > 1 {
			cells = append(cells, WallCell{X: x, Y: height - 1, Edges: EdgeTop})
		}
	}
	for y := 1; y < height-1; y++ {
		cells = append(cells, WallCell{X: 0, Y: y, Edges: EdgeRight})
		if width > 1 {
			cells = append(cells, WallCell{X: width - 1, Y: y, Edges: EdgeLeft})
		}
	}
	return cells
}

// ArenaGrid wraps Arena into a complete level description.
func ArenaGrid(width, height, tileSize int) *WallGrid {
	return &WallGrid{
		Name:       "arena",
		Width:      width,
		Height:     height,
		TileWidth:  tileSize,
		TileHeight: tileSize,
		Cells:      Arena(width, height),
	}
}
