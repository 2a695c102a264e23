// Package leveldata provides TMX level parsing and wall geometry compaction.
// It has no dependencies on ebitengine, donburi or resolv.
package leveldata

import "strings"

// EdgeSet is a set of wall edge labels. An edge label marks a side of a wall
// cell that faces open, walkable space.
type EdgeSet uint8

const (
	EdgeTop EdgeSet = 1 << iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

var edgeNames = []struct {
	edge EdgeSet
	name string
}{
	{EdgeTop, "top"},
	{EdgeBottom, "bottom"},
	{EdgeLeft, "left"},
	{EdgeRight, "right"},
}

// Has reports whether every edge in e is present in s.
func (s EdgeSet) Has(e EdgeSet) bool {
	return s&e == e
}

func (s EdgeSet) String() string {
	var names []string
	for _, en := range edgeNames {
		if s.Has(en.edge) {
			names = append(names, en.name)
		}
	}
	return strings.Join(names, ",")
}

// ParseEdge maps a single label ("Top", "left", ...) to its edge.
func ParseEdge(label string) (EdgeSet, bool) {
	label = strings.ToLower(strings.TrimSpace(label))
	for _, en := range edgeNames {
		if en.name == label {
			return en.edge, true
		}
	}
	return 0, false
}

// ParseEdges parses a comma separated label list. Unknown labels are ignored.
func ParseEdges(labels string) EdgeSet {
	var set EdgeSet
	for _, label := range strings.Split(labels, ",") {
		if e, ok := ParseEdge(label); ok {
			set |= e
		}
	}
	return set
}

// WallCell is one wall-tagged grid cell. Y grows downward.
type WallCell struct {
	X, Y  int
	Edges EdgeSet
}

// WallRect is a merged block of wall cells. Bounds are inclusive cell
// indices.
type WallRect struct {
	Left, Right int
	Top, Bottom int
	Edges       EdgeSet
}

func (r WallRect) Width() int  { return r.Right - r.Left + 1 }
func (r WallRect) Height() int { return r.Bottom - r.Top + 1 }

// Contains reports whether the cell (x, y) lies inside the rectangle.
func (r WallRect) Contains(x, y int) bool {
	return x >= r.Left && x <= r.Right && y >= r.Top && y <= r.Bottom
}

// WallGrid holds the collision-relevant data of one level.
type WallGrid struct {
	Name         string
	Width        int // tiles
	Height       int // tiles
	TileWidth    int
	TileHeight   int
	Cells        []WallCell
	PlayerSpawns []SpawnPoint
}

// SpawnPoint represents a player spawn location in world pixels.
type SpawnPoint struct {
	X, Y  float64
	Index int
}
