package leveldata

import (
	"cmp"
	"slices"
)

type span struct {
	left, right int
}

type plate struct {
	span
	edges EdgeSet
}

// Compact merges wall cells into axis-aligned rectangles. Each row is first
// reduced to horizontal plates of consecutive cells; a plate then extends the
// rectangle opened on the previous row only when both cover exactly the same
// span. Rectangles are returned ordered by (Top, Left).
func Compact(cells []WallCell) []WallRect {
	if len(cells) == 0 {
		return nil
	}

	rows := make(map[int][]WallCell)
	minY, maxY := cells[0].Y, cells[0].Y
	for _, c := range cells {
		rows[c.Y] = append(rows[c.Y], c)
		minY = min(minY, c.Y)
		maxY = max(maxY, c.Y)
	}

	var rects []WallRect
	open := make(map[span]*WallRect)

	// maxY+1 is an empty sentinel row that closes everything still open.
	for y := minY; y <= maxY+1; y++ {
		plates := platesOf(rows[y])
		next := make(map[span]*WallRect, len(plates))

		for _, p := range plates {
			if r, ok := open[p.span]; ok {
				r.Bottom = y
				r.Edges |= p.edges
				next[p.span] = r
				delete(open, p.span)
				continue
			}
			next[p.span] = &WallRect{
				Left:   p.left,
				Right:  p.right,
				Top:    y,
				Bottom: y,
				Edges:  p.edges,
			}
		}

		for _, r := range open {
			rects = append(rects, *r)
		}
		open = next
	}

	slices.SortFunc(rects, func(a, b WallRect) int {
		if c := cmp.Compare(a.Top, b.Top); c != 0 {
			return c
		}
		return cmp.Compare(a.Left, b.Left)
	})
	return rects
}

// platesOf coalesces the cells of one row into runs of consecutive columns.
func platesOf(row []WallCell) []plate {
	if len(row) == 0 {
		return nil
	}

	sorted := slices.Clone(row)
	slices.SortFunc(sorted, func(a, b WallCell) int { return cmp.Compare(a.X, b.X) })

	plates := []plate{{span: span{sorted[0].X, sorted[0].X}, edges: sorted[0].Edges}}
	for _, c := range sorted[1:] {
		cur := &plates[len(plates)-1]
		if c.X <= cur.right+1 {
			cur.right = max(cur.right, c.X)
			cur.edges |= c.Edges
			continue
		}
		plates = append(plates, plate{span: span{c.X, c.X}, edges: c.Edges})
	}
	return plates
}
