package gamemath

import "github.com/yohamta/donburi/features/math"

// Rect is an axis-aligned rectangle in world space (y grows downward).
// Edges are treated as open: two rectangles that only share an edge do not
// intersect.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// RectFromCenter builds the rectangle of the given size centered at center.
func RectFromCenter(center, size math.Vec2) Rect {
	hw, hh := size.X/2, size.Y/2
	return Rect{
		MinX: center.X - hw,
		MinY: center.Y - hh,
		MaxX: center.X + hw,
		MaxY: center.Y + hh,
	}
}

func (r Rect) Width() float64  { return r.MaxX - r.MinX }
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

func (r Rect) Center() math.Vec2 {
	return math.Vec2{X: (r.MinX + r.MaxX) / 2, Y: (r.MinY + r.MaxY) / 2}
}

// IsEmpty reports whether the rectangle has zero (or negative) area.
func (r Rect) IsEmpty() bool {
	return r.MaxX <= r.MinX || r.MaxY <= r.MinY
}

// Intersect returns the overlap of r and o. The result is empty when the
// rectangles are disjoint or only touch.
func (r Rect) Intersect(o Rect) Rect {
	return Rect{
		MinX: max(r.MinX, o.MinX),
		MinY: max(r.MinY, o.MinY),
		MaxX: min(r.MaxX, o.MaxX),
		MaxY: min(r.MaxY, o.MaxY),
	}
}

// Overlaps reports whether r and o share a region of non-zero area.
func (r Rect) Overlaps(o Rect) bool {
	return r.MinX < o.MaxX && o.MinX < r.MaxX && r.MinY < o.MaxY && o.MinY < r.MaxY
}
