package systems

import (
	"github.com/automoto/survivors/components"
	cfg "github.com/automoto/survivors/config"
	"github.com/automoto/survivors/shared/gamemath"
	"github.com/automoto/survivors/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// NewContainmentSystem returns a system that pushes receivers out of the
// static entities they overlap. Rectangles are recomputed from current
// positions, so an earlier correction in the same tick is taken into account.
func NewContainmentSystem(pair tags.RolePair) func(w donburi.World) {
	return func(w donburi.World) {
		queue := components.MustSingleton(w, components.CollisionEvents)
		for _, ev := range queue.Events {
			subject, other, ok := eventEntries(w, ev)
			if !ok {
				continue
			}
			if !pair.Receiver.Matches(subject) || !pair.Other.Matches(other) {
				continue
			}

			subjectRect := components.WorldRect(subject)
			wallRect := components.WorldRect(other)
			overlap := subjectRect.Intersect(wallRect)
			if overlap.IsEmpty() {
				continue
			}

			components.Position.Get(subject).Translate(
				containmentPush(cfg.Containment, subjectRect, wallRect, overlap),
			)
		}
	}
}

func containmentPush(c cfg.ContainmentConfig, subject, wall, overlap gamemath.Rect) math.Vec2 {
	if c.Policy == cfg.ContainmentMinAxis {
		return minAxisPush(subject, wall, overlap)
	}

	from := overlap.Center()
	to := subject.Center()
	return math.Vec2{
		X: (to.X - from.X) * c.PushFraction,
		Y: (to.Y - from.Y) * c.PushFraction,
	}
}

// minAxisPush resolves the penetration along the axis where it is smallest,
// away from the wall's center.
func minAxisPush(subject, wall, overlap gamemath.Rect) math.Vec2 {
	sc, wc := subject.Center(), wall.Center()

	if overlap.Width() < overlap.Height() {
		if sc.X < wc.X {
			return math.Vec2{X: -overlap.Width()}
		}
		return math.Vec2{X: overlap.Width()}
	}
	if sc.Y < wc.Y {
		return math.Vec2{Y: -overlap.Height()}
	}
	return math.Vec2{Y: overlap.Height()}
}
