package systems

import (
	"github.com/automoto/survivors/components"
	cfg "github.com/automoto/survivors/config"
	"github.com/automoto/survivors/shared/gamemath"
	"github.com/automoto/survivors/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/filter"
)

var knockedBack = donburi.NewQuery(filter.Contains(components.Position, components.Movement))

// NewKnockbackSystem returns a system that pushes receivers away from the
// threats touching them. All threats of the tick contribute one unit vector
// each; a receiver already being knocked back is left alone.
func NewKnockbackSystem(pair tags.RolePair) func(w donburi.World) {
	return func(w donburi.World) {
		queue := components.MustSingleton(w, components.CollisionEvents)

		sums := make(map[donburi.Entity]math.Vec2)
		var order []donburi.Entity

		for _, ev := range queue.Events {
			subject, other, ok := eventEntries(w, ev)
			if !ok {
				continue
			}
			if !pair.Receiver.Matches(subject) || !pair.Other.Matches(other) {
				continue
			}
			if !subject.HasComponent(components.Movement) || !subject.HasComponent(components.Position) {
				continue
			}
			if !other.HasComponent(components.Position) {
				continue
			}
			if components.Movement.Get(subject).KnockBack != nil {
				continue
			}

			from := components.Position.Get(other).Vec()
			to := components.Position.Get(subject).Vec()
			away := gamemath.NormalizeOrZero(math.Vec2{X: to.X - from.X, Y: to.Y - from.Y})

			sum, seen := sums[ev.Subject]
			if !seen {
				order = append(order, ev.Subject)
			}
			sums[ev.Subject] = math.Vec2{X: sum.X + away.X, Y: sum.Y + away.Y}
		}

		for _, entity := range order {
			dir := gamemath.NormalizeOrZero(sums[entity])
			if dir.X == 0 && dir.Y == 0 {
				continue
			}
			displacement := math.Vec2{
				X: dir.X * cfg.Combat.KnockbackDistance,
				Y: dir.Y * cfg.Combat.KnockbackDistance,
			}
			movement := components.Movement.Get(w.Entry(entity))
			movement.KnockBack = components.NewKnockBack(displacement, cfg.Combat.KnockbackDuration)
		}
	}
}

// UpdateKnockback applies the share of each active knockback that falls into
// this tick and clears it once fully applied.
func UpdateKnockback(w donburi.World) {
	dt := components.MustSingleton(w, components.Clock).Delta
	knockedBack.Each(w, func(e *donburi.Entry) {
		movement := components.Movement.Get(e)
		if movement.KnockBack == nil {
			return
		}
		step, done := movement.KnockBack.Advance(dt)
		components.Position.Get(e).Translate(step)
		if done {
			movement.KnockBack = nil
		}
	})
}
