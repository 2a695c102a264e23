package systems

import (
	"github.com/automoto/survivors/components"
	"github.com/automoto/survivors/tags"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var immuneHealth = donburi.NewQuery(filter.Contains(components.Health))

// NewDamageSystem returns a system that applies contact damage for one role
// pair: a receiver colliding with a damager loses the damager's
// CollisionDamage, unless a previous hit left it immune.
func NewDamageSystem(pair tags.RolePair) func(w donburi.World) {
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
			if !subject.HasComponent(components.Health) || !other.HasComponent(components.CollisionDamage) {
				continue
			}

			health := components.Health.Get(subject)
			damage := components.CollisionDamage.Get(other).Amount
			if health.TakeDamage(damage) {
				log.Debug().
					Stringer("pair", pair).
					Int("damage", damage).
					Int("health", health.Amount).
					Msg("hit")
			}
		}
	}
}

// UpdateDamageCooldowns counts down every active immunity window and clears
// it the tick it runs out.
func UpdateDamageCooldowns(w donburi.World) {
	dt := components.MustSingleton(w, components.Clock).Delta
	immuneHealth.Each(w, func(e *donburi.Entry) {
		health := components.Health.Get(e)
		if health.Immunity == nil {
			return
		}
		health.Immunity.Remaining -= dt
		if health.Immunity.Remaining <= 0 {
			health.Immunity = nil
		}
	})
}

// eventEntries resolves both sides of an event. Events whose entities have
// been removed since detection are skipped.
func eventEntries(w donburi.World, ev components.CollisionEvent) (subject, other *donburi.Entry, ok bool) {
	if !w.Valid(ev.Subject) || !w.Valid(ev.Other) {
		return nil, nil, false
	}
	return w.Entry(ev.Subject), w.Entry(ev.Other), true
}
