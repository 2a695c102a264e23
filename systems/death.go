package systems

import (
	"slices"

	"github.com/automoto/survivors/components"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var (
	mortal = donburi.NewQuery(filter.Contains(components.Health))
	owned  = donburi.NewQuery(filter.Contains(components.Owner))
)

// DespawnListener is told about an entity right before it is removed.
type DespawnListener func(w donburi.World, e *donburi.Entry)

type despawnListener struct {
	id uint64
	fn DespawnListener
}

var (
	despawnListeners []despawnListener
	nextListenerID   uint64
)

// OnDespawn registers a listener for entities removed by DespawnDead. It
// returns a function that unregisters it; calling it again is a no-op.
func OnDespawn(l DespawnListener) func() {
	nextListenerID++
	id := nextListenerID
	despawnListeners = append(despawnListeners, despawnListener{id: id, fn: l})
	return func() {
		despawnListeners = slices.DeleteFunc(despawnListeners, func(dl despawnListener) bool {
			return dl.id == id
		})
	}
}

// DespawnDead removes every entity whose health reached zero, together with
// the entities it owns.
func DespawnDead(w donburi.World) {
	var dead []*donburi.Entry
	mortal.Each(w, func(e *donburi.Entry) {
		if components.Health.Get(e).Dead() {
			dead = append(dead, e)
		}
	})

	for _, e := range dead {
		if !e.Valid() {
			continue
		}
		// Listeners may unregister themselves while being notified.
		for _, l := range slices.Clone(despawnListeners) {
			l.fn(w, e)
		}
		log.Debug().Interface("entity", e.Entity()).Msg("despawn")
		DespawnRecursive(w, e)
	}
}

// DespawnRecursive removes e and, depth first, everything it owns.
func DespawnRecursive(w donburi.World, e *donburi.Entry) {
	parent := e.Entity()

	var children []*donburi.Entry
	owned.Each(w, func(c *donburi.Entry) {
		if components.Owner.Get(c).Owner == parent {
			children = append(children, c)
		}
	})
	for _, c := range children {
		if c.Valid() {
			DespawnRecursive(w, c)
		}
	}

	w.Remove(parent)
}
