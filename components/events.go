package components

import "github.com/yohamta/donburi"

// CollisionEvent records that Subject's collider overlapped Other's this
// tick. Events are directional.
type CollisionEvent struct {
	Subject donburi.Entity
	Other   donburi.Entity
}

// CollisionEventsData is the per-tick event queue. It is cleared at the start
// of combat processing.
type CollisionEventsData struct {
	Events []CollisionEvent
}

func (q *CollisionEventsData) Push(ev CollisionEvent) {
	q.Events = append(q.Events, ev)
}

func (q *CollisionEventsData) Clear() {
	q.Events = q.Events[:0]
}

var CollisionEvents = donburi.NewComponentType[CollisionEventsData]()
