package schedule

import (
	"testing"
	"time"

	"github.com/automoto/survivors/components"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
)

func TestTickRunsPhasesInOrder(t *testing.T) {
	w := donburi.NewWorld()
	w.Create(components.Clock)
	s := NewScheduler(w)

	var order []string
	record := func(name string) System {
		return func(donburi.World) { order = append(order, name) }
	}

	// Registered out of phase order on purpose.
	s.AddSystem(ProcessCombat, record("combat"))
	s.AddSystem(Input, record("input-a"))
	s.AddSystem(CollisionDetection, record("detect"))
	s.AddSystem(EntityUpdate, record("update"))
	s.AddSystem(Input, record("input-b"))

	s.Tick(10 * time.Millisecond)

	assert.Equal(t, []string{"input-a", "input-b", "update", "detect", "combat"}, order)
}

func TestTickAdvancesClock(t *testing.T) {
	w := donburi.NewWorld()
	w.Create(components.Clock)
	s := NewScheduler(w)

	var seen time.Duration
	s.AddSystem(Input, func(w donburi.World) {
		seen = components.MustSingleton(w, components.Clock).Delta
	})

	s.Tick(16 * time.Millisecond)
	s.Tick(16 * time.Millisecond)

	clock := components.MustSingleton(w, components.Clock)
	assert.Equal(t, 16*time.Millisecond, seen)
	assert.Equal(t, 32*time.Millisecond, clock.Elapsed)
	assert.Equal(t, uint64(2), clock.Tick)
}

func TestTickWithoutClockPanics(t *testing.T) {
	s := NewScheduler(donburi.NewWorld())
	assert.Panics(t, func() { s.Tick(time.Millisecond) })
}
