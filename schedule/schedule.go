// Package schedule runs systems in fixed phases, one tick at a time.
package schedule

import (
	"time"

	"github.com/automoto/survivors/components"
	"github.com/yohamta/donburi"
)

// Phase is a step of the tick pipeline. Phases run in declaration order.
type Phase int

const (
	Input Phase = iota
	EntityUpdate
	CollisionDetection
	ProcessCombat
	phaseCount
)

var phaseNames = [phaseCount]string{
	Input:              "input",
	EntityUpdate:       "entity_update",
	CollisionDetection: "collision_detection",
	ProcessCombat:      "process_combat",
}

func (p Phase) String() string {
	if p < 0 || p >= phaseCount {
		return "unknown"
	}
	return phaseNames[p]
}

// System is a unit of per-tick work.
type System func(w donburi.World)

// Scheduler owns the world and the systems registered per phase. Systems in a
// phase run in registration order and each phase completes before the next.
type Scheduler struct {
	World   donburi.World
	systems [phaseCount][]System
}

func NewScheduler(w donburi.World) *Scheduler {
	return &Scheduler{World: w}
}

func (s *Scheduler) AddSystem(phase Phase, sys System) *Scheduler {
	if phase < 0 || phase >= phaseCount {
		panic("schedule: unknown phase " + phase.String())
	}
	s.systems[phase] = append(s.systems[phase], sys)
	return s
}

// Tick advances the clock singleton by dt and runs every phase once.
func (s *Scheduler) Tick(dt time.Duration) {
	clock := components.MustSingleton(s.World, components.Clock)
	clock.Delta = dt
	clock.Elapsed += dt
	clock.Tick++

	for phase := range s.systems {
		for _, sys := range s.systems[phase] {
			sys(s.World)
		}
	}
}
