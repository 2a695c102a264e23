package systems

import (
	cfg "github.com/automoto/survivors/config"
	"github.com/automoto/survivors/schedule"
)

// Register adds the full tick pipeline to s. Role-pair systems are built from
// the configuration current at the time of the call.
func Register(s *schedule.Scheduler) {
	s.AddSystem(schedule.Input, UpdateLevelGeometry)
	s.AddSystem(schedule.Input, UpdatePlayerInput)
	s.AddSystem(schedule.Input, UpdateChase)
	s.AddSystem(schedule.Input, UpdateSpawner)

	s.AddSystem(schedule.EntityUpdate, UpdateMovement)
	s.AddSystem(schedule.EntityUpdate, UpdateKnockback)
	s.AddSystem(schedule.EntityUpdate, UpdateDamageCooldowns)
	s.AddSystem(schedule.EntityUpdate, CullProjectiles)

	s.AddSystem(schedule.CollisionDetection, UpdateCollisions)

	RegisterCombat(s)
}

// RegisterCombat adds the process combat phase: dispatch, damage, knockback,
// despawn and containment, in that order.
func RegisterCombat(s *schedule.Scheduler) {
	s.AddSystem(schedule.ProcessCombat, ClearCollisionEvents)
	for _, role := range cfg.WatchedRoles() {
		s.AddSystem(schedule.ProcessCombat, NewDispatchSystem(role))
	}
	for _, pair := range cfg.Combat.DamagePairs {
		s.AddSystem(schedule.ProcessCombat, NewDamageSystem(pair))
	}
	for _, pair := range cfg.Combat.KnockbackPairs {
		s.AddSystem(schedule.ProcessCombat, NewKnockbackSystem(pair))
	}
	s.AddSystem(schedule.ProcessCombat, DespawnDead)
	for _, pair := range cfg.Containment.Pairs {
		s.AddSystem(schedule.ProcessCombat, NewContainmentSystem(pair))
	}
}
