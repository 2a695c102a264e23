package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// DamageCooldown is the post-hit immunity window.
type DamageCooldown struct {
	Remaining time.Duration
}

type HealthData struct {
	Amount int
	Max    int

	// Cooldown is the immunity granted by each hit. Zero means none.
	Cooldown time.Duration
	Immunity *DamageCooldown
}

// TakeDamage applies a hit unless the entity is immune. Health never drops
// below zero. It reports whether the hit landed.
func (h *HealthData) TakeDamage(amount int) bool {
	if h.Immunity != nil {
		return false
	}
	if amount < 0 {
		amount = 0
	}
	h.Amount = max(0, h.Amount-amount)
	if h.Cooldown > 0 {
		h.Immunity = &DamageCooldown{Remaining: h.Cooldown}
	}
	return true
}

func (h *HealthData) Dead() bool {
	return h.Amount <= 0
}

var Health = donburi.NewComponentType[HealthData]()
