package components

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// KnockBack is a displacement applied linearly over Duration. While present it
// overrides the owner's velocity.
type KnockBack struct {
	Displacement math.Vec2
	Duration     time.Duration
	Elapsed      time.Duration

	tween *gween.Tween
}

func NewKnockBack(displacement math.Vec2, duration time.Duration) *KnockBack {
	return &KnockBack{
		Displacement: displacement,
		Duration:     duration,
	}
}

// Progress returns the applied fraction of the displacement, from 0 to 1.
func (k *KnockBack) Progress() float64 {
	if k.Elapsed <= 0 {
		return 0
	}
	if k.Elapsed >= k.Duration {
		return 1
	}
	if k.tween == nil {
		k.tween = gween.New(0, 1, float32(k.Duration.Seconds()), ease.Linear)
	}
	p, _ := k.tween.Set(float32(k.Elapsed.Seconds()))
	return float64(p)
}

// Advance moves the knockback forward by dt and returns the displacement to
// apply for this step. done is true once the full displacement is applied.
func (k *KnockBack) Advance(dt time.Duration) (step math.Vec2, done bool) {
	before := k.Progress()
	k.Elapsed += dt
	after := k.Progress()

	delta := after - before
	step = math.Vec2{X: k.Displacement.X * delta, Y: k.Displacement.Y * delta}
	return step, k.Elapsed >= k.Duration
}

type MovementData struct {
	Velocity  math.Vec2 // pixels per second
	KnockBack *KnockBack
}

var Movement = donburi.NewComponentType[MovementData]()
