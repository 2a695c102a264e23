package systems

import (
	"github.com/automoto/survivors/components"
	"github.com/automoto/survivors/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var projectiles = donburi.NewQuery(filter.Contains(tags.Projectile, components.Position, components.Collider))

// CullProjectiles removes projectiles that have left the level.
func CullProjectiles(w donburi.World) {
	bounds := components.MustSingleton(w, components.Level).Bounds()

	var gone []*donburi.Entry
	projectiles.Each(w, func(e *donburi.Entry) {
		if !components.WorldRect(e).Overlaps(bounds) {
			gone = append(gone, e)
		}
	})
	for _, e := range gone {
		if e.Valid() {
			DespawnRecursive(w, e)
		}
	}
}
