package systems

import (
	stdmath "math"

	"github.com/automoto/survivors/components"
	cfg "github.com/automoto/survivors/config"
	"github.com/automoto/survivors/systems/factory"
	"github.com/automoto/survivors/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/filter"
)

var enemies = donburi.NewQuery(filter.Contains(tags.Enemy, components.Position))

// UpdateSpawner spawns ghosts around the player on a fixed interval and
// throws the player's dagger at the nearest ghost. Worlds without a spawner
// (scripted scenarios) spawn nothing.
func UpdateSpawner(w donburi.World) {
	spawnerEntry, ok := components.Spawner.First(w)
	if !ok {
		return
	}
	player, ok := tags.Player.First(w)
	if !ok {
		return
	}

	sp := components.Spawner.Get(spawnerEntry)
	dt := components.MustSingleton(w, components.Clock).Delta
	level := components.MustSingleton(w, components.Level)
	origin := components.Position.Get(player).Vec()

	if cfg.Ghost.SpawnInterval > 0 {
		sp.GhostTimer += dt
		for sp.GhostTimer >= cfg.Ghost.SpawnInterval {
			sp.GhostTimer -= cfg.Ghost.SpawnInterval
			if cfg.Ghost.MaxAlive > 0 && enemies.Count(w) >= cfg.Ghost.MaxAlive {
				continue
			}
			at := ghostSpawnPoint(sp, origin, level)
			factory.CreateGhost(w, at.X, at.Y)
			sp.GhostsSpawned++
		}
	}

	if cfg.Player.FireInterval > 0 {
		sp.FireTimer += dt
		if sp.FireTimer >= cfg.Player.FireInterval {
			target, found := nearestEnemy(w, origin, cfg.Player.FireRange)
			if !found {
				// Hold the throw until something is in reach.
				sp.FireTimer = cfg.Player.FireInterval
				return
			}
			sp.FireTimer -= cfg.Player.FireInterval
			dir := math.Vec2{X: target.X - origin.X, Y: target.Y - origin.Y}
			factory.CreateDagger(w, player, origin, dir)
			sp.DaggersSpawned++
		}
	}
}

// ghostSpawnPoint picks a random point on the square of half-size
// Ghost.SpawnDistance around origin, kept inside the level's outer walls.
func ghostSpawnPoint(sp *components.SpawnerData, origin math.Vec2, level *components.LevelData) math.Vec2 {
	angle := sp.Rand.Float64() * 2 * stdmath.Pi
	ux, uy := stdmath.Cos(angle), stdmath.Sin(angle)
	scale := cfg.Ghost.SpawnDistance / stdmath.Max(stdmath.Abs(ux), stdmath.Abs(uy))

	p := math.Vec2{X: origin.X + ux*scale, Y: origin.Y + uy*scale}

	bounds := level.Bounds()
	inset := float64(level.TileSize) + cfg.Ghost.Size/2
	p.X = clampInside(p.X, bounds.MinX+inset, bounds.MaxX-inset)
	p.Y = clampInside(p.Y, bounds.MinY+inset, bounds.MaxY-inset)
	return p
}

func clampInside(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	return stdmath.Min(stdmath.Max(v, lo), hi)
}

// nearestEnemy returns the position of the enemy closest to origin. A
// maxRange of zero means unlimited.
func nearestEnemy(w donburi.World, origin math.Vec2, maxRange float64) (math.Vec2, bool) {
	best := stdmath.Inf(1)
	var found math.Vec2
	enemies.Each(w, func(e *donburi.Entry) {
		p := components.Position.Get(e).Vec()
		dx, dy := p.X-origin.X, p.Y-origin.Y
		d := dx*dx + dy*dy
		if d < best {
			best = d
			found = p
		}
	})
	if stdmath.IsInf(best, 1) {
		return math.Vec2{}, false
	}
	if maxRange > 0 && best > maxRange*maxRange {
		return math.Vec2{}, false
	}
	return found, true
}
