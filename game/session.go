// Package game assembles a playable world: level, singletons, player and the
// tick pipeline. Both the headless simulator and the window scene use it.
package game

import (
	"time"

	"github.com/automoto/survivors/assets"
	"github.com/automoto/survivors/components"
	cfg "github.com/automoto/survivors/config"
	"github.com/automoto/survivors/schedule"
	"github.com/automoto/survivors/systems"
	"github.com/automoto/survivors/systems/factory"
	"github.com/automoto/survivors/tags"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var (
	enemies     = donburi.NewQuery(filter.Contains(tags.Enemy))
	projectiles = donburi.NewQuery(filter.Contains(tags.Projectile))
)

// Options selects what a session is built from.
type Options struct {
	Level string // bundled level name, "arena" for the generated room
	Seed  int64
}

// Session is one run of the game.
type Session struct {
	World     donburi.World
	Scheduler *schedule.Scheduler

	Player *donburi.Entry
	Kills  int

	opts       Options
	unregister func()
}

// Summary is a snapshot of a running session.
type Summary struct {
	Tick           uint64
	Elapsed        time.Duration
	PlayerHealth   int
	PlayerAlive    bool
	Enemies        int
	Projectiles    int
	Walls          int
	Kills          int
	GhostsSpawned  int
	DaggersSpawned int
}

// New builds a session from the current configuration.
func New(opts Options) (*Session, error) {
	if opts.Level == "" {
		opts.Level = "arena"
	}

	grid, err := assets.LoadLevel(opts.Level)
	if err != nil {
		return nil, eris.Wrapf(err, "load level %s", opts.Level)
	}

	w := donburi.NewWorld()
	factory.CreateClock(w)
	factory.CreateCamera(w)
	factory.CreateSpawner(w, opts.Seed)

	level := factory.CreateLevel(w, grid)
	levelData := components.Level.Get(level)

	x, y := factory.PlayerStart(levelData)
	s := &Session{
		World:  w,
		Player: factory.CreatePlayer(w, x, y),
		opts:   opts,
	}

	s.unregister = systems.OnDespawn(func(w donburi.World, e *donburi.Entry) {
		if w == s.World && e.HasComponent(tags.Enemy) {
			s.Kills++
		}
	})
	s.Rebuild()

	// Snap the camera so the first frame does not pan in from the origin.
	components.MustSingleton(w, components.Camera).Position = components.Position.Get(s.Player).Vec()

	log.Info().
		Str("level", opts.Level).
		Int64("seed", opts.Seed).
		Str("broadphase", string(cfg.Collision.Broadphase)).
		Str("containment", string(cfg.Containment.Policy)).
		Msg("session started")

	return s, nil
}

func cellSize() int {
	if cfg.Collision.CellSize > 0 {
		return cfg.Collision.CellSize
	}
	return 32
}

// Rebuild replaces the scheduler with one built from the current
// configuration. The world is kept as is, except for the collision space,
// which is recreated when the cell size changed.
func (s *Session) Rebuild() {
	s.rebuildSpace()

	s.Scheduler = schedule.NewScheduler(s.World)
	systems.Register(s.Scheduler)
	s.Scheduler.AddSystem(schedule.ProcessCombat, systems.UpdateCamera)
}

func (s *Session) rebuildSpace() {
	spaceEntry, ok := components.Space.First(s.World)
	if ok && components.Space.Get(spaceEntry).CellSize == cellSize() {
		return
	}
	if ok {
		s.World.Remove(spaceEntry.Entity())
	}

	bounds := components.MustSingleton(s.World, components.Level).Bounds()
	factory.CreateSpace(s.World, int(bounds.Width()), int(bounds.Height()), cellSize())
	log.Debug().Int("cell_size", cellSize()).Msg("collision space rebuilt")
}

// Step advances the session by one fixed tick.
func (s *Session) Step() {
	s.Scheduler.Tick(cfg.TickDelta())
}

// Over reports whether the player has been despawned.
func (s *Session) Over() bool {
	return !s.Player.Valid()
}

// Close unregisters the session's despawn listener.
func (s *Session) Close() {
	if s.unregister != nil {
		s.unregister()
		s.unregister = nil
	}
}

// Options returns what the session was built from.
func (s *Session) Options() Options {
	return s.opts
}

func (s *Session) Summary() Summary {
	clock := components.MustSingleton(s.World, components.Clock)
	spawner := components.MustSingleton(s.World, components.Spawner)
	level := components.MustSingleton(s.World, components.Level)

	sum := Summary{
		Tick:           clock.Tick,
		Elapsed:        clock.Elapsed,
		PlayerAlive:    !s.Over(),
		Enemies:        enemies.Count(s.World),
		Projectiles:    projectiles.Count(s.World),
		Walls:          level.WallCount,
		Kills:          s.Kills,
		GhostsSpawned:  spawner.GhostsSpawned,
		DaggersSpawned: spawner.DaggersSpawned,
	}
	if sum.PlayerAlive {
		sum.PlayerHealth = components.Health.Get(s.Player).Amount
	}
	return sum
}
