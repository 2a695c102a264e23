package config

import (
	"time"

	"github.com/automoto/survivors/tags"
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Speed          float64       `yaml:"speed"` // pixels per second
	Size           float64       `yaml:"size"`
	Health         int           `yaml:"health"`
	DamageCooldown time.Duration `yaml:"damage_cooldown"`

	// Auto-fire
	FireInterval time.Duration `yaml:"fire_interval"`
	FireRange    float64       `yaml:"fire_range"` // 0 = unlimited
}

// GhostConfig contains configuration for the chasing enemy
type GhostConfig struct {
	Speed          float64       `yaml:"speed"`
	Size           float64       `yaml:"size"`
	Health         int           `yaml:"health"`
	Damage         int           `yaml:"damage"`
	DamageCooldown time.Duration `yaml:"damage_cooldown"`

	SpawnInterval time.Duration `yaml:"spawn_interval"`
	SpawnDistance float64       `yaml:"spawn_distance"` // half-size of the spawn square around the player
	MaxAlive      int           `yaml:"max_alive"`      // 0 = unlimited
}

// DaggerConfig contains thrown projectile configuration
type DaggerConfig struct {
	Speed  float64 `yaml:"speed"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Damage int     `yaml:"damage"`
	Health int     `yaml:"health"`
}

// CombatConfig wires damage and knockback between roles.
type CombatConfig struct {
	DamagePairs    []tags.RolePair `yaml:"damage_pairs"`
	KnockbackPairs []tags.RolePair `yaml:"knockback_pairs"`

	KnockbackDistance float64       `yaml:"knockback_distance"`
	KnockbackDuration time.Duration `yaml:"knockback_duration"`
}

// ContainmentPolicy selects how a mobile entity is pushed out of a wall.
type ContainmentPolicy string

const (
	// ContainmentSoft pushes by a fraction of the overlap-to-subject vector.
	ContainmentSoft ContainmentPolicy = "soft"
	// ContainmentMinAxis fully resolves along the axis of least penetration.
	ContainmentMinAxis ContainmentPolicy = "min_axis"
)

// ContainmentConfig contains wall containment configuration
type ContainmentConfig struct {
	Pairs        []tags.RolePair   `yaml:"pairs"`
	Policy       ContainmentPolicy `yaml:"policy"`
	PushFraction float64           `yaml:"push_fraction"`
}

// Broadphase selects the collision detection strategy.
type Broadphase string

const (
	BroadphaseAllPairs Broadphase = "all_pairs"
	BroadphaseGrid     Broadphase = "grid"
)

// CollisionConfig contains broad-phase configuration
type CollisionConfig struct {
	Broadphase Broadphase `yaml:"broadphase"`
	CellSize   int        `yaml:"cell_size"` // grid strategy only
}

// WallMargins are pixels trimmed from a wall collider per labelled edge.
type WallMargins struct {
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
}

// WallConfig contains wall geometry configuration
type WallConfig struct {
	Margins WallMargins `yaml:"margins"`
	MinSize float64     `yaml:"min_size"`

	// TMX authoring
	LayerName    string `yaml:"layer_name"`
	EdgeProperty string `yaml:"edge_property"`
}

// MapConfig describes the generated arena used when no TMX level is given.
type MapConfig struct {
	Width    int `yaml:"width"` // tiles
	Height   int `yaml:"height"`
	TileSize int `yaml:"tile_size"`
}

// SimulationConfig contains tick pacing configuration
type SimulationConfig struct {
	TickRate int   `yaml:"tick_rate"` // ticks per second
	Seed     int64 `yaml:"seed"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 `yaml:"follow_smoothing"` // 0..1 per tick
}

// Config holds general game configuration
type Config struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Scale  float64 `yaml:"scale"` // camera zoom
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Ghost GhostConfig
var Dagger DaggerConfig
var Combat CombatConfig
var Containment ContainmentConfig
var Collision CollisionConfig
var Walls WallConfig
var Map MapConfig
var Simulation SimulationConfig
var Camera CameraConfig

func init() {
	Reset()
}

// Reset restores every global to its default value.
func Reset() {
	C = &Config{
		Width:  640,
		Height: 360,
		Scale:  0.75,
	}

	Player = PlayerConfig{
		Speed:          50,
		Size:           15,
		Health:         30,
		DamageCooldown: 250 * time.Millisecond,
		FireInterval:   time.Second,
		FireRange:      0,
	}

	Ghost = GhostConfig{
		Speed:          30,
		Size:           15,
		Health:         1,
		Damage:         1,
		DamageCooldown: 0,
		SpawnInterval:  time.Second,
		SpawnDistance:  120,
		MaxAlive:       200,
	}

	Dagger = DaggerConfig{
		Speed:  200,
		Width:  8,
		Height: 8,
		Damage: 1,
		Health: 1,
	}

	Combat = CombatConfig{
		DamagePairs: []tags.RolePair{
			{Receiver: tags.RolePlayer, Other: tags.RoleEnemy},
			{Receiver: tags.RoleEnemy, Other: tags.RoleProjectile},
			{Receiver: tags.RoleProjectile, Other: tags.RoleEnemy},
		},
		KnockbackPairs: []tags.RolePair{
			{Receiver: tags.RolePlayer, Other: tags.RoleEnemy},
		},
		KnockbackDistance: 16,
		KnockbackDuration: 100 * time.Millisecond,
	}

	Containment = ContainmentConfig{
		Pairs: []tags.RolePair{
			{Receiver: tags.RolePlayer, Other: tags.RoleWall},
			{Receiver: tags.RoleEnemy, Other: tags.RoleWall},
		},
		Policy:       ContainmentSoft,
		PushFraction: 0.5,
	}

	Collision = CollisionConfig{
		Broadphase: BroadphaseAllPairs,
		CellSize:   32,
	}

	Walls = WallConfig{
		Margins: WallMargins{
			Top:    12,
			Bottom: 2,
			Left:   2,
			Right:  2,
		},
		MinSize:      1,
		LayerName:    "walls",
		EdgeProperty: "edges",
	}

	Map = MapConfig{
		Width:    100,
		Height:   100,
		TileSize: 16,
	}

	Simulation = SimulationConfig{
		TickRate: 60,
		Seed:     1,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.15,
	}
}

// TickDelta is the fixed duration of one simulation tick.
func TickDelta() time.Duration {
	if Simulation.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(Simulation.TickRate)
}

// WatchedRoles returns every receiver role of a damage, knockback or
// containment pair, in first-seen order.
func WatchedRoles() []tags.Role {
	seen := make(map[tags.Role]bool)
	var roles []tags.Role
	add := func(pairs []tags.RolePair) {
		for _, p := range pairs {
			if !seen[p.Receiver] {
				seen[p.Receiver] = true
				roles = append(roles, p.Receiver)
			}
		}
	}
	add(Combat.DamagePairs)
	add(Combat.KnockbackPairs)
	add(Containment.Pairs)
	return roles
}
