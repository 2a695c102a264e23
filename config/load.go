package config

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/automoto/survivors/tags"
	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// document is the on-disk layout of an override file. Every section is
// optional; missing keys keep their current value.
type document struct {
	Game        *Config            `yaml:"game"`
	Player      *PlayerConfig      `yaml:"player"`
	Ghost       *GhostConfig       `yaml:"ghost"`
	Dagger      *DaggerConfig      `yaml:"dagger"`
	Combat      *CombatConfig      `yaml:"combat"`
	Containment *ContainmentConfig `yaml:"containment"`
	Collision   *CollisionConfig   `yaml:"collision"`
	Walls       *WallConfig        `yaml:"walls"`
	Map         *MapConfig         `yaml:"map"`
	Simulation  *SimulationConfig  `yaml:"simulation"`
	Camera      *CameraConfig      `yaml:"camera"`
}

// LoadFile merges the YAML document at path over the current globals.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return eris.Wrapf(err, "read config %s", path)
	}
	if err := Load(data); err != nil {
		return eris.Wrapf(err, "config %s", path)
	}
	return nil
}

// Load merges a YAML document over the current globals. The globals are
// left untouched when decoding or validation fails.
func Load(data []byte) error {
	game := *C
	player, ghost, dagger := Player, Ghost, Dagger
	combat, containment, collision := Combat, Containment, Collision
	walls, mapCfg, sim, camera := Walls, Map, Simulation, Camera

	doc := document{
		Game:        &game,
		Player:      &player,
		Ghost:       &ghost,
		Dagger:      &dagger,
		Combat:      &combat,
		Containment: &containment,
		Collision:   &collision,
		Walls:       &walls,
		Map:         &mapCfg,
		Simulation:  &sim,
		Camera:      &camera,
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return eris.Wrap(err, "decode yaml")
	}

	if err := validate(&combat, &containment, &collision, &walls, &sim); err != nil {
		return err
	}

	C = &game
	Player, Ghost, Dagger = player, ghost, dagger
	Combat, Containment, Collision = combat, containment, collision
	Walls, Map, Simulation, Camera = walls, mapCfg, sim, camera
	return nil
}

func validate(combat *CombatConfig, containment *ContainmentConfig, collision *CollisionConfig, walls *WallConfig, sim *SimulationConfig) error {
	for _, pairs := range [][]tags.RolePair{combat.DamagePairs, combat.KnockbackPairs, containment.Pairs} {
		for _, p := range pairs {
			if p.Receiver == tags.RoleNone || p.Other == tags.RoleNone {
				return eris.Errorf("role pair %s needs both a receiver and an other role", p)
			}
		}
	}

	switch collision.Broadphase {
	case BroadphaseAllPairs, BroadphaseGrid:
	default:
		return eris.Errorf("unknown broadphase %q", collision.Broadphase)
	}
	if collision.Broadphase == BroadphaseGrid && collision.CellSize <= 0 {
		return eris.Errorf("grid broadphase needs a positive cell_size, got %d", collision.CellSize)
	}

	switch containment.Policy {
	case ContainmentSoft, ContainmentMinAxis:
	default:
		return eris.Errorf("unknown containment policy %q", containment.Policy)
	}
	if containment.PushFraction < 0 || containment.PushFraction > 1 {
		return eris.Errorf("push_fraction must be within [0, 1], got %v", containment.PushFraction)
	}

	if combat.KnockbackDistance < 0 {
		return eris.Errorf("knockback_distance must not be negative, got %v", combat.KnockbackDistance)
	}
	if combat.KnockbackDuration < 0 {
		return eris.Errorf("knockback_duration must not be negative, got %v", combat.KnockbackDuration)
	}
	if walls.MinSize < 0 {
		return eris.Errorf("walls.min_size must not be negative, got %v", walls.MinSize)
	}
	if sim.TickRate <= 0 {
		return eris.Errorf("tick_rate must be positive, got %d", sim.TickRate)
	}
	return nil
}
