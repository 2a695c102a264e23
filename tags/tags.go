package tags

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/yohamta/donburi"
)

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Projectile = donburi.NewTag().SetName("Projectile")
	Wall       = donburi.NewTag().SetName("Wall")
)

// Resolv tags for broad-phase proxies
const (
	ResolvCollider = "collider"
	ResolvStatic   = "static"
)

// Role is the closed set of gameplay roles an entity can carry. Combat and
// containment rules are wired between pairs of roles.
type Role int

const (
	RoleNone Role = iota
	RolePlayer
	RoleEnemy
	RoleProjectile
	RoleWall
)

var roleNames = map[Role]string{
	RoleNone:       "none",
	RolePlayer:     "player",
	RoleEnemy:      "enemy",
	RoleProjectile: "projectile",
	RoleWall:       "wall",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// Tag returns the donburi tag marking entities of this role.
func (r Role) Tag() donburi.IComponentType {
	switch r {
	case RolePlayer:
		return Player
	case RoleEnemy:
		return Enemy
	case RoleProjectile:
		return Projectile
	case RoleWall:
		return Wall
	}
	return nil
}

// Matches reports whether the entry carries the role's tag.
func (r Role) Matches(e *donburi.Entry) bool {
	tag := r.Tag()
	return tag != nil && e.HasComponent(tag)
}

// ParseRole maps a role name to its Role.
func ParseRole(name string) (Role, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for r, n := range roleNames {
		if n == name && r != RoleNone {
			return r, nil
		}
	}
	return RoleNone, eris.Errorf("unknown role %q", name)
}

func (r *Role) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	parsed, err := ParseRole(name)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func (r Role) MarshalYAML() (interface{}, error) {
	return r.String(), nil
}

// RolePair wires a receiving role to the role whose contact affects it.
type RolePair struct {
	Receiver Role `yaml:"receiver"`
	Other    Role `yaml:"other"`
}

func (p RolePair) String() string {
	return p.Receiver.String() + "<-" + p.Other.String()
}
