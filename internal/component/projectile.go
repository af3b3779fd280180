// internal/component/projectile.go
package component

import (
	"towerpower/internal/types"
	"towerpower/internal/utils"
)

// ProjectileState is the lifecycle stage of a projectile.
type ProjectileState int

const (
	ProjectileSpawned ProjectileState = iota
	ProjectileFlying
	ProjectileExpired
	ProjectileCollided
)

func (s ProjectileState) String() string {
	switch s {
	case ProjectileSpawned:
		return "spawned"
	case ProjectileFlying:
		return "flying"
	case ProjectileExpired:
		return "expired"
	case ProjectileCollided:
		return "collided"
	default:
		return "unknown"
	}
}

// Projectile представляет летящий снаряд.
type Projectile struct {
	SourceID  types.EntityID // башня, которая выстрелила
	Direction utils.Vec2     // unit vector
	Speed     float64
	Lifetime  float64 // seconds left before the projectile expires
	Damage    int
	State     ProjectileState
}
