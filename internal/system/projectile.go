// internal/system/projectile.go
package system

import (
	"towerpower/internal/component"
	"towerpower/internal/config"
	"towerpower/internal/entity"
	"towerpower/internal/event"
	"towerpower/internal/types"
	"towerpower/internal/utils"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	hitRadius       float64
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		hitRadius:       config.ProjectileHitRadius,
	}
}

// Update advances every projectile. A projectile that passes within the hit
// radius of an enemy during this tick collides; otherwise its lifetime runs
// down and it expires at zero.
func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Projectiles) {
		proj := s.ecs.Projectiles[id]
		pos := s.ecs.Positions[id]
		if pos == nil {
			s.ecs.RemoveEntity(id)
			continue
		}

		proj.State = component.ProjectileFlying
		from := pos.Vec()
		to := from.Add(proj.Direction.Scale(proj.Speed * deltaTime))
		pos.Set(to)

		if enemyID, hit := s.findCollision(from, to); hit {
			proj.State = component.ProjectileCollided
			s.ecs.RemoveEntity(id)
			s.hitTarget(enemyID, proj.Damage)
			continue
		}

		proj.Lifetime -= deltaTime
		if proj.Lifetime <= 0 {
			proj.State = component.ProjectileExpired
			s.ecs.RemoveEntity(id)
			s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileExpired, Data: id})
		}
	}
}

// findCollision returns the enemy closest to the swept segment from-to, if any
// is within the hit radius.
func (s *ProjectileSystem) findCollision(from, to utils.Vec2) (types.EntityID, bool) {
	var best types.EntityID
	bestDist := s.hitRadius
	found := false
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		if health, ok := s.ecs.Healths[id]; ok && health.Value <= 0 {
			continue
		}
		d := utils.DistToSegment(pos.Vec(), from, to)
		if d < bestDist {
			best, bestDist, found = id, d, true
		}
	}
	return best, found
}

func (s *ProjectileSystem) hitTarget(enemyID types.EntityID, damage int) {
	if !ApplyDamage(s.ecs, enemyID, damage) {
		return
	}

	// Враг был уничтожен, отправляем событие
	bounty := uint32(config.BountyPerKill)
	if enemy, ok := s.ecs.Enemies[enemyID]; ok {
		bounty = enemy.Bounty
	}
	s.ecs.RemoveEntity(enemyID)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyKilled,
		Data: event.EnemyKilledData{EnemyID: enemyID, Bounty: bounty},
	})
}
