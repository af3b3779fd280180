// internal/system/combat.go
package system

import (
	"towerpower/internal/component"
	"towerpower/internal/config"
	"towerpower/internal/entity"
	"towerpower/internal/event"
	"towerpower/internal/types"
	"towerpower/internal/utils"
)

// CombatSystem управляет атакой башен
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

// Update ticks every tower's fire timer. The timer repeats whether or not
// there was something to shoot at; a shot is only fired when an enemy is in
// range at the moment the timer elapses.
func (s *CombatSystem) Update(deltaTime float64) {
	var candidates []Candidate
	collected := false

	for _, id := range entity.SortedIDs(s.ecs.Combats) {
		combat := s.ecs.Combats[id]
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}

		combat.FireCooldown -= deltaTime
		if combat.FireCooldown > 0 {
			continue
		}
		// Повторяющийся таймер: переносим остаток, но не больше одного выстрела за тик
		combat.FireCooldown += combat.FireInterval
		if combat.FireCooldown <= 0 {
			combat.FireCooldown = combat.FireInterval
		}

		if !collected {
			candidates = enemyCandidates(s.ecs)
			collected = true
		}
		target, found := FindNearestTarget(pos.Vec(), combat.Range, candidates)
		if !found {
			continue
		}

		projID := s.createProjectile(id, pos.Vec(), target.Pos, combat)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.TowerFired,
			Data: event.TowerFiredData{TowerID: id, TargetID: target.ID, ProjectileID: projID},
		})
	}
}

func (s *CombatSystem) createProjectile(towerID types.EntityID, from, to utils.Vec2, combat *component.Combat) types.EntityID {
	projID := s.ecs.NewEntity()
	s.ecs.Positions[projID] = &component.Position{X: from.X, Y: from.Y}
	s.ecs.Projectiles[projID] = &component.Projectile{
		SourceID:  towerID,
		Direction: to.Sub(from).Normalize(),
		Speed:     combat.ProjectileSpeed,
		Lifetime:  combat.ProjectileLifetime,
		Damage:    combat.Damage,
		State:     component.ProjectileSpawned,
	}

	projColor := config.ProjectileColor
	if r, ok := s.ecs.Renderables[towerID]; ok {
		projColor = r.Color
	}
	s.ecs.Renderables[projID] = &component.Renderable{
		Color:     projColor,
		Radius:    config.ProjectileRadius,
		HasStroke: false,
	}
	return projID
}
