// internal/system/movement.go
package system

import (
	"math"

	"towerpower/internal/config"
	"towerpower/internal/entity"
	"towerpower/internal/event"
	"towerpower/internal/types"
	"towerpower/internal/utils"
)

// MovementSystem ведёт врагов по точкам пути
type MovementSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Update moves every enemy toward its current waypoint. An enemy that is
// closer to the waypoint than it travels this tick snaps onto it and moves on
// to the next one; past the last waypoint it leaves the map.
func (s *MovementSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Paths) {
		path := s.ecs.Paths[id]
		pos, hasPos := s.ecs.Positions[id]
		vel, hasVel := s.ecs.Velocities[id]
		if !hasPos || !hasVel {
			continue
		}

		if !path.Finished() {
			target := path.Waypoints[path.CurrentIndex]
			delta := target.Sub(pos.Vec())
			dist := delta.Len()
			moveDistance := vel.Speed * deltaTime

			if dist <= moveDistance {
				pos.Set(target)
				path.CurrentIndex++
			} else {
				pos.Set(pos.Vec().Add(delta.Scale(moveDistance / dist)))
				turn := math.Min(1, config.EnemyTurnRate*deltaTime)
				vel.Heading = utils.LerpAngle(vel.Heading, delta.Angle(), turn)
			}
		}

		if path.Finished() {
			s.reachEnd(id)
		}
	}
}

func (s *MovementSystem) reachEnd(id types.EntityID) {
	enemy, ok := s.ecs.Enemies[id]
	if !ok || enemy.ReachedEnd {
		return
	}
	enemy.ReachedEnd = true
	s.ecs.RemoveEntity(id)
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyReachedEnd, Data: id})
}
