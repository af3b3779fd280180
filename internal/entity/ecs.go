// internal/entity/ecs.go
package entity

import (
	"slices"

	"towerpower/internal/component"
	"towerpower/internal/types"
)

type ECS struct {
	GameTime    float64
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Paths       map[types.EntityID]*component.Path
	Healths     map[types.EntityID]*component.Health
	Renderables map[types.EntityID]*component.Renderable
	Towers      map[types.EntityID]*component.Tower
	Combats     map[types.EntityID]*component.Combat
	Projectiles map[types.EntityID]*component.Projectile
	Enemies     map[types.EntityID]*component.Enemy
	Player      *component.Player
	Wave        *component.Wave
	Phase       component.Phase
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Paths:       make(map[types.EntityID]*component.Path),
		Healths:     make(map[types.EntityID]*component.Health),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Towers:      make(map[types.EntityID]*component.Tower),
		Combats:     make(map[types.EntityID]*component.Combat),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Player:      &component.Player{},
		Phase:       component.PhasePlaying,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity drops every component of id.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Paths, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Towers, id)
	delete(ecs.Combats, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Enemies, id)
}

// SortedIDs returns the keys of m in ascending order. Systems iterate in ID
// order so a tick gives the same result regardless of map ordering.
func SortedIDs[T any](m map[types.EntityID]T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
