package system

import (
	"io"
	"log"

	"towerpower/internal/component"
	"towerpower/internal/entity"
	"towerpower/internal/event"
	"towerpower/internal/types"
	"towerpower/internal/utils"
)

var quietLogger = log.New(io.Discard, "", 0)

// recorder collects dispatched events by type.
type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func listen(d *event.Dispatcher, kinds ...event.EventType) *recorder {
	r := &recorder{}
	for _, t := range kinds {
		d.Subscribe(t, r)
	}
	return r
}

func addEnemy(ecs *entity.ECS, pos utils.Vec2, hp int) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: pos.X, Y: pos.Y}
	ecs.Healths[id] = &component.Health{Value: hp, Max: hp}
	ecs.Enemies[id] = &component.Enemy{DefID: "ENEMY_BASIC", Bounty: 1}
	return id
}

func addWalker(ecs *entity.ECS, waypoints []utils.Vec2, speed float64) types.EntityID {
	id := addEnemy(ecs, waypoints[0], 4)
	ecs.Velocities[id] = &component.Velocity{Speed: speed}
	ecs.Paths[id] = &component.Path{Waypoints: waypoints}
	return id
}

func addTower(ecs *entity.ECS, pos utils.Vec2, interval, rng float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: pos.X, Y: pos.Y}
	ecs.Towers[id] = &component.Tower{DefID: "TOWER_LAZER"}
	ecs.Combats[id] = &component.Combat{
		FireInterval:       interval,
		FireCooldown:       interval,
		Range:              rng,
		Damage:             1,
		ProjectileSpeed:    10,
		ProjectileLifetime: 0.5,
	}
	return id
}
