package system

import (
	"testing"

	"towerpower/internal/component"
	"towerpower/internal/entity"
	"towerpower/internal/event"
	"towerpower/internal/types"
	"towerpower/internal/utils"
)

func addProjectile(ecs *entity.ECS, pos, dir utils.Vec2, speed, lifetime float64, damage int) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: pos.X, Y: pos.Y}
	ecs.Projectiles[id] = &component.Projectile{
		Direction: dir,
		Speed:     speed,
		Lifetime:  lifetime,
		Damage:    damage,
		State:     component.ProjectileSpawned,
	}
	return id
}

func TestProjectileExpires(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	rec := listen(d, event.ProjectileExpired, event.EnemyKilled)

	addEnemy(ecs, utils.Vec2{X: 0, Y: 5}, 4)
	id := addProjectile(ecs, utils.Vec2{}, utils.Vec2{X: 1}, 2, 0.5, 1)
	proj := ecs.Projectiles[id]

	sys := NewProjectileSystem(ecs, d)
	for i := 0; i < 3; i++ {
		sys.Update(0.125)
	}
	if _, ok := ecs.Projectiles[id]; !ok {
		t.Fatal("projectile removed before its lifetime ran out")
	}
	if proj.State != component.ProjectileFlying {
		t.Fatalf("state = %v, want Flying", proj.State)
	}

	sys.Update(0.125)
	if _, ok := ecs.Projectiles[id]; ok {
		t.Fatal("projectile still alive after lifetime")
	}
	if _, ok := ecs.Positions[id]; ok {
		t.Fatal("projectile position not removed")
	}
	if proj.State != component.ProjectileExpired {
		t.Fatalf("state = %v, want Expired", proj.State)
	}
	if rec.count(event.ProjectileExpired) != 1 {
		t.Fatalf("ProjectileExpired count = %d, want 1", rec.count(event.ProjectileExpired))
	}
	if rec.count(event.EnemyKilled) != 0 {
		t.Fatal("expired projectile killed an enemy")
	}
}

func TestProjectileCollides(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	rec := listen(d, event.ProjectileExpired, event.EnemyKilled)

	enemy := addEnemy(ecs, utils.Vec2{X: 1, Y: 0}, 4)
	id := addProjectile(ecs, utils.Vec2{}, utils.Vec2{X: 1}, 10, 0.5, 1)
	proj := ecs.Projectiles[id]

	NewProjectileSystem(ecs, d).Update(0.125)

	if _, ok := ecs.Projectiles[id]; ok {
		t.Fatal("projectile not removed on hit")
	}
	if proj.State != component.ProjectileCollided {
		t.Fatalf("state = %v, want Collided", proj.State)
	}
	if hp := ecs.Healths[enemy].Value; hp != 3 {
		t.Fatalf("enemy health = %d, want 3", hp)
	}
	if len(rec.events) != 0 {
		t.Fatalf("unexpected events: %v", rec.events)
	}
}

// A fast projectile passing through an enemy within one tick still hits.
func TestProjectileNoTunneling(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()

	enemy := addEnemy(ecs, utils.Vec2{X: 5, Y: 0.1}, 4)
	addProjectile(ecs, utils.Vec2{}, utils.Vec2{X: 1}, 100, 0.5, 1)

	NewProjectileSystem(ecs, d).Update(0.125)
	if hp := ecs.Healths[enemy].Value; hp != 3 {
		t.Fatalf("enemy health = %d, want 3", hp)
	}
}

func TestProjectileHitsOneEnemy(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()

	off := addEnemy(ecs, utils.Vec2{X: 1, Y: 0.1}, 4)
	on := addEnemy(ecs, utils.Vec2{X: 1.05, Y: 0}, 4)
	addProjectile(ecs, utils.Vec2{}, utils.Vec2{X: 1}, 10, 0.5, 1)

	NewProjectileSystem(ecs, d).Update(0.125)
	if hp := ecs.Healths[on].Value; hp != 3 {
		t.Fatalf("closest enemy health = %d, want 3", hp)
	}
	if hp := ecs.Healths[off].Value; hp != 4 {
		t.Fatalf("second enemy health = %d, want 4", hp)
	}
}

func TestProjectileKill(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	rec := listen(d, event.EnemyKilled)

	enemy := addEnemy(ecs, utils.Vec2{X: 1, Y: 0}, 1)
	addProjectile(ecs, utils.Vec2{}, utils.Vec2{X: 1}, 10, 0.5, 5)

	NewProjectileSystem(ecs, d).Update(0.125)

	if _, ok := ecs.Enemies[enemy]; ok {
		t.Fatal("killed enemy not removed")
	}
	if len(rec.events) != 1 {
		t.Fatalf("EnemyKilled count = %d, want 1", len(rec.events))
	}
	data := rec.events[0].Data.(event.EnemyKilledData)
	if data.EnemyID != enemy || data.Bounty != 1 {
		t.Fatalf("event = %+v", data)
	}
}

func TestApplyDamage(t *testing.T) {
	ecs := entity.NewECS()
	id := addEnemy(ecs, utils.Vec2{}, 3)

	if ApplyDamage(ecs, id, 2) {
		t.Fatal("non-lethal hit reported a kill")
	}
	if ApplyDamage(ecs, id, -5) {
		t.Fatal("negative damage reported a kill")
	}
	if hp := ecs.Healths[id].Value; hp != 1 {
		t.Fatalf("health = %d, want 1", hp)
	}
	if !ApplyDamage(ecs, id, 10) {
		t.Fatal("lethal hit not reported")
	}
	if hp := ecs.Healths[id].Value; hp != 0 {
		t.Fatalf("health = %d, want clamped to 0", hp)
	}
	if ApplyDamage(ecs, id, 1) {
		t.Fatal("dead enemy killed twice")
	}
	if hp := ecs.Healths[id].Value; hp != 0 {
		t.Fatalf("health = %d, want 0", hp)
	}
}
