// internal/system/render.go
package system

import (
	"image/color"
	"math"

	"towerpower/internal/config"
	"towerpower/internal/entity"
	"towerpower/internal/types"
	"towerpower/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует сущности
type RenderSystem struct {
	ecs *entity.ECS
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs}
}

// Draw renders towers, then enemies, then projectiles on top.
func (s *RenderSystem) Draw(screen *ebiten.Image, vp render.Viewport, highlighted types.EntityID) {
	for _, id := range entity.SortedIDs(s.ecs.Towers) {
		if id == highlighted {
			s.drawRange(screen, vp, id)
		}
		s.drawEntity(screen, vp, id, config.TowerStrokeColor)
	}

	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		s.drawEntity(screen, vp, id, config.EnemyStrokeColor)
		s.drawHeading(screen, vp, id)
		s.drawHealthBar(screen, vp, id)
	}

	for _, id := range entity.SortedIDs(s.ecs.Projectiles) {
		s.drawEntity(screen, vp, id, nil)
	}
}

func (s *RenderSystem) drawEntity(screen *ebiten.Image, vp render.Viewport, id types.EntityID, stroke color.Color) {
	pos, hasPos := s.ecs.Positions[id]
	r, hasRender := s.ecs.Renderables[id]
	if !hasPos || !hasRender {
		return
	}
	x, y := vp.ToScreen(pos.Vec())
	radius := max(vp.Length(r.Radius), 2)
	if r.HasStroke && stroke != nil {
		vector.DrawFilledCircle(screen, x, y, radius+2, stroke, true)
	}
	vector.DrawFilledCircle(screen, x, y, radius, r.Color, true)
}

// drawHeading draws a short tick in the direction the enemy is walking.
func (s *RenderSystem) drawHeading(screen *ebiten.Image, vp render.Viewport, id types.EntityID) {
	pos, hasPos := s.ecs.Positions[id]
	vel, hasVel := s.ecs.Velocities[id]
	r, hasRender := s.ecs.Renderables[id]
	if !hasPos || !hasVel || !hasRender {
		return
	}
	x, y := vp.ToScreen(pos.Vec())
	l := max(vp.Length(r.Radius), 2)
	hx := x + l*float32(math.Cos(vel.Heading))
	hy := y + l*float32(math.Sin(vel.Heading))
	vector.StrokeLine(screen, x, y, hx, hy, 2, config.EnemyStrokeColor, true)
}

func (s *RenderSystem) drawHealthBar(screen *ebiten.Image, vp render.Viewport, id types.EntityID) {
	pos, hasPos := s.ecs.Positions[id]
	health, hasHealth := s.ecs.Healths[id]
	r, hasRender := s.ecs.Renderables[id]
	if !hasPos || !hasHealth || !hasRender || health.Max <= 0 || health.Value >= health.Max {
		return
	}
	x, y := vp.ToScreen(pos.Vec())
	radius := max(vp.Length(r.Radius), 2)
	width := radius * 2
	top := y - radius - 7
	frac := float32(health.Value) / float32(health.Max)
	vector.DrawFilledRect(screen, x-radius, top, width, 4, config.EnemyStrokeColor, false)
	vector.DrawFilledRect(screen, x-radius, top, width*frac, 4, config.HealthBarColor, false)
}

func (s *RenderSystem) drawRange(screen *ebiten.Image, vp render.Viewport, id types.EntityID) {
	pos, hasPos := s.ecs.Positions[id]
	combat, hasCombat := s.ecs.Combats[id]
	if !hasPos || !hasCombat {
		return
	}
	x, y := vp.ToScreen(pos.Vec())
	vector.StrokeCircle(screen, x, y, vp.Length(combat.Range), 1.5, config.RangeColor, true)
}
