// internal/app/tower_management.go
package app

import (
	"errors"
	"fmt"

	"towerpower/internal/component"
	"towerpower/internal/config"
	"towerpower/internal/defs"
	"towerpower/internal/event"
	"towerpower/internal/types"
	"towerpower/internal/utils"
)

var (
	ErrGameOver     = errors.New("game is over")
	ErrUnknownSlot  = errors.New("no such tower slot")
	ErrSlotOccupied = errors.New("tower slot is occupied")
	ErrUnknownTower = errors.New("unknown tower")
)

// PlaceTower builds towerID on the given slot and charges its cost. On any
// error nothing is built and nothing is charged.
func (g *Game) PlaceTower(slot int, towerID string) (types.EntityID, error) {
	def, err := g.canPlaceTower(slot, towerID)
	if err != nil {
		g.Logger.Printf("place %s on slot %d rejected: %v", towerID, slot, err)
		return 0, err
	}
	if err := g.EconomySystem.Purchase(def.Cost); err != nil {
		g.Logger.Printf("place %s on slot %d rejected: cost %d, funds %d: %v",
			towerID, slot, def.Cost, g.ECS.Player.Funds, err)
		return 0, fmt.Errorf("place %s: %w", towerID, err)
	}

	id := g.createTowerEntity(slot, def)
	g.Logger.Printf("built %s on slot %d, funds left %d", def.Name, slot, g.ECS.Player.Funds)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerPlaced,
		Data: event.TowerPlacedData{TowerID: id, DefID: def.ID, SlotIndex: slot, Cost: def.Cost},
	})
	return id, nil
}

func (g *Game) canPlaceTower(slot int, towerID string) (defs.TowerDefinition, error) {
	if g.IsOver() {
		return defs.TowerDefinition{}, ErrGameOver
	}
	if slot < 0 || slot >= len(g.slots) {
		return defs.TowerDefinition{}, fmt.Errorf("slot %d: %w", slot, ErrUnknownSlot)
	}
	if g.slots[slot] != 0 {
		return defs.TowerDefinition{}, fmt.Errorf("slot %d: %w", slot, ErrSlotOccupied)
	}
	def, ok := g.Library.Tower(towerID)
	if !ok {
		return defs.TowerDefinition{}, fmt.Errorf("%q: %w", towerID, ErrUnknownTower)
	}
	return def, nil
}

// CanAfford reports whether towerID is affordable right now.
func (g *Game) CanAfford(towerID string) bool {
	def, ok := g.Library.Tower(towerID)
	return ok && g.ECS.Player.CanAfford(def.Cost)
}

func (g *Game) createTowerEntity(slot int, def defs.TowerDefinition) types.EntityID {
	id := g.ECS.NewEntity()
	pos := g.Map.TowerSlots[slot]
	g.ECS.Positions[id] = &component.Position{X: pos.X, Y: pos.Y}
	g.ECS.Towers[id] = &component.Tower{DefID: def.ID, SlotIndex: slot}
	g.ECS.Combats[id] = &component.Combat{
		FireInterval:       def.FireInterval,
		FireCooldown:       def.FireInterval,
		Range:              def.Range,
		Damage:             def.Projectile.Damage,
		ProjectileSpeed:    def.Projectile.Speed,
		ProjectileLifetime: def.Projectile.Lifetime,
	}
	g.ECS.Renderables[id] = &component.Renderable{
		Color:     def.Visuals.Color,
		Radius:    config.TowerRadius * def.Visuals.RadiusFactor,
		HasStroke: true,
	}
	g.slots[slot] = id
	return id
}

// SlotAt returns the tower slot under world point p.
func (g *Game) SlotAt(p utils.Vec2) (int, bool) {
	best, bestDist := -1, config.TowerSlotRadius
	for i, s := range g.Map.TowerSlots {
		if d := p.Dist(s); d <= bestDist {
			best, bestDist = i, d
		}
	}
	return best, best >= 0
}

// TowerAt returns the tower built on slot, if any.
func (g *Game) TowerAt(slot int) (types.EntityID, bool) {
	if slot < 0 || slot >= len(g.slots) || g.slots[slot] == 0 {
		return 0, false
	}
	return g.slots[slot], true
}
