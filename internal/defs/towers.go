// internal/defs/towers.go
package defs

import (
	"fmt"
	"image/color"
)

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Cost         uint32          `json:"cost"`
	FireInterval float64         `json:"fire_interval"` // seconds between shots
	Range        float64         `json:"range"`         // world units
	Projectile   ProjectileStats `json:"projectile"`
	Visuals      Visuals         `json:"visuals"`
}

// ProjectileStats describes what a tower shoots.
type ProjectileStats struct {
	Speed    float64 `json:"speed"`    // world units per second
	Lifetime float64 `json:"lifetime"` // seconds
	Damage   int     `json:"damage"`
}

// Visuals contains parameters for rendering an entity.
type Visuals struct {
	Color        color.RGBA `json:"color"`
	RadiusFactor float64    `json:"radius_factor"`
}

// Validate reports the first nonsensical field of d.
func (d TowerDefinition) Validate() error {
	switch {
	case d.ID == "":
		return fmt.Errorf("tower definition without id")
	case d.FireInterval <= 0:
		return fmt.Errorf("tower %s: fire_interval must be positive", d.ID)
	case d.Range <= 0:
		return fmt.Errorf("tower %s: range must be positive", d.ID)
	case d.Projectile.Speed <= 0:
		return fmt.Errorf("tower %s: projectile speed must be positive", d.ID)
	case d.Projectile.Lifetime <= 0:
		return fmt.Errorf("tower %s: projectile lifetime must be positive", d.ID)
	case d.Projectile.Damage < 0:
		return fmt.Errorf("tower %s: projectile damage must not be negative", d.ID)
	}
	return nil
}

// DefaultTowers are the three towers of the build panel, in button order.
func DefaultTowers() []TowerDefinition {
	return []TowerDefinition{
		{
			ID:           "TOWER_LAZER",
			Name:         "Lazer",
			Cost:         1,
			FireInterval: 0.25,
			Range:        4.5,
			Projectile:   ProjectileStats{Speed: 10.5, Lifetime: 0.5, Damage: 1},
			Visuals:      Visuals{Color: color.RGBA{255, 70, 70, 255}, RadiusFactor: 1.0},
		},
		{
			ID:           "TOWER_CANNON",
			Name:         "Cannon",
			Cost:         2,
			FireInterval: 0.5,
			Range:        4.5,
			Projectile:   ProjectileStats{Speed: 6.5, Lifetime: 0.75, Damage: 2},
			Visuals:      Visuals{Color: color.RGBA{70, 110, 255, 255}, RadiusFactor: 1.1},
		},
		{
			ID:           "TOWER_ROCK",
			Name:         "Rock",
			Cost:         5,
			FireInterval: 0.75,
			Range:        4.5,
			Projectile:   ProjectileStats{Speed: 3.5, Lifetime: 1.5, Damage: 4},
			Visuals:      Visuals{Color: color.RGBA{150, 120, 90, 255}, RadiusFactor: 1.25},
		},
	}
}
