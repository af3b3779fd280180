// internal/defs/enemies.go
package defs

import (
	"fmt"
	"image/color"
)

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Health  int     `json:"health"`
	Speed   float64 `json:"speed"`  // world units per second
	Bounty  uint32  `json:"bounty"` // валюта за убийство
	Visuals Visuals `json:"visuals"`
}

func (d EnemyDefinition) Validate() error {
	switch {
	case d.ID == "":
		return fmt.Errorf("enemy definition without id")
	case d.Health <= 0:
		return fmt.Errorf("enemy %s: health must be positive", d.ID)
	case d.Speed <= 0:
		return fmt.Errorf("enemy %s: speed must be positive", d.ID)
	}
	return nil
}

func DefaultEnemies() []EnemyDefinition {
	return []EnemyDefinition{
		{ID: "ENEMY_BASIC", Name: "Walker", Health: 4, Speed: 1.4, Bounty: 1,
			Visuals: Visuals{Color: color.RGBA{180, 40, 40, 255}, RadiusFactor: 1.0}},
		{ID: "ENEMY_FAST", Name: "Runner", Health: 3, Speed: 2.2, Bounty: 1,
			Visuals: Visuals{Color: color.RGBA{240, 160, 30, 255}, RadiusFactor: 0.8}},
		{ID: "ENEMY_TANK", Name: "Brute", Health: 12, Speed: 0.9, Bounty: 3,
			Visuals: Visuals{Color: color.RGBA{90, 30, 120, 255}, RadiusFactor: 1.4}},
	}
}
