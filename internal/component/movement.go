// internal/component/movement.go
package component

import "towerpower/internal/utils"

// Position — компонент позиции (мировые единицы)
type Position struct {
	X, Y float64
}

// Vec returns the position as a vector.
func (p *Position) Vec() utils.Vec2 {
	return utils.Vec2{X: p.X, Y: p.Y}
}

// Set moves the position to v.
func (p *Position) Set(v utils.Vec2) {
	p.X, p.Y = v.X, v.Y
}

// Velocity — компонент скорости
type Velocity struct {
	Speed   float64 // world units per second
	Heading float64 // radians, last direction of travel
}

// Path tracks an enemy's progress along the map waypoints.
type Path struct {
	Waypoints    []utils.Vec2
	CurrentIndex int
}

// Finished reports whether every waypoint has been reached.
func (p *Path) Finished() bool {
	return p.CurrentIndex >= len(p.Waypoints)
}
