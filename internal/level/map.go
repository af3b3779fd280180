// internal/level/map.go
package level

import "towerpower/internal/utils"

// GameMap is the level resource: read-only once loaded.
type GameMap struct {
	Name          string
	Columns       int     // клетки по X
	Rows          int     // клетки по Y
	CellSize      float64 // world units per cell
	Waypoints     []utils.Vec2
	TowerSlots    []utils.Vec2
	StartingFunds uint32
	StartingLives uint32
}

// Width returns the map width in world units.
func (m *GameMap) Width() float64 {
	return float64(m.Columns) * m.CellSize
}

// Height returns the map height in world units.
func (m *GameMap) Height() float64 {
	return float64(m.Rows) * m.CellSize
}

// PathLength returns the total length of the waypoint polyline.
func (m *GameMap) PathLength() float64 {
	total := 0.0
	for i := 1; i < len(m.Waypoints); i++ {
		total += m.Waypoints[i-1].Dist(m.Waypoints[i])
	}
	return total
}
