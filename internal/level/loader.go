// internal/level/loader.go
package level

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"os"

	"towerpower/internal/utils"
)

const (
	// PixelsPerUnit converts editor pixels to world units.
	PixelsPerUnit = 4.0

	TowerSlotEntity    = "TowerSlot"
	StartingLivesField = "starting_lives"
	StartingFundsField = "starting_funds"
)

var (
	ErrNoLevels    = errors.New("ldtk: export has no levels")
	ErrNoLayers    = errors.New("ldtk: level has no layers")
	ErrNoWaypoints = errors.New("ldtk: level has no waypoints")
)

// Load reads an LDtk export from path and converts its first level.
func Load(path string) (*GameMap, error) {
	log.Printf("loading map: %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("Loaded map %s (%dx%d cells, %d waypoints, %d tower slots)",
		m.Name, m.Columns, m.Rows, len(m.Waypoints), len(m.TowerSlots))
	return m, nil
}

// Parse converts the first level of an LDtk export.
//
// Every entity of the first entity layer is a waypoint, in file order,
// except TowerSlot entities which become build sites. Grid dimensions come
// from the first non-entity layer (the entity layer when there is none).
func Parse(data []byte) (*GameMap, error) {
	var root ldtkRoot
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ldtk export: %w", err)
	}
	if len(root.Levels) == 0 {
		return nil, ErrNoLevels
	}
	lvl := root.Levels[0]
	if len(lvl.LayerInstances) == 0 {
		return nil, ErrNoLayers
	}

	entities, grid := pickLayers(lvl.LayerInstances)
	if entities == nil {
		return nil, fmt.Errorf("level %s: %w", lvl.Identifier, ErrNoWaypoints)
	}
	if grid.GridSize <= 0 {
		return nil, fmt.Errorf("level %s: layer %s has grid size %d", lvl.Identifier, grid.Identifier, grid.GridSize)
	}

	cell := float64(grid.GridSize) / PixelsPerUnit
	m := &GameMap{
		Name:     lvl.Identifier,
		Columns:  grid.CWid,
		Rows:     grid.CHei,
		CellSize: cell,
	}

	for _, e := range entities.EntityInstances {
		if len(e.Grid) < 2 {
			return nil, fmt.Errorf("level %s: entity %s has no grid position", lvl.Identifier, e.Identifier)
		}
		// центр клетки
		p := utils.Vec2{
			X: float64(e.Grid[0])*cell + cell/2,
			Y: float64(e.Grid[1])*cell + cell/2,
		}
		if e.Identifier == TowerSlotEntity {
			m.TowerSlots = append(m.TowerSlots, p)
		} else {
			m.Waypoints = append(m.Waypoints, p)
		}
	}
	if len(m.Waypoints) == 0 {
		return nil, fmt.Errorf("level %s: %w", lvl.Identifier, ErrNoWaypoints)
	}

	var err error
	if m.StartingLives, err = uintField(lvl.FieldInstances, StartingLivesField); err != nil {
		return nil, fmt.Errorf("level %s: %w", lvl.Identifier, err)
	}
	if m.StartingFunds, err = uintField(lvl.FieldInstances, StartingFundsField); err != nil {
		return nil, fmt.Errorf("level %s: %w", lvl.Identifier, err)
	}
	return m, nil
}

func pickLayers(layers []ldtkLayerInstance) (entities, grid *ldtkLayerInstance) {
	for i := range layers {
		l := &layers[i]
		if l.Type == layerTypeEntities {
			if entities == nil {
				entities = l
			}
		} else if grid == nil {
			grid = l
		}
	}
	if grid == nil {
		grid = entities
	}
	return entities, grid
}

// uintField returns a level field as uint32. A missing or null field is 0.
func uintField(fields []ldtkFieldInstance, name string) (uint32, error) {
	for _, f := range fields {
		if f.Identifier != name {
			continue
		}
		if len(f.Value) == 0 || string(f.Value) == "null" {
			return 0, nil
		}
		var v float64
		if err := json.Unmarshal(f.Value, &v); err != nil {
			return 0, fmt.Errorf("field %s: expected a number, got %s", name, f.Value)
		}
		if v < 0 || v > math.MaxUint32 || v != math.Trunc(v) {
			return 0, fmt.Errorf("field %s: %v is not a valid count", name, v)
		}
		return uint32(v), nil
	}
	return 0, nil
}
