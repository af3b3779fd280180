// internal/level/ldtk.go
package level

import "encoding/json"

// The LDtk export is large; only the fields the game reads are declared.

type ldtkRoot struct {
	JSONVersion string      `json:"jsonVersion"`
	Levels      []ldtkLevel `json:"levels"`
}

type ldtkLevel struct {
	Identifier     string              `json:"identifier"`
	PxWid          int                 `json:"pxWid"`
	PxHei          int                 `json:"pxHei"`
	FieldInstances []ldtkFieldInstance `json:"fieldInstances"`
	LayerInstances []ldtkLayerInstance `json:"layerInstances"`
}

type ldtkFieldInstance struct {
	Identifier string          `json:"__identifier"`
	Type       string          `json:"__type"`
	Value      json.RawMessage `json:"__value"`
}

type ldtkLayerInstance struct {
	Identifier      string               `json:"__identifier"`
	Type            string               `json:"__type"`
	CWid            int                  `json:"__cWid"`
	CHei            int                  `json:"__cHei"`
	GridSize        int                  `json:"__gridSize"`
	EntityInstances []ldtkEntityInstance `json:"entityInstances"`
}

type ldtkEntityInstance struct {
	Identifier string `json:"__identifier"`
	Grid       []int  `json:"__grid"`
	Px         []int  `json:"px"`
}

const layerTypeEntities = "Entities"
