// internal/event/types.go
package event

import "towerpower/internal/types"

const (
	EnemySpawned      EventType = "EnemySpawned"
	EnemyKilled       EventType = "EnemyKilled"     // Враг уничтожен снарядом
	EnemyReachedEnd   EventType = "EnemyReachedEnd" // Враг дошёл до конца пути
	TowerPlaced       EventType = "TowerPlaced"     // Башня построена
	TowerFired        EventType = "TowerFired"
	ProjectileExpired EventType = "ProjectileExpired"
	WaveStarted       EventType = "WaveStarted"
	WaveEnded         EventType = "WaveEnded" // Волна закончилась
	FundsChanged      EventType = "FundsChanged"
	LivesChanged      EventType = "LivesChanged"
	GameOver          EventType = "GameOver"
)

// EnemyKilledData is the payload of EnemyKilled.
type EnemyKilledData struct {
	EnemyID types.EntityID
	Bounty  uint32
}

// TowerPlacedData is the payload of TowerPlaced.
type TowerPlacedData struct {
	TowerID   types.EntityID
	DefID     string
	SlotIndex int
	Cost      uint32
}

// TowerFiredData is the payload of TowerFired.
type TowerFiredData struct {
	TowerID      types.EntityID
	TargetID     types.EntityID
	ProjectileID types.EntityID
}

// WaveData is the payload of WaveStarted and WaveEnded.
type WaveData struct {
	Number int
}
