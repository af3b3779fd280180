// internal/component/game_state.go
package component

// Phase is the stage of the current match.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// Wave tracks spawning for the wave in progress.
type Wave struct {
	Number         int
	EnemyID        string
	EnemiesToSpawn int
	SpawnTimer     float64
	SpawnInterval  float64
}

// Done reports whether the wave has nothing left to spawn.
func (w *Wave) Done() bool {
	return w.EnemiesToSpawn <= 0
}
