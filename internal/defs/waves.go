package defs

import "time"

// WaveDefinition описывает параметры для одной волны врагов.
type WaveDefinition struct {
	EnemyID       string        // Идентификатор врага из enemies.json
	Count         int           // Количество врагов в волне
	SpawnInterval time.Duration // Интервал между появлением врагов
}

// DefaultWaves is the built-in wave sequence. Index 0 is wave 1.
func DefaultWaves() []WaveDefinition {
	return []WaveDefinition{
		{EnemyID: "ENEMY_BASIC", Count: 5, SpawnInterval: 2 * time.Second},
		{EnemyID: "ENEMY_BASIC", Count: 8, SpawnInterval: 1500 * time.Millisecond},
		{EnemyID: "ENEMY_FAST", Count: 8, SpawnInterval: time.Second},
		{EnemyID: "ENEMY_TANK", Count: 4, SpawnInterval: 2500 * time.Millisecond},
		{EnemyID: "ENEMY_BASIC", Count: 15, SpawnInterval: 800 * time.Millisecond},
		{EnemyID: "ENEMY_FAST", Count: 20, SpawnInterval: 500 * time.Millisecond},
		{EnemyID: "ENEMY_TANK", Count: 10, SpawnInterval: 1200 * time.Millisecond},
	}
}

// repeatFrom is how many of the last waves loop once the table runs out.
const repeatFrom = 3

// WaveFor returns the definition of wave number n (1-based). After the last
// defined wave the final repeatFrom waves repeat.
func WaveFor(waves []WaveDefinition, n int) (WaveDefinition, bool) {
	if len(waves) == 0 || n < 1 {
		return WaveDefinition{}, false
	}
	if n <= len(waves) {
		return waves[n-1], true
	}
	loop := min(repeatFrom, len(waves))
	start := len(waves) - loop
	return waves[start+(n-len(waves)-1)%loop], true
}
