// internal/system/wave.go
package system

import (
	"log"

	"towerpower/internal/component"
	"towerpower/internal/config"
	"towerpower/internal/defs"
	"towerpower/internal/entity"
	"towerpower/internal/event"
	"towerpower/internal/types"
	"towerpower/internal/utils"
)

type WaveSystem struct {
	ecs             *entity.ECS
	library         *defs.Library
	waypoints       []utils.Vec2
	eventDispatcher *event.Dispatcher
	logger          *log.Logger
	lastWave        int
	breakTimer      float64
}

func NewWaveSystem(ecs *entity.ECS, library *defs.Library, waypoints []utils.Vec2, eventDispatcher *event.Dispatcher, logger *log.Logger) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		library:         library,
		waypoints:       waypoints,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

// Update spawns the enemies of the current wave on its timer. A wave ends
// once it has spawned everything and no enemy is left alive; the next one
// starts after config.WaveBreak seconds.
func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.ecs.Wave
	if wave == nil {
		s.breakTimer -= deltaTime
		if s.breakTimer <= 0 {
			s.StartWave(s.lastWave + 1)
		}
		return
	}

	if !wave.Done() {
		wave.SpawnTimer += deltaTime
		if wave.SpawnTimer >= wave.SpawnInterval {
			s.spawnEnemy(wave.EnemyID)
			wave.EnemiesToSpawn--
			wave.SpawnTimer -= wave.SpawnInterval
		}
		return
	}

	if len(s.ecs.Enemies) == 0 {
		s.ecs.Wave = nil
		s.breakTimer = config.WaveBreak
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: event.WaveData{Number: wave.Number}})
	}
}

// StartWave makes wave n current. It returns nil when there is no
// definition for it.
func (s *WaveSystem) StartWave(n int) *component.Wave {
	waveDef, ok := defs.WaveFor(s.library.Waves, n)
	if !ok {
		s.logger.Printf("wave %d: no definition, waves stop", n)
		s.breakTimer = config.WaveBreak
		return nil
	}

	wave := &component.Wave{
		Number:         n,
		EnemyID:        waveDef.EnemyID,
		EnemiesToSpawn: waveDef.Count,
		SpawnTimer:     0,
		SpawnInterval:  waveDef.SpawnInterval.Seconds(),
	}
	s.ecs.Wave = wave
	s.lastWave = n
	s.logger.Printf("wave %d: %d x %s", n, waveDef.Count, waveDef.EnemyID)
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{Number: n}})
	return wave
}

func (s *WaveSystem) spawnEnemy(defID string) types.EntityID {
	def, ok := s.library.Enemy(defID)
	if !ok {
		s.logger.Printf("Error: Enemy definition not found for ID: %s", defID)
		return 0
	}
	if len(s.waypoints) == 0 {
		return 0
	}

	bounty := def.Bounty
	if bounty == 0 {
		bounty = config.BountyPerKill
	}

	id := s.ecs.NewEntity()
	spawn := s.waypoints[0]
	s.ecs.Positions[id] = &component.Position{X: spawn.X, Y: spawn.Y}
	heading := 0.0
	if len(s.waypoints) > 1 {
		heading = s.waypoints[1].Sub(spawn).Angle()
	}
	s.ecs.Velocities[id] = &component.Velocity{Speed: def.Speed, Heading: heading}
	s.ecs.Paths[id] = &component.Path{Waypoints: s.waypoints, CurrentIndex: 0}
	s.ecs.Healths[id] = &component.Health{Value: def.Health, Max: def.Health}
	s.ecs.Enemies[id] = &component.Enemy{DefID: defID, Bounty: bounty}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:     def.Visuals.Color,
		Radius:    config.EnemyRadius * def.Visuals.RadiusFactor,
		HasStroke: true,
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: id})
	return id
}
