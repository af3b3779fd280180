// internal/app/game.go
package app

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"towerpower/internal/component"
	"towerpower/internal/config"
	"towerpower/internal/defs"
	"towerpower/internal/entity"
	"towerpower/internal/event"
	"towerpower/internal/level"
	"towerpower/internal/system"
	"towerpower/internal/types"

	"github.com/google/uuid"
)

// ErrNoMap is returned by NewGame when there is no level to play on.
var ErrNoMap = errors.New("no map loaded")

// Stats summarises a match for the HUD and the game over screen.
type Stats struct {
	Kills       int
	Leaks       int
	TowersBuilt int
	Wave        int
	Time        float64
}

// Game holds the main game state and logic.
type Game struct {
	ID               string
	Map              *level.GameMap
	Library          *defs.Library
	ECS              *entity.ECS
	EventDispatcher  *event.Dispatcher
	Logger           *log.Logger
	MovementSystem   *system.MovementSystem
	WaveSystem       *system.WaveSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	EconomySystem    *system.EconomySystem
	RenderSystem     *system.RenderSystem
	SpeedIndex       int

	slots []types.EntityID // башня в каждом слоте, 0 = свободен
	stats Stats
}

// NewGame initializes a new match on m. Log output goes to logOut, or to
// stderr when it is nil.
func NewGame(m *level.GameMap, lib *defs.Library, logOut io.Writer) (*Game, error) {
	if m == nil {
		return nil, ErrNoMap
	}
	if len(m.Waypoints) == 0 {
		return nil, fmt.Errorf("map %q: %w", m.Name, level.ErrNoWaypoints)
	}
	if lib == nil {
		lib = defs.DefaultLibrary()
	}
	if logOut == nil {
		logOut = os.Stderr
	}

	id := uuid.NewString()[:8]
	logger := log.New(logOut, fmt.Sprintf("[match %s] ", id), log.LstdFlags)

	ecs := entity.NewECS()
	ecs.Player.Funds = m.StartingFunds
	ecs.Player.Lives = m.StartingLives
	eventDispatcher := event.NewDispatcher()

	g := &Game{
		ID:               id,
		Map:              m,
		Library:          lib,
		ECS:              ecs,
		EventDispatcher:  eventDispatcher,
		Logger:           logger,
		MovementSystem:   system.NewMovementSystem(ecs, eventDispatcher),
		WaveSystem:       system.NewWaveSystem(ecs, lib, m.Waypoints, eventDispatcher, logger),
		CombatSystem:     system.NewCombatSystem(ecs, eventDispatcher),
		ProjectileSystem: system.NewProjectileSystem(ecs, eventDispatcher),
		EconomySystem:    system.NewEconomySystem(ecs, eventDispatcher, logger),
		RenderSystem:     system.NewRenderSystem(ecs),
		slots:            make([]types.EntityID, len(m.TowerSlots)),
	}

	for _, t := range []event.EventType{event.EnemyKilled, event.EnemyReachedEnd, event.TowerPlaced, event.WaveStarted} {
		eventDispatcher.SubscribeFunc(t, g.recordStats)
	}

	logger.Printf("match started on %q: %d waypoints, %d slots, funds %d, lives %d",
		m.Name, len(m.Waypoints), len(m.TowerSlots), m.StartingFunds, m.StartingLives)
	return g, nil
}

// recordStats ведёт статистику матча.
func (g *Game) recordStats(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		g.stats.Kills++
	case event.EnemyReachedEnd:
		g.stats.Leaks++
	case event.TowerPlaced:
		g.stats.TowersBuilt++
	case event.WaveStarted:
		if data, ok := e.Data.(event.WaveData); ok {
			g.stats.Wave = data.Number
		}
	}
}

// Update progresses the game by one frame. The frame time is scaled by the
// current speed and split into steps no longer than config.SimStep.
func (g *Game) Update(deltaTime float64) {
	if deltaTime <= 0 || g.IsOver() {
		return
	}
	dt := deltaTime * g.SpeedMultiplier()
	steps := int(math.Ceil(dt / config.SimStep))
	step := dt / float64(steps)
	for i := 0; i < steps && !g.IsOver(); i++ {
		g.Step(step)
	}
}

// Step advances the simulation by exactly deltaTime seconds.
func (g *Game) Step(deltaTime float64) {
	if g.IsOver() {
		return
	}
	g.ECS.GameTime += deltaTime
	g.stats.Time = g.ECS.GameTime

	g.WaveSystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)
	g.CombatSystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
}

// IsOver reports whether the player has run out of lives.
func (g *Game) IsOver() bool {
	return g.ECS.Phase == component.PhaseGameOver
}

// Stats returns a snapshot of the match statistics.
func (g *Game) Stats() Stats {
	return g.stats
}

// Player returns the player's funds and lives.
func (g *Game) Player() component.Player {
	return *g.ECS.Player
}

// SpeedMultiplier returns the current time scale.
func (g *Game) SpeedMultiplier() float64 {
	return config.SpeedMultipliers[g.SpeedIndex]
}

// CycleSpeed switches to the next time scale (x1, x2, x4, x1...) and returns it.
func (g *Game) CycleSpeed() float64 {
	g.SpeedIndex = (g.SpeedIndex + 1) % len(config.SpeedMultipliers)
	g.Logger.Printf("speed x%g", g.SpeedMultiplier())
	return g.SpeedMultiplier()
}
