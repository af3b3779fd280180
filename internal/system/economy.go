// internal/system/economy.go
package system

import (
	"log"

	"towerpower/internal/component"
	"towerpower/internal/config"
	"towerpower/internal/entity"
	"towerpower/internal/event"
)

// EconomySystem credits the enemy's bounty on a kill and takes a life on a
// leak. Losing the last life ends the match.
type EconomySystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	logger          *log.Logger
}

func NewEconomySystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, logger *log.Logger) *EconomySystem {
	s := &EconomySystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
	eventDispatcher.Subscribe(event.EnemyKilled, s)
	eventDispatcher.Subscribe(event.EnemyReachedEnd, s)
	return s
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *EconomySystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		data, ok := e.Data.(event.EnemyKilledData)
		if !ok {
			return
		}
		s.credit(data.Bounty)
	case event.EnemyReachedEnd:
		s.loseLives(config.LivesPerLeak)
	}
}

func (s *EconomySystem) credit(amount uint32) {
	funds, err := s.ecs.Player.AddFunds(amount)
	if err != nil {
		s.logger.Printf("economy: cannot credit %d (balance %d): %v", amount, s.ecs.Player.Funds, err)
		return
	}
	s.logger.Printf("Kill! Money: %d", funds)
	s.eventDispatcher.Dispatch(event.Event{Type: event.FundsChanged, Data: funds})
}

func (s *EconomySystem) loseLives(amount uint32) {
	if s.ecs.Phase == component.PhaseGameOver {
		return
	}
	before := s.ecs.Player.Lives
	lives := s.ecs.Player.Damage(amount)
	s.logger.Printf("Subtracting %d lives. Current: %d", amount, before)
	s.eventDispatcher.Dispatch(event.Event{Type: event.LivesChanged, Data: lives})

	if !s.ecs.Player.Alive() {
		s.ecs.Phase = component.PhaseGameOver
		s.logger.Println("GAME OVER")
		s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver})
	}
}

// Purchase debits cost. Nothing is charged when the balance is too low.
func (s *EconomySystem) Purchase(cost uint32) error {
	funds, err := s.ecs.Player.SpendFunds(cost)
	if err != nil {
		return err
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.FundsChanged, Data: funds})
	return nil
}
