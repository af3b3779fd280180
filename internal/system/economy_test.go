package system

import (
	"errors"
	"math"
	"testing"

	"towerpower/internal/component"
	"towerpower/internal/entity"
	"towerpower/internal/event"
)

func TestEconomyKillsCredit(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	ecs.Player.Funds = 3
	NewEconomySystem(ecs, d, quietLogger)

	const kills = 17
	for i := 0; i < kills; i++ {
		d.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{EnemyID: 1, Bounty: 1}})
	}
	if ecs.Player.Funds != 3+kills {
		t.Fatalf("funds = %d, want %d", ecs.Player.Funds, 3+kills)
	}
}

func TestEconomyOverflowIsRejected(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	rec := listen(d, event.FundsChanged)
	ecs.Player.Funds = math.MaxUint32
	NewEconomySystem(ecs, d, quietLogger)

	d.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{EnemyID: 1, Bounty: 1}})
	if ecs.Player.Funds != math.MaxUint32 {
		t.Fatalf("funds = %d, want unchanged", ecs.Player.Funds)
	}
	if len(rec.events) != 0 {
		t.Fatal("FundsChanged dispatched on overflow")
	}
}

func TestEconomyLeaksEndGame(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	rec := listen(d, event.LivesChanged, event.GameOver)
	ecs.Player.Lives = 2
	NewEconomySystem(ecs, d, quietLogger)

	leak := event.Event{Type: event.EnemyReachedEnd, Data: uint64(1)}
	d.Dispatch(leak)
	if ecs.Player.Lives != 1 || ecs.Phase != component.PhasePlaying {
		t.Fatalf("after one leak: lives=%d phase=%v", ecs.Player.Lives, ecs.Phase)
	}
	d.Dispatch(leak)
	if ecs.Player.Lives != 0 || ecs.Phase != component.PhaseGameOver {
		t.Fatalf("after two leaks: lives=%d phase=%v", ecs.Player.Lives, ecs.Phase)
	}
	d.Dispatch(leak)
	if ecs.Player.Lives != 0 {
		t.Fatalf("lives wrapped to %d", ecs.Player.Lives)
	}
	if rec.count(event.GameOver) != 1 {
		t.Fatalf("GameOver count = %d, want 1", rec.count(event.GameOver))
	}
	if rec.count(event.LivesChanged) != 2 {
		t.Fatalf("LivesChanged count = %d, want 2", rec.count(event.LivesChanged))
	}
}

func TestEconomyPurchase(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	ecs.Player.Funds = 2
	sys := NewEconomySystem(ecs, d, quietLogger)

	if err := sys.Purchase(5); !errors.Is(err, component.ErrInsufficientFunds) {
		t.Fatalf("err = %v, want ErrInsufficientFunds", err)
	}
	if ecs.Player.Funds != 2 {
		t.Fatalf("failed purchase charged: funds = %d", ecs.Player.Funds)
	}
	if err := sys.Purchase(2); err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if ecs.Player.Funds != 0 {
		t.Fatalf("funds = %d, want 0", ecs.Player.Funds)
	}
}
