package app

import (
	"errors"
	"io"
	"math"
	"testing"

	"towerpower/internal/component"
	"towerpower/internal/event"
	"towerpower/internal/level"
	"towerpower/internal/utils"
)

func testMap() *level.GameMap {
	return &level.GameMap{
		Name:          "straight",
		Columns:       16,
		Rows:          4,
		CellSize:      1,
		Waypoints:     []utils.Vec2{{X: 0.5, Y: 1.5}, {X: 15.5, Y: 1.5}},
		TowerSlots:    []utils.Vec2{{X: 4.5, Y: 2.5}, {X: 8.5, Y: 2.5}, {X: 12.5, Y: 0.5}},
		StartingFunds: 3,
		StartingLives: 10,
	}
}

func newTestGame(t *testing.T, m *level.GameMap) *Game {
	t.Helper()
	g, err := NewGame(m, nil, io.Discard)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func TestNewGameRejectsMissingMap(t *testing.T) {
	if _, err := NewGame(nil, nil, io.Discard); !errors.Is(err, ErrNoMap) {
		t.Fatalf("err = %v, want ErrNoMap", err)
	}
	m := testMap()
	m.Waypoints = nil
	if _, err := NewGame(m, nil, io.Discard); !errors.Is(err, level.ErrNoWaypoints) {
		t.Fatalf("err = %v, want ErrNoWaypoints", err)
	}
}

func TestNewGameStartingResources(t *testing.T) {
	g := newTestGame(t, testMap())
	p := g.Player()
	if p.Funds != 3 || p.Lives != 10 {
		t.Fatalf("player = %+v, want funds 3 lives 10", p)
	}
	if len(g.ID) != 8 {
		t.Fatalf("match id %q, want 8 chars", g.ID)
	}
}

func TestPlaceTower(t *testing.T) {
	g := newTestGame(t, testMap())
	var placed []event.TowerPlacedData
	g.EventDispatcher.SubscribeFunc(event.TowerPlaced, func(e event.Event) {
		placed = append(placed, e.Data.(event.TowerPlacedData))
	})

	id, err := g.PlaceTower(0, "TOWER_CANNON")
	if err != nil {
		t.Fatalf("PlaceTower: %v", err)
	}
	if g.Player().Funds != 1 {
		t.Fatalf("funds = %d, want 1", g.Player().Funds)
	}
	tower := g.ECS.Towers[id]
	if tower == nil || tower.DefID != "TOWER_CANNON" || tower.SlotIndex != 0 {
		t.Fatalf("tower = %+v", tower)
	}
	pos := g.ECS.Positions[id]
	if pos.X != 4.5 || pos.Y != 2.5 {
		t.Fatalf("tower at (%f, %f), want slot position", pos.X, pos.Y)
	}
	if got, ok := g.TowerAt(0); !ok || got != id {
		t.Fatalf("TowerAt(0) = %d, %v", got, ok)
	}
	if len(placed) != 1 || placed[0].Cost != 2 || placed[0].TowerID != id {
		t.Fatalf("TowerPlaced events = %+v", placed)
	}
	if g.Stats().TowersBuilt != 1 {
		t.Fatalf("towers built = %d, want 1", g.Stats().TowersBuilt)
	}
}

func TestPlaceTowerRejected(t *testing.T) {
	tests := []struct {
		name    string
		slot    int
		tower   string
		prepare func(g *Game)
		wantErr error
	}{
		{name: "insufficient funds", slot: 1, tower: "TOWER_ROCK", wantErr: component.ErrInsufficientFunds},
		{name: "unknown slot", slot: 7, tower: "TOWER_LAZER", wantErr: ErrUnknownSlot},
		{name: "negative slot", slot: -1, tower: "TOWER_LAZER", wantErr: ErrUnknownSlot},
		{name: "unknown tower", slot: 1, tower: "TOWER_NOPE", wantErr: ErrUnknownTower},
		{
			name:  "occupied slot",
			slot:  1,
			tower: "TOWER_LAZER",
			prepare: func(g *Game) {
				if _, err := g.PlaceTower(1, "TOWER_LAZER"); err != nil {
					panic(err)
				}
			},
			wantErr: ErrSlotOccupied,
		},
		{
			name:    "game over",
			slot:    1,
			tower:   "TOWER_LAZER",
			prepare: func(g *Game) { g.ECS.Phase = component.PhaseGameOver },
			wantErr: ErrGameOver,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, testMap())
			if tt.prepare != nil {
				tt.prepare(g)
			}
			funds := g.Player().Funds
			towers := len(g.ECS.Towers)

			id, err := g.PlaceTower(tt.slot, tt.tower)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if id != 0 {
				t.Fatalf("id = %d, want 0", id)
			}
			if g.Player().Funds != funds {
				t.Fatalf("funds = %d, want unchanged %d", g.Player().Funds, funds)
			}
			if len(g.ECS.Towers) != towers {
				t.Fatal("a tower was built")
			}
		})
	}
}

func TestCanAfford(t *testing.T) {
	g := newTestGame(t, testMap())
	for id, want := range map[string]bool{"TOWER_LAZER": true, "TOWER_CANNON": true, "TOWER_ROCK": false, "TOWER_NOPE": false} {
		if got := g.CanAfford(id); got != want {
			t.Errorf("CanAfford(%s) = %v, want %v", id, got, want)
		}
	}
}

func TestSlotAt(t *testing.T) {
	g := newTestGame(t, testMap())
	if slot, ok := g.SlotAt(utils.Vec2{X: 8.6, Y: 2.4}); !ok || slot != 1 {
		t.Fatalf("SlotAt near slot 1 = %d, %v", slot, ok)
	}
	if _, ok := g.SlotAt(utils.Vec2{X: 6.5, Y: 2.5}); ok {
		t.Fatal("SlotAt between slots found one")
	}
}

func TestCycleSpeed(t *testing.T) {
	g := newTestGame(t, testMap())
	want := []float64{2, 4, 1, 2}
	for i, w := range want {
		if got := g.CycleSpeed(); got != w {
			t.Fatalf("cycle %d: speed = %g, want %g", i, got, w)
		}
	}
}

func TestUpdateScalesBySpeed(t *testing.T) {
	g := newTestGame(t, testMap())
	g.Update(0.05)
	if math.Abs(g.ECS.GameTime-0.05) > 1e-9 {
		t.Fatalf("game time = %f, want 0.05", g.ECS.GameTime)
	}
	g.CycleSpeed()
	g.CycleSpeed() // x4
	g.Update(0.05)
	if math.Abs(g.ECS.GameTime-0.25) > 1e-9 {
		t.Fatalf("game time = %f, want 0.25", g.ECS.GameTime)
	}
}

// Every spawned enemy is either killed, leaked or still walking, and funds
// and lives follow kills and leaks exactly.
func TestMatchAccounting(t *testing.T) {
	g := newTestGame(t, testMap())
	spawned := 0
	var bounty uint32
	g.EventDispatcher.SubscribeFunc(event.EnemySpawned, func(event.Event) { spawned++ })
	g.EventDispatcher.SubscribeFunc(event.EnemyKilled, func(e event.Event) {
		bounty += e.Data.(event.EnemyKilledData).Bounty
	})

	if _, err := g.PlaceTower(0, "TOWER_LAZER"); err != nil {
		t.Fatalf("PlaceTower: %v", err)
	}
	for i := 0; i < 60*60; i++ {
		g.Update(1.0 / 60)
	}

	st := g.Stats()
	if st.Kills == 0 {
		t.Fatal("tower never killed anything")
	}
	if st.Wave < 2 {
		t.Fatalf("wave = %d, want at least 2", st.Wave)
	}
	if spawned != st.Kills+st.Leaks+len(g.ECS.Enemies) {
		t.Fatalf("spawned %d != kills %d + leaks %d + alive %d", spawned, st.Kills, st.Leaks, len(g.ECS.Enemies))
	}
	p := g.Player()
	if want := 3 - 1 + bounty; p.Funds != want {
		t.Fatalf("funds = %d, want %d", p.Funds, want)
	}
	if !g.IsOver() {
		if want := uint32(10 - st.Leaks); p.Lives != want {
			t.Fatalf("lives = %d, want %d", p.Lives, want)
		}
	}
}

func TestMatchEndsWhenLivesRunOut(t *testing.T) {
	m := testMap()
	m.StartingLives = 2
	g := newTestGame(t, m)
	overs := 0
	g.EventDispatcher.SubscribeFunc(event.GameOver, func(event.Event) { overs++ })

	for i := 0; i < 60*120 && !g.IsOver(); i++ {
		g.Update(1.0 / 60)
	}
	if !g.IsOver() {
		t.Fatal("match did not end")
	}
	if g.Player().Lives != 0 || g.Stats().Leaks != 2 {
		t.Fatalf("lives = %d leaks = %d", g.Player().Lives, g.Stats().Leaks)
	}

	before := g.ECS.GameTime
	g.Update(1)
	if g.ECS.GameTime != before {
		t.Fatal("simulation advanced after game over")
	}
	if overs != 1 {
		t.Fatalf("GameOver dispatched %d times", overs)
	}
	if _, err := g.PlaceTower(0, "TOWER_LAZER"); !errors.Is(err, ErrGameOver) {
		t.Fatalf("err = %v, want ErrGameOver", err)
	}
}
