// internal/state/game_state.go
package state

import (
	"image/color"
	"time"

	"towerpower/internal/app"
	"towerpower/internal/config"
	"towerpower/internal/defs"
	"towerpower/internal/types"
	"towerpower/internal/ui"
	"towerpower/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const hudTopInset = 60 // место под HUD над картой

var buildKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}

// GameState — состояние игры
type GameState struct {
	sm            *StateMachine
	session       *Session
	game          *app.Game
	renderer      *render.MapRenderer
	viewport      render.Viewport
	hud           *ui.HUD
	panel         *ui.TowerPanel
	selectedTower types.EntityID
	lastClickTime time.Time
}

func NewGameState(sm *StateMachine, session *Session, game *app.Game) *GameState {
	lib := session.Library
	towers := make([]defs.TowerDefinition, 0, len(lib.TowerOrder))
	for _, id := range lib.TowerOrder {
		def, _ := lib.Tower(id)
		towers = append(towers, def)
	}
	panel := ui.NewTowerPanel(session.Font, towers)

	viewport := render.FitViewport(game.Map.Width(), game.Map.Height(), config.ScreenWidth, config.ScreenHeight,
		config.HUDPadding, hudTopInset, float64(panel.Height()))

	// Создаем и заполняем структуру с цветами для рендерера
	mapColors := &render.MapColors{
		BackgroundColor: config.BackgroundColor,
		GroundColor:     config.GroundColor,
		GridLineColor:   config.GridLineColor,
		PathColor:       config.PathColor,
		SlotColor:       config.SlotColor,
		StrokeWidth:     viewport.Length(game.Map.CellSize * 0.15),
	}

	return &GameState{
		sm:       sm,
		session:  session,
		game:     game,
		renderer: render.NewMapRenderer(game.Map, viewport, config.ScreenWidth, config.ScreenHeight, mapColors),
		viewport: viewport,
		hud:      ui.NewHUD(session.Font),
		panel:    panel,
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	g.panel.Update(g.game.CanAfford)

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.pause()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.cycleSpeed()
	}
	for i, key := range buildKeys {
		if i < len(g.session.Library.TowerOrder) && inpututil.IsKeyJustPressed(key) {
			g.build(g.session.Library.TowerOrder[i])
		}
	}

	// Обработка левой кнопки
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) &&
		time.Since(g.lastClickTime) >= time.Duration(config.ClickCooldown)*time.Millisecond {
		x, y := ebiten.CursorPosition()
		g.handleClick(x, y)
		g.lastClickTime = time.Now()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.panel.Hide()
		g.selectedTower = 0
	}

	g.game.Update(deltaTime)
	if g.game.IsOver() {
		g.sm.SetState(NewGameOverState(g.sm, g.session, g))
	}
}

// handleClick: HUD buttons first, then the build panel, then the map.
func (g *GameState) handleClick(x, y int) {
	switch {
	case g.hud.SpeedButton.IsClicked(x, y):
		g.cycleSpeed()
	case g.hud.PauseButton.IsClicked(x, y):
		g.pause()
	case g.panel.Contains(x, y):
		if towerID, ok := g.panel.ButtonAt(x, y); ok {
			g.build(towerID)
		}
	default:
		g.selectedTower = 0
		slot, ok := g.game.SlotAt(g.viewport.ToWorld(x, y))
		if !ok {
			g.panel.Hide()
			return
		}
		if id, built := g.game.TowerAt(slot); built {
			g.selectedTower = id
			g.panel.Hide()
			return
		}
		g.panel.Show(slot)
	}
}

func (g *GameState) build(towerID string) {
	if !g.panel.Active() {
		return
	}
	// отказ уже залогирован в Game
	if _, err := g.game.PlaceTower(g.panel.Slot, towerID); err != nil {
		return
	}
	g.panel.Hide()
}

func (g *GameState) cycleSpeed() {
	g.game.CycleSpeed()
	g.hud.SpeedButton.SetState(g.game.SpeedIndex)
}

func (g *GameState) pause() {
	g.sm.SetState(NewPauseState(g.sm, g.session, g))
}

// highlighted returns the tower whose range is drawn: the selected one, or
// the one under the cursor.
func (g *GameState) highlighted() types.EntityID {
	if _, ok := g.game.ECS.Towers[g.selectedTower]; ok {
		return g.selectedTower
	}
	x, y := ebiten.CursorPosition()
	if slot, ok := g.game.SlotAt(g.viewport.ToWorld(x, y)); ok {
		if id, built := g.game.TowerAt(slot); built {
			return id
		}
	}
	return 0
}

func (g *GameState) drawSlots(screen *ebiten.Image) {
	radius := g.viewport.Length(config.TowerSlotRadius)
	for i, s := range g.game.Map.TowerSlots {
		if _, built := g.game.TowerAt(i); built {
			continue
		}
		x, y := g.viewport.ToScreen(s)
		vector.DrawFilledCircle(screen, x, y, radius, slotColor(g.panel.Active() && g.panel.Slot == i), true)
	}
}

// slotColor подсвечивает выбранный слот.
func slotColor(selected bool) color.RGBA {
	if selected {
		return render.LightenColor(config.SlotColor)
	}
	return config.SlotColor
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
	g.drawSlots(screen)
	g.game.RenderSystem.Draw(screen, g.viewport, g.highlighted())

	p := g.game.Player()
	g.hud.Draw(screen, ui.HUDData{
		Funds:    p.Funds,
		Lives:    p.Lives,
		MaxLives: g.game.Map.StartingLives,
		Wave:     g.game.Stats().Wave,
		MatchID:  g.game.ID,
		Speed:    g.game.SpeedMultiplier(),
	})
	g.panel.Draw(screen)
}

func (g *GameState) Exit() {}
