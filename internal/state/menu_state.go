// internal/state/menu_state.go
package state

import (
	"fmt"
	"image"

	"towerpower/internal/config"
	"towerpower/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// MenuState — главное меню
type MenuState struct {
	sm      *StateMachine
	session *Session
}

func NewMenuState(sm *StateMachine, session *Session) *MenuState {
	return &MenuState{sm: sm, session: session}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace), inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		m.sm.SetState(startMatch(m.sm, m.session))
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		m.sm.Quit()
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := m.session.Font
	cx := config.ScreenWidth / 2

	ui.DrawCentered(screen, "TOWER POWER", face, image.Rect(0, 160, config.ScreenWidth, 200), config.TextLightColor)
	ui.DrawCentered(screen, "Space / Enter - play    Esc - quit", face, image.Rect(0, 220, config.ScreenWidth, 240), config.TextLightColor)

	y := 300
	for _, id := range m.session.Library.TowerOrder {
		def, _ := m.session.Library.Tower(id)
		line := fmt.Sprintf("%-8s cost %d  range %.1f  every %.2fs", def.Name, def.Cost, def.Range, def.FireInterval)
		text.Draw(screen, line, face, cx-150, y, config.TextLightColor)
		y += 20
	}
}

func (m *MenuState) Exit() {}
