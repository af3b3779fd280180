// internal/state/pause_state.go
package state

import (
	"image"

	"towerpower/internal/config"
	"towerpower/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает матч и рисует его под затемнением.
type PauseState struct {
	sm            *StateMachine
	session       *Session
	previousState *GameState
}

func NewPauseState(sm *StateMachine, session *Session, prev *GameState) *PauseState {
	return &PauseState{sm: sm, session: session, previousState: prev}
}

func (s *PauseState) Enter() {
	s.previousState.hud.PauseButton.SetPaused(true)
	s.previousState.game.Logger.Println("paused")
}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		unpause = unpause || s.previousState.hud.PauseButton.IsClicked(x, y)
	}

	switch {
	case unpause:
		s.previousState.hud.PauseButton.TogglePause()
		s.previousState.game.Logger.Println("resumed")
		s.sm.SetState(s.previousState)
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		s.previousState.game.Logger.Println("match abandoned")
		s.sm.SetState(NewMenuState(s.sm, s.session))
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	mid := config.ScreenHeight / 2
	ui.DrawCentered(screen, "PAUSED", s.session.Font, image.Rect(0, mid-30, config.ScreenWidth, mid-10), config.TextLightColor)
	ui.DrawCentered(screen, "P / Esc - resume    Q - main menu", s.session.Font, image.Rect(0, mid, config.ScreenWidth, mid+20), config.TextLightColor)
}

func (s *PauseState) Exit() {}
