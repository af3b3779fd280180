// internal/state/load_error_state.go
package state

import (
	"image"
	"log"

	"towerpower/internal/config"
	"towerpower/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// LoadErrorState is shown instead of a match when the level cannot be loaded.
type LoadErrorState struct {
	sm      *StateMachine
	session *Session
	Err     error
}

func NewLoadErrorState(sm *StateMachine, session *Session, err error) *LoadErrorState {
	return &LoadErrorState{sm: sm, session: session, Err: err}
}

func (s *LoadErrorState) Enter() {
	log.Printf("cannot start a match: %v", s.Err)
}

func (s *LoadErrorState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		s.sm.SetState(startMatch(s.sm, s.session))
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.sm.SetState(NewMenuState(s.sm, s.session))
	}
}

func (s *LoadErrorState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := s.session.Font
	mid := config.ScreenHeight / 2
	ui.DrawCentered(screen, "Level could not be loaded", face, image.Rect(0, mid-40, config.ScreenWidth, mid-20), config.ErrorTextColor)
	ui.DrawCentered(screen, s.Err.Error(), face, image.Rect(0, mid-10, config.ScreenWidth, mid+10), config.TextLightColor)
	ui.DrawCentered(screen, "R - retry    Esc - main menu", face, image.Rect(0, mid+30, config.ScreenWidth, mid+50), config.TextLightColor)
}

func (s *LoadErrorState) Exit() {}
