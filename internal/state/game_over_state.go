// internal/state/game_over_state.go
package state

import (
	"fmt"
	"image"

	"towerpower/internal/app"
	"towerpower/internal/config"
	"towerpower/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GameOverState показывает итоги матча.
type GameOverState struct {
	sm      *StateMachine
	session *Session
	last    *GameState
	stats   app.Stats
}

func NewGameOverState(sm *StateMachine, session *Session, last *GameState) *GameOverState {
	return &GameOverState{sm: sm, session: session, last: last, stats: last.game.Stats()}
}

func (s *GameOverState) Enter() {
	s.last.game.Logger.Printf("final: wave %d, kills %d, leaks %d, towers %d, %.0fs",
		s.stats.Wave, s.stats.Kills, s.stats.Leaks, s.stats.TowersBuilt, s.stats.Time)
}

func (s *GameOverState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		s.sm.SetState(startMatch(s.sm, s.session))
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.sm.SetState(NewMenuState(s.sm, s.session))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.last.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)

	face := s.session.Font
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Wave reached: %d", s.stats.Wave),
		fmt.Sprintf("Enemies killed: %d", s.stats.Kills),
		fmt.Sprintf("Towers built: %d", s.stats.TowersBuilt),
		fmt.Sprintf("Time: %.0fs", s.stats.Time),
		"",
		"Enter - play again    Esc - main menu",
	}
	y := config.ScreenHeight/2 - len(lines)*10
	for _, line := range lines {
		ui.DrawCentered(screen, line, face, image.Rect(0, y, config.ScreenWidth, y+20), config.TextLightColor)
		y += 20
	}
}

func (s *GameOverState) Exit() {}
