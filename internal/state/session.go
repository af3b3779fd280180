// internal/state/session.go
package state

import (
	"towerpower/internal/app"
	"towerpower/internal/audio"
	"towerpower/internal/config"
	"towerpower/internal/defs"
	"towerpower/internal/level"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Session is what outlives a single match: settings, definitions, the
// sound device and the font.
type Session struct {
	Settings config.Settings
	Library  *defs.Library
	Sound    *audio.SoundManager // nil when audio is off
	Font     font.Face
}

func NewSession(settings config.Settings, lib *defs.Library, sound *audio.SoundManager) *Session {
	if lib == nil {
		lib = defs.DefaultLibrary()
	}
	return &Session{
		Settings: settings,
		Library:  lib,
		Sound:    sound,
		Font:     basicfont.Face7x13,
	}
}

// StartState is the first state of the program.
func (s *Session) StartState(sm *StateMachine) State {
	if s.Settings.StartFromMenu {
		return NewMenuState(sm, s)
	}
	return startMatch(sm, s)
}

// startMatch loads the level and returns the state to switch to: the match,
// or an error screen when the level cannot be used.
func startMatch(sm *StateMachine, s *Session) State {
	m, err := level.Load(s.Settings.LevelPath)
	if err != nil {
		return NewLoadErrorState(sm, s, err)
	}
	g, err := app.NewGame(m, s.Library, nil)
	if err != nil {
		return NewLoadErrorState(sm, s, err)
	}
	if s.Sound != nil {
		s.Sound.Attach(g.EventDispatcher)
	}
	return NewGameState(sm, s, g)
}
