// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"towerpower/internal/audio"
	"towerpower/internal/config"
	"towerpower/internal/defs"
	"towerpower/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	if a.stateMachine.ShouldQuit() {
		return ebiten.Termination
	}
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	envFile := flag.String("env", ".env", "optional .env file with TOWERPOWER_* settings")
	flag.Parse()

	settings, err := config.LoadSettings(*envFile)
	if err != nil {
		log.Fatalf("settings: %v", err)
	}

	if settings.PprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(settings.PprofAddr, nil))
		}()
	}

	lib := defs.DefaultLibrary()
	if settings.DefsDir != "" {
		if lib, err = defs.LoadLibrary(settings.DefsDir); err != nil {
			log.Fatalf("definitions: %v", err)
		}
	}

	var sound *audio.SoundManager
	if settings.AudioEnabled {
		sound = audio.NewSoundManager(config.AudioSampleRate, config.AudioVolume)
		if err := sound.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
			sound = nil
		} else {
			defer sound.Cleanup()
		}
	}

	session := state.NewSession(settings, lib, sound)
	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(session.StartState(sm))

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Tower Power")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
