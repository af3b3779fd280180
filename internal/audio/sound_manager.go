// internal/audio/sound_manager.go
package audio

import (
	"sync"
	"time"

	"towerpower/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SoundManager plays game sound effects through a single speaker mixer.
// Until Initialize succeeds every Play is a no-op, so a missing audio
// device never stops the game.
type SoundManager struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
	initialized bool
}

func NewSoundManager(sampleRate int, volume float64) *SoundManager {
	return &SoundManager{
		rate:   beep.SampleRate(sampleRate),
		volume: volume,
		mixer:  &beep.Mixer{},
	}
}

// Initialize opens the audio device.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sm.rate, sm.rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything still playing.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Play starts a sound effect.
func (sm *SoundManager) Play(t SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := Sound(t, sm.rate, sm.volume)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Attach subscribes the manager to the match events that make a sound.
func (sm *SoundManager) Attach(d *event.Dispatcher) {
	for t := range eventSounds {
		d.Subscribe(t, sm)
	}
}

var eventSounds = map[event.EventType]SoundType{
	event.TowerPlaced:     SoundBuild,
	event.EnemyKilled:     SoundKill,
	event.EnemyReachedEnd: SoundLeak,
	event.WaveStarted:     SoundWave,
	event.GameOver:        SoundGameOver,
}

func (sm *SoundManager) OnEvent(e event.Event) {
	if t, ok := eventSounds[e.Type]; ok {
		sm.Play(t)
	}
}
