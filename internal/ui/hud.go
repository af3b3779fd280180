// internal/ui/hud.go
package ui

import (
	"fmt"
	"image"

	"towerpower/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// HUDData is what the HUD shows each frame.
type HUDData struct {
	Funds    uint32
	Lives    uint32
	MaxLives uint32
	Wave     int
	MatchID  string
	Speed    float64
}

// HUD — верхняя панель: деньги, жизни, волна, скорость и пауза.
type HUD struct {
	fontFace    font.Face
	lives       *LivesIndicator
	wave        *WaveIndicator
	SpeedButton *SpeedButton
	PauseButton *PauseButton
}

func NewHUD(face font.Face) *HUD {
	return &HUD{
		fontFace: face,
		lives:    NewLivesIndicator(config.HUDPadding, config.HUDPadding+36, face),
		wave:     NewWaveIndicator(image.Rect(0, 0, config.ScreenWidth, 40), face),
		SpeedButton: NewSpeedButton(
			config.SpeedButtonX,
			config.SpeedButtonY,
			config.SpeedButtonSize,
			config.SpeedButtonColors,
		),
		PauseButton: NewPauseButton(
			config.PauseButtonX,
			config.PauseButtonY,
			config.PauseButtonSize,
			config.PauseButtonColor,
			config.PlayButtonColor,
		),
	}
}

// Contains reports whether a click at the point belongs to a HUD button.
func (h *HUD) Contains(x, y int) bool {
	return h.SpeedButton.IsClicked(x, y) || h.PauseButton.IsClicked(x, y)
}

func (h *HUD) Draw(screen *ebiten.Image, d HUDData) {
	text.Draw(screen, fmt.Sprintf("Money: %d", d.Funds), h.fontFace, config.HUDPadding, config.HUDPadding+13, config.TextLightColor)
	h.lives.Draw(screen, d.Lives, d.MaxLives)
	h.wave.Draw(screen, d.Wave)

	speed := fmt.Sprintf("x%g", d.Speed)
	text.Draw(screen, speed, h.fontFace, config.SpeedButtonX-8, config.SpeedButtonY+30, config.TextLightColor)
	h.SpeedButton.Draw(screen)
	h.PauseButton.Draw(screen)

	text.Draw(screen, "match "+d.MatchID, h.fontFace, config.HUDPadding, config.ScreenHeight-config.HUDPadding, config.TextLightColor)
}
