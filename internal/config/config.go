// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth   = 1280
	ScreenHeight  = 720
	MaxDeltaTime  = 0.06
	ClickCooldown = 150 // ms

	// Симуляция, в мировых единицах
	SimStep             = 1.0 / 60 // максимальный шаг симуляции
	ProjectileHitRadius = 0.2      // дистанция засчитывания попадания
	TowerSlotRadius     = 0.45     // радиус клика по слоту
	EnemyRadius         = 0.15
	ProjectileRadius    = 0.06
	TowerRadius         = 0.3
	EnemyTurnRate       = 12.0 // доля поворота к курсу в секунду

	BountyPerKill = 1
	LivesPerLeak  = 1

	WaveBreak = 5.0 // seconds between waves

	// HUD
	HUDPadding         = 10
	TowerButtonWidth   = 120
	TowerButtonHeight  = 48
	TowerButtonSpacing = 10
	SpeedButtonX       = ScreenWidth - 40
	SpeedButtonY       = 30
	SpeedButtonSize    = 14.0
	PauseButtonX       = ScreenWidth - 90
	PauseButtonY       = 30
	PauseButtonSize    = 12.0

	// Audio
	AudioSampleRate = 44100
	AudioVolume     = 0.4
)

var (
	BackgroundColor   = color.RGBA{100, 149, 237, 255} // cornflower blue
	GroundColor       = color.RGBA{171, 214, 133, 255}
	GridLineColor     = color.RGBA{150, 190, 115, 255}
	PathColor         = color.RGBA{255, 16, 240, 166}
	SlotColor         = color.RGBA{77, 77, 77, 120}
	EnemyColor        = color.RGBA{180, 40, 40, 255}
	EnemyStrokeColor  = color.RGBA{20, 20, 30, 255}
	ProjectileColor   = color.RGBA{255, 230, 120, 255}
	HealthBarColor    = color.RGBA{60, 220, 90, 255}
	RangeColor        = color.RGBA{255, 255, 255, 120}
	TowerStrokeColor  = color.RGBA{255, 255, 255, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	TextDarkColor     = color.RGBA{20, 20, 30, 255}
	PanelColor        = color.RGBA{20, 20, 30, 200}
	ButtonColor       = color.RGBA{230, 230, 230, 255}
	OverlayColor      = color.RGBA{0, 0, 0, 140}
	ErrorTextColor    = color.RGBA{255, 110, 110, 255}
	PauseButtonColor  = color.RGBA{70, 130, 180, 220}
	PlayButtonColor   = color.RGBA{60, 200, 90, 220}
	LivesColor        = color.RGBA{70, 110, 220, 255}
	LivesLowColor     = color.RGBA{220, 50, 50, 255}
	LivesEmptyColor   = color.RGBA{0, 0, 0, 255}
	SpeedMultipliers  = []float64{1, 2, 4}
	SpeedButtonColors = []color.Color{
		color.RGBA{70, 130, 180, 220},  // x1
		color.RGBA{220, 60, 60, 220},   // x2
		color.RGBA{194, 178, 128, 255}, // x4
	}
)
