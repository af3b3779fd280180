// internal/ui/lives_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"towerpower/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	LivesCols          = 5
	LivesMaxCircles    = 20
	LivesCircleRadius  = 6.0
	LivesCircleSpacing = 4.0
)

// LivesIndicator отображает жизни игрока сеткой кружков.
type LivesIndicator struct {
	X, Y     float32
	fontFace font.Face
}

func NewLivesIndicator(x, y float32, face font.Face) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y, fontFace: face}
}

// livesColor: above half the spare lives are blue, the rest red; empty is black.
func livesColor(j int, lives, maxLives uint32) color.Color {
	if uint32(j) >= lives {
		return config.LivesEmptyColor
	}
	half := maxLives / 2
	if lives > half && uint32(j) < lives-half {
		return config.LivesColor
	}
	return config.LivesLowColor
}

// Draw рисует индикатор. With more than LivesMaxCircles lives only the
// counter is shown.
func (i *LivesIndicator) Draw(screen *ebiten.Image, lives, maxLives uint32) {
	label := fmt.Sprintf("Lives: %d/%d", lives, maxLives)
	text.Draw(screen, label, i.fontFace, int(i.X), int(i.Y), config.TextLightColor)
	if maxLives > LivesMaxCircles {
		return
	}

	startY := i.Y + 8
	step := float32(LivesCircleRadius*2 + LivesCircleSpacing)
	for j := 0; j < int(maxLives); j++ {
		row, col := j/LivesCols, j%LivesCols
		cx := i.X + float32(col)*step + LivesCircleRadius
		cy := startY + float32(row)*step + LivesCircleRadius
		vector.DrawFilledCircle(screen, cx, cy, LivesCircleRadius, livesColor(j, lives, maxLives), true)
		vector.StrokeCircle(screen, cx, cy, LivesCircleRadius, 1, color.White, true)
	}
}
