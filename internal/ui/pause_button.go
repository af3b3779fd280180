// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"towerpower/internal/utils"
	"towerpower/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type PauseButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	IsPaused      bool
	PauseColor    color.Color
	PlayColor     color.Color

	fillImg *ebiten.Image
	vs      []ebiten.Vertex
	is      []uint16
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.Color) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	rectSize := b.Size * clickScale(b.LastClickTime)

	if b.IsPaused {
		// Треугольник (play)
		if b.fillImg == nil {
			b.fillImg = ebiten.NewImage(1, 1)
			b.fillImg.Fill(color.White)
		}
		pts := []utils.Vec2{
			{X: float64(b.X - rectSize), Y: float64(b.Y - rectSize*1.2)},
			{X: float64(b.X + rectSize), Y: float64(b.Y)},
			{X: float64(b.X - rectSize), Y: float64(b.Y + rectSize*1.2)},
		}
		b.vs, b.is = render.FillPolygon(screen, b.fillImg, pts, toRGBA(b.PlayColor), b.vs[:0], b.is[:0])
		strokeTriangle(screen, pts)
		return
	}

	// Два прямоугольника (pause)
	width := rectSize * 0.6
	height := rectSize * 2.0
	spacing := rectSize * 0.4
	for _, x := range []float32{b.X - width - spacing/2, b.X + spacing/2} {
		vector.DrawFilledRect(screen, x, b.Y-height/2, width, height, b.PauseColor, true)
		vector.StrokeRect(screen, x, b.Y-height/2, width, height, 1, color.White, true)
	}
}

func (b *PauseButton) IsClicked(x, y int) bool {
	return math.Hypot(float64(x)-float64(b.X), float64(y)-float64(b.Y)) <= float64(b.Size*1.5)
}

func (b *PauseButton) TogglePause() {
	b.IsPaused = !b.IsPaused
	b.LastClickTime = time.Now()
}

func (b *PauseButton) SetPaused(paused bool) {
	b.IsPaused = paused
}
