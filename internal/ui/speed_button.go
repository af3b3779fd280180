// internal/ui/speed_button.go
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

// SpeedButton переключает скорость игры, рисуется двумя треугольниками.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	StateColors   []color.Color
	CurrentState  int

	fillImg *ebiten.Image
	vs      []ebiten.Vertex
	is      []uint16
}

func NewSpeedButton(x, y, size float32, stateColors []color.Color) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

// clickScale grows the icon right after a click and eases back.
func clickScale(lastClick time.Time) float32 {
	elapsed := time.Since(lastClick).Seconds()
	return float32(1.0 + 0.3*math.Exp(-elapsed*8))
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	if b.fillImg == nil {
		b.fillImg = ebiten.NewImage(1, 1)
		b.fillImg.Fill(color.White)
	}
	triangleSize := b.Size * clickScale(b.LastClickTime)
	fill := toRGBA(b.StateColors[b.CurrentState])

	height := triangleSize * 1.2
	width := triangleSize
	offset := width * 0.8

	// Левый и правый треугольники
	for _, dx := range []float32{0, offset} {
		pts := []utils.Vec2{
			{X: float64(b.X - width + dx), Y: float64(b.Y - height/2)},
			{X: float64(b.X + dx), Y: float64(b.Y)},
			{X: float64(b.X - width + dx), Y: float64(b.Y + height/2)},
		}
		b.vs, b.is = render.FillPolygon(screen, b.fillImg, pts, fill, b.vs[:0], b.is[:0])
		strokeTriangle(screen, pts)
	}
}

func strokeTriangle(screen *ebiten.Image, pts []utils.Vec2) {
	for i := range pts {
		a, c := pts[i], pts[(i+1)%len(pts)]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(c.X), float32(c.Y), 1, color.White, true)
	}
}

func (b *SpeedButton) IsClicked(x, y int) bool {
	// Форма сложная, попадание считаем по кругу
	return math.Hypot(float64(x)-float64(b.X), float64(y)-float64(b.Y)) <= float64(b.Size*1.5)
}

// SetState выбирает состояние и запускает анимацию нажатия.
func (b *SpeedButton) SetState(state int) {
	b.CurrentState = state % len(b.StateColors)
	b.LastClickTime = time.Now()
}
