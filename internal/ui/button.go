// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"towerpower/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет кликабельную кнопку в UI.
type Button struct {
	Rect    image.Rectangle
	Text    string
	Sub     string // вторая строка, например цена
	Enabled bool
}

// Contains reports whether the screen point is on the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, face font.Face, fill color.Color) {
	r := b.Rect
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), fill, true)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, config.TextDarkColor, true)

	textColor := color.Color(config.TextDarkColor)
	if !b.Enabled {
		textColor = config.TextLightColor
	}
	if b.Sub == "" {
		DrawCentered(screen, b.Text, face, r, textColor)
		return
	}
	mid := r.Min.Y + r.Dy()/2
	DrawCentered(screen, b.Text, face, image.Rect(r.Min.X, r.Min.Y, r.Max.X, mid), textColor)
	DrawCentered(screen, b.Sub, face, image.Rect(r.Min.X, mid, r.Max.X, r.Max.Y), textColor)
}
