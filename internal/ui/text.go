// internal/ui/text.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// DrawCentered рисует строку по центру прямоугольника.
func DrawCentered(screen *ebiten.Image, s string, face font.Face, r image.Rectangle, clr color.Color) {
	b := text.BoundString(face, s)
	x := r.Min.X + (r.Dx()-b.Dx())/2 - b.Min.X
	y := r.Min.Y + (r.Dy()-b.Dy())/2 - b.Min.Y
	text.Draw(screen, s, face, x, y, clr)
}

func toRGBA(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}
