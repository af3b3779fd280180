// internal/ui/wave_indicator.go
package ui

import (
	"image"
	"image/color"
	"strings"

	"towerpower/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	Rect     image.Rectangle
	Color    color.Color
	fontFace font.Face
}

func NewWaveIndicator(rect image.Rectangle, face font.Face) *WaveIndicator {
	return &WaveIndicator{
		Rect:     rect,
		Color:    config.TextLightColor,
		fontFace: face,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int) {
	if waveNumber <= 0 {
		return
	}
	textColor := i.Color
	if waveNumber%10 == 0 {
		textColor = config.ErrorTextColor // каждая десятая волна
	}
	DrawCentered(screen, "Wave "+toRoman(waveNumber), i.fontFace, i.Rect, textColor)
}
