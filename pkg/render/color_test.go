package render

import (
	"image/color"
	"testing"
)

func TestDarkenAndLighten(t *testing.T) {
	c := color.RGBA{200, 100, 0, 128}
	if got := DarkenColor(c); got != (color.RGBA{100, 50, 0, 128}) {
		t.Errorf("DarkenColor = %v", got)
	}
	if got := LightenColor(c); got != (color.RGBA{227, 177, 127, 128}) {
		t.Errorf("LightenColor = %v", got)
	}
}
