// pkg/render/color.go
package render

import "image/color"

// MapColors holds all the color definitions needed to render the static map background.
type MapColors struct {
	BackgroundColor color.RGBA
	GroundColor     color.RGBA
	GridLineColor   color.RGBA
	PathColor       color.RGBA
	SlotColor       color.RGBA
	StrokeWidth     float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor moves a color halfway to white.
func LightenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: c.R + (255-c.R)/2,
		G: c.G + (255-c.G)/2,
		B: c.B + (255-c.B)/2,
		A: c.A,
	}
}
