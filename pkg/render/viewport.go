// pkg/render/viewport.go
package render

import (
	"math"

	"towerpower/internal/utils"
)

// Viewport maps world units to screen pixels: uniform scale plus offset.
type Viewport struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// FitViewport centres a worldW x worldH map inside the screen rectangle
// left after removing margin on every side and the top/bottom insets.
func FitViewport(worldW, worldH float64, screenW, screenH int, margin, topInset, bottomInset float64) Viewport {
	availW := float64(screenW) - 2*margin
	availH := float64(screenH) - 2*margin - topInset - bottomInset
	if worldW <= 0 || worldH <= 0 || availW <= 0 || availH <= 0 {
		return Viewport{Scale: 1}
	}
	scale := math.Min(availW/worldW, availH/worldH)
	return Viewport{
		Scale:   scale,
		OffsetX: margin + (availW-worldW*scale)/2,
		OffsetY: margin + topInset + (availH-worldH*scale)/2,
	}
}

// ToScreen converts a world position to screen coordinates.
func (v Viewport) ToScreen(p utils.Vec2) (float32, float32) {
	return float32(p.X*v.Scale + v.OffsetX), float32(p.Y*v.Scale + v.OffsetY)
}

// ToWorld converts a cursor position to world coordinates.
func (v Viewport) ToWorld(x, y int) utils.Vec2 {
	return utils.Vec2{
		X: (float64(x) - v.OffsetX) / v.Scale,
		Y: (float64(y) - v.OffsetY) / v.Scale,
	}
}

// Length converts a world distance to pixels.
func (v Viewport) Length(l float64) float32 {
	return float32(l * v.Scale)
}
