// internal/ui/tower_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"towerpower/internal/config"
	"towerpower/internal/defs"
	"towerpower/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelTitleHeight = 20
	animationSpeed   = 10.0
)

// TowerButton is one entry of the build panel.
type TowerButton struct {
	Button
	TowerID string
	Cost    uint32
}

// TowerPanel — панель постройки, выезжает снизу при выборе слота.
type TowerPanel struct {
	IsVisible bool
	Slot      int
	Buttons   []TowerButton
	fontFace  font.Face
	width     int
	height    int
	currentY  float64
	targetY   float64
}

// NewTowerPanel creates a panel with one button per tower, in the given order.
func NewTowerPanel(face font.Face, towers []defs.TowerDefinition) *TowerPanel {
	n := len(towers)
	p := &TowerPanel{
		Slot:     -1,
		fontFace: face,
		width:    n*config.TowerButtonWidth + (n+1)*config.TowerButtonSpacing,
		height:   panelTitleHeight + config.TowerButtonHeight + 2*config.TowerButtonSpacing,
		currentY: config.ScreenHeight,
		targetY:  config.ScreenHeight,
	}
	for _, def := range towers {
		p.Buttons = append(p.Buttons, TowerButton{
			Button:  Button{Text: def.Name, Sub: fmt.Sprintf("%d$", def.Cost), Enabled: true},
			TowerID: def.ID,
			Cost:    def.Cost,
		})
	}
	p.layout()
	return p
}

// Height returns the panel height in pixels when fully shown.
func (p *TowerPanel) Height() int {
	return p.height
}

func (p *TowerPanel) rect() image.Rectangle {
	x0 := (config.ScreenWidth - p.width) / 2
	y0 := int(p.currentY)
	return image.Rect(x0, y0, x0+p.width, y0+p.height)
}

func (p *TowerPanel) layout() {
	r := p.rect()
	y := r.Min.Y + panelTitleHeight + config.TowerButtonSpacing
	for i := range p.Buttons {
		x := r.Min.X + config.TowerButtonSpacing + i*(config.TowerButtonWidth+config.TowerButtonSpacing)
		p.Buttons[i].Rect = image.Rect(x, y, x+config.TowerButtonWidth, y+config.TowerButtonHeight)
	}
}

func (p *TowerPanel) Show(slot int) {
	p.Slot = slot
	p.IsVisible = true
	p.targetY = float64(config.ScreenHeight - p.height)
}

func (p *TowerPanel) Hide() {
	p.targetY = config.ScreenHeight
}

// Active reports whether the panel is shown (or sliding in) for a slot.
func (p *TowerPanel) Active() bool {
	return p.IsVisible && p.targetY < config.ScreenHeight
}

// Update animates the panel and greys out the towers canAfford rejects.
func (p *TowerPanel) Update(canAfford func(towerID string) bool) {
	// Анимация панели
	if p.currentY != p.targetY {
		diff := p.targetY - p.currentY
		if math.Abs(diff) < animationSpeed {
			p.currentY = p.targetY
		} else if diff > 0 {
			p.currentY += animationSpeed
		} else {
			p.currentY -= animationSpeed
		}

		if p.currentY >= config.ScreenHeight {
			p.IsVisible = false
			p.Slot = -1
		}
	}

	for i := range p.Buttons {
		p.Buttons[i].Enabled = canAfford(p.Buttons[i].TowerID)
	}
	p.layout()
}

// Contains reports whether the point is on the panel.
func (p *TowerPanel) Contains(x, y int) bool {
	return p.IsVisible && image.Pt(x, y).In(p.rect())
}

// ButtonAt returns the tower whose button is under the point. Greyed out
// buttons do not count.
func (p *TowerPanel) ButtonAt(x, y int) (string, bool) {
	if !p.Active() {
		return "", false
	}
	for _, b := range p.Buttons {
		if b.Enabled && b.Contains(x, y) {
			return b.TowerID, true
		}
	}
	return "", false
}

func (p *TowerPanel) Draw(screen *ebiten.Image) {
	if !p.IsVisible {
		return
	}

	r := p.rect()
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), config.PanelColor, true)
	borderColor := color.RGBA{R: 70, G: 130, B: 180, A: 255}
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, borderColor, true)

	title := fmt.Sprintf("Build on slot %d", p.Slot+1)
	text.Draw(screen, title, p.fontFace, r.Min.X+config.TowerButtonSpacing, r.Min.Y+panelTitleHeight-4, config.TextLightColor)

	for i := range p.Buttons {
		b := &p.Buttons[i]
		b.Draw(screen, p.fontFace, buttonFill(b.Enabled))
	}
}

// buttonFill возвращает заливку кнопки; недоступные затемнены.
func buttonFill(enabled bool) color.RGBA {
	if enabled {
		return config.ButtonColor
	}
	return render.DarkenColor(config.ButtonColor)
}
