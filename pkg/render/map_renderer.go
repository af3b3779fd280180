// pkg/render/map_renderer.go
package render

import (
	"image/color"

	"towerpower/internal/level"
	"towerpower/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// MapRenderer draws the static part of a level: ground, grid and path.
type MapRenderer struct {
	gameMap  *level.GameMap
	viewport Viewport
	colors   *MapColors
	fillImg  *ebiten.Image
	fillVs   []ebiten.Vertex
	fillIs   []uint16
	mapImage *ebiten.Image // предрендеренная карта
}

func NewMapRenderer(gameMap *level.GameMap, viewport Viewport, screenWidth, screenHeight int, colors *MapColors) *MapRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	r := &MapRenderer{
		gameMap:  gameMap,
		viewport: viewport,
		colors:   colors,
		fillImg:  fillImg,
		fillVs:   make([]ebiten.Vertex, 0, 16),
		fillIs:   make([]uint16, 0, 16),
		mapImage: ebiten.NewImage(screenWidth, screenHeight),
	}
	r.RenderMapImage()
	return r
}

// Viewport returns the transform the map was rendered with.
func (r *MapRenderer) Viewport() Viewport {
	return r.viewport
}

// RenderMapImage создаёт предрендеренное изображение задника
func (r *MapRenderer) RenderMapImage() {
	r.mapImage.Clear()
	r.mapImage.Fill(r.colors.BackgroundColor)

	m := r.gameMap
	x0, y0 := r.viewport.ToScreen(utils.Vec2{})
	w, h := r.viewport.Length(m.Width()), r.viewport.Length(m.Height())
	vector.DrawFilledRect(r.mapImage, x0, y0, w, h, r.colors.GroundColor, false)

	for c := 0; c <= m.Columns; c++ {
		x, _ := r.viewport.ToScreen(utils.Vec2{X: float64(c) * m.CellSize})
		vector.StrokeLine(r.mapImage, x, y0, x, y0+h, 1, r.colors.GridLineColor, false)
	}
	for row := 0; row <= m.Rows; row++ {
		_, y := r.viewport.ToScreen(utils.Vec2{Y: float64(row) * m.CellSize})
		vector.StrokeLine(r.mapImage, x0, y, x0+w, y, 1, r.colors.GridLineColor, false)
	}

	// Путь врагов
	for i := 1; i < len(m.Waypoints); i++ {
		ax, ay := r.viewport.ToScreen(m.Waypoints[i-1])
		bx, by := r.viewport.ToScreen(m.Waypoints[i])
		vector.StrokeLine(r.mapImage, ax, ay, bx, by, r.colors.StrokeWidth, r.colors.PathColor, true)
	}
	marker := r.viewport.Length(m.CellSize * 0.1)
	for _, wp := range m.Waypoints {
		x, y := r.viewport.ToScreen(wp)
		r.fillPolygon(r.mapImage, []utils.Vec2{
			{X: float64(x - marker), Y: float64(y - marker)},
			{X: float64(x + marker), Y: float64(y - marker)},
			{X: float64(x + marker), Y: float64(y + marker)},
			{X: float64(x - marker), Y: float64(y + marker)},
		}, r.colors.PathColor)
	}
}

// Draw рисуем предрендеренную карту одним вызовом
func (r *MapRenderer) Draw(screen *ebiten.Image) {
	screen.DrawImage(r.mapImage, nil)
}

// fillPolygon fills a closed polygon given in screen coordinates.
func (r *MapRenderer) fillPolygon(target *ebiten.Image, pts []utils.Vec2, fillColor color.RGBA) {
	r.fillVs, r.fillIs = FillPolygon(target, r.fillImg, pts, fillColor, r.fillVs[:0], r.fillIs[:0])
}

// FillPolygon fills a closed polygon given in screen coordinates, reusing
// the vertex and index buffers it is handed.
func FillPolygon(target, fillImg *ebiten.Image, pts []utils.Vec2, fillColor color.RGBA, vs []ebiten.Vertex, is []uint16) ([]ebiten.Vertex, []uint16) {
	if len(pts) < 3 {
		return vs, is
	}
	path := vector.Path{}
	for i, p := range pts {
		if i == 0 {
			path.MoveTo(float32(p.X), float32(p.Y))
		} else {
			path.LineTo(float32(p.X), float32(p.Y))
		}
	}
	path.Close()

	vs, is = path.AppendVerticesAndIndicesForFilling(vs, is)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 0, 0
		vs[i].ColorR = float32(fillColor.R) / 255
		vs[i].ColorG = float32(fillColor.G) / 255
		vs[i].ColorB = float32(fillColor.B) / 255
		vs[i].ColorA = float32(fillColor.A) / 255
	}
	target.DrawTriangles(vs, is, fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
	return vs, is
}
