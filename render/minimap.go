package render

import (
	"image"
	"image/color"
	"math"

	"github.com/golang/freetype/raster"
	"golang.org/x/image/math/fixed"

	"gadzooks/level"
	"gadzooks/model"
	"gadzooks/raycast"
)

var (
	minimapWall   = color.RGBA{200, 200, 200, 255}
	minimapFloor  = color.RGBA{50, 50, 50, 255}
	minimapRay    = color.RGBA{255, 220, 0, 255}
)

// Minimap draws the grid top-down inside Rect, scaled so every cell is square,
// with the player's facing marker and the rays of the current frame on top.
type Minimap struct {
	Rect image.Rectangle

	Wall, Floor, Ray color.RGBA

	rasterizer *raster.Rasterizer
	painter    *raster.RGBAPainter
	target     *image.RGBA
}

func NewMinimap(rect image.Rectangle) *Minimap {
	return &Minimap{
		Rect:  rect,
		Wall:  minimapWall,
		Floor: minimapFloor,
		Ray:   minimapRay,
	}
}

// Scale returns the pixel size of one grid cell on the minimap.
func (m *Minimap) Scale(grid *level.Grid) int {
	w, h := grid.Size()
	scale := m.Rect.Dx() / w
	if sy := m.Rect.Dy() / h; sy < scale {
		scale = sy
	}
	if scale < 1 {
		scale = 1
	}
	return scale
}

// Draw paints the grid, the rays and a facing marker for state in marker's
// colour. A marker of model.ColorNone is not drawn.
func (m *Minimap) Draw(dst *Buffer, grid *level.Grid, state model.State, marker color.RGBA, rays []raycast.Hit) {
	w, h := grid.Size()
	scale := m.Scale(grid)

	// one pixel gap between cells once they are big enough to show it
	gap := 0
	if scale > 3 {
		gap = 1
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := m.Floor
			if grid.IsWall(x, y) {
				c = m.Wall
			}
			at := m.Rect.Min.Add(image.Pt(x*scale, y*scale))
			dst.Fill(image.Rectangle{Min: at, Max: at.Add(image.Pt(scale-gap, scale-gap))}, c)
		}
	}

	toMap := float64(scale) / grid.CellSize()
	px := float64(m.Rect.Min.X) + state.Position.X*toMap
	py := float64(m.Rect.Min.Y) + state.Position.Y*toMap

	m.prepare(dst)

	m.painter.SetColor(m.Ray)
	for _, hit := range rays {
		var path raster.Path
		path.Start(point(px, py))
		path.Add1(point(
			float64(m.Rect.Min.X)+hit.Endpoint.X*toMap,
			float64(m.Rect.Min.Y)+hit.Endpoint.Y*toMap,
		))
		m.rasterizer.Clear()
		raster.Stroke(m.rasterizer, path, fixed.I(1), nil, nil)
		m.rasterizer.Rasterize(m.painter)
	}

	if marker == model.ColorNone {
		return
	}

	// facing triangle
	size := math.Max(float64(scale)/2, 4)
	m.rasterizer.Clear()
	m.rasterizer.Start(point(px+size*math.Cos(state.Angle), py+size*math.Sin(state.Angle)))
	m.rasterizer.Add1(point(px+size*math.Cos(state.Angle+2.5), py+size*math.Sin(state.Angle+2.5)))
	m.rasterizer.Add1(point(px+size*math.Cos(state.Angle-2.5), py+size*math.Sin(state.Angle-2.5)))
	m.rasterizer.Add1(point(px+size*math.Cos(state.Angle), py+size*math.Sin(state.Angle)))
	m.painter.SetColor(marker)
	m.rasterizer.Rasterize(m.painter)
}

// prepare sizes the rasterizer to dst, reusing it across frames.
func (m *Minimap) prepare(dst *Buffer) {
	if m.target == dst.RGBA && m.rasterizer != nil {
		return
	}
	b := dst.Bounds()
	m.rasterizer = raster.NewRasterizer(b.Dx(), b.Dy())
	m.rasterizer.UseNonZeroWinding = true
	m.painter = raster.NewRGBAPainter(dst.RGBA)
	m.target = dst.RGBA
}

func point(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(x * 64)),
		Y: fixed.Int26_6(math.Round(y * 64)),
	}
}
