package level

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io"
	"strings"
)

// authoring colours for level images
var (
	ColorEmpty = color.RGBA{255, 255, 255, 255}
	ColorWall  = color.RGBA{0, 0, 0, 255}
	ColorSpawn = color.RGBA{0, 0, 255, 255}
)

const spawnRune = 'P'

// Parse builds a grid from text rows. '.', '0' and ' ' are empty cells, 'P' marks
// the spawn cell, every other rune is a wall textured with legend[rune].
func Parse(rows []string, legend map[string]string, cellSize float64) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidGrid)
	}

	width := len([]rune(rows[0]))
	cells := make([]Cell, 0, width*len(rows))
	spawnX, spawnY, hasSpawn := 0, 0, false

	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("%w: row %d has width %d, expected %d", ErrInvalidGrid, y, len(runes), width)
		}
		for x, r := range runes {
			switch r {
			case '.', '0', ' ':
				cells = append(cells, Empty)
			case spawnRune:
				cells = append(cells, Empty)
				spawnX, spawnY, hasSpawn = x, y, true
			default:
				cells = append(cells, Cell{Kind: CellWall, Texture: TextureRef(legend[string(r)])})
			}
		}
	}

	g, err := New(width, len(rows), cellSize, cells)
	if err != nil {
		return nil, err
	}
	if hasSpawn {
		g.setSpawn(spawnX, spawnY)
	}
	return g, nil
}

// Decode builds a grid from a level image, one pixel per cell. White pixels are
// empty, black pixels are untextured walls, the blue pixel is the spawn cell and
// any colour in palette is a wall with that texture. Unknown colours are walls.
func Decode(r io.Reader, palette map[color.RGBA]string, cellSize float64) (*Grid, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode level image: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	cells := make([]Cell, 0, width*height)
	spawnX, spawnY, hasSpawn := 0, 0, false

	// fill cells based on pixel colors
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.RGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.RGBA)

			switch {
			case c == ColorEmpty:
				cells = append(cells, Empty)
			case c == ColorSpawn:
				cells = append(cells, Empty)
				spawnX, spawnY, hasSpawn = x, y, true
			case c == ColorWall:
				cells = append(cells, Wall)
			default:
				cells = append(cells, Cell{Kind: CellWall, Texture: TextureRef(palette[c])})
			}
		}
	}

	g, err := New(width, height, cellSize, cells)
	if err != nil {
		return nil, err
	}
	if hasSpawn {
		g.setSpawn(spawnX, spawnY)
	}
	return g, nil
}

// ParseColor reads "#rrggbb" palette keys from configuration.
func ParseColor(s string) (color.RGBA, error) {
	var c color.RGBA
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return c, fmt.Errorf("colour %q: expected 6 hex digits", s)
	}
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("colour %q: %w", s, err)
	}
	c.A = 255
	return c, nil
}
