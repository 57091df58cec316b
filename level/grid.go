package level

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/harbdog/raycaster-go/geom"
)

var ErrInvalidGrid = errors.New("invalid grid")

type CellKind int

const (
	CellEmpty CellKind = iota
	CellWall
)

func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "empty"
	case CellWall:
		return "wall"
	}
	return fmt.Sprintf("CellKind(%d)", int(k))
}

// TextureRef names a texture held by the texture store. The zero value means the
// cell has no texture of its own.
type TextureRef string

type Cell struct {
	Kind    CellKind
	Texture TextureRef
}

var (
	Empty = Cell{Kind: CellEmpty}
	Wall  = Cell{Kind: CellWall}
)

// Grid is the fixed-size tile map the renderer casts against. It is authored once
// and never mutated while a frame is being rendered.
type Grid struct {
	width, height int
	cellSize      float64
	cells         []Cell // row-major, cells[y*width+x]

	spawnX, spawnY int
	hasSpawn       bool
}

func New(width, height int, cellSize float64, cells []Cell) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidGrid, width, height)
	}
	if cellSize <= 0 || math.IsInf(cellSize, 0) || math.IsNaN(cellSize) {
		return nil, fmt.Errorf("%w: cell size %v", ErrInvalidGrid, cellSize)
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("%w: expected %d cells, got %d", ErrInvalidGrid, width*height, len(cells))
	}

	g := &Grid{
		width:    width,
		height:   height,
		cellSize: cellSize,
		cells:    make([]Cell, len(cells)),
	}
	for i, c := range cells {
		if c.Kind != CellWall {
			// empty cells never render, drop whatever texture the author gave them
			c = Empty
		}
		g.cells[i] = c
	}

	return g, nil
}

func (g *Grid) Size() (int, int)  { return g.width, g.height }
func (g *Grid) CellSize() float64 { return g.cellSize }

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// At returns the cell at the given grid coordinate, or Empty when out of bounds.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Empty
	}
	return g.cells[y*g.width+x]
}

func (g *Grid) IsWall(x, y int) bool {
	return g.InBounds(x, y) && g.cells[y*g.width+x].Kind == CellWall
}

// IsEmpty reports whether the cell can be walked into. Cells outside the grid are
// never empty.
func (g *Grid) IsEmpty(x, y int) bool {
	return g.InBounds(x, y) && g.cells[y*g.width+x].Kind == CellEmpty
}

// WorldToCell converts a world position into grid coordinates.
func (g *Grid) WorldToCell(x, y float64) (int, int) {
	return int(math.Floor(x / g.cellSize)), int(math.Floor(y / g.cellSize))
}

// Spawn returns the world position at the centre of the authored spawn cell.
func (g *Grid) Spawn() (geom.Vector2, bool) {
	if !g.hasSpawn {
		return geom.Vector2{}, false
	}
	return geom.Vector2{
		X: (float64(g.spawnX) + 0.5) * g.cellSize,
		Y: (float64(g.spawnY) + 0.5) * g.cellSize,
	}, true
}

func (g *Grid) setSpawn(x, y int) {
	g.spawnX, g.spawnY, g.hasSpawn = x, y, true
}

// Textures lists the distinct texture references used by wall cells, sorted.
func (g *Grid) Textures() []TextureRef {
	seen := make(map[TextureRef]struct{})
	for _, c := range g.cells {
		if c.Kind == CellWall && c.Texture != "" {
			seen[c.Texture] = struct{}{}
		}
	}

	refs := make([]TextureRef, 0, len(seen))
	for ref := range seen {
		refs = append(refs, ref)
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i] < refs[j] })
	return refs
}
