// Package raycast finds the nearest wall along a ray by stepping the ray across
// horizontal and vertical grid lines separately and keeping the closer crossing.
package raycast

import (
	"fmt"
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

// angle constants; the exact-axis checks compare against these values
const (
	Pi          = math.Pi
	TwoPi       = 2 * math.Pi
	HalfPi      = math.Pi / 2
	ThreeHalfPi = 3 * HalfPi
)

// Axis records which family of grid lines the winning crossing lay on.
type Axis int

const (
	// Horizontal hits crossed a line y = k·cellSize (the north or south face of a cell).
	Horizontal Axis = iota
	// Vertical hits crossed a line x = k·cellSize (the west or east face of a cell).
	Vertical
)

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// Grid is the read-only view of the tile map a ray is cast against.
type Grid interface {
	Size() (int, int)
	CellSize() float64
	IsWall(x, y int) bool
}

// Hit is the result of a single cast. Missed hits report the maximum draw
// distance and the cell (-1, -1).
type Hit struct {
	Origin   geom.Vector2
	Endpoint geom.Vector2
	Distance float64
	Angle    float64
	Axis     Axis
	CellX    int
	CellY    int
	Missed   bool
}

// Normalize wraps an angle into [0, 2π).
func Normalize(angle float64) float64 {
	angle = math.Mod(angle, TwoPi)
	if angle < 0 {
		angle += TwoPi
	}
	if angle >= TwoPi {
		// -ε + 2π rounds up to 2π
		angle = 0
	}
	return angle
}

// MaxDistance is the distance reported for a ray that leaves the map or runs out of
// steps without hitting a wall.
func MaxDistance(g Grid, maxDepth int) float64 {
	if maxDepth < 1 {
		maxDepth = 1
	}
	return float64(maxDepth) * g.CellSize()
}

// Cast finds the nearest wall from origin along angle, stepping at most maxDepth
// grid lines in each direction. Cast has no side effects: the same inputs always
// produce the same Hit.
func Cast(origin geom.Vector2, angle float64, g Grid, maxDepth int) Hit {
	if maxDepth < 1 {
		maxDepth = 1
	}
	angle = Normalize(angle)

	hit := Hit{Origin: origin, Angle: angle}

	s, axis, ok := pick(castHorizontal(origin, angle, g, maxDepth), castVertical(origin, angle, g, maxDepth))
	if !ok {
		dist := MaxDistance(g, maxDepth)
		hit.Endpoint = geom.Vector2{
			X: origin.X + math.Cos(angle)*dist,
			Y: origin.Y + math.Sin(angle)*dist,
		}
		hit.Distance = dist
		hit.Axis = Horizontal
		hit.CellX, hit.CellY = -1, -1
		hit.Missed = true
		return hit
	}

	hit.Endpoint = s.point
	hit.Distance = s.dist
	hit.Axis = axis
	hit.CellX, hit.CellY = s.cellX, s.cellY
	return hit
}

// sweep is the outcome of stepping along one family of grid lines. A miss has an
// infinite distance.
type sweep struct {
	point        geom.Vector2
	dist         float64
	cellX, cellY int
	hit          bool
}

var miss = sweep{dist: math.Inf(1), cellX: -1, cellY: -1}

// pick keeps the strictly nearer sweep. Ties go to the horizontal sweep.
func pick(h, v sweep) (sweep, Axis, bool) {
	if v.hit && v.dist < h.dist {
		return v, Vertical, true
	}
	if h.hit {
		return h, Horizontal, true
	}
	return miss, Horizontal, false
}

// castHorizontal steps across horizontal grid lines. A ray at exactly 0 or π never
// crosses one.
func castHorizontal(origin geom.Vector2, angle float64, g Grid, maxDepth int) sweep {
	if angle == 0 || angle == Pi {
		return miss
	}

	size := g.CellSize()
	cot := math.Cos(angle) / math.Sin(angle)
	if angle == HalfPi || angle == ThreeHalfPi {
		cot = 0
	}

	row := int(math.Floor(origin.Y / size))
	var y, stepY float64
	var stepRow int
	if angle > Pi {
		// looking up: the first boundary is the top of the current row
		y = float64(row) * size
		stepY, stepRow = -size, -1
	} else {
		y = float64(row+1) * size
		stepY, stepRow = size, 1
	}
	row += stepRow
	x := origin.X + (y-origin.Y)*cot
	stepX := stepY * cot

	return march(origin, g, maxDepth, x, y, stepX, stepY, func(x, _ float64) (int, int) {
		return int(math.Floor(x / size)), row
	}, func() { row += stepRow })
}

// castVertical steps across vertical grid lines. A ray at exactly π/2 or 3π/2 never
// crosses one.
func castVertical(origin geom.Vector2, angle float64, g Grid, maxDepth int) sweep {
	if angle == HalfPi || angle == ThreeHalfPi {
		return miss
	}

	size := g.CellSize()
	tan := math.Tan(angle)
	if angle == 0 || angle == Pi {
		tan = 0
	}

	col := int(math.Floor(origin.X / size))
	var x, stepX float64
	var stepCol int
	if angle > HalfPi && angle < ThreeHalfPi {
		// looking left: the first boundary is the left edge of the current column
		x = float64(col) * size
		stepX, stepCol = -size, -1
	} else {
		x = float64(col+1) * size
		stepX, stepCol = size, 1
	}
	col += stepCol
	y := origin.Y + (x-origin.X)*tan
	stepY := stepX * tan

	return march(origin, g, maxDepth, x, y, stepX, stepY, func(_, y float64) (int, int) {
		return col, int(math.Floor(y / size))
	}, func() { col += stepCol })
}

// march walks boundary crossings starting at (x, y). cell maps a crossing to the
// grid cell beyond it and advance moves the sweep's fixed index to the next line.
func march(
	origin geom.Vector2, g Grid, maxDepth int,
	x, y, stepX, stepY float64,
	cell func(x, y float64) (int, int), advance func(),
) sweep {
	w, h := g.Size()
	for depth := 0; depth < maxDepth; depth++ {
		cx, cy := cell(x, y)
		if cx < 0 || cy < 0 || cx >= w || cy >= h {
			// the ray has left the map and can only move further away
			return miss
		}
		if g.IsWall(cx, cy) {
			return sweep{
				point: geom.Vector2{X: x, Y: y},
				dist:  math.Hypot(x-origin.X, y-origin.Y),
				cellX: cx,
				cellY: cy,
				hit:   true,
			}
		}
		x += stepX
		y += stepY
		advance()
	}
	return miss
}
