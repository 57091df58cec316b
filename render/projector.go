package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"gadzooks/level"
	"gadzooks/model"
	"gadzooks/raycast"
	"gadzooks/texture"
)

var (
	ErrEmptySurface  = errors.New("render: surface or viewport has no pixels")
	ErrBadResolution = errors.New("render: resolution must be between 1 and the viewport width")
)

// DefaultShadeFactor darkens walls hit on a horizontal grid line.
const DefaultShadeFactor = 0.5

// minDistance keeps the projected height finite when the player touches a wall.
const minDistance = 1e-6

type ProjectorOptions struct {
	// Viewport is the region of the surface the 3D view is drawn into.
	Viewport image.Rectangle
	// Resolution is the number of rays cast per frame, one per screen column strip.
	Resolution int
	// FOV is the horizontal field of view in radians.
	FOV float64
	// MaxDepth bounds the number of grid lines each sweep may cross.
	MaxDepth int
	// ShadeFactor scales horizontal-hit colours. Zero selects DefaultShadeFactor.
	ShadeFactor float64

	Ceiling color.RGBA
	Floor   color.RGBA
}

// Projector turns a player view into wall columns. It keeps the rays of the last
// frame for overlays such as the minimap.
type Projector struct {
	opts ProjectorOptions
	rays []raycast.Hit
}

func NewProjector(opts ProjectorOptions) (*Projector, error) {
	if opts.Viewport.Empty() {
		return nil, ErrEmptySurface
	}
	if opts.Resolution <= 0 || opts.Resolution > opts.Viewport.Dx() {
		return nil, fmt.Errorf("%w: %d for width %d", ErrBadResolution, opts.Resolution, opts.Viewport.Dx())
	}
	if opts.FOV <= 0 || opts.FOV >= math.Pi {
		return nil, fmt.Errorf("render: field of view %v out of (0, π)", opts.FOV)
	}
	if opts.MaxDepth < 1 {
		return nil, fmt.Errorf("render: max depth %d < 1", opts.MaxDepth)
	}
	if opts.ShadeFactor == 0 {
		opts.ShadeFactor = DefaultShadeFactor
	}
	if opts.ShadeFactor < 0 || opts.ShadeFactor > 1 {
		return nil, fmt.Errorf("render: shade factor %v out of [0, 1]", opts.ShadeFactor)
	}

	return &Projector{
		opts: opts,
		rays: make([]raycast.Hit, 0, opts.Resolution),
	}, nil
}

func (p *Projector) Options() ProjectorOptions { return p.opts }

// Rays returns the hits of the last rendered frame, left to right. The slice is
// reused by the next Render.
func (p *Projector) Rays() []raycast.Hit { return p.rays }

// Render draws the view from state into the projector's viewport on s.
func (p *Projector) Render(s Surface, state model.State, grid *level.Grid, store *texture.Store) error {
	if s.Bounds().Empty() || p.opts.Viewport.Intersect(s.Bounds()).Empty() {
		return ErrEmptySurface
	}

	vp := p.opts.Viewport
	viewW, viewH := vp.Dx(), vp.Dy()

	// ceiling and floor
	horizon := viewH / 2
	for y := 0; y < viewH; y++ {
		c := p.opts.Ceiling
		if y >= horizon {
			c = p.opts.Floor
		}
		s.SetStrip(vp.Min.X, vp.Min.Y+y, viewW, c)
	}

	res := p.opts.Resolution
	ppc := viewW / res
	step := p.opts.FOV / float64(res)
	start := state.Angle - p.opts.FOV/2

	p.rays = p.rays[:0]
	for c := 0; c < res; c++ {
		rayAngle := raycast.Normalize(start + float64(c)*step)
		hit := raycast.Cast(state.Position, rayAngle, grid, p.opts.MaxDepth)
		p.rays = append(p.rays, hit)
		p.drawColumn(s, vp.Min.X+c*ppc, ppc, hit, state.Angle, grid, store)
	}
	return nil
}

func (p *Projector) drawColumn(s Surface, x, width int, hit raycast.Hit, facing float64, grid *level.Grid, store *texture.Store) {
	vp := p.opts.Viewport
	viewH := vp.Dy()
	cellSize := grid.CellSize()

	corrected := CorrectFisheye(hit.Distance, facing, hit.Angle)
	full, cutTop := LineHeight(cellSize, float64(viewH), corrected)
	lineHeight := int(math.Round(full - 2*cutTop))
	if lineHeight < 1 {
		// a miss always shows as a wall at the far plane, however thin
		if !hit.Missed {
			return
		}
		lineHeight = 1
	}
	if lineHeight > viewH {
		lineHeight = viewH
	}
	lineOffset := (viewH - lineHeight) / 2

	var ref level.TextureRef
	if !hit.Missed {
		ref = grid.At(hit.CellX, hit.CellY).Texture
	}
	tex := store.Resolve(ref)
	texX := TextureColumn(hit, cellSize, tex.Width)
	shade := hit.Axis == raycast.Horizontal

	for row := 0; row < lineHeight; row++ {
		texY := int((cutTop + float64(row)) / full * float64(tex.Height))
		c := tex.At(texX, texY)
		if shade {
			c = Shade(c, p.opts.ShadeFactor)
		}
		s.SetStrip(x, vp.Min.Y+lineOffset+row, width, c)
	}
}

// CorrectFisheye projects a ray's length onto the facing direction so walls
// straight ahead do not bulge.
func CorrectFisheye(distance, facing, rayAngle float64) float64 {
	return distance * math.Cos(raycast.Normalize(facing-rayAngle))
}

// LineHeight returns the full projected height of a wall slice at the corrected
// distance and how much of it falls above the viewport when it is taller than the
// viewport. The visible height is full - 2*cutTop.
func LineHeight(cellSize, viewHeight, corrected float64) (full, cutTop float64) {
	if corrected < minDistance {
		corrected = minDistance
	}
	full = cellSize * viewHeight / corrected
	clamped := math.Min(full, viewHeight)
	return full, (full - clamped) / 2
}

// TextureColumn picks the texture column for a hit from where it struck the cell
// face. Faces seen from the far side are mirrored so textures read the same way
// from every direction.
func TextureColumn(hit raycast.Hit, cellSize float64, texWidth int) int {
	face := hit.Endpoint.X
	if hit.Axis == raycast.Vertical {
		face = hit.Endpoint.Y
	}
	offset := math.Mod(face, cellSize)
	if offset < 0 {
		offset += cellSize
	}

	x := int(offset / cellSize * float64(texWidth))
	if x >= texWidth {
		x = texWidth - 1
	} else if x < 0 {
		x = 0
	}

	up := hit.Angle > raycast.Pi
	left := hit.Angle > raycast.HalfPi && hit.Angle < raycast.ThreeHalfPi
	if (hit.Axis == raycast.Horizontal && !up) || (hit.Axis == raycast.Vertical && left) {
		x = texWidth - 1 - x
	}
	return x
}

// Shade scales the colour channels of c by factor, leaving alpha alone.
func Shade(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
