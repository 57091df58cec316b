package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const crosshairsSize = 8

var crosshairsColor = color.RGBA{255, 255, 255, 180}

// drawCrosshairs marks the centre of the 3D view.
func drawCrosshairs(screen *ebiten.Image, view image.Rectangle) {
	cx := float32(view.Min.X + view.Dx()/2)
	cy := float32(view.Min.Y + view.Dy()/2)
	vector.StrokeLine(screen, cx-crosshairsSize, cy, cx+crosshairsSize, cy, 2, crosshairsColor, false)
	vector.StrokeLine(screen, cx, cy-crosshairsSize, cx, cy+crosshairsSize, 2, crosshairsColor, false)
}
