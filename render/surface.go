package render

import (
	"image"
	"image/color"
	"image/draw"
)

// Surface is anything the projector can write pixels to. Writes outside Bounds are
// dropped.
type Surface interface {
	Bounds() image.Rectangle
	Clear(c color.RGBA)
	SetPixel(x, y int, c color.RGBA)
	// SetStrip writes w pixels of colour c starting at (x, y) and moving right.
	SetStrip(x, y, w int, c color.RGBA)
}

// Buffer is the software frame every host presents. It is also a draw.Image so
// overlays can draw straight into it.
type Buffer struct {
	*image.RGBA
}

var (
	_ Surface    = (*Buffer)(nil)
	_ draw.Image = (*Buffer)(nil)
)

func NewBuffer(width, height int) *Buffer {
	return &Buffer{RGBA: image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (b *Buffer) Clear(c color.RGBA) {
	b.Fill(b.Rect, c)
}

// Fill paints r, clipped to the buffer, with c.
func (b *Buffer) Fill(r image.Rectangle, c color.RGBA) {
	r = r.Intersect(b.Rect)
	if r.Empty() {
		return
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		b.SetRGBA(x, r.Min.Y, c)
	}
	// copy the first row down instead of setting every pixel
	from, to := b.PixOffset(r.Min.X, r.Min.Y), b.PixOffset(r.Max.X, r.Min.Y)
	first := b.Pix[from:to]
	for y := r.Min.Y + 1; y < r.Max.Y; y++ {
		copy(b.Pix[b.PixOffset(r.Min.X, y):], first)
	}
}

func (b *Buffer) SetPixel(x, y int, c color.RGBA) {
	b.SetRGBA(x, y, c)
}

func (b *Buffer) SetStrip(x, y, w int, c color.RGBA) {
	if y < b.Rect.Min.Y || y >= b.Rect.Max.Y || w <= 0 {
		return
	}
	x0, x1 := x, x+w
	if x0 < b.Rect.Min.X {
		x0 = b.Rect.Min.X
	}
	if x1 > b.Rect.Max.X {
		x1 = b.Rect.Max.X
	}
	for i := b.PixOffset(x0, y); x0 < x1; x0++ {
		b.Pix[i+0] = c.R
		b.Pix[i+1] = c.G
		b.Pix[i+2] = c.B
		b.Pix[i+3] = c.A
		i += 4
	}
}
