package hud

import (
	"fmt"
	"image"
	"image/color"

	"github.com/golang/freetype"
	"golang.org/x/image/font"

	"gadzooks/render"
)

// Status draws a few lines of text at a fixed point of the buffer.
type Status struct {
	ctx   *freetype.Context
	size  float64
	at    image.Point
	lines []string
}

func NewStatus(size float64, c color.Color, at image.Point) (*Status, error) {
	f, err := Font()
	if err != nil {
		return nil, err
	}
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(f)
	ctx.SetFontSize(size)
	ctx.SetHinting(font.HintingFull)
	ctx.SetSrc(image.NewUniform(c))

	return &Status{ctx: ctx, size: size, at: at}, nil
}

func (s *Status) SetLines(lines ...string) {
	s.lines = append(s.lines[:0], lines...)
}

func (s *Status) Lines() []string { return s.lines }

func (s *Status) Draw(dst *render.Buffer) error {
	s.ctx.SetDst(dst.RGBA)
	s.ctx.SetClip(dst.Bounds())

	// the baseline of the first line sits one font size below the anchor
	pt := freetype.Pt(s.at.X, s.at.Y+int(s.ctx.PointToFixed(s.size)>>6))
	for _, line := range s.lines {
		if _, err := s.ctx.DrawString(line, pt); err != nil {
			return fmt.Errorf("draw status %q: %w", line, err)
		}
		pt.Y += s.ctx.PointToFixed(s.size * 1.4)
	}
	return nil
}
