package texture

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"os"
	"sync"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Texture is a decoded image held as plain colour samples so the projector can
// sample it without going through the image interfaces.
type Texture struct {
	Width, Height int
	Samples       []color.RGBA // row-major, Samples[y*Width+x]
}

// At returns the sample at (x, y), clamping the coordinate into the texture.
func (t *Texture) At(x, y int) color.RGBA {
	if x < 0 {
		x = 0
	} else if x >= t.Width {
		x = t.Width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= t.Height {
		y = t.Height - 1
	}
	return t.Samples[y*t.Width+x]
}

func FromImage(img image.Image) (*Texture, error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("texture image is empty")
	}

	t := &Texture{
		Width:   bounds.Dx(),
		Height:  bounds.Dy(),
		Samples: make([]color.RGBA, bounds.Dx()*bounds.Dy()),
	}
	for y := 0; y < t.Height; y++ {
		for x := 0; x < t.Width; x++ {
			c := color.RGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.RGBA)
			t.Samples[y*t.Width+x] = c
		}
	}
	return t, nil
}

func Decode(r io.Reader) (*Texture, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode texture: %w", err)
	}
	return FromImage(img)
}

func Load(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %s: %w", path, err)
	}
	defer f.Close()

	t, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// LoadFS reads the texture name from fsys.
func LoadFS(fsys fs.FS, name string) (*Texture, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open texture: %w", err)
	}
	defer f.Close()

	t, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return t, nil
}

const defaultSize = 64

var (
	defaultOnce sync.Once
	defaultTex  *Texture
)

// Default returns the shared "missing texture": a magenta and black checkerboard.
func Default() *Texture {
	defaultOnce.Do(func() {
		defaultTex = &Texture{
			Width:   defaultSize,
			Height:  defaultSize,
			Samples: make([]color.RGBA, defaultSize*defaultSize),
		}
		magenta := color.RGBA{255, 0, 255, 255}
		black := color.RGBA{0, 0, 0, 255}
		for y := 0; y < defaultSize; y++ {
			for x := 0; x < defaultSize; x++ {
				c := black
				if (x/8+y/8)%2 == 0 {
					c = magenta
				}
				defaultTex.Samples[y*defaultSize+x] = c
			}
		}
	})
	return defaultTex
}
