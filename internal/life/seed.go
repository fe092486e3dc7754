package life

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
)

// FromImage builds a grid of the image's size where every dark pixel is a
// live cell. Fully transparent pixels are dead.
func FromImage(img image.Image) *Grid {
	b := img.Bounds()
	g := NewGrid(b.Dx(), b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.A == 0 {
				continue
			}
			lum := (299*uint32(c.R) + 587*uint32(c.G) + 114*uint32(c.B)) / 1000
			if lum < 128 {
				g.Set(x-b.Min.X, y-b.Min.Y, true)
			}
		}
	}
	return g
}

// LoadSeed decodes a PNG or BMP pattern file with FromImage.
func LoadSeed(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode seed %s: %w", path, err)
	}
	g := FromImage(img)
	if g.Population() == 0 {
		return nil, fmt.Errorf("seed %s (%s): no live cells", path, format)
	}
	return g, nil
}
