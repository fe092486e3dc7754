package graphics

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// TextPadding is the transparent border around rendered text, in pixels.
const TextPadding = 2

// RenderText draws lines top to bottom into a transparent RGBA image just
// large enough to hold them.
func RenderText(lines []string, face font.Face, c color.Color) *image.RGBA {
	m := face.Metrics()
	lineH := m.Height.Ceil()

	w := 0
	for _, line := range lines {
		w = max(w, font.MeasureString(face, line).Ceil())
	}
	h := lineH * len(lines)

	img := image.NewRGBA(image.Rect(0, 0, max(w, 1)+2*TextPadding, max(h, 1)+2*TextPadding))
	d := font.Drawer{Dst: img, Src: image.NewUniform(c), Face: face}
	for i, line := range lines {
		d.Dot = fixed.P(TextPadding, TextPadding+i*lineH+m.Ascent.Ceil())
		d.DrawString(line)
	}
	return img
}
