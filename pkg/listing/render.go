package listing

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const margin = 8

var (
	// C64 default screen colors.
	Background = color.RGBA{0x35, 0x28, 0x79, 0xFF}
	Foreground = color.RGBA{0x6C, 0x5E, 0xB5, 0xFF}
)

// Render draws lines in a fixed 7x13 font.
func Render(lines []string) *image.RGBA {
	face := basicfont.Face7x13
	m := face.Metrics()
	lineH := m.Height.Ceil()
	ascent := m.Ascent.Ceil()

	width := 0
	for _, s := range lines {
		if w := font.MeasureString(face, s).Ceil(); w > width {
			width = w
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, width+2*margin, len(lines)*lineH+2*margin))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(Foreground),
		Face: face,
	}
	for i, s := range lines {
		d.Dot = fixed.P(margin, margin+i*lineH+ascent)
		d.DrawString(s)
	}
	return img
}

// RenderPNG writes the rendered listing to w as a PNG image.
func RenderPNG(w io.Writer, lines []string) error {
	return errors.Wrap(png.Encode(w, Render(lines)), "encode listing")
}
