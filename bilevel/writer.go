package bilevel

import (
	"image"
	"image/png"
	"os"

	"github.com/makeworld-the-better-one/dither/v2"
	"golang.org/x/image/draw"
)

func gray(m image.Image) *image.Gray {
	b := m.Bounds()
	g := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(g, g.Bounds(), m, b.Min, draw.Src)
	return g
}

// Convert reduces m to a black and white paletted image.
func Convert(m image.Image, mode Mode) *image.Paletted {
	g := gray(m)

	if mode == Dither {
		d := dither.NewDitherer(palette)
		d.Matrix = dither.FloydSteinberg
		return d.DitherPaletted(g)
	}

	pm := image.NewPaletted(g.Bounds(), palette)
	draw.Draw(pm, pm.Bounds(), g, image.Point{}, draw.Src)
	return pm
}

// Save writes m to the named file as a PNG.
func Save(name string, m image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, m); err != nil {
		return err
	}

	return f.Close()
}
