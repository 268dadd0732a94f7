package bilevel

import (
	"image"
	_ "image/gif"  // register GIF
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG
	"os"

	"github.com/disintegration/gift"
	_ "golang.org/x/image/bmp"  // register BMP
	_ "golang.org/x/image/tiff" // register TIFF
	_ "golang.org/x/image/webp" // register WebP
)

// Open decodes the image stored in the named file.
func Open(name string) (image.Image, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Normalize checks the size of m, rotating it 90 degrees counter-clockwise
// if it is on its side. It reports whether m was rotated.
func Normalize(m image.Image) (image.Image, bool, error) {
	b := m.Bounds()
	switch {
	case b.Dx() == pixelX && b.Dy() == pixelY:
		return m, false, nil
	case b.Dx() == pixelY && b.Dy() == pixelX:
		g := gift.New(gift.Rotate90())
		dst := image.NewRGBA(g.Bounds(b))
		g.Draw(dst, m)
		return dst, true, nil
	}
	return nil, false, ErrSize
}
