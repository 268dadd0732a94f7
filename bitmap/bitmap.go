/*
Package bitmap implements the fixed size bilevel canvas printed by the
firmware.

The canvas is exactly 320 by 120 pixels. Each pixel is either ink or no ink
and pixels are always visited row by row, left to right, which is the order
the firmware maps pixels to bits.
*/
package bitmap

import (
	"errors"
	"image"
	"image/color"
)

const (
	// Width is the canvas width in pixels
	Width = 320
	// Height is the canvas height in pixels
	Height = 120
	// Pixels is the total number of pixels on the canvas
	Pixels = Width * Height
)

// ErrSize is returned when the source does not cover the canvas exactly.
var ErrSize = errors.New("bitmap: image must be 320x120")

// Bitmap is an immutable 320x120 grid of ink bits.
type Bitmap struct {
	pix []bool
}

// New returns a Bitmap holding a copy of bits, which must be in row-major
// order.
func New(bits []bool) (*Bitmap, error) {
	if len(bits) != Pixels {
		return nil, ErrSize
	}
	pix := make([]bool, Pixels)
	copy(pix, bits)
	return &Bitmap{pix: pix}, nil
}

// FromImage converts m to a Bitmap. A pixel with a fully white gray sample
// carries no ink, any other sample is ink.
func FromImage(m image.Image) (*Bitmap, error) {
	r := m.Bounds()
	if r.Dx() != Width || r.Dy() != Height {
		return nil, ErrSize
	}

	pix := make([]bool, Pixels)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			g := color.GrayModel.Convert(m.At(r.Min.X+x, r.Min.Y+y)).(color.Gray)
			pix[y*Width+x] = g.Y != 0xff
		}
	}
	return &Bitmap{pix: pix}, nil
}

// At reports whether the pixel at (x, y) is ink. Points outside the canvas
// are never ink.
func (b *Bitmap) At(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return b.pix[y*Width+x]
}

// Bits returns a copy of the pixels in row-major order.
func (b *Bitmap) Bits() []bool {
	bits := make([]bool, Pixels)
	copy(bits, b.pix)
	return bits
}

// Count returns the number of ink pixels.
func (b *Bitmap) Count() int {
	n := 0
	for _, p := range b.pix {
		if p {
			n++
		}
	}
	return n
}

// Inverse returns a new Bitmap with every pixel flipped.
func (b *Bitmap) Inverse() *Bitmap {
	pix := make([]bool, Pixels)
	for i, p := range b.pix {
		pix[i] = !p
	}
	return &Bitmap{pix: pix}
}

// Image renders the bitmap as a black and white paletted image with ink
// drawn in black.
func (b *Bitmap) Image() *image.Paletted {
	m := image.NewPaletted(image.Rect(0, 0, Width, Height), color.Palette{color.White, color.Black})
	for i, p := range b.pix {
		if p {
			m.Pix[i] = 1
		}
	}
	return m
}
