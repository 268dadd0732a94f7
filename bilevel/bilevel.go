/*
Package bilevel turns source images into the two level images the encoder
works from.

Sources must be 320 by 120 pixels. A 120 by 320 source is accepted and
rotated counter-clockwise first; any other size is rejected. Images are
reduced to gray and then to black and white, either by Floyd-Steinberg error
diffusion or by simply picking the nearer of the two colors.
*/
package bilevel

import (
	"errors"
	"image/color"

	"github.com/splatpost/splatpost/bitmap"
)

// Mode selects how gray levels are reduced to black and white.
type Mode int

// Conversion modes
const (
	Dither Mode = iota
	Threshold
)

// ErrSize is returned for sources that are not 320x120 even after rotation.
var ErrSize = errors.New("bilevel: image must be 320x120")

var palette = color.Palette{color.Black, color.White}

const (
	pixelX = bitmap.Width
	pixelY = bitmap.Height
)
