/*
Package artifact assembles the image data array compiled into the firmware.

The array is laid out as:

	options      1 byte
	fix mask    40 bytes, optional
	bitmap    4800 bytes, one bit per pixel
	commands     2 byte count + packed commands, optional
	terminator   1 byte, always 0x00

and is written as a C source file declaring a PROGMEM byte array whose
element count matches the data exactly.
*/
package artifact

import (
	"errors"

	"github.com/splatpost/splatpost/bitmap"
	"github.com/splatpost/splatpost/command"
	"github.com/splatpost/splatpost/fixmask"
)

const (
	// OptionsSize is the size of the option section
	OptionsSize = 1
	// FixMaskSize is the size of the fix mask section
	FixMaskSize = fixmask.Bytes
	// BitmapSize is the size of the bitmap section
	BitmapSize = bitmap.Pixels / 8
	// TerminatorSize is the size of the trailing terminator
	TerminatorSize = 1

	terminator = 0x00
)

var errBitmapSize = errors.New("artifact: bitmap section must be 4800 bytes")

// Payload holds the sections of the image data.
type Payload struct {
	Options byte
	FixMask *[FixMaskSize]byte
	Bitmap  []byte

	// Invert flips every bitmap byte when the payload is serialised
	Invert bool

	Commands *command.Section
}

// Size returns the number of bytes the payload serialises to, including the
// terminator.
func (p *Payload) Size() int {
	n := OptionsSize + BitmapSize + TerminatorSize
	if p.FixMask != nil {
		n += FixMaskSize
	}
	if p.Commands != nil {
		n += p.Commands.Size()
	}
	return n
}

// Bytes serialises the payload.
func (p *Payload) Bytes() ([]byte, error) {
	if len(p.Bitmap) != BitmapSize {
		return nil, errBitmapSize
	}

	b := make([]byte, 0, p.Size())
	b = append(b, p.Options)
	if p.FixMask != nil {
		b = append(b, p.FixMask[:]...)
	}
	for _, v := range p.Bitmap {
		if p.Invert {
			v = ^v
		}
		b = append(b, v)
	}
	if p.Commands != nil {
		b = append(b, p.Commands.Bytes()...)
	}
	b = append(b, terminator)

	return b, nil
}

var errLayout = errors.New("artifact: data does not match the section layout")

// Split breaks serialised image data back into its sections. The caller says
// which optional sections are expected. The bitmap is returned exactly as
// stored, with Invert left unset.
func Split(b []byte, withFixMask, withCommands bool) (*Payload, error) {
	n := OptionsSize + BitmapSize + TerminatorSize
	if withFixMask {
		n += FixMaskSize
	}
	if len(b) < n || b[len(b)-1] != terminator {
		return nil, errLayout
	}

	p := &Payload{Options: b[0]}
	b = b[OptionsSize:]

	if withFixMask {
		p.FixMask = new([FixMaskSize]byte)
		copy(p.FixMask[:], b)
		b = b[FixMaskSize:]
	}

	p.Bitmap = append([]byte(nil), b[:BitmapSize]...)
	b = b[BitmapSize:]

	if withCommands {
		s, used, err := command.Parse(b)
		if err != nil {
			return nil, err
		}
		p.Commands = s
		b = b[used:]
	}

	if len(b) != TerminatorSize {
		return nil, errLayout
	}

	return p, nil
}
