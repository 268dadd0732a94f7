/*
Package options holds the printing options carried in the first byte of the
image data.

Each option occupies one bit, numbered in declaration order from the least
significant bit:

	0 cautious
	1 optimal
	2 slowmode
	3 endsave
	4 vertical
	5 fix

The order is read by the firmware and must not change. Colormap inversion is
also carried here but it is applied to the bitmap bytes and never packed into
the option byte.
*/
package options

import (
	"errors"
	"strings"

	"github.com/splatpost/splatpost/bitpack"
)

// Flag identifies a packed option bit.
type Flag int

// Option bits, in wire order
const (
	Cautious Flag = iota
	Optimal
	SlowMode
	EndSave
	Vertical
	Fix
	numFlags
)

var flagNames = [numFlags]string{
	"cautious",
	"optimal",
	"slowmode",
	"endsave",
	"vertical",
	"fix",
}

func (f Flag) String() string {
	if f < 0 || f >= numFlags {
		return "unknown"
	}
	return flagNames[f]
}

// Set is the resolved option record. It is built once and passed by value.
type Set struct {
	Cautious bool
	Optimal  bool
	SlowMode bool
	EndSave  bool
	Vertical bool
	Invert   bool

	// Fix lists the lines (or columns when Vertical) printing is restricted
	// to. The fix bit is set when this is non-empty.
	Fix []int
}

// Flags returns the packed option bits in wire order.
func (s Set) Flags() []bool {
	return []bool{
		Cautious: s.Cautious,
		Optimal:  s.Optimal,
		SlowMode: s.SlowMode,
		EndSave:  s.EndSave,
		Vertical: s.Vertical,
		Fix:      len(s.Fix) > 0,
	}
}

// Has reports whether flag f is set.
func (s Set) Has(f Flag) bool {
	if f < 0 || f >= numFlags {
		return false
	}
	return s.Flags()[f]
}

// Byte returns the option byte.
func (s Set) Byte() byte {
	b, _ := Encode(s.Flags())
	return b
}

// WithoutOptimal returns a copy of s with optimal mode cleared.
func (s Set) WithoutOptimal() Set {
	s.Optimal = false
	return s
}

// WithoutFix returns a copy of s with fix mode cleared.
func (s Set) WithoutFix() Set {
	s.Fix = nil
	return s
}

func (s Set) String() string {
	var on []string
	for i, f := range s.Flags() {
		if f {
			on = append(on, Flag(i).String())
		}
	}
	if s.Invert {
		on = append(on, "invert")
	}
	if len(on) == 0 {
		return "none"
	}
	return strings.Join(on, ", ")
}

// FromByte returns the flags packed into b. Only the defined flag bits are
// returned.
func FromByte(b byte) []bool {
	return bitpack.Unpack([]byte{b})[:numFlags]
}

// Encode packs up to eight flags into a byte, the first flag in the least
// significant bit.
func Encode(flags []bool) (byte, error) {
	if len(flags) > 8 {
		return 0, errors.New("options: more than 8 flags")
	}

	var bits [8]bool
	copy(bits[:], flags)

	b, err := bitpack.Pack(bits[:])
	if err != nil {
		return 0, err
	}
	return b[0], nil
}
