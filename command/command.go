/*
Package command implements the packed command stream appended to the image
data when printing with a planned path.

Each command is a 2-bit opcode. The stream starts with a two byte count,
low byte first, followed by the commands packed four to a byte starting from
the least significant bits. A trailing partial byte is zero filled.
*/
package command

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/splatpost/splatpost/bitpack"
)

// Command is a single printing action.
type Command uint8

// Printing actions
const (
	Right Command = iota // move the cursor one pixel right
	Down                 // move the cursor one row down
	Left                 // move the cursor one pixel left
	Ink                  // ink the pixel under the cursor
)

func (c Command) String() string {
	switch c {
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	case Ink:
		return "ink"
	}
	return fmt.Sprintf("Command(%d)", uint8(c))
}

const (
	// LengthSize is the size of the count prefix
	LengthSize = 2
	// MaxCount is the largest number of commands the prefix can describe
	MaxCount = 0xffff
)

var (
	// ErrTooLong is returned when a sequence has more commands than the
	// count prefix can hold.
	ErrTooLong = errors.New("command: too many commands")

	errOpcode    = errors.New("command: invalid opcode")
	errNotEnough = errors.New("command: not enough packed data")
)

// Section is an encoded command stream.
type Section struct {
	Length [LengthSize]byte
	Packed []byte
}

// Count returns the number of commands described by the prefix.
func (s *Section) Count() int {
	return int(binary.LittleEndian.Uint16(s.Length[:]))
}

// Size returns the number of bytes the section occupies.
func (s *Section) Size() int {
	return LengthSize + len(s.Packed)
}

// Bytes returns the prefix followed by the packed commands.
func (s *Section) Bytes() []byte {
	b := make([]byte, 0, s.Size())
	b = append(b, s.Length[:]...)
	return append(b, s.Packed...)
}

// Encode packs cmds into a Section.
func Encode(cmds []Command) (*Section, error) {
	if len(cmds) > MaxCount {
		return nil, ErrTooLong
	}

	values := make([]uint8, len(cmds))
	for i, c := range cmds {
		if c > Ink {
			return nil, errOpcode
		}
		values[i] = uint8(c)
	}

	s := &Section{
		Packed: bitpack.PackPairs(values),
	}
	binary.LittleEndian.PutUint16(s.Length[:], uint16(len(cmds)))

	return s, nil
}

// Decode unpacks the commands held in s.
func Decode(s *Section) ([]Command, error) {
	n := s.Count()
	if bitpack.PackedPairs(n) != len(s.Packed) {
		return nil, errNotEnough
	}

	values, err := bitpack.UnpackPairs(s.Packed, n)
	if err != nil {
		return nil, err
	}

	cmds := make([]Command, n)
	for i, v := range values {
		cmds[i] = Command(v)
	}
	return cmds, nil
}

// Parse reads a Section from the start of b, returning it along with the
// number of bytes consumed.
func Parse(b []byte) (*Section, int, error) {
	if len(b) < LengthSize {
		return nil, 0, errNotEnough
	}

	s := new(Section)
	copy(s.Length[:], b)

	n := LengthSize + bitpack.PackedPairs(s.Count())
	if len(b) < n {
		return nil, 0, errNotEnough
	}
	s.Packed = make([]byte, n-LengthSize)
	copy(s.Packed, b[LengthSize:n])

	return s, n, nil
}
