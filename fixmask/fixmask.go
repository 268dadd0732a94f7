/*
Package fixmask implements the fix mask, which restricts printing to a set of
lines, or columns when printing vertically.

The mask is always 40 bytes, one bit for each of up to 320 indices. Index i
(counting from 1) is stored in bit (i-1)%8 of byte (i-1)/8.
*/
package fixmask

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/splatpost/splatpost/bitpack"
)

const (
	// Lines is the number of indices the mask can hold
	Lines = 320
	// Bytes is the size of the encoded mask
	Bytes = Lines / 8

	verticalLines = 120
)

// ErrSpec is returned when a fix specification cannot be parsed.
var ErrSpec = errors.New("fixmask: invalid specification")

var token = regexp.MustCompile(`^(\d+)(?:-(\d+))?$`)

// Limit returns the highest valid index for the given orientation.
func Limit(vertical bool) int {
	if vertical {
		return verticalLines
	}
	return Lines
}

func clamp(v, limit int) int {
	if v < 1 {
		return 1
	}
	if v > limit {
		return limit
	}
	return v
}

// endpoint parses a run of digits, clamping it to [1, limit]. Values too
// large for an int are clamped like any other out of range value.
func endpoint(s string, limit int) (int, error) {
	v, err := strconv.Atoi(s)
	if errors.Is(err, strconv.ErrRange) {
		return limit, nil
	}
	if err != nil {
		return 0, err
	}
	return clamp(v, limit), nil
}

func parseToken(s string, limit int) (int, int, error) {
	m := token.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrSpec, s)
	}

	lo, err := endpoint(m[1], limit)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrSpec, s)
	}
	hi := lo
	if m[2] != "" {
		if hi, err = endpoint(m[2], limit); err != nil {
			return 0, 0, fmt.Errorf("%w: %q", ErrSpec, s)
		}
	}
	if lo > hi {
		lo, hi = hi, lo
	}

	return lo, hi, nil
}

// Parse parses a comma-separated list of indices and inclusive ranges such
// as "2,7-10,3". Endpoints are clamped to [1, limit] and inverted ranges are
// swapped. The result is sorted and free of duplicates. If any entry is
// malformed no indices are returned at all.
func Parse(spec string, limit int) ([]int, error) {
	seen := make(map[int]struct{})
	for _, s := range strings.Split(spec, ",") {
		lo, hi, err := parseToken(s, limit)
		if err != nil {
			return nil, err
		}
		for i := lo; i <= hi; i++ {
			seen[i] = struct{}{}
		}
	}

	indices := make([]int, 0, len(seen))
	for i := range seen {
		indices = append(indices, i)
	}
	sort.Ints(indices)

	return indices, nil
}

// Encode returns the mask with a bit set for each index. Indices outside
// [1, Lines] are ignored.
func Encode(indices []int) [Bytes]byte {
	bits := make([]bool, Lines)
	for _, i := range indices {
		if i >= 1 && i <= Lines {
			bits[i-1] = true
		}
	}

	var mask [Bytes]byte
	b, _ := bitpack.Pack(bits)
	copy(mask[:], b)
	return mask
}

// Decode returns the indices set in mask, in ascending order.
func Decode(mask [Bytes]byte) []int {
	var indices []int
	for i, bit := range bitpack.Unpack(mask[:]) {
		if bit {
			indices = append(indices, i+1)
		}
	}
	return indices
}
