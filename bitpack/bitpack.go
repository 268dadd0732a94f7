/*
Package bitpack packs boolean and 2-bit values into bytes in the order the
firmware reads them back.

Boolean values are packed eight to a byte with the first value of each group
in the least significant bit. 2-bit values are packed four to a byte, again
starting from the least significant end, so a group of b0, b1, b2, b3 becomes
b0 + b1<<2 + b2<<4 + b3<<6.
*/
package bitpack

import "errors"

const (
	bitsPerByte  = 8
	pairsPerByte = 4
	pairMask     = 0x03
)

// ErrLength is returned when the number of bits to pack is not a whole
// number of bytes.
var ErrLength = errors.New("bitpack: bit count is not a multiple of 8")

// Pack packs bits into bytes, eight at a time.
func Pack(bits []bool) ([]byte, error) {
	if len(bits)%bitsPerByte != 0 {
		return nil, ErrLength
	}

	b := make([]byte, len(bits)/bitsPerByte)
	for i, bit := range bits {
		if bit {
			b[i/bitsPerByte] |= 1 << uint(i%bitsPerByte)
		}
	}
	return b, nil
}

// Unpack expands each byte in b back into eight bits.
func Unpack(b []byte) []bool {
	bits := make([]bool, len(b)*bitsPerByte)
	for i := range bits {
		bits[i] = b[i/bitsPerByte]&(1<<uint(i%bitsPerByte)) != 0
	}
	return bits
}

// PackedPairs returns the number of bytes needed to hold n 2-bit values.
func PackedPairs(n int) int {
	return (n + pairsPerByte - 1) / pairsPerByte
}

// PackPairs packs 2-bit values four to a byte. Any bits above the lowest two
// are ignored. A trailing group of fewer than four values is packed at the
// same offsets with the missing values left as zero.
func PackPairs(values []uint8) []byte {
	b := make([]byte, PackedPairs(len(values)))
	for i, v := range values {
		b[i/pairsPerByte] |= (v & pairMask) << uint(2*(i%pairsPerByte))
	}
	return b
}

// UnpackPairs extracts the first n 2-bit values from b.
func UnpackPairs(b []byte, n int) ([]uint8, error) {
	if PackedPairs(n) > len(b) {
		return nil, errors.New("bitpack: not enough data")
	}

	values := make([]uint8, n)
	for i := range values {
		values[i] = b[i/pairsPerByte] >> uint(2*(i%pairsPerByte)) & pairMask
	}
	return values, nil
}
