package splatpost

import (
	"crypto/sha1"
	"fmt"

	"github.com/splatpost/splatpost/bitmap"
	"github.com/splatpost/splatpost/bitpack"
)

const (
	polarityNormal   = 0x00
	polarityInverted = 0x01
)

// planKey identifies a bitmap and polarity in the plan cache.
func planKey(b *bitmap.Bitmap, invert bool) (string, error) {
	packed, err := bitpack.Pack(b.Bits())
	if err != nil {
		return "", err
	}

	h := sha1.New()
	h.Write(packed)
	if invert {
		h.Write([]byte{polarityInverted})
	} else {
		h.Write([]byte{polarityNormal})
	}

	return fmt.Sprintf("%X", h.Sum(nil)), nil
}
