package bitmap

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	_, err := New(make([]bool, Pixels-1))
	assert.Equal(t, ErrSize, err)

	bits := make([]bool, Pixels)
	bits[Width+3] = true

	b, err := New(bits)
	require.Nil(t, err)

	// Mutating the source must not leak into the bitmap
	bits[0] = true
	assert.False(t, b.At(0, 0))
	assert.True(t, b.At(3, 1))
	assert.False(t, b.At(-1, 0))
	assert.False(t, b.At(Width, 0))
	assert.Equal(t, 1, b.Count())
}

func TestFromImage(t *testing.T) {
	m := image.NewGray(image.Rect(0, 0, Width, Height))
	for i := range m.Pix {
		m.Pix[i] = 0xff
	}
	m.SetGray(0, 0, color.Gray{0x00})
	m.SetGray(319, 119, color.Gray{0xfe})

	b, err := FromImage(m)
	require.Nil(t, err)
	assert.True(t, b.At(0, 0))
	assert.True(t, b.At(319, 119))
	assert.False(t, b.At(1, 0))
	assert.Equal(t, 2, b.Count())

	_, err = FromImage(image.NewGray(image.Rect(0, 0, Height, Width)))
	assert.Equal(t, ErrSize, err)
}

func TestInverse(t *testing.T) {
	b, err := New(make([]bool, Pixels))
	require.Nil(t, err)

	i := b.Inverse()
	assert.Equal(t, Pixels, i.Count())
	assert.Equal(t, 0, b.Count())
	assert.Equal(t, b.Bits(), i.Inverse().Bits())
}

func TestImage(t *testing.T) {
	bits := make([]bool, Pixels)
	bits[5] = true
	b, err := New(bits)
	require.Nil(t, err)

	again, err := FromImage(b.Image())
	require.Nil(t, err)
	assert.Equal(t, b.Bits(), again.Bits())
}
