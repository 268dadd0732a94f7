package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByte(t *testing.T) {
	tables := []struct {
		set  Set
		want byte
	}{
		{Set{}, 0x00},
		{Set{Invert: true}, 0x00},
		{Set{Cautious: true}, 0x01},
		{Set{Optimal: true}, 0x02},
		{Set{SlowMode: true}, 0x04},
		{Set{EndSave: true}, 0x08},
		{Set{Vertical: true}, 0x10},
		{Set{Fix: []int{1}}, 0x20},
		{Set{Cautious: true, Optimal: true, SlowMode: true, EndSave: true, Vertical: true, Fix: []int{4, 5}}, 0x3f},
	}

	for _, table := range tables {
		assert.Equal(t, table.want, table.set.Byte(), table.set.String())
	}
}

func TestEncode(t *testing.T) {
	b, err := Encode([]bool{true, false, true})
	require.Nil(t, err)
	assert.Equal(t, byte(0x05), b)

	_, err = Encode(make([]bool, 9))
	assert.NotNil(t, err)
}

func TestFromByte(t *testing.T) {
	s := Set{SlowMode: true, Vertical: true, Fix: []int{10}}
	assert.Equal(t, s.Flags(), FromByte(s.Byte()))
	assert.Len(t, FromByte(0xff), int(numFlags))
}

func TestWithout(t *testing.T) {
	s := Set{Optimal: true, Fix: []int{3}}

	o := s.WithoutOptimal()
	assert.False(t, o.Has(Optimal))
	assert.True(t, o.Has(Fix))
	assert.True(t, s.Has(Optimal))

	f := s.WithoutFix()
	assert.False(t, f.Has(Fix))
	assert.Equal(t, []int{3}, s.Fix)
}

func TestString(t *testing.T) {
	assert.Equal(t, "none", Set{}.String())
	assert.Equal(t, "cautious, fix, invert", Set{Cautious: true, Fix: []int{1}, Invert: true}.String())
	assert.Equal(t, "slowmode", SlowMode.String())
	assert.Equal(t, "unknown", Flag(42).String())
}
