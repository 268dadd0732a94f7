package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequence(n int) []Command {
	cmds := make([]Command, n)
	for i := range cmds {
		cmds[i] = Command(i % 4)
	}
	return cmds
}

func TestEncode(t *testing.T) {
	s, err := Encode([]Command{Right, Down, Left, Ink})
	require.Nil(t, err)
	assert.Equal(t, [LengthSize]byte{4, 0}, s.Length)
	assert.Equal(t, []byte{228}, s.Packed)
	assert.Equal(t, 3, s.Size())
	assert.Equal(t, []byte{4, 0, 228}, s.Bytes())
}

func TestEncodePartial(t *testing.T) {
	s, err := Encode([]Command{Ink, Ink, Down, Left, Ink})
	require.Nil(t, err)
	assert.Equal(t, []byte{0x9f, 0x03}, s.Packed)

	s, err = Encode(nil)
	require.Nil(t, err)
	assert.Equal(t, [LengthSize]byte{0, 0}, s.Length)
	assert.Empty(t, s.Packed)
	assert.Equal(t, LengthSize, s.Size())
}

func TestEncodeLength(t *testing.T) {
	tables := []struct {
		n    int
		want [LengthSize]byte
	}{
		{1, [LengthSize]byte{1, 0}},
		{255, [LengthSize]byte{255, 0}},
		{256, [LengthSize]byte{0, 1}},
		{257, [LengthSize]byte{1, 1}},
		{300, [LengthSize]byte{44, 1}},
		{4097, [LengthSize]byte{1, 16}},
		{MaxCount, [LengthSize]byte{0xff, 0xff}},
	}

	for _, table := range tables {
		s, err := Encode(sequence(table.n))
		require.Nil(t, err)
		assert.Equal(t, table.want, s.Length, table.n)
		assert.Equal(t, table.n, int(s.Length[1])*256+int(s.Length[0]), table.n)
		assert.Equal(t, table.n, s.Count())
		assert.Len(t, s.Packed, (table.n+3)/4)
	}
}

func TestEncodeTooLong(t *testing.T) {
	_, err := Encode(sequence(MaxCount + 1))
	assert.Equal(t, ErrTooLong, err)
}

func TestEncodeOpcode(t *testing.T) {
	_, err := Encode([]Command{Right, Command(4)})
	assert.NotNil(t, err)
}

func TestRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 3, 4, 257, 300, 1001} {
		cmds := sequence(n)
		s, err := Encode(cmds)
		require.Nil(t, err)

		parsed, used, err := Parse(append(s.Bytes(), 0x00))
		require.Nil(t, err)
		assert.Equal(t, s.Size(), used)

		got, err := Decode(parsed)
		require.Nil(t, err)
		assert.Equal(t, cmds, got)
	}
}

func TestParseShort(t *testing.T) {
	_, _, err := Parse([]byte{0x01})
	assert.NotNil(t, err)

	_, _, err = Parse([]byte{0x05, 0x00, 0xff})
	assert.NotNil(t, err)
}

func TestDifficulty(t *testing.T) {
	assert.True(t, Simple.Keep())
	assert.True(t, Complex.Keep())
	assert.False(t, Wasteful.Keep())
	assert.Equal(t, "moderate", Moderate.String())
	assert.Equal(t, "ink", Ink.String())
	assert.Equal(t, "Command(7)", Command(7).String())
}
