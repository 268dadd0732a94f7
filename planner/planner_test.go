package planner

import (
	"math/rand"
	"testing"

	"github.com/splatpost/splatpost/bitmap"
	"github.com/splatpost/splatpost/command"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBitmap(t *testing.T, points ...[2]int) *bitmap.Bitmap {
	pix := make([]bool, bitmap.Pixels)
	for _, p := range points {
		pix[p[1]*bitmap.Width+p[0]] = true
	}
	b, err := bitmap.New(pix)
	require.Nil(t, err)
	return b
}

func TestPlanEmpty(t *testing.T) {
	cmds, err := Sweep{}.Plan(newBitmap(t), false)
	require.Nil(t, err)
	assert.Empty(t, cmds)
}

func TestPlan(t *testing.T) {
	b := newBitmap(t, [2]int{0, 0}, [2]int{2, 0}, [2]int{1, 2})

	cmds, err := Sweep{}.Plan(b, false)
	require.Nil(t, err)
	assert.Equal(t, []command.Command{
		command.Ink, command.Right, command.Right, command.Ink,
		command.Down,
		command.Down, command.Left, command.Ink,
	}, cmds)
}

func TestPlanReplay(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for _, density := range []int{2, 20, 90} {
		pix := make([]bool, bitmap.Pixels)
		for i := range pix {
			pix[i] = r.Intn(100) < density
		}
		b, err := bitmap.New(pix)
		require.Nil(t, err)

		for _, invert := range []bool{false, true} {
			cmds, err := Sweep{}.Plan(b, invert)
			require.Nil(t, err)

			got, err := Replay(cmds)
			require.Nil(t, err)

			want := b
			if invert {
				want = b.Inverse()
			}
			assert.Equal(t, want.Bits(), got.Bits())
		}
	}
}

func TestRate(t *testing.T) {
	s := Sweep{}

	cmds, err := s.Plan(newBitmap(t, [2]int{10, 10}), false)
	require.Nil(t, err)
	assert.Equal(t, command.Simple, s.Rate(cmds))

	assert.Equal(t, command.Moderate, s.Rate(make([]command.Command, bitmap.Pixels/2)))
	assert.Equal(t, command.Complex, s.Rate(make([]command.Command, bitmap.Pixels-1)))
	assert.Equal(t, command.Wasteful, s.Rate(make([]command.Command, bitmap.Pixels)))
	assert.Equal(t, command.Wasteful, s.Rate(make([]command.Command, command.MaxCount+1)))
}

func TestReplayOffCanvas(t *testing.T) {
	_, err := Replay([]command.Command{command.Left})
	assert.Equal(t, errOffCanvas, err)
}
