package splatpost

import (
	"path/filepath"
	"testing"

	"github.com/splatpost/splatpost/bitmap"
	"github.com/splatpost/splatpost/command"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlanDB(t *testing.T) *PlanDB {
	db, err := NewPlanDB(filepath.Join(t.TempDir(), "plans.db"))
	require.Nil(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestPlanDB(t *testing.T) {
	db := newPlanDB(t)

	_, ok, err := db.FindPlan("missing")
	require.Nil(t, err)
	assert.False(t, ok)

	cmds := []command.Command{command.Ink, command.Right, command.Ink, command.Down, command.Left}
	require.Nil(t, db.AddPlan("key", cmds))

	got, ok, err := db.FindPlan("key")
	require.Nil(t, err)
	assert.True(t, ok)
	assert.Equal(t, cmds, got)

	// Replacing an entry keeps only the latest plan
	require.Nil(t, db.AddPlan("key", cmds[:1]))
	got, ok, err = db.FindPlan("key")
	require.Nil(t, err)
	assert.True(t, ok)
	assert.Equal(t, cmds[:1], got)

	assert.Equal(t, command.ErrTooLong, db.AddPlan("long", make([]command.Command, command.MaxCount+1)))
}

func TestPlanKey(t *testing.T) {
	b := whiteBitmap(t)

	a, err := planKey(b, false)
	require.Nil(t, err)
	i, err := planKey(b, true)
	require.Nil(t, err)
	o, err := planKey(b.Inverse(), false)
	require.Nil(t, err)

	assert.Len(t, a, 40)
	assert.NotEqual(t, a, i)
	assert.NotEqual(t, a, o)
}

func TestCachingPlanner(t *testing.T) {
	f := &fakePlanner{cmds: []command.Command{command.Down, command.Ink}, rating: command.Moderate}
	c := NewCachingPlanner(f, newPlanDB(t), discard)

	pix := make([]bool, bitmap.Pixels)
	pix[bitmap.Width] = true
	b, err := bitmap.New(pix)
	require.Nil(t, err)

	for i := 0; i < 3; i++ {
		cmds, err := c.Plan(b, false)
		require.Nil(t, err)
		assert.Equal(t, f.cmds, cmds)
	}
	assert.Equal(t, 1, f.calls)

	_, err = c.Plan(b, true)
	require.Nil(t, err)
	assert.Equal(t, 2, f.calls)

	assert.Equal(t, command.Moderate, c.Rate(f.cmds))
}
