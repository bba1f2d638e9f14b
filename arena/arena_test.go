package arena_test

import (
	"testing"

	"github.com/forestrie/go-narytree/arena"
	"github.com/forestrie/go-narytree/narytreetesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaAddChildLinksParent(t *testing.T) {
	a := arena.New[string]()
	root := a.SetRoot("A")
	require.Equal(t, arena.ID(0), root)

	b, err := a.AddChild(root, "B")
	require.NoError(t, err)
	c, err := a.AddChild(root, "C")
	require.NoError(t, err)
	d, err := a.AddChild(b, "D")
	require.NoError(t, err)

	assert.Equal(t, 4, a.Len())

	n, err := a.ChildCount(root)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = a.ChildCount(b)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	leaf, err := a.IsLeaf(c)
	require.NoError(t, err)
	assert.True(t, leaf)

	p, err := a.Parent(d)
	require.NoError(t, err)
	assert.Equal(t, b, p)

	k, err := a.ChildAt(root, 1)
	require.NoError(t, err)
	assert.Equal(t, c, k)

	narytreetesting.RequireConsistent(t, a)
}

func TestArenaInvalidIDs(t *testing.T) {
	a := arena.New[string]()

	_, err := a.AddChild(0, "orphan")
	require.ErrorIs(t, err, arena.ErrInvalidID)

	root := a.SetRoot("A")
	_, err = a.AddChild(7, "x")
	require.ErrorIs(t, err, arena.ErrInvalidID)

	_, err = a.Value(arena.NoID)
	require.ErrorIs(t, err, arena.ErrInvalidID)

	_, err = a.ChildAt(root, 0)
	require.ErrorIs(t, err, arena.ErrIndexOutOfRange)

	_, err = a.ChildAt(root, -1)
	require.ErrorIs(t, err, arena.ErrIndexOutOfRange)
}

func TestArenaSetValueReleasesPrevious(t *testing.T) {
	rc := narytreetesting.NewReleaseCounter()
	a := arena.New[string](arena.WithRelease(rc.Release))
	root := a.SetRoot("old")

	require.NoError(t, a.SetValue(root, "new"))
	v, err := a.Value(root)
	require.NoError(t, err)
	assert.Equal(t, "new", v)
	rc.RequireEachOnce(t, "old")
	assert.Equal(t, 0, rc.Counts["new"])
}

func TestArenaRemoveSubtree(t *testing.T) {
	tests := []struct {
		name        string
		shape       narytreetesting.Shape
		remove      int
		wantRemoved int
	}{
		{"leaf", narytreetesting.Star(5), 3, 1},
		{"chain tail", narytreetesting.Chain(6), 2, 4},
		{"round robin lane", narytreetesting.RoundRobin(10, 3), 1, 3},
		{"root empties", narytreetesting.Chain(4), 0, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc := narytreetesting.NewReleaseCounter()
			values := narytreetesting.Labels(len(tt.shape))
			a, ids := narytreetesting.BuildArena(t, tt.shape, values, arena.WithRelease(rc.Release))
			before := a.Len()

			removed, err := a.RemoveSubtree(ids[tt.remove])
			require.NoError(t, err)
			assert.Equal(t, tt.wantRemoved, removed)
			assert.Equal(t, before-removed, a.Len())
			assert.Equal(t, removed, rc.Total())
			assert.False(t, a.Valid(ids[tt.remove]))

			narytreetesting.RequireConsistent(t, a)
		})
	}
}

func TestArenaRemoveTombstonesKeepSurvivorIDs(t *testing.T) {
	s := narytreetesting.Star(5)
	values := narytreetesting.Labels(len(s))
	a, ids := narytreetesting.BuildArena(t, s, values)

	_, err := a.RemoveSubtree(ids[2])
	require.NoError(t, err)

	// Survivors keep their ids and order, the retired id is not reused.
	assert.Equal(t, []arena.ID{ids[1], ids[3], ids[4]}, a.Children(0))
	assert.Equal(t, 5, a.Cap())

	id, err := a.AddChild(0, "late")
	require.NoError(t, err)
	assert.Equal(t, arena.ID(5), id)

	v, err := a.Value(ids[3])
	require.NoError(t, err)
	assert.Equal(t, "n3", v)

	_, err = a.AddChild(ids[2], "x")
	require.ErrorIs(t, err, arena.ErrInvalidID)
}

func TestArenaResetReleasesEachOnce(t *testing.T) {
	rc := narytreetesting.NewReleaseCounter()
	s := narytreetesting.Random(1698342521, 40)
	values := narytreetesting.Labels(len(s))
	a, ids := narytreetesting.BuildArena(t, s, values, arena.WithRelease(rc.Release))

	_, err := a.RemoveSubtree(ids[5])
	require.NoError(t, err)
	a.Reset()

	assert.Equal(t, 0, a.Len())
	_, ok := a.Root()
	assert.False(t, ok)
	rc.RequireEachOnce(t, values...)
}

func TestArenaSetRootDiscardsPriorTree(t *testing.T) {
	rc := narytreetesting.NewReleaseCounter()
	a := arena.New[string](arena.WithRelease(rc.Release))
	root := a.SetRoot("A")
	_, err := a.AddChild(root, "B")
	require.NoError(t, err)

	root = a.SetRoot("Z")
	assert.Equal(t, arena.ID(0), root)
	assert.Equal(t, 1, a.Len())
	rc.RequireEachOnce(t, "A", "B")
}

func TestArenaEachSkipsTombstones(t *testing.T) {
	s := narytreetesting.Chain(5)
	a, ids := narytreetesting.BuildArena(t, s, narytreetesting.Labels(len(s)))
	_, err := a.RemoveSubtree(ids[3])
	require.NoError(t, err)

	var got []arena.ID
	a.Each(func(id arena.ID) bool {
		got = append(got, id)
		return true
	})
	assert.Equal(t, []arena.ID{0, 1, 2}, got)
}

func TestArenaFootprint(t *testing.T) {
	s := narytreetesting.Star(4)
	a, _ := narytreetesting.BuildArena(t, s, []uint64{1, 2, 3, 4})

	f := a.Footprint()
	assert.Equal(t, uint64(4*8), f.ValueBytes)
	assert.Equal(t, uint64(4*4), f.ParentBytes)
	assert.Equal(t, uint64(8), f.LiveBytes)
	assert.Equal(t, f.ValueBytes+f.ParentBytes+f.AdjacencyBytes+f.LiveBytes, f.Total())
}
