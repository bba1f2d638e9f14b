package narytree

import (
	"testing"

	"github.com/forestrie/go-narytree/narytreetesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemovedHandleIsInvalid(t *testing.T) {
	tr, h := scenarioTree(t)

	removed, err := tr.RemoveSubtree(h[1])
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Equal(t, 2, tr.Size())

	for _, stale := range []Handle[string]{h[1], h[3]} {
		_, err = tr.Value(stale)
		require.ErrorIs(t, err, ErrInvalidHandle)
		_, err = tr.AddChild(stale, "X")
		require.ErrorIs(t, err, ErrInvalidHandle)
		_, err = tr.RemoveSubtree(stale)
		require.ErrorIs(t, err, ErrInvalidHandle)
	}
	assert.Equal(t, 2, tr.Size())

	// Survivors keep their handles.
	v, err := tr.Value(h[2])
	require.NoError(t, err)
	assert.Equal(t, "C", v)

	// New nodes never alias a retired id.
	e, err := tr.AddChild(h[0], "E")
	require.NoError(t, err)
	assert.NotEqual(t, h[1].ID(), e.ID())
	assert.NotEqual(t, h[3].ID(), e.ID())
	_, err = tr.Value(h[1])
	require.ErrorIs(t, err, ErrInvalidHandle)
	assert.Equal(t, []string{"A", "C", "E"}, tr.Preorder())
}

func TestRemoveRootEmptiesTree(t *testing.T) {
	rc := narytreetesting.NewReleaseCounter()
	tr, h := scenarioTree(t, WithRelease(rc.Release))
	gen := tr.Generation()

	removed, err := tr.RemoveSubtree(h[0])
	require.NoError(t, err)
	assert.Equal(t, 4, removed)
	assert.True(t, tr.IsEmpty())
	assert.Greater(t, tr.Generation(), gen)
	rc.RequireEachOnce(t, "A", "B", "C", "D")

	_, err = tr.Root()
	require.ErrorIs(t, err, ErrEmptyTree)

	// The tree can be reused, and the old root handle does not alias the new root.
	tr.SetRoot("Z")
	_, err = tr.Value(h[0])
	require.ErrorIs(t, err, ErrInvalidHandle)
}

func TestHandleGenerations(t *testing.T) {
	tests := []struct {
		name       string
		invalidate func(t *testing.T, tr *Tree[string])
	}{
		{"set root", func(t *testing.T, tr *Tree[string]) { tr.SetRoot("Z") }},
		{"clear", func(t *testing.T, tr *Tree[string]) { tr.Clear() }},
		{"destroy", func(t *testing.T, tr *Tree[string]) { tr.Destroy() }},
		{"balance", func(t *testing.T, tr *Tree[string]) { require.NoError(t, tr.BalanceTree(2)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, h := scenarioTree(t)
			gen := tr.Generation()
			tt.invalidate(t, tr)
			assert.Greater(t, tr.Generation(), gen)
			for _, stale := range h {
				assert.False(t, tr.Valid(stale))
				_, err := tr.ChildCount(stale)
				require.ErrorIs(t, err, ErrInvalidHandle)
			}
		})
	}
}

func TestForeignAndZeroHandles(t *testing.T) {
	a, ha := scenarioTree(t)
	b, hb := scenarioTree(t)

	_, err := a.Value(hb[0])
	require.ErrorIs(t, err, ErrInvalidHandle)
	require.ErrorIs(t, b.SetValue(ha[1], "X"), ErrInvalidHandle)

	var zero Handle[string]
	assert.True(t, zero.IsZero())
	_, err = a.Value(zero)
	require.ErrorIs(t, err, ErrInvalidHandle)
	_, err = a.AddChild(zero, "X")
	require.ErrorIs(t, err, ErrInvalidHandle)
}

func TestReleaseExactlyOnce(t *testing.T) {
	rc := narytreetesting.NewReleaseCounter()
	s := narytreetesting.Random(1698342521, 60)
	values := narytreetesting.Labels(len(s))
	tr, h := buildTree(t, s, values, WithRelease(rc.Release))

	require.NoError(t, tr.SetValue(h[7], "replacement"))
	rc.RequireEachOnce(t, values[7])

	require.NoError(t, tr.BalanceTree(4))
	require.NoError(t, tr.RebalanceForLocality())
	assert.Equal(t, 1, rc.Total())

	tr.Destroy()
	assert.True(t, tr.IsEmpty())
	for i, v := range values {
		if i == 7 {
			continue
		}
		rc.RequireEachOnce(t, v)
	}
	rc.RequireEachOnce(t, "replacement")
	assert.Equal(t, len(values)+1, rc.Total())
}

func TestParentAndLevel(t *testing.T) {
	tr, h := scenarioTree(t)

	p, ok, err := tr.Parent(h[3])
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, h[1], p)

	level, err := tr.Level(h[3])
	require.NoError(t, err)
	assert.Equal(t, 2, level)

	depth, err := tr.SubtreeDepth(h[1])
	require.NoError(t, err)
	assert.Equal(t, 2, depth)

	depth, err = tr.SubtreeDepth(h[0])
	require.NoError(t, err)
	assert.Equal(t, tr.Depth(), depth)
}
