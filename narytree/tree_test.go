package narytree

import (
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-narytree/narytreetesting"
	"github.com/forestrie/go-narytree/rebalance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTree grows a tree from s with auto rebalance suspended, so every
// returned handle is current.
func buildTree(t *testing.T, s narytreetesting.Shape, values []string, opts ...Option) (*Tree[string], []Handle[string]) {
	t.Helper()
	tr, err := New[string](opts...)
	require.NoError(t, err)

	auto := tr.AutoRebalance()
	tr.DisableAutoRebalance()
	handles := make([]Handle[string], len(s))
	for i, p := range s {
		if p < 0 {
			handles[i] = tr.SetRoot(values[i])
			continue
		}
		h, err := tr.AddChild(handles[p], values[i])
		require.NoError(t, err)
		handles[i] = h
	}
	if auto {
		tr.EnableAutoRebalance()
	}
	return tr, handles
}

// scenarioTree builds
//
//	  A
//	 / \
//	B   C
//	|
//	D
func scenarioTree(t *testing.T, opts ...Option) (*Tree[string], []Handle[string]) {
	return buildTree(t, narytreetesting.Shape{-1, 0, 0, 1}, []string{"A", "B", "C", "D"}, opts...)
}

func TestTreeScenario(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()

	tr, h := scenarioTree(t)

	assert.False(t, tr.IsEmpty())
	assert.Equal(t, 4, tr.Size())
	assert.Equal(t, 3, tr.Depth())

	n, err := tr.ChildCount(h[0])
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	leaf, err := tr.IsLeaf(h[2])
	require.NoError(t, err)
	assert.True(t, leaf)

	c, err := tr.ChildAt(h[0], 1)
	require.NoError(t, err)
	v, err := tr.Value(c)
	require.NoError(t, err)
	assert.Equal(t, "C", v)

	_, err = tr.ChildAt(h[0], 2)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	stats := tr.Statistics()
	assert.Equal(t, 4, stats.TotalNodes)
	assert.Equal(t, 2, stats.LeafNodes)
	assert.Equal(t, 2, stats.InternalNodes)
	assert.Equal(t, 3, stats.MaxDepth)
	assert.Equal(t, 1.5, stats.AvgChildrenPerNode)
}

func TestTreeEmpty(t *testing.T) {
	tr, err := New[string]()
	require.NoError(t, err)

	assert.True(t, tr.IsEmpty())
	assert.Equal(t, 0, tr.Size())
	assert.Equal(t, 0, tr.Depth())
	assert.Equal(t, 0, tr.Statistics().TotalNodes)

	_, err = tr.Root()
	require.ErrorIs(t, err, ErrEmptyTree)

	enc := tr.Encode()
	assert.Equal(t, 0, enc.NodeCount)
	assert.Empty(t, tr.Preorder())
}

func TestNewWithRoot(t *testing.T) {
	tr, err := NewWithRoot("A")
	require.NoError(t, err)
	root, err := tr.Root()
	require.NoError(t, err)
	v, err := tr.Value(root)
	require.NoError(t, err)
	assert.Equal(t, "A", v)

	_, ok, err := tr.Parent(root)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewRejectsBadPolicy(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"floor above one", WithLocalityFloor(1.5)},
		{"zero multiplier", WithDepthMultiplier(0)},
		{"no children", WithMaxChildren(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New[string](tt.opt)
			require.ErrorIs(t, err, ErrBadPolicy)
		})
	}
}

func TestTreeOptions(t *testing.T) {
	p := rebalance.DefaultPolicy()
	p.Threshold = 7
	tr, err := New[string](WithPolicy(p), WithMaxChildren(4), WithAutoRebalance(false), WithCapacity(16))
	require.NoError(t, err)

	assert.Equal(t, uint64(7), tr.Policy().Threshold)
	assert.Equal(t, 4, tr.Policy().MaxChildren)
	assert.False(t, tr.AutoRebalance())

	tr.SetRebalanceThreshold(0)
	assert.Equal(t, uint64(0), tr.Policy().Threshold)
}

func TestEncodeDecodeScenario(t *testing.T) {
	tr, _ := scenarioTree(t)
	enc := tr.Encode()
	assert.Equal(t, []bool{true, true, true, false, false, true, false, false}, enc.Bits())
	assert.Equal(t, []string{"A", "B", "D", "C"}, enc.Values)

	got, err := Decode(enc.Structure, enc.Values, enc.NodeCount)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, got.Preorder())
	assert.Equal(t, tr.Statistics(), got.Statistics())
	assert.Equal(t, tr.ShapeDigest(), got.ShapeDigest())
}

func TestDecodeMalformedReleasesNothing(t *testing.T) {
	rc := narytreetesting.NewReleaseCounter()
	tr, _ := scenarioTree(t)
	enc := tr.Encode()

	_, err := Decode(enc.Structure, enc.Values[:3], enc.NodeCount, WithRelease(rc.Release))
	require.ErrorIs(t, err, ErrMalformedEncoding)
	rc.RequireNone(t)
}

func TestMarshalRoundTrip(t *testing.T) {
	s := narytreetesting.Random(1698342521, 120)
	tr, _ := buildTree(t, s, narytreetesting.Labels(len(s)))

	data, err := tr.Marshal()
	require.NoError(t, err)
	got, err := Unmarshal[string](data)
	require.NoError(t, err)

	assert.Equal(t, tr.Preorder(), got.Preorder())
	assert.Equal(t, tr.ShapeDigest(), got.ShapeDigest())

	_, err = Unmarshal[string](data[:len(data)/2])
	require.ErrorIs(t, err, ErrMalformedEncoding)
}

func TestBalanceTreeRoundRobin(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()

	rc := narytreetesting.NewReleaseCounter()
	s := narytreetesting.RoundRobin(1000, 3)
	values := narytreetesting.Labels(len(s))
	tr, h := buildTree(t, s, values, WithRelease(rc.Release))
	require.Greater(t, tr.Depth(), 300)
	assert.True(t, tr.NeedsRebalancing())

	require.NoError(t, tr.BalanceTree(3))
	assert.Equal(t, 1000, tr.Size())
	assert.LessOrEqual(t, tr.Depth(), 7)
	assert.ElementsMatch(t, values, tr.Preorder())
	assert.Equal(t, uint64(1), tr.RebalanceCount())
	assert.False(t, tr.NeedsRebalancing())
	rc.RequireNone(t)

	_, err := tr.Value(h[0])
	require.ErrorIs(t, err, ErrInvalidHandle)

	stats := tr.Statistics()
	assert.LessOrEqual(t, stats.MaxChildrenSeen, 3)
}

func TestBalanceTreeEdgeCases(t *testing.T) {
	tr, err := New[string]()
	require.NoError(t, err)
	require.NoError(t, tr.BalanceTree(3))
	assert.True(t, tr.IsEmpty())

	root := tr.SetRoot("A")
	require.NoError(t, tr.BalanceTree(3))
	assert.True(t, tr.Valid(root))

	require.ErrorIs(t, tr.BalanceTree(0), ErrBadMaxChildren)
}

func TestAutoBalanceIfNeeded(t *testing.T) {
	tr, _ := buildTree(t, narytreetesting.Chain(10), narytreetesting.Labels(10))
	require.True(t, tr.NeedsRebalancing())

	did, err := tr.AutoBalanceIfNeeded()
	require.NoError(t, err)
	assert.True(t, did)
	assert.Equal(t, 3, tr.Depth())

	did, err = tr.AutoBalanceIfNeeded()
	require.NoError(t, err)
	assert.False(t, did)

	small, _ := buildTree(t, narytreetesting.Chain(3), narytreetesting.Labels(3))
	assert.False(t, small.NeedsRebalancing())
}
