package narytree

import (
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-narytree/arena"
	"github.com/forestrie/go-narytree/rebalance"
	"github.com/forestrie/go-narytree/treestats"
	"github.com/google/uuid"
)

// Tree is an arena backed N-ary tree with payloads of type V.
type Tree[V any] struct {
	id      uuid.UUID
	arena   *arena.Arena[V]
	policy  rebalance.Policy
	auto    bool
	counter rebalance.Counter
	gen     uint64

	rebalances uint64

	// capacity and release are kept so that replacement arenas built by the
	// rebalancer keep the same ownership behavior.
	capacity int
	release  func(V)

	log logger.Logger
}

// New creates an empty tree.
func New[V any](opts ...Option) (*Tree[V], error) {
	o := defaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Policy.Validate(); err != nil {
		return nil, err
	}

	t := &Tree[V]{
		id:       uuid.New(),
		policy:   o.Policy,
		auto:     o.AutoRebalance,
		gen:      1,
		capacity: o.Capacity,
		release:  o.Release,
		log:      o.Logger,
	}
	if t.log == nil && logger.Sugar != nil {
		t.log = logger.Sugar.WithServiceName("narytree")
	}
	t.arena = arena.New[V](t.arenaOptions()...)
	return t, nil
}

// NewWithRoot creates a tree holding the single node v.
func NewWithRoot[V any](v V, opts ...Option) (*Tree[V], error) {
	t, err := New[V](opts...)
	if err != nil {
		return nil, err
	}
	t.arena.SetRoot(v)
	return t, nil
}

func (t *Tree[V]) arenaOptions() []arena.Option {
	opts := []arena.Option{arena.WithCapacity(t.capacity)}
	if t.release != nil {
		opts = append(opts, arena.WithRelease(t.release))
	}
	return opts
}

// ID returns the identity the tree reports in its log lines.
func (t *Tree[V]) ID() uuid.UUID { return t.id }

// Generation returns the current handle generation.
func (t *Tree[V]) Generation() uint64 { return t.gen }

func (t *Tree[V]) IsEmpty() bool { return t.arena.Len() == 0 }

// Size returns the number of live nodes.
func (t *Tree[V]) Size() int { return t.arena.Len() }

// Depth returns the number of nodes on the longest root to leaf path, 0 for
// an empty tree.
func (t *Tree[V]) Depth() int { return treestats.MaxDepth(t.arena) }

// Clear releases every payload and leaves the tree empty. All handles are
// invalidated.
func (t *Tree[V]) Clear() {
	t.arena.Reset()
	t.gen++
	t.counter.Reset()
}

// Destroy tears the tree down, releasing every payload exactly once. The tree
// remains usable as an empty tree.
func (t *Tree[V]) Destroy() {
	t.Clear()
	t.debugf("tree %s: destroyed", t.id)
}

// SetRoot discards the current contents, releasing their payloads, and stores
// v as the only node.
func (t *Tree[V]) SetRoot(v V) Handle[V] {
	id := t.arena.SetRoot(v)
	t.gen++
	t.counter.Reset()
	id = t.mutated(id)
	return t.handle(id)
}

// Root returns a handle to the root node.
func (t *Tree[V]) Root() (Handle[V], error) {
	id, ok := t.arena.Root()
	if !ok {
		return Handle[V]{}, ErrEmptyTree
	}
	return t.handle(id), nil
}

func (t *Tree[V]) debugf(format string, args ...any) {
	if t.log != nil {
		t.log.Debugf(format, args...)
	}
}

func (t *Tree[V]) infof(format string, args ...any) {
	if t.log != nil {
		t.log.Infof(format, args...)
	}
}
