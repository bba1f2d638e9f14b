package arena

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/cockroachdb/errors"
)

// Arena holds the nodes of a single tree in parallel id-indexed slices.
//
// The zero value is not usable, use New.
type Arena[V any] struct {
	values   []V
	parents  []ID
	children [][]ID
	live     *bitset.BitSet
	count    int

	release func(V)
}

func New[V any](opts ...Option) *Arena[V] {
	o := Options[V]{}
	for _, opt := range opts {
		opt(&o)
	}
	a := &Arena[V]{
		release: o.Release,
	}
	a.init(o.Capacity)
	return a
}

// Configure returns the options that would reproduce this arena's ownership
// behavior in a new arena.
func (a *Arena[V]) Configure() []Option {
	return []Option{WithRelease(a.release), WithCapacity(a.count)}
}

func (a *Arena[V]) init(capacity int) {
	if capacity < 0 {
		capacity = 0
	}
	a.values = make([]V, 0, capacity)
	a.parents = make([]ID, 0, capacity)
	a.children = make([][]ID, 0, capacity)
	a.live = bitset.New(uint(capacity))
	a.count = 0
}

// Len returns the number of live nodes.
func (a *Arena[V]) Len() int { return a.count }

// Cap returns the number of slots, live or retired.
func (a *Arena[V]) Cap() int { return len(a.values) }

// Root returns the root id, ok is false for an empty arena.
func (a *Arena[V]) Root() (ID, bool) {
	if a.count == 0 {
		return NoID, false
	}
	return 0, true
}

// Valid reports whether id refers to a live slot.
func (a *Arena[V]) Valid(id ID) bool {
	return int(id) < len(a.values) && a.live.Test(uint(id))
}

func (a *Arena[V]) check(id ID) error {
	if !a.Valid(id) {
		return errors.Wrapf(ErrInvalidID, "id %d (cap %d)", id, len(a.values))
	}
	return nil
}

func (a *Arena[V]) push(parent ID, v V) (ID, error) {
	if uint64(len(a.values)) >= MaxNodes {
		return NoID, ErrFull
	}
	id := ID(len(a.values))
	a.values = append(a.values, v)
	a.parents = append(a.parents, parent)
	a.children = append(a.children, nil)
	a.live.Set(uint(id))
	a.count++
	return id, nil
}

// SetRoot discards every node, releasing their payloads, and stores v as the
// root at id 0.
func (a *Arena[V]) SetRoot(v V) ID {
	if len(a.values) > 0 {
		a.Reset()
	}
	id, _ := a.push(NoID, v)
	return id
}

// AddChild appends a new node holding v as the last child of parent.
func (a *Arena[V]) AddChild(parent ID, v V) (ID, error) {
	if err := a.check(parent); err != nil {
		return NoID, err
	}
	id, err := a.push(parent, v)
	if err != nil {
		return NoID, err
	}
	a.children[parent] = append(a.children[parent], id)
	return id, nil
}

// Value returns the payload stored at id.
func (a *Arena[V]) Value(id ID) (V, error) {
	if err := a.check(id); err != nil {
		var zero V
		return zero, err
	}
	return a.values[id], nil
}

// ValueAt returns the payload at id without checking it.
//
// NOTE: the caller must guarantee Valid(id).
func (a *Arena[V]) ValueAt(id ID) V {
	return a.values[id]
}

// SetValue replaces the payload at id, releasing the previous occupant.
func (a *Arena[V]) SetValue(id ID, v V) error {
	if err := a.check(id); err != nil {
		return err
	}
	prev := a.values[id]
	a.values[id] = v
	a.releaseValue(prev)
	return nil
}

// Parent returns the parent of id, NoID for the root.
func (a *Arena[V]) Parent(id ID) (ID, error) {
	if err := a.check(id); err != nil {
		return NoID, err
	}
	return a.parents[id], nil
}

// ChildCount returns the number of live children of id.
func (a *Arena[V]) ChildCount(id ID) (int, error) {
	if err := a.check(id); err != nil {
		return 0, err
	}
	return len(a.children[id]), nil
}

func (a *Arena[V]) IsLeaf(id ID) (bool, error) {
	n, err := a.ChildCount(id)
	return n == 0, err
}

// ChildAt returns the k'th child of id in insertion order.
func (a *Arena[V]) ChildAt(id ID, k int) (ID, error) {
	if err := a.check(id); err != nil {
		return NoID, err
	}
	kids := a.children[id]
	if k < 0 || k >= len(kids) {
		return NoID, errors.Wrapf(ErrIndexOutOfRange, "child %d of %d (count %d)", k, id, len(kids))
	}
	return kids[k], nil
}

// Children returns the ordered child ids of id, nil if id is not live.
//
// NOTE: the returned slice is the arena's own adjacency list, callers must
// not modify it and must not retain it across mutations.
func (a *Arena[V]) Children(id ID) []ID {
	if !a.Valid(id) {
		return nil
	}
	return a.children[id]
}

// Each calls fn for every live id in ascending order until fn returns false.
func (a *Arena[V]) Each(fn func(id ID) bool) {
	for i, ok := a.live.NextSet(0); ok && i < uint(len(a.values)); i, ok = a.live.NextSet(i + 1) {
		if !fn(ID(i)) {
			return
		}
	}
}

// Reset releases every live payload exactly once and empties the arena.
func (a *Arena[V]) Reset() {
	a.Each(func(id ID) bool {
		a.releaseValue(a.values[id])
		return true
	})
	a.init(0)
}

func (a *Arena[V]) releaseValue(v V) {
	if a.release != nil {
		a.release(v)
	}
}
