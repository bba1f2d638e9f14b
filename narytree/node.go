package narytree

import (
	"github.com/forestrie/go-narytree/arena"
	"github.com/forestrie/go-narytree/treestats"
)

// AddChild appends a node holding v as the last child of parent and returns
// its handle. The returned handle is current even if the mutation triggered a
// lazy reorder.
func (t *Tree[V]) AddChild(parent Handle[V], v V) (Handle[V], error) {
	pid, err := t.resolve(parent)
	if err != nil {
		return Handle[V]{}, err
	}
	id, err := t.arena.AddChild(pid, v)
	if err != nil {
		return Handle[V]{}, err
	}
	id = t.mutated(id)
	return t.handle(id), nil
}

func (t *Tree[V]) Value(h Handle[V]) (V, error) {
	id, err := t.resolve(h)
	if err != nil {
		var zero V
		return zero, err
	}
	return t.arena.ValueAt(id), nil
}

// SetValue replaces the payload of h, releasing the previous payload.
func (t *Tree[V]) SetValue(h Handle[V], v V) error {
	id, err := t.resolve(h)
	if err != nil {
		return err
	}
	if err := t.arena.SetValue(id, v); err != nil {
		return err
	}
	t.mutated(arena.NoID)
	return nil
}

func (t *Tree[V]) ChildCount(h Handle[V]) (int, error) {
	id, err := t.resolve(h)
	if err != nil {
		return 0, err
	}
	return t.arena.ChildCount(id)
}

func (t *Tree[V]) IsLeaf(h Handle[V]) (bool, error) {
	id, err := t.resolve(h)
	if err != nil {
		return false, err
	}
	return t.arena.IsLeaf(id)
}

// ChildAt returns the k'th child of h in insertion order. An out of range k
// fails with ErrIndexOutOfRange.
func (t *Tree[V]) ChildAt(h Handle[V], k int) (Handle[V], error) {
	id, err := t.resolve(h)
	if err != nil {
		return Handle[V]{}, err
	}
	child, err := t.arena.ChildAt(id, k)
	if err != nil {
		return Handle[V]{}, err
	}
	return t.handle(child), nil
}

// Parent returns the parent of h, ok is false for the root.
func (t *Tree[V]) Parent(h Handle[V]) (Handle[V], bool, error) {
	id, err := t.resolve(h)
	if err != nil {
		return Handle[V]{}, false, err
	}
	p, err := t.arena.Parent(id)
	if err != nil || p == arena.NoID {
		return Handle[V]{}, false, err
	}
	return t.handle(p), true, nil
}

// Level returns the number of edges between h and the root.
func (t *Tree[V]) Level(h Handle[V]) (int, error) {
	id, err := t.resolve(h)
	if err != nil {
		return 0, err
	}
	return treestats.Level(t.arena, id), nil
}

// SubtreeDepth returns the depth of the subtree rooted at h, counting h.
func (t *Tree[V]) SubtreeDepth(h Handle[V]) (int, error) {
	id, err := t.resolve(h)
	if err != nil {
		return 0, err
	}
	return treestats.SubtreeDepth(t.arena, id), nil
}

// RemoveSubtree removes h and all of its descendants, releasing each payload
// once, and returns the number of nodes removed. Removing the root empties
// the tree and invalidates every handle. Otherwise handles to the surviving
// nodes stay valid.
func (t *Tree[V]) RemoveSubtree(h Handle[V]) (int, error) {
	id, err := t.resolve(h)
	if err != nil {
		return 0, err
	}
	root, _ := t.arena.Root()
	removed, err := t.arena.RemoveSubtree(id)
	if err != nil {
		return 0, err
	}
	if id == root {
		t.gen++
		t.counter.Reset()
		return removed, nil
	}
	t.mutated(arena.NoID)
	return removed, nil
}
