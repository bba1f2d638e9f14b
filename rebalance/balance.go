package rebalance

import (
	"github.com/cockroachdb/errors"
	"github.com/forestrie/go-narytree/arena"
)

// LevelOrder returns the live payloads of a in breadth-first order.
func LevelOrder[V any](a *arena.Arena[V]) []V {
	root, ok := a.Root()
	if !ok {
		return nil
	}
	out := make([]V, 0, a.Len())
	queue := make([]arena.ID, 0, a.Len())
	queue = append(queue, root)
	for head := 0; head < len(queue); head++ {
		id := queue[head]
		out = append(out, a.ValueAt(id))
		queue = append(queue, a.Children(id)...)
	}
	return out
}

// Balance rebuilds a as a depth-minimal tree with at most maxChildren
// children per node. a is not modified. The new arena inherits a's release
// hook; opts are applied after it.
func Balance[V any](a *arena.Arena[V], maxChildren int, opts ...arena.Option) (*arena.Arena[V], error) {
	if maxChildren < 1 {
		return nil, errors.Wrapf(ErrBadMaxChildren, "got %d", maxChildren)
	}

	values := LevelOrder(a)
	b := arena.New[V](append(a.Configure(), opts...)...)
	if len(values) == 0 {
		return b, nil
	}

	// Subtrees are laid out breadth first: all children of a node are added
	// before any grandchild, which keeps siblings in a contiguous id range.
	type pending struct {
		id   arena.ID
		rest []V
	}
	queue := []pending{{id: b.SetRoot(values[0]), rest: values[1:]}}
	for head := 0; head < len(queue); head++ {
		p := queue[head]
		r := len(p.rest)
		if r == 0 {
			continue
		}
		k := min(r, maxChildren)
		base, extra := r/k, r%k

		start := 0
		for i := 0; i < k; i++ {
			size := base
			if i < extra {
				size++
			}
			sub := p.rest[start : start+size]
			id, err := b.AddChild(p.id, sub[0])
			if err != nil {
				return nil, err
			}
			queue = append(queue, pending{id: id, rest: sub[1:]})
			start += size
		}
	}
	return b, nil
}
