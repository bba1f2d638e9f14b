package rebalance

import (
	"github.com/forestrie/go-narytree/arena"
)

// Reorder relabels a's nodes in breadth-first order without changing shape
// or payloads. It returns the new arena and, indexed by old id, the new id of
// every slot of a (arena.NoID for tombstones). a is not modified.
func Reorder[V any](a *arena.Arena[V], opts ...arena.Option) (*arena.Arena[V], []arena.ID, error) {
	mapping := make([]arena.ID, a.Cap())
	for i := range mapping {
		mapping[i] = arena.NoID
	}

	b := arena.New[V](append(a.Configure(), opts...)...)
	root, ok := a.Root()
	if !ok {
		return b, mapping, nil
	}

	mapping[root] = b.SetRoot(a.ValueAt(root))
	queue := make([]arena.ID, 0, a.Len())
	queue = append(queue, root)
	for head := 0; head < len(queue); head++ {
		old := queue[head]
		for _, child := range a.Children(old) {
			id, err := b.AddChild(mapping[old], a.ValueAt(child))
			if err != nil {
				return nil, nil, err
			}
			mapping[child] = id
			queue = append(queue, child)
		}
	}
	return b, mapping, nil
}

// Identity reports whether a Reorder mapping left every id where it was and
// dropped no tombstones.
func Identity(mapping []arena.ID) bool {
	for i, id := range mapping {
		if id != arena.ID(i) {
			return false
		}
	}
	return true
}

// InOrder reports whether a is already in the order Reorder produces: no
// tombstones and ids assigned breadth first. Reorder of such an arena returns
// an Identity mapping.
func InOrder[V any](a *arena.Arena[V]) bool {
	if a.Cap() != a.Len() {
		return false
	}
	root, ok := a.Root()
	if !ok {
		return true
	}
	queue := make([]arena.ID, 0, a.Len())
	queue = append(queue, root)
	for head := 0; head < len(queue); head++ {
		if queue[head] != arena.ID(head) {
			return false
		}
		queue = append(queue, a.Children(queue[head])...)
	}
	return true
}
