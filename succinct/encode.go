package succinct

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/forestrie/go-narytree/arena"
)

type frame struct {
	id   arena.ID
	next int
}

// Encode produces the succinct form of a. Tombstoned slots are not visited.
func Encode[V any](a *arena.Arena[V]) Encoding[V] {
	n := a.Len()
	enc := Encoding[V]{
		Structure: bitset.New(StructureBits(n)),
		Values:    make([]V, 0, n),
		NodeCount: n,
	}
	root, ok := a.Root()
	if !ok {
		return enc
	}

	var pos uint
	open := func(id arena.ID) {
		enc.Structure.Set(pos)
		pos++
		enc.Values = append(enc.Values, a.ValueAt(id))
	}

	open(root)
	stack := []frame{{id: root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		kids := a.Children(top.id)
		if top.next < len(kids) {
			child := kids[top.next]
			top.next++
			open(child)
			stack = append(stack, frame{id: child})
			continue
		}
		// close bits are the zero bits, just step over them
		pos++
		stack = stack[:len(stack)-1]
	}
	return enc
}
