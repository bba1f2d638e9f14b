package narytree

import (
	"github.com/forestrie/go-narytree/arena"
)

// Order selects the visiting order of Walk.
type Order int

const (
	PreOrder Order = iota
	PostOrder
	LevelOrder
)

func (o Order) String() string {
	switch o {
	case PreOrder:
		return "preorder"
	case PostOrder:
		return "postorder"
	case LevelOrder:
		return "levelorder"
	}
	return "unknown"
}

// Walk visits every node in the given order until fn returns false. fn must
// not mutate the tree.
func (t *Tree[V]) Walk(order Order, fn func(h Handle[V], v V) bool) {
	root, ok := t.arena.Root()
	if !ok {
		return
	}
	visit := func(id arena.ID) bool {
		return fn(t.handle(id), t.arena.ValueAt(id))
	}
	switch order {
	case PostOrder:
		t.postorder(root, visit)
	case LevelOrder:
		queue := []arena.ID{root}
		for head := 0; head < len(queue); head++ {
			if !visit(queue[head]) {
				return
			}
			queue = append(queue, t.arena.Children(queue[head])...)
		}
	default:
		stack := []arena.ID{root}
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !visit(id) {
				return
			}
			kids := t.arena.Children(id)
			for i := len(kids) - 1; i >= 0; i-- {
				stack = append(stack, kids[i])
			}
		}
	}
}

func (t *Tree[V]) postorder(root arena.ID, visit func(arena.ID) bool) {
	type frame struct {
		id   arena.ID
		next int
	}
	stack := []frame{{id: root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		kids := t.arena.Children(top.id)
		if top.next < len(kids) {
			child := kids[top.next]
			top.next++
			stack = append(stack, frame{id: child})
			continue
		}
		if !visit(top.id) {
			return
		}
		stack = stack[:len(stack)-1]
	}
}

// Find returns the first node in preorder whose payload satisfies match.
func (t *Tree[V]) Find(match func(v V) bool) (Handle[V], bool) {
	var found Handle[V]
	t.Walk(PreOrder, func(h Handle[V], v V) bool {
		if match(v) {
			found = h
			return false
		}
		return true
	})
	return found, !found.IsZero()
}

// Preorder returns the payloads in preorder.
func (t *Tree[V]) Preorder() []V {
	out := make([]V, 0, t.Size())
	t.Walk(PreOrder, func(_ Handle[V], v V) bool {
		out = append(out, v)
		return true
	})
	return out
}
