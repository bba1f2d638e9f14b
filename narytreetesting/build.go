package narytreetesting

import (
	"testing"

	"github.com/forestrie/go-narytree/arena"
)

// BuildArena creates an arena with shape s, node i holding values[i]. It
// returns the arena id assigned to each shape index.
func BuildArena[V any](t *testing.T, s Shape, values []V, opts ...arena.Option) (*arena.Arena[V], []arena.ID) {
	t.Helper()
	if len(values) != len(s) {
		t.Fatalf("BuildArena: %d values for %d nodes", len(values), len(s))
	}
	a := arena.New[V](opts...)
	ids := make([]arena.ID, len(s))
	for i, p := range s {
		if p < 0 {
			ids[i] = a.SetRoot(values[i])
			continue
		}
		id, err := a.AddChild(ids[p], values[i])
		if err != nil {
			t.Fatalf("BuildArena: node %d: %v", i, err)
		}
		ids[i] = id
	}
	return a, ids
}

// ArenaPreorder returns the payloads of a in depth-first preorder.
func ArenaPreorder[V any](a *arena.Arena[V]) []V {
	root, ok := a.Root()
	if !ok {
		return nil
	}
	out := make([]V, 0, a.Len())
	stack := []arena.ID{root}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, a.ValueAt(cur))
		kids := a.Children(cur)
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, kids[i])
		}
	}
	return out
}

// ArenaLevelOrder returns the payloads of a in breadth-first order.
func ArenaLevelOrder[V any](a *arena.Arena[V]) []V {
	root, ok := a.Root()
	if !ok {
		return nil
	}
	out := make([]V, 0, a.Len())
	queue := []arena.ID{root}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		out = append(out, a.ValueAt(cur))
		queue = append(queue, a.Children(cur)...)
	}
	return out
}

// RequireConsistent checks the arena invariants: every live non-root node's
// parent is live and lists it as a child, and the live count matches Len.
func RequireConsistent[V any](t *testing.T, a *arena.Arena[V]) {
	t.Helper()
	live := 0
	a.Each(func(id arena.ID) bool {
		live++
		p, err := a.Parent(id)
		if err != nil {
			t.Fatalf("live id %d: %v", id, err)
		}
		if p == arena.NoID {
			if id != 0 {
				t.Fatalf("id %d has no parent but is not the root", id)
			}
			return true
		}
		if !a.Valid(p) {
			t.Fatalf("id %d has retired parent %d", id, p)
		}
		found := false
		for _, c := range a.Children(p) {
			if c == id {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("id %d missing from children of %d", id, p)
		}
		return true
	})
	if live != a.Len() {
		t.Fatalf("live slots %d, Len %d", live, a.Len())
	}
}
